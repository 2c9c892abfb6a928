package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/validate"
)

// SettingsUseCase manages the single company profile of this deployment
// and the logo upload that precedes saving it.
type SettingsUseCase struct {
	repo  repository.SettingsRepository
	logos LogoStore
}

// NewSettingsUseCase builds the use case with its ports.
func NewSettingsUseCase(repo repository.SettingsRepository, logos LogoStore) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, logos: logos}
}

// Get returns the stored settings, or nil when none were saved yet.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return entityToSettingsResponse(s), nil
}

// Save validates and upserts the company profile. The row is created on the
// first save and overwritten afterwards.
func (uc *SettingsUseCase) Save(ctx context.Context, in dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	s := &entity.CompanySettings{
		CompanyName:    in.CompanyName,
		CompanyAddress: in.CompanyAddress,
		CompanyPhone:   in.CompanyPhone,
		CompanyEmail:   in.CompanyEmail,
		LogoURL:        in.LogoURL,
	}
	if errs := validate.CompanySettings(*s); !errs.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs.Join())
	}

	current, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if current != nil {
		s.ID = current.ID
		s.CreatedAt = current.CreatedAt
	} else {
		s.ID = uuid.New().String()
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return entityToSettingsResponse(s), nil
}

// UploadLogo checks the file against the image allow-list and size cap,
// stores it under a fresh name and returns the public URL. The caller sends
// that URL back in a later Save.
func (uc *SettingsUseCase) UploadLogo(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if err := validate.Logo(filename, contentType, size); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	stored := uuid.New().String() + ext
	url, err := uc.logos.Save(ctx, stored, io.LimitReader(r, validate.MaxLogoBytes))
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}
	return url, nil
}

func entityToSettingsResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		ID:             s.ID,
		CompanyName:    s.CompanyName,
		CompanyAddress: s.CompanyAddress,
		CompanyPhone:   s.CompanyPhone,
		CompanyEmail:   s.CompanyEmail,
		LogoURL:        s.LogoURL,
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}
