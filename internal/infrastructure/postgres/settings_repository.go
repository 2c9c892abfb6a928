package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository. The table holds at most one
// row per deployment.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get loads the settings row, or (nil, nil) before the first save.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	query := `
		SELECT id, company_name, company_address, company_phone, company_email,
		       logo_url, created_at, updated_at
		FROM company_settings
		ORDER BY created_at
		LIMIT 1`
	var s entity.CompanySettings
	var logoURL *string
	err := r.q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.CompanyAddress, &s.CompanyPhone, &s.CompanyEmail,
		&logoURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.LogoURL = derefStr(logoURL)
	return &s, nil
}

// Upsert creates the row on the first save and overwrites it afterwards.
func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (
			id, company_name, company_address, company_phone, company_email,
			logo_url, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET company_name    = EXCLUDED.company_name,
		    company_address = EXCLUDED.company_address,
		    company_phone   = EXCLUDED.company_phone,
		    company_email   = EXCLUDED.company_email,
		    logo_url        = EXCLUDED.logo_url,
		    updated_at      = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyName, s.CompanyAddress, s.CompanyPhone, s.CompanyEmail,
		nullIfEmpty(s.LogoURL), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
