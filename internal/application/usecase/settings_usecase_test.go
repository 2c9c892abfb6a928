package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
)

func validSettings() dto.SaveSettingsRequest {
	return dto.SaveSettingsRequest{
		CompanyName:    "Island Pro Painting",
		CompanyAddress: "1200 Douglas St, Victoria BC",
		CompanyPhone:   "250-555-0134",
		CompanyEmail:   "office@islandpro.example",
	}
}

func TestSettingsGet_EmptyBeforeFirstSave(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, &fakeLogoStore{})

	resp, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp, "no settings row exists until the first save")
}

func TestSettingsSave_CreatesThenOverwrites(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, &fakeLogoStore{})

	first, err := uc.Save(context.Background(), validSettings())
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	in := validSettings()
	in.CompanyPhone = "250-555-0199"
	second, err := uc.Save(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "saving again rewrites the same row")
	assert.Equal(t, "250-555-0199", second.CompanyPhone)
}

func TestSettingsSave_MissingEmailRejected(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, &fakeLogoStore{})

	in := validSettings()
	in.CompanyEmail = ""
	_, err := uc.Save(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "company_email")
}

// ─── Logo upload ──────────────────────────────────────────────────────────────

func TestUploadLogo_StoresUnderFreshName(t *testing.T) {
	store := &fakeLogoStore{}
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, store)

	url, err := uc.UploadLogo(context.Background(), "logo.PNG", "image/png", 1024, strings.NewReader(strings.Repeat("x", 1024)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "url must point at the serving prefix, got %q", url)
	assert.True(t, strings.HasSuffix(store.savedName, ".png"), "extension must be kept lowercased, got %q", store.savedName)
	assert.NotEqual(t, "logo.png", store.savedName, "stored name must not be the user-supplied one")
	assert.EqualValues(t, 1024, store.savedSize)
}

func TestUploadLogo_RejectsOversizeFile(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, &fakeLogoStore{})

	_, err := uc.UploadLogo(context.Background(), "logo.png", "image/png", 6<<20, strings.NewReader("unused"))
	assert.ErrorIs(t, err, domain.ErrLogoTooLarge)
}

func TestUploadLogo_RejectsNonImage(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, &fakeLogoStore{})

	_, err := uc.UploadLogo(context.Background(), "contract.pdf", "application/pdf", 1024, strings.NewReader("unused"))
	assert.ErrorIs(t, err, domain.ErrLogoBadType)
}

func TestUploadLogo_StoreFailureSurfaces(t *testing.T) {
	store := &fakeLogoStore{failWith: assert.AnError}
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{}, store)

	_, err := uc.UploadLogo(context.Background(), "logo.png", "image/png", 1024, strings.NewReader("x"))
	assert.ErrorIs(t, err, assert.AnError)
}
