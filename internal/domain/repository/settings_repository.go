package repository

import (
	"context"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// SettingsRepository stores the single company settings row for this
// deployment. Get returns (nil, nil) until the first save.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Upsert(ctx context.Context, s *entity.CompanySettings) error
}
