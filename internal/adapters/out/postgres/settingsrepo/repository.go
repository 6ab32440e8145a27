package settingsrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// The store has exactly one settings row; Save replaces it.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings row with its tiers sorted by distance.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.StoreSettings, error) {
	var dto StoreSettingsDTO
	err := r.db.WithContext(ctx).
		Preload("DeliveryTiers", func(db *gorm.DB) *gorm.DB { return db.Order("min_distance, max_distance") }).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store settings", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the settings row and rewrites its delivery tiers. Callers run
// it inside a unit of work so the tier table is never seen half replaced.
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.StoreSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	tiers := dto.DeliveryTiers
	dto.DeliveryTiers = nil

	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_name", "pickup_enabled", "working_hours", "updated_at"}),
	}).Create(&dto).Error; err != nil {
		return err
	}

	if err := db.Where("settings_id = ?", dto.ID).Delete(&DeliveryTierDTO{}).Error; err != nil {
		return err
	}

	if len(tiers) == 0 {
		return nil
	}
	return db.Create(&tiers).Error
}
