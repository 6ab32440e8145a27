// Package settingsrepo persists the store settings row and its delivery tiers.
package settingsrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/settings"

	"github.com/google/uuid"
)

// StoreSettingsDTO is the single store_settings row.
type StoreSettingsDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	StoreName     string            `gorm:"type:varchar(255);not null"`
	PickupEnabled bool              `gorm:"not null"`
	WorkingHours  []DayScheduleDTO  `gorm:"type:jsonb;serializer:json;not null"`
	UpdatedAt     time.Time         `gorm:"not null;autoUpdateTime:false"`
	DeliveryTiers []DeliveryTierDTO `gorm:"foreignKey:SettingsID;constraint:OnDelete:CASCADE"`
}

func (StoreSettingsDTO) TableName() string {
	return "store_settings"
}

// DayScheduleDTO is the JSON form of one weekday schedule.
type DayScheduleDTO struct {
	Weekday int    `json:"weekday"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
	Closed  bool   `json:"closed"`
}

// DeliveryTierDTO is one delivery_tiers row.
type DeliveryTierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettingsID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MinDistance float64   `gorm:"type:numeric(8,2);not null"`
	MaxDistance float64   `gorm:"type:numeric(8,2);not null"`
	Fee         float64   `gorm:"type:numeric(10,2);not null"`
}

func (DeliveryTierDTO) TableName() string {
	return "delivery_tiers"
}

func fromDomain(s *settings.StoreSettings) StoreSettingsDTO {
	settingsID := s.ID().Bytes()

	days := s.WorkingHours().Days()
	hours := make([]DayScheduleDTO, 0, len(days))
	for _, d := range days {
		hours = append(hours, DayScheduleDTO{Weekday: int(d.Weekday), Opens: d.Opens, Closes: d.Closes, Closed: d.Closed})
	}

	tiers := make([]DeliveryTierDTO, 0, len(s.DeliveryTiers()))
	for _, t := range s.DeliveryTiers() {
		tiers = append(tiers, DeliveryTierDTO{
			ID:          t.ID.Bytes(),
			SettingsID:  settingsID,
			MinDistance: t.MinDistance,
			MaxDistance: t.MaxDistance,
			Fee:         t.Fee,
		})
	}

	return StoreSettingsDTO{
		ID:            settingsID,
		StoreName:     s.StoreName(),
		PickupEnabled: s.PickupEnabled(),
		WorkingHours:  hours,
		UpdatedAt:     s.UpdatedAt(),
		DeliveryTiers: tiers,
	}
}

func toDomain(dto StoreSettingsDTO) (*settings.StoreSettings, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	days := make([]settings.DaySchedule, 0, len(dto.WorkingHours))
	for _, d := range dto.WorkingHours {
		days = append(days, settings.DaySchedule{
			Weekday: time.Weekday(d.Weekday),
			Opens:   d.Opens,
			Closes:  d.Closes,
			Closed:  d.Closed,
		})
	}
	hours, err := settings.NewWorkingHours(days)
	if err != nil {
		return nil, err
	}

	tiers := make([]settings.DeliveryTier, 0, len(dto.DeliveryTiers))
	for _, t := range dto.DeliveryTiers {
		tierID, idErr := kernel.UUIDFromBytes(t.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		tiers = append(tiers, settings.DeliveryTier{
			ID:          tierID,
			MinDistance: t.MinDistance,
			MaxDistance: t.MaxDistance,
			Fee:         t.Fee,
		})
	}

	return settings.RestoreStoreSettings(id, dto.StoreName, tiers, hours, dto.PickupEnabled, dto.UpdatedAt)
}
