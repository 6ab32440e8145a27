package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"
)

// GetStoreSettingsQueryHandler reads settings through the cache. Any cache
// failure degrades to the repository; the cache never fails a read.
type GetStoreSettingsQueryHandler struct {
	repo   ports.SettingsRepository
	cache  ports.SettingsCache
	clock  func() time.Time
	logger *slog.Logger
}

func NewGetStoreSettingsQueryHandler(
	repo ports.SettingsRepository,
	cache ports.SettingsCache,
	clock func() time.Time,
	logger *slog.Logger,
) GetStoreSettingsQueryHandler {
	return GetStoreSettingsQueryHandler{
		repo:   repo,
		cache:  cache,
		clock:  clock,
		logger: logger.With("component", "store-settings-query"),
	}
}

func (h GetStoreSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreSettingsQuery,
) (GetStoreSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreSettingsQueryResponse{}, err
	}

	current, err := h.Load(ctx)
	if err != nil {
		return GetStoreSettingsQueryResponse{}, err
	}

	response := GetStoreSettingsQueryResponse{
		StoreName:     current.StoreName(),
		PickupEnabled: current.PickupEnabled(),
		OpenNow:       current.IsOpenAt(h.clock()),
		DeliveryTiers: make([]DeliveryTierView, 0, len(current.DeliveryTiers())),
		WorkingHours:  make([]DayScheduleView, 0, 7),
		UpdatedAt:     current.UpdatedAt(),
	}
	for _, t := range current.DeliveryTiers() {
		response.DeliveryTiers = append(response.DeliveryTiers, DeliveryTierView{
			MinDistance: t.MinDistance,
			MaxDistance: t.MaxDistance,
			Fee:         t.Fee,
		})
	}
	for _, d := range current.WorkingHours().Days() {
		response.WorkingHours = append(response.WorkingHours, DayScheduleView{
			Weekday: d.Weekday,
			Opens:   d.Opens,
			Closes:  d.Closes,
			Closed:  d.Closed,
		})
	}
	return response, nil
}

// Load returns the settings aggregate, filling the cache on a miss.
func (h GetStoreSettingsQueryHandler) Load(ctx context.Context) (*settings.StoreSettings, error) {
	cached, err := h.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		h.logger.WarnContext(ctx, "settings cache read failed", "error", err)
	}

	current, err := h.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, current); err != nil {
		h.logger.WarnContext(ctx, "settings cache write failed", "error", err)
	}
	return current, nil
}
