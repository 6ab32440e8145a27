// Package redis caches the store settings read by every checkout and menu page.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const settingsKey = "storefront:settings"

// setIfNotOlder stores the snapshot unless the cached one has a newer
// version. KEYS[1] hash key; ARGV version, snapshot, ttl in milliseconds.
var setIfNotOlder = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// SettingsCache implements ports.SettingsCache with a JSON snapshot and its
// version (UpdatedAt in microseconds) in one hash. Entries live for the base
// TTL plus up to four minutes of jitter so replicas do not expire together.
type SettingsCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

func NewSettingsCache(client redis.UniversalClient) *SettingsCache {
	return &SettingsCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type settingsSnapshot struct {
	ID            string         `json:"id"`
	StoreName     string         `json:"store_name"`
	PickupEnabled bool           `json:"pickup_enabled"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeliveryTiers []tierSnapshot `json:"delivery_tiers"`
	WorkingHours  []daySnapshot  `json:"working_hours"`
}

type tierSnapshot struct {
	ID          string  `json:"id"`
	MinDistance float64 `json:"min_distance"`
	MaxDistance float64 `json:"max_distance"`
	Fee         float64 `json:"fee"`
}

type daySnapshot struct {
	Weekday time.Weekday `json:"weekday"`
	Opens   string       `json:"opens"`
	Closes  string       `json:"closes"`
	Closed  bool         `json:"closed"`
}

// Get returns ports.ErrCacheMiss when nothing is cached.
func (c *SettingsCache) Get(ctx context.Context) (*settings.StoreSettings, error) {
	data, err := c.client.HGet(ctx, settingsKey, "data").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot settingsSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal settings failed: %w", err)
	}
	return snapshot.toDomain()
}

// Set is a no-op when the cached snapshot was updated later than s.
func (c *SettingsCache) Set(ctx context.Context, s *settings.StoreSettings) error {
	data, err := json.Marshal(snapshotOf(s))
	if err != nil {
		return fmt.Errorf("marshal settings failed: %w", err)
	}

	//nolint:gosec // jitter does not need a secure source
	ttl := c.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	version := s.UpdatedAt().UnixMicro()
	err = setIfNotOlder.Run(ctx, c.client, []string{settingsKey}, version, string(data), ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *SettingsCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func snapshotOf(s *settings.StoreSettings) settingsSnapshot {
	snapshot := settingsSnapshot{
		ID:            s.ID().String(),
		StoreName:     s.StoreName(),
		PickupEnabled: s.PickupEnabled(),
		UpdatedAt:     s.UpdatedAt(),
		DeliveryTiers: make([]tierSnapshot, 0, len(s.DeliveryTiers())),
		WorkingHours:  make([]daySnapshot, 0, 7),
	}
	for _, t := range s.DeliveryTiers() {
		snapshot.DeliveryTiers = append(snapshot.DeliveryTiers, tierSnapshot{
			ID:          t.ID.String(),
			MinDistance: t.MinDistance,
			MaxDistance: t.MaxDistance,
			Fee:         t.Fee,
		})
	}
	for _, d := range s.WorkingHours().Days() {
		snapshot.WorkingHours = append(snapshot.WorkingHours, daySnapshot(d))
	}
	return snapshot
}

func (s settingsSnapshot) toDomain() (*settings.StoreSettings, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}

	tiers := make([]settings.DeliveryTier, 0, len(s.DeliveryTiers))
	for _, t := range s.DeliveryTiers {
		tierID, idErr := kernel.UUIDFromString(t.ID)
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

	days := make([]settings.DaySchedule, 0, len(s.WorkingHours))
	for _, d := range s.WorkingHours {
		days = append(days, settings.DaySchedule(d))
	}
	hours, err := settings.NewWorkingHours(days)
	if err != nil {
		return nil, err
	}

	return settings.RestoreStoreSettings(id, s.StoreName, tiers, hours, s.PickupEnabled, s.UpdatedAt)
}
