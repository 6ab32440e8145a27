package queries

import (
	"context"
	"errors"
	"math"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrQuoteDeliveryFeeQueryIsNotConstructed = errors.New(
	"QuoteDeliveryFeeQuery must be created via NewQuoteDeliveryFeeQuery constructor",
)

// QuoteDeliveryFeeQuery asks what delivery to a given distance costs.
type QuoteDeliveryFeeQuery struct {
	distanceKm float64
	guard      guard.ConstructorGuard
}

func NewQuoteDeliveryFeeQuery(distanceKm float64) (QuoteDeliveryFeeQuery, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return QuoteDeliveryFeeQuery{}, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, "+Inf")
	}
	return QuoteDeliveryFeeQuery{distanceKm: distanceKm, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteDeliveryFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryFeeQueryIsNotConstructed)
}

func (q QuoteDeliveryFeeQuery) DistanceKm() float64 { return q.distanceKm }

type QuoteDeliveryFeeQueryResponse struct {
	DistanceKm float64
	Fee        float64
}

// SettingsLoader returns the store settings in effect.
type SettingsLoader interface {
	Load(ctx context.Context) (*settings.StoreSettings, error)
}

// QuoteDeliveryFeeQueryHandler prices delivery from the configured tiers.
// Distances beyond the last tier return settings.ErrOutOfDeliveryArea.
type QuoteDeliveryFeeQueryHandler struct {
	loader SettingsLoader
}

func NewQuoteDeliveryFeeQueryHandler(loader SettingsLoader) QuoteDeliveryFeeQueryHandler {
	return QuoteDeliveryFeeQueryHandler{loader: loader}
}

func (h QuoteDeliveryFeeQueryHandler) Handle(
	ctx context.Context,
	query QuoteDeliveryFeeQuery,
) (QuoteDeliveryFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteDeliveryFeeQueryResponse{}, err
	}

	current, err := h.loader.Load(ctx)
	if err != nil {
		return QuoteDeliveryFeeQueryResponse{}, err
	}

	fee, err := current.QuoteDeliveryFee(query.DistanceKm())
	if err != nil {
		return QuoteDeliveryFeeQueryResponse{}, err
	}
	return QuoteDeliveryFeeQueryResponse{DistanceKm: query.DistanceKm(), Fee: fee}, nil
}
