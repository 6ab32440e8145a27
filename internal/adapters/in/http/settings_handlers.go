package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetStoreSettings handles GET /api/v1/settings.
func (s *Server) GetStoreSettings(c echo.Context) error {
	res, err := s.h.GetStoreSettings.Handle(c.Request().Context(), queries.NewGetStoreSettingsQuery())
	if err != nil {
		return err
	}

	tiers := make([]servers.DeliveryTier, len(res.DeliveryTiers))
	for i, t := range res.DeliveryTiers {
		tiers[i] = servers.DeliveryTier{MinDistance: t.MinDistance, MaxDistance: t.MaxDistance, Fee: t.Fee}
	}
	days := make([]servers.DaySchedule, len(res.WorkingHours))
	for i, d := range res.WorkingHours {
		days[i] = servers.DaySchedule{
			Weekday: int(d.Weekday),
			Opens:   ptr(d.Opens),
			Closes:  ptr(d.Closes),
			Closed:  d.Closed,
		}
	}

	return c.JSON(http.StatusOK, servers.StoreSettings{
		StoreName:     res.StoreName,
		PickupEnabled: res.PickupEnabled,
		OpenNow:       res.OpenNow,
		DeliveryTiers: tiers,
		WorkingHours:  days,
		UpdatedAt:     res.UpdatedAt,
	})
}

// QuoteDeliveryFee handles GET /api/v1/settings/delivery-fee.
func (s *Server) QuoteDeliveryFee(c echo.Context, params servers.QuoteDeliveryFeeParams) error {
	query, err := queries.NewQuoteDeliveryFeeQuery(params.DistanceKm)
	if err != nil {
		return err
	}
	res, err := s.h.QuoteDeliveryFee.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.DeliveryQuote{DistanceKm: res.DistanceKm, Fee: res.Fee})
}

// SaveDeliveryTiers handles PUT /api/v1/settings/delivery-tiers. An invalid
// table is answered with 422 and the "Invalid delivery tiers" notification.
func (s *Server) SaveDeliveryTiers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.SaveDeliveryTiersJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	tiers := make([]settings.DeliveryTier, len(body.Tiers))
	for i, t := range body.Tiers {
		tiers[i] = settings.DeliveryTier{MinDistance: t.MinDistance, MaxDistance: t.MaxDistance, Fee: t.Fee}
	}
	cmd, err := commands.NewSaveDeliveryTiersCommand(actor, tiers)
	if err != nil {
		return err
	}
	if err = s.h.SaveDeliveryTiers.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

// UpdateWorkingHours handles PUT /api/v1/settings/working-hours.
func (s *Server) UpdateWorkingHours(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.UpdateWorkingHoursJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	days := make([]settings.DaySchedule, len(body.Days))
	for i, d := range body.Days {
		days[i] = settings.DaySchedule{
			Weekday: time.Weekday(d.Weekday),
			Opens:   deref(d.Opens),
			Closes:  deref(d.Closes),
			Closed:  d.Closed,
		}
	}
	cmd, err := commands.NewUpdateWorkingHoursCommand(actor, days)
	if err != nil {
		return err
	}
	if err = s.h.UpdateHours.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

// UpdateStoreProfile handles PUT /api/v1/settings/profile.
func (s *Server) UpdateStoreProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.UpdateStoreProfileJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStoreProfileCommand(actor, body.StoreName, body.PickupEnabled)
	if err != nil {
		return err
	}
	if err = s.h.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}
