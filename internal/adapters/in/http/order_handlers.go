package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PlaceOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) PlaceOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.PlaceOrderJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	lines := make([]services.CartLine, len(body.Items))
	for i, item := range body.Items {
		productID, idErr := uuidParam(item.ProductId)
		if idErr != nil {
			return idErr
		}
		lines[i] = services.CartLine{ProductID: productID, Quantity: item.Quantity, Extras: deref(item.Extras)}
	}
	destination, err := destinationOf(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(actor, lines, destination, body.PaymentMethod)
	if err != nil {
		return err
	}
	placed, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.OrderResult{
		Id:            placed.ID().Bytes(),
		Total:         placed.Total(),
		Notifications: notificationsOf(c),
	})
}

func destinationOf(body servers.CheckoutInput) (services.Destination, error) {
	if body.Pickup {
		return services.Destination{Address: kernel.PickupAddress()}, nil
	}
	if body.Address == nil {
		return services.Destination{}, errs.NewValueIsRequiredError("address")
	}
	if body.DistanceKm == nil {
		return services.Destination{}, errs.NewValueIsRequiredError("distanceKm")
	}
	a := body.Address
	address, err := kernel.NewAddress(a.Street, a.Number, deref(a.Complement), a.Neighborhood, a.City, deref(a.ZipCode))
	if err != nil {
		return services.Destination{}, err
	}
	return services.Destination{Address: address, DistanceKm: *body.DistanceKm}, nil
}

// ListOrders handles GET /api/v1/orders. Staff see the board; customers
// only ever see their own orders.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var customerID *kernel.UUID
	if params.CustomerId != nil {
		id, idErr := uuidParam(*params.CustomerId)
		if idErr != nil {
			return idErr
		}
		customerID = &id
	}

	query, err := queries.NewListOrdersQuery(string(deref(params.Status)), customerID, deref(params.Limit), actor)
	if err != nil {
		return err
	}
	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = orderOf(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderOf(view))
}

// GetOrderStatusOptions handles GET /api/v1/orders/{orderId}/status-options,
// the entries of the status control for the signed-in role.
func (s *Server) GetOrderStatusOptions(c echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatusOptionsQuery(id, actor)
	if err != nil {
		return err
	}
	res, err := s.h.StatusOptions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	options := make([]servers.StatusOption, len(res.Options))
	for i, o := range res.Options {
		options[i] = servers.StatusOption{Status: servers.OrderStatus(o.Status.String()), Label: o.Label}
	}
	return c.JSON(http.StatusOK, servers.StatusOptions{
		Current: servers.OrderStatus(res.Current.String()),
		Options: options,
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(orderID)
	if err != nil {
		return err
	}
	var body servers.ChangeOrderStatusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, string(body.Status), actor)
	if err != nil {
		return err
	}
	if err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

func orderOf(v queries.OrderView) servers.Order {
	items := make([]servers.LineItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.LineItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Extras:    extrasOf(item.Extras),
			Total:     item.Total,
		}
	}

	out := servers.Order{
		Id:            v.ID.Bytes(),
		CustomerId:    v.CustomerID.Bytes(),
		Status:        servers.OrderStatus(v.Status.String()),
		StatusLabel:   v.Status.Label(),
		PaymentMethod: string(v.PaymentMethod),
		Pickup:        v.Pickup,
		Items:         items,
		Subtotal:      v.Subtotal,
		DeliveryFee:   v.DeliveryFee,
		Total:         v.Total,
		CreatedAt:     v.CreatedAt,
	}
	if a := v.Address; a != nil {
		out.Address = &servers.Address{
			Street:       a.Street,
			Number:       a.Number,
			Complement:   ptr(a.Complement),
			Neighborhood: a.Neighborhood,
			City:         a.City,
			ZipCode:      ptr(a.ZipCode),
		}
	}
	return out
}
