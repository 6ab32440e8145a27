package http

import (
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	Accounts          commands.AccountCommandHandler
	Products          commands.ProductCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	SaveDeliveryTiers commands.SaveDeliveryTiersCommandHandler
	UpdateHours       commands.UpdateWorkingHoursCommandHandler
	UpdateProfile     commands.UpdateStoreProfileCommandHandler

	// Query handlers
	MyActions        queries.MyActionsQueryHandler
	ListProducts     queries.ListProductsQueryHandler
	GetStoreSettings queries.GetStoreSettingsQueryHandler
	QuoteDeliveryFee queries.QuoteDeliveryFeeQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	StatusOptions    queries.GetOrderStatusOptionsQueryHandler
	ListEmployees    queries.ListEmployeesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}
