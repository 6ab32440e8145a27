// Package servers holds the HTTP contract of the storefront API: the models,
// the ServerInterface and echo route registration for every operation in
// openapi.yaml. It follows the layout oapi-codegen emits for echo servers;
// keep it in step with openapi.yaml by hand.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for NotificationKind.
const (
	Destructive NotificationKind = "destructive"
	Success     NotificationKind = "success"
)

// Defines values for OrderStatus.
const (
	Canceled   OrderStatus = "canceled"
	Completed  OrderStatus = "completed"
	Delivering OrderStatus = "delivering"
	Preparing  OrderStatus = "preparing"
	Received   OrderStatus = "received"
)

// Defines values for Role.
const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleMotoboy  Role = "motoboy"
)

// Defines values for ListProductsParamsOrderBy.
const (
	Name  ListProductsParamsOrderBy = "name"
	Price ListProductsParamsOrderBy = "price"
)

// Address defines model for Address.
type Address struct {
	City         string  `json:"city"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	Number       string  `json:"number"`
	Street       string  `json:"street"`
	ZipCode      *string `json:"zipCode,omitempty"`
}

// CartLine defines model for CartLine.
type CartLine struct {
	Extras    *[]string          `json:"extras,omitempty"`
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// CheckoutInput defines model for CheckoutInput.
type CheckoutInput struct {
	Address       *Address   `json:"address,omitempty"`
	DistanceKm    *float64   `json:"distanceKm,omitempty"`
	Items         []CartLine `json:"items"`
	PaymentMethod string     `json:"paymentMethod"`
	Pickup        bool       `json:"pickup"`
}

// CreatedResult defines model for CreatedResult.
type CreatedResult struct {
	Id            openapi_types.UUID `json:"id"`
	Notifications []Notification     `json:"notifications"`
}

// Credentials defines model for Credentials.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DaySchedule defines model for DaySchedule.
type DaySchedule struct {
	Closed  bool    `json:"closed"`
	Closes  *string `json:"closes,omitempty"`
	Opens   *string `json:"opens,omitempty"`
	Weekday int     `json:"weekday"`
}

// DeliveryQuote defines model for DeliveryQuote.
type DeliveryQuote struct {
	DistanceKm float64 `json:"distanceKm"`
	Fee        float64 `json:"fee"`
}

// DeliveryTier defines model for DeliveryTier.
type DeliveryTier struct {
	Fee         float64 `json:"fee"`
	MaxDistance float64 `json:"maxDistance"`
	MinDistance float64 `json:"minDistance"`
}

// DeliveryTiersInput defines model for DeliveryTiersInput.
type DeliveryTiersInput struct {
	Tiers []DeliveryTier `json:"tiers"`
}

// Employee defines model for Employee.
type Employee struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Email       string             `json:"email"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Permissions []string           `json:"permissions"`
	Role        Role               `json:"role"`
}

// EmployeeInput defines model for EmployeeInput.
type EmployeeInput struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Password    string    `json:"password"`
	Permissions *[]string `json:"permissions,omitempty"`
	Role        string    `json:"role"`
}

// Error defines model for Error.
type Error struct {
	Code          int            `json:"code"`
	Message       string         `json:"message"`
	Notifications []Notification `json:"notifications"`
}

// Extra defines model for Extra.
type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Extras    []Extra            `json:"extras"`
	Name      string             `json:"name"`
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
	Total     float64            `json:"total"`
	UnitPrice float64            `json:"unitPrice"`
}

// LoginResult defines model for LoginResult.
type LoginResult struct {
	ExpiresAt     time.Time      `json:"expiresAt"`
	Notifications []Notification `json:"notifications"`
	Token         string         `json:"token"`
	User          User           `json:"user"`
}

// MyActions defines model for MyActions.
type MyActions struct {
	Actions     []string `json:"actions"`
	Permissions []string `json:"permissions"`
	Role        Role     `json:"role"`
}

// Notification defines model for Notification.
type Notification struct {
	Description string           `json:"description"`
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
}

// NotificationKind defines model for Notification.Kind.
type NotificationKind string

// NotificationsResult defines model for NotificationsResult.
type NotificationsResult struct {
	Notifications []Notification `json:"notifications"`
}

// Order defines model for Order.
type Order struct {
	Address       *Address           `json:"address,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerId    openapi_types.UUID `json:"customerId"`
	DeliveryFee   float64            `json:"deliveryFee"`
	Id            openapi_types.UUID `json:"id"`
	Items         []LineItem         `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Pickup        bool               `json:"pickup"`
	Status        OrderStatus        `json:"status"`
	StatusLabel   string             `json:"statusLabel"`
	Subtotal      float64            `json:"subtotal"`
	Total         float64            `json:"total"`
}

// OrderResult defines model for OrderResult.
type OrderResult struct {
	Id            openapi_types.UUID `json:"id"`
	Notifications []Notification     `json:"notifications"`
	Total         float64            `json:"total"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PermissionsInput defines model for PermissionsInput.
type PermissionsInput struct {
	Permissions []string `json:"permissions"`
}

// Product defines model for Product.
type Product struct {
	Available   bool               `json:"available"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Extras      []Extra            `json:"extras"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
}

// ProductInput defines model for ProductInput.
type ProductInput struct {
	Available   bool     `json:"available"`
	Category    string   `json:"category"`
	Description *string  `json:"description,omitempty"`
	Extras      *[]Extra `json:"extras,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
}

// Registration defines model for Registration.
type Registration struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Role defines model for Role.
type Role string

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status OrderStatus `json:"status"`
}

// StatusOption defines model for StatusOption.
type StatusOption struct {
	Label  string      `json:"label"`
	Status OrderStatus `json:"status"`
}

// StatusOptions defines model for StatusOptions.
type StatusOptions struct {
	Current OrderStatus    `json:"current"`
	Options []StatusOption `json:"options"`
}

// StoreProfileInput defines model for StoreProfileInput.
type StoreProfileInput struct {
	PickupEnabled bool   `json:"pickupEnabled"`
	StoreName     string `json:"storeName"`
}

// StoreSettings defines model for StoreSettings.
type StoreSettings struct {
	DeliveryTiers []DeliveryTier `json:"deliveryTiers"`
	OpenNow       bool           `json:"openNow"`
	PickupEnabled bool           `json:"pickupEnabled"`
	StoreName     string         `json:"storeName"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	WorkingHours  []DaySchedule  `json:"workingHours"`
}

// User defines model for User.
type User struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Role  Role               `json:"role"`
}

// UserResult defines model for UserResult.
type UserResult struct {
	Notifications []Notification `json:"notifications"`
	User          User           `json:"user"`
}

// WorkingHoursInput defines model for WorkingHoursInput.
type WorkingHoursInput struct {
	Days []DaySchedule `json:"days"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status     *OrderStatus        `form:"status,omitempty" json:"status,omitempty"`
	CustomerId *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	Limit      *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	Category      *string                    `form:"category,omitempty" json:"category,omitempty"`
	OnlyAvailable *bool                      `form:"onlyAvailable,omitempty" json:"onlyAvailable,omitempty"`
	OrderBy       *ListProductsParamsOrderBy `form:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// ListProductsParamsOrderBy defines parameters for ListProducts.
type ListProductsParamsOrderBy string

// QuoteDeliveryFeeParams defines parameters for QuoteDeliveryFee.
type QuoteDeliveryFeeParams struct {
	DistanceKm float64 `form:"distanceKm" json:"distanceKm"`
}

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = Credentials

// RegisterCustomerJSONRequestBody defines body for RegisterCustomer for application/json ContentType.
type RegisterCustomerJSONRequestBody = Registration

// CreateEmployeeJSONRequestBody defines body for CreateEmployee for application/json ContentType.
type CreateEmployeeJSONRequestBody = EmployeeInput

// UpdateEmployeePermissionsJSONRequestBody defines body for UpdateEmployeePermissions for application/json ContentType.
type UpdateEmployeePermissionsJSONRequestBody = PermissionsInput

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = CheckoutInput

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = ProductInput

// UpdateProductJSONRequestBody defines body for UpdateProduct for application/json ContentType.
type UpdateProductJSONRequestBody = ProductInput

// SaveDeliveryTiersJSONRequestBody defines body for SaveDeliveryTiers for application/json ContentType.
type SaveDeliveryTiersJSONRequestBody = DeliveryTiersInput

// UpdateStoreProfileJSONRequestBody defines body for UpdateStoreProfile for application/json ContentType.
type UpdateStoreProfileJSONRequestBody = StoreProfileInput

// UpdateWorkingHoursJSONRequestBody defines body for UpdateWorkingHours for application/json ContentType.
type UpdateWorkingHoursJSONRequestBody = WorkingHoursInput

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /auth/login)
	Login(ctx echo.Context) error

	// (POST /auth/register)
	RegisterCustomer(ctx echo.Context) error

	// (GET /employees)
	ListEmployees(ctx echo.Context) error

	// (POST /employees)
	CreateEmployee(ctx echo.Context) error

	// (DELETE /employees/{userId})
	DeleteEmployee(ctx echo.Context, userId openapi_types.UUID) error

	// (PUT /employees/{userId}/permissions)
	UpdateEmployeePermissions(ctx echo.Context, userId openapi_types.UUID) error

	// (GET /me/actions)
	GetMyActions(ctx echo.Context) error

	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// (POST /orders)
	PlaceOrder(ctx echo.Context) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (PUT /orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /orders/{orderId}/status-options)
	GetOrderStatusOptions(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /products)
	ListProducts(ctx echo.Context, params ListProductsParams) error

	// (POST /products)
	CreateProduct(ctx echo.Context) error

	// (DELETE /products/{productId})
	DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error

	// (PUT /products/{productId})
	UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error

	// (GET /settings)
	GetStoreSettings(ctx echo.Context) error

	// (GET /settings/delivery-fee)
	QuoteDeliveryFee(ctx echo.Context, params QuoteDeliveryFeeParams) error

	// (PUT /settings/delivery-tiers)
	SaveDeliveryTiers(ctx echo.Context) error

	// (PUT /settings/profile)
	UpdateStoreProfile(ctx echo.Context) error

	// (PUT /settings/working-hours)
	UpdateWorkingHours(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Login(ctx)
	return err
}

// RegisterCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterCustomer(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterCustomer(ctx)
	return err
}

// ListEmployees converts echo context to params.
func (w *ServerInterfaceWrapper) ListEmployees(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListEmployees(ctx)
	return err
}

// CreateEmployee converts echo context to params.
func (w *ServerInterfaceWrapper) CreateEmployee(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateEmployee(ctx)
	return err
}

// DeleteEmployee converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteEmployee(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteEmployee(ctx, userId)
	return err
}

// UpdateEmployeePermissions converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateEmployeePermissions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateEmployeePermissions(ctx, userId)
	return err
}

// GetMyActions converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyActions(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMyActions(ctx)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlaceOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeOrderStatus(ctx, orderId)
	return err
}

// GetOrderStatusOptions converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatusOptions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderStatusOptions(ctx, orderId)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductsParams
	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// ------------- Optional query parameter "onlyAvailable" -------------

	err = runtime.BindQueryParameter("form", true, false, "onlyAvailable", ctx.QueryParams(), &params.OnlyAvailable)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter onlyAvailable: %s", err))
	}

	// ------------- Optional query parameter "orderBy" -------------

	err = runtime.BindQueryParameter("form", true, false, "orderBy", ctx.QueryParams(), &params.OrderBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderBy: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx, params)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProduct(ctx)
	return err
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteProduct(ctx, productId)
	return err
}

// UpdateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateProduct(ctx, productId)
	return err
}

// GetStoreSettings converts echo context to params.
func (w *ServerInterfaceWrapper) GetStoreSettings(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStoreSettings(ctx)
	return err
}

// QuoteDeliveryFee converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteDeliveryFee(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params QuoteDeliveryFeeParams
	// ------------- Required query parameter "distanceKm" -------------

	err = runtime.BindQueryParameter("form", true, true, "distanceKm", ctx.QueryParams(), &params.DistanceKm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter distanceKm: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.QuoteDeliveryFee(ctx, params)
	return err
}

// SaveDeliveryTiers converts echo context to params.
func (w *ServerInterfaceWrapper) SaveDeliveryTiers(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SaveDeliveryTiers(ctx)
	return err
}

// UpdateStoreProfile converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStoreProfile(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateStoreProfile(ctx)
	return err
}

// UpdateWorkingHours converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateWorkingHours(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateWorkingHours(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/login", wrapper.Login)
	router.POST(baseURL+"/auth/register", wrapper.RegisterCustomer)
	router.GET(baseURL+"/employees", wrapper.ListEmployees)
	router.POST(baseURL+"/employees", wrapper.CreateEmployee)
	router.DELETE(baseURL+"/employees/:userId", wrapper.DeleteEmployee)
	router.PUT(baseURL+"/employees/:userId/permissions", wrapper.UpdateEmployeePermissions)
	router.GET(baseURL+"/me/actions", wrapper.GetMyActions)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/orders/:orderId/status-options", wrapper.GetOrderStatusOptions)
	router.GET(baseURL+"/products", wrapper.ListProducts)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/products/:productId", wrapper.DeleteProduct)
	router.PUT(baseURL+"/products/:productId", wrapper.UpdateProduct)
	router.GET(baseURL+"/settings", wrapper.GetStoreSettings)
	router.GET(baseURL+"/settings/delivery-fee", wrapper.QuoteDeliveryFee)
	router.PUT(baseURL+"/settings/delivery-tiers", wrapper.SaveDeliveryTiers)
	router.PUT(baseURL+"/settings/profile", wrapper.UpdateStoreProfile)
	router.PUT(baseURL+"/settings/working-hours", wrapper.UpdateWorkingHours)

}
