package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListProducts handles GET /api/v1/products - the public menu.
func (s *Server) ListProducts(c echo.Context, params servers.ListProductsParams) error {
	var orderBy queries.ProductOrder
	if params.OrderBy != nil {
		orderBy = queries.ProductOrder(*params.OrderBy)
	}
	query, err := queries.NewListProductsQuery(deref(params.Category), deref(params.OnlyAvailable), orderBy)
	if err != nil {
		return err
	}

	products, err := s.h.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			Available:   p.Available,
			Extras:      extrasOf(p.Extras),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.CreateProductJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(actor, productDetails(body))
	if err != nil {
		return err
	}
	if err = s.h.Products.Create(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedResult{
		Id:            cmd.ProductID().Bytes(),
		Notifications: notificationsOf(c),
	})
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
func (s *Server) UpdateProduct(c echo.Context, productID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(productID)
	if err != nil {
		return err
	}
	var body servers.UpdateProductJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(actor, id, productDetails(body))
	if err != nil {
		return err
	}
	if err = s.h.Products.Update(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(c echo.Context, productID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(productID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.h.Products.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

func productDetails(body servers.ProductInput) commands.ProductDetails {
	var extras []catalog.Extra
	if body.Extras != nil {
		extras = make([]catalog.Extra, len(*body.Extras))
		for i, e := range *body.Extras {
			extras[i] = catalog.Extra{Name: e.Name, Price: e.Price}
		}
	}
	return commands.ProductDetails{
		Name:        body.Name,
		Description: deref(body.Description),
		Category:    body.Category,
		Price:       body.Price,
		Available:   body.Available,
		Extras:      extras,
	}
}

func extrasOf(views []queries.ExtraView) []servers.Extra {
	out := make([]servers.Extra, len(views))
	for i, e := range views {
		out[i] = servers.Extra{Name: e.Name, Price: e.Price}
	}
	return out
}
