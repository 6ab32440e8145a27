package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"storefront/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BaseURL is where the API is mounted.
const BaseURL = "/api/v1"

// Mount wires the API, its middleware chain, the documentation page and
// the health check into e.
func Mount(e *echo.Echo, server *Server, auth Authenticator, logger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	validator, err := RequestValidator(swagger, BaseURL)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	api := e.Group(BaseURL, Notifications(), Authenticate(auth), validator)
	servers.RegisterHandlers(api, server)

	registerDocs(swagger)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}

// openAPIDoc serves the OpenAPI document to the swagger UI.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var docsOnce sync.Once

func registerDocs(swagger *openapi3.T) {
	docsOnce.Do(func() {
		raw, err := json.Marshal(swagger)
		if err != nil {
			raw = []byte("{}")
		}
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
}
