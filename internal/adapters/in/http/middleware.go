package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/notify"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	actorKey     = "storefront.actor"
	collectorKey = "storefront.notifications"
)

// Authenticator resolves a bearer token to the actor behind it.
type Authenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateQuery) (access.Actor, error)
}

// Notifications attaches a fresh collector to every request so use cases
// can report back to the user through the response body.
func Notifications() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			collector := notify.NewCollector()
			c.Set(collectorKey, collector)
			c.SetRequest(c.Request().WithContext(notify.WithCollector(c.Request().Context(), collector)))
			return next(c)
		}
	}
}

// Authenticate resolves the Authorization header when present. Requests
// without one continue anonymously; operations that need an actor reject
// them through actorFrom.
func Authenticate(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return fmt.Errorf("%w: expected a bearer token", errs.ErrUnauthenticated)
			}

			query, err := queries.NewAuthenticateQuery(token)
			if err != nil {
				return err
			}
			actor, err := auth.Handle(c.Request().Context(), query)
			if err != nil {
				return err
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// RequestValidator checks requests against the OpenAPI document before
// they reach a handler. Paths outside the document pass through untouched.
func RequestValidator(swagger *openapi3.T, baseURL string) (echo.MiddlewareFunc, error) {
	doc := *swagger
	doc.Servers = nil
	router, err := legacy.NewRouter(&doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path, ok := strings.CutPrefix(req.URL.Path, baseURL)
			if !ok {
				return next(c)
			}
			routed := req.Clone(req.Context())
			routed.URL.Path = path

			route, pathParams, err := router.FindRoute(routed)
			if err != nil {
				return next(c)
			}
			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			req.Body = routed.Body
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	if reqErr, ok := err.(*openapi3filter.RequestError); ok { //nolint:errorlint // top level error only
		if reqErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reqErr.Err)
		}
		if reqErr.Err != nil {
			return fmt.Sprintf("request body: %s", reqErr.Err)
		}
	}
	return err.Error()
}

// actorFrom returns the authenticated actor or ErrUnauthenticated.
func actorFrom(c echo.Context) (access.Actor, error) {
	actor, ok := c.Get(actorKey).(access.Actor)
	if !ok {
		return access.Actor{}, fmt.Errorf("%w: sign in to continue", errs.ErrUnauthenticated)
	}
	return actor, nil
}

func notificationsOf(c echo.Context) []servers.Notification {
	collector, ok := c.Get(collectorKey).(*notify.Collector)
	if !ok {
		return []servers.Notification{}
	}
	collected := collector.Notifications()
	out := make([]servers.Notification, len(collected))
	for i, n := range collected {
		out[i] = servers.Notification{
			Kind:        servers.NotificationKind(n.Kind),
			Title:       n.Title,
			Description: n.Description,
		}
	}
	return out
}

func notified(c echo.Context) error {
	return c.JSON(http.StatusOK, servers.NotificationsResult{Notifications: notificationsOf(c)})
}
