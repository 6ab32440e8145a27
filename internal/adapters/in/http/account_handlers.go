package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterCustomer handles POST /api/v1/auth/register.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var body servers.RegisterCustomerJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCustomerCommand(commands.Registration{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return err
	}
	user, err := s.h.Accounts.RegisterCustomer(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.UserResult{User: userOf(user), Notifications: notificationsOf(c)})
}

// Login handles POST /api/v1/auth/login and returns a bearer token.
func (s *Server) Login(c echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return err
	}
	session, user, err := s.h.Accounts.Login(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.LoginResult{
		Token:         session.Token(),
		ExpiresAt:     session.ExpiresAt(),
		User:          userOf(user),
		Notifications: notificationsOf(c),
	})
}

// GetMyActions handles GET /api/v1/me/actions; the client builds its
// navigation from the answer.
func (s *Server) GetMyActions(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewMyActionsQuery(actor)
	if err != nil {
		return err
	}
	res, err := s.h.MyActions.Handle(query)
	if err != nil {
		return err
	}

	actions := make([]string, len(res.Actions))
	for i, a := range res.Actions {
		actions[i] = string(a)
	}
	return c.JSON(http.StatusOK, servers.MyActions{
		Role:        servers.Role(res.Role),
		Permissions: res.Permissions,
		Actions:     actions,
	})
}

// ListEmployees handles GET /api/v1/employees.
func (s *Server) ListEmployees(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListEmployeesQuery(actor)
	if err != nil {
		return err
	}
	employees, err := s.h.ListEmployees.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Employee, len(employees))
	for i, e := range employees {
		response[i] = servers.Employee{
			Id:          e.ID.Bytes(),
			Name:        e.Name,
			Email:       e.Email,
			Role:        servers.Role(e.Role),
			Permissions: e.Permissions,
			CreatedAt:   e.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var body servers.CreateEmployeeJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateEmployeeCommand(actor, commands.Registration{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}, body.Role, deref(body.Permissions))
	if err != nil {
		return err
	}
	user, err := s.h.Accounts.CreateEmployee(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.UserResult{User: userOf(user), Notifications: notificationsOf(c)})
}

// UpdateEmployeePermissions handles PUT /api/v1/employees/{userId}/permissions.
func (s *Server) UpdateEmployeePermissions(c echo.Context, userID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(userID)
	if err != nil {
		return err
	}
	var body servers.UpdateEmployeePermissionsJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateEmployeePermissionsCommand(actor, id, body.Permissions)
	if err != nil {
		return err
	}
	if err = s.h.Accounts.UpdateEmployeePermissions(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

// DeleteEmployee handles DELETE /api/v1/employees/{userId}.
func (s *Server) DeleteEmployee(c echo.Context, userID openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(userID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteEmployeeCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.h.Accounts.DeleteEmployee(c.Request().Context(), cmd); err != nil {
		return err
	}
	return notified(c)
}

func userOf(u *account.User) servers.User {
	return servers.User{
		Id:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  servers.Role(u.Role()),
	}
}
