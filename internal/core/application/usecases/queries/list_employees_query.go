package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery constructor",
)

// ListEmployeesQuery lists the store team (employees and motoboys) for the
// team panel.
type ListEmployeesQuery struct { //nolint:recvcheck //using for validation
	actor access.Actor
	guard guard.ConstructorGuard
}

func NewListEmployeesQuery(actor access.Actor) (ListEmployeesQuery, error) {
	if err := actor.Role.Validate(); err != nil {
		return ListEmployeesQuery{}, err
	}
	return ListEmployeesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}

func (q ListEmployeesQuery) Actor() access.Actor { return q.actor }

type EmployeeView struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Role        access.Role
	Permissions []string
	CreatedAt   time.Time
}

type ListEmployeesQueryHandler struct {
	db *gorm.DB
}

func NewListEmployeesQueryHandler(db *gorm.DB) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{db: db}
}

// Handle returns the team ordered by name. Requires employees.manage.
func (h ListEmployeesQueryHandler) Handle(ctx context.Context, query ListEmployeesQuery) ([]EmployeeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().Require(access.ManageEmployees); err != nil {
		return nil, err
	}

	sql, args, err := sq.Select("id", "name", "email", "role", "permissions", "created_at").
		From("users").
		Where(sq.Eq{"role": []string{access.Employee.String(), access.Motoboy.String()}}).
		OrderBy("name ASC", "email ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	team := make([]EmployeeView, 0)
	for rows.Next() {
		var (
			e           EmployeeView
			id          uuid.UUID
			role        string
			permissions pq.StringArray
		)
		if err = rows.Scan(&id, &e.Name, &e.Email, &role, &permissions, &e.CreatedAt); err != nil {
			return nil, err
		}
		if e.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if e.Role, err = access.ParseRole(role); err != nil {
			return nil, err
		}
		e.Permissions = access.PermissionsFromNames(permissions).Names()
		team = append(team, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return team, nil
}
