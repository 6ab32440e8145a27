package queries

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/guard"
)

var ErrMyActionsQueryIsNotConstructed = errors.New(
	"MyActionsQuery must be created via NewMyActionsQuery constructor",
)

// MyActionsQuery asks what the signed-in user may do; the front end builds
// its menu from the answer.
type MyActionsQuery struct { //nolint:recvcheck //using for validation
	actor access.Actor
	guard guard.ConstructorGuard
}

func NewMyActionsQuery(actor access.Actor) (MyActionsQuery, error) {
	if err := actor.Role.Validate(); err != nil {
		return MyActionsQuery{}, err
	}
	return MyActionsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q MyActionsQuery) Validate() error {
	return q.guard.Validate(ErrMyActionsQueryIsNotConstructed)
}

type MyActionsQueryResponse struct {
	Role        access.Role
	Permissions []string
	Actions     []access.Action
}

// MyActionsQueryHandler answers from the actor alone.
type MyActionsQueryHandler struct{}

func NewMyActionsQueryHandler() MyActionsQueryHandler {
	return MyActionsQueryHandler{}
}

func (h MyActionsQueryHandler) Handle(query MyActionsQuery) (MyActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MyActionsQueryResponse{}, err
	}
	return MyActionsQueryResponse{
		Role:        query.actor.Role,
		Permissions: query.actor.Permissions.Names(),
		Actions:     query.actor.Actions().Sorted(),
	}, nil
}
