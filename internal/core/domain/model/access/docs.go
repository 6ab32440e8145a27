// Package access models who may do what in the storefront.
//
// The package includes:
//   - Role: the permission class of an actor (admin, employee, motoboy, customer)
//   - Permissions: the per-employee flags an admin grants
//   - Action / ActionSet: capabilities derived from a role and its permissions
//
// AllowedActions is the single place where roles and permissions turn into
// capabilities. The order transition policy, the HTTP route guards and the
// menu endpoint all consume its result instead of checking roles themselves.
package access
