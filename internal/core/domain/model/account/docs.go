// Package account models the people who use the storefront (customers and
// store staff) and the login sessions that identify them on each request.
package account
