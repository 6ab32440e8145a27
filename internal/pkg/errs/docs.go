// Package errs holds the typed errors shared by the storefront domain,
// its use cases and the adapters that translate them to HTTP statuses.
//
// Every type pairs with a sentinel so callers classify with errors.Is and
// never with string matching:
//
//	ObjectNotFoundError     ErrObjectNotFound
//	ValueIsInvalidError     ErrValueIsInvalid
//	ValueIsOutOfRangeError  ErrValueIsOutOfRange
//	ValueIsRequiredError    ErrValueIsRequired
//	VersionIsInvalidError   ErrVersionIsInvalid
//	PolicyViolationError    ErrPolicyViolation
//	AccessDeniedError       ErrAccessDenied
//
// ErrUnauthenticated has no struct; wrap it with fmt.Errorf when context
// is useful.
//
// Values embedded in messages are sanitized, so user input such as a
// street name with a line break cannot forge extra log lines.
package errs
