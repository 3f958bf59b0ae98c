// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every error type wraps one sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound, ErrObjectAlreadyExists,
// ErrVersionIsInvalid) so callers can classify failures with errors.Is while
// still reading the parameter name and cause from the concrete type. The HTTP
// adapter maps the sentinels onto status codes.
package errs
