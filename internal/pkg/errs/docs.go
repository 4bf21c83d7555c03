// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters of the capacity service.
//
// Every type unwraps to a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...)
// so callers branch with errors.Is and never on message text. Messages are kept
// on one line.
//
// KindOf sorts any error into validation, business or infrastructure, which is
// what the HTTP layer maps to status codes.
package errs
