// Package errs provides the error vocabulary shared by the POD service.
//
// Each error kind has a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound), a struct carrying the offending
// parameter, and constructors with and without a cause. The structs unwrap to
// their sentinel, so callers classify with errors.Is and the HTTP adapter maps
// the whole validation family to 400 and ErrObjectNotFound to 404.
package errs
