// Package errs provides standardized error types for the delivery-package engine.
//
// Each validation error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the details, constructors
// with and without a cause, and an Unwrap method returning the sentinel so callers can
// classify failures with errors.Is.
//
// BusinessRuleError covers the domain rule violations that reach the end user. It keeps a
// message code and positional arguments next to the sentinel; the HTTP adapter resolves the
// code through the message catalog.
package errs
