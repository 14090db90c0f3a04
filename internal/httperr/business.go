package httperr

import (
	"errors"
	"strings"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// Operation-boundary error kinds
// ======================================================

// ValidationError lists the required fields that were missing or invalid.
type ValidationError struct {
	Missing []string
}

func (e ValidationError) Error() string {
	return "validation_failed: " + strings.Join(e.Missing, ", ")
}

func ErrValidation(fields ...string) error {
	return ValidationError{Missing: fields}
}

// FetchError wraps a store read failure; the message is surfaced verbatim.
type FetchError struct {
	Err error
}

func (e FetchError) Error() string { return e.Err.Error() }
func (e FetchError) Unwrap() error { return e.Err }

// PersistenceError wraps a rejected or failed store write.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string { return e.Err.Error() }
func (e PersistenceError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

// MessagingError reports a gateway failure. Reason is a short code,
// Detail carries whatever the gateway answered.
type MessagingError struct {
	Reason string
	Detail string
}

func (e MessagingError) Error() string {
	if e.Detail == "" {
		return "messaging: " + e.Reason
	}
	return "messaging: " + e.Reason + ": " + e.Detail
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsMessaging(err error) bool {
	var me MessagingError
	return errors.As(err, &me)
}
