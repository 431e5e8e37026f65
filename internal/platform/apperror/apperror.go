// Package apperror defines the error taxonomy shared by every service and
// handler: validation failures, missing authentication, missing clinic
// onboarding, rows that are absent or owned by another clinic, and opaque
// store failures. Handlers never branch on error strings; they branch on Kind.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation          Kind = "validation_error"
	KindUnauthenticated     Kind = "unauthenticated"
	KindNoTenant            Kind = "no_clinic"
	KindNotFoundOrForbidden Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindPersistence         Kind = "persistence_error"
)

// Error is the single error type crossing service boundaries. Fields is only
// populated for KindValidation. The underlying cause is only carried for
// KindPersistence and is never rendered to clients.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input", Fields: fields}
}

// ValidationField builds a single-field validation error without going
// through the struct validator, for cases like unparseable date strings.
func ValidationField(field, message string) *Error {
	return Validation(map[string][]string{field: {message}})
}

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "authentication required"}
}

// InvalidCredentials deliberately does not say whether the email or the
// password was wrong.
func InvalidCredentials() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "invalid email or password"}
}

func NoTenant() *Error {
	return &Error{Kind: KindNoTenant, Message: "no clinic associated with this account"}
}

func NotFoundOrForbidden(resource string) *Error {
	return &Error{Kind: KindNotFoundOrForbidden, Message: resource + " not found"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Persistence(cause error) *Error {
	return &Error{Kind: KindPersistence, Message: "an unexpected error occurred", cause: cause}
}

// KindOf extracts the Kind from err, or KindPersistence for unknown errors so
// that nothing internal ever reaches a client unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
