// Package workflow implements the offer/application/history core of the
// marketplace: skill registry, offer lifecycle, application state machine
// and history-backed reviews. Handlers stay thin; every business rule
// lives here.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Class partitions workflow failures by how the caller should react.
type Class int

const (
	// ClassValidation - malformed or out-of-range input, caller fixes the request
	ClassValidation Class = iota + 1
	// ClassNotFound - referenced entity missing or soft-deleted
	ClassNotFound
	// ClassConflict - request incompatible with current state
	ClassConflict
	// ClassTransient - storage timeout, safe to retry
	ClassTransient
	// ClassFatal - invariant violation, indicates a bug, never swallowed
	ClassFatal
)

// Error is a classified workflow failure. Sentinel values below compare
// equal under errors.Is by code, so wrapped copies still match.
type Error struct {
	Class   Class
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches by code so sentinel comparison survives wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel errors of the workflow. Controllers map these to HTTP statuses
// with HTTPStatus.
var (
	ErrSkillNotFound      = &Error{Class: ClassNotFound, Code: "skill_not_found", Message: "skill not found"}
	ErrDuplicateSkillName = &Error{Class: ClassConflict, Code: "duplicate_skill_name", Message: "a skill with this name already exists"}
	ErrSkillInUse         = &Error{Class: ClassConflict, Code: "skill_in_use", Message: "skill is still referenced by students or offers"}

	ErrCompanyNotFound = &Error{Class: ClassNotFound, Code: "company_not_found", Message: "company not found"}
	ErrStudentNotFound = &Error{Class: ClassNotFound, Code: "student_not_found", Message: "student not found"}

	ErrOfferNotFound      = &Error{Class: ClassNotFound, Code: "offer_not_found", Message: "offer not found"}
	ErrOfferClosed        = &Error{Class: ClassConflict, Code: "offer_closed", Message: "offer is not open for applications"}
	ErrStudentUnavailable = &Error{Class: ClassConflict, Code: "student_unavailable", Message: "student is not available for placement"}

	ErrDuplicateApplication = &Error{Class: ClassConflict, Code: "duplicate_application", Message: "an active application for this offer already exists"}
	ErrApplicationNotFound  = &Error{Class: ClassNotFound, Code: "application_not_found", Message: "application not found"}
	ErrInvalidTransition    = &Error{Class: ClassConflict, Code: "invalid_transition", Message: "application is not in a state that permits this transition"}

	ErrNoHistory       = &Error{Class: ClassNotFound, Code: "no_history", Message: "no placement history exists for this student and company"}
	ErrAlreadyReviewed = &Error{Class: ClassConflict, Code: "already_reviewed", Message: "every placement of this pair has already been reviewed"}
)

// Validation builds an ad-hoc validation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{
		Class:   ClassValidation,
		Code:    "validation",
		Message: fmt.Sprintf(format, args...),
	}
}

// Fatal marks an invariant violation. It is logged at creation so data
// corruption never hides behind an ordinary conflict response.
func Fatal(format string, args ...interface{}) *Error {
	e := &Error{
		Class:   ClassFatal,
		Code:    "invariant_violation",
		Message: fmt.Sprintf(format, args...),
	}
	log.Printf("FATAL workflow invariant violated: %s", e.Message)
	return e
}

// storageErr classifies a storage round-trip failure. Deadline and
// cancellation surface as transient (caller may retry); anything else is
// returned as-is and treated as an internal error by the HTTP layer.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{
			Class:   ClassTransient,
			Code:    "storage_timeout",
			Message: "storage operation timed out",
			cause:   err,
		}
	}
	return err
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// for postgres (production) and sqlite (test database).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// HTTPStatus maps a workflow error to the status its class calls for.
// Unclassified errors are internal.
func HTTPStatus(err error) int {
	var wErr *Error
	if !errors.As(err, &wErr) {
		return http.StatusInternalServerError
	}
	switch wErr.Class {
	case ClassValidation:
		return http.StatusBadRequest
	case ClassNotFound:
		return http.StatusNotFound
	case ClassConflict:
		return http.StatusConflict
	case ClassTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
