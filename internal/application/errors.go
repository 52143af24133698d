package application

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a service returns wraps exactly one of these.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUnprocessable = errors.New("unprocessable")
	ErrInternal      = errors.New("internal error")
)

var (
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrPlanNotFound    = fmt.Errorf("plan %w", ErrNotFound)
	ErrReportNotFound  = fmt.Errorf("report %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrPermissionDenied = fmt.Errorf("%w: caller cannot edit this project", ErrForbidden)
	ErrAdminOnly        = fmt.Errorf("%w: admin only", ErrForbidden)

	ErrDocumentExists   = fmt.Errorf("%w: document already exists", ErrConflict)
	ErrAlreadySubmitted = fmt.Errorf("%w: document already submitted", ErrConflict)
	ErrNotEditable      = fmt.Errorf("%w: document is pending or accepted", ErrConflict)
	ErrNotSubmitted     = fmt.Errorf("%w: document is not submitted", ErrConflict)
	ErrAlreadyAccepted  = fmt.Errorf("%w: document already accepted", ErrConflict)
	ErrPlanNotAccepted  = fmt.Errorf("%w: plan is not accepted", ErrConflict)

	ErrWriterInMembers     = fmt.Errorf("%w: writer must not be listed as a member", ErrUnprocessable)
	ErrDuplicateMember     = fmt.Errorf("%w: member listed twice", ErrUnprocessable)
	ErrPersonalWithMembers = fmt.Errorf("%w: personal project cannot have members", ErrUnprocessable)
	ErrTeamWithoutMembers  = fmt.Errorf("%w: team or club project needs members", ErrUnprocessable)
	ErrInvalidCategory     = fmt.Errorf("%w: unknown category", ErrUnprocessable)
	ErrInvalidDocumentType = fmt.Errorf("%w: unknown document type", ErrUnprocessable)
	ErrMissingRole         = fmt.Errorf("%w: writer role is required", ErrUnprocessable)
	ErrPlanDatesMissing    = fmt.Errorf("%w: plan start and end dates are required", ErrUnprocessable)
	ErrPlanPeriod          = fmt.Errorf("%w: plan ends before it starts", ErrUnprocessable)
)

// Kind names the error kind of err, or "" when err is nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrConflict):
		return "Conflict"
	case errors.Is(err, ErrUnprocessable):
		return "Unprocessable"
	default:
		return "Internal"
	}
}

// internal passes kinded errors through and wraps anything else as ErrInternal.
func internal(err error) error {
	if err == nil || errors.Is(err, ErrInternal) {
		return err
	}
	if Kind(err) != "Internal" {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
