package mcp

import (
	"errors"
	"fmt"

	"github.com/mpelle/corekeep/internal/app"
	"github.com/mpelle/corekeep/internal/domain/focus"
	"github.com/mpelle/corekeep/internal/domain/object"
)

// APIError is a tool error with a stable machine-readable code.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to stable codes. Unknown errors pass through
// unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, app.ErrObjectNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the object id against get_inbox or get_organized"}
	case errors.Is(err, focus.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the object id"}
	case errors.Is(err, app.ErrUnknownProject):
		return &APIError{Code: "UNKNOWN_PROJECT", Message: err.Error(), RecoveryHint: "List valid projects with get_catalog"}
	case errors.Is(err, app.ErrUnknownArea):
		return &APIError{Code: "UNKNOWN_AREA", Message: err.Error(), RecoveryHint: "List valid areas with get_catalog"}
	case errors.Is(err, app.ErrNotArchived):
		return &APIError{Code: "NOT_ARCHIVED", Message: err.Error(), RecoveryHint: "Archive the object first"}
	case errors.Is(err, app.ErrBadImport):
		return &APIError{Code: "BAD_IMPORT", Message: err.Error(), RecoveryHint: "Pass a JSON envelope produced by export_data"}
	case errors.Is(err, focus.ErrNothingDue):
		return &APIError{Code: "NOTHING_DUE", Message: err.Error(), RecoveryHint: "Set a due date or use set_focus with an explicit id"}
	case errors.Is(err, focus.ErrNoFocus):
		return &APIError{Code: "NO_FOCUS", Message: err.Error(), RecoveryHint: "Call pick_focus or set_focus first"}
	case isValidationError(err):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error()}
	default:
		return err
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		object.ErrMissingTitle,
		object.ErrEffortOutOfRange,
		object.ErrDueInPast,
		object.ErrInvalidType,
		object.ErrInvalidStatus,
		object.ErrInvalidEnergy,
		object.ErrInvalidCadence,
		app.ErrSnoozeInPast,
		app.ErrBadSnoozeDate,
		app.ErrBadReviewKind,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
