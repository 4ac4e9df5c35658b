package app

import "errors"

var (
	// ErrObjectNotFound indicates a command referenced a stale or unknown id.
	ErrObjectNotFound = errors.New("object not found")
	// ErrUnknownProject indicates an assignment to a project missing from the catalog.
	ErrUnknownProject = errors.New("project not found in catalog")
	// ErrUnknownArea indicates a reference to an area missing from the catalog.
	ErrUnknownArea = errors.New("area not found in catalog")
	// ErrNotArchived indicates restore or permanent delete on a non-archived object.
	ErrNotArchived = errors.New("object is not archived")
	// ErrSnoozeInPast indicates a snooze date before today.
	ErrSnoozeInPast = errors.New("snooze date cannot be in the past")
	// ErrBadSnoozeDate indicates an unparseable snooze date.
	ErrBadSnoozeDate = errors.New("snooze date must be YYYY-MM-DD")
	// ErrBadReviewKind indicates an unknown review ritual name.
	ErrBadReviewKind = errors.New("review kind must be daily or weekly")
	// ErrBadImport indicates a malformed import payload; the store is untouched.
	ErrBadImport = errors.New("import payload is invalid")
)
