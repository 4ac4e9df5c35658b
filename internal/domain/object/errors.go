package object

import "errors"

var (
	// ErrMissingTitle indicates a capture or edit without a title.
	ErrMissingTitle = errors.New("title is required")
	// ErrEffortOutOfRange indicates an effort estimate outside 1-480 minutes.
	ErrEffortOutOfRange = errors.New("estimated effort must be between 1 and 480 minutes")
	// ErrDueInPast indicates a due date before today.
	ErrDueInPast = errors.New("due date cannot be in the past")
	// ErrInvalidType indicates an unknown object type.
	ErrInvalidType = errors.New("invalid object type")
	// ErrInvalidStatus indicates an unknown status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidEnergy indicates an unknown energy level.
	ErrInvalidEnergy = errors.New("invalid energy level")
	// ErrInvalidCadence indicates an unknown review cadence.
	ErrInvalidCadence = errors.New("invalid review cadence")
)
