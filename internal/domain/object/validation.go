package object

import (
	"strings"
	"time"
)

const (
	minEffortMins = 1
	maxEffortMins = 480
)

// ValidateTitle checks that a title is non-empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrMissingTitle
	}
	return nil
}

// ValidateEffort checks an optional effort estimate against the 1-480 range.
func ValidateEffort(effort *int) error {
	if effort == nil {
		return nil
	}
	if *effort < minEffortMins || *effort > maxEffortMins {
		return ErrEffortOutOfRange
	}
	return nil
}

// ValidateDue rejects due dates strictly before today. The comparison is
// date-only; time of day is ignored on both sides.
func ValidateDue(due *time.Time, now time.Time) error {
	if due == nil {
		return nil
	}
	if DateOnly(*due).Before(DateOnly(now)) {
		return ErrDueInPast
	}
	return nil
}

// ValidateType checks the object type enum.
func ValidateType(t Type) error {
	for _, v := range ValidTypes() {
		if t == v {
			return nil
		}
	}
	return ErrInvalidType
}

// ValidateStatus checks the status enum.
func ValidateStatus(s Status) error {
	for _, v := range ValidStatuses() {
		if s == v {
			return nil
		}
	}
	return ErrInvalidStatus
}

// ValidateEnergy checks the energy enum.
func ValidateEnergy(e Energy) error {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return nil
	}
	return ErrInvalidEnergy
}

// ValidateCadence checks the review cadence enum.
func ValidateCadence(c Cadence) error {
	switch c {
	case CadenceDaily, CadenceWeekly:
		return nil
	}
	return ErrInvalidCadence
}

// DateOnly truncates a timestamp to its calendar date in local time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SplitTags turns a comma-separated string into trimmed, non-empty tags.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
