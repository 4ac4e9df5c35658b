package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mpelle/corekeep/internal/domain/object"
	"github.com/mpelle/corekeep/internal/domain/store"
)

// ExportPayload is the downloadable backup document. Its shape round-trips
// through Import unchanged.
type ExportPayload struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Objects     []object.Object `json:"objects"`
	ReviewLog   store.ReviewLog `json:"reviewLog"`
}

// Export snapshots the full store and review log.
func (s *Session) Export() ExportPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ExportPayload{
		GeneratedAt: s.now(),
		Objects:     s.store.Objects(),
		ReviewLog:   s.store.ReviewLog(),
	}
}

// importEnvelope distinguishes a missing objects key from an empty array.
type importEnvelope struct {
	Objects   *[]object.Object `json:"objects"`
	ReviewLog *store.ReviewLog `json:"reviewLog"`
}

// Import validates a payload and replaces the whole collection plus review
// log. Malformed payloads fail before any mutation; the store is either
// fully replaced or untouched.
func (s *Session) Import(ctx context.Context, data []byte) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var env importEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	if env.Objects == nil {
		return Result{}, fmt.Errorf("%w: missing objects array", ErrBadImport)
	}
	for i, obj := range *env.Objects {
		if err := validateImported(obj); err != nil {
			return Result{}, fmt.Errorf("%w: object %d: %v", ErrBadImport, i, err)
		}
	}

	warn := s.store.ReplaceAll(ctx, *env.Objects)
	if env.ReviewLog != nil {
		if logWarn := s.store.SetReviewLog(ctx, *env.ReviewLog); warn == nil {
			warn = logWarn
		}
	}
	return Result{Warning: warningText(warn), Stale: allViews()}, nil
}

func validateImported(obj object.Object) error {
	if obj.ID == "" {
		return fmt.Errorf("missing id")
	}
	if err := object.ValidateType(obj.Type); err != nil {
		return err
	}
	if err := object.ValidateTitle(obj.Title); err != nil {
		return err
	}
	if err := object.ValidateStatus(obj.Status); err != nil {
		return err
	}
	if err := object.ValidateEnergy(obj.EnergyLevel); err != nil {
		return err
	}
	if err := object.ValidateCadence(obj.ReviewCadence); err != nil {
		return err
	}
	if err := object.ValidateEffort(obj.EstimatedEffortMins); err != nil {
		return err
	}
	if obj.PriorityScore < 20 || obj.PriorityScore > 100 {
		return fmt.Errorf("priority score %d out of range", obj.PriorityScore)
	}
	return nil
}
