package interview

import (
	"context"
	"time"
)

// conflictWindow is the half-width of the double-booking window: no two
// active interviews for one candidate may be scheduled within 30 minutes of
// each other.
const conflictWindow = 30 * time.Minute

// hasConflict reports whether the candidate already has an active scheduled
// or rescheduled interview inside the ±30 minute window around proposed.
// excludeID skips the interview being updated.
//
// The check-then-insert sequence is not atomic: the store provides no
// multi-document transaction, so two concurrent creates for nearby slots can
// both pass this check. Accepted trade-off; see DESIGN.md.
func (s *DefaultSchedulingService) hasConflict(ctx context.Context, candidateID string, proposed time.Time, excludeID string) (bool, error) {
	count, err := s.Repo.CountConflicts(ctx, candidateID, proposed.Add(-conflictWindow), proposed.Add(conflictWindow), excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
