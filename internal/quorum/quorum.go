// Package quorum decides when enough distinct users asked to remove a report.
package quorum

import (
	"fmt"

	"github.com/google/uuid"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

// DefaultThreshold is the number of distinct delete requests that removes
// a report without its author.
const DefaultThreshold = 3

type Tracker struct {
	threshold int
}

func NewTracker(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold}
}

func (t *Tracker) Threshold() int { return t.threshold }

// Request records userID's vote on r. A second vote from the same user
// fails with ErrAlreadyRequested and leaves r untouched. The user set and
// the counter are updated together; callers must hold the report lock (or
// row lock) for the whole read-modify-write.
func (t *Tracker) Request(r *domain.Report, userID uuid.UUID) (reached bool, err error) {
	const op = "quorum.Request"

	if r == nil || userID == uuid.Nil {
		return false, fmt.Errorf("%s: %w", op, e.ErrPrecondition)
	}
	if r.DeleteRequestCount != len(r.DeleteRequestUserIDs) {
		return false, fmt.Errorf("%s: report %s has count %d but %d voters: %w",
			op, r.ID, r.DeleteRequestCount, len(r.DeleteRequestUserIDs), e.ErrPrecondition)
	}
	if r.HasDeleteRequestFrom(userID) {
		return false, fmt.Errorf("%s: %w", op, e.ErrAlreadyRequested)
	}

	voters := make([]uuid.UUID, len(r.DeleteRequestUserIDs), len(r.DeleteRequestUserIDs)+1)
	copy(voters, r.DeleteRequestUserIDs)
	r.DeleteRequestUserIDs = append(voters, userID)
	r.DeleteRequestCount = len(r.DeleteRequestUserIDs)

	return r.DeleteRequestCount >= t.threshold, nil
}
