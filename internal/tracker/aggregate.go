package tracker

import (
	"fmt"

	"github.com/Makepad-fr/pbc30/internal/model"
)

// Counts is the number of challenges per status.
type Counts struct {
	Pending int `json:"pending"`
	Done    int `json:"done"`
	Missed  int `json:"missed"`
}

// Total is the sum of all counters.
func (c Counts) Total() int { return c.Pending + c.Done + c.Missed }

// Resolved counts challenges that are no longer pending.
func (c Counts) Resolved() int { return c.Done + c.Missed }

// Of returns the counter for s.
func (c Counts) Of(s model.Status) int {
	switch s {
	case model.StatusPending:
		return c.Pending
	case model.StatusDone:
		return c.Done
	case model.StatusMissed:
		return c.Missed
	}
	return 0
}

// Aggregate counts challenges by status. Any status outside the
// enumeration rejects the whole input; partial totals are never returned.
func Aggregate(challenges []model.Challenge) (Counts, error) {
	var c Counts
	for i, ch := range challenges {
		switch ch.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusDone:
			c.Done++
		case model.StatusMissed:
			c.Missed++
		default:
			return Counts{}, fmt.Errorf("challenge %d (index %d): %w: %s", ch.ID, i, model.ErrInvalidStatus, ch.Status)
		}
	}
	return c, nil
}
