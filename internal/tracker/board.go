// Package tracker derives everything shown on the challenge board from a
// loaded snapshot. All functions here are pure.
package tracker

import (
	"time"

	"github.com/Makepad-fr/pbc30/internal/model"
)

// Board is the full presentation of one snapshot: the summary strip and
// one card per challenge, in input order.
type Board struct {
	Source   string
	LoadedAt time.Time
	Counts   Counts
	Cards    []Card
}

// Build aggregates and presents every challenge of s.
func Build(s model.Snapshot) (Board, error) {
	challenges := s.Challenges()
	counts, err := Aggregate(challenges)
	if err != nil {
		return Board{}, err
	}
	cards := make([]Card, 0, len(challenges))
	for _, ch := range challenges {
		card, err := Present(ch)
		if err != nil {
			return Board{}, err
		}
		cards = append(cards, card)
	}
	return Board{
		Source:   s.Source(),
		LoadedAt: s.LoadedAt(),
		Counts:   counts,
		Cards:    cards,
	}, nil
}

// Group splits the cards by status, keeping input order inside each
// group. Groups are ordered done, pending, missed like the summary strip.
func (b Board) Group() []CardGroup {
	order := SummaryOrder()
	groups := make([]CardGroup, len(order))
	for i, s := range order {
		groups[i].Status = s
	}
	for _, c := range b.Cards {
		for i := range groups {
			if groups[i].Status == c.Status {
				groups[i].Cards = append(groups[i].Cards, c)
				break
			}
		}
	}
	return groups
}

// CardGroup is the set of cards sharing a status.
type CardGroup struct {
	Status model.Status
	Cards  []Card
}

// SummaryOrder is the order statuses appear in the summary strip.
func SummaryOrder() []model.Status {
	return []model.Status{model.StatusDone, model.StatusPending, model.StatusMissed}
}
