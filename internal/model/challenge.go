package model

import "time"

// Challenge is one day of the challenge board.
// Values are never mutated once loaded.
type Challenge struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status" yaml:"status"`
}

// Snapshot is an immutable, ordered collection of challenges.
// Replacing the collection means building a new Snapshot.
type Snapshot struct {
	source     string
	loadedAt   time.Time
	challenges []Challenge
}

// NewSnapshot copies challenges so later changes to the caller's slice
// are not observed.
func NewSnapshot(source string, loadedAt time.Time, challenges []Challenge) Snapshot {
	cp := make([]Challenge, len(challenges))
	copy(cp, challenges)
	return Snapshot{source: source, loadedAt: loadedAt, challenges: cp}
}

// Source names where the collection came from (file path or "embedded").
func (s Snapshot) Source() string { return s.source }

// LoadedAt is when the collection was read.
func (s Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Len returns the number of challenges.
func (s Snapshot) Len() int { return len(s.challenges) }

// Challenges returns a copy of the collection in input order.
func (s Snapshot) Challenges() []Challenge {
	cp := make([]Challenge, len(s.challenges))
	copy(cp, s.challenges)
	return cp
}
