package model

import (
	"fmt"
	"strings"
)

// Status is the resolution state of a challenge.
type Status uint8

const (
	StatusPending Status = iota
	StatusDone
	StatusMissed

	// NumStatuses is the size of the enumeration. Tables indexed by
	// Status use it to stay exhaustive.
	NumStatuses = int(iota)
)

var statusNames = [...]string{
	StatusPending: "pending",
	StatusDone:    "done",
	StatusMissed:  "missed",
}

// every Status needs a name
var _ = [1]struct{}{}[len(statusNames)-NumStatuses]

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{StatusPending, StatusDone, StatusMissed}
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool { return int(s) < NumStatuses }

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return statusNames[s]
}

// ParseStatus maps the wire name of a status to its value.
// Names are matched exactly; anything else is ErrInvalidStatus.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidStatus, name, strings.Join(statusNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
