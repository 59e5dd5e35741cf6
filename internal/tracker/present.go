package tracker

import (
	"fmt"

	"github.com/Makepad-fr/pbc30/internal/model"
)

// IconKind is the glyph shown in a card's corner.
type IconKind uint8

const (
	IconClock IconKind = iota
	IconCheck
	IconCross
)

func (k IconKind) String() string {
	switch k {
	case IconCheck:
		return "check"
	case IconCross:
		return "cross"
	case IconClock:
		return "clock"
	}
	return fmt.Sprintf("IconKind(%d)", uint8(k))
}

// ColorKind is the accent colour of a card's title and icon.
type ColorKind uint8

const (
	ColorGray ColorKind = iota
	ColorGreen
	ColorRed
)

func (k ColorKind) String() string {
	switch k {
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	}
	return fmt.Sprintf("ColorKind(%d)", uint8(k))
}

// RotationKind is the small tilt applied to a card.
type RotationKind uint8

const (
	RotateCW1 RotationKind = iota
	RotateCCW1
	RotateCW2
	RotateCCW2
	RotateNone

	numRotations = int(iota)
)

// rotations is indexed by id mod numRotations.
var rotations = [...]struct {
	degrees int
	class   string
}{
	RotateCW1:  {1, "rotate-1"},
	RotateCCW1: {-1, "-rotate-1"},
	RotateCW2:  {2, "rotate-2"},
	RotateCCW2: {-2, "-rotate-2"},
	RotateNone: {0, "rotate-0"},
}

var _ = [1]struct{}{}[len(rotations)-numRotations]

// Degrees is the signed tilt in degrees. Unknown kinds are untilted.
func (r RotationKind) Degrees() int {
	if int(r) >= len(rotations) {
		return 0
	}
	return rotations[r].degrees
}

// Class is the utility class name used by the HTML page.
func (r RotationKind) Class() string {
	if int(r) >= len(rotations) {
		return rotations[RotateNone].class
	}
	return rotations[r].class
}

func (r RotationKind) String() string {
	if int(r) >= len(rotations) {
		return fmt.Sprintf("RotationKind(%d)", uint8(r))
	}
	if d := r.Degrees(); d != 0 {
		return fmt.Sprintf("%+d°", d)
	}
	return "0°"
}

// RotationFor picks the rotation for a challenge id. Same id, same
// rotation; ids five apart share a rotation.
func RotationFor(id int) RotationKind {
	i := id % numRotations
	if i < 0 {
		i += numRotations
	}
	return RotationKind(i)
}

type statusLook struct {
	icon  IconKind
	color ColorKind
}

// looks must cover every model.Status; the assertion below fails to
// compile when a status is added without an entry.
var looks = [...]statusLook{
	model.StatusPending: {IconClock, ColorGray},
	model.StatusDone:    {IconCheck, ColorGreen},
	model.StatusMissed:  {IconCross, ColorRed},
}

var _ = [1]struct{}{}[len(looks)-model.NumStatuses]

// Card is everything a renderer needs to draw one challenge.
type Card struct {
	ID           int
	Status       model.Status
	Icon         IconKind
	Color        ColorKind
	Rotation     RotationKind
	VisibleTitle string
}

// Present maps a challenge to its card. Pending challenges never reveal
// their title.
func Present(c model.Challenge) (Card, error) {
	if !c.Status.Valid() {
		return Card{}, fmt.Errorf("challenge %d: %w: %s", c.ID, model.ErrInvalidStatus, c.Status)
	}
	look := looks[c.Status]
	card := Card{
		ID:       c.ID,
		Status:   c.Status,
		Icon:     look.icon,
		Color:    look.color,
		Rotation: RotationFor(c.ID),
	}
	if c.Status != model.StatusPending {
		card.VisibleTitle = c.Title
	}
	return card, nil
}

// Look returns the icon and colour used for status s. ok is false for a
// status outside the enumeration.
func Look(s model.Status) (icon IconKind, color ColorKind, ok bool) {
	if !s.Valid() {
		return 0, 0, false
	}
	l := looks[s]
	return l.icon, l.color, true
}
