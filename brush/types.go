package brush

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode and ErrUnknownAction are returned by the Parse helpers.
var (
	ErrUnknownMode   = errors.New("brush: unknown mode")
	ErrUnknownAction = errors.New("brush: unknown action")
)

// Mode selects what a stroke edits.
type Mode int

const (
	// Wall paints or erases walls.
	Wall Mode = iota
	// Start places or removes the start marker.
	Start
	// End places or removes the end marker.
	End
)

var modeNames = [...]string{Wall: "wall", Start: "start", End: "end"}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "wall", "start" or "end" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Action selects whether a stroke adds or removes.
type Action int

const (
	// Paint adds walls or places a marker.
	Paint Action = iota
	// Erase removes walls or a marker.
	Erase
)

// ParseAction maps "paint" or "erase" (case-insensitive) to an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "paint":
		return Paint, nil
	case "erase":
		return Erase, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// String returns "paint" or "erase".
func (a Action) String() string {
	if a == Erase {
		return "erase"
	}

	return "paint"
}
