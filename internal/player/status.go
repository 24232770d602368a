// Package player implements the player character: movement resolution,
// the interaction state machine, sprite clip selection, and the persisted
// player record.
package player

import "fmt"

// Status is the player's per-frame behavior state. The zero value is Idle.
type Status int

const (
	StatusIdle Status = iota
	StatusWalking
	StatusInteracting
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusWalking:
		return "Walking"
	case StatusInteracting:
		return "Interacting"
	default:
		return "Unknown"
	}
}

// Direction is a four-way facing. The zero value is Downwards, the facing a
// freshly placed character holds.
type Direction int

const (
	DirectionDownwards Direction = iota
	DirectionUpwards
	DirectionLeft
	DirectionRight
)

// String returns the direction name used in save files.
func (d Direction) String() string {
	switch d {
	case DirectionDownwards:
		return "Downwards"
	case DirectionUpwards:
		return "Upwards"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the direction as its name.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirectionDownwards, DirectionUpwards, DirectionLeft, DirectionRight:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Downwards":
		*d = DirectionDownwards
	case "Upwards":
		*d = DirectionUpwards
	case "Left":
		*d = DirectionLeft
	case "Right":
		*d = DirectionRight
	default:
		return fmt.Errorf("invalid direction %q", string(text))
	}
	return nil
}
