package player

// Position is a save-file point in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Data is the persisted player record. Direction round-trips through its
// text form, so the file stays readable and hand-editable.
type Data struct {
	Name      string    `json:"name"`
	Direction Direction `json:"player_direction"`
	Position  Position  `json:"player_position"`
}
