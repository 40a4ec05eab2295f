package entities

// CombatStats holds the combat-relevant numbers of a weapon or armor piece
type CombatStats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// Entity is one definition row from an entity registry. The Note field is
// the free-form annotation blob that may carry embedded recipe blocks.
type Entity struct {
	Ref         Ref          `json:"ref"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Icon        int          `json:"icon,omitempty"`
	Note        string       `json:"note,omitempty"`
	Stats       *CombatStats `json:"stats,omitempty"`
}
