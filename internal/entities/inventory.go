package entities

// Snapshot is a point-in-time view of one party's inventory. Quantities is
// keyed by Ref.String(). Craftability evaluation reads a snapshot, never the
// live store, so evaluating twice without a mutation gives the same answer.
type Snapshot struct {
	Quantities map[string]int `json:"quantities"`
	Currency   int            `json:"currency"`
}

// QuantityOf returns the held quantity for a ref, zero when absent
func (s Snapshot) QuantityOf(ref Ref) int {
	return s.Quantities[ref.String()]
}

// Has reports whether at least one unit of the ref is held
func (s Snapshot) Has(ref Ref) bool {
	return s.QuantityOf(ref) > 0
}
