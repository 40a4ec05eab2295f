package entities

// CatalogEntry is one row of the visible recipe catalog: the recipe itself
// plus the resolved result name and the craftability verdict for the party
// the catalog was built for. Row order is discovery order, which the list
// host relies on.
type CatalogEntry struct {
	Recipe     Recipe `json:"recipe"`
	ResultName string `json:"result_name"`
	Craftable  bool   `json:"craftable"`
	Reason     string `json:"reason,omitempty"`
}
