package unit

// UnitDropdown is one entry of the unit picker: a unit with the sub-units
// that belong to it. Field names follow the mutasi form that consumes them.
type UnitDropdown struct {
	UnitBaru    string   `json:"unit_baru"`
	SubUnitBaru []string `json:"sub_unit_baru"`
}

// Repository defines the data access methods for the unit reference table
type Repository interface {
	ListPairs() ([]Pair, error)
	PairExists(unit, subUnit string) (bool, error)
}

// Pair is a single (unit, sub-unit) row of the reference table.
type Pair struct {
	Unit    string
	SubUnit string
}
