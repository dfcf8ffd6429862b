package trait

//go:generate mockgen -destination=mock/mock.go -package=traitmock github.com/lixenwraith/buildings/trait Source

// Source is the randomness consumed by Draw
// Implemented by vmath.FastRand
type Source interface {
	// Intn returns a uniform value in [0,n)
	Intn(n int) int
}

// Draw selects one value from table proportional to its weight
// Consumes exactly one Intn call on a valid table and none on an invalid one
func Draw[T comparable](src Source, table Table[T]) (T, error) {
	var zero T
	if err := table.Validate(); err != nil {
		return zero, err
	}

	roll := src.Intn(table.Total())
	cumulative := 0
	for _, e := range table {
		cumulative += e.Weight
		if roll < cumulative {
			return e.Value, nil
		}
	}
	// Unreachable for a Source honoring [0,n)
	return table[len(table)-1].Value, nil
}
