package vmath

// FastRand is a xorshift64 (13, 17, 5) generator
// Deterministic for a given seed and call sequence; not safe for concurrent use
type FastRand struct {
	seed  uint64
	state uint64
	draws uint64
}

// NewFastRand seeds a generator, seed 0 is coerced to 1 since xorshift state must be non-zero
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.Reseed(seed)
	return r
}

// Reseed restarts the stream from seed and clears the draw counter
func (r *FastRand) Reseed(seed uint64) {
	r.seed = seed
	if seed == 0 {
		seed = 1
	}
	r.state = seed
	r.draws = 0
}

// Seed returns the seed the stream was started from (before coercion)
func (r *FastRand) Seed() uint64 {
	return r.seed
}

// Draws returns the number of Next calls since creation or the last Reseed
func (r *FastRand) Draws() uint64 {
	return r.draws
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	r.draws++
	return x
}

// Intn returns a value in [0,n), 0 for n <= 0 without consuming a draw
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
