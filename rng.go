package spriteforge

// RNG is a deterministic pseudo-random number stream seeded from an
// integer. Every piece of generation randomness in this module flows
// through an RNG instance; there is no hidden global state, and two
// instances created from the same seed always produce the same
// sequence.
//
// The algorithm is xorshift64* (Marsaglia xorshift with the standard
// odd multiplier so the high bits are well distributed). It is fixed on
// purpose: golden-output tests pin exact pixel values, so the generator
// must produce identical sequences on every platform and in every
// future version of this module. Do not change the shift constants or
// the multiplier without regenerating every golden reference.
type RNG struct {
	state uint64
}

// NewRNG creates an independent generator from seed. A zero seed is
// remapped to a fixed non-zero constant, since xorshift has an
// all-zero fixed point.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &RNG{state: s}
}

// Next returns the next raw 64-bit value in the stream.
func (r *RNG) Next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// Float64 returns the next value in [0, 1), using the top 53 bits of
// Next so the result is exactly representable.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// IntBetween returns an integer in [min, max] inclusive. If max <= min
// it returns min.
func (r *RNG) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	span := uint64(max - min + 1)
	return min + int(r.Next()%span)
}

// Bool returns true with the given probability (0 always false, 1
// always true).
func (r *RNG) Bool(probability float64) bool {
	return r.Float64() < probability
}

// Pick returns a deterministic choice among n alternatives, as an index
// in [0, n). It returns 0 when n <= 0.
func (r *RNG) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
