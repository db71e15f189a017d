package splitmix

// Generator constants.
const (
	// Gamma is the odd increment applied to the state on every draw.
	Gamma uint64 = 0x9E3779B97F4A7C15

	mix1 uint64 = 0xBF58476D1CE4E5B9
	mix2 uint64 = 0x94D049BB133111EB
)

// Source is a seeded SplitMix64 generator.
//
// A Source is not safe for concurrent use; each worker owns its own.
type Source struct {
	state uint64
}

// New creates a source seeded with seed.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Next advances the state and returns the mixed value.
func (s *Source) Next() uint64 {
	s.state += Gamma
	return Mix(s.state)
}

// Mix applies the SplitMix64 avalanche transform to z.
func Mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

// WorkerSeed returns the seed for worker t given the run's base seed.
// Addition wraps, so every base seed is valid.
func WorkerSeed(base uint64, worker int) uint64 {
	return base + uint64(worker)
}
