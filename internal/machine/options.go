package machine

import (
	"math/rand/v2"
	"time"
)

// Quirks selects between the behaviors of historical CHIP-8 interpreters.
// The zero value is the modern (CHIP-48 / SUPER-CHIP derived) behavior.
type Quirks struct {
	// ShiftUsesVY makes 8xy6 and 8xyE shift Vy and store the result in Vx,
	// as the original COSMAC VIP interpreter did. Otherwise Vx is shifted
	// in place and Vy is ignored.
	ShiftUsesVY bool

	// LoadStoreIncrementsI makes Fx55 and Fx65 leave I pointing past the last
	// register transferred (I += x + 1).
	LoadStoreIncrementsI bool

	// LogicResetsVF makes 8xy1, 8xy2 and 8xy3 clear VF.
	LogicResetsVF bool
}

// RandomSource provides the random numbers consumed by Cxkk.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Uint32() uint32
}

// Option configures a Machine.
type Option func(*Machine)

// WithQuirks sets the interpreter quirks.
func WithQuirks(quirks Quirks) Option {
	return func(m *Machine) {
		m.quirks = quirks
	}
}

// WithRandom sets the random source used by the random opcode.
func WithRandom(src RandomSource) Option {
	return func(m *Machine) {
		m.rnd = src
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed uint64) Option {
	return WithRandom(newRandom(seed))
}

func newRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
