package cpu

import (
	"math/rand"
	"time"
)

// RandomSource provides the random bytes for CXNN.
type RandomSource interface {
	Byte() byte
}

// Random is a RandomSource backed by math/rand.
type Random struct {
	rnd *rand.Rand
}

// NewRandom returns a random source for the given seed. A zero seed
// uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Byte returns a random byte.
func (r *Random) Byte() byte {
	return byte(r.rnd.Intn(0x100))
}
