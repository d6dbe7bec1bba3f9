// Package rand provides a Mersenne Twister compatible with PHP's mt_rand.
// It reproduces both the corrected MT19937 stream (PHP 7.1+) and the legacy
// stream whose twist reads the low bit of the wrong word.
package rand

import (
	"fmt"

	"github.com/nozzle/mtrand/internal/bits"
)

const (
	// N is the length of the state vector.
	N = 624

	mtM            = 397
	matrixA        = 0x9908b0df
	initMultiplier = 0x6c078965
	temperingB     = 0x9d2c5680
	temperingC     = 0xefc60000
)

// Engine is the generator. The zero value is unseeded; call Seed
// before drawing. It is not safe for concurrent use.
type Engine struct {
	state [N]uint32
	left  int
	next  int
	mode  Mode
}

// NewEngine creates a generator seeded with seed in the given mode.
func NewEngine(seed uint32, mode Mode) *Engine {
	mt := &Engine{}
	mt.Seed(seed, mode)
	return mt
}

// Seed initializes the state from seed and primes the buffer with a reload.
// mode must be valid.
func (mt *Engine) Seed(seed uint32, mode Mode) {
	mt.mode = mode
	mt.initialize(seed)
	mt.reload()
}

// Mode returns the twist variant fixed at seed time.
func (mt *Engine) Mode() Mode {
	return mt.mode
}

// initialize fills the state with Knuth's multiplier-based sequence
// (TAOCP Vol 2, 3rd Ed, p.106).
func (mt *Engine) initialize(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < N; i++ {
		t := mt.state[i-1] ^ (mt.state[i-1] >> 30)
		mt.state[i] = initMultiplier*t + uint32(i)
	}
}

// reload regenerates all N words in place and rewinds the cursor.
func (mt *Engine) reload() {
	twist := mt.mode.twister()
	s := &mt.state

	p := 0
	for ; p < N-mtM; p++ {
		s[p] = twist(s[p+mtM], s[p], s[p+1])
	}
	for ; p < N-1; p++ {
		s[p] = twist(s[p+mtM-N], s[p], s[p+1])
	}
	s[p] = twist(s[p+mtM-N], s[p], s[0])

	mt.left = N
	mt.next = 0
}

// Uint32 returns the next tempered 32-bit word, reloading when the buffer is
// exhausted.
func (mt *Engine) Uint32() uint32 {
	if mt.left == 0 {
		mt.reload()
	}
	mt.left--

	y := mt.state[mt.next]
	mt.next++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// twist is the MT19937 recurrence: the matrix is applied when v is odd.
func twist(m, u, v uint32) uint32 {
	return m ^ (bits.MixBits(u, v) >> 1) ^ (bits.Mask(bits.LoBit(v)) & matrixA)
}

// twistPHP applies the matrix on the low bit of u instead of v. PHP shipped
// this until 7.1 and the legacy stream depends on it.
func twistPHP(m, u, v uint32) uint32 {
	return m ^ (bits.MixBits(u, v) >> 1) ^ (bits.Mask(bits.LoBit(u)) & matrixA)
}

func (m Mode) twister() func(m, u, v uint32) uint32 {
	switch m {
	case MT19937:
		return twist
	case PHP:
		return twistPHP
	}
	panic(fmt.Sprintf("rand: unknown mode %d", uint8(m)))
}
