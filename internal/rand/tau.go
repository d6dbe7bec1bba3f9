package rand

import (
	"sync/atomic"
	"time"
)

// TauState is the three-component Tausworthe register behind TauSource.
// It only produces seeds; draws never read it.
type TauState [3]int64

// NewTauState expands a 64-bit seed (usually clock-derived) into the three
// registers and discards the first outputs, which still correlate with it.
func NewTauState(seed int64) TauState {
	// Spread the seed over the three registers with an LCG step
	s := TauState{}
	s[0] = seed
	if s[0] == 0 {
		s[0] = 1
	}
	s[1] = s[0]*6364136223846793005 + 1442695040888963407
	s[2] = s[1]*6364136223846793005 + 1442695040888963407
	// Clock seeds share high bits; decorrelate them before use
	for i := 0; i < 10; i++ {
		TauInt(&s)
	}
	return s
}

// TauInt advances the registers and returns the next candidate seed bits.
func TauInt(state *TauState) int32 {
	state[0] = (((state[0] & 4294967294) << 12) & 0xFFFFFFFF) ^
		((((state[0] << 13) & 0xFFFFFFFF) ^ state[0]) >> 19)
	state[1] = (((state[1] & 4294967288) << 4) & 0xFFFFFFFF) ^
		((((state[1] << 2) & 0xFFFFFFFF) ^ state[1]) >> 25)
	state[2] = (((state[2] & 4294967280) << 17) & 0xFFFFFFFF) ^
		((((state[2] << 3) & 0xFFFFFFFF) ^ state[2]) >> 11)
	return int32(state[0] ^ state[1] ^ state[2])
}

// TauSource supplies default seeds. It is predictable and meant only to stand
// in for a host's weak RNG; it is not safe for concurrent use.
type TauSource struct {
	state TauState
}

// NewTauSource creates a seed source with a fixed starting point.
func NewTauSource(seed int64) *TauSource {
	return &TauSource{state: NewTauState(seed)}
}

var clockSeq atomic.Uint64

// NewClockSource creates a seed source from the wall clock. A process-wide
// sequence number keeps sources created in the same tick apart.
func NewClockSource() *TauSource {
	seq := clockSeq.Add(1)
	return NewTauSource(time.Now().UnixNano() ^ int64(seq*0x9e3779b97f4a7c15))
}

// Uint32 returns a seed in [0, 2^32).
func (s *TauSource) Uint32() uint32 {
	return uint32(TauInt(&s.state))
}
