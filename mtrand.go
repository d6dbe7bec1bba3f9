// Package mtrand implements a Mersenne Twister that reproduces PHP's mt_rand
// bit for bit.
//
// Two modes are supported. CorrectTwister is standard MT19937 with unbiased
// range mapping, matching PHP 7.1 and later. LegacyPHPTwister reproduces the
// generator PHP shipped before 7.1, including its twist defect and its biased
// floating-point range scaling. Neither mode is suitable for cryptography.
//
// Basic usage:
//
//	g := mtrand.New(mtrand.DefaultConfig())
//	g.Seed(0, mtrand.CorrectTwister)
//	n := g.Rand()            // same as mt_srand(0); mt_rand()
//	d, err := g.Range(1, 6)  // same as mt_rand(1, 6)
//
// A Generator is owned by a single goroutine. Use one Generator per
// independent stream.
package mtrand

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nozzle/mtrand/internal/bits"
	"github.com/nozzle/mtrand/internal/rand"
)

// Mode selects the twist rule and range mapping of a stream.
type Mode = rand.Mode

const (
	// CorrectTwister is MT19937 as published, PHP's MT_RAND_MT19937.
	// It is the zero value of Mode.
	CorrectTwister = rand.MT19937
	// LegacyPHPTwister is the pre-7.1 generator, PHP's MT_RAND_PHP.
	LegacyPHPTwister = rand.PHP
)

// MaxRand is the largest value returned by Rand, PHP's mt_getrandmax().
const MaxRand = rand.MaxRand

// ParseMode parses a mode name ("mt19937", "php") or PHP constant value ("0", "1").
func ParseMode(s string) (Mode, error) {
	return rand.ParseMode(s)
}

// MaxValue returns MaxRand. It does not depend on the mode.
func MaxValue() int64 {
	return MaxRand
}

// Generator is a seeded mt_rand stream.
type Generator struct {
	config Config
	mt     rand.Engine
	seeded bool
}

// New creates an unseeded generator. The first draw seeds it from
// config.SeedSource in CorrectTwister mode unless Seed is called first.
func New(config Config) *Generator {
	if config.SeedSource == nil {
		config.SeedSource = rand.NewClockSource()
	}
	if config.Logger == nil {
		nop := zerolog.Nop()
		config.Logger = &nop
	}
	return &Generator{config: config}
}

// NewSeeded creates a generator seeded with seed in the given mode.
func NewSeeded(seed uint32, mode Mode) (*Generator, error) {
	g := New(DefaultConfig())
	if err := g.Seed(seed, mode); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed reinitializes the stream from seed. It is mt_srand(seed, mode).
func (g *Generator) Seed(seed uint32, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}
	g.mt.Seed(seed, mode)
	g.seeded = true
	g.config.Logger.Debug().
		Uint32("seed", seed).
		Str("mode", mode.String()).
		Msg("seeded")
	return nil
}

// SeedInt seeds from a wider integer, keeping its low 32 bits as PHP does.
// A seed of -1 is the same as 0xFFFFFFFF.
func (g *Generator) SeedInt(seed int64, mode Mode) error {
	return g.Seed(bits.ToUint32(seed), mode)
}

// SeedFromSource reinitializes the stream with a seed from the configured source.
// It is mt_srand() with no seed argument.
func (g *Generator) SeedFromSource(mode Mode) error {
	return g.Seed(g.config.SeedSource.Uint32(), mode)
}

// Seeded reports whether the generator has been seeded.
func (g *Generator) Seeded() bool {
	return g.seeded
}

// Mode returns the mode of the current stream. An unseeded generator
// reports CorrectTwister, the mode it will seed itself with.
func (g *Generator) Mode() Mode {
	return g.mt.Mode()
}

func (g *Generator) ensureSeeded() {
	if !g.seeded {
		// CorrectTwister is always valid.
		_ = g.SeedFromSource(CorrectTwister)
	}
}

// Uint32 returns the next full 32-bit tempered word.
// PHP never exposes this value directly; Rand returns it shifted right by one.
func (g *Generator) Uint32() uint32 {
	g.ensureSeeded()
	return g.mt.Uint32()
}

// Rand returns a value in [0, MaxRand]. It is mt_rand() with no arguments.
func (g *Generator) Rand() int64 {
	return int64(g.Uint32() >> 1)
}

// Range returns a value in [min, max]. It is mt_rand(min, max).
//
// CorrectTwister maps draws without bias, redrawing when needed.
// LegacyPHPTwister scales a single 31-bit draw through a double and is
// biased exactly as PHP was.
//
// Range returns ErrInvalidRange if max < min and ErrUnsupportedRange if
// max-min exceeds 32 bits. In LegacyPHPTwister mode bounds beyond ±2^53
// are also ErrUnsupportedRange, since a double cannot scale them into
// [min, max]. On error nothing is drawn.
func (g *Generator) Range(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("%w: max %d < min %d", ErrInvalidRange, max, min)
	}
	if uint64(max)-uint64(min) > rand.MaxSpan {
		return 0, fmt.Errorf("%w: span %d exceeds 32 bits", ErrUnsupportedRange, uint64(max)-uint64(min))
	}
	// An unseeded generator reports the mode it will seed itself with.
	if g.mt.Mode() == LegacyPHPTwister && !rand.ScalableBounds(min, max) {
		return 0, fmt.Errorf("%w: bounds [%d, %d] exceed ±2^53 in %s mode", ErrUnsupportedRange, min, max, LegacyPHPTwister)
	}
	g.ensureSeeded()
	return g.mt.Range(min, max), nil
}
