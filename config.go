package mtrand

import (
	"github.com/rs/zerolog"

	"github.com/nozzle/mtrand/internal/rand"
)

// SeedSource supplies default seeds when none is given explicitly.
// Any source with reasonable entropy will do; it carries no correctness
// contract beyond returning a 32-bit value.
type SeedSource interface {
	Uint32() uint32
}

// Config configures a Generator.
type Config struct {
	// SeedSource supplies the seed for Generator.SeedFromSource and for the
	// implicit seeding that happens on the first draw of an unseeded generator.
	// Default: a Tausworthe source clocked from the wall time.
	SeedSource SeedSource

	// Logger receives debug events for seeding and restoring.
	// Draws never log.
	// Default: nil, which discards everything.
	Logger *zerolog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SeedSource: rand.NewClockSource(),
	}
}
