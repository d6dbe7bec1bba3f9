package mtrand

import (
	"errors"

	"github.com/nozzle/mtrand/internal/rand"
)

// ErrInvalidRange is returned by Range when max < min.
var ErrInvalidRange = errors.New("invalid range")

// ErrUnsupportedRange is returned by Range when max-min does not fit in 32 bits,
// or when a LegacyPHPTwister bound lies beyond ±2^53.
var ErrUnsupportedRange = errors.New("unsupported range")

// ErrUnknownMode is returned when a mode is neither CorrectTwister nor LegacyPHPTwister.
var ErrUnknownMode = rand.ErrUnknownMode

// ErrNotSeeded is returned when snapshotting a generator that was never seeded.
var ErrNotSeeded = errors.New("generator not seeded")

// ErrCorruptSnapshot is returned when a snapshot fails to decode or validate.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
