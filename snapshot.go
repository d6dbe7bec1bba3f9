package mtrand

import (
	"encoding/binary"
	"fmt"

	"github.com/nozzle/mtrand/internal/rand"
)

// Snapshot is the exact position of a stream: the 624 state words, the
// cursor and the mode. Restoring it resumes the stream where it was taken.
type Snapshot rand.State

const (
	snapshotVersion = 1
	snapshotHeader  = 6
	snapshotSize    = snapshotHeader + 4*rand.N
)

// Snapshot returns the current position of the stream.
func (g *Generator) Snapshot() (Snapshot, error) {
	if !g.seeded {
		return Snapshot{}, ErrNotSeeded
	}
	return Snapshot(g.mt.Save()), nil
}

// Restore resumes the stream at s. An invalid snapshot returns
// ErrCorruptSnapshot and leaves the generator unchanged.
func (g *Generator) Restore(s Snapshot) error {
	if err := g.mt.Load(rand.State(s)); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	g.seeded = true
	g.config.Logger.Debug().
		Str("mode", s.Mode.String()).
		Int("left", s.Left).
		Msg("restored")
	return nil
}

// Validate checks the cursor and mode of s.
func (s *Snapshot) Validate() error {
	if err := (*rand.State)(s).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return nil
}

// MarshalBinary encodes s as a version byte, a mode byte, left and next as
// little-endian uint16, then the state words as little-endian uint32.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, snapshotSize)
	b[0] = snapshotVersion
	b[1] = byte(s.Mode)
	binary.LittleEndian.PutUint16(b[2:], uint16(s.Left))
	binary.LittleEndian.PutUint16(b[4:], uint16(s.Next))
	for i, w := range s.Words {
		binary.LittleEndian.PutUint32(b[snapshotHeader+4*i:], w)
	}
	return b, nil
}

// UnmarshalBinary decodes the format written by MarshalBinary.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotSize {
		return fmt.Errorf("%w: length %d, want %d", ErrCorruptSnapshot, len(data), snapshotSize)
	}
	if data[0] != snapshotVersion {
		return fmt.Errorf("%w: version %d", ErrCorruptSnapshot, data[0])
	}
	var out Snapshot
	out.Mode = Mode(data[1])
	out.Left = int(binary.LittleEndian.Uint16(data[2:]))
	out.Next = int(binary.LittleEndian.Uint16(data[4:]))
	for i := range out.Words {
		out.Words[i] = binary.LittleEndian.Uint32(data[snapshotHeader+4*i:])
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}
