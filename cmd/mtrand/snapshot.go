package main

import (
	"fmt"
	"os"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"

	"github.com/nozzle/mtrand"
)

func saveSnapshot(g *mtrand.Generator, path, format string, log zerolog.Logger) error {
	snap, err := g.Snapshot()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		data, err = easyjson.Marshal(snap)
	case "binary":
		data, err = snap.MarshalBinary()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Debug().Str("path", path).Str("format", format).Int("bytes", len(data)).Msg("saved snapshot")
	return nil
}

func loadSnapshot(path, format string) (mtrand.Snapshot, error) {
	var snap mtrand.Snapshot

	data, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}

	switch format {
	case "json":
		err = snap.UnmarshalJSON(data)
	case "binary":
		err = snap.UnmarshalBinary(data)
	default:
		return snap, fmt.Errorf("unknown snapshot format %q", format)
	}
	return snap, err
}
