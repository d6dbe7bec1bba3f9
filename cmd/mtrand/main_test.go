package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/mtrand"
)

func baseOptions() options {
	return options{
		seedSet: true,
		mode:    mtrand.CorrectTwister,
		count:   5,
		max:     mtrand.MaxValue(),
		streams: 1,
		format:  "json",
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestRunPrintsSequence(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions()
	opts.mode = mtrand.LegacyPHPTwister

	require.NoError(t, run(opts, &out, zerolog.Nop()))
	assert.Equal(t, []string{"963932192", "1273124119", "1535857466", "324735766", "1294424481"}, lines(out.String()))
}

func TestRunRanged(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions()
	opts.ranged = true
	opts.min, opts.max = 1, 6
	opts.count = 10

	require.NoError(t, run(opts, &out, zerolog.Nop()))
	assert.Equal(t, []string{"3", "4", "6", "1", "2", "4", "2", "2", "2", "4"}, lines(out.String()))
}

func TestRunInvalidRange(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions()
	opts.ranged = true
	opts.min, opts.max = 6, 1

	err := run(opts, &out, zerolog.Nop())
	assert.ErrorIs(t, err, mtrand.ErrInvalidRange)
}

func TestRunStreams(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions()
	opts.seed = 0
	opts.count = 2
	opts.streams = 3

	require.NoError(t, run(opts, &out, zerolog.Nop()))
	got := lines(out.String())
	require.Len(t, got, 9)
	assert.Equal(t, "# stream 0", got[0])
	assert.Equal(t, []string{"1178568022", "1273124119"}, got[1:3])
	assert.Equal(t, "# stream 1", got[3])
	assert.Equal(t, "# stream 2", got[6])

	// Stream 1 is the single stream seeded with 1.
	var single bytes.Buffer
	opts.streams = 1
	opts.seed = 1
	require.NoError(t, run(opts, &single, zerolog.Nop()))
	assert.Equal(t, lines(single.String()), got[4:6])
}

func TestRunStreamsNeedSeed(t *testing.T) {
	opts := baseOptions()
	opts.seedSet = false
	opts.streams = 2
	assert.Error(t, run(opts, &bytes.Buffer{}, zerolog.Nop()))
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	opts := baseOptions()
	opts.seed = 99
	opts.ranged = true
	opts.min, opts.max = 1, 6
	opts.count = 60000
	opts.buckets = 6

	require.NoError(t, run(opts, &out, zerolog.Nop()))
	assert.Contains(t, out.String(), "samples=60000 buckets=6")
}

func TestRunSaveRestore(t *testing.T) {
	for _, format := range []string{"json", "binary"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snap")

			var first bytes.Buffer
			opts := baseOptions()
			opts.count = 700
			opts.save = path
			opts.format = format
			require.NoError(t, run(opts, &first, zerolog.Nop()))

			var resumed bytes.Buffer
			opts.save = ""
			opts.restore = path
			opts.count = 10
			require.NoError(t, run(opts, &resumed, zerolog.Nop()))

			var straight bytes.Buffer
			opts.restore = ""
			opts.count = 710
			require.NoError(t, run(opts, &straight, zerolog.Nop()))

			assert.Equal(t, lines(straight.String())[700:], lines(resumed.String()))
		})
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := baseOptions()
	opts.count = -1
	assert.Error(t, run(opts, &bytes.Buffer{}, zerolog.Nop()))

	opts = baseOptions()
	opts.streams = 0
	assert.Error(t, run(opts, &bytes.Buffer{}, zerolog.Nop()))

	opts = baseOptions()
	opts.save = "x"
	opts.format = "yaml"
	assert.Error(t, run(opts, &bytes.Buffer{}, zerolog.Nop()))
}
