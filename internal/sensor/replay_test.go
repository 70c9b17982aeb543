package sensor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayReadsRows(t *testing.T) {
	input := "front,rear\n# warmup\n30.5, 31\n-2,4.25\n"
	r := NewReplay(strings.NewReader(input), zerolog.Nop())
	ctx := context.Background()

	got, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Reading{Front: 30.5, Rear: 31}, got)

	got, err = r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Reading{Front: -2, Rear: 4.25}, got)

	_, err = r.Next(ctx)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestReplayRejectsBadRow(t *testing.T) {
	r := NewReplay(strings.NewReader("1,2\nx,3\n"), zerolog.Nop())
	_, err := r.Next(context.Background())
	require.NoError(t, err)

	_, err = r.Next(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReplayRejectsNonFinite(t *testing.T) {
	r := NewReplay(strings.NewReader("1,2\nNaN,3\n"), zerolog.Nop())
	_, err := r.Next(context.Background())
	require.NoError(t, err)

	_, err = r.Next(context.Background())
	assert.Error(t, err)
}

func TestReplayShortRow(t *testing.T) {
	r := NewReplay(strings.NewReader("1,2\n3\n"), zerolog.Nop())
	_, err := r.Next(context.Background())
	require.NoError(t, err)

	_, err = r.Next(context.Background())
	assert.Error(t, err)
}

func TestOpenReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte("40,41\n"), 0o644))

	r, err := OpenReplay(path, zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Reading{Front: 40, Rear: 41}, got)

	_, err = OpenReplay(filepath.Join(t.TempDir(), "missing.csv"), zerolog.Nop())
	assert.Error(t, err)
}
