package sensor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Replay reads "front,rear" rows from CSV. A first row whose fields are not
// numbers is treated as a header; lines starting with '#' are skipped.
type Replay struct {
	reader *csv.Reader
	closer io.Closer
	line   int
	logger zerolog.Logger
}

// NewReplay wraps r. The caller keeps ownership of r.
func NewReplay(r io.Reader, logger zerolog.Logger) *Replay {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return &Replay{reader: reader, logger: logger.With().Str("component", "replay").Logger()}
}

// OpenReplay opens path for replay. Close releases the file.
func OpenReplay(path string, logger zerolog.Logger) (*Replay, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	r := NewReplay(file, logger)
	r.closer = file
	r.logger = r.logger.With().Str("path", path).Logger()
	return r, nil
}

// Next returns the next row, or ErrExhausted at end of input.
func (r *Replay) Next(ctx context.Context) (Reading, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Reading{}, err
		}

		record, err := r.reader.Read()
		if errors.Is(err, io.EOF) {
			return Reading{}, ErrExhausted
		}
		if err != nil {
			return Reading{}, fmt.Errorf("read replay row: %w", err)
		}
		r.line++

		reading, err := parseRow(record)
		if err != nil {
			if r.line == 1 {
				r.logger.Debug().Strs("header", record).Msg("skipping replay header")
				continue
			}
			return Reading{}, fmt.Errorf("replay row %d: %w", r.line, err)
		}
		return reading, nil
	}
}

// Close releases the underlying file when the replay owns one.
func (r *Replay) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func parseRow(record []string) (Reading, error) {
	if len(record) < 2 {
		return Reading{}, fmt.Errorf("expected 2 fields, got %d", len(record))
	}
	front, err := parseTemp(record[0])
	if err != nil {
		return Reading{}, fmt.Errorf("front: %w", err)
	}
	rear, err := parseTemp(record[1])
	if err != nil {
		return Reading{}, fmt.Errorf("rear: %w", err)
	}
	return Reading{Front: front, Rear: rear}, nil
}

func parseTemp(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}
	return v, nil
}

var _ Source = (*Replay)(nil)
