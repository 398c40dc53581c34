package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/typist/pkg/domain"
)

// Engine is the part of typist.Engine the transports need.
type Engine interface {
	Process(event domain.Event) []domain.Event
}

// TranslateStats summarizes a Translate run.
type TranslateStats struct {
	Lines     int
	Events    int
	Malformed int
}

// Translate reads newline-delimited JSON events from r, runs each through
// engine and writes every resulting event to w, one JSON object per line.
// Blank lines are skipped. Malformed lines are logged and skipped.
// It returns when r is exhausted or ctx is cancelled between lines.
func Translate(ctx context.Context, engine Engine, r io.Reader, w io.Writer, logger *slog.Logger) (TranslateStats, error) {
	var stats TranslateStats
	reader := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for {
		if err := ctx.Err(); err != nil {
			return stats, flush(out, err)
		}

		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, flush(out, fmt.Errorf("read error: %w", readErr))
		}

		if len(line) > 0 {
			stats.Lines++
			if err := translateLine(engine, enc, line, stats.Lines, logger, &stats); err != nil {
				return stats, flush(out, err)
			}
			// Downstream consumers act on commands as soon as they arrive.
			if err := out.Flush(); err != nil {
				return stats, fmt.Errorf("write error: %w", err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return stats, flush(out, nil)
		}
	}
}

func translateLine(engine Engine, enc *json.Encoder, line []byte, lineNo int, logger *slog.Logger, stats *TranslateStats) error {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	var ev domain.Event
	if err := json.Unmarshal(line, &ev); err != nil {
		stats.Malformed++
		logger.Warn("Skipping malformed event", "line", lineNo, "error", err)
		return nil
	}

	for _, result := range engine.Process(ev) {
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
		stats.Events++
	}
	return nil
}

func flush(w *bufio.Writer, err error) error {
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		return fmt.Errorf("write error: %w", flushErr)
	}
	return err
}
