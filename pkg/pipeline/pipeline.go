// Package pipeline streams a text file through the Caesar shift line by line.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/capiscio/cipher/pkg/caesar"
	"github.com/capiscio/cipher/pkg/validate"
	"go.uber.org/zap"
)

// Stats summarizes a completed run.
type Stats struct {
	Lines int64
	Bytes int64
}

// Run transforms req.Input into req.Output. Both files are owned by Run for
// its duration and closed before it returns.
func Run(ctx context.Context, req validate.Request, logger *zap.Logger) (stats Stats, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	in, err := os.Open(req.Input)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(req.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	stats, err = Process(ctx, in, out, req.Direction, req.Shift)
	if err != nil {
		return stats, err
	}

	logger.Debug("Pipeline finished",
		zap.String("input", req.Input),
		zap.String("output", req.Output),
		zap.Stringer("direction", req.Direction),
		zap.Int64("lines", stats.Lines),
		zap.Int64("bytes", stats.Bytes))
	return stats, nil
}

// Process reads r one line at a time, shifts each line in direction d by k
// and writes it to w in the order read. Lines keep their terminators; a final
// line without one is processed as well.
func Process(ctx context.Context, r io.Reader, w io.Writer, d caesar.Direction, k int) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	var buf []byte

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, rerr := br.ReadBytes('\n')
		if len(line) > 0 {
			buf = caesar.TransformBytes(d, buf[:0], line, k)
			if _, err := bw.Write(buf); err != nil {
				return stats, fmt.Errorf("failed to write output: %w", err)
			}
			stats.Lines++
			stats.Bytes += int64(len(line))
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return stats, fmt.Errorf("failed to read input: %w", rerr)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write output: %w", err)
	}
	return stats, nil
}
