// Package validate checks cipher-mode arguments before any file is transformed.
//
// Checks run in a fixed order: command, shift syntax, file paths. The first
// failure stops validation, so a multiply-invalid invocation always reports
// the earliest problem.
package validate

import (
	"os"

	"github.com/capiscio/cipher/pkg/caesar"
	"go.uber.org/zap"
)

// Request is a fully validated cipher-mode invocation.
type Request struct {
	Direction caesar.Direction
	// Shift is reduced into [0, caesar.AlphabetLen).
	Shift  int
	Input  string
	Output string
}

// Command maps "encode" or "decode" to a direction. Matching is exact and
// case-sensitive.
func Command(s string) (caesar.Direction, error) {
	switch s {
	case caesar.Encode.String():
		return caesar.Encode, nil
	case caesar.Decode.String():
		return caesar.Decode, nil
	default:
		return 0, ErrCommandInvalid
	}
}

// Shift checks that s is an optional '-' followed by decimal digits.
func Shift(s string) error {
	if !caesar.ValidShiftSyntax(s) {
		return ErrShiftInvalid
	}
	return nil
}

// Files checks that in can be opened for reading and out for writing. out is
// created or truncated. Both handles are closed before returning, and out is
// never touched when in fails.
func Files(in, out string) error {
	inFile, err := os.Open(in)
	if err != nil {
		return WrapError(ErrCodeFileInvalid, MsgFileInvalid, err)
	}
	defer func() { _ = inFile.Close() }()

	outFile, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return WrapError(ErrCodeFileInvalid, MsgFileInvalid, err)
	}
	if err := outFile.Close(); err != nil {
		return WrapError(ErrCodeFileInvalid, MsgFileInvalid, err)
	}
	return nil
}

// Args validates a cipher-mode invocation and returns the request to run.
func Args(command, shift, in, out string, logger *zap.Logger) (Request, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := Command(command)
	if err != nil {
		logger.Debug("Rejected command", zap.String("command", command))
		return Request{}, err
	}
	if err := Shift(shift); err != nil {
		logger.Debug("Rejected shift value", zap.String("shift", shift))
		return Request{}, err
	}
	if err := Files(in, out); err != nil {
		logger.Debug("Rejected file paths",
			zap.String("input", in),
			zap.String("output", out),
			zap.Error(err))
		return Request{}, err
	}

	k, err := caesar.ParseShift(shift)
	if err != nil {
		return Request{}, WrapError(ErrCodeShiftInvalid, MsgShiftInvalid, err)
	}

	req := Request{
		Direction: dir,
		Shift:     k,
		Input:     in,
		Output:    out,
	}
	logger.Debug("Arguments validated",
		zap.Stringer("direction", req.Direction),
		zap.Int("shift", req.Shift))
	return req, nil
}
