package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/capiscio/cipher/pkg/caesar"
	"github.com/capiscio/cipher/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		dir   caesar.Direction
		k     int
		want  string
		lines int64
	}{
		{"single line", "abc\n", caesar.Encode, 3, "def\n", 1},
		{"no trailing newline", "abc\nxyz", caesar.Encode, 3, "def\nabc", 2},
		{"decode", "Khoor, Zruog!\n", caesar.Decode, 3, "Hello, World!\n", 1},
		{"blank lines kept", "\n\nA\n", caesar.Encode, 1, "\n\nB\n", 3},
		{"crlf kept", "ab\r\ncd\r\n", caesar.Encode, 1, "bc\r\nde\r\n", 2},
		{"empty input", "", caesar.Encode, 5, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stats, err := Process(context.Background(), strings.NewReader(tt.in), &out, tt.dir, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.lines, stats.Lines)
			assert.Equal(t, int64(len(tt.in)), stats.Bytes)
		})
	}
}

func TestProcessLongLine(t *testing.T) {
	// Longer than both the old 1024-byte chunk and bufio's default buffer.
	line := strings.Repeat("abcxyz", 2000) + "\n"
	want := strings.Repeat("bcdyza", 2000) + "\n"

	var out bytes.Buffer
	stats, err := Process(context.Background(), strings.NewReader(line+line), &out, caesar.Encode, 1)
	require.NoError(t, err)
	assert.Equal(t, want+want, out.String())
	assert.Equal(t, int64(2), stats.Lines)
}

func TestProcessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Process(ctx, strings.NewReader("abc\n"), &out, caesar.Encode, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestProcessWriteError(t *testing.T) {
	_, err := Process(context.Background(), strings.NewReader("abc\n"), failingWriter{}, caesar.Encode, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("bad sector") }

func TestProcessReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := Process(context.Background(), failingReader{}, &out, caesar.Encode, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("Attack at dawn!\nZZZ\n"), 0644))
	require.NoError(t, os.WriteFile(out, []byte("old contents that are much longer than the new ones"), 0644))

	core, logs := observer.New(zapcore.DebugLevel)
	stats, err := Run(context.Background(), validate.Request{
		Direction: caesar.Encode,
		Shift:     13,
		Input:     in,
		Output:    out,
	}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Lines)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Nggnpx ng qnja!\nMMM\n", string(data))
	assert.Equal(t, 1, logs.FilterMessage("Pipeline finished").Len())
}

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	secret := filepath.Join(dir, "secret.txt")
	back := filepath.Join(dir, "back.txt")
	text := "Mixed CASE, digits 123 and symbols #$%\nsecond line\n"
	require.NoError(t, os.WriteFile(plain, []byte(text), 0644))

	_, err := Run(context.Background(), validate.Request{Direction: caesar.Encode, Shift: 7, Input: plain, Output: secret}, nil)
	require.NoError(t, err)
	_, err = Run(context.Background(), validate.Request{Direction: caesar.Decode, Shift: 7, Input: secret, Output: back}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), validate.Request{
		Input:  filepath.Join(dir, "missing.txt"),
		Output: filepath.Join(dir, "out.txt"),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
