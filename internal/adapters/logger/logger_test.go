package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/adapters/logger"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferLogger(t)
	lg.Info("fetching block 0x01")
	assert.Contains(t, buf.String(), "fetching block 0x01")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferLogger(t)

	cause := zerr.With(zerr.With(zerr.Wrap(domain.ErrEntityNotFound, "fetch failed"), "kind", "tx"), "key", "0x01")
	lg.Warn(cause)

	assert.Equal(t, "! fetch failed (key=0x01 kind=tx): entity not found\n", buf.String())
}

func TestLogger_WarnNil(t *testing.T) {
	lg, buf := newBufferLogger(t)
	lg.Warn(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferLogger(t)
	lg.Error(os.ErrPermission)
	assert.Contains(t, buf.String(), "Error: permission denied")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newBufferLogger(t)

	cause := zerr.With(zerr.With(domain.ErrEntityNotFound, "kind", "block"), "key", "0x01")
	lg.Error(zerr.Wrap(cause, "failed to render view"))

	out := buf.String()
	assert.Contains(t, out, "Error: failed to render view")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ entity not found (key=0x01 kind=block)")
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBufferLogger(t)
	lg.SetJSON(true)

	lg.Info("ready")
	lg.Error(zerr.With(domain.ErrAPIRequestFailed, "status_code", 503))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "ready", info["msg"])
	assert.Equal(t, "INFO", info["level"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failed))
	assert.Equal(t, "ERROR", failed["level"])
	assert.Contains(t, string(lines[1]), "chain api request failed")
	assert.Contains(t, string(lines[1]), "status_code")
}

func TestCollectErrorEntries(t *testing.T) {
	plain := errors.New("connection refused")
	err := zerr.Wrap(zerr.With(zerr.Wrap(plain, "chain api request failed"), "kind", "transaction"), "fetch failed")

	entries := logger.CollectErrorEntries(err)
	assert.Equal(t, []string{
		"fetch failed",
		"chain api request failed (kind=transaction)",
		"connection refused",
	}, entries)
}

func TestCollectErrorEntries_MetadataOnlyLevel(t *testing.T) {
	err := zerr.With(errors.New("boom"), "key", "0x1")

	entries := logger.CollectErrorEntries(err)
	assert.Equal(t, []string{"(key=0x1)", "boom"}, entries)
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"top", "middle\ndetail", "bottom"})
	want := "Error: top\n\n  Caused by:\n    → middle\n      detail\n    → bottom"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_Single(t *testing.T) {
	assert.Equal(t, "Error: only\n       second line", logger.FormatErrorEntries([]string{"only\nsecond line"}))
}
