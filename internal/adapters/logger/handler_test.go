package logger_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retro/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newHandler(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewConsoleHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h), buf
}

func TestConsoleHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newHandler(t)
			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleHandler_Attrs(t *testing.T) {
	lg, buf := newHandler(t)

	lg.With("backend", "forked").WithGroup("jvm").Info("started", "pid", 42, slog.Group("heap", "max", "512m"))

	want := "started\n" +
		"  backend: forked\n" +
		"  jvm.pid: 42\n" +
		"  jvm.heap.max: 512m\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleHandler_ErrorAttr(t *testing.T) {
	lg, buf := newHandler(t)

	cause := zerr.With(zerr.New("forked process failed"), "exit_code", 3)
	lg.Warn("retrying", "error", zerr.With(zerr.Wrap(cause, "failed to run Retrolambda"), "backend", "forked"))

	want := "! retrying\n" +
		"  error: failed to run Retrolambda\n" +
		"    backend: forked\n" +
		"    → forked process failed\n" +
		"      exit_code: 3\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleHandler_ConcurrentWrites(t *testing.T) {
	lg, buf := newHandler(t)

	const writers, records = 8, 200

	var wg sync.WaitGroup
	for w := range writers {
		derived := lg.With("writer", w).WithGroup("stream")
		wg.Go(func() {
			for i := range records {
				if i%2 == 0 {
					derived.Info(fmt.Sprintf("stdout %d", i))
				} else {
					derived.Warn(fmt.Sprintf("stderr %d", i))
				}
			}
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, writers*records*2)
	for i := 0; i < len(lines); i += 2 {
		assert.Regexp(t, `^(! )?std(out|err) \d+$`, lines[i])
		assert.Regexp(t, `^  writer: \d$`, lines[i+1])
	}
}
