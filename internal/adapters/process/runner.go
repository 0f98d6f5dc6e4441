// Package process runs subprocesses and forwards their output to the logger.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tailLines is the number of output lines attached to a failure.
const tailLines = 20

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts the command, streams stdout as info and stderr as warnings, and waits for it to exit.
// Cancelling ctx kills the process.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Executable
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command is built from validated configuration
	c.Dir = cmd.Dir
	c.Env = env

	stdoutPipe, err := c.StdoutPipe()
	if err != nil {
		return r.failure(err, cmd.Executable, -1, nil)
	}
	stderrPipe, err := c.StderrPipe()
	if err != nil {
		return r.failure(err, cmd.Executable, -1, nil)
	}

	if err := c.Start(); err != nil {
		return r.failure(err, cmd.Executable, -1, nil)
	}

	tail := &tailBuffer{max: tailLines}
	stdoutLog := &logWriter{logger: r.logger, level: "info", tail: tail}
	stderrLog := &logWriter{logger: r.logger, level: "warn", tail: tail}

	var g errgroup.Group
	g.Go(func() error { return drain(stdoutPipe, stdoutLog) })
	g.Go(func() error { return drain(stderrPipe, stderrLog) })
	drainErr := g.Wait()

	if err := c.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return r.failure(err, cmd.Executable, exitCode, tail.Lines())
	}

	if drainErr != nil {
		return zerr.Wrap(drainErr, "failed to read process output")
	}
	return nil
}

func (r *Runner) failure(err error, executable string, exitCode int, output []string) error {
	failed := zerr.Wrap(err, domain.ErrSubprocessFailed.Error())
	failed = zerr.With(failed, "executable", executable)
	failed = zerr.With(failed, "exit_code", exitCode)
	if len(output) > 0 {
		failed = zerr.With(failed, "output", strings.Join(output, "\n"))
	}
	return failed
}

func drain(src io.Reader, w *logWriter) error {
	_, err := io.Copy(w, src)
	_ = w.Close()
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}

type logWriter struct {
	logger ports.Logger
	level  string
	tail   *tailBuffer
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	w.tail.Add(msg)

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}

// tailBuffer keeps the most recent lines written by both output streams.
type tailBuffer struct {
	mu    sync.Mutex
	max   int
	lines []string
}

func (t *tailBuffer) Add(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

func (t *tailBuffer) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}

// resolveEnvironment applies KEY=VALUE overrides on top of the inherited environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	apply := func(entries []string) {
		for _, entry := range entries {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}
	apply(sysEnv)
	apply(overrides)

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
