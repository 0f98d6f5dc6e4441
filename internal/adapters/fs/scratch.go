package fs

import (
	"errors"
	"os"
	"sync"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TempFiles = (*Scratch)(nil)

// Scratch creates temporary files in a directory and tracks them until they are removed.
// Files still tracked when the process is interrupted are deleted by Purge.
type Scratch struct {
	dir   string
	mu    sync.Mutex
	files map[string]struct{}
}

// NewScratch creates a Scratch rooted at dir. An empty dir selects os.TempDir.
func NewScratch(dir string) *Scratch {
	return &Scratch{
		dir:   dir,
		files: make(map[string]struct{}),
	}
}

// Create writes data to a new temporary file named after pattern.
func (s *Scratch) Create(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(s.dir, pattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileFailed.Error()), "pattern", pattern)
	}
	path := f.Name()

	s.mu.Lock()
	s.files[path] = struct{}{}
	s.mu.Unlock()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = s.Remove(path)
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		_ = s.Remove(path)
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileFailed.Error()), "path", path)
	}

	return path, nil
}

// Remove deletes the file and stops tracking it. A file that is already gone is not an error.
func (s *Scratch) Remove(path string) error {
	s.mu.Lock()
	delete(s.files, path)
	s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove temporary file"), "path", path)
	}
	return nil
}

// Purge removes every file still tracked.
func (s *Scratch) Purge() error {
	s.mu.Lock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	s.mu.Unlock()

	var errs []error
	for _, p := range paths {
		if err := s.Remove(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Tracked returns the number of files that have not been removed yet.
func (s *Scratch) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
