// Package artifact copies published jars from Maven-layout repositories into a local directory.
package artifact

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 60 * time.Second

var _ ports.ArtifactFetcher = (*Fetcher)(nil)

// Fetcher implements ports.ArtifactFetcher over a local repository and an optional HTTP repository.
type Fetcher struct {
	hasher     ports.Hasher
	httpClient *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher(hasher ports.Hasher) *Fetcher {
	return newFetcherWithClient(hasher, &http.Client{Timeout: httpClientTimeout})
}

func newFetcherWithClient(hasher ports.Hasher, client *http.Client) *Fetcher {
	return &Fetcher{hasher: hasher, httpClient: client}
}

// Fetch copies the artifact into req.DestDir/req.DestName, replacing any previous copy.
// The local repository is consulted first, then the remote one. Development versions are
// never downloaded.
func (f *Fetcher) Fetch(ctx context.Context, req domain.ArtifactRequest) (string, error) {
	coords := req.Coordinates
	dest := filepath.Join(req.DestDir, req.DestName)

	if local := req.Repository.Local; local != "" {
		src := filepath.Join(local, filepath.FromSlash(coords.RepositoryPath()))
		if info, err := os.Stat(src); err == nil && !info.IsDir() {
			if err := f.copyLocal(src, dest); err != nil {
				return "", retrievalError(err, coords)
			}
			return dest, nil
		}
	}

	if remote := req.Repository.Remote; remote != "" && !coords.IsDevelopment() {
		found, err := f.download(ctx, remoteURL(remote, coords), dest)
		if err != nil {
			return "", retrievalError(err, coords)
		}
		if found {
			return dest, nil
		}
	}

	if coords.IsDevelopment() || versionDirExists(req.Repository.Local, coords) {
		return "", &domain.ArtifactNotPackagedError{Coordinates: coords}
	}

	return "", retrievalError(domain.ErrArtifactNotFound, coords)
}

func retrievalError(cause error, coords domain.Coordinates) error {
	return zerr.With(zerr.Wrap(cause, domain.ErrArtifactRetrievalFailed.Error()), "artifact", coords.String())
}

func remoteURL(base string, coords domain.Coordinates) string {
	return strings.TrimRight(base, "/") + "/" + coords.RepositoryPath()
}

// versionDirExists reports whether the local repository knows the version without holding its jar.
func versionDirExists(local string, coords domain.Coordinates) bool {
	if local == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(local, filepath.FromSlash(coords.VersionDir())))
	return err == nil && info.IsDir()
}

func (f *Fetcher) copyLocal(src, dest string) error {
	//nolint:gosec // src is built from repository settings and coordinates
	in, err := os.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	return f.install(in, dest)
}

// download streams the remote artifact into dest. A 404 reports found=false without error.
func (f *Fetcher) download(ctx context.Context, url, dest string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		statusErr := zerr.With(zerr.New("unexpected response status"), "status_code", resp.StatusCode)
		return false, zerr.With(statusErr, "url", url)
	}

	if err := f.install(resp.Body, dest); err != nil {
		return false, err
	}
	return true, nil
}

// install writes src to a temporary file next to dest, verifies it against the bytes read
// and then renames it over dest.
func (f *Fetcher) install(src io.Reader, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(dest)+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTempFileFailed.Error()), "path", dir)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	digest := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmpFile, digest), src); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", dest)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", dest)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", dest)
	}

	// The previous copy is only replaced once the new one is known to be intact.
	written, err := f.hasher.ComputeFileHash(tmpName)
	if err != nil {
		return err
	}
	if written != digest.Sum64() {
		return zerr.With(domain.ErrArtifactChecksumMismatch, "path", dest)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace artifact"), "path", dest)
	}
	return nil
}
