package ports

// TempFiles creates scratch files and guarantees their removal.
//
//go:generate go run go.uber.org/mock/mockgen -source=tempfiles.go -destination=mocks/mock_tempfiles.go -package=mocks
type TempFiles interface {
	// Create writes data to a new temporary file and tracks it until removed.
	Create(pattern string, data []byte) (string, error)
	// Remove deletes a tracked file.
	Remove(path string) error
	// Purge removes every file still tracked. It is called on abnormal termination.
	Purge() error
}
