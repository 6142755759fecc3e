package ioutils

import (
	"context"
	"os"
)

// EnsureDir creates a directory and any missing parents. It is a
// no-op when the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists, it
// is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Replace renames oldpath to newpath, atomically replacing any
// existing file at the destination.
//
// This is how staged downloads land on their timestamp-derived names:
// re-running a materialization converges on the same destination
// without an exists-check race.
func Replace(ctx context.Context, oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
