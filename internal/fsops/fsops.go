// Package fsops wraps the filesystem operations the file resource
// handler needs. Callers classify failures with errors.Is against
// fs.ErrExist / fs.ErrNotExist; anything else is a backend I/O error.
package fsops

import "os"

// Exists reports whether path refers to an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadAll returns the entire contents of the file at path.
func ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// CreateExclusive writes data to a newly created file at path. The
// O_EXCL open makes creation atomic with respect to concurrent creators
// of the same name: the loser gets fs.ErrExist instead of overwriting.
func CreateExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Remove deletes the file at path. A missing file surfaces as
// fs.ErrNotExist.
func Remove(path string) error {
	return os.Remove(path)
}
