package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsafeName = errors.New("unsafe file name")

// ValidateName checks a file name taken from a request path before any
// filesystem access happens:
// - must be non-empty (an empty name would address the root itself)
// - must not start with ".." (blocks traversal outside the root)
// - must not contain a separator (blocks addressing into subdirectories)
// - must not contain NUL
//
// Checks are purely lexical; no normalization is applied.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrUnsafeName)
	}
	if strings.HasPrefix(name, "..") {
		return fmt.Errorf("%w: starts with ..", ErrUnsafeName)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: contains separator", ErrUnsafeName)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: NUL not allowed", ErrUnsafeName)
	}
	return nil
}

// Resolve validates name and joins it under rootAbs. A valid name cannot
// escape the root, so this is a single join with no further cleaning.
func Resolve(rootAbs, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(rootAbs, name), nil
}
