package version

import (
	"fmt"
	"runtime"
)

// Build-time variables (override via -ldflags -X ...).
// Example:
//
//	go build -ldflags "-X tinyhttpd/internal/version.Version=v0.2.0 -X tinyhttpd/internal/version.Commit=abcd123"
var (
	Version = "v0.1.0"
	Commit  = ""
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		Commit:    Commit,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	// Keep this stable for CLI output.
	if i.Commit != "" {
		return fmt.Sprintf("%s (%s) [%s]", i.Version, i.Commit, i.GoVersion)
	}
	return fmt.Sprintf("%s [%s]", i.Version, i.GoVersion)
}
