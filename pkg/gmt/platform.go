package gmt

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	extLinux  = "so"
	extDarwin = "dylib"
)

// Extension returns the shared library file extension for osName, without
// the leading dot. An empty osName means the running platform (runtime.GOOS).
//
// Identifiers starting with "linux" map to "so" and "darwin" maps to "dylib".
// Anything else fails with ErrUnsupportedOS.
func Extension(osName string) (string, error) {
	if osName == "" {
		osName = runtime.GOOS
	}
	switch {
	case strings.HasPrefix(osName, "linux"):
		return extLinux, nil
	case osName == "darwin":
		return extDarwin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOS, osName)
	}
}
