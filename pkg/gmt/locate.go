package gmt

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// LibraryPathEnv names the environment variable holding the directory
	// that contains libgmt.
	LibraryPathEnv = "GMT_LIBRARY_PATH"

	libraryBaseName = "libgmt"
)

// LibraryName returns the shared library file name for osName, e.g.
// "libgmt.so". An empty osName means the running platform.
func LibraryName(osName string) (string, error) {
	ext, err := Extension(osName)
	if err != nil {
		return "", err
	}
	return libraryBaseName + "." + ext, nil
}

// LibraryPath builds the path to libgmt for the running platform. A nil env
// means the process environment.
func LibraryPath(env map[string]string) (string, error) {
	return LibraryPathFor("", env)
}

// LibraryPathFor is LibraryPath with an explicit operating system identifier.
//
// When env holds GMT_LIBRARY_PATH the result is that directory joined with the
// library file name. Otherwise the bare file name is returned and the
// platform's library search decides where it comes from.
func LibraryPathFor(osName string, env map[string]string) (string, error) {
	name, err := LibraryName(osName)
	if err != nil {
		return "", err
	}
	if env == nil {
		env = Environ()
	}
	if dir, ok := env[LibraryPathEnv]; ok {
		return filepath.Join(dir, name), nil
	}
	return name, nil
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	vars := os.Environ()
	env := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}
