package gmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/genericmappingtools/gmt-go/pkg/gmt/logging"
)

const (
	// DefaultSessionName is the tag given to GMT_Create_Session.
	DefaultSessionName = "gmt-go-session"

	// DefaultSessionPrefix is the figure prefix passed to the "begin" module.
	DefaultSessionPrefix = "gmt-go-session"
)

// Config expresses the knobs required to load libgmt and start a session.
// The zero value loads the library through GMT_LIBRARY_PATH or the platform
// search path on the running OS.
type Config struct {
	// LibraryDir overrides GMT_LIBRARY_PATH when non-empty.
	LibraryDir string `yaml:"library_dir"`

	// OS overrides the operating system identifier used to pick the library
	// extension. Empty means runtime.GOOS.
	OS string `yaml:"os"`

	// SessionName is the tag given to GMT_Create_Session.
	SessionName string `yaml:"session_name"`

	// SessionPrefix is the argument of the "begin" module that starts the
	// modern-mode session.
	SessionPrefix string `yaml:"session_prefix"`

	// Logger receives session lifecycle events. Nil discards them.
	Logger logging.Logger `yaml:"-"`
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration document. An empty document
// yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Env returns the environment used to locate the library: the process
// environment with GMT_LIBRARY_PATH replaced by LibraryDir when it is set.
func (c Config) Env() map[string]string {
	env := Environ()
	if c.LibraryDir != "" {
		env[LibraryPathEnv] = c.LibraryDir
	}
	return env
}

// LibraryPath resolves the shared library path for this configuration.
func (c Config) LibraryPath() (string, error) {
	return LibraryPathFor(c.OS, c.Env())
}

func (c Config) sessionName() string {
	if c.SessionName == "" {
		return DefaultSessionName
	}
	return c.SessionName
}

func (c Config) sessionPrefix() string {
	if c.SessionPrefix == "" {
		return DefaultSessionPrefix
	}
	return c.SessionPrefix
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}
