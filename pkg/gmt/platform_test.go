package gmt

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		os   string
		want string
	}{
		{"linux", "so"},
		{"linux2", "so"},
		{"linux-gnu", "so"},
		{"darwin", "dylib"},
	}
	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			got, err := Extension(tt.os)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtensionUnsupported(t *testing.T) {
	for _, name := range []string{"windows", "win32", "freebsd", "darwin2", "Linux", "bla"} {
		t.Run(name, func(t *testing.T) {
			_, err := Extension(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedOS))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestExtensionDefaultsToRunningPlatform(t *testing.T) {
	want, wantErr := Extension(runtime.GOOS)
	got, err := Extension("")
	assert.Equal(t, want, got)
	assert.Equal(t, wantErr, err)
}
