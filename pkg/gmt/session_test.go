package gmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	fake := newFakeGMT()
	s, err := NewSession(fake.library(), "test-session")
	require.NoError(t, err)

	assert.Equal(t, []string{"test-session"}, fake.created)
	assert.Equal(t, uint32(2), fake.pad)
	assert.Equal(t, uint32(2), fake.mode)
	assert.Equal(t, "test-session", s.Name())

	require.NoError(t, s.Close())
	assert.Equal(t, 1, fake.destroyed)
}

func TestNewSessionNullPointer(t *testing.T) {
	fake := newFakeGMT()
	fake.nullSession = true
	_, err := NewSession(fake.library(), "x")
	assert.ErrorIs(t, err, ErrSessionCreate)
}

func TestNewSessionMissingEnum(t *testing.T) {
	fake := newFakeGMT()
	delete(fake.enums, "GMT_MODULE_CMD")
	_, err := NewSession(fake.library(), "x")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "GMT_MODULE_CMD")
	assert.Equal(t, 1, fake.destroyed, "half-created session must be destroyed")
}

func TestNewSessionClosedLibrary(t *testing.T) {
	lib := newFakeGMT().library()
	require.NoError(t, lib.Close())
	_, err := NewSession(lib, "x")
	assert.ErrorIs(t, err, ErrLibraryClosed)
}

func TestSessionGetEnum(t *testing.T) {
	fake := newFakeGMT()
	fake.enums["GMT_IS_DATASET"] = 0
	s, err := NewSession(fake.library(), "x")
	require.NoError(t, err)
	defer s.Close()

	v, err := s.GetEnum("GMT_IS_DATASET")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = s.GetEnum("A_WHOLE_LOT_OF_JUNK")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSessionCallModule(t *testing.T) {
	fake := newFakeGMT()
	s, err := NewSession(fake.library(), "x")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.CallModule("info", "input.txt -C"))
	assert.Equal(t, []string{"info input.txt -C"}, fake.calls)
	assert.Equal(t, []int32{-7}, fake.callModes)

	fake.status["bogus"] = 71
	err = s.CallModule("bogus", "-R1/2/3/4")
	require.ErrorIs(t, err, ErrModuleFailed)
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "71")
}

func TestSessionInfo(t *testing.T) {
	fake := newFakeGMT()
	s, err := NewSession(fake.library(), "x")
	require.NoError(t, err)
	defer s.Close()

	info, err := s.Info()
	require.NoError(t, err)
	want := map[string]string{
		"version":      "6.5.0",
		"padding":      "2",
		"binary dir":   "/usr/bin",
		"share dir":    "/usr/share/gmt",
		"library path": "/usr/lib/libgmt.so",
		"cores":        "8",
		"grid layout":  "rows",
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("Info() mismatch (-want +got):\n%s", diff)
	}

	version, err := LibraryVersion(s)
	require.NoError(t, err)
	assert.Equal(t, "6.5.0", version)
}

func TestSessionGetDefaultErrors(t *testing.T) {
	fake := newFakeGMT()
	s, err := NewSession(fake.library(), "x")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetDefault("NOT_A_PARAMETER")
	assert.ErrorIs(t, err, ErrInvalidInput)

	fake = newFakeGMT()
	fake.noDefaults = true
	s2, err := NewSession(fake.library(), "y")
	require.NoError(t, err)
	defer s2.Close()
	_, err = s2.Info()
	assert.ErrorIs(t, err, ErrLibraryLoad)
}

func TestSessionClosed(t *testing.T) {
	fake := newFakeGMT()
	s, err := NewSession(fake.library(), "x")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), ErrSessionClosed)
	assert.ErrorIs(t, s.CallModule("info", ""), ErrSessionClosed)
	_, err = s.GetEnum("GMT_MODULE_CMD")
	assert.True(t, errors.Is(err, ErrSessionClosed))
	_, err = s.GetDefault("API_VERSION")
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, 1, fake.destroyed)
}

func TestInfoNamesSorted(t *testing.T) {
	assert.Equal(t, []string{
		"binary dir", "cores", "grid layout", "library path", "padding", "share dir", "version",
	}, InfoNames())
}
