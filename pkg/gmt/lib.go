package gmt

import "github.com/genericmappingtools/gmt-go/internal/bindings"

// ErrNotBuilt reports that this binary cannot load shared libraries on the
// current platform. Load wraps it in a LibraryNotFoundError.
var ErrNotBuilt = bindings.ErrNotBuilt

// Library represents an opened and validated handle to libgmt. There is
// normally one per process; it is released exactly once with Close.
type Library struct {
	path   string
	handle bindings.Handle
	funcs  *bindings.Funcs
	closed bool
}

// Load opens the shared library at path and checks that it exports the
// required entry points.
//
// Any failure to open the file is reported as a *LibraryNotFoundError, which
// matches ErrLibraryNotFound. A library that opens but fails CheckLibrary is
// closed again and its ErrLibraryLoad error returned; the handle never
// escapes.
func Load(path string) (*Library, error) {
	h, err := bindings.Open(path)
	if err != nil {
		return nil, &LibraryNotFoundError{Path: path, Err: err}
	}

	lib := &Library{path: path, handle: h}
	if err := CheckLibrary(lib); err != nil {
		_ = bindings.Close(h)
		return nil, err
	}

	funcs, err := bindings.Bind(h)
	if err != nil {
		_ = bindings.Close(h)
		return nil, errorf("Load", "%w: %v", ErrLibraryLoad, err)
	}
	lib.funcs = funcs
	return lib, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Lookup returns the address of an exported symbol.
func (l *Library) Lookup(name string) (uintptr, error) {
	if l == nil || l.closed {
		return 0, ErrLibraryClosed
	}
	return bindings.Lookup(l.handle, name)
}

// Close releases the native handle. The method is idempotent, returning
// ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	if l.closed {
		return ErrLibraryClosed
	}

	if l.handle != 0 {
		if err := bindings.Close(l.handle); err != nil {
			return errorf("Close", "%w", err)
		}
	}

	l.closed = true
	l.handle = 0
	l.funcs = nil
	return nil
}

func (l *Library) api() (*bindings.Funcs, error) {
	if l == nil || l.closed || l.funcs == nil {
		return nil, ErrLibraryClosed
	}
	return l.funcs, nil
}
