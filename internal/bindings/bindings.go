//go:build darwin || linux

package bindings

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

var errNullSymbol = errors.New("symbol resolved to a null address")

// Open dlopens the shared library at path. A bare file name defers to the
// platform's library search path. The returned error carries the loader's
// own message (dlerror text).
func Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

// Lookup returns the address of the named symbol.
func Lookup(h Handle, name string) (uintptr, error) {
	if h == 0 {
		return 0, ErrNullHandle
	}
	return purego.Dlsym(uintptr(h), name)
}

// Close releases the library handle. The handle must not be used afterwards.
func Close(h Handle) error {
	if h == 0 {
		return ErrNullHandle
	}
	return purego.Dlclose(uintptr(h))
}

// Bind registers the GMT entry points exported by h as Go functions. A missing
// required symbol fails the whole bind; optional ones are left nil.
func Bind(h Handle) (*Funcs, error) {
	f := &Funcs{}
	for _, e := range f.entries() {
		addr, err := Lookup(h, e.name)
		if err == nil && addr == 0 {
			err = errNullSymbol
		}
		if err != nil {
			if e.required {
				return nil, fmt.Errorf("bind %s: %w", e.name, err)
			}
			continue
		}
		purego.RegisterFunc(e.fn, addr)
	}
	return f, nil
}
