//go:build !darwin && !linux

package bindings

// Stub implementations for platforms without dlopen support in purego.
// These allow the package to compile but return ErrNotBuilt when called.

func Open(string) (Handle, error) {
	return 0, ErrNotBuilt
}

func Lookup(Handle, string) (uintptr, error) {
	return 0, ErrNotBuilt
}

func Close(Handle) error {
	return ErrNotBuilt
}

func Bind(Handle) (*Funcs, error) {
	return nil, ErrNotBuilt
}
