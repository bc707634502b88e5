// Package bindings is the thin dynamic-loading layer between the Go API and
// the native libgmt shared library.
//
// All dlopen/dlsym traffic lives here. The library is opened at run time with
// github.com/ebitengine/purego, so the module builds without cgo. Platforms
// that purego cannot load shared libraries on get the stub in
// bindings_stub.go, which reports ErrNotBuilt from every entry point.
//
// The package does not interpret GMT return codes and does not log; callers in
// pkg/gmt map failures to the public error kinds.
package bindings
