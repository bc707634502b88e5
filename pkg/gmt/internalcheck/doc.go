// Package internalcheck holds static policy tests over the module's own
// packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and inspect their syntax trees:
//
//   - only internal/bindings may import unsafe or the dynamic loader, so the
//     foreign-function boundary stays in one place;
//   - library packages never print to stdout or stderr; they return errors
//     and leave reporting to the caller.
//
// It is not intended for external use.
package internalcheck
