package gmt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOS indicates the operating system has no known shared
	// library extension.
	ErrUnsupportedOS = errors.New("gmt: operating system not supported")

	// ErrLibraryNotFound indicates the shared library could not be opened:
	// the file is missing, a dependency is unresolved or the architecture
	// does not match. Callers use it to detect "GMT not installed".
	ErrLibraryNotFound = errors.New("gmt: shared library not found")

	// ErrLibraryLoad indicates the library opened but does not export a
	// required function.
	ErrLibraryLoad = errors.New("gmt: error loading libgmt")

	// ErrInvalidInput indicates malformed data handed to a conversion
	// routine, such as a grid with the wrong number of dimensions.
	ErrInvalidInput = errors.New("gmt: invalid input")

	// ErrLibraryClosed is returned when a closed Library is used or closed
	// again.
	ErrLibraryClosed = errors.New("gmt: library closed")

	// ErrSessionClosed is returned when a destroyed Session is used.
	ErrSessionClosed = errors.New("gmt: session closed")

	// ErrSessionCreate indicates GMT_Create_Session returned a NULL API
	// pointer.
	ErrSessionCreate = errors.New("gmt: failed to create session")

	// ErrModuleFailed indicates GMT_Call_Module returned a non-zero status.
	ErrModuleFailed = errors.New("gmt: module call failed")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gmt.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error whose message is built from format and args.
// Use %w in format to keep a sentinel reachable through errors.Is.
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

// LibraryNotFoundError reports a failed attempt to open the shared library.
// It matches ErrLibraryNotFound under errors.Is.
type LibraryNotFoundError struct {
	Path string // Path handed to the dynamic loader
	Err  error  // Loader error
}

func (e *LibraryNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find the GMT shared library %q.\noriginal error message:\n%v", e.Path, e.Err)
}

func (e *LibraryNotFoundError) Unwrap() error {
	return e.Err
}

func (e *LibraryNotFoundError) Is(target error) bool {
	return target == ErrLibraryNotFound
}
