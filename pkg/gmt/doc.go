// Package gmt loads the native Generic Mapping Tools library (libgmt) and
// drives sessions against it.
//
// The package covers the loading side of the binding: resolving the shared
// library file name for the running platform, honoring GMT_LIBRARY_PATH,
// opening the library, and checking that it exports the entry points the
// binding needs. On top of that it offers a Session that creates and destroys
// GMT API sessions and invokes modules, and a Runtime that owns the single
// modern-mode session a process normally keeps open.
//
// Data conversion into contiguous buffers lives in the marshal subpackage.
//
// # Loading
//
//	path, err := gmt.LibraryPath(nil) // nil env means the process environment
//	if err != nil {
//	    return err
//	}
//	lib, err := gmt.Load(path)
//	if errors.Is(err, gmt.ErrLibraryNotFound) {
//	    // GMT is not installed or GMT_LIBRARY_PATH points elsewhere.
//	}
//	defer lib.Close()
//
// # Runtime
//
//	rt, err := gmt.Begin(ctx, gmt.Config{})
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//	err = rt.Session().CallModule("basemap", "-R0/10/0/10 -JX10c -Baf")
//
// Neither Library nor Session is safe for concurrent use; callers serialize
// access to a single handle.
package gmt
