package gmt

import "fmt"

// SymbolLookup resolves exported symbol names of an opened shared library.
type SymbolLookup interface {
	Lookup(name string) (uintptr, error)
}

const symbolPrefix = "GMT_"

// Checked in this order; the first missing one is reported.
var requiredFunctions = []string{
	"Create_Session",
	"Get_Enum",
	"Call_Module",
	"Destroy_Session",
}

// RequiredSymbols returns the entry points CheckLibrary looks for, in check
// order.
func RequiredSymbols() []string {
	names := make([]string, len(requiredFunctions))
	for i, fn := range requiredFunctions {
		names[i] = symbolPrefix + fn
	}
	return names
}

// CheckLibrary makes sure lib exports the functions the binding needs. It
// returns nil when all of them are present, and otherwise an error matching
// ErrLibraryLoad that names the first missing function.
func CheckLibrary(lib SymbolLookup) error {
	for _, name := range RequiredSymbols() {
		addr, err := lib.Lookup(name)
		if err != nil || addr == 0 {
			return fmt.Errorf("%w: couldn't access function %s", ErrLibraryLoad, name)
		}
	}
	return nil
}
