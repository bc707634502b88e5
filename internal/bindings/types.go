package bindings

import "errors"

// Handle is the opaque address returned by dlopen for an opened library.
type Handle uintptr

var (
	// ErrNotBuilt reports that dynamic loading is not available for the
	// current GOOS/GOARCH, so libgmt can never be opened from this binary.
	ErrNotBuilt = errors.New("gmt/internal/bindings: dynamic loading not supported on this platform")

	// ErrNullHandle is returned when an operation receives a zero Handle.
	ErrNullHandle = errors.New("gmt/internal/bindings: null library handle")
)

// Funcs holds the GMT C API entry points registered against an opened
// library. Optional entry points that the library does not export stay nil.
type Funcs struct {
	// void *GMT_Create_Session(const char *tag, unsigned int pad,
	//                          unsigned int mode, int (*print_func)(FILE *, const char *))
	CreateSession func(tag string, pad, mode uint32, printFunc uintptr) uintptr

	// int GMT_Destroy_Session(void *API)
	DestroySession func(api uintptr) int32

	// int GMT_Get_Enum(void *API, char *key)
	GetEnum func(api uintptr, key string) int32

	// int GMT_Call_Module(void *API, const char *module, int mode, void *args)
	CallModule func(api uintptr, module string, mode int32, args string) int32

	// int GMT_Get_Default(void *API, const char *keyword, char *value)
	GetDefault func(api uintptr, keyword string, value *byte) int32
}

type entry struct {
	name     string
	fn       any
	required bool
}

func (f *Funcs) entries() []entry {
	return []entry{
		{"GMT_Create_Session", &f.CreateSession, true},
		{"GMT_Get_Enum", &f.GetEnum, true},
		{"GMT_Call_Module", &f.CallModule, true},
		{"GMT_Destroy_Session", &f.DestroySession, true},
		{"GMT_Get_Default", &f.GetDefault, false},
	}
}
