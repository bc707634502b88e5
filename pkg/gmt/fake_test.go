package gmt

import (
	"unsafe"

	"github.com/genericmappingtools/gmt-go/internal/bindings"
)

const fakeAPI uintptr = 0xbeef

// fakeGMT stands in for the native entry points so sessions can be exercised
// without libgmt installed.
type fakeGMT struct {
	enums    map[string]int32
	defaults map[string]string
	status   map[string]int32

	created     []string
	pad, mode   uint32
	calls       []string
	callModes   []int32
	destroyed   int
	nullSession bool
	noDefaults  bool
}

func newFakeGMT() *fakeGMT {
	return &fakeGMT{
		enums: map[string]int32{
			"GMT_PAD_DEFAULT":      2,
			"GMT_SESSION_EXTERNAL": 2,
			"GMT_MODULE_CMD":       -7,
		},
		defaults: map[string]string{
			"API_VERSION":     "6.5.0",
			"API_PAD":         "2",
			"API_BINDIR":      "/usr/bin",
			"API_SHAREDIR":    "/usr/share/gmt",
			"API_LIBRARY":     "/usr/lib/libgmt.so",
			"API_CORES":       "8",
			"API_GRID_LAYOUT": "rows",
		},
		status: map[string]int32{},
	}
}

func (f *fakeGMT) library() *Library {
	return &Library{path: "libgmt.so", funcs: f.funcs()}
}

func (f *fakeGMT) funcs() *bindings.Funcs {
	fn := &bindings.Funcs{
		CreateSession: func(tag string, pad, mode uint32, _ uintptr) uintptr {
			f.created = append(f.created, tag)
			f.pad, f.mode = pad, mode
			if f.nullSession {
				return 0
			}
			return fakeAPI
		},
		DestroySession: func(api uintptr) int32 {
			f.destroyed++
			return 0
		},
		GetEnum: func(_ uintptr, key string) int32 {
			if v, ok := f.enums[key]; ok {
				return v
			}
			return enumNotSet
		},
		CallModule: func(_ uintptr, module string, mode int32, args string) int32 {
			f.calls = append(f.calls, module+" "+args)
			f.callModes = append(f.callModes, mode)
			return f.status[module]
		},
	}
	if !f.noDefaults {
		fn.GetDefault = func(_ uintptr, key string, value *byte) int32 {
			v, ok := f.defaults[key]
			if !ok {
				return 1
			}
			buf := unsafe.Slice(value, valueBufferSize)
			n := copy(buf, v)
			buf[n] = 0
			return 0
		}
	}
	return fn
}
