package gmt

import (
	"bytes"
	"sort"
)

const (
	// enumNotSet is what GMT_Get_Enum returns for names it does not know.
	enumNotSet = -99999

	// valueBufferSize is the buffer handed to GMT_Get_Default.
	valueBufferSize = 10000
)

// infoKeys maps the names reported by Session.Info to GMT_Get_Default keys.
var infoKeys = map[string]string{
	"version":      "API_VERSION",
	"padding":      "API_PAD",
	"binary dir":   "API_BINDIR",
	"share dir":    "API_SHAREDIR",
	"library path": "API_LIBRARY",
	"cores":        "API_CORES",
	"grid layout":  "API_GRID_LAYOUT",
}

// Session is one GMT API session: the pointer returned by GMT_Create_Session
// plus the library it came from. Module calls made through the same Session
// share state such as default parameters.
type Session struct {
	lib     *Library
	name    string
	api     uintptr
	modeCmd int
	closed  bool
}

// NewSession creates a GMT API session named name on lib. The session uses
// GMT's default grid padding and the external session mode, as any binding
// calling GMT from another program does.
func NewSession(lib *Library, name string) (*Session, error) {
	f, err := lib.api()
	if err != nil {
		return nil, errorf("NewSession", "%w", err)
	}

	pad, err := lookupEnum(lib, 0, "GMT_PAD_DEFAULT")
	if err != nil {
		return nil, err
	}
	mode, err := lookupEnum(lib, 0, "GMT_SESSION_EXTERNAL")
	if err != nil {
		return nil, err
	}

	api := f.CreateSession(name, uint32(pad), uint32(mode), 0)
	if api == 0 {
		return nil, errorf("NewSession", "%w: %q", ErrSessionCreate, name)
	}

	s := &Session{lib: lib, name: name, api: api}
	if s.modeCmd, err = s.GetEnum("GMT_MODULE_CMD"); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Name returns the tag the session was created with.
func (s *Session) Name() string {
	return s.name
}

// GetEnum returns the integer value of a GMT constant such as
// "GMT_MODULE_CMD". Unknown names fail with ErrInvalidInput.
func (s *Session) GetEnum(name string) (int, error) {
	if s == nil || s.closed {
		return 0, ErrSessionClosed
	}
	return lookupEnum(s.lib, s.api, name)
}

func lookupEnum(lib *Library, api uintptr, name string) (int, error) {
	f, err := lib.api()
	if err != nil {
		return 0, errorf("GetEnum", "%w", err)
	}
	v := int(f.GetEnum(api, name))
	if v == enumNotSet {
		return 0, errorf("GetEnum", "%w: constant %q not found", ErrInvalidInput, name)
	}
	return v, nil
}

// CallModule runs a GMT module (e.g. "basemap") with a command-line style
// argument string. A non-zero status fails with ErrModuleFailed.
func (s *Session) CallModule(module, args string) error {
	if s == nil || s.closed {
		return ErrSessionClosed
	}
	f, err := s.lib.api()
	if err != nil {
		return errorf("CallModule", "%w", err)
	}
	status := f.CallModule(s.api, module, int32(s.modeCmd), args)
	if status != 0 {
		return errorf("CallModule", "%w: module %q with args %q returned status %d",
			ErrModuleFailed, module, args, status)
	}
	return nil
}

// GetDefault returns the value of a GMT default parameter or API setting,
// e.g. "API_VERSION" or "PROJ_LENGTH_UNIT".
func (s *Session) GetDefault(key string) (string, error) {
	if s == nil || s.closed {
		return "", ErrSessionClosed
	}
	f, err := s.lib.api()
	if err != nil {
		return "", errorf("GetDefault", "%w", err)
	}
	if f.GetDefault == nil {
		return "", errorf("GetDefault", "%w: couldn't access function GMT_Get_Default", ErrLibraryLoad)
	}
	buf := make([]byte, valueBufferSize)
	if status := f.GetDefault(s.api, key, &buf[0]); status != 0 {
		return "", errorf("GetDefault", "%w: parameter %q returned status %d", ErrInvalidInput, key, status)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// Info reports facts about the loaded library: version, padding, binary dir,
// share dir, library path, cores and grid layout.
func (s *Session) Info() (map[string]string, error) {
	info := make(map[string]string, len(infoKeys))
	for _, name := range InfoNames() {
		v, err := s.GetDefault(infoKeys[name])
		if err != nil {
			return nil, err
		}
		info[name] = v
	}
	return info, nil
}

// InfoNames returns the keys of Session.Info in sorted order.
func InfoNames() []string {
	names := make([]string, 0, len(infoKeys))
	for k := range infoKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Close destroys the GMT session. It is attempted exactly once; later calls
// return ErrSessionClosed.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true

	f, err := s.lib.api()
	if err != nil {
		return errorf("Close", "%w", err)
	}
	if status := f.DestroySession(s.api); status != 0 {
		return errorf("Close", "GMT_Destroy_Session returned status %d", status)
	}
	s.api = 0
	return nil
}
