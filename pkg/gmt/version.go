package gmt

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go binding. In development it
// defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the version reported by the loaded libgmt.
func LibraryVersion(s *Session) (string, error) {
	return s.GetDefault("API_VERSION")
}
