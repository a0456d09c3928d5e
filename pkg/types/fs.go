package types

// FS is the platform filesystem surface the link creator depends on.
// The junction path needs exactly three capabilities: create an empty
// directory, open it for reparse-data writes, and (through the returned
// handle) install a reparse buffer. The other three link kinds are
// single-call delegations to the platform's native link primitives.
//
// Keeping this as an interface lets the buffer-encoding and
// orchestration logic run against a recording fake in tests instead of
// a real filesystem.
type FS interface {
	// Mkdir creates an empty directory at path. It fails if the path
	// already exists or the parent is missing.
	Mkdir(path string) error

	// OpenReparseHandle opens the directory at path for writing reparse
	// data. The caller owns the returned handle and must Close it.
	OpenReparseHandle(path string) (ReparseHandle, error)

	// SymlinkFile creates a file symbolic link at link pointing to target.
	SymlinkFile(target, link string) error

	// SymlinkDir creates a directory symbolic link at link pointing to
	// target.
	SymlinkDir(target, link string) error

	// Hardlink creates a hard link at link pointing to target.
	Hardlink(target, link string) error
}

// ReparseHandle is an open directory handle that accepts reparse data.
type ReparseHandle interface {
	// SetReparsePoint atomically installs data as the directory's
	// reparse data, or fails leaving it a plain directory.
	SetReparsePoint(data []byte) error

	// Close releases the handle. It must be called on every exit path.
	Close() error
}
