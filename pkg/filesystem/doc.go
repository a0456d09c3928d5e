// Package filesystem provides the platform implementations of the
// types.FS interface. The Windows implementation talks to the native
// primitives through golang.org/x/sys/windows; every other platform
// gets a stub that refuses all operations, since the link kinds this
// tool creates only exist on Windows filesystems.
package filesystem
