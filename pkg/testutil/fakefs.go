// Package testutil provides test doubles for the platform filesystem.
package testutil

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/mklnk/pkg/types"
)

// FakeFS implements types.FS by recording every call and optionally
// injecting failures. It keeps just enough state to assert on the
// junction-creation sequence without touching a real filesystem.
type FakeFS struct {
	// Calls lists the operations performed, in order.
	Calls []string

	// Dirs tracks directories created through Mkdir.
	Dirs map[string]bool

	// Symlinks and Hardlinks record link -> target for the delegating
	// link kinds.
	Symlinks  map[string]string
	Hardlinks map[string]string

	// Error injection
	MkdirErr error
	OpenErr  error
	SetErr   error
	CloseErr error

	// LastHandle is the handle returned by the most recent
	// OpenReparseHandle call.
	LastHandle *FakeHandle
}

var _ types.FS = (*FakeFS)(nil)

// NewFakeFS returns an empty fake filesystem.
func NewFakeFS() *FakeFS {
	return &FakeFS{
		Dirs:      make(map[string]bool),
		Symlinks:  make(map[string]string),
		Hardlinks: make(map[string]string),
	}
}

// record normalizes separators so call assertions read the same on
// every platform the tests run on.
func (f *FakeFS) record(op, path string) {
	f.Calls = append(f.Calls, op+" "+strings.ReplaceAll(path, `\`, "/"))
}

func (f *FakeFS) Mkdir(path string) error {
	f.record("mkdir", path)
	if f.MkdirErr != nil {
		return f.MkdirErr
	}
	if f.Dirs[path] {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	f.Dirs[path] = true
	return nil
}

func (f *FakeFS) OpenReparseHandle(path string) (types.ReparseHandle, error) {
	f.record("open", path)
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	if !f.Dirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	f.LastHandle = &FakeHandle{fs: f, path: path}
	return f.LastHandle, nil
}

func (f *FakeFS) SymlinkFile(target, link string) error {
	f.record("symlink-file", link)
	f.Symlinks[link] = target
	return nil
}

func (f *FakeFS) SymlinkDir(target, link string) error {
	f.record("symlink-dir", link)
	f.Symlinks[link] = target
	return nil
}

func (f *FakeFS) Hardlink(target, link string) error {
	f.record("hardlink", link)
	f.Hardlinks[link] = target
	return nil
}

// FakeHandle records reparse-point submissions against one directory.
type FakeHandle struct {
	fs   *FakeFS
	path string

	// ReparseData is the buffer from the last SetReparsePoint call.
	ReparseData []byte
	// Closed reports whether Close has been called.
	Closed bool
}

func (h *FakeHandle) SetReparsePoint(data []byte) error {
	h.fs.record("set-reparse", h.path)
	if h.fs.SetErr != nil {
		return h.fs.SetErr
	}
	h.ReparseData = append([]byte(nil), data...)
	return nil
}

func (h *FakeHandle) Close() error {
	h.fs.record("close", h.path)
	h.Closed = true
	return h.fs.CloseErr
}
