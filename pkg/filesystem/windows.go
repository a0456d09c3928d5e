//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"

	"github.com/arthur-debert/mklnk/pkg/reparse"
	"github.com/arthur-debert/mklnk/pkg/types"
)

// windowsFS implements types.FS on top of the Win32 primitives.
type windowsFS struct{}

// New returns the Windows filesystem implementation.
func New() types.FS {
	return &windowsFS{}
}

func (w *windowsFS) Mkdir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	// No security descriptor: the directory inherits from its parent.
	return windows.CreateDirectory(p, nil)
}

func (w *windowsFS) OpenReparseHandle(path string) (types.ReparseHandle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	// FILE_FLAG_OPEN_REPARSE_POINT keeps the open from traversing an
	// existing reparse point; FILE_FLAG_BACKUP_SEMANTICS is required to
	// open a directory at all.
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_OPEN_REPARSE_POINT|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return nil, err
	}
	return &reparseHandle{handle: h}, nil
}

func (w *windowsFS) SymlinkFile(target, link string) error {
	return w.symlink(target, link, 0)
}

func (w *windowsFS) SymlinkDir(target, link string) error {
	return w.symlink(target, link, windows.SYMBOLIC_LINK_FLAG_DIRECTORY)
}

func (w *windowsFS) symlink(target, link string, flags uint32) error {
	linkp, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return err
	}
	targetp, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	// Unprivileged creation works when Developer Mode is enabled;
	// otherwise the call falls back to requiring SeCreateSymbolicLink.
	err = windows.CreateSymbolicLink(linkp, targetp,
		flags|windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE)
	if err == windows.ERROR_INVALID_PARAMETER {
		err = windows.CreateSymbolicLink(linkp, targetp, flags)
	}
	return err
}

func (w *windowsFS) Hardlink(target, link string) error {
	linkp, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return err
	}
	targetp, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	return windows.CreateHardLink(linkp, targetp, 0)
}

// reparseHandle wraps an open directory handle that accepts reparse
// data through DeviceIoControl.
type reparseHandle struct {
	handle windows.Handle
}

func (h *reparseHandle) SetReparsePoint(data []byte) error {
	var bytesReturned uint32
	return windows.DeviceIoControl(
		h.handle,
		reparse.FSCTLSetReparsePoint,
		&data[0],
		uint32(len(data)),
		nil,
		0,
		&bytesReturned,
		nil,
	)
}

func (h *reparseHandle) Close() error {
	return windows.CloseHandle(h.handle)
}
