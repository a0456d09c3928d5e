//go:build !windows

package filesystem

import (
	"github.com/arthur-debert/mklnk/pkg/errors"
	"github.com/arthur-debert/mklnk/pkg/types"
)

// unsupportedFS refuses every operation. Junctions, Windows symbolic
// links, and CreateHardLinkW have no equivalent surface here, so the
// whole tool reports the platform as unsupported.
type unsupportedFS struct{}

// New returns the stub filesystem for non-Windows platforms.
func New() types.FS {
	return &unsupportedFS{}
}

func errUnsupported() error {
	return errors.New(errors.ErrUnsupportedPlatform, "this utility only works on Windows")
}

func (u *unsupportedFS) Mkdir(string) error { return errUnsupported() }

func (u *unsupportedFS) OpenReparseHandle(string) (types.ReparseHandle, error) {
	return nil, errUnsupported()
}

func (u *unsupportedFS) SymlinkFile(string, string) error { return errUnsupported() }

func (u *unsupportedFS) SymlinkDir(string, string) error { return errUnsupported() }

func (u *unsupportedFS) Hardlink(string, string) error { return errUnsupported() }
