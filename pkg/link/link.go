// Package link materializes filesystem links. The junction path is the
// interesting one: create an empty directory, encode the target into a
// mount-point reparse buffer, and install the buffer through the
// platform's device-control interface. The soft, hard, and symbolic
// kinds are single-call delegations to native primitives.
package link

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/mklnk/pkg/errors"
	"github.com/arthur-debert/mklnk/pkg/logging"
	"github.com/arthur-debert/mklnk/pkg/reparse"
	"github.com/arthur-debert/mklnk/pkg/types"
)

// wrap attaches a code and message to a platform error, except for
// unsupported-platform errors, which pass through unchanged so they
// keep their dedicated exit code.
func wrap(err error, code errors.ErrorCode, format string, args ...interface{}) error {
	if errors.IsErrorCode(err, errors.ErrUnsupportedPlatform) {
		return err
	}
	return errors.Wrapf(err, code, format, args...)
}

// Creator performs link creation against a platform filesystem.
type Creator struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewCreator returns a Creator backed by the given filesystem.
func NewCreator(fs types.FS) *Creator {
	return &Creator{
		fs:     fs,
		logger: logging.GetLogger("link"),
	}
}

// Create dispatches to the creation routine for the given link kind.
func (c *Creator) Create(linkType types.LinkType, req types.LinkRequest) error {
	switch linkType {
	case types.LinkJunction:
		return c.CreateJunction(req)
	case types.LinkSymbolic:
		return c.CreateSymlink(req)
	case types.LinkHard:
		return c.CreateHardlink(req)
	case types.LinkSoft:
		return c.CreateSoftlink(req)
	default:
		return errors.Newf(errors.ErrInternal, "unknown link type %d", linkType)
	}
}

// CreateJunction creates a directory junction at req.Link resolving to
// req.Target.
//
// The sequence is create directory, encode buffer, open handle, set
// reparse point. On failure after the directory has been created, the
// directory is left behind as a plain empty folder; there is no
// rollback. The open handle is closed on every exit path.
func (c *Creator) CreateJunction(req types.LinkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	logger := c.logger.With().Str("link", req.Link).Str("target", req.Target).Logger()
	logger.Debug().Msg("Creating junction")

	if err := c.fs.Mkdir(req.Link); err != nil {
		return wrap(err, errors.ErrDirCreate,
			"failed to create directory for junction point at %s", req.Link)
	}

	buf, err := reparse.EncodeMountPoint(req.Target)
	if err != nil {
		logger.Warn().Err(err).Msg("Leaving plain directory behind after encoding failure")
		return err
	}

	handle, err := c.fs.OpenReparseHandle(req.Link)
	if err != nil {
		logger.Warn().Err(err).Msg("Leaving plain directory behind after open failure")
		return wrap(err, errors.ErrDirOpen,
			"failed to open junction directory %s", req.Link)
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close junction directory handle")
		}
	}()

	if err := handle.SetReparsePoint(buf); err != nil {
		logger.Warn().Err(err).Msg("Leaving plain directory behind after reparse failure")
		return wrap(err, errors.ErrReparseSet,
			"failed to set reparse point for junction at %s", req.Link)
	}

	logger.Debug().Int("bufferBytes", len(buf)).Msg("Junction created")
	return nil
}

// CreateSymlink creates a file symbolic link.
func (c *Creator) CreateSymlink(req types.LinkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := c.fs.SymlinkFile(req.Target, req.Link); err != nil {
		return wrap(err, errors.ErrSymlinkCreate, "failed to create symbolic link")
	}
	return nil
}

// CreateHardlink creates a hard link.
func (c *Creator) CreateHardlink(req types.LinkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := c.fs.Hardlink(req.Target, req.Link); err != nil {
		return wrap(err, errors.ErrHardlinkCreate, "failed to create hard link")
	}
	return nil
}

// CreateSoftlink creates a directory symbolic link.
func (c *Creator) CreateSoftlink(req types.LinkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := c.fs.SymlinkDir(req.Target, req.Link); err != nil {
		return wrap(err, errors.ErrSoftlinkCreate, "failed to create soft link")
	}
	return nil
}
