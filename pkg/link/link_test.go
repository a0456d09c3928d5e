package link_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mklnk/pkg/errors"
	"github.com/arthur-debert/mklnk/pkg/link"
	"github.com/arthur-debert/mklnk/pkg/reparse"
	"github.com/arthur-debert/mklnk/pkg/testutil"
	"github.com/arthur-debert/mklnk/pkg/types"
)

func TestCreateJunction(t *testing.T) {
	fs := testutil.NewFakeFS()
	creator := link.NewCreator(fs)

	req := types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`}
	require.NoError(t, creator.CreateJunction(req))

	assert.Equal(t, []string{
		"mkdir C:/tmp/linkA",
		"open C:/tmp/linkA",
		"set-reparse C:/tmp/linkA",
		"close C:/tmp/linkA",
	}, fs.Calls)

	require.NotNil(t, fs.LastHandle)
	assert.True(t, fs.LastHandle.Closed)

	// The installed buffer must decode back to the target.
	got, err := reparse.DecodeMountPoint(fs.LastHandle.ReparseData)
	require.NoError(t, err)
	assert.Equal(t, req.Target, got)
}

func TestCreateJunctionLinkAlreadyExists(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.Dirs[`C:\tmp\linkA`] = true
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Equal(t, errors.ExitJunction, errors.ExitCode(err))

	// No reparse point is attempted after the directory step fails.
	assert.Equal(t, []string{"mkdir C:/tmp/linkA"}, fs.Calls)
}

func TestCreateJunctionMkdirFailure(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.MkdirErr = stderrors.New("access denied")
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.ErrorContains(t, err, "access denied")
}

func TestCreateJunctionOpenFailure(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.OpenErr = stderrors.New("sharing violation")
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirOpen))

	// The created directory is left behind; no rollback.
	assert.True(t, fs.Dirs[`C:\tmp\linkA`])
	assert.Equal(t, []string{"mkdir C:/tmp/linkA", "open C:/tmp/linkA"}, fs.Calls)
}

func TestCreateJunctionSetReparseFailure(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.SetErr = stderrors.New("privilege not held")
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReparseSet))
	assert.Equal(t, errors.ExitJunction, errors.ExitCode(err))

	// The directory stays behind as a plain folder and the handle is
	// still released.
	assert.True(t, fs.Dirs[`C:\tmp\linkA`])
	require.NotNil(t, fs.LastHandle)
	assert.True(t, fs.LastHandle.Closed)
}

func TestCreateJunctionTargetTooLong(t *testing.T) {
	fs := testutil.NewFakeFS()
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{
		Link:   `C:\tmp\linkA`,
		Target: strings.Repeat("a", 40000),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetTooLong))

	// Encoding fails before the directory is opened.
	assert.Equal(t, []string{"mkdir C:/tmp/linkA"}, fs.Calls)
}

func TestCreateJunctionValidation(t *testing.T) {
	tests := []struct {
		name string
		req  types.LinkRequest
	}{
		{"empty_link", types.LinkRequest{Target: `C:\tmp\real`}},
		{"empty_target", types.LinkRequest{Link: `C:\tmp\linkA`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewFakeFS()
			creator := link.NewCreator(fs)

			err := creator.CreateJunction(tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Empty(t, fs.Calls, "validation failures must not touch the filesystem")
		})
	}
}

func TestCreateDelegations(t *testing.T) {
	req := types.LinkRequest{Link: `C:\tmp\lnk`, Target: `C:\tmp\real`}

	tests := []struct {
		name     string
		linkType types.LinkType
		wantCall string
	}{
		{"symbolic", types.LinkSymbolic, "symlink-file C:/tmp/lnk"},
		{"soft", types.LinkSoft, "symlink-dir C:/tmp/lnk"},
		{"hard", types.LinkHard, "hardlink C:/tmp/lnk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewFakeFS()
			creator := link.NewCreator(fs)

			require.NoError(t, creator.Create(tt.linkType, req))
			assert.Equal(t, []string{tt.wantCall}, fs.Calls)
		})
	}
}

func TestCreateDispatchesJunction(t *testing.T) {
	fs := testutil.NewFakeFS()
	creator := link.NewCreator(fs)

	req := types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`}
	require.NoError(t, creator.Create(types.LinkJunction, req))
	assert.Contains(t, fs.Calls, "set-reparse C:/tmp/linkA")
}

func TestUnsupportedPlatformPassesThrough(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.MkdirErr = errors.New(errors.ErrUnsupportedPlatform, "this utility only works on Windows")
	creator := link.NewCreator(fs)

	err := creator.CreateJunction(types.LinkRequest{Link: `C:\tmp\linkA`, Target: `C:\tmp\real`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
	assert.Equal(t, errors.ExitUnsupported, errors.ExitCode(err))
}
