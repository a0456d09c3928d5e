package mklnk

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mklnk/pkg/errors"
	"github.com/arthur-debert/mklnk/pkg/testutil"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootNoLinkType(t *testing.T) {
	fs := testutil.NewFakeFS()
	_, err := execute(newRootCmd(fs),
		"-t", `C:\tmp\linkA`, "-o", `C:\tmp\real`, "--color", "never")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoLinkType))
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
	assert.Empty(t, fs.Calls, "usage errors must be rejected before any filesystem call")
}

func TestRootMultipleLinkTypes(t *testing.T) {
	fs := testutil.NewFakeFS()
	_, err := execute(newRootCmd(fs),
		"--soft", "--hard", "-t", `C:\tmp\linkA`, "-o", `C:\tmp\real`, "--color", "never")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMultipleLinkTypes))
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
	assert.Empty(t, fs.Calls)
}

func TestRootMissingPaths(t *testing.T) {
	fs := testutil.NewFakeFS()
	_, err := execute(newRootCmd(fs), "--junction", "--color", "never")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, fs.Calls)
}

func TestRootCreatesJunction(t *testing.T) {
	fs := testutil.NewFakeFS()
	out, err := execute(newRootCmd(fs),
		"--junction", "-t", `C:\tmp\linkA`, "-o", `C:\tmp\real`, "--color", "never")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"mkdir C:/tmp/linkA",
		"open C:/tmp/linkA",
		"set-reparse C:/tmp/linkA",
		"close C:/tmp/linkA",
	}, fs.Calls)
	assert.Contains(t, out, "Junction created at source")
	assert.Contains(t, out, `C:\tmp\linkA`)
	assert.Contains(t, out, `C:\tmp\real`)
}

func TestRootCreatesSymbolicLink(t *testing.T) {
	fs := testutil.NewFakeFS()
	out, err := execute(newRootCmd(fs),
		"-d", "-t", `C:\tmp\note.lnk`, "-o", `C:\tmp\note.txt`, "--color", "never")

	require.NoError(t, err)
	assert.Equal(t, `C:\tmp\note.txt`, fs.Symlinks[`C:\tmp\note.lnk`])
	assert.Contains(t, out, "Symbolic Link created at source")
}

func TestRootCreatesHardLink(t *testing.T) {
	fs := testutil.NewFakeFS()
	_, err := execute(newRootCmd(fs),
		"--hard", "-t", `C:\tmp\copy.txt`, "-o", `C:\tmp\orig.txt`, "--color", "never")

	require.NoError(t, err)
	assert.Equal(t, `C:\tmp\orig.txt`, fs.Hardlinks[`C:\tmp\copy.txt`])
}

func TestRootJunctionFailureExitCode(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.SetErr = assert.AnError

	_, err := execute(newRootCmd(fs),
		"-j", "-t", `C:\tmp\linkA`, "-o", `C:\tmp\real`, "--color", "never")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReparseSet))
	assert.Equal(t, errors.ExitJunction, errors.ExitCode(err))

	// The directory is left behind as a plain folder.
	assert.True(t, fs.Dirs[`C:\tmp\linkA`])
}

func TestRootConfigFile(t *testing.T) {
	fs := testutil.NewFakeFS()
	path := writeTestConfig(t, "[output]\ncolor = \"never\"\n")

	out, err := execute(newRootCmd(fs),
		"--junction", "-t", `C:\x`, "-o", `C:\y`, "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Junction created at source")
}

func TestRootBadColorMode(t *testing.T) {
	fs := testutil.NewFakeFS()
	_, err := execute(newRootCmd(fs),
		"--junction", "-t", `C:\x`, "-o", `C:\y`, "--color", "rainbow")

	require.Error(t, err)
	assert.Empty(t, fs.Calls)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(newRootCmd(testutil.NewFakeFS()), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mklnk version")
}
