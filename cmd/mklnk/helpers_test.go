package mklnk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mklnk.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
