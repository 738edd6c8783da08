package paths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/csmaptools/mapinstall/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDotSegments(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	direct, err := paths.Resolve(sub)
	require.NoError(t, err)

	dotted, err := paths.Resolve(filepath.Join(dir, "sub", ".", "..", "sub"))
	require.NoError(t, err)

	assert.Equal(t, direct, dotted)
}

func TestResolveSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	resolvedTarget, err := paths.Resolve(target)
	require.NoError(t, err)
	resolvedLink, err := paths.Resolve(link)
	require.NoError(t, err)

	assert.Equal(t, resolvedTarget, resolvedLink)
}

func TestResolveNonexistentFallsBackToClean(t *testing.T) {
	resolved, err := paths.Resolve(filepath.Join(t.TempDir(), "missing", "..", "missing"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
	assert.Equal(t, "missing", filepath.Base(resolved))
}
