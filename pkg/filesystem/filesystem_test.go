package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/csmaptools/mapinstall/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations should behave the same for the operations the
// installer relies on.
func TestImplementations(t *testing.T) {
	tests := []struct {
		name string
		fsys types.FS
		root string
	}{
		{"os", filesystem.NewOS(), t.TempDir()},
		{"afero_memmap", filesystem.NewAferoFS(afero.NewMemMapFs()), "/work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := tt.fsys

			dir := filepath.Join(tt.root, "a", "b")
			require.NoError(t, fsys.MkdirAll(dir, 0o755))

			path := filepath.Join(dir, "file.bsp")
			w, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
			require.NoError(t, err)
			_, err = w.Write([]byte("level data"))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := fsys.Open(path)
			require.NoError(t, err)
			content, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, "level data", string(content))

			mtime := time.Date(2015, 6, 1, 12, 0, 0, 0, time.UTC)
			require.NoError(t, fsys.Chtimes(path, time.Now(), mtime))
			info, err := fsys.Stat(path)
			require.NoError(t, err)
			assert.True(t, info.ModTime().Equal(mtime))

			entries, err := fsys.ReadDir(filepath.Join(tt.root, "a"))
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "b", entries[0].Name())
			assert.True(t, entries[0].IsDir())

			tmp, err := fsys.TempDir("", "mapinstall-test-")
			require.NoError(t, err)
			_, err = fsys.Stat(tmp)
			require.NoError(t, err)
			require.NoError(t, fsys.RemoveAll(tmp))
			_, err = fsys.Stat(tmp)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestReadDirSortedByName(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/root/zeta", 0o755))
	require.NoError(t, fsys.MkdirAll("/root/alpha", 0o755))
	require.NoError(t, fsys.MkdirAll("/root/mid", 0o755))

	entries, err := fsys.ReadDir("/root")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}
