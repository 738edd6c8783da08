package checksum_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csmaptools/mapinstall/pkg/checksum"
	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	tempDir := t.TempDir()
	fsys := filesystem.NewOS()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty_file",
			content:  "",
			expected: "sha1:da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		{
			name:     "known_content",
			content:  "hello world",
			expected: "sha1:2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		},
		{
			name:     "binary_content",
			content:  "\x00\x01\x02\x03",
			expected: "sha1:a02a05b025b928c039cf1ae7e8ee04e7c190c0db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			digest, err := checksum.Fingerprint(fsys, path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, digest)
		})
	}
}

func TestFingerprintLargerThanBuffer(t *testing.T) {
	// Content spanning multiple read chunks must hash the same as a
	// single-shot digest of the full stream.
	tempDir := t.TempDir()
	fsys := filesystem.NewOS()

	content := strings.Repeat("de_dust2 ", 32*1024) // ~288 KiB
	path := filepath.Join(tempDir, "large.bsp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	first, err := checksum.Fingerprint(fsys, path)
	require.NoError(t, err)
	second, err := checksum.Fingerprint(fsys, path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "sha1:"))
	assert.Len(t, first, len("sha1:")+40)
}

func TestFingerprintEqualityMatchesContentEquality(t *testing.T) {
	tempDir := t.TempDir()
	fsys := filesystem.NewOS()

	a := filepath.Join(tempDir, "a.bsp")
	b := filepath.Join(tempDir, "b.bsp")
	c := filepath.Join(tempDir, "c.bsp")
	require.NoError(t, os.WriteFile(a, []byte("same bytes"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same bytes"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("other bytes"), 0o644))

	da, err := checksum.Fingerprint(fsys, a)
	require.NoError(t, err)
	db, err := checksum.Fingerprint(fsys, b)
	require.NoError(t, err)
	dc, err := checksum.Fingerprint(fsys, c)
	require.NoError(t, err)

	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)
}

func TestFingerprintMissingFile(t *testing.T) {
	fsys := filesystem.NewOS()
	_, err := checksum.Fingerprint(fsys, filepath.Join(t.TempDir(), "missing.bsp"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
