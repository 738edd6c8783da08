// Package checksum computes content fingerprints used for conflict
// detection. Digests are compared for equality only, never used as
// identifiers across unrelated files.
package checksum

import (
	"crypto/sha1"
	"encoding/hex"
	"io"

	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// bufferSize bounds memory use regardless of file size.
const bufferSize = 64 * 1024

// Fingerprint returns the SHA-1 digest of the file's content as
// "sha1:<hex>". The file is read in fixed-size chunks, never loaded whole.
func Fingerprint(fsys types.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	h := sha1.New()
	buf := make([]byte, bufferSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return "sha1:" + hex.EncodeToString(h.Sum(nil)), nil
}
