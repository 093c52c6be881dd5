package corpus

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMemberNotFound is returned when the archive does not contain the
// expected vector file.
var ErrMemberNotFound = errors.New("file not found in archive")

// extractFile copies the named member out of the zip archive to dest.
// Archive entries may carry a directory prefix; matching is on the exact
// member name as stored.
func extractFile(archivePath, member, dest string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != member {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open archive member: %w", err)
		}
		defer rc.Close()

		out, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer out.Close()

		if _, err := io.Copy(out, rc); err != nil {
			return err
		}
		return out.Close()
	}

	return fmt.Errorf("%w: %s", ErrMemberNotFound, member)
}
