package nai

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// extractFileByName pulls a single file out of an in-memory zip archive.
func extractFileByName(raw []byte, name string) ([]byte, error) {
	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	for _, file := range archive.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}

	return nil, fmt.Errorf("file %q not found in archive", name)
}
