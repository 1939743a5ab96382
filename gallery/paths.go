// Package gallery owns the on-disk image layout and the zip archiving of
// past days. Images live in <root>/YYYY-MM-DD/HHMMSSmmm_<index>_<seed>.png;
// archived days become <root>/archive_YYYY-MM-DD.zip.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

// Paths resolves file locations under the gallery root.
type Paths struct {
	Root string
}

func NewPaths(root string) Paths {
	return Paths{Root: root}
}

// ImagePath returns where a freshly generated image should be written,
// named after the current time.
func (p Paths) ImagePath(index uint32, seed uint64) string {
	return p.imagePathAt(time.Now(), index, seed)
}

func (p Paths) imagePathAt(t time.Time, index uint32, seed uint64) string {
	dir := t.Format(dateLayout)
	name := fmt.Sprintf("%02d%02d%02d%03d_%d_%d.png",
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond),
		index, seed)
	return filepath.Join(p.Root, dir, name)
}

// WriteImage saves the bytes, creating the day folder if needed, and returns
// the path relative to the gallery root. Relative paths are what gets stored
// in records and served over /gallery.
func (p Paths) WriteImage(index uint32, seed uint64, data []byte) (string, error) {
	path := p.ImagePath(index, seed)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create gallery dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	rel, err := filepath.Rel(p.Root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// RemoveImage deletes one stored image by its record path. A missing file is
// not an error: the day may have been archived already.
func (p Paths) RemoveImage(relPath string) error {
	err := os.Remove(filepath.Join(p.Root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
