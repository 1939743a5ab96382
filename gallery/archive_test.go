package gallery

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	dates   []string
	deleted int64
}

func (f *fakePruner) DeleteGenerationRecordsByDates(_ context.Context, dates []string) (int64, error) {
	f.dates = dates
	return f.deleted, nil
}

func writeDay(t *testing.T, root, date string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, date)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestCreateArchivesForDates(t *testing.T) {
	root := t.TempDir()
	pruner := &fakePruner{deleted: 3}
	m := NewArchiveManager(NewPaths(root), pruner)

	writeDay(t, root, "2020-01-01", map[string]string{"a.png": "aaa", "b.png": "bbbb"})

	result, err := m.CreateArchivesForDates(context.Background(), []string{"2020-01-01"})
	require.NoError(t, err)
	require.Len(t, result.Archives, 1)
	require.Equal(t, "archive_2020-01-01.zip", result.Archives[0].Name)
	require.Equal(t, int64(3), result.DeletedRecords)
	require.Equal(t, []string{"2020-01-01"}, pruner.dates)

	// the day folder is gone, the zip holds the files under the date prefix
	_, err = os.Stat(filepath.Join(root, "2020-01-01"))
	require.True(t, os.IsNotExist(err))

	zr, err := zip.OpenReader(filepath.Join(root, "archive_2020-01-01.zip"))
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	require.ElementsMatch(t, []string{"2020-01-01/a.png", "2020-01-01/b.png"}, names)
}

func TestCreateArchivesSkipsExistingZip(t *testing.T) {
	root := t.TempDir()
	m := NewArchiveManager(NewPaths(root), &fakePruner{})

	writeDay(t, root, "2020-01-02", map[string]string{"a.png": "aaa"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "archive_2020-01-02.zip"), []byte("old"), 0o644))

	result, err := m.CreateArchivesForDates(context.Background(), []string{"2020-01-02"})
	require.NoError(t, err)
	require.Empty(t, result.Archives)

	// existing zip untouched, folder kept
	data, err := os.ReadFile(filepath.Join(root, "archive_2020-01-02.zip"))
	require.NoError(t, err)
	require.Equal(t, []byte("old"), data)
	_, err = os.Stat(filepath.Join(root, "2020-01-02"))
	require.NoError(t, err)
}

func TestCreateArchivesValidation(t *testing.T) {
	m := NewArchiveManager(NewPaths(t.TempDir()), &fakePruner{})
	ctx := context.Background()

	_, err := m.CreateArchivesForDates(ctx, nil)
	require.Error(t, err)

	_, err = m.CreateArchivesForDates(ctx, []string{"not-a-date"})
	require.Error(t, err)

	_, err = m.CreateArchivesForDates(ctx, []string{"9999-12-31"})
	require.ErrorContains(t, err, "future")
}

func TestCreateArchivesNothingToDo(t *testing.T) {
	m := NewArchiveManager(NewPaths(t.TempDir()), &fakePruner{})

	_, err := m.CreateArchives(context.Background())
	require.ErrorIs(t, err, ErrNothingToArchive)
}

func TestListArchivableDates(t *testing.T) {
	root := t.TempDir()
	m := NewArchiveManager(NewPaths(root), &fakePruner{})

	writeDay(t, root, "2020-01-01", map[string]string{"a.png": "aaa"})
	writeDay(t, root, "2020-01-05", map[string]string{"b.png": "bb", "c.png": "c"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-date"), 0o755))

	dates, err := m.ListArchivableDates()
	require.NoError(t, err)
	require.Len(t, dates, 2)

	// newest first
	require.Equal(t, "2020-01-05", dates[0].Date)
	require.Equal(t, 2, dates[0].ImageCount)
	require.Equal(t, int64(3), dates[0].TotalSize)
	require.Equal(t, "2020-01-01", dates[1].Date)
}

func TestDeleteArchive(t *testing.T) {
	root := t.TempDir()
	m := NewArchiveManager(NewPaths(root), &fakePruner{})

	require.NoError(t, os.WriteFile(filepath.Join(root, "archive_2020-01-01.zip"), []byte("zip"), 0o644))

	ok, err := m.DeleteArchive("archive_2020-01-01.zip")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.DeleteArchive("archive_2020-01-01.zip")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestArchiveNameValidation(t *testing.T) {
	m := NewArchiveManager(NewPaths(t.TempDir()), &fakePruner{})

	bad := []string{"../etc/passwd.zip", "a/b.zip", `a\b.zip`, "notzip.txt", "..zip"}
	for _, name := range bad {
		_, err := m.ArchivePath(name)
		require.ErrorIs(t, err, ErrInvalidArchiveName, "name %q", name)
	}

	_, err := m.ArchivePath("archive_2020-01-01.zip")
	require.ErrorIs(t, err, ErrArchiveNotFound)
}
