package gallery

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrNothingToArchive   = errors.New("no directories to archive (only today's images exist)")
	ErrInvalidArchiveName = errors.New("invalid archive name")
	ErrInvalidArchiveDate = errors.New("invalid archive date")
	ErrArchiveNotFound    = errors.New("archive not found")
)

// ArchiveInfo describes one archive zip on disk.
type ArchiveInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ArchivableDate is a past day folder that can still be archived.
type ArchivableDate struct {
	Date       string `json:"date"`
	ImageCount int    `json:"image_count"`
	TotalSize  int64  `json:"total_size"`
}

// ArchiveResult reports what a run produced.
type ArchiveResult struct {
	Archives       []ArchiveInfo `json:"archives"`
	DeletedRecords int64         `json:"deleted_records"`
}

// RecordPruner is the slice of the database the archiver needs: dropping the
// history rows of days whose files moved into a zip.
type RecordPruner interface {
	DeleteGenerationRecordsByDates(ctx context.Context, dates []string) (int64, error)
}

// ArchiveManager zips past day folders and prunes their records.
type ArchiveManager struct {
	paths   Paths
	records RecordPruner
}

func NewArchiveManager(paths Paths, records RecordPruner) *ArchiveManager {
	return &ArchiveManager{paths: paths, records: records}
}

// ListArchives returns all archive zips under the gallery root, newest first.
func (m *ArchiveManager) ListArchives() ([]ArchiveInfo, error) {
	archives := []ArchiveInfo{}

	entries, err := os.ReadDir(m.paths.Root)
	if os.IsNotExist(err) {
		return archives, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		archives = append(archives, ArchiveInfo{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].CreatedAt.After(archives[j].CreatedAt)
	})
	return archives, nil
}

// ListArchivableDates returns the day folders older than today, newest first.
func (m *ArchiveManager) ListArchivableDates() ([]ArchivableDate, error) {
	today := time.Now().Format(dateLayout)
	dates := []ArchivableDate{}

	entries, err := os.ReadDir(m.paths.Root)
	if os.IsNotExist(err) {
		return dates, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isDateName(entry.Name()) || entry.Name() >= today {
			continue
		}

		count := 0
		var size int64
		files, err := os.ReadDir(filepath.Join(m.paths.Root, entry.Name()))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			info, err := file.Info()
			if err != nil {
				continue
			}
			count++
			size += info.Size()
		}

		dates = append(dates, ArchivableDate{
			Date:       entry.Name(),
			ImageCount: count,
			TotalSize:  size,
		})
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Date > dates[j].Date
	})
	return dates, nil
}

// CreateArchives archives every day older than today.
func (m *ArchiveManager) CreateArchives(ctx context.Context) (*ArchiveResult, error) {
	archivable, err := m.ListArchivableDates()
	if err != nil {
		return nil, err
	}
	if len(archivable) == 0 {
		return nil, ErrNothingToArchive
	}

	dates := make([]string, len(archivable))
	for i, d := range archivable {
		dates[i] = d.Date
	}
	return m.CreateArchivesForDates(ctx, dates)
}

// CreateArchivesForDates archives the named days. Days whose zip already
// exists are skipped; days without a folder are ignored. Today and future
// dates are rejected.
func (m *ArchiveManager) CreateArchivesForDates(ctx context.Context, dates []string) (*ArchiveResult, error) {
	if len(dates) == 0 {
		return nil, errors.New("no dates specified for archiving")
	}

	today := time.Now().Format(dateLayout)

	var dirs []string
	for _, date := range dates {
		if !isDateName(date) {
			return nil, fmt.Errorf("%w: bad format %q", ErrInvalidArchiveDate, date)
		}
		if date >= today {
			return nil, fmt.Errorf("%w: %s is today or in the future", ErrInvalidArchiveDate, date)
		}
		dir := filepath.Join(m.paths.Root, date)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, ErrNothingToArchive
	}
	sort.Strings(dirs)

	created := []ArchiveInfo{}
	archivedDates := []string{}

	for _, dir := range dirs {
		date := filepath.Base(dir)
		archivedDates = append(archivedDates, date)

		archiveName := "archive_" + date + ".zip"
		archivePath := filepath.Join(m.paths.Root, archiveName)

		if _, err := os.Stat(archivePath); err == nil {
			log.Info().Str("archive", archiveName).Msg("archive already exists, skipping")
			continue
		}

		if err := zipDir(dir, date, archivePath); err != nil {
			return nil, fmt.Errorf("archive %s: %w", date, err)
		}
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("remove archived dir %s: %w", dir, err)
		}

		info, err := os.Stat(archivePath)
		if err != nil {
			return nil, err
		}
		created = append(created, ArchiveInfo{
			Name:      archiveName,
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})

		log.Info().Str("date", date).Msg("archived date folder")
	}

	deleted, err := m.records.DeleteGenerationRecordsByDates(ctx, archivedDates)
	if err != nil {
		return nil, fmt.Errorf("delete archived records: %w", err)
	}
	log.Info().Int64("deleted", deleted).Strs("dates", archivedDates).
		Msg("deleted archived records from database")

	return &ArchiveResult{Archives: created, DeletedRecords: deleted}, nil
}

// DeleteArchive removes one archive zip. Reports false when it did not exist.
func (m *ArchiveManager) DeleteArchive(name string) (bool, error) {
	path, err := m.archivePath(name)
	if err != nil {
		return false, err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	log.Info().Str("name", name).Msg("archive deleted")
	return true, nil
}

// ArchivePath resolves an archive name to its file path for download.
func (m *ArchiveManager) ArchivePath(name string) (string, error) {
	path, err := m.archivePath(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrArchiveNotFound
		}
		return "", err
	}
	return path, nil
}

// archivePath validates the name against traversal and joins it to the root.
func (m *ArchiveManager) archivePath(name string) (string, error) {
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) || !strings.HasSuffix(name, ".zip") {
		return "", ErrInvalidArchiveName
	}
	return filepath.Join(m.paths.Root, name), nil
}

// isDateName reports whether a folder name looks like YYYY-MM-DD.
func isDateName(name string) bool {
	_, err := time.Parse(dateLayout, name)
	return err == nil && len(name) == len(dateLayout)
}

// zipDir writes every file of dir into a new zip, prefixed with the date
// folder name so extraction recreates the layout.
func zipDir(dir, prefix, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		w, err := zw.Create(prefix + "/" + file.Name())
		if err != nil {
			return err
		}
		f, err := os.Open(filepath.Join(dir, file.Name()))
		if err != nil {
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return zw.Close()
}
