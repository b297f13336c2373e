package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"travelmate/models"

	"go.uber.org/zap"
)

// BookingRepository defines the interface for finalized-booking storage.
type BookingRepository interface {
	Save(record *models.BookingRecord) error
	Load(bookingID string) (*models.BookingRecord, error)
	List() ([]models.BookingRecord, error)
}

// FileBookingRepo implements BookingRepository as one JSON file per booking
// id under a data directory. Writes go to a temp file and are renamed into
// place so a crash mid-write never leaves a partial record.
type FileBookingRepo struct {
	Dir    string
	Logger *zap.Logger
}

func NewFileBookingRepo(dir string, logger *zap.Logger) *FileBookingRepo {
	return &FileBookingRepo{Dir: dir, Logger: logger}
}

func (r *FileBookingRepo) path(bookingID string) string {
	// Booking ids are engine-generated, but producer payloads may carry their
	// own; strip anything that could escape the data directory.
	safe := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		}
		return '_'
	}, bookingID)
	return filepath.Join(r.Dir, safe+".json")
}

func (r *FileBookingRepo) Save(record *models.BookingRecord) error {
	if record.BookingID == "" {
		return fmt.Errorf("cannot save booking without an id")
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize booking %s: %w", record.BookingID, err)
	}

	target := r.path(record.BookingID)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write booking %s: %w", record.BookingID, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize booking %s: %w", record.BookingID, err)
	}
	return nil
}

func (r *FileBookingRepo) Load(bookingID string) (*models.BookingRecord, error) {
	data, err := os.ReadFile(r.path(bookingID))
	if err != nil {
		return nil, fmt.Errorf("booking %s not found: %w", bookingID, err)
	}
	var record models.BookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse booking %s: %w", bookingID, err)
	}
	return &record, nil
}

// List returns every readable booking record in the data directory.
// Unreadable files are logged and skipped so one corrupt record does not hide
// the rest.
func (r *FileBookingRepo) List() ([]models.BookingRecord, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var records []models.BookingRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.Dir, entry.Name()))
		if err != nil {
			r.logWarn("skipping unreadable booking file", entry.Name(), err)
			continue
		}
		var record models.BookingRecord
		if err := json.Unmarshal(data, &record); err != nil {
			r.logWarn("skipping malformed booking file", entry.Name(), err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *FileBookingRepo) logWarn(msg, file string, err error) {
	if r.Logger != nil {
		r.Logger.Warn(msg, zap.String("file", file), zap.Error(err))
	}
}
