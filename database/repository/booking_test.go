package repository

import (
	"os"
	"path/filepath"
	"testing"

	"travelmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRecord(id string) *models.BookingRecord {
	return &models.BookingRecord{
		Booking: models.Booking{
			BookingID:   id,
			BookingType: models.TypeFlight,
			ItemName:    "MH370",
			Status:      models.StatusConfirmed,
			PriceInputs: models.PriceInputs{Quantity: 2},
		},
		Total:     models.Cents(90000),
		UnitLabel: "Passenger",
	}
}

func TestSaveAndLoad(t *testing.T) {
	repo := NewFileBookingRepo(t.TempDir(), zap.NewNop())

	require.NoError(t, repo.Save(sampleRecord("FL20260101120000")))

	loaded, err := repo.Load("FL20260101120000")
	require.NoError(t, err)
	assert.Equal(t, "MH370", loaded.ItemName)
	assert.Equal(t, models.Cents(90000), loaded.Total)
	assert.Equal(t, models.StatusConfirmed, loaded.Status)

	// One file per booking id, no leftover temp file.
	entries, err := os.ReadDir(repo.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FL20260101120000.json", entries[0].Name())
}

func TestSaveRejectsMissingID(t *testing.T) {
	repo := NewFileBookingRepo(t.TempDir(), zap.NewNop())
	assert.Error(t, repo.Save(&models.BookingRecord{}))
}

func TestSaveSanitizesProducerSuppliedID(t *testing.T) {
	repo := NewFileBookingRepo(t.TempDir(), zap.NewNop())
	require.NoError(t, repo.Save(sampleRecord("../evil/id")))

	entries, err := os.ReadDir(repo.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
}

func TestLoadMissing(t *testing.T) {
	repo := NewFileBookingRepo(t.TempDir(), zap.NewNop())
	_, err := repo.Load("nope")
	assert.Error(t, err)
}

func TestListSkipsMalformedFiles(t *testing.T) {
	repo := NewFileBookingRepo(t.TempDir(), zap.NewNop())

	require.NoError(t, repo.Save(sampleRecord("FL1")))
	require.NoError(t, repo.Save(sampleRecord("FL2")))
	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir, "garbage.json"), []byte("{not json"), 0o644))

	records, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListEmptyDirectory(t *testing.T) {
	repo := NewFileBookingRepo(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	records, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}
