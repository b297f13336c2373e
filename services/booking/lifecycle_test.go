package booking

import (
	"errors"
	"testing"

	"travelmate/database/repository"
	"travelmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLifecycle(t *testing.T) (*Lifecycle, *repository.FileBookingRepo) {
	t.Helper()
	repo := repository.NewFileBookingRepo(t.TempDir(), zap.NewNop())
	return NewLifecycle(repo, zap.NewNop()), repo
}

func pendingBooking(id string) models.Booking {
	return models.Booking{
		BookingID:   id,
		BookingType: models.TypeHotel,
		ItemName:    "Grand Riverside",
		Status:      models.StatusPending,
		PriceInputs: models.PriceInputs{UnitPrice: cents(200), Quantity: 1},
	}
}

func TestTransitionConfirm(t *testing.T) {
	lc, repo := newTestLifecycle(t)
	b := pendingBooking("HT1001")

	confirmed, err := lc.Transition(b, models.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
	assert.Nil(t, confirmed.CancelledAt)
	// Input value untouched.
	assert.Equal(t, models.StatusPending, b.Status)

	record, err := repo.Load("HT1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, record.Status)
	assert.Equal(t, models.Cents(20000), record.Total)
}

func TestTransitionCancel(t *testing.T) {
	lc, repo := newTestLifecycle(t)

	cancelled, err := lc.Transition(pendingBooking("HT1002"), models.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	record, err := repo.Load("HT1002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, record.Status)
}

func TestTransitionTerminalStates(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	for _, terminal := range []models.BookingStatus{models.StatusCancelled, models.StatusCompleted} {
		t.Run(string(terminal), func(t *testing.T) {
			b := pendingBooking("HT1003")
			b.Status = terminal

			for _, target := range []models.BookingStatus{models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted, models.StatusPending} {
				got, err := lc.Transition(b, target)

				var terminalErr *TerminalStateError
				require.ErrorAs(t, err, &terminalErr)
				assert.Equal(t, string(terminal), terminalErr.Status)
				assert.Equal(t, terminal, got.Status)
			}
		})
	}
}

func TestTransitionInvalidEdge(t *testing.T) {
	lc, _ := newTestLifecycle(t)
	b := pendingBooking("HT1004")

	got, err := lc.Transition(b, models.StatusCompleted)

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "pending", transitionErr.From)
	assert.Equal(t, "completed", transitionErr.To)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestTransitionPaidBehavesAsConfirmed(t *testing.T) {
	lc, _ := newTestLifecycle(t)
	b := pendingBooking("HT1005")
	b.Status = models.StatusPaid

	completed, err := lc.Transition(b, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

type failingRepo struct{}

func (failingRepo) Save(*models.BookingRecord) error { return errors.New("disk full") }
func (failingRepo) Load(string) (*models.BookingRecord, error) {
	return nil, errors.New("not found")
}
func (failingRepo) List() ([]models.BookingRecord, error) { return nil, nil }

func TestTransitionPersistenceFailure(t *testing.T) {
	lc := NewLifecycle(failingRepo{}, zap.NewNop())

	confirmed, err := lc.Transition(pendingBooking("HT1006"), models.StatusConfirmed)

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "HT1006", persistErr.BookingID)
	// The transition itself is not rolled back.
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
}
