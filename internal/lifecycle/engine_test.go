package lifecycle

import (
	"testing"
	"time"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore: appointment store in-memory buat ngetes engine tanpa database
type fakeStore struct {
	appts     map[uint64]*models.Appointment
	validator *scheduler.Validator
}

func newFakeStore(appts ...*models.Appointment) *fakeStore {
	f := &fakeStore{appts: make(map[uint64]*models.Appointment)}
	for _, a := range appts {
		copied := *a
		f.appts[a.ID] = &copied
	}
	f.validator = scheduler.New(f.hasActiveOn)
	return f
}

func (f *fakeStore) hasActiveOn(userName, date string, excludeID uint64) (bool, error) {
	for _, a := range f.appts {
		if a.UserName == userName && a.Date == date && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Get(id uint64) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) TransitionStatus(id uint64, from, to models.Status) error {
	a, ok := f.appts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if a.Status != from {
		return apperrors.ErrInvalidTransition
	}
	a.Status = to
	return nil
}

func (f *fakeStore) Reschedule(id uint64, newDate, newTime string) error {
	a, ok := f.appts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if a.Status != models.StatusConfirmed {
		return apperrors.ErrInvalidTransition
	}
	a.Date = newDate
	a.Time = newTime
	return nil
}

func (f *fakeStore) Validator() *scheduler.Validator { return f.validator }

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Send(contact, title, body string) error {
	n.sent = append(n.sent, contact)
	return nil
}

// Jam tetap biar tes deterministik: "hari ini" = 15 Juni 2024
func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func appt(id uint64, userName, date string, status models.Status) *models.Appointment {
	return &models.Appointment{
		ID:              id,
		UserName:        userName,
		FirstName:       "John",
		LastName:        "Doe",
		Contact:         "09171234567",
		Date:            date,
		Time:            "02:00 PM",
		DentalProcedure: models.ProcedureCleaning,
		Status:          status,
	}
}

func TestConfirmNotifiesOnce(t *testing.T) {
	f := newFakeStore(appt(1, "jdoe", "2024-06-20", models.StatusNotConfirmed))
	n := &fakeNotifier{}
	e := New(f, n, fixedNow)

	a, err := e.Confirm(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, a.Status)
	assert.Len(t, n.sent, 1)

	// Klik kedua dari view yang belum ke-refresh harus ditolak,
	// dan tidak boleh kirim notifikasi lagi
	_, err = e.Confirm(1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Len(t, n.sent, 1)
}

func TestConfirmNotFound(t *testing.T) {
	e := New(newFakeStore(), &fakeNotifier{}, fixedNow)
	_, err := e.Confirm(99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFinish(t *testing.T) {
	f := newFakeStore(
		appt(1, "jdoe", "2024-06-10", models.StatusConfirmed), // sudah lewat
		appt(2, "asmith", "2024-06-15", models.StatusConfirmed), // hari ini
		appt(3, "blee", "2024-06-20", models.StatusConfirmed),  // masa depan
		appt(4, "cday", "2024-06-01", models.StatusNotConfirmed),
	)
	e := New(f, &fakeNotifier{}, fixedNow)

	a, err := e.Finish(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, a.Status)

	// Tanggal hari ini dihitung sudah terjadi
	_, err = e.Finish(2)
	assert.NoError(t, err)

	// Masa depan -> TooEarly
	_, err = e.Finish(3)
	assert.ErrorIs(t, err, apperrors.ErrTooEarly)

	// Belum pernah di-confirm
	_, err = e.Finish(4)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// Finish dua kali ditolak (guard aksi dobel)
	_, err = e.Finish(1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRescheduleNoShow(t *testing.T) {
	f := newFakeStore(appt(1, "jdoe", "2024-06-10", models.StatusConfirmed))
	e := New(f, &fakeNotifier{}, fixedNow)

	a, err := e.Reschedule(1, "2024-06-21", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-21", a.Date)
	assert.Equal(t, "10:00", a.Time)
	// Status tetap confirmed, tidak balik ke not confirmed
	assert.Equal(t, models.StatusConfirmed, a.Status)
}

func TestRescheduleOwnSlotExempt(t *testing.T) {
	// Pindah jam di tanggal yang sama: slot lama milik sendiri
	// tidak boleh dihitung bentrok
	f := newFakeStore(appt(1, "jdoe", "2024-06-10", models.StatusConfirmed))
	e := New(f, &fakeNotifier{}, fixedNow)

	_, err := e.Reschedule(1, "2024-06-10", "11:00")
	assert.NoError(t, err)
}

func TestRescheduleConflictSurfaced(t *testing.T) {
	f := newFakeStore(
		appt(1, "jdoe", "2024-06-10", models.StatusConfirmed),
		appt(2, "jdoe", "2024-06-21", models.StatusNotConfirmed),
	)
	e := New(f, &fakeNotifier{}, fixedNow)

	_, err := e.Reschedule(1, "2024-06-21", "10:00")
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ReasonConflict, ve.Reason)
}

func TestRescheduleValidatorFailuresVerbatim(t *testing.T) {
	f := newFakeStore(appt(1, "jdoe", "2024-06-10", models.StatusConfirmed))
	e := New(f, &fakeNotifier{}, fixedNow)

	// 2024-06-23 hari Minggu
	_, err := e.Reschedule(1, "2024-06-23", "10:00")
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ReasonClosedDay, ve.Reason)

	_, err = e.Reschedule(1, "2024-06-21", "07:00")
	ve, ok = apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ReasonOutOfHours, ve.Reason)
}

func TestRescheduleGuards(t *testing.T) {
	f := newFakeStore(
		appt(1, "jdoe", "2024-06-20", models.StatusConfirmed),    // belum lewat
		appt(2, "asmith", "2024-06-15", models.StatusConfirmed),  // hari ini
		appt(3, "blee", "2024-06-10", models.StatusNotConfirmed), // bukan confirmed
	)
	e := New(f, &fakeNotifier{}, fixedNow)

	// Reschedule cuma buat no-show: tanggal harus benar-benar lewat
	_, err := e.Reschedule(1, "2024-06-25", "10:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = e.Reschedule(2, "2024-06-25", "10:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = e.Reschedule(3, "2024-06-25", "10:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
