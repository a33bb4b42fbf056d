package store

import (
	"testing"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB bikin gorm di atas sqlmock. SkipDefaultTransaction biar
// ekspektasi tidak perlu Begin/Commit di tiap write.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gdb, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}

func TestAppointmentCreateValidSlot(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// Cek bentrok dulu, baru INSERT dengan status not confirmed
	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe", "2024-06-10").
		WillReturnRows(countRows(0))
	mock.ExpectExec("INSERT INTO `appointments`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	a := &models.Appointment{
		UserName:        "jdoe",
		FirstName:       "John",
		Date:            "2024-06-10", // Senin
		Time:            "10:00",
		DentalProcedure: models.ProcedureCleaning,
	}
	require.NoError(t, s.Create(a))
	assert.Equal(t, models.StatusNotConfirmed, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// Sudah ada janji aktif di tanggal itu: ditolak tanpa INSERT
	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe", "2024-06-10").
		WillReturnRows(countRows(1))

	a := &models.Appointment{UserName: "jdoe", Date: "2024-06-10", Time: "10:00"}
	err := s.Create(a)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateSundayNoQuery(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// Hari Minggu ditolak sebelum nyentuh database sama sekali
	a := &models.Appointment{UserName: "jdoe", Date: "2024-06-09", Time: "10:00"}
	err := s.Create(a)

	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ReasonClosedDay, ve.Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasActiveOnExcludesOwnSlot(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe", "2024-06-10", 7).
		WillReturnRows(countRows(0))

	busy, err := s.HasActiveOn("jdoe", "2024-06-10", 7)
	require.NoError(t, err)
	assert.False(t, busy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Get(99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransitionStatusHappyPath(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// UPDATE kondisional: WHERE id dan status lama sekaligus
	mock.ExpectExec("UPDATE `appointments` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.TransitionStatus(1, models.StatusNotConfirmed, models.StatusConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusAlreadyMoved(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// 0 rows affected + record masih ada = status sudah berubah duluan
	mock.ExpectExec("UPDATE `appointments` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "confirmed"))

	err := s.TransitionStatus(1, models.StatusNotConfirmed, models.StatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransitionStatusGone(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// 0 rows affected + record tidak ada = not found, bukan invalid
	mock.ExpectExec("UPDATE `appointments` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := s.TransitionStatus(1, models.StatusNotConfirmed, models.StatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func deletedApptRow(id uint64, userName, date string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_name", "date", "status"}).
		AddRow(id, userName, date, "confirmed")
}

func TestSoftDeleteAndRestore(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// Soft delete = UPDATE deleted_at, bukan DELETE beneran
	mock.ExpectExec("UPDATE `appointments` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.SoftDelete(5))

	// Restore baca record terhapus, cek slotnya masih kosong, lalu
	// satu UPDATE yang cuma ngosongin deleted_at
	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(deletedApptRow(5, "jdoe", "2024-06-10"))
	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe", "2024-06-10", 5).
		WillReturnRows(countRows(0))
	mock.ExpectExec("UPDATE `appointments` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Restore(5))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreMissingRecord(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.ErrorIs(t, s.Restore(5), apperrors.ErrNotFound)
}

func TestRestoreBlockedWhenSlotRetaken(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewAppointmentStore(gdb)

	// Selama record terhapus, user sudah bikin janji baru di tanggal
	// yang sama: restore ditolak, record tetap di partisi deleted
	mock.ExpectQuery("SELECT \\* FROM `appointments`").
		WillReturnRows(deletedApptRow(5, "jdoe", "2024-06-10"))
	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe", "2024-06-10", 5).
		WillReturnRows(countRows(1))

	assert.ErrorIs(t, s.Restore(5), apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateUserName(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe").
		WillReturnRows(countRows(1))

	err := s.Create(&models.User{Name: "John", UserName: "jdoe", PasswordHash: "x"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateOK(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT count").
		WithArgs("jdoe").
		WillReturnRows(countRows(0))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Create(&models.User{Name: "John", UserName: "jdoe", PasswordHash: "x"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminExists(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT count").
		WithArgs(models.RoleAdmin).
		WillReturnRows(countRows(1))

	exists, err := s.AdminExists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUpdateUserInfo(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	// Lookup per username (dari sesi), lalu update tiga kolom profil
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "name"}).
			AddRow(3, "jdoe", "John"))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := s.UpdateInfo("jdoe", "Doe", "Quezon City", "09171234567")
	require.NoError(t, err)
	assert.Equal(t, "Doe", u.LastName)
	assert.Equal(t, "Quezon City", u.Address)
	assert.Equal(t, "09171234567", u.Contact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserInfoUnknownUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.UpdateInfo("ghost", "x", "y", "z")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateUserNameTakenByOther(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	// Username baru sudah dipakai user lain (id sendiri dikecualikan)
	mock.ExpectQuery("SELECT count").
		WithArgs("newname", 3).
		WillReturnRows(countRows(1))

	assert.ErrorIs(t, s.UpdateUserName(3, "newname"), apperrors.ErrConflict)
}
