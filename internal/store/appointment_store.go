package store

import (
	"errors"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/scheduler"

	"gorm.io/gorm"
)

// AppointmentStore pegang partisi live dan deleted (soft delete GORM).
// Semua aturan jadwal ditegakkan di sini, bukan cuma warning di frontend.
type AppointmentStore struct {
	db        *gorm.DB
	validator *scheduler.Validator
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	s := &AppointmentStore{db: db}
	s.validator = scheduler.New(s.HasActiveOn)
	return s
}

// Validator dipakai juga oleh lifecycle engine waktu reschedule
func (s *AppointmentStore) Validator() *scheduler.Validator {
	return s.validator
}

// HasActiveOn ngecek janji aktif (belum dihapus) untuk (userName, date).
// excludeID > 0 artinya slot milik appointment itu sendiri tidak dihitung.
func (s *AppointmentStore) HasActiveOn(userName, date string, excludeID uint64) (bool, error) {
	q := s.db.Model(&models.Appointment{}).
		Where("user_name = ? AND date = ?", userName, date)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create memvalidasi slot lalu simpan dengan status "not confirmed".
// Bentrok tanggal balikin ErrConflict supaya frontend bisa kasih pesan
// "You already have an appointment on this date."
func (s *AppointmentStore) Create(a *models.Appointment) error {
	if err := s.validator.Validate(a.UserName, a.Date, a.Time, 0); err != nil {
		ve, ok := apperrors.AsValidation(err)
		if ok && ve.Reason == apperrors.ReasonConflict {
			return apperrors.ErrConflict
		}
		return err
	}

	a.Status = models.StatusNotConfirmed
	return s.db.Create(a).Error
}

func (s *AppointmentStore) Get(id uint64) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListLive urut sesuai insertion order (primary key naik)
func (s *AppointmentStore) ListLive() ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *AppointmentStore) ListByStatus(status models.Status) ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.db.Where("status = ?", status).Order("id asc").Find(&out).Error
	return out, err
}

func (s *AppointmentStore) ListByUserName(userName string) ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.db.Where("user_name = ?", userName).Order("id asc").Find(&out).Error
	return out, err
}

// ListDeleted baca partisi deleted (deleted_at terisi)
func (s *AppointmentStore) ListDeleted() ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.db.Unscoped().Where("deleted_at IS NOT NULL").Order("id asc").Find(&out).Error
	return out, err
}

// TransitionStatus update status secara kondisional (WHERE status = from).
// Ini backstop-nya aksi dobel dari dua dashboard yang polling barengan:
// transisi kedua kena 0 rows affected dan ditolak, bukan diam-diam sukses.
func (s *AppointmentStore) TransitionStatus(id uint64, from, to models.Status) error {
	res := s.db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(id); err != nil {
			return err
		}
		return apperrors.ErrInvalidTransition
	}
	return nil
}

// Reschedule ganti slot, hanya kalau statusnya masih confirmed
func (s *AppointmentStore) Reschedule(id uint64, newDate, newTime string) error {
	res := s.db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, models.StatusConfirmed).
		Updates(map[string]interface{}{"date": newDate, "time": newTime})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(id); err != nil {
			return err
		}
		return apperrors.ErrInvalidTransition
	}
	return nil
}

// SoftDelete pindahin record ke partisi deleted (stempel deleted_at)
func (s *AppointmentStore) SoftDelete(id uint64) error {
	res := s.db.Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Restore balikin record ke partisi live. Satu UPDATE yang cuma
// ngosongin deleted_at: kolom lain (termasuk status dan updated_at)
// tidak disentuh, jadi hasil restore identik dengan sebelum dihapus.
// Kalau slot (userName, date)-nya sudah diisi janji baru selama record
// ini terhapus, restore ditolak ErrConflict; aturan satu janji aktif
// per tanggal tetap berlaku untuk record hasil restore.
func (s *AppointmentStore) Restore(id uint64) error {
	var a models.Appointment
	err := s.db.Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}

	busy, err := s.HasActiveOn(a.UserName, a.Date, id)
	if err != nil {
		return err
	}
	if busy {
		return apperrors.ErrConflict
	}

	res := s.db.Unscoped().Model(&models.Appointment{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
