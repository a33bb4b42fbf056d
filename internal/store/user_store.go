package store

import (
	"errors"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create nolak username kembar dengan ErrConflict
func (s *UserStore) Create(u *models.User) error {
	taken, err := s.userNameTaken(u.UserName, 0)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrConflict
	}
	return s.db.Create(u).Error
}

func (s *UserStore) userNameTaken(userName string, excludeID uint64) (bool, error) {
	q := s.db.Model(&models.User{}).Where("user_name = ?", userName)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *UserStore) Get(id uint64) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) FindByUserName(userName string) (*models.User, error) {
	var u models.User
	err := s.db.Where("user_name = ?", userName).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) ListLive() ([]models.User, error) {
	var out []models.User
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *UserStore) ListDeleted() ([]models.User, error) {
	var out []models.User
	err := s.db.Unscoped().Where("deleted_at IS NOT NULL").Order("id asc").Find(&out).Error
	return out, err
}

// AdminExists dipakai halaman signup: akun admin cuma boleh satu
func (s *UserStore) AdminExists() (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error
	return count > 0, err
}

// UpdateInfo dipakai pasien buat merawat data dirinya sendiri.
// Lookup per username karena yang dipercaya adalah sesi, bukan id kiriman.
func (s *UserStore) UpdateInfo(userName, lastName, address, contact string) (*models.User, error) {
	u, err := s.FindByUserName(userName)
	if err != nil {
		return nil, err
	}

	err = s.db.Model(u).Updates(map[string]interface{}{
		"last_name": lastName,
		"address":   address,
		"contact":   contact,
	}).Error
	if err != nil {
		return nil, err
	}

	u.LastName = lastName
	u.Address = address
	u.Contact = contact
	return u, nil
}

func (s *UserStore) UpdatePassword(id uint64, newHash string) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", newHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateUserName nolak nama yang sudah dipakai user lain
func (s *UserStore) UpdateUserName(id uint64, newName string) error {
	taken, err := s.userNameTaken(newName, id)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrConflict
	}

	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("user_name", newName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *UserStore) SoftDelete(id uint64) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *UserStore) Restore(id uint64) error {
	res := s.db.Unscoped().Model(&models.User{}).
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
