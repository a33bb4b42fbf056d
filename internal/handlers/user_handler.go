package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dentalclinic-backend/internal/apperrors"
	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// REGISTER (halaman signup publik)
func Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Cek reCAPTCHA
	if !captcha.Verify(input.RecaptchaToken) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Verifikasi captcha gagal", nil)
		return
	}

	// 3. Akun admin cuma boleh satu (akun dokter)
	if input.Role == models.RoleAdmin {
		exists, err := userStore.AdminExists()
		if err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memeriksa akun admin", nil)
			return
		}
		if exists {
			utils.APIResponse(c, http.StatusConflict, false, "Akun admin sudah terdaftar", nil)
			return
		}
	}

	// 4. Hash Password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	// 5. Simpan ke Database
	user := models.User{
		Name:         input.Name,
		LastName:     input.LastName,
		UserName:     input.UserName,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Address:      input.Address,
		Contact:      input.Contact,
	}
	if err := userStore.Create(&user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			utils.APIResponse(c, http.StatusConflict, false, "Username sudah terdaftar!", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan user", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registrasi Berhasil! Silakan Login.", user)
}

// ADMIN EXISTS: halaman signup sembunyikan pilihan admin kalau sudah ada
func AdminExists(c *gin.Context) {
	exists, err := userStore.AdminExists()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memeriksa akun admin", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", gin.H{"adminExists": exists})
}

// GET ALL USERS
func GetUsers(c *gin.Context) {
	users, err := userStore.ListLive()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data user", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", users)
}

// GET DELETED USERS (halaman backup)
func GetDeletedUsers(c *gin.Context) {
	users, err := userStore.ListDeleted()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data user", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", users)
}

// UPDATE USER INFO: pasien simpan data dirinya sendiri (nama belakang,
// alamat, kontak). Targetnya selalu user yang login, bukan id kiriman.
func UpdateUserInfo(c *gin.Context) {
	var input models.UpdateUserInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	user, err := userStore.UpdateInfo(c.GetString("userName"), input.LastName, input.Address, input.Contact)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan data diri", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data diri berhasil disimpan", user)
}

// UPDATE PASSWORD
func UpdatePassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID tidak valid", nil)
		return
	}

	var input models.UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	if err := userStore.UpdatePassword(id, hashed); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update password", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Password berhasil diganti", nil)
}

// UPDATE USERNAME
func UpdateUserName(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID tidak valid", nil)
		return
	}

	var input models.UpdateUserNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	if err := userStore.UpdateUserName(id, input.NewUserName); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			utils.APIResponse(c, http.StatusConflict, false, "Username sudah dipakai user lain", nil)
		case errors.Is(err, apperrors.ErrNotFound):
			utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		default:
			utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update username", nil)
		}
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Username berhasil diganti", nil)
}

// DELETE USER (soft delete, pindah ke partisi deleted)
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID tidak valid", nil)
		return
	}

	if err := userStore.SoftDelete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menghapus user", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "User berhasil dihapus", nil)
}
