package handlers

import (
	"net/http"

	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LOGIN
func Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Cek reCAPTCHA dulu sebelum nyentuh database
	if !captcha.Verify(input.RecaptchaToken) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Verifikasi captcha gagal", nil)
		return
	}

	// 3. Cari User berdasarkan username
	user, err := userStore.FindByUserName(input.UserName)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Username atau Password salah", nil)
		return
	}

	// 4. Cek Password
	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Username atau Password salah", nil)
		return
	}

	// 5. Generate JWT dan pasang di cookie sesi
	token, err := utils.GenerateToken(user.UserName, user.Role)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}
	utils.SetSessionCookie(c, token)

	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"userName": user.UserName,
			"role":     user.Role,
		},
	})
}

// LOGOUT
func Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	utils.APIResponse(c, http.StatusOK, true, "Logout Berhasil", nil)
}

// CURRENT USER: dipakai frontend buat restore sesi setelah refresh
func CurrentUser(c *gin.Context) {
	userName := c.GetString("userName")

	user, err := userStore.FindByUserName(userName)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Sesi tidak valid", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "OK", gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"userName": user.UserName,
		"role":     user.Role,
	})
}
