package utils

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Nama cookie sesi. Frontend kirim request pakai withCredentials,
// jadi sesi dibawa lewat cookie httpOnly, bukan header Authorization.
const SessionCookieName = "clinic_session"

const sessionTTL = 24 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "rahasia_dapur_klinik" // Fallback kalau .env lupa diisi
	}
	return []byte(secret)
}

// GenerateToken membuat JWT string yang berisi username dan role
func GenerateToken(userName, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_name": userName,
		"role":      role,
		"exp":       time.Now().Add(sessionTTL).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken memverifikasi apakah token valid atau tidak
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma enkripsi (harus HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
}

// SetSessionCookie pasang token di cookie httpOnly
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie hapus cookie sesi (logout)
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
