package utils

import "golang.org/x/crypto/bcrypt"

// Cost default bcrypt (10) cukup untuk klinik kecil, login-nya jarang
const hashCost = bcrypt.DefaultCost

// HashPassword bikin hash bcrypt dari password mentah
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// CheckPassword cocokkan password login dengan hash yang tersimpan
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
