package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	LastName     string `gorm:"size:100" json:"lastName"`
	UserName     string `gorm:"uniqueIndex;size:100;not null" json:"userName"`
	PasswordHash string `gorm:"not null" json:"-"` // Tidak pernah dikirim ke frontend
	Role         string `gorm:"size:20;default:'user'" json:"role"`
	Address      string `gorm:"size:255" json:"address"`
	Contact      string `gorm:"size:20" json:"contact"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type RegisterInput struct {
	Name           string `json:"name" binding:"required"`
	LastName       string `json:"lastName"`
	UserName       string `json:"userName" binding:"required"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required,oneof=admin user"`
	Address        string `json:"address"`
	Contact        string `json:"contact"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
}

type LoginInput struct {
	UserName       string `json:"userName" binding:"required"`
	Password       string `json:"password" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
}

type UpdateUserInfoInput struct {
	LastName string `json:"lastName"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}

type UpdatePasswordInput struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateUserNameInput struct {
	NewUserName string `json:"newUserName" binding:"required"`
}
