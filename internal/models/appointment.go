package models

import (
	"time"

	"gorm.io/gorm"
)

// Status janji temu. String-nya sengaja sama persis dengan yang dipakai
// frontend ("not confirmed" pakai spasi), jangan diubah.
type Status string

const (
	StatusNotConfirmed Status = "not confirmed"
	StatusConfirmed    Status = "confirmed"
	StatusFinished     Status = "finished"
)

// Procedure adalah daftar tindakan gigi yang valid (closed set, bukan free text)
type Procedure string

const (
	ProcedureConsultation Procedure = "consultation"
	ProcedureResto        Procedure = "Resto/pasta"
	ProcedureDenture      Procedure = "Denture/Pustiso"
	ProcedureExo          Procedure = "Exo/Bunot"
	ProcedureCleaning     Procedure = "OP/Cleaning"
	ProcedureOrtho        Procedure = "Ortho/Adjusment"
	ProcedureEndo         Procedure = "Endo/Root Canal"
)

// Procedures dipakai untuk validasi input dan dropdown filter di report
var Procedures = []Procedure{
	ProcedureConsultation,
	ProcedureResto,
	ProcedureDenture,
	ProcedureExo,
	ProcedureCleaning,
	ProcedureOrtho,
	ProcedureEndo,
}

func (p Procedure) Valid() bool {
	for _, known := range Procedures {
		if p == known {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"size:100;not null;index:idx_user_date" json:"userName"`

	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Address   string `gorm:"size:255" json:"address"`
	Contact   string `gorm:"size:20" json:"contact"`

	Date string `gorm:"type:date;index:idx_user_date" json:"date"` // Format YYYY-MM-DD
	Time string `gorm:"size:20" json:"time"`                       // Format "02:00 PM" atau "14:00"

	DentalProcedure Procedure `gorm:"size:50" json:"dentalProcedure"`
	Status          Status    `gorm:"size:20;default:'not confirmed'" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // Soft delete = pindah ke partisi deleted
}

type CreateAppointmentInput struct {
	UserName        string `json:"userName" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName"`
	Address         string `json:"address"`
	Contact         string `json:"contact"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"`
	DentalProcedure string `json:"dentalProcedure" binding:"required"`
}

type RescheduleInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
