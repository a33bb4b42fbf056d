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

// Pesan per reason code, sama dengan yang ditampilkan frontend
func validationMessage(reason string) string {
	switch reason {
	case apperrors.ReasonClosedDay:
		return "The clinic is closed on Sundays."
	case apperrors.ReasonOutOfHours:
		return "Appointments are only available between 9:00 AM-12:00 PM and 1:00 PM-3:59 PM."
	case apperrors.ReasonConflict:
		return "You already have an appointment on this date."
	default:
		return "Invalid date or time."
	}
}

// CREATE APPOINTMENT
func CreateAppointment(c *gin.Context) {
	var input models.CreateAppointmentInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Tindakan harus dari daftar yang dikenal, bukan free text
	procedure := models.Procedure(input.DentalProcedure)
	if !procedure.Valid() {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tindakan tidak dikenal", gin.H{
			"procedures": models.Procedures,
		})
		return
	}

	// 3. Simpan. Aturan jadwal (hari Minggu, jam buka, bentrok tanggal)
	// ditegakkan di store, frontend cuma lapisan pertama.
	appt := models.Appointment{
		UserName:        input.UserName,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Address:         input.Address,
		Contact:         input.Contact,
		Date:            input.Date,
		Time:            input.Time,
		DentalProcedure: procedure,
	}
	if err := apptStore.Create(&appt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			utils.APIResponse(c, http.StatusConflict, false, "You already have an appointment on this date.", nil)
			return
		}
		if ve, ok := apperrors.AsValidation(err); ok {
			utils.APIResponse(c, http.StatusBadRequest, false, validationMessage(ve.Reason), gin.H{
				"reason": ve.Reason,
			})
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan janji temu", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Janji temu dibuat, menunggu konfirmasi", appt)
}

// GET ALL APPOINTMENTS (dashboard admin, di-polling tiap 2 detik)
func GetAppointments(c *gin.Context) {
	appts, err := apptStore.ListLive()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", appts)
}

// GET CONFIRMED
func GetConfirmedAppointments(c *gin.Context) {
	appts, err := apptStore.ListByStatus(models.StatusConfirmed)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", appts)
}

// GET FINISHED (sumber data halaman report)
func GetFinishedAppointments(c *gin.Context) {
	appts, err := apptStore.ListByStatus(models.StatusFinished)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", appts)
}

// GET MY APPOINTMENTS: pasien cuma lihat janjinya sendiri
func GetMyAppointments(c *gin.Context) {
	userName := c.GetString("userName")

	appts, err := apptStore.ListByUserName(userName)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", appts)
}

// GET DELETED APPOINTMENTS (halaman backup)
func GetDeletedAppointments(c *gin.Context) {
	appts, err := apptStore.ListDeleted()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "OK", appts)
}

func parseAppointmentID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID tidak valid", nil)
		return 0, false
	}
	return id, true
}

// CONFIRM: not confirmed -> confirmed, pasien dikirimi notifikasi
func ConfirmAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	appt, err := engine.Confirm(id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Janji temu dikonfirmasi", appt)
}

// FINISH: confirmed -> finished, hanya kalau kunjungannya sudah terjadi
func FinishAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	appt, err := engine.Finish(id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Janji temu selesai", appt)
}

// RESCHEDULE: pasien no-show dipindah ke slot baru
func RescheduleAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var input models.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	appt, err := engine.Reschedule(id, input.Date, input.Time)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Janji temu dijadwalkan ulang", appt)
}

// DELETE APPOINTMENT (soft delete, pindah ke partisi deleted)
func DeleteAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if err := apptStore.SoftDelete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Janji temu tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menghapus janji temu", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Janji temu dihapus", nil)
}

func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Janji temu tidak ditemukan", nil)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		utils.APIResponse(c, http.StatusConflict, false, "Status janji temu sudah berubah", nil)
	case errors.Is(err, apperrors.ErrTooEarly):
		utils.APIResponse(c, http.StatusConflict, false, "Tanggal janji temu belum lewat", nil)
	default:
		if ve, ok := apperrors.AsValidation(err); ok {
			utils.APIResponse(c, http.StatusBadRequest, false, validationMessage(ve.Reason), gin.H{
				"reason": ve.Reason,
			})
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
	}
}
