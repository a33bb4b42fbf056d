package handlers

import (
	"fmt"
	"net/http"
	"time"

	"dentalclinic-backend/internal/backup"
	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendExcel(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// EXPORT USERS: download xlsx semua user yang masih live
func ExportUsersExcel(c *gin.Context) {
	users, err := userStore.ListLive()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data user", nil)
		return
	}

	data, err := backup.ExportUsersExcel(users)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal membuat file excel", nil)
		return
	}
	sendExcel(c, "users", data)
}

// EXPORT APPOINTMENTS: download xlsx semua janji yang sudah finished
func ExportAppointmentsExcel(c *gin.Context) {
	appts, err := apptStore.ListByStatus(models.StatusFinished)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}

	data, err := backup.ExportAppointmentsExcel(appts)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal membuat file excel", nil)
		return
	}
	sendExcel(c, "appointments", data)
}

// Frontend kirim record lengkap dari tabel deleted, tapi yang dipercaya
// cuma id-nya. Restore selalu pakai snapshot server, bukan field kiriman.
type restoreRecord struct {
	ID uint64 `json:"id" binding:"required"`
}

func bindRestoreIDs(c *gin.Context) ([]uint64, bool) {
	var records []restoreRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return nil, false
	}

	ids := make([]uint64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids, true
}

// RESTORE USERS (best-effort per record)
func RestoreUsers(c *gin.Context) {
	ids, ok := bindRestoreIDs(c)
	if !ok {
		return
	}

	outcomes := backup.RestoreMany(userStore, ids)
	utils.APIResponse(c, http.StatusOK, true, "Restore selesai", outcomes)
}

// RESTORE APPOINTMENTS (best-effort per record)
func RestoreAppointments(c *gin.Context) {
	ids, ok := bindRestoreIDs(c)
	if !ok {
		return
	}

	outcomes := backup.RestoreMany(apptStore, ids)
	utils.APIResponse(c, http.StatusOK, true, "Restore selesai", outcomes)
}
