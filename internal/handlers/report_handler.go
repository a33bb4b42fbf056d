package handlers

import (
	"net/http"

	"dentalclinic-backend/internal/models"
	"dentalclinic-backend/internal/report"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PATIENT REPORT: halaman report admin. Hanya janji finished yang masuk,
// bisa disaring per bulan (?month=YYYY-MM) dan per tindakan (?procedure=).
func PatientReport(c *gin.Context) {
	finished, err := apptStore.ListByStatus(models.StatusFinished)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data janji temu", nil)
		return
	}

	filtered := report.FilterByMonth(finished, c.Query("month"))
	filtered = report.FilterByProcedure(filtered, c.Query("procedure"))

	utils.APIResponse(c, http.StatusOK, true, "OK", gin.H{
		"patients":     report.GroupByPatient(filtered),
		"months":       report.MonthsForPatient(filtered),
		"procedures":   report.DistinctProcedures(finished),
		"appointments": filtered,
	})
}
