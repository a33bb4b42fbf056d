package handlers

import (
	"net/http"
	"time"

	"dentalclinic-backend/internal/dashboard"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DASHBOARD SUMMARY: kartu hitungan bulan ini + tindakan terpopuler.
// Data diambil dari snapshot cache yang di-refresh poller, bukan query
// langsung, jadi aman di-polling agresif dari frontend.
func DashboardSummary(c *gin.Context) {
	ref := time.Now()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "Format bulan harus YYYY-MM", nil)
			return
		}
		ref = parsed
	}

	appts := statsCache.Snapshot()

	utils.APIResponse(c, http.StatusOK, true, "OK", gin.H{
		"month":         ref.Format("2006-01"),
		"counts":        dashboard.CountsForMonth(appts, ref),
		"topProcedures": dashboard.TopProcedures(appts, ref, 10),
	})
}
