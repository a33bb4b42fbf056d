package routes

import (
	"dentalclinic-backend/internal/handlers"
	"dentalclinic-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api")
	{
		// 1. PUBLIC ROUTES (halaman login & signup)
		api.POST("/login", handlers.Login)
		api.POST("/users", handlers.Register)
		api.GET("/users/admin-exists", handlers.AdminExists)

		// 2. PROTECTED ROUTES (Harus Login / Punya Cookie Sesi)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware()) // <--- PASANG SATPAM DISINI
		{
			protected.POST("/logout", handlers.Logout)
			protected.GET("/current-user", handlers.CurrentUser)
			protected.POST("/user-info", handlers.UpdateUserInfo)

			// Pasien bikin janji dan lihat janjinya sendiri
			protected.POST("/appointments", handlers.CreateAppointment)
			protected.GET("/appointments/mine", handlers.GetMyAppointments)

			// Group Khusus Admin (akun dokter)
			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				// MODULE APPOINTMENT
				admin.GET("/appointments", handlers.GetAppointments)
				admin.GET("/appointments/confirmed", handlers.GetConfirmedAppointments)
				admin.GET("/appointments/finished", handlers.GetFinishedAppointments)
				admin.PUT("/appointments/:id/confirm", handlers.ConfirmAppointment)
				admin.PUT("/appointments/:id/finish", handlers.FinishAppointment)
				admin.PUT("/appointments/:id/reschedule", handlers.RescheduleAppointment)
				admin.DELETE("/appointments/:id", handlers.DeleteAppointment)

				// MODULE USER
				admin.GET("/users", handlers.GetUsers)
				admin.PUT("/users/:id/password", handlers.UpdatePassword)
				admin.PUT("/users/:id/username", handlers.UpdateUserName)
				admin.DELETE("/users/:id", handlers.DeleteUser)

				// MODULE BACKUP & RESTORE
				admin.GET("/deleted/users", handlers.GetDeletedUsers)
				admin.GET("/deleted/appointments", handlers.GetDeletedAppointments)
				admin.POST("/restore/users", handlers.RestoreUsers)
				admin.POST("/restore/appointments", handlers.RestoreAppointments)
				admin.GET("/backup/users/excel", handlers.ExportUsersExcel)
				admin.GET("/backup/appointments/excel", handlers.ExportAppointmentsExcel)

				// MODULE DASHBOARD & REPORT
				admin.GET("/dashboard/summary", handlers.DashboardSummary)
				admin.GET("/report/patients", handlers.PatientReport)
			}
		}
	}
}
