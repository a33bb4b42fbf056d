package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentalclinic-backend/internal/config"
	"dentalclinic-backend/internal/dashboard"
	"dentalclinic-backend/internal/handlers"
	"dentalclinic-backend/internal/lifecycle"
	"dentalclinic-backend/internal/notify"
	"dentalclinic-backend/internal/poller"
	"dentalclinic-backend/internal/routes"
	"dentalclinic-backend/internal/store"
	"dentalclinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// 3. Rakit dependensi
	userStore := store.NewUserStore(config.DB)
	apptStore := store.NewAppointmentStore(config.DB)

	notifier := notify.NewFCM()
	engine := lifecycle.New(apptStore, notifier, nil)
	statsCache := dashboard.NewSnapshotCache()

	handlers.Setup(userStore, apptStore, engine, statsCache, handlers.NewCaptchaVerifier())

	// 4. Poller dashboard: refresh snapshot tiap 2 detik, sama dengan
	// interval polling frontend. Error dicoba lagi di tick berikutnya.
	statsPoller := poller.New(2*time.Second, func() error {
		appts, err := apptStore.ListLive()
		if err != nil {
			return err
		}
		statsCache.Set(appts)
		return nil
	})
	statsPoller.Start(context.Background())

	// 5. Init Router + Routes
	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 6. Run Server dengan graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Println("Server berjalan di port " + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server gagal jalan: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Mematikan server...")

	// Poller dulu, baru server, biar tidak ada tick nyasar waktu shutdown
	statsPoller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server dipaksa berhenti: %v", err)
	}
	log.Println("Server berhenti dengan rapi")
}
