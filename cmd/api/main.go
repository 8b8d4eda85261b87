package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"medcontrol/internal/config"
	"medcontrol/internal/database"
	"medcontrol/internal/middleware"
	"medcontrol/internal/modules/auth"
	"medcontrol/internal/modules/health"
	"medcontrol/internal/modules/inventory"
	"medcontrol/internal/modules/medication"
	"medcontrol/internal/modules/prescription"
	"medcontrol/internal/modules/reminder"
	"medcontrol/internal/modules/user"
	jwtsvc "medcontrol/internal/pkg/jwt"
	"medcontrol/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	healthRepo := repository.NewHealthRecordRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, tokenRepo, j, cfg.RefreshTokenPepper, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo, tokenRepo)
	userHandler := user.NewHandler(userService)

	medicationService := medication.NewService(medicationRepo)
	medicationHandler := medication.NewHandler(medicationService)

	prescriptionService := prescription.NewService(prescriptionRepo, medicationRepo)
	prescriptionHandler := prescription.NewHandler(prescriptionService)

	inventoryService := inventory.NewService(inventoryRepo, medicationRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	reminderService := reminder.NewService(reminderRepo, medicationRepo)
	reminderHandler := reminder.NewHandler(reminderService)

	healthService := health.NewService(healthRepo)
	healthHandler := health.NewHandler(healthService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			medicationHandler.RegisterProtectedRoutes(protected)
			prescriptionHandler.RegisterProtectedRoutes(protected)
			inventoryHandler.RegisterProtectedRoutes(protected)
			reminderHandler.RegisterProtectedRoutes(protected)
			healthHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
