package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"hospital-api/internal/config"
	"hospital-api/internal/database"
	"hospital-api/internal/handlers"
	"hospital-api/internal/middlewares"
	"hospital-api/internal/repositories"
	"hospital-api/internal/routes"
	"hospital-api/internal/services"
)

// NewServer loads configuration, connects to the database, and returns the
// configured HTTP server plus the pool so main can close it on shutdown.
func NewServer() (*http.Server, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	router := NewRouter(pool, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, pool, nil
}

// NewRouter wires repositories, services, and handlers onto a gin engine.
// Split out from NewServer so tests can run the full stack against any
// pool.
func NewRouter(pool *pgxpool.Pool, corsOrigins []string) *gin.Engine {
	patientRepo := repositories.NewPatientRepository(pool)
	doctorRepo := repositories.NewDoctorRepository(pool)
	appointmentRepo := repositories.NewAppointmentRepository(pool)
	treatmentRepo := repositories.NewTreatmentRepository(pool)
	billingRepo := repositories.NewBillingRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	authService := services.NewAuthService(userRepo)
	statsService := services.NewStatsService(patientRepo, doctorRepo, appointmentRepo, treatmentRepo, billingRepo, userRepo)

	router := gin.Default()
	router.Use(middlewares.RequestID())
	router.Use(corsMiddleware(corsOrigins))

	routes.RegisterRoutes(router, routes.Handlers{
		Stats:        handlers.NewStatsHandler(statsService),
		Auth:         handlers.NewAuthHandler(authService),
		Patients:     handlers.NewPatientHandler(patientRepo),
		Doctors:      handlers.NewDoctorHandler(doctorRepo),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		Treatments:   handlers.NewTreatmentHandler(treatmentRepo),
		Billing:      handlers.NewBillingHandler(billingRepo),
	})

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
		log.Println("CORS: allowing all origins (set CORS_ORIGINS to restrict)")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader}
	return cors.New(corsConfig)
}
