package main

import (
	"database/sql"
	"net/http"
	"time"

	"salonbook/internal/api"
	"salonbook/internal/auth"
	"salonbook/internal/cache"
	"salonbook/internal/config"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"
	"salonbook/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		logrus.Warn("REDIS_URL not set, slot caching disabled")
	}

	grid := schedule.Grid{
		StartHour:   cfg.SlotStartHour,
		EndHour:     cfg.SlotEndHour,
		StepMinutes: cfg.SlotStepMinutes,
	}

	shiftRepo := repository.NewShiftRepository(database)
	appointmentRepo := repository.NewAppointmentRepository(database)
	directoryRepo := repository.NewDirectoryRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	ownerRepo := repository.NewOwnerRepository(database)
	jobRepo := repository.NewJobRepository(database)

	slotCache := cache.NewSlotCache(redisClient, time.Duration(cfg.SlotCacheSeconds)*time.Second)
	sender := service.NewSenderService(cfg.SalonName)

	bookingSvc := service.NewBookingService(shiftRepo, appointmentRepo, directoryRepo, customerRepo, slotCache, sender, grid)
	directorySvc := service.NewDirectoryService(directoryRepo)
	scheduleSvc := service.NewScheduleService(shiftRepo, slotCache)
	timelineSvc := service.NewTimelineService(shiftRepo, appointmentRepo, directoryRepo, grid, cfg.PixelsPerMinute)
	authSvc := service.NewOwnerAuthService(ownerRepo, cfg.JWTSecret)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc, directorySvc)
	adminHandler := api.NewAdminHandler(bookingSvc, directorySvc, scheduleSvc, timelineSvc)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints (customer booking wizard)
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/companies/{id}", bookingHandler.GetCompany).Methods("GET")
	r.HandleFunc("/api/companies/{id}/categories", bookingHandler.GetCatalog).Methods("GET")
	r.HandleFunc("/api/slots", bookingHandler.GetSlots).Methods("GET")
	r.HandleFunc("/api/customers", bookingHandler.CreateCustomer).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")

	// Owner endpoints (protected)
	owner := r.PathPrefix("/api").Subrouter()
	owner.Use(auth.OwnerAuthMiddleware(cfg.JWTSecret))
	owner.HandleFunc("/employees", adminHandler.ListEmployees).Methods("GET")
	owner.HandleFunc("/employees/{id}/services", adminHandler.ListEmployeeServices).Methods("GET")
	owner.HandleFunc("/shifts", adminHandler.ListShifts).Methods("GET")
	owner.HandleFunc("/shifts", adminHandler.SaveShifts).Methods("POST")
	owner.HandleFunc("/appointments", adminHandler.ListAppointments).Methods("GET")
	owner.HandleFunc("/appointments/{id}", adminHandler.UpdateAppointmentStatus).Methods("PATCH")
	owner.HandleFunc("/timeline", adminHandler.GetTimeline).Methods("GET")
	owner.HandleFunc("/customers", adminHandler.ListCustomers).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		if err := jobSvc.MarkMissedAppointments(); err != nil {
			logrus.Error(err)
		}
	}); err != nil {
		logrus.Fatalf("failed to schedule no-show sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	logrus.Infof("server running on port %s", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
