package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"vehiclebooking/internal/api"
	"vehiclebooking/internal/auth"
	"vehiclebooking/internal/repository"
	"vehiclebooking/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logrus.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	reportRepo := repository.NewReportRepository(database)
	jobRepo := repository.NewJobRepository(database)

	authSvc := service.NewAuthService(userRepo)
	senderSvc := service.NewSenderService(userRepo)
	bookingSvc := service.NewBookingService(bookingRepo, vehicleRepo, senderSvc)
	vehicleSvc := service.NewVehicleService(vehicleRepo, bookingRepo)
	reportSvc := service.NewReportService(reportRepo, bookingRepo, vehicleRepo, userRepo)
	jobSvc := service.NewJobService(jobRepo)

	if err := authSvc.EnsureAdmin(); err != nil {
		logrus.Fatalf("Failed to ensure admin account: %v", err)
	}

	authHandler := api.NewAuthHandler(authSvc)
	vehicleHandler := api.NewVehicleHandler(vehicleSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(vehicleSvc, bookingSvc, reportSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/vehicles", vehicleHandler.Search).Methods("GET")
	r.HandleFunc("/api/vehicles/featured", vehicleHandler.Featured).Methods("GET")
	r.HandleFunc("/api/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	r.HandleFunc("/api/availability", bookingHandler.CheckAvailability).Methods("POST")

	// Authenticated endpoints
	user := r.PathPrefix("/api/bookings").Subrouter()
	user.Use(auth.AuthMiddleware)
	user.HandleFunc("", bookingHandler.Create).Methods("POST")
	user.HandleFunc("", bookingHandler.ListMine).Methods("GET")
	user.HandleFunc("/{id}", bookingHandler.Get).Methods("GET")
	user.HandleFunc("/{id}", bookingHandler.Cancel).Methods("DELETE")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/vehicles", adminHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/vehicles", adminHandler.CreateVehicle).Methods("POST")
	admin.HandleFunc("/vehicles/{id}", adminHandler.UpdateVehicle).Methods("PUT")
	admin.HandleFunc("/vehicles/{id}", adminHandler.DeleteVehicle).Methods("DELETE")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}/status", adminHandler.SetBookingStatus).Methods("PUT")
	admin.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/reports", adminHandler.MonthlyReport).Methods("GET")

	// Hourly sweep: completed and stale bookings stop blocking availability.
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.CompleteFinishedBookings(); err != nil {
			logrus.Printf("Booking sweep failed: %v", err)
		}
	}); err != nil {
		logrus.Fatalf("Failed to schedule booking sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Printf("Server running on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
