package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"

	"github.com/amberloft/venue-booking/cache/redis"
	"github.com/amberloft/venue-booking/config"
	"github.com/amberloft/venue-booking/model"
	"github.com/amberloft/venue-booking/pricing"
	"github.com/amberloft/venue-booking/repository"
	"github.com/amberloft/venue-booking/repository/postgres"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	// Initialize repository
	repo, err := postgres.NewBookingRepository(cfg.Database.GetDatabaseURL())
	if err != nil {
		log.Fatal("Failed to initialize repository:", err)
	}

	// Initialize cache
	cacheRepo, err := redis.NewRedisCacheRepository(cfg.Redis.GetRedisURL(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to initialize cache:", err)
	}

	// Initialize Kafka writer for notifications
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.NotificationTopic,
		Balancer: &kafka.LeastBytes{},
	}

	// Rate card: published catalog with deployment-specific policy applied
	rates := pricing.DefaultConfig()
	rates.MinHours = cfg.Booking.MinHours
	rates.MaxHours = cfg.Booking.MaxHours
	rates.Currency = cfg.Booking.Currency

	// Initialize JWT service
	jwtService := NewJWTService(cfg.JWTSecret)

	// Initialize handlers
	bookingHandler := NewBookingHandler(repo, cacheRepo, kafkaWriter, rates,
		time.Duration(cfg.Booking.AvailabilityTTLSeconds)*time.Second)
	adminHandler := NewAdminHandler(bookingHandler, jwtService)

	seedAdmin(repo, cfg.Admin)

	// Setup Gin router
	r := gin.Default()

	// Add middleware
	r.Use(CORSMiddleware())

	// Health check endpoint (no auth required)
	r.GET("/health", bookingHandler.HealthCheck)

	// API routes
	api := r.Group("/api")

	// Public endpoints
	api.GET("/quote", bookingHandler.GetQuote)
	api.GET("/availability", bookingHandler.GetAvailability)
	api.POST("/bookings", bookingHandler.SubmitBooking)
	api.POST("/inquiries", bookingHandler.SubmitInquiry)

	// Admin endpoints
	api.POST("/admin/login", adminHandler.Login)

	protected := api.Group("/admin")
	protected.Use(AuthMiddleware(jwtService))
	protected.GET("/bookings", adminHandler.ListBookings)
	protected.POST("/bookings", adminHandler.CreateBooking)
	protected.PUT("/bookings/:bookingId", adminHandler.UpdateBooking)
	protected.DELETE("/bookings/:bookingId", adminHandler.DeleteBooking)

	return r
}

// seedAdmin provisions the configured dashboard account if it does not exist
// yet. Skipped when no credentials are configured.
func seedAdmin(repo repository.BookingRepository, admin config.Admin) {
	if admin.Email == "" || admin.Password == "" {
		return
	}

	_, err := repo.CreateAdmin(model.CreateAdminRequest{
		Email:    admin.Email,
		Password: admin.Password,
		Name:     admin.Name,
	})
	if err != nil {
		if err == repository.ErrEmailExists {
			return
		}
		log.Printf("Failed to seed admin account: %v", err)
		return
	}

	log.Printf("Seeded admin account %s", admin.Email)
}
