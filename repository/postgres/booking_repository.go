package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amberloft/venue-booking/model"
	"github.com/amberloft/venue-booking/repository"
)

const uniqueViolationCode = "23505"

type PostgresBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(databaseURL string) (*PostgresBookingRepository, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate booking, admin and inquiry tables
	if err := db.AutoMigrate(&model.Booking{}, &model.AdminUser{}, &model.Inquiry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresBookingRepository{db: db}, nil
}

// isUniqueViolation reports whether err is the postgres duplicate-key error
// raised by the (booking_date, time_slot) index.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CreateBooking creates a new booking record
func (r *PostgresBookingRepository) CreateBooking(req model.CreateBookingRequest) (*model.Booking, error) {
	duration := req.Duration
	booking := &model.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
		Duration:    &duration,
		Guests:      req.Guests,
		AddOns:      req.AddOns,
		Notes:       req.Notes,
		Amount:      req.Amount,
		Status:      req.Status,
	}

	if err := r.db.Create(booking).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBookingByID retrieves a booking by its ID
func (r *PostgresBookingRepository) GetBookingByID(bookingID string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Where("id = ?", bookingID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// ListBookingsForDate retrieves all bookings on one date, ordered by start
// time. This is the input set for the availability check; cancelled rows are
// included so callers see the full picture and skip them explicitly.
func (r *PostgresBookingRepository) ListBookingsForDate(date string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.Where("booking_date = ?", date).
		Order("time_slot ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for date: %w", err)
	}

	return bookings, nil
}

// ListBookings retrieves bookings with admin dashboard filtering
func (r *PostgresBookingRepository) ListBookings(filter model.BookingFilter) ([]model.Booking, int, error) {
	var bookings []model.Booking
	var total int64

	query := r.db.Model(&model.Booking{})

	if filter.Date != "" {
		query = query.Where("booking_date = ?", filter.Date)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	// Apply pagination and ordering
	err := query.Order("booking_date DESC").
		Order("time_slot ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&bookings).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, int(total), nil
}

// UpdateBooking applies a full admin edit and returns the updated row
func (r *PostgresBookingRepository) UpdateBooking(req model.UpdateBookingRequest) (*model.Booking, error) {
	updates := map[string]interface{}{
		"name":         req.Name,
		"email":        req.Email,
		"phone":        req.Phone,
		"event_type":   req.EventType,
		"booking_date": req.BookingDate,
		"time_slot":    req.TimeSlot,
		"duration":     req.Duration,
		"guests":       req.Guests,
		"add_ons":      req.AddOns,
		"notes":        req.Notes,
		"amount":       req.Amount,
		"status":       req.Status,
	}

	result := r.db.Model(&model.Booking{}).Where("id = ?", req.BookingID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, repository.ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetBookingByID(req.BookingID)
}

// DeleteBooking removes a booking permanently
func (r *PostgresBookingRepository) DeleteBooking(bookingID string) error {
	result := r.db.Where("id = ?", bookingID).Delete(&model.Booking{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// CreateAdmin creates a new admin account with hashed password
func (r *PostgresBookingRepository) CreateAdmin(req model.CreateAdminRequest) (*model.AdminUser, error) {
	// Check if admin already exists
	var existing model.AdminUser
	if err := r.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, repository.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := model.AdminUser{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
	}

	if err := r.db.Create(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// GetAdminByEmail retrieves an admin account by email
func (r *PostgresBookingRepository) GetAdminByEmail(email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// ValidatePassword checks the provided password against the stored hash
func (r *PostgresBookingRepository) ValidatePassword(admin *model.AdminUser, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	return err == nil
}

// CreateInquiry stores a contact-page message
func (r *PostgresBookingRepository) CreateInquiry(inquiry *model.Inquiry) error {
	if err := r.db.Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// GetDB returns the database instance for health checks
func (r *PostgresBookingRepository) GetDB() *gorm.DB {
	return r.db
}
