package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amberloft/venue-booking/model"
)

// Sentinel errors surfaced to handlers. ErrSlotTaken maps the database's
// unique (booking_date, time_slot) violation: the authoritative answer when
// two submissions race past the advisory overlap check.
var (
	ErrNotFound    = errors.New("booking not found")
	ErrSlotTaken   = errors.New("time slot already booked")
	ErrEmailExists = errors.New("email already exists")
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Booking operations
	CreateBooking(req model.CreateBookingRequest) (*model.Booking, error)
	GetBookingByID(bookingID string) (*model.Booking, error)
	ListBookingsForDate(date string) ([]model.Booking, error)
	ListBookings(filter model.BookingFilter) ([]model.Booking, int, error)
	UpdateBooking(req model.UpdateBookingRequest) (*model.Booking, error)
	DeleteBooking(bookingID string) error

	// Admin account operations
	CreateAdmin(req model.CreateAdminRequest) (*model.AdminUser, error)
	GetAdminByEmail(email string) (*model.AdminUser, error)
	ValidatePassword(admin *model.AdminUser, password string) bool

	// Contact inquiries
	CreateInquiry(inquiry *model.Inquiry) error

	// Health check
	GetDB() *gorm.DB
}
