package model

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/amberloft/venue-booking/pricing"
	"github.com/amberloft/venue-booking/scheduling"
)

// Booking lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// Booking represents a reservation of the venue for one date + time slot.
// The composite unique index on (booking_date, time_slot) is the last-resort
// guard against double booking beneath the advisory overlap check.
type Booking struct {
	ID          string         `gorm:"primary_key;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Email       string         `gorm:"type:varchar(255);not null"`
	Phone       string         `gorm:"type:varchar(50);not null"`
	EventType   string         `gorm:"type:varchar(50);not null"`
	BookingDate string         `gorm:"type:date;not null;uniqueIndex:idx_bookings_date_slot,priority:1"`
	TimeSlot    string         `gorm:"type:varchar(5);not null;uniqueIndex:idx_bookings_date_slot,priority:2"`
	Duration    *float64       `gorm:"type:decimal(4,1)"` // hours; NULL on legacy rows
	Guests      int            `gorm:"not null;default:0"`
	AddOns      pq.StringArray `gorm:"type:text[]"`
	Notes       *string        `gorm:"type:text"`
	Amount      int64          `gorm:"not null;default:0"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time
}

// TableName sets the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// DurationOrDefault returns the stored duration, or the legacy default for
// rows written before the column existed.
func (b *Booking) DurationOrDefault() float64 {
	if b.Duration == nil || *b.Duration <= 0 {
		return scheduling.DefaultDurationHours
	}
	return *b.Duration
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// CreateBookingRequest represents the data needed to create a booking
type CreateBookingRequest struct {
	Name        string
	Email       string
	Phone       string
	EventType   string
	BookingDate string
	TimeSlot    string
	Duration    float64
	Guests      int
	AddOns      []string
	Notes       *string
	Amount      int64
	Status      string
}

// UpdateBookingRequest represents a full booking update from the admin side
type UpdateBookingRequest struct {
	BookingID   string
	Name        string
	Email       string
	Phone       string
	EventType   string
	BookingDate string
	TimeSlot    string
	Duration    float64
	Guests      int
	AddOns      []string
	Notes       *string
	Amount      int64
	Status      string
}

// BookingFilter represents filtering options for admin booking queries
type BookingFilter struct {
	Query  string // free-text match over contact fields and notes
	Date   string
	Status string
	Limit  int
	Offset int
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// SubmitBookingRequest represents the public booking form submission
type SubmitBookingRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Phone             string   `json:"phone" binding:"required"`
	EventType         string   `json:"event_type" binding:"required,oneof=office party get_together conference corporate other"`
	OtherEventPurpose string   `json:"other_event_purpose"`
	BookingDate       string   `json:"booking_date" binding:"required,datetime=2006-01-02"`
	TimeSlot          string   `json:"time_slot" binding:"required"`
	Duration          float64  `json:"duration" binding:"required,gt=0"`
	Guests            int      `json:"guests" binding:"required,min=1,max=40"`
	AddOns            []string `json:"add_ons"`
	Notes             string   `json:"notes"`
}

// MergedNotes folds the free-form "other" event purpose into the notes text
// the same way the booking form always has.
func (r *SubmitBookingRequest) MergedNotes() *string {
	purpose := strings.TrimSpace(r.OtherEventPurpose)
	notes := strings.TrimSpace(r.Notes)

	var merged string
	switch {
	case r.EventType == "other" && purpose != "":
		merged = "Other event purpose: " + purpose
		if notes != "" {
			merged += "\n\nNotes: " + notes
		}
	case notes != "":
		merged = notes
	default:
		return nil
	}
	return &merged
}

// AdminBookingRequest represents an admin create or update of a booking.
// Amount is optional; when omitted the server prices the slot itself.
type AdminBookingRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	EventType   string   `json:"event_type" binding:"required,oneof=office party get_together conference corporate other"`
	BookingDate string   `json:"booking_date" binding:"required,datetime=2006-01-02"`
	TimeSlot    string   `json:"time_slot" binding:"required"`
	Duration    float64  `json:"duration" binding:"required,gt=0"`
	Guests      int      `json:"guests" binding:"min=0,max=40"`
	AddOns      []string `json:"add_ons"`
	Notes       string   `json:"notes"`
	Amount      *int64   `json:"amount"`
	Status      string   `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	BookingID    string    `json:"booking_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	EventType    string    `json:"event_type"`
	BookingDate  string    `json:"booking_date"`
	TimeSlot     string    `json:"time_slot"`
	Duration     float64   `json:"duration"`
	Guests       int       `json:"guests"`
	AddOns       []string  `json:"add_ons"`
	Notes        *string   `json:"notes,omitempty"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	StartDisplay string    `json:"start_display"`
	EndDisplay   string    `json:"end_display"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingListResponse represents the admin booking list
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BusyWindow represents one occupied range on a date
type BusyWindow struct {
	TimeSlot     string  `json:"time_slot"`
	Duration     float64 `json:"duration"`
	Status       string  `json:"status"`
	StartDisplay string  `json:"start_display"`
	EndDisplay   string  `json:"end_display"`
}

// ConflictInfo describes why a candidate slot is unavailable
type ConflictInfo struct {
	ExistingStart string `json:"existing_start"`
	ExistingEnd   string `json:"existing_end"`
	Message       string `json:"message"`
}

// AvailabilityResponse answers "what is taken on this date, and does my
// candidate slot fit"
type AvailabilityResponse struct {
	Date      string        `json:"date"`
	Busy      []BusyWindow  `json:"busy"`
	Available bool          `json:"available"`
	Conflict  *ConflictInfo `json:"conflict,omitempty"`
}

// QuoteResponse represents a price estimate for the booking form
type QuoteResponse struct {
	Quote    pricing.Quote `json:"quote"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	MinHours float64       `json:"min_hours"`
	MaxHours float64       `json:"max_hours"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToSlot converts a booking to the read-only view the conflict scan uses.
func (b *Booking) ToSlot() scheduling.Slot {
	var duration float64
	if b.Duration != nil {
		duration = *b.Duration
	}
	return scheduling.Slot{
		ID:            b.ID,
		TimeSlot:      b.TimeSlot,
		DurationHours: duration,
		Status:        b.Status,
	}
}

// ToBusyWindow converts a booking to its occupied range on the date.
func (b *Booking) ToBusyWindow() BusyWindow {
	duration := b.DurationOrDefault()
	return BusyWindow{
		TimeSlot:     b.TimeSlot,
		Duration:     duration,
		Status:       b.Status,
		StartDisplay: scheduling.Format12Hour(b.TimeSlot),
		EndDisplay:   scheduling.Format12Hour(scheduling.AddMinutes(b.TimeSlot, int(duration*60))),
	}
}

// ToBookingResponse converts a Booking entity to an API response
func (b *Booking) ToBookingResponse() BookingResponse {
	duration := b.DurationOrDefault()
	return BookingResponse{
		BookingID:    b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		EventType:    b.EventType,
		BookingDate:  b.BookingDate,
		TimeSlot:     b.TimeSlot,
		Duration:     duration,
		Guests:       b.Guests,
		AddOns:       b.AddOns,
		Notes:        b.Notes,
		Amount:       b.Amount,
		Status:       b.Status,
		StartDisplay: scheduling.Format12Hour(b.TimeSlot),
		EndDisplay:   scheduling.Format12Hour(scheduling.AddMinutes(b.TimeSlot, int(duration*60))),
		CreatedAt:    b.CreatedAt,
	}
}

// ToUpdateBookingRequest converts an admin API request to a repository update
func (r *AdminBookingRequest) ToUpdateBookingRequest(bookingID string, amount int64) UpdateBookingRequest {
	return UpdateBookingRequest{
		BookingID:   bookingID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		EventType:   r.EventType,
		BookingDate: r.BookingDate,
		TimeSlot:    r.TimeSlot,
		Duration:    r.Duration,
		Guests:      r.Guests,
		AddOns:      r.AddOns,
		Notes:       optionalText(r.Notes),
		Amount:      amount,
		Status:      r.Status,
	}
}

// ToCreateBookingRequest converts an admin API request to a repository create
func (r *AdminBookingRequest) ToCreateBookingRequest(amount int64) CreateBookingRequest {
	return CreateBookingRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		EventType:   r.EventType,
		BookingDate: r.BookingDate,
		TimeSlot:    r.TimeSlot,
		Duration:    r.Duration,
		Guests:      r.Guests,
		AddOns:      r.AddOns,
		Notes:       optionalText(r.Notes),
		Amount:      amount,
		Status:      r.Status,
	}
}

func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
