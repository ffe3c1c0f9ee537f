package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"

	"github.com/amberloft/venue-booking/cache"
	"github.com/amberloft/venue-booking/model"
	"github.com/amberloft/venue-booking/pricing"
	"github.com/amberloft/venue-booking/repository"
	"github.com/amberloft/venue-booking/scheduling"
)

// notificationPublisher is the slice of kafka.Writer the handlers need;
// keeping it an interface lets tests swap in a recorder.
type notificationPublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type BookingHandler struct {
	repo            repository.BookingRepository
	cache           cache.CacheRepository
	notifications   notificationPublisher
	rates           pricing.Config
	availabilityTTL time.Duration
}

func NewBookingHandler(repo repository.BookingRepository, cache cache.CacheRepository, notifications notificationPublisher, rates pricing.Config, availabilityTTL time.Duration) *BookingHandler {
	return &BookingHandler{
		repo:            repo,
		cache:           cache,
		notifications:   notifications,
		rates:           rates,
		availabilityTTL: availabilityTTL,
	}
}

// GetQuote prices a prospective booking. Missing or unparseable date yields a
// zero quote rather than an error: the form asks for estimates before it has
// all its inputs.
func (h *BookingHandler) GetQuote(c *gin.Context) {
	date := c.Query("date")
	hours, _ := strconv.ParseFloat(c.Query("hours"), 64)

	var addOns []string
	if raw := c.Query("add_ons"); raw != "" {
		addOns = strings.Split(raw, ",")
	}

	quote := h.rates.Quote(date, hours, addOns)

	c.JSON(http.StatusOK, model.QuoteResponse{
		Quote:    quote,
		Amount:   quote.Amount(),
		Currency: h.rates.Currency,
		MinHours: h.rates.MinHours,
		MaxHours: h.rates.MaxHours,
	})
}

// GetAvailability returns the occupied windows on a date and, when a
// candidate start time and duration are supplied, whether that slot fits.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "date must be YYYY-MM-DD",
		})
		return
	}

	slots, err := h.daySlots(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to load availability",
		})
		return
	}

	response := model.AvailabilityResponse{
		Date:      date,
		Busy:      busyWindows(slots),
		Available: true,
	}

	start := c.Query("start")
	hours, _ := strconv.ParseFloat(c.Query("hours"), 64)
	if start != "" && hours > 0 {
		candidate := scheduling.Candidate{StartTime: start, DurationHours: hours}
		if conflict := scheduling.FindConflict(candidate, slots); conflict != nil {
			response.Available = false
			response.Conflict = conflictInfo(conflict)
		}
	}

	c.JSON(http.StatusOK, response)
}

// SubmitBooking handles the public booking form
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req model.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	if req.Duration < h.rates.MinHours {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: fmt.Sprintf("Minimum booking duration is %g hours", h.rates.MinHours),
		})
		return
	}
	if req.Duration > h.rates.MaxHours {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: fmt.Sprintf("Maximum booking duration is %g hours", h.rates.MaxHours),
		})
		return
	}

	if _, ok := scheduling.ParseClock(req.TimeSlot); !ok {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "time_slot must be HH:MM",
		})
		return
	}

	// Advisory overlap check. A read failure degrades to "assume free" and
	// leaves the unique index to catch an actual collision.
	slots, err := h.daySlots(req.BookingDate)
	if err != nil {
		log.Printf("availability read failed for %s, relying on unique constraint: %v", req.BookingDate, err)
		slots = nil
	}

	candidate := scheduling.Candidate{StartTime: req.TimeSlot, DurationHours: req.Duration}
	if conflict := scheduling.FindConflict(candidate, slots); conflict != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "slot_conflict",
			"message":  conflictInfo(conflict).Message,
			"conflict": conflictInfo(conflict),
		})
		return
	}

	// The server prices the slot; the client's estimate is display-only.
	quote := h.rates.Quote(req.BookingDate, req.Duration, req.AddOns)

	booking, err := h.repo.CreateBooking(model.CreateBookingRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
		Duration:    req.Duration,
		Guests:      req.Guests,
		AddOns:      req.AddOns,
		Notes:       req.MergedNotes(),
		Amount:      quote.Amount(),
		Status:      model.StatusPending,
	})
	if err != nil {
		if err == repository.ErrSlotTaken {
			c.JSON(http.StatusConflict, model.ErrorResponse{
				Error:   "slot_taken",
				Message: "This time slot was just booked. Please choose another.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create booking",
		})
		return
	}

	h.invalidateDay(booking.BookingDate)
	h.publishNotification(c.Request.Context(), model.NotificationBookingReceived, booking)

	c.JSON(http.StatusCreated, booking.ToBookingResponse())
}

// SubmitInquiry handles the contact form
func (h *BookingHandler) SubmitInquiry(c *gin.Context) {
	var req model.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	inquiry := &model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		inquiry.Phone = &phone
	}

	if err := h.repo.CreateInquiry(inquiry); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to store inquiry",
		})
		return
	}

	c.JSON(http.StatusCreated, model.InquiryResponse{
		InquiryID: inquiry.ID,
		CreatedAt: inquiry.CreatedAt,
	})
}

// HealthCheck handles health check endpoint
func (h *BookingHandler) HealthCheck(c *gin.Context) {
	// Check database connection
	sqlDB, err := h.repo.GetDB().DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error:   "service_unavailable",
			Message: "Database connection failed",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error:   "service_unavailable",
			Message: "Database ping failed",
		})
		return
	}

	// A dead cache degrades reads but never blocks bookings, so it does not
	// fail the health check.
	status := "healthy"
	if err := h.cache.Ping(); err != nil {
		log.Printf("cache ping failed: %v", err)
		status = "degraded"
	}

	response := model.HealthResponse{
		Status:    status,
		Service:   "venue-booking",
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// daySlots returns the slot snapshot for a date, reading through the cache.
func (h *BookingHandler) daySlots(date string) ([]scheduling.Slot, error) {
	if cached, err := h.cache.GetDaySlots(date); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("availability cache read failed for %s: %v", date, err)
	}

	bookings, err := h.repo.ListBookingsForDate(date)
	if err != nil {
		return nil, err
	}

	slots := make([]scheduling.Slot, 0, len(bookings))
	for i := range bookings {
		slots = append(slots, bookings[i].ToSlot())
	}

	if err := h.cache.SetDaySlots(date, slots, h.availabilityTTL); err != nil {
		log.Printf("availability cache write failed for %s: %v", date, err)
	}

	return slots, nil
}

func (h *BookingHandler) invalidateDay(date string) {
	if err := h.cache.InvalidateDay(date); err != nil {
		log.Printf("availability cache invalidation failed for %s: %v", date, err)
	}
}

func (h *BookingHandler) publishNotification(ctx context.Context, notificationType string, booking *model.Booking) {
	payload := model.NewNotificationRequest(notificationType, h.rates.Currency, booking)
	msgBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal %s notification: %v", notificationType, err)
		return
	}

	if err := h.notifications.WriteMessages(ctx, kafka.Message{
		Key:   []byte(booking.ID),
		Value: msgBytes,
	}); err != nil {
		log.Printf("failed to publish %s notification for booking %s: %v", notificationType, booking.ID, err)
	}
}

func busyWindows(slots []scheduling.Slot) []model.BusyWindow {
	windows := make([]model.BusyWindow, 0, len(slots))
	for _, slot := range slots {
		if slot.Status == scheduling.StatusCancelled {
			continue
		}
		duration := slot.DurationHours
		if duration <= 0 {
			duration = scheduling.DefaultDurationHours
		}
		windows = append(windows, model.BusyWindow{
			TimeSlot:     slot.TimeSlot,
			Duration:     duration,
			Status:       slot.Status,
			StartDisplay: scheduling.Format12Hour(slot.TimeSlot),
			EndDisplay:   scheduling.Format12Hour(scheduling.AddMinutes(slot.TimeSlot, int(duration*60))),
		})
	}
	return windows
}

func conflictInfo(conflict *scheduling.Conflict) *model.ConflictInfo {
	return &model.ConflictInfo{
		ExistingStart: conflict.ExistingStart,
		ExistingEnd:   conflict.ExistingEnd,
		Message: fmt.Sprintf("This time conflicts with an existing booking (%s - %s). Please choose a different time.",
			conflict.ExistingStart, conflict.ExistingEnd),
	}
}
