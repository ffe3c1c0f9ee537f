package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amberloft/venue-booking/model"
	"github.com/amberloft/venue-booking/repository"
	"github.com/amberloft/venue-booking/scheduling"
)

type AdminHandler struct {
	booking    *BookingHandler
	jwtService *JWTService
}

func NewAdminHandler(booking *BookingHandler, jwtService *JWTService) *AdminHandler {
	return &AdminHandler{
		booking:    booking,
		jwtService: jwtService,
	}
}

// Login authenticates a dashboard operator
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	admin, err := h.booking.repo.GetAdminByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error:   "authentication_failed",
			Message: "Invalid email or password",
		})
		return
	}

	if !h.booking.repo.ValidatePassword(admin, req.Password) {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error:   "authentication_failed",
			Message: "Invalid email or password",
		})
		return
	}

	token, err := h.jwtService.GenerateToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(tokenLifetime.Seconds()),
		Admin:       admin.ToAdminResponse(),
	})
}

// ListBookings returns bookings for the dashboard with filtering
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	status := c.Query("status")
	if status != "" && status != model.StatusPending && status != model.StatusConfirmed && status != model.StatusCancelled {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "status must be pending, confirmed or cancelled",
		})
		return
	}

	filter := model.BookingFilter{
		Query:  c.Query("q"),
		Date:   c.Query("date"),
		Status: status,
		Limit:  limit,
		Offset: offset,
	}

	bookings, total, err := h.booking.repo.ListBookings(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve bookings",
		})
		return
	}

	responses := make([]model.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToBookingResponse())
	}

	c.JSON(http.StatusOK, model.BookingListResponse{
		Bookings: responses,
		Total:    total,
	})
}

// CreateBooking creates a booking on behalf of a caller (phone bookings,
// walk-ins). The same overlap rules apply as on the public form.
func (h *AdminHandler) CreateBooking(c *gin.Context) {
	var req model.AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	if resp := h.validateSlot(c, &req, ""); !resp {
		return
	}

	booking, err := h.booking.repo.CreateBooking(req.ToCreateBookingRequest(h.resolveAmount(&req)))
	if err != nil {
		if err == repository.ErrSlotTaken {
			c.JSON(http.StatusConflict, model.ErrorResponse{
				Error:   "slot_taken",
				Message: "This time slot is already booked (unique date + time).",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create booking",
		})
		return
	}

	h.booking.invalidateDay(booking.BookingDate)
	if booking.Status == model.StatusConfirmed {
		h.booking.publishNotification(c.Request.Context(), model.NotificationBookingConfirmed, booking)
	}

	c.JSON(http.StatusCreated, booking.ToBookingResponse())
}

// UpdateBooking applies a full edit to a booking, excluding it from its own
// overlap check.
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	var req model.AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	existing, err := h.booking.repo.GetBookingByID(bookingID)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, model.ErrorResponse{
				Error:   "not_found",
				Message: "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve booking",
		})
		return
	}

	if resp := h.validateSlot(c, &req, bookingID); !resp {
		return
	}

	updated, err := h.booking.repo.UpdateBooking(req.ToUpdateBookingRequest(bookingID, h.resolveAmount(&req)))
	if err != nil {
		if err == repository.ErrSlotTaken {
			c.JSON(http.StatusConflict, model.ErrorResponse{
				Error:   "slot_taken",
				Message: "This time slot is already booked (unique date + time).",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to update booking",
		})
		return
	}

	// A reschedule frees the old date as well as occupying the new one.
	h.booking.invalidateDay(existing.BookingDate)
	if updated.BookingDate != existing.BookingDate {
		h.booking.invalidateDay(updated.BookingDate)
	}

	if updated.Status != existing.Status {
		switch updated.Status {
		case model.StatusConfirmed:
			h.booking.publishNotification(c.Request.Context(), model.NotificationBookingConfirmed, updated)
		case model.StatusCancelled:
			h.booking.publishNotification(c.Request.Context(), model.NotificationBookingCancelled, updated)
		}
	}

	c.JSON(http.StatusOK, updated.ToBookingResponse())
}

// DeleteBooking removes a booking permanently
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	existing, err := h.booking.repo.GetBookingByID(bookingID)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, model.ErrorResponse{
				Error:   "not_found",
				Message: "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve booking",
		})
		return
	}

	if err := h.booking.repo.DeleteBooking(bookingID); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete booking",
		})
		return
	}

	h.booking.invalidateDay(existing.BookingDate)

	c.JSON(http.StatusOK, gin.H{"deleted": bookingID})
}

// validateSlot runs duration bounds and the advisory overlap check for admin
// writes. Returns false after writing an error response. Cancelled bookings
// hold no slot, so they skip the overlap check entirely.
func (h *AdminHandler) validateSlot(c *gin.Context, req *model.AdminBookingRequest, selfID string) bool {
	if req.Duration < h.booking.rates.MinHours || req.Duration > h.booking.rates.MaxHours {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "duration is outside the bookable range",
		})
		return false
	}

	if _, ok := scheduling.ParseClock(req.TimeSlot); !ok {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "time_slot must be HH:MM",
		})
		return false
	}

	if req.Status == model.StatusCancelled {
		return true
	}

	slots, err := h.booking.daySlots(req.BookingDate)
	if err != nil {
		// Advisory check fails open; the unique index still guards the slot.
		slots = nil
	}

	candidate := scheduling.Candidate{
		ID:            selfID,
		StartTime:     req.TimeSlot,
		DurationHours: req.Duration,
	}
	if conflict := scheduling.FindConflict(candidate, slots); conflict != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "slot_conflict",
			"message":  conflictInfo(conflict).Message,
			"conflict": conflictInfo(conflict),
		})
		return false
	}

	return true
}

func (h *AdminHandler) resolveAmount(req *model.AdminBookingRequest) int64 {
	if req.Amount != nil {
		return *req.Amount
	}
	return h.booking.rates.Quote(req.BookingDate, req.Duration, req.AddOns).Amount()
}
