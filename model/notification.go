package model

import (
	"fmt"
	"time"
)

// Notification types published to the notification topic.
const (
	NotificationBookingReceived  = "booking_received"
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
)

// ============================================================================
// KAFKA MESSAGE STRUCTURES
// ============================================================================

// NotificationRequest represents the message sent to the notification topic
type NotificationRequest struct {
	Type           string                  `json:"type"`
	RecipientEmail string                  `json:"recipient_email"`
	BookingData    NotificationBookingData `json:"booking_data"`
	Timestamp      time.Time               `json:"timestamp"`
}

// NotificationBookingData represents booking data for notifications
type NotificationBookingData struct {
	BookingID   string  `json:"booking_id"`
	Name        string  `json:"name"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"` // 12-hour display form
	EndTime     string  `json:"end_time"`
	Duration    float64 `json:"duration"`
	Guests      int     `json:"guests"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
}

// NewNotificationRequest builds the notification payload for a booking event.
func NewNotificationRequest(notificationType, currency string, b *Booking) NotificationRequest {
	resp := b.ToBookingResponse()
	return NotificationRequest{
		Type:           notificationType,
		RecipientEmail: b.Email,
		BookingData: NotificationBookingData{
			BookingID:   b.ID,
			Name:        b.Name,
			BookingDate: b.BookingDate,
			StartTime:   resp.StartDisplay,
			EndTime:     resp.EndDisplay,
			Duration:    resp.Duration,
			Guests:      b.Guests,
			Amount:      b.Amount,
			Currency:    currency,
		},
		Timestamp: time.Now(),
	}
}

// ============================================================================
// EMAIL TEMPLATES
// ============================================================================

// EmailTemplate represents an email to be sent
type EmailTemplate struct {
	To      string
	Subject string
	Body    string
}

// GenerateBookingReceivedEmail creates email content acknowledging a new
// booking request.
func (nr *NotificationRequest) GenerateBookingReceivedEmail() *EmailTemplate {
	subject := "Booking Request Received - " + nr.BookingData.BookingDate

	body := "Dear " + nr.BookingData.Name + ",\n\n" +
		"We have received your booking request and will confirm it within 24 hours.\n\n" +
		nr.bookingSummary() +
		"\nA 50% deposit is required to confirm your booking.\n\n" +
		"Amber Loft Events"

	return &EmailTemplate{
		To:      nr.RecipientEmail,
		Subject: subject,
		Body:    body,
	}
}

// GenerateBookingConfirmedEmail creates email content for a confirmed booking
func (nr *NotificationRequest) GenerateBookingConfirmedEmail() *EmailTemplate {
	subject := "Booking Confirmed - " + nr.BookingData.BookingDate

	body := "Dear " + nr.BookingData.Name + ",\n\n" +
		"Your booking has been confirmed!\n\n" +
		nr.bookingSummary() +
		"\nWe look forward to hosting you.\n\n" +
		"Amber Loft Events"

	return &EmailTemplate{
		To:      nr.RecipientEmail,
		Subject: subject,
		Body:    body,
	}
}

// GenerateBookingCancelledEmail creates email content for a cancelled booking
func (nr *NotificationRequest) GenerateBookingCancelledEmail() *EmailTemplate {
	subject := "Booking Cancelled - " + nr.BookingData.BookingDate

	body := "Dear " + nr.BookingData.Name + ",\n\n" +
		"Your booking for " + nr.BookingData.BookingDate + " has been cancelled.\n\n" +
		"Booking ID: " + nr.BookingData.BookingID + "\n\n" +
		"Any deposit paid will be refunded within 3-5 business days.\n" +
		"If this was unexpected, please contact us.\n\n" +
		"Amber Loft Events"

	return &EmailTemplate{
		To:      nr.RecipientEmail,
		Subject: subject,
		Body:    body,
	}
}

func (nr *NotificationRequest) bookingSummary() string {
	return "Date: " + nr.BookingData.BookingDate + "\n" +
		"Time: " + nr.BookingData.StartTime + " - " + nr.BookingData.EndTime + "\n" +
		fmt.Sprintf("Duration: %g hours\n", nr.BookingData.Duration) +
		fmt.Sprintf("Guests: %d\n", nr.BookingData.Guests) +
		fmt.Sprintf("Amount: %s %d\n", nr.BookingData.Currency, nr.BookingData.Amount) +
		"Booking ID: " + nr.BookingData.BookingID + "\n"
}
