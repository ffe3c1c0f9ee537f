package worker

import (
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberloft/venue-booking/model"
)

func notificationMessage(t *testing.T, notificationType string) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(model.NotificationRequest{
		Type:           notificationType,
		RecipientEmail: "guest@example.com",
		BookingData: model.NotificationBookingData{
			BookingID:   "b1",
			Name:        "Priya",
			BookingDate: "2024-06-15",
			StartTime:   "2:00 PM",
			EndTime:     "6:00 PM",
			Duration:    4,
			Guests:      20,
			Amount:      6198,
			Currency:    "INR",
		},
	})
	require.NoError(t, err)
	return kafka.Message{Value: payload}
}

func TestProcessNotification(t *testing.T) {
	processor := NewNotificationProcessor(nil, 2)

	for _, notificationType := range []string{
		model.NotificationBookingReceived,
		model.NotificationBookingConfirmed,
		model.NotificationBookingCancelled,
	} {
		t.Run(notificationType, func(t *testing.T) {
			assert.NoError(t, processor.processNotification(notificationMessage(t, notificationType)))
		})
	}
}

func TestProcessNotificationUnknownTypeIsSkipped(t *testing.T) {
	processor := NewNotificationProcessor(nil, 2)

	assert.NoError(t, processor.processNotification(notificationMessage(t, "booking_snoozed")))
}

func TestProcessNotificationRejectsMalformedPayload(t *testing.T) {
	processor := NewNotificationProcessor(nil, 2)

	err := processor.processNotification(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestNewNotificationProcessorDefaultsWorkerCount(t *testing.T) {
	processor := NewNotificationProcessor(nil, 0)
	assert.Len(t, processor.workers, 4)
}
