package service

import (
	"context"
	"time"

	"lodge/infras/kafka"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated    = "booking.created"
	eventBookingConfirmed  = "booking.confirmed"
	eventBookingCheckedIn  = "booking.checked_in"
	eventBookingCheckedOut = "booking.checked_out"
	eventBookingCancelled  = "booking.cancelled"
	eventBookingNoShow     = "booking.no_show"
)

// lifecycleEvent is the payload published on every booking transition so
// downstream consumers (housekeeping boards, reporting) can react without
// polling.
type lifecycleEvent struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	CustomerID       string    `json:"customer_id"`
	RoomID           string    `json:"room_id"`
	Status           string    `json:"status"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType, bookingID, customerID, roomID, status string, totalCents int64) {
	event := lifecycleEvent{
		Type:             eventType,
		BookingID:        bookingID,
		CustomerID:       customerID,
		RoomID:           roomID,
		Status:           status,
		TotalAmountCents: totalCents,
		OccurredAt:       timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{
			Key:   bookingID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("booking_id", bookingID).Msg("failed to publish booking event")
		}
	}()
}
