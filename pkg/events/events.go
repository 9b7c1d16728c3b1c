package events

import "time"

// Event types emitted by the booking service.
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// Header keys attached to every published Kafka message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// BookingEvent is the payload published for booking lifecycle changes.
// Downstream consumers (notifications, reporting) key off Type.
type BookingEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	RoomID        string    `json:"room_id"`
	BookingDate   string    `json:"booking_date,omitempty"`
	TimeFrom      string    `json:"time_from,omitempty"`
	TimeTo        string    `json:"time_to,omitempty"`
	EmployeeEmail string    `json:"employee_email,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
