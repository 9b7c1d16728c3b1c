package model

import "time"

// Layout constants for the wire and storage representation of booking days
// and wall-clock times. Times are zero-padded HH:MM, so lexicographic order
// matches chronological order and the store can range-filter on plain strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Booking struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID        string    `json:"room_id" bson:"room_id"`
	BookingDate   string    `json:"booking_date" bson:"booking_date"`
	TimeFrom      string    `json:"time_from" bson:"time_from"`
	TimeTo        string    `json:"time_to" bson:"time_to"`
	EmployeeEmail string    `json:"employee_email" bson:"employee_email"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at"`
}

// BookingRequest is the payload accepted by POST /api/bookings. Shape is
// validated at the API boundary; the booking service only sees complete
// requests.
type BookingRequest struct {
	RoomID        string `json:"roomId" validate:"required"`
	EmployeeEmail string `json:"employeeEmail" validate:"required,email"`
	BookingDate   string `json:"bookingDate" validate:"required,len=10,datetime=2006-01-02"`
	TimeFrom      string `json:"timeFrom" validate:"required,len=5,datetime=15:04"`
	TimeTo        string `json:"timeTo" validate:"required,len=5,datetime=15:04"`
}

// BookingResponse is the client-facing view of a booking. The room is
// rendered by display name, not by identifier.
type BookingResponse struct {
	Room        string `json:"room"`
	BookingDate string `json:"bookingDate"`
	TimeFrom    string `json:"timeFrom"`
	TimeTo      string `json:"timeTo"`
	Email       string `json:"email"`
}

// NormalizeDate reformats a parseable date into the canonical zero-padded
// layout. time.Parse accepts non-padded components ("2024-1-2"), but date
// strings are matched by equality in the store, so only canonical values
// may be written or queried. Unparseable input is returned unchanged.
func NormalizeDate(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}

// NormalizeTime reformats a parseable time into the canonical zero-padded
// layout. Overlap filtering compares time strings lexicographically, which
// is only correct for zero-padded HH:MM ("9:30" would sort after "10:00").
func NormalizeTime(s string) string {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format(TimeLayout)
}

func NewBookingResponse(roomName string, b *Booking) *BookingResponse {
	return &BookingResponse{
		Room:        roomName,
		BookingDate: b.BookingDate,
		TimeFrom:    b.TimeFrom,
		TimeTo:      b.TimeTo,
		Email:       b.EmployeeEmail,
	}
}
