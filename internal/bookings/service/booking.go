package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/internal/bookings/repository"
	roomserrors "roombook/internal/rooms/errors"
	roomsrepository "roombook/internal/rooms/repository"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/events"
	"roombook/pkg/model"
	"roombook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// User-facing failure messages. The non-positive and not-a-whole-hour duration
// cases are deliberately collapsed into one message: both are degenerate
// intervals from the caller's point of view.
const (
	MsgRoomNotFound    = "Meeting room not found."
	MsgInvalidDuration = "Booking duration must be at least 1 hour and in multiples of 1 hour."
	MsgSlotTaken       = "The room is already booked for the given time slot."
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error)
	GetBookings(ctx context.Context, roomID string, date string) ([]*model.BookingResponse, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	CancelBooking(ctx context.Context, id string) error
}

type bookingService struct {
	repo     repository.BookingRepository
	roomRepo roomsrepository.RoomRepository
	events   *events.Publisher
	cfg      *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	roomRepo roomsrepository.RoomRepository,
	eventPublisher *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:     repo,
		roomRepo: roomRepo,
		events:   eventPublisher,
		cfg:      cfg,
	}
}

// CreateBooking validates the requested slot and persists it. Checks run in
// order of specificity: room existence, then duration, then overlap. The
// overlap query and the insert share one transaction so concurrent creates
// for the same slot cannot both commit.
func (s *bookingService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	s.sanitize(req)

	room, err := s.resolveRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	if !validSlotDuration(req.TimeFrom, req.TimeTo) {
		s.cfg.Log.Warn("Booking rejected, invalid duration",
			"room_id", req.RoomID,
			"time_from", req.TimeFrom,
			"time_to", req.TimeTo,
		)
		return nil, apperrors.InvalidInput(MsgInvalidDuration)
	}

	booking := &model.Booking{
		RoomID:        room.ID,
		BookingDate:   req.BookingDate,
		TimeFrom:      req.TimeFrom,
		TimeTo:        req.TimeTo,
		EmployeeEmail: req.EmployeeEmail,
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if appErr := apperrors.AsAppError(err); appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to create booking", "room_id", room.ID, "error", err)
		}
		return nil, err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", room.ID,
		"booking_date", booking.BookingDate,
		"time_from", booking.TimeFrom,
		"time_to", booking.TimeTo,
	)
	s.publish(ctx, events.TypeBookingCreated, booking)

	return model.NewBookingResponse(room.Name, booking), nil
}

// GetBookings lists a room's bookings for one date in store order. Listing
// against an unknown room is an error, not an empty result.
func (s *bookingService) GetBookings(ctx context.Context, roomID string, date string) ([]*model.BookingResponse, error) {
	room, err := s.resolveRoom(ctx, sanitizer.SanitizeID(roomID))
	if err != nil {
		return nil, err
	}

	date = model.NormalizeDate(date)
	bookings, err := s.repo.FindByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "room_id", room.ID, "booking_date", date, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	responses := make([]*model.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, model.NewBookingResponse(room.Name, b))
	}

	return responses, nil
}

// GetAll lists bookings across all rooms with pagination, ordered by date
// and start time. Operational endpoint; room names are not resolved here.
func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to list bookings", "limit", limit, "offset", offset, "error", err)
			errFind = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// CancelBooking deletes a booking by id. Deletion is final; there is no
// soft-delete or status change.
func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to look up booking", "id", id, "error", err)
		return apperrors.Internal("Failed to retrieve booking", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking cancelled successfully", "id", id, "room_id", booking.RoomID)
	s.publish(ctx, events.TypeBookingCancelled, booking)

	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.RoomID = sanitizer.SanitizeID(req.RoomID)
	req.EmployeeEmail = sanitizer.SanitizeEmail(req.EmployeeEmail)

	// Only canonical zero-padded values may reach the store: dates are
	// matched by equality, times are range-filtered lexicographically.
	req.BookingDate = model.NormalizeDate(req.BookingDate)
	req.TimeFrom = model.NormalizeTime(req.TimeFrom)
	req.TimeTo = model.NormalizeTime(req.TimeTo)
}

func (s *bookingService) resolveRoom(ctx context.Context, roomID string) (*model.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) || errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.NotFound(MsgRoomNotFound)
		}
		s.cfg.Log.Error("Failed to resolve room", "room_id", roomID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}
	return room, nil
}

func (s *bookingService) verifySlotFree(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindOverlapping(ctx, booking.RoomID, booking.BookingDate, booking.TimeFrom, booking.TimeTo)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if overlaps(b.TimeFrom, b.TimeTo, booking.TimeFrom, booking.TimeTo) {
			return apperrors.Conflict(MsgSlotTaken)
		}
	}
	return nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *model.Booking) {
	if err := s.events.Publish(ctx, eventType, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

// validSlotDuration reports whether [from, to) is a positive whole-hour
// interval. Unparseable times count as degenerate intervals.
func validSlotDuration(from, to string) bool {
	start, ok := minutesOfDay(from)
	if !ok {
		return false
	}
	end, ok := minutesOfDay(to)
	if !ok {
		return false
	}

	duration := end - start
	return duration > 0 && duration%60 == 0
}

func minutesOfDay(s string) (int, bool) {
	t, err := time.Parse(model.TimeLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// overlaps reports whether the half-open intervals [from1, to1) and
// [from2, to2) intersect. Zero-padded HH:MM strings compare correctly.
func overlaps(from1, to1, from2, to2 string) bool {
	return from1 < to2 && to1 > from2
}
