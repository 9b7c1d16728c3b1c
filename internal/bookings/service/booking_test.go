package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "roombook/internal/bookings/errors"
	roomserrors "roombook/internal/rooms/errors"
	"roombook/pkg/config"
	mongotx "roombook/pkg/db/mongo"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

// ────────────────────────────────────────────────
// Mock repositories for testing
// ────────────────────────────────────────────────

type mockBookingRepository struct {
	createFunc            func(ctx context.Context, booking *model.Booking) error
	findByIDFunc          func(ctx context.Context, id string) (*model.Booking, error)
	findByRoomAndDateFunc func(ctx context.Context, roomID string, date string) ([]*model.Booking, error)
	findOverlappingFunc   func(ctx context.Context, roomID string, date string, timeFrom, timeTo string) ([]*model.Booking, error)
	findAllFunc           func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	deleteFunc            func(ctx context.Context, id string) error
	countFunc             func(ctx context.Context) (int64, error)

	createCalls          int
	findOverlappingCalls int
	deleteCalls          int
	deletedID            string
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "6748a1b2c3d4e5f6a7b8c9d0"
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindByRoomAndDate(ctx context.Context, roomID string, date string) ([]*model.Booking, error) {
	if m.findByRoomAndDateFunc != nil {
		return m.findByRoomAndDateFunc(ctx, roomID, date)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, roomID string, date string, timeFrom, timeTo string) ([]*model.Booking, error) {
	m.findOverlappingCalls++
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, roomID, date, timeFrom, timeTo)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	m.deletedID = id
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockRoomRepository struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Room, error)
}

func (m *mockRoomRepository) Create(ctx context.Context, room *model.Room) error {
	return nil
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, roomserrors.ErrNotFound
}

func (m *mockRoomRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Room, error) {
	return []*model.Room{}, nil
}

func (m *mockRoomRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

// ────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────

const (
	testRoomID    = "6748a1b2c3d4e5f6a7b8c9aa"
	testRoomName  = "My meeting room"
	testDate      = "2024-11-27"
	testEmail     = "test@acme.com"
	testBookingID = "6748a1b2c3d4e5f6a7b8c9d0"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

func existingRoomRepo() *mockRoomRepository {
	return &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			if id == testRoomID {
				return &model.Room{ID: testRoomID, Name: testRoomName}, nil
			}
			return nil, roomserrors.ErrNotFound
		},
	}
}

func createRequest(from, to string) *model.BookingRequest {
	return &model.BookingRequest{
		RoomID:        testRoomID,
		EmployeeEmail: testEmail,
		BookingDate:   testDate,
		TimeFrom:      from,
		TimeTo:        to,
	}
}

func asAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// ────────────────────────────────────────────────
// CreateBooking
// ────────────────────────────────────────────────

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	resp, err := service.CreateBooking(context.Background(), createRequest("09:00", "10:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Room != testRoomName {
		t.Errorf("expected room %q, got %q", testRoomName, resp.Room)
	}
	if resp.BookingDate != testDate {
		t.Errorf("expected date %q, got %q", testDate, resp.BookingDate)
	}
	if resp.TimeFrom != "09:00" || resp.TimeTo != "10:00" {
		t.Errorf("expected 09:00-10:00, got %s-%s", resp.TimeFrom, resp.TimeTo)
	}
	if resp.Email != testEmail {
		t.Errorf("expected email %q, got %q", testEmail, resp.Email)
	}
	if bookingRepo.createCalls != 1 {
		t.Errorf("expected 1 create call, got %d", bookingRepo.createCalls)
	}
}

func TestCreateBooking_MultiHourSlot(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	resp, err := service.CreateBooking(context.Background(), createRequest("09:00", "12:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TimeTo != "12:00" {
		t.Errorf("expected 12:00, got %s", resp.TimeTo)
	}
}

func TestCreateBooking_NormalizesEmail(t *testing.T) {
	var persisted *model.Booking
	bookingRepo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			persisted = booking
			booking.ID = testBookingID
			return nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	req := createRequest("09:00", "10:00")
	req.EmployeeEmail = "  Test@Acme.COM "
	resp, err := service.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.EmployeeEmail != testEmail {
		t.Errorf("expected persisted email %q, got %q", testEmail, persisted.EmployeeEmail)
	}
	if resp.Email != testEmail {
		t.Errorf("expected response email %q, got %q", testEmail, resp.Email)
	}
}

func TestCreateBooking_InvalidDuration(t *testing.T) {
	tests := []struct {
		name     string
		timeFrom string
		timeTo   string
	}{
		{"half hour slot", "09:00", "09:30"},
		{"45 minute slot", "09:00", "09:45"},
		{"90 minute slot", "09:00", "10:30"},
		{"end equals start", "09:00", "09:00"},
		{"end before start", "10:00", "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &mockBookingRepository{}
			service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

			_, err := service.CreateBooking(context.Background(), createRequest(tt.timeFrom, tt.timeTo))

			appErr := asAppError(t, err)
			if appErr.Code != apperrors.CodeInvalidInput {
				t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
			}
			if appErr.Message != MsgInvalidDuration {
				t.Errorf("expected message %q, got %q", MsgInvalidDuration, appErr.Message)
			}
			if bookingRepo.createCalls != 0 {
				t.Errorf("expected no create calls, got %d", bookingRepo.createCalls)
			}
			if bookingRepo.findOverlappingCalls != 0 {
				t.Errorf("expected no overlap queries for invalid duration, got %d", bookingRepo.findOverlappingCalls)
			}
		})
	}
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	roomRepo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return nil, roomserrors.ErrNotFound
		},
	}
	service := NewBookingService(bookingRepo, roomRepo, nil, newTestConfig())

	// The interval is also invalid; room existence must be reported first.
	_, err := service.CreateBooking(context.Background(), createRequest("10:00", "09:00"))

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
	if appErr.Message != MsgRoomNotFound {
		t.Errorf("expected message %q, got %q", MsgRoomNotFound, appErr.Message)
	}
	if bookingRepo.createCalls != 0 {
		t.Errorf("expected no create calls, got %d", bookingRepo.createCalls)
	}
}

func TestCreateBooking_RoomIDNotAnObjectID(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	roomRepo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return nil, roomserrors.ErrInvalidID
		},
	}
	service := NewBookingService(bookingRepo, roomRepo, nil, newTestConfig())

	req := createRequest("09:00", "10:00")
	req.RoomID = "2"
	_, err := service.CreateBooking(context.Background(), req)

	appErr := asAppError(t, err)
	if appErr.Message != MsgRoomNotFound {
		t.Errorf("expected message %q, got %q", MsgRoomNotFound, appErr.Message)
	}
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	tests := []struct {
		name         string
		existingFrom string
		existingTo   string
	}{
		{"overlapping start", "09:30", "10:30"},
		{"overlapping end", "08:30", "09:30"},
		{"identical slot", "09:00", "10:00"},
		{"containing slot", "08:00", "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &mockBookingRepository{
				findOverlappingFunc: func(ctx context.Context, roomID string, date string, timeFrom, timeTo string) ([]*model.Booking, error) {
					return []*model.Booking{{
						ID:          "6748a1b2c3d4e5f6a7b8c9bb",
						RoomID:      roomID,
						BookingDate: date,
						TimeFrom:    tt.existingFrom,
						TimeTo:      tt.existingTo,
					}}, nil
				},
			}
			service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

			_, err := service.CreateBooking(context.Background(), createRequest("09:00", "10:00"))

			appErr := asAppError(t, err)
			if appErr.Code != apperrors.CodeConflict {
				t.Errorf("expected code %s, got %s", apperrors.CodeConflict, appErr.Code)
			}
			if appErr.Message != MsgSlotTaken {
				t.Errorf("expected message %q, got %q", MsgSlotTaken, appErr.Message)
			}
			if bookingRepo.createCalls != 0 {
				t.Errorf("expected no create calls, got %d", bookingRepo.createCalls)
			}
		})
	}
}

func TestCreateBooking_AdjacentSlotAllowed(t *testing.T) {
	// [09:00, 10:00) and [10:00, 11:00) share only the boundary point.
	bookingRepo := &mockBookingRepository{
		findOverlappingFunc: func(ctx context.Context, roomID string, date string, timeFrom, timeTo string) ([]*model.Booking, error) {
			return []*model.Booking{}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	_, err := service.CreateBooking(context.Background(), createRequest("10:00", "11:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookingRepo.createCalls != 1 {
		t.Errorf("expected 1 create call, got %d", bookingRepo.createCalls)
	}
}

func TestCreateBooking_NormalizesTimesBeforeOverlapCheck(t *testing.T) {
	// The store filter compares time strings lexicographically, so a
	// non-padded "9:30" would sort after "10:00" and slip past an existing
	// 09:00-10:00 booking unless it is normalized first.
	existing := &model.Booking{
		ID:          "6748a1b2c3d4e5f6a7b8c9bb",
		RoomID:      testRoomID,
		BookingDate: testDate,
		TimeFrom:    "09:00",
		TimeTo:      "10:00",
	}

	var gotFrom, gotTo string
	bookingRepo := &mockBookingRepository{
		findOverlappingFunc: func(ctx context.Context, roomID string, date string, timeFrom, timeTo string) ([]*model.Booking, error) {
			gotFrom, gotTo = timeFrom, timeTo
			// Same window filter the store applies.
			if existing.TimeFrom < timeTo && existing.TimeTo > timeFrom {
				return []*model.Booking{existing}, nil
			}
			return []*model.Booking{}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	_, err := service.CreateBooking(context.Background(), createRequest("9:30", "10:30"))

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected code %s, got %s", apperrors.CodeConflict, appErr.Code)
	}
	if appErr.Message != MsgSlotTaken {
		t.Errorf("expected message %q, got %q", MsgSlotTaken, appErr.Message)
	}
	if gotFrom != "09:30" || gotTo != "10:30" {
		t.Errorf("expected canonical window 09:30-10:30, got %s-%s", gotFrom, gotTo)
	}
	if bookingRepo.createCalls != 0 {
		t.Errorf("expected no create calls, got %d", bookingRepo.createCalls)
	}
}

func TestCreateBooking_PersistsCanonicalForms(t *testing.T) {
	var persisted *model.Booking
	bookingRepo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			persisted = booking
			booking.ID = testBookingID
			return nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	req := createRequest("9:00", "10:00")
	req.BookingDate = "2024-1-2"
	resp, err := service.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if persisted.BookingDate != "2024-01-02" {
		t.Errorf("expected canonical date 2024-01-02, got %q", persisted.BookingDate)
	}
	if persisted.TimeFrom != "09:00" {
		t.Errorf("expected canonical time 09:00, got %q", persisted.TimeFrom)
	}
	if resp.BookingDate != "2024-01-02" || resp.TimeFrom != "09:00" {
		t.Errorf("expected canonical response, got %s %s", resp.BookingDate, resp.TimeFrom)
	}
}

// ────────────────────────────────────────────────
// GetBookings
// ────────────────────────────────────────────────

func TestGetBookings_EmptyDay(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		findByRoomAndDateFunc: func(ctx context.Context, roomID string, date string) ([]*model.Booking, error) {
			return []*model.Booking{}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	bookings, err := service.GetBookings(context.Background(), testRoomID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(bookings) != 0 {
		t.Errorf("expected 0 bookings, got %d", len(bookings))
	}
}

func TestGetBookings_MapsRoomName(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		findByRoomAndDateFunc: func(ctx context.Context, roomID string, date string) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: testBookingID, RoomID: roomID, BookingDate: date, TimeFrom: "09:00", TimeTo: "10:00", EmployeeEmail: testEmail},
				{ID: "6748a1b2c3d4e5f6a7b8c9cc", RoomID: roomID, BookingDate: date, TimeFrom: "14:00", TimeTo: "15:00", EmployeeEmail: "other@acme.com"},
			}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	bookings, err := service.GetBookings(context.Background(), testRoomID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].Room != testRoomName {
		t.Errorf("expected room %q, got %q", testRoomName, bookings[0].Room)
	}
	if bookings[0].Email != testEmail {
		t.Errorf("expected email %q, got %q", testEmail, bookings[0].Email)
	}
	if bookings[1].TimeFrom != "14:00" {
		t.Errorf("expected store order preserved, got %s first", bookings[1].TimeFrom)
	}
}

func TestGetBookings_RoomNotFound(t *testing.T) {
	service := NewBookingService(&mockBookingRepository{}, &mockRoomRepository{}, nil, newTestConfig())

	_, err := service.GetBookings(context.Background(), "6748a1b2c3d4e5f6a7b8c9ff", testDate)

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
	if appErr.Message != MsgRoomNotFound {
		t.Errorf("expected message %q, got %q", MsgRoomNotFound, appErr.Message)
	}
}

func TestGetBookings_NormalizesDate(t *testing.T) {
	var gotDate string
	bookingRepo := &mockBookingRepository{
		findByRoomAndDateFunc: func(ctx context.Context, roomID string, date string) ([]*model.Booking, error) {
			gotDate = date
			return []*model.Booking{}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	if _, err := service.GetBookings(context.Background(), testRoomID, "2024-1-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDate != "2024-01-02" {
		t.Errorf("expected canonical date 2024-01-02, got %q", gotDate)
	}
}

// ────────────────────────────────────────────────
// GetAll
// ────────────────────────────────────────────────

func TestGetAllBookings(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: testBookingID, RoomID: testRoomID, BookingDate: testDate, TimeFrom: "09:00", TimeTo: "10:00"},
				{ID: "6748a1b2c3d4e5f6a7b8c9cc", RoomID: testRoomID, BookingDate: testDate, TimeFrom: "14:00", TimeTo: "15:00"},
			}, nil
		},
		countFunc: func(ctx context.Context) (int64, error) {
			return 17, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	bookings, count, err := service.GetAll(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(bookings))
	}
	if count != 17 {
		t.Errorf("expected count 17, got %d", count)
	}
}

func TestGetAllBookings_NormalizesPagination(t *testing.T) {
	var gotLimit int
	var gotOffset int64
	bookingRepo := &mockBookingRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			gotLimit = limit
			gotOffset = offset
			return []*model.Booking{}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	if _, _, err := service.GetAll(context.Background(), -5, -20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 10 {
		t.Errorf("expected limit normalized to 10, got %d", gotLimit)
	}
	if gotOffset != 0 {
		t.Errorf("expected offset normalized to 0, got %d", gotOffset)
	}
}

func TestGetAllBookings_CountFailure(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			return 0, context.DeadlineExceeded
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	_, _, err := service.GetAll(context.Background(), 10, 0)

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected code %s, got %s", apperrors.CodeInternal, appErr.Code)
	}
}

// ────────────────────────────────────────────────
// CancelBooking
// ────────────────────────────────────────────────

func TestCancelBooking_Success(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return &model.Booking{ID: id, RoomID: testRoomID, BookingDate: testDate, TimeFrom: "09:00", TimeTo: "10:00"}, nil
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	if err := service.CancelBooking(context.Background(), testBookingID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookingRepo.deleteCalls != 1 {
		t.Errorf("expected 1 delete call, got %d", bookingRepo.deleteCalls)
	}
	if bookingRepo.deletedID != testBookingID {
		t.Errorf("expected delete of %s, got %s", testBookingID, bookingRepo.deletedID)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	service := NewBookingService(&mockBookingRepository{}, existingRoomRepo(), nil, newTestConfig())

	err := service.CancelBooking(context.Background(), "1")

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
	want := "Booking with ID 1 not found."
	if appErr.Message != want {
		t.Errorf("expected message %q, got %q", want, appErr.Message)
	}
}

func TestCancelBooking_InvalidIDFormat(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, bookingserrors.ErrInvalidID
		},
	}
	service := NewBookingService(bookingRepo, existingRoomRepo(), nil, newTestConfig())

	err := service.CancelBooking(context.Background(), "not-an-id")

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
	want := "Booking with ID not-an-id not found."
	if appErr.Message != want {
		t.Errorf("expected message %q, got %q", want, appErr.Message)
	}
}

func TestCancelBooking_EmptyID(t *testing.T) {
	service := NewBookingService(&mockBookingRepository{}, existingRoomRepo(), nil, newTestConfig())

	err := service.CancelBooking(context.Background(), "")

	appErr := asAppError(t, err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}
}

// ────────────────────────────────────────────────
// Interval helpers
// ────────────────────────────────────────────────

func TestValidSlotDuration(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"one hour", "09:00", "10:00", true},
		{"three hours", "09:00", "12:00", true},
		{"off-hour boundaries", "09:30", "11:30", true},
		{"half hour", "09:00", "09:30", false},
		{"ninety minutes", "09:00", "10:30", false},
		{"zero duration", "09:00", "09:00", false},
		{"negative duration", "10:00", "09:00", false},
		{"unparseable from", "nine", "10:00", false},
		{"unparseable to", "09:00", "ten", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validSlotDuration(tt.from, tt.to); got != tt.want {
				t.Errorf("validSlotDuration(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		from1 string
		to1   string
		from2 string
		to2   string
		want  bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:30", "10:30", "09:00", "10:00", true},
		{"contained", "09:15", "09:45", "09:00", "10:00", true},
		{"adjacent before", "08:00", "09:00", "09:00", "10:00", false},
		{"adjacent after", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "14:00", "15:00", "09:00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.from1, tt.to1, tt.from2, tt.to2); got != tt.want {
				t.Errorf("overlaps(%q, %q, %q, %q) = %v, want %v", tt.from1, tt.to1, tt.from2, tt.to2, got, tt.want)
			}
		})
	}
}
