package check_availability

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

func newTestUseCase(t *testing.T) (*UseCase, string) {
	t.Helper()

	rooms := roomRepo.NewRepository()
	require.NoError(t, rooms.Add(domain.Room{ID: "r1", RoomNumber: "101", Category: domain.CategoryDouble, Beds: 2}))
	require.NoError(t, rooms.Add(domain.Room{ID: "r2", RoomNumber: "102", Category: domain.CategoryDouble, Beds: 2}))

	bookings := bookingRepo.NewRepository()
	created, err := bookings.Create(context.Background(), &domain.Booking{
		RoomID:         "r1",
		GuestID:        "g1",
		NumberOfPeople: 2,
		BookingDate:    types.NewDate(2024, 6, 10),
		DurationDays:   3,
	})
	require.NoError(t, err)

	uc := NewUseCase(rooms, bookings, metrics.Nop{}, logger.NewWithWriter(io.Discard, logger.LevelError))
	return uc, created.ID
}

func TestUseCase_Execute_Overlap(t *testing.T) {
	uc, bookingID := newTestUseCase(t)

	tests := []struct {
		name      string
		roomID    string
		start     string
		end       string
		available bool
	}{
		{name: "starts on checkout day", roomID: "r1", start: "2024-06-13", end: "2024-06-15", available: true},
		{name: "overlaps last night", roomID: "r1", start: "2024-06-12", end: "2024-06-14", available: false},
		{name: "ends on check-in day", roomID: "r1", start: "2024-06-08", end: "2024-06-10", available: true},
		{name: "other room is free", roomID: "r2", start: "2024-06-10", end: "2024-06-13", available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				RoomID:    tt.roomID,
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, resp.Available)

			if tt.available {
				assert.Nil(t, resp.Conflict)
				return
			}
			require.NotNil(t, resp.Conflict)
			assert.Equal(t, bookingID, resp.Conflict.BookingID)
			assert.Equal(t, "2024-06-10", resp.Conflict.StartDate)
			assert.Equal(t, "2024-06-13", resp.Conflict.EndDate)
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "unknown room", req: &Request{RoomID: "r9", StartDate: "2024-06-10", EndDate: "2024-06-11"}, wantErr: ErrRoomNotFound},
		{name: "empty room", req: &Request{StartDate: "2024-06-10", EndDate: "2024-06-11"}, wantErr: ErrInvalidInput},
		{name: "bad start", req: &Request{RoomID: "r1", StartDate: "10/06/2024", EndDate: "2024-06-11"}, wantErr: ErrInvalidInput},
		{name: "missing end", req: &Request{RoomID: "r1", StartDate: "2024-06-10"}, wantErr: ErrInvalidInput},
		{name: "empty range", req: &Request{RoomID: "r1", StartDate: "2024-06-10", EndDate: "2024-06-10"}, wantErr: ErrInvalidInput},
		{name: "reversed range", req: &Request{RoomID: "r1", StartDate: "2024-06-11", EndDate: "2024-06-10"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
