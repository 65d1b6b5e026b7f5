package bookings

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

type fixture struct {
	svc      *Service
	bookings *bookingRepo.Repository
	ids      map[string]string // метка -> ID бронирования
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	rooms := roomRepo.NewRepository()
	require.NoError(t, rooms.Add(domain.Room{ID: "r1", RoomNumber: "101", Category: domain.CategoryDouble, Beds: 2}))
	require.NoError(t, rooms.Add(domain.Room{ID: "r2", RoomNumber: "102", Category: domain.CategoryCouple, Beds: 1}))

	bookings := bookingRepo.NewRepository()
	f := &fixture{
		svc:      NewService(bookings, rooms, logger.NewWithWriter(io.Discard, logger.LevelError)),
		bookings: bookings,
		ids:      make(map[string]string),
	}

	f.add(t, "r1-june10", "r1", "2024-06-10", 3)
	f.add(t, "r2-june11", "r2", "2024-06-11", 1)
	f.add(t, "r1-june20", "r1", "2024-06-20", 2)

	return f
}

func (f *fixture) add(t *testing.T, label, roomID, date string, days int) {
	t.Helper()

	d, err := types.NewDateFromString(date)
	require.NoError(t, err)

	created, err := f.bookings.Create(context.Background(), &domain.Booking{
		RoomID:         roomID,
		GuestID:        "g1",
		GuestName:      "Ann",
		NationalID:     "X1",
		Phone:          "1",
		NumberOfPeople: 1,
		TotalAmount:    300,
		PaidAmount:     100,
		BookingDate:    d,
		DurationDays:   days,
	})
	require.NoError(t, err)
	f.ids[label] = created.ID
}

func TestService_GetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.GetByID(ctx, f.ids["r1-june10"])
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", resp.BookingDate)
	assert.Equal(t, "2024-06-13", resp.EndDate)
	assert.Equal(t, 200.0, resp.OutstandingAmount)
	assert.False(t, resp.IsFullyPaid)

	paidUp, err := f.bookings.Create(ctx, &domain.Booking{
		RoomID:         "r2",
		GuestID:        "g1",
		GuestName:      "Ann",
		NationalID:     "X1",
		Phone:          "1",
		NumberOfPeople: 1,
		TotalAmount:    150,
		PaidAmount:     150,
		BookingDate:    types.NewDate(2024, time.July, 1),
		DurationDays:   1,
	})
	require.NoError(t, err)

	resp, err = f.svc.GetByID(ctx, paidUp.ID)
	require.NoError(t, err)
	assert.Zero(t, resp.OutstandingAmount)
	assert.True(t, resp.IsFullyPaid)

	_, err = f.svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.GetByID(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListBookings(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.ListBookingsRequest
		wantLabels []string
		wantErr    error
	}{
		{
			name:       "all in insertion order",
			req:        &models.ListBookingsRequest{},
			wantLabels: []string{"r1-june10", "r2-june11", "r1-june20"},
		},
		{
			name:       "by room",
			req:        &models.ListBookingsRequest{RoomID: ptr.Ptr("r1")},
			wantLabels: []string{"r1-june10", "r1-june20"},
		},
		{
			name:       "single day from start only",
			req:        &models.ListBookingsRequest{StartDate: ptr.Ptr("2024-06-12")},
			wantLabels: []string{"r1-june10"},
		},
		{
			name:       "checkout day is not occupied",
			req:        &models.ListBookingsRequest{StartDate: ptr.Ptr("2024-06-13")},
			wantLabels: []string{},
		},
		{
			name: "room and period",
			req: &models.ListBookingsRequest{
				RoomID:    ptr.Ptr("r1"),
				StartDate: ptr.Ptr("2024-06-11"),
				EndDate:   ptr.Ptr("2024-06-21"),
			},
			wantLabels: []string{"r1-june10", "r1-june20"},
		},
		{
			name:    "unknown room",
			req:     &models.ListBookingsRequest{RoomID: ptr.Ptr("r9")},
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "end without start",
			req:     &models.ListBookingsRequest{EndDate: ptr.Ptr("2024-06-12")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			req:     &models.ListBookingsRequest{StartDate: ptr.Ptr("2024-06-12"), EndDate: ptr.Ptr("2024-06-12")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad date",
			req:     &models.ListBookingsRequest{StartDate: ptr.Ptr("12.06.2024")},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			resp, err := f.svc.ListBookings(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			want := make([]string, 0, len(tt.wantLabels))
			for _, label := range tt.wantLabels {
				want = append(want, f.ids[label])
			}
			got := make([]string, 0, len(resp.Bookings))
			for _, b := range resp.Bookings {
				got = append(got, b.ID)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestService_ListBookings_LogsFilterVerbatim(t *testing.T) {
	var buf bytes.Buffer
	rooms := roomRepo.NewRepository()
	svc := NewService(bookingRepo.NewRepository(), rooms, logger.NewWithWriter(&buf, logger.LevelInfo))

	_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
		RoomID:    ptr.Ptr("r%d%s"),
		StartDate: ptr.Ptr("2024-06-10"),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.Contains(t, buf.String(), "room=r%d%s")
	assert.Contains(t, buf.String(), "period=2024-06-10..2024-06-11")
	assert.NotContains(t, buf.String(), "%!")
}
