package list_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
)

type fakeService struct {
	listFunc func(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

func (f *fakeService) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	return f.listFunc(ctx, req)
}

func TestHandler_Handle_PassesFilter(t *testing.T) {
	var got *models.ListBookingsRequest
	svc := &fakeService{
		listFunc: func(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
			got = req
			return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b1"}}}, nil
		},
	}
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelError))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?roomId=r1&startDate=2024-06-10", nil)
	w := httptest.NewRecorder()
	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	require.NotNil(t, got.RoomID)
	assert.Equal(t, "r1", *got.RoomID)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2024-06-10", *got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.Contains(t, w.Body.String(), `"id":"b1"`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid filter", err: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown room", err: bookings.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				listFunc: func(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelError))

			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
