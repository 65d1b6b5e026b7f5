package create_booking

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

type fakeUseCase struct {
	executeFunc func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f.executeFunc(ctx, req)
}

const validBody = `{
	"roomId": "r1",
	"guestName": "Ann",
	"nationalId": "X1",
	"phone": "+100",
	"numberOfPeople": 2,
	"totalAmount": 300,
	"bookingDate": "2024-06-10",
	"durationDays": 3
}`

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     *createBooking.Response
		err        error
		wantStatus int
		wantInBody []string
	}{
		{
			name: "created",
			body: validBody,
			result: &createBooking.Response{
				ID:          "b1",
				RoomID:      "r1",
				TotalAmount: 300,
				BookingDate: "2024-06-10",
				EndDate:     "2024-06-13",
				CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusCreated,
			wantInBody: []string{`"id":"b1"`, `"endDate":"2024-06-13"`, `"outstandingAmount":300`},
		},
		{
			name: "conflict carries the booked range",
			body: validBody,
			err: &createBooking.ConflictError{
				RoomID:    "r1",
				BookingID: "b0",
				Start:     types.NewDate(2024, 6, 9),
				End:       types.NewDate(2024, 6, 11),
			},
			wantStatus: http.StatusConflict,
			wantInBody: []string{`"startDate":"2024-06-09"`, `"endDate":"2024-06-11"`, `"bookingId":"b0"`},
		},
		{
			name:       "validation error",
			body:       validBody,
			err:        createBooking.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantInBody: []string{msgInvalidInput},
		},
		{
			name:       "room not found",
			body:       validBody,
			err:        createBooking.ErrRoomNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "guest not found",
			body:       validBody,
			err:        createBooking.ErrGuestNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "internal error",
			body:       validBody,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "malformed body",
			body:       `{"roomId":`,
			wantStatus: http.StatusBadRequest,
			wantInBody: []string{msgInvalidRequestBody},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					assert.Equal(t, "r1", req.RoomID)
					assert.Equal(t, "2024-06-10", req.BookingDate)
					assert.Nil(t, req.PaidAmount)
					return tt.result, tt.err
				},
			}
			h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Handle(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			for _, s := range tt.wantInBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}
