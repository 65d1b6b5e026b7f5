package get_available_rooms

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
)

type fakeUseCase struct {
	executeFunc func(ctx context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error) {
	return f.executeFunc(ctx, req)
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error) {
			require.NotNil(t, req.Category)
			assert.Equal(t, "Double", *req.Category)
			assert.Nil(t, req.StartDate)
			return &getAvailableRooms.Response{
				Rooms: []getAvailableRooms.Room{{ID: "r1", RoomNumber: "101", Category: "Double", Beds: 2, MaxOccupants: 4}},
			}, nil
		},
	}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?category=Double", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"rooms":[{"id":"r1","roomNumber":"101","category":"Double","beds":2,"maxOccupants":4}]}`,
		w.Body.String())
}

func TestHandler_Handle_InvalidFilter(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error) {
			return nil, getAvailableRooms.ErrInvalidInput
		},
	}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?category=Suite", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
