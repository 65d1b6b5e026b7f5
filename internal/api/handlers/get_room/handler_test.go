package get_room

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
)

type fakeService struct {
	getFunc func(ctx context.Context, id string) (*models.RoomResponse, error)
}

func (f *fakeService) GetRoomByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	return f.getFunc(ctx, id)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		room       *models.RoomResponse
		err        error
		wantStatus int
	}{
		{name: "found", room: &models.RoomResponse{ID: "r1", RoomNumber: "101"}, wantStatus: http.StatusOK},
		{name: "not found", err: rooms.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: rooms.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				getFunc: func(ctx context.Context, id string) (*models.RoomResponse, error) {
					assert.Equal(t, "r1", id)
					return tt.room, tt.err
				},
			}
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/rooms/{roomId}", NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelError)).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/r1", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
