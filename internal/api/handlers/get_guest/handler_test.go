package get_guest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guestRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/validation"
)

func TestHandler_Handle(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	repo := guestRepo.NewRepository()
	_, _, err := repo.Upsert(context.Background(), "X1", "Ann", "+100")
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/guests/{nationalId}",
		NewHandler(guests.NewService(repo, validation.New(), metrics.Nop{}, log), log).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guests/X1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)
	assert.Contains(t, w.Body.String(), `"phone":"+100"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guests/Y2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
