package find_or_create_guest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	guestRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/validation"
)

func TestHandler_Handle(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	svc := guests.NewService(guestRepo.NewRepository(), validation.New(), metrics.Nop{}, log)
	h := NewHandler(svc, log)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/guests", strings.NewReader(body)))
		return w
	}

	w := post(`{"name":"Ann","nationalId":"X1","phone":"1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"created":true`)

	w = post(`{"name":"Anna","nationalId":"X1","phone":"2"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":false`)

	w = post(`{"name":"Ann","nationalId":"","phone":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidInput)

	w = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidRequestBody)
}
