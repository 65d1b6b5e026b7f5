package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		want      string
		wantNil   bool
		wantErr   bool
		wantCause error
	}{
		{name: "no dates", wantNil: true},
		{name: "blank dates", start: "  ", end: " ", wantNil: true},
		{name: "start only is one night", start: "2024-06-12", want: "2024-06-12..2024-06-13"},
		{name: "both dates", start: "2024-06-12", end: "2024-06-15", want: "2024-06-12..2024-06-15"},
		{name: "trimmed", start: " 2024-06-12 ", end: "2024-06-14 ", want: "2024-06-12..2024-06-14"},
		{name: "end without start", end: "2024-06-12", wantErr: true},
		{name: "end equals start", start: "2024-06-12", end: "2024-06-12", wantErr: true},
		{name: "end before start", start: "2024-06-12", end: "2024-06-10", wantErr: true},
		{name: "bad start", start: "12.06.2024", wantErr: true, wantCause: types.ErrInvalidDateFormat},
		{name: "bad end", start: "2024-06-12", end: "2024/06/13", wantErr: true, wantCause: types.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				if tt.wantCause != nil {
					assert.ErrorIs(t, err, tt.wantCause)
				}
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
