package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2024-06-10", want: NewDate(2024, time.June, 10)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "with time component", input: "2024-06-10T10:00:00Z", wantErr: true},
		{name: "day first", input: "10/06/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestDateOf_IgnoresTimeOfDayAndZone(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	// 23:30 по Токио это 14:30 UTC того же дня, но календарная дата берётся локальная
	late := time.Date(2024, time.June, 10, 23, 30, 0, 0, tokyo)
	assert.Equal(t, "2024-06-10", DateOf(late).String())

	early := time.Date(2024, time.June, 10, 0, 5, 0, 0, tokyo)
	assert.Equal(t, DateOf(late), DateOf(early))
}

func TestDate_Arithmetic(t *testing.T) {
	start := NewDate(2024, time.February, 27)

	assert.Equal(t, "2024-03-01", start.AddDays(3).String())
	assert.Equal(t, "2024-02-26", start.AddDays(-1).String())
	assert.True(t, start.IsBefore(start.AddDays(1)))
	assert.False(t, start.AddDays(1).IsBefore(start))
	assert.False(t, start.IsBefore(start))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(payload{Date: NewDate(2024, time.June, 13)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-06-13"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-15"}`), &decoded))
	assert.Equal(t, "2024-06-15", decoded.Date.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"15.06.2024"}`), &decoded))
}
