package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Total float64 `validate:"gte=0"`
	Paid  float64 `validate:"gte=0,ltefield=Total"`
	Note  string  `validate:"required,max=5"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      payment
		wantFields []string
	}{
		{name: "valid", input: payment{Total: 100, Paid: 50, Note: "ok"}},
		{name: "paid equals total", input: payment{Total: 100, Paid: 100, Note: "ok"}},
		{name: "paid exceeds total", input: payment{Total: 100, Paid: 101, Note: "ok"}, wantFields: []string{"Paid"}},
		{name: "negative total", input: payment{Total: -1, Paid: 0, Note: "ok"}, wantFields: []string{"Total"}},
		{name: "missing note", input: payment{Total: 1}, wantFields: []string{"Note"}},
		{name: "note too long", input: payment{Total: 1, Note: "toolong"}, wantFields: []string{"Note"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs Errors
			require.True(t, errors.As(err, &errs), "expected validation.Errors, got %T", err)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{
		{Field: "Paid", Message: "must not exceed Total"},
		{Field: "Note", Message: "is required"},
	}
	assert.Equal(t, "Paid: must not exceed Total; Note: is required", errs.Error())
}
