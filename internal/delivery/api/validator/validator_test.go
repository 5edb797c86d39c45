package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planRequest struct {
	Date  string `json:"date" validate:"required,date"`
	Time  string `json:"time" validate:"required,clock"`
	Title string `json:"title" validate:"required,max=10"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     planRequest
		wantErr map[string]string
	}{
		{
			name: "valid with minutes only",
			req:  planRequest{Date: "2026-03-10", Time: "07:30", Title: "Oats"},
		},
		{
			name: "valid with seconds",
			req:  planRequest{Date: "2026-03-10", Time: "07:30:15", Title: "Oats"},
		},
		{
			name:    "bad date",
			req:     planRequest{Date: "2026-13-01", Time: "07:30", Title: "Oats"},
			wantErr: map[string]string{"date": "date"},
		},
		{
			name:    "bad clock and long title",
			req:     planRequest{Date: "2026-03-10", Time: "25:00", Title: "A very long title"},
			wantErr: map[string]string{"time": "clock", "title": "max=10"},
		},
		{
			name:    "missing fields",
			req:     planRequest{},
			wantErr: map[string]string{"date": "required", "time": "required", "title": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, FieldErrors(err))
		})
	}
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
