package pettycash

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr []string
	}{
		{
			name: "valid",
			req:  CreateRequest{Amount: decimal.NewFromInt(500), Reason: "fuel"},
		},
		{
			name:    "zero amount",
			req:     CreateRequest{Amount: decimal.Zero, Reason: "fuel"},
			wantErr: []string{"amount"},
		},
		{
			name:    "negative amount and missing reason",
			req:     CreateRequest{Amount: decimal.NewFromInt(-10)},
			wantErr: []string{"amount", "reason"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := verrs.ToMap()
			for _, f := range tt.wantErr {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestFilterValidatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 20},
		{"below minimum limit", 1, 3, 1, 10},
		{"above maximum limit", 2, 500, 2, 100},
		{"in range", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{Page: tt.page, Limit: tt.limit}
			require.NoError(t, f.Validate())
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestFilterValidateRejectsBadInputs(t *testing.T) {
	f := Filter{
		Status:    strPtr("done"),
		StartDate: strPtr("01-02-2026"),
		Month:     strPtr("2026/01"),
	}

	err := f.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := verrs.ToMap()
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "month")
}

func TestFilterHasDateRange(t *testing.T) {
	f := Filter{Month: strPtr("2026-01")}
	assert.False(t, f.HasDateRange())

	// Any range bound wins over month.
	f.StartDate = strPtr("2026-01-10")
	assert.True(t, f.HasDateRange())

	f = Filter{EndDate: strPtr("2026-01-20"), Month: strPtr("2026-01")}
	assert.True(t, f.HasDateRange())
}
