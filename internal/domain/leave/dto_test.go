package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr []string
	}{
		{
			name: "valid",
			req: CreateRequest{
				LeaveType: "sick",
				StartDate: "2026-03-02",
				EndDate:   "2026-03-04",
				Reason:    "flu",
			},
		},
		{
			name: "unknown leave type",
			req: CreateRequest{
				LeaveType: "sabbatical",
				StartDate: "2026-03-02",
				EndDate:   "2026-03-04",
				Reason:    "trip",
			},
			wantErr: []string{"leave_type"},
		},
		{
			name: "end before start",
			req: CreateRequest{
				LeaveType: "casual",
				StartDate: "2026-03-04",
				EndDate:   "2026-03-02",
				Reason:    "errand",
			},
			wantErr: []string{"end_date"},
		},
		{
			name: "bad dates and missing reason",
			req: CreateRequest{
				LeaveType: "earned",
				StartDate: "02/03/2026",
				EndDate:   "",
			},
			wantErr: []string{"start_date", "end_date", "reason"},
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

func TestRequestDaysInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	r := Request{StartDate: day(2), EndDate: day(2)}
	assert.Equal(t, 1, r.Days())

	r = Request{StartDate: day(2), EndDate: day(6)}
	assert.Equal(t, 5, r.Days())
}

func TestBulkDeleteRequestValidate(t *testing.T) {
	req := BulkDeleteRequest{}
	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "ids")

	req.IDs = []string{"a", "b"}
	assert.NoError(t, req.Validate())
}
