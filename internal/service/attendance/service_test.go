package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
)

func ptr(v float64) *float64 { return &v }

func TestSessionResponseDistance(t *testing.T) {
	now := time.Now()
	s := attendance.Session{
		ID:                "sess-1",
		EmployeeID:        "emp-1",
		Date:              now,
		CheckInLatitude:   ptr(12.9716),
		CheckInLongitude:  ptr(77.5946),
		CheckOutLatitude:  ptr(12.9726),
		CheckOutLongitude: ptr(77.5946),
		Status:            approval.StatePending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	resp := toSessionResponse(s)

	require.NotNil(t, resp.DistanceMeters)
	// 0.001 degrees of latitude is roughly 111 meters.
	assert.InDelta(t, 111.2, *resp.DistanceMeters, 1.0)
}

func TestSessionResponseDistanceNeedsBothLocations(t *testing.T) {
	now := time.Now()
	s := attendance.Session{
		ID:               "sess-1",
		EmployeeID:       "emp-1",
		Date:             now,
		CheckInLatitude:  ptr(12.9716),
		CheckInLongitude: ptr(77.5946),
		Status:           approval.StatePending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	resp := toSessionResponse(s)

	assert.Nil(t, resp.DistanceMeters)
}
