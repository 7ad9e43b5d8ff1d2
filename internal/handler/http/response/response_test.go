package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeCarriesServerClock(t *testing.T) {
	before := time.Now().Unix()
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"k": "v"})
	after := time.Now().Unix()

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	parsed, err := time.ParseInLocation(timestampLayout, resp.Timestamp, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)

	assert.GreaterOrEqual(t, resp.ServerTime, before)
	assert.LessOrEqual(t, resp.ServerTime, after)
}

func TestErrorEnvelopeCarriesServerClock(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotZero(t, resp.ServerTime)
}
