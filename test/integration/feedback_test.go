package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillnet_backend/internal/models"
	"skillnet_backend/test/helpers"
)

func TestFeedbackSubmit_DefaultsUrgencyAndType(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feedback", "", map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@test.com",
		"subject": "Great platform",
		"message": "Keep it up",
	})

	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"urgency":"Normal"`)
	assert.Contains(t, body, `"feedback_type":"General"`)

	var count int64
	ts.DB.Model(&models.Feedback{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFeedbackSubmit_CriticalIsStoredWithoutSMTP(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feedback", "", map[string]interface{}{
		"name":    "Worried User",
		"email":   "worried@test.com",
		"subject": "Data loss",
		"urgency": "Critical",
		"message": "My projects disappeared",
	})

	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var stored models.Feedback
	require.NoError(t, ts.DB.First(&stored, "email = ?", "worried@test.com").Error)
	assert.Equal(t, models.FeedbackUrgencyCritical, stored.Urgency)
}

func TestFeedbackList_RequiresAuthAndReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	for _, subject := range []string{"First entry", "Second entry"} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/feedback", "", map[string]interface{}{
			"name":    "Visitor",
			"email":   "visitor@test.com",
			"subject": subject,
			"message": "Hello",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}
	// Push the first entry into the past so the order is deterministic.
	ts.DB.Model(&models.Feedback{}).
		Where("subject = ?", "First entry").
		Update("created_at", time.Now().Add(-time.Hour))

	// Listing exposes contact details and is not public.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/feedback", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Staff", "staff@test.com", "SuperSecret1")
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/feedback", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Second entry", entries[0]["subject"])
	assert.Equal(t, "First entry", entries[1]["subject"])
}

func TestFeedbackSubmit_RejectsInvalidUrgency(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/feedback", "", map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@test.com",
		"subject": "Hello",
		"urgency": "Apocalyptic",
		"message": "Hi",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
