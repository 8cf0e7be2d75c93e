package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillnet_backend/test/helpers"
)

type conversationResp struct {
	ID           string `json:"id"`
	Participants []struct {
		ID string `json:"id"`
	} `json:"participants"`
	LastMessage *struct {
		Content string `json:"content"`
	} `json:"last_message"`
}

func TestStartConversation_CreatesAndReusesPair(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "Alice", "alice@test.com", "SuperSecret1")
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "Bob", "bob@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", aliceToken, map[string]interface{}{
		"recipient_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var first conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	assert.Len(t, first.Participants, 2)

	// Starting it again from either side returns the same conversation.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", aliceToken, map[string]interface{}{
		"recipient_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var second conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, first.ID, second.ID)

	var aliceID string
	for _, p := range first.Participants {
		if p.ID != bob.ID {
			aliceID = p.ID
		}
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", bobToken, map[string]interface{}{
		"recipient_id": aliceID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var third conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &third))
	assert.Equal(t, first.ID, third.ID)
}

func TestStartConversation_WithSelf_Rejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user := helpers.CreateAndLoginUser(t, ts, "Loner", "loner@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", token, map[string]interface{}{
		"recipient_id": user.ID,
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "yourself")
}

func TestMessages_SendAndListInOrder(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "Alice", "alice@test.com", "SuperSecret1")
	bobToken, bob := helpers.CreateAndLoginUser(t, ts, "Bob", "bob@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", aliceToken, map[string]interface{}{
		"recipient_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var conv conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &conv))

	for _, content := range []string{"hello", "how are you"} {
		res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", aliceToken, map[string]interface{}{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", bobToken, map[string]interface{}{
		"content": "fine thanks",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/conversations/"+conv.ID+"/messages", bobToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var messages []struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &messages))
	require.Len(t, messages, 3)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "how are you", messages[1].Content)
	assert.Equal(t, "fine thanks", messages[2].Content)
}

func TestMessages_NonParticipant_Forbidden(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "Alice", "alice@test.com", "SuperSecret1")
	_, bob := helpers.CreateAndLoginUser(t, ts, "Bob", "bob@test.com", "SuperSecret1")
	eveToken, _ := helpers.CreateAndLoginUser(t, ts, "Eve", "eve@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", aliceToken, map[string]interface{}{
		"recipient_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var conv conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &conv))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/conversations/"+conv.ID+"/messages", eveToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", eveToken, map[string]interface{}{
		"content": "let me in",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestMessages_UnknownConversation_NotFound(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginUser(t, ts, "Alice", "alice@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/conversations/00000000-0000-0000-0000-000000000000/messages", token, nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Conversation not found")
}

func TestConversationList_ShowsLastMessage(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	aliceToken, _ := helpers.CreateAndLoginUser(t, ts, "Alice", "alice@test.com", "SuperSecret1")
	_, bob := helpers.CreateAndLoginUser(t, ts, "Bob", "bob@test.com", "SuperSecret1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/conversations", aliceToken, map[string]interface{}{
		"recipient_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var conv conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &conv))

	for _, content := range []string{"first", "latest"} {
		res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/conversations/"+conv.ID+"/messages", aliceToken, map[string]interface{}{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/conversations", aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var conversations []conversationResp
	require.NoError(t, json.Unmarshal([]byte(body), &conversations))
	require.Len(t, conversations, 1)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, "latest", conversations[0].LastMessage.Content)
}
