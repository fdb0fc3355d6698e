package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotBody sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-123"}`)) //nolint:errcheck,gosec // test server
	}))
	defer server.Close()

	client, err := NewWithBaseURL("re_test_key", server.URL)
	require.NoError(t, err)

	id, err := client.Send(context.Background(), Email{
		To:      "invitee@example.com",
		Subject: "Interview invitation",
		HTML:    "<p>You are invited</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, []string{"invitee@example.com"}, gotBody.To)
	assert.Equal(t, "Interview invitation", gotBody.Subject)
}

func TestSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`)) //nolint:errcheck,gosec // test server
	}))
	defer server.Close()

	client, err := NewWithBaseURL("re_test_key", server.URL)
	require.NoError(t, err)

	_, err = client.Send(context.Background(), Email{To: "not-an-email"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}
