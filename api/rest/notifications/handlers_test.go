package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viterhq/server/internal/mailer"
	"github.com/viterhq/server/viter/participants"
)

type fakeParticipantRepo struct {
	emails []string
	err    error
}

func (f *fakeParticipantRepo) ListEmailsForMeeting(_ context.Context, _ string) ([]string, error) {
	return f.emails, f.err
}

func (f *fakeParticipantRepo) ListForMeeting(_ context.Context, _ string) ([]*participants.Participant, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeParticipantRepo) UpsertStatus(_ context.Context, _, _, _ string) (*participants.Participant, error) {
	return nil, fmt.Errorf("not implemented")
}

func postReminder(t *testing.T, repo participants.Repository, mail *mailer.Client, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/notifications/meeting-reminder", MeetingReminderHandler(repo, mail))

	req := httptest.NewRequest(http.MethodPost, "/notifications/meeting-reminder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestMeetingReminder_Success(t *testing.T) {
	var recipients []string

	mailServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			To []string `json:"to"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		recipients = append(recipients, body.To...)

		w.Write([]byte(`{"id":"msg-1"}`)) //nolint:errcheck,gosec // test server
	}))
	defer mailServer.Close()

	mail, err := mailer.NewWithBaseURL("re_test", mailServer.URL)
	require.NoError(t, err)

	repo := &fakeParticipantRepo{emails: []string{"a@x.com", "b@x.com"}}

	w := postReminder(t, repo, mail, `{"meetingId":"meeting-42","occurredAt":"2026-09-01T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MeetingReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, recipients)
}

func TestMeetingReminder_PartialFailure(t *testing.T) {
	calls := 0

	mailServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(`{"id":"msg-1"}`)) //nolint:errcheck,gosec // test server
	}))
	defer mailServer.Close()

	mail, err := mailer.NewWithBaseURL("re_test", mailServer.URL)
	require.NoError(t, err)

	repo := &fakeParticipantRepo{emails: []string{"a@x.com", "b@x.com"}}

	w := postReminder(t, repo, mail, `{"meetingId":"meeting-42","occurredAt":"2026-09-01T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MeetingReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Sent, "a failed send should not block the rest")
}

func TestMeetingReminder_MissingMeetingID(t *testing.T) {
	mail, err := mailer.NewWithBaseURL("re_test", "http://127.0.0.1:1")
	require.NoError(t, err)

	w := postReminder(t, &fakeParticipantRepo{}, mail, `{"occurredAt":"2026-09-01T10:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeetingReminder_RepositoryFailure(t *testing.T) {
	mail, err := mailer.NewWithBaseURL("re_test", "http://127.0.0.1:1")
	require.NoError(t, err)

	repo := &fakeParticipantRepo{err: fmt.Errorf("db unavailable")}

	w := postReminder(t, repo, mail, `{"meetingId":"meeting-42","occurredAt":"2026-09-01T10:00:00Z"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
