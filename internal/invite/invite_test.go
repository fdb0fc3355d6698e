package invite

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-invite-secret"

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	token, err := codec.Encode(Claims{
		Participant: "invitee@example.com",
		MeetingID:   "meeting-42",
		Extra:       map[string]string{"title": "Backend interview"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "token should have 3 parts")

	claims, err := codec.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "invitee@example.com", claims.Participant)
	assert.Equal(t, "meeting-42", claims.MeetingID)
	assert.Equal(t, "Backend interview", claims.Extra["title"])
	assert.False(t, claims.IssuedAt.IsZero())
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt, 5*time.Second)
}

func TestEncode_MissingRequiredClaims(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	_, err = codec.Encode(Claims{Participant: "invitee@example.com"})
	assert.ErrorIs(t, err, ErrMissingClaims)

	_, err = codec.Encode(Claims{MeetingID: "meeting-42"})
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestDecode_MalformedToken(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"empty payload segment", "a..c"},
		{"empty signature segment", "a.b."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestDecode_TamperedPayload(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	token, err := codec.Encode(Claims{
		Participant: "invitee@example.com",
		MeetingID:   "meeting-42",
	})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// flip every character of the payload segment in turn
	for i := 0; i < len(parts[1]); i++ {
		mutated := []byte(parts[1])
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		tampered := parts[0] + "." + string(mutated) + "." + parts[2]

		_, err := codec.Decode(tampered)
		assert.ErrorIs(t, err, ErrInvalidSignature, "mutation at index %d should fail signature check", i)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	other, err := New("a-different-secret")
	require.NoError(t, err)

	token, err := codec.Encode(Claims{
		Participant: "invitee@example.com",
		MeetingID:   "meeting-42",
	})
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecode_ExpiredToken(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	// build a correctly signed token whose expiry is in the past
	token := signedToken(t, codec, map[string]any{
		"participant": "invitee@example.com",
		"meetingId":   "meeting-42",
		"iat":         time.Now().Add(-2 * time.Hour).Unix(),
		"exp":         time.Now().Add(-1 * time.Hour).Unix(),
	})

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_MissingParticipant(t *testing.T) {
	codec, err := New(testSecret)
	require.NoError(t, err)

	token := signedToken(t, codec, map[string]any{
		"meetingId": "meeting-42",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestDecode_UnsignedPayloadRejected(t *testing.T) {
	// a well-formed-looking token without a valid signature must never decode
	codec, err := New(testSecret)
	require.NoError(t, err)

	headerSeg := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloadSeg := base64.RawURLEncoding.EncodeToString([]byte(`{"participant":"forged@example.com","meetingId":"meeting-42"}`))

	_, err = codec.Decode(headerSeg + "." + payloadSeg + ".forged-signature")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

// builds a token with an arbitrary payload signed by the codec
func signedToken(t *testing.T, codec *Codec, payload map[string]any) string {
	t.Helper()

	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	headerSeg := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloadSeg := base64.RawURLEncoding.EncodeToString(payloadJSON)

	return headerSeg + "." + payloadSeg + "." + codec.sign(headerSeg, payloadSeg)
}
