package invite

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// invite links travel by email and are often opened a day or two later,
// so tokens stay valid for 3 days
const TokenTTL = 72 * time.Hour

const (
	claimParticipant = "participant"
	claimMeetingID   = "meetingId"
	claimExpiresAt   = "exp"
	claimIssuedAt    = "iat"
)

// creates a codec signing with the given secret
func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("invite signing secret is empty")
	}

	return &Codec{secret: []byte(secret)}, nil
}

// produces a signed, self-expiring token for the given claims
func (c *Codec) Encode(claims Claims) (string, error) {
	if claims.Participant == "" || claims.MeetingID == "" {
		return "", ErrMissingClaims
	}

	now := time.Now()

	payload := make(map[string]any, len(claims.Extra)+4)
	for k, v := range claims.Extra {
		payload[k] = v
	}

	payload[claimParticipant] = claims.Participant
	payload[claimMeetingID] = claims.MeetingID
	payload[claimIssuedAt] = now.Unix()
	payload[claimExpiresAt] = now.Add(TokenTTL).Unix()

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	headerSeg := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadSeg := base64.RawURLEncoding.EncodeToString(payloadJSON)

	return headerSeg + "." + payloadSeg + "." + c.sign(headerSeg, payloadSeg), nil
}

// verifies a token and returns its claims.
// validation order: token shape, then signature, then payload, then expiry.
// the signature is always checked before the payload is trusted.
func (c *Codec) Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, ErrMalformedToken
	}

	expected := c.sign(parts[0], parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, ErrInvalidSignature
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}

	var payload map[string]any
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, ErrMalformedToken
	}

	claims := Claims{Extra: make(map[string]string)}

	for k, v := range payload {
		switch k {
		case claimParticipant:
			claims.Participant, _ = v.(string)
		case claimMeetingID:
			claims.MeetingID, _ = v.(string)
		case claimExpiresAt:
			if exp, ok := v.(float64); ok {
				claims.ExpiresAt = time.Unix(int64(exp), 0)
			}
		case claimIssuedAt:
			if iat, ok := v.(float64); ok {
				claims.IssuedAt = time.Unix(int64(iat), 0)
			}
		default:
			if s, ok := v.(string); ok {
				claims.Extra[k] = s
			}
		}
	}

	if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	if claims.Participant == "" || claims.MeetingID == "" {
		return nil, ErrMissingClaims
	}

	return &claims, nil
}

// computes the base64url HMAC-SHA256 signature over "header.payload"
func (c *Codec) sign(headerSeg, payloadSeg string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(headerSeg + "." + payloadSeg)) //nolint:errcheck,gosec // hash writes never fail

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
