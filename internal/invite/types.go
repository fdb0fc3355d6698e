package invite

import "time"

// signs and verifies invite tokens with a shared secret
type Codec struct {
	secret []byte
}

// carries the invitation context embedded in a token.
// Participant and MeetingID are required; Extra holds any additional
// string claims a caller wants to round-trip.
type Claims struct {
	Participant string
	MeetingID   string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Extra       map[string]string
}

// token header, fixed for every token this codec mints
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}
