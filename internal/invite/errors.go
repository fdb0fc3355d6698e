package invite

import "errors"

var (
	ErrMalformedToken   = errors.New("malformed invite token")
	ErrInvalidSignature = errors.New("invalid invite token signature")
	ErrTokenExpired     = errors.New("invite token expired")
	ErrMissingClaims    = errors.New("invite token missing required claims")
)
