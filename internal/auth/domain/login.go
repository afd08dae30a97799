package domain

import "time"

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	UserName string
	Password string
}

// LoginOutput contains the issued bearer token and its expiry.
// The token is only returned once and is never stored server-side.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}
