// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
)

// LoginResponse carries the issued bearer token and its expiration.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClaimResponse represents a single claim in API responses.
type ClaimResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// PrincipalResponse represents the authenticated principal in API responses.
// Claims preserve their original order, including repeated role claims.
type PrincipalResponse struct {
	Subject    string          `json:"subject"`
	Department string          `json:"department,omitempty"`
	Roles      []string        `json:"roles"`
	Claims     []ClaimResponse `json:"claims"`
}

// MapPrincipalToResponse converts a principal to an API response.
func MapPrincipalToResponse(principal *authDomain.Principal) PrincipalResponse {
	claims := principal.Claims.Claims()
	claimResponses := make([]ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		claimResponses = append(claimResponses, ClaimResponse{
			Type:  claim.Type,
			Value: claim.Value,
		})
	}

	roles := principal.Claims.Roles()
	if roles == nil {
		roles = []string{}
	}

	return PrincipalResponse{
		Subject:    principal.Subject(),
		Department: principal.Department(),
		Roles:      roles,
		Claims:     claimResponses,
	}
}
