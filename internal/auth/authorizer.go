// Package auth resolves API keys to user identities. Session issuance and key
// management live in an external collaborator; this package only answers
// "who is calling", and handlers consume it inline rather than via middleware.
package auth

import "context"

// ActorInfo identifies an authenticated caller.
type ActorInfo struct {
	UserID  string `json:"user_id"`
	KeyName string `json:"key_name"`
}

// Authorizer validates an API key and resolves the calling user in one call.
type Authorizer interface {
	Authorize(ctx context.Context, apiKey string) (*ActorInfo, error)
}
