package auth

import (
	"context"
	"errors"
)

// LocalDevAPIKey is the hardcoded API key for local development only.
const LocalDevAPIKey = "ck_local_coasterforge_dev_key"

// localDevUser is the user the dev key resolves to.
const localDevUser = "coasterforge-dev"

// StaticAuthorizer resolves API keys from a fixed key -> user table. It backs
// local development and tests; production deployments plug in a real
// collaborator behind the same interface.
type StaticAuthorizer struct {
	keys map[string]string
}

// NewStaticAuthorizer builds an authorizer over an explicit key table.
func NewStaticAuthorizer(keys map[string]string) *StaticAuthorizer {
	return &StaticAuthorizer{keys: keys}
}

// NewDevAuthorizer recognizes only the hardcoded local development key.
func NewDevAuthorizer() *StaticAuthorizer {
	return NewStaticAuthorizer(map[string]string{LocalDevAPIKey: localDevUser})
}

// Authorize resolves the key or fails.
func (a *StaticAuthorizer) Authorize(ctx context.Context, apiKey string) (*ActorInfo, error) {
	userID, ok := a.keys[apiKey]
	if !ok {
		return nil, errors.New("invalid API key")
	}
	return &ActorInfo{UserID: userID, KeyName: "static"}, nil
}
