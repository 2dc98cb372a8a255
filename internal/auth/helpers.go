package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNoAPIKey is returned when the request carries no usable Authorization
// header. Callers treat it as "anonymous", not as a transport failure.
var ErrNoAPIKey = errors.New("missing or malformed Authorization header")

// ExtractAPIKey extracts the Bearer API key from the Authorization header.
func ExtractAPIKey(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAPIKey
	}

	// Expect "Bearer <api_key>" format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrNoAPIKey
	}

	return parts[1], nil
}

// ResolveCaller returns the calling user's id, or "" when the request is
// anonymous or the key does not resolve. Operations that require a caller
// enforce that downstream; list-style reads degrade to empty results instead.
func ResolveCaller(r *http.Request, az Authorizer) string {
	apiKey, err := ExtractAPIKey(r)
	if err != nil {
		return ""
	}
	actor, err := az.Authorize(r.Context(), apiKey)
	if err != nil || actor == nil {
		return ""
	}
	return actor.UserID
}
