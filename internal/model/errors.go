package model

import "errors"

var (
	// ErrNotFound signals a record that does not exist, with no ownership
	// semantics attached (e.g. the enrichment fetch).
	ErrNotFound = errors.New("not found")

	// ErrNotFoundOrForbidden covers both a missing record and a record owned
	// by someone else. The two cases are deliberately indistinguishable so
	// callers cannot probe for the existence of other users' concepts.
	ErrNotFoundOrForbidden = errors.New("concept not found or unauthorized")

	// ErrUnauthenticated is returned when an operation requires a caller
	// identity and none was supplied.
	ErrUnauthenticated = errors.New("must be logged in")

	ErrValidation = errors.New("validation error")

	// ErrEnrichmentFailed wraps any transport or API failure while generating
	// AI content. Nothing is persisted when it is returned.
	ErrEnrichmentFailed = errors.New("failed to generate AI content")
)
