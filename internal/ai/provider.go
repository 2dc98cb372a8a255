// Package ai abstracts the external text-generation API behind a small
// provider interface so the enrichment flow can be exercised without network
// access.
package ai

import "context"

// CompletionProvider produces text for a prompt. Complete returns the first
// completion's text; an empty string with a nil error means the API answered
// but produced no content.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
