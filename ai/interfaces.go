package ai

import "context"

// Answerer produces grounded answers to constitutional questions.
// Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// Answer responds to a question using only the supplied constitutional
	// context. The context holds the article excerpts the caller retrieved
	// for the question; an empty context is allowed and the model is
	// expected to say it does not know.
	// Returns an error if answer generation fails.
	Answer(ctx context.Context, question, articleContext string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// Answerer returns the question answering service.
	// The returned Answerer is safe for concurrent use.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
