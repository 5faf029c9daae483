package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/cedizen/ai"
)

var _ ai.Answerer = (*MockAnswerer)(nil)

// MockAnswerer is a test double for ai.Answerer.
// It allows custom behavior injection via function fields.
type MockAnswerer struct {
	// AnswerFunc is called by Answer if set.
	// If nil, uses a default canned response.
	AnswerFunc func(ctx context.Context, question, articleContext string) (string, error)

	callCount int
	questions []string
	contexts  []string
}

// NewMockAnswerer creates a mock answerer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnswerer().
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// Answer produces a deterministic mock answer.
// Default behavior: echoes the question and reports whether any context
// was supplied, so tests can assert on context composition.
func (m *MockAnswerer) Answer(ctx context.Context, question, articleContext string) (string, error) {
	m.callCount++
	m.questions = append(m.questions, question)
	m.contexts = append(m.contexts, articleContext)

	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, question, articleContext)
	}

	if strings.TrimSpace(articleContext) == "" {
		return "I do not know. Please seek professional legal counsel.", nil
	}
	return fmt.Sprintf("Mock answer to: %s", question), nil
}

// CallCount returns the number of times Answer was called.
func (m *MockAnswerer) CallCount() int {
	return m.callCount
}

// LastQuestion returns the most recent question passed to Answer.
func (m *MockAnswerer) LastQuestion() string {
	if len(m.questions) == 0 {
		return ""
	}
	return m.questions[len(m.questions)-1]
}

// LastContext returns the most recent article context passed to Answer.
func (m *MockAnswerer) LastContext() string {
	if len(m.contexts) == 0 {
		return ""
	}
	return m.contexts[len(m.contexts)-1]
}

// Reset clears recorded calls and custom functions.
func (m *MockAnswerer) Reset() {
	m.callCount = 0
	m.questions = nil
	m.contexts = nil
	m.AnswerFunc = nil
}
