// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lawyer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/cedizen/ai"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/search"
	"github.com/poiesic/cedizen/storage"
)

// Assistant answers constitutional questions grounded in search results
// and keeps a per-device conversation transcript.
type Assistant struct {
	engine   *search.Engine
	answerer ai.Answerer
	chats    storage.ChatRepository
	logger   *slog.Logger
}

// Exchange is one completed question and answer, with the articles the
// answer was grounded on.
type Exchange struct {
	Question string
	Answer   string
	Sources  []core.Article
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAssistant creates a pocket lawyer assistant.
func NewAssistant(engine *search.Engine, provider ai.AIProvider, chats storage.ChatRepository, opts ...Option) (*Assistant, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if provider == nil || provider.Answerer() == nil {
		return nil, ErrAnswererRequired
	}
	if chats == nil {
		return nil, ErrChatRepositoryRequired
	}

	a := &Assistant{
		engine:   engine,
		answerer: provider.Answerer(),
		chats:    chats,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Ask answers a question for a device. The constitution is searched first
// and the hits become the model's only context; the best match is quoted
// verbatim so the model can cite it. Both turns are persisted to the
// device's transcript before the exchange is returned.
func (a *Assistant) Ask(ctx context.Context, deviceID, question string) (*Exchange, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	sources := a.engine.SearchConstitution(ctx, question)
	a.logger.Debug("grounding question", "deviceID", deviceID, "sources", len(sources))

	answer, err := a.answerer.Answer(ctx, question, buildContext(sources))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = a.chats.AddMessages(ctx,
		&core.ChatMessage{
			DeviceId:  deviceID,
			Speaker:   core.SpeakerUser,
			Contents:  question,
			Timestamp: now,
		},
		&core.ChatMessage{
			DeviceId:  deviceID,
			Speaker:   core.SpeakerAssistant,
			Contents:  answer,
			Timestamp: now,
		},
	)
	if err != nil {
		return nil, err
	}

	return &Exchange{
		Question: question,
		Answer:   answer,
		Sources:  sources,
	}, nil
}

// Transcript returns the device's conversation history, oldest first.
func (a *Assistant) Transcript(ctx context.Context, deviceID string) ([]*core.ChatMessage, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	return a.chats.GetMessages(ctx, deviceID)
}

// ClearTranscript removes the device's conversation history.
func (a *Assistant) ClearTranscript(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	return a.chats.DeleteMessages(ctx, deviceID)
}

// buildContext renders search hits into the prompt context. The first
// article is the strongest match and its text is quoted verbatim.
func buildContext(articles []core.Article) string {
	if len(articles) == 0 {
		return ""
	}

	var b strings.Builder
	for i, article := range articles {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Article %s: %s\n", article.Article, article.Title)
		if i == 0 {
			fmt.Fprintf(&b, "%q", article.Content)
		} else {
			b.WriteString(article.Content)
		}
		if article.Simplified != "" {
			b.WriteString("\nIn plain language: ")
			b.WriteString(article.Simplified)
		}
	}
	return b.String()
}
