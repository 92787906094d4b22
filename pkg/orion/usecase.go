// Package orion implements the Orion AI content generation endpoint logic.
package orion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arkode/arkode-backend/pkg/llm"
)

const systemPrompt = "You are Orion, the Arkode content assistant. " +
	"Produce concise, ready-to-publish marketing or documentation copy."

// Draft is one generated piece of content.
type Draft struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt,omitempty"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UseCase generates content drafts.
type UseCase interface {
	Generate(ctx context.Context, prompt string) (Draft, error)
}

type service struct {
	model     llm.ChatModel
	modelName string
}

// NewService builds the generation service. model may be nil when no LLM
// provider is configured; the service then answers with the static
// placeholder the original stub returned.
func NewService(model llm.ChatModel, modelName string) UseCase {
	return &service{model: model, modelName: modelName}
}

func (s *service) Generate(ctx context.Context, prompt string) (Draft, error) {
	draft := Draft{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}
	if s.model == nil || prompt == "" {
		draft.Content = "Orion AI content generation"
		return draft, nil
	}
	content, err := s.model.Ask(ctx, systemPrompt, prompt)
	if err != nil {
		return Draft{}, err
	}
	draft.Content = content
	draft.Model = s.modelName
	return draft, nil
}
