package llm

import "context"

// ChatModel is a minimal abstraction over chat-based LLM providers so the
// content domain never depends on a concrete API client.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
