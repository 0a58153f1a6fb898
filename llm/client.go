package llm

import "context"

// Client is the surface the task executor needs from a chat-completion
// provider: one blocking round trip, no streaming.
type Client interface {
	Chat(ctx context.Context, request *ChatRequest) (*ChatResponse, error)
}
