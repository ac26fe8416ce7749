// Package llm defines the provider-agnostic interface the coach talks to.
package llm

import (
	"context"
	"errors"
)

// Provider is the abstraction over a chat-completion backend.
type Provider interface {
	SendMessage(ctx context.Context, req *Request) (*Response, error)
	// Name returns the provider identifier (e.g. "openai").
	Name() string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Request is a full conversation sent to the provider.
type Request struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
	Temperature  float64
	// JSONMode asks the backend to reply with a single JSON object.
	JSONMode bool
}

// Normalized stop reasons.
const (
	StopEndTurn   = "end_turn"
	StopMaxTokens = "max_tokens"
)

// ErrTruncated reports a reply cut off by the token limit.
var ErrTruncated = errors.New("llm reply hit the token limit")

type Response struct {
	Content    string
	Usage      Usage
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
