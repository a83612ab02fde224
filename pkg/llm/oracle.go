// Package llm provides the LLM oracle seam used by the classifier, the
// specifier and the planner. The orchestrator only ever needs a single
// synchronous completion: prompt in, text out.
package llm

import "context"

// Request is one completion request.
type Request struct {
	// System is the system prompt (role framing, output contract).
	System string
	// User is the user prompt (mission request, state excerpts).
	User string
	// MaxTokens bounds the completion; 0 uses the client default.
	MaxTokens int
}

// Oracle produces a completion for a request. Implementations must be safe
// for concurrent use.
type Oracle interface {
	Complete(ctx context.Context, req Request) (string, error)
}
