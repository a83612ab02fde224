package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/worldmind/worldmind/pkg/llm"
)

const specifierSystemPrompt = `You write concise product specifications for an autonomous engineering pipeline.
Given a change request, produce a short spec in markdown: goal, scope, acceptance criteria.
Output only the spec text, no preamble.`

// Specifier expands an ambiguous or large request into a product spec the
// planner can decompose.
type Specifier struct {
	oracle    llm.Oracle
	maxTokens int
}

// NewSpecifier creates a specifier over the oracle.
func NewSpecifier(oracle llm.Oracle, maxTokens int) *Specifier {
	return &Specifier{oracle: oracle, maxTokens: maxTokens}
}

// Specify produces the product spec for the request.
func (s *Specifier) Specify(ctx context.Context, request, classification, clarifyingAnswers string) (string, error) {
	var user strings.Builder
	user.WriteString("Request:\n")
	user.WriteString(request)
	fmt.Fprintf(&user, "\n\nClassification: %s\n", classification)
	if clarifyingAnswers != "" {
		user.WriteString("\nUser answers to clarifying questions:\n")
		user.WriteString(clarifyingAnswers)
	}

	spec, err := s.oracle.Complete(ctx, llm.Request{
		System:    specifierSystemPrompt,
		User:      user.String(),
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("specification completion: %w", err)
	}
	if strings.TrimSpace(spec) == "" {
		return "", fmt.Errorf("specifier returned an empty spec")
	}
	return spec, nil
}
