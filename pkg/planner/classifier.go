// Package planner holds the LLM-backed pipeline steps that turn a mission
// request into an executable task plan: classification, optional
// specification, and planning with DAG validation.
package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/worldmind/worldmind/pkg/llm"
	"github.com/worldmind/worldmind/pkg/models"
)

const classifierSystemPrompt = `You classify software change requests for an autonomous engineering pipeline.
Respond with a single JSON object:
{
  "classification": "<feature|bugfix|refactor|research|deployment>",
  "needs_specification": <bool>,
  "clarifying_questions": [{"question_id": "Q1", "question": "..."}]
}
Ask clarifying questions only when the request is genuinely ambiguous.`

// Classification is the classifier's verdict on a request.
type Classification struct {
	Category            string                      `json:"classification"`
	NeedsSpecification  bool                        `json:"needs_specification"`
	ClarifyingQuestions []models.ClarifyingQuestion `json:"clarifying_questions"`
}

// Classifier asks the oracle what kind of change a request is and whether it
// needs clarification before planning.
type Classifier struct {
	oracle    llm.Oracle
	maxTokens int
}

// NewClassifier creates a classifier over the oracle.
func NewClassifier(oracle llm.Oracle, maxTokens int) *Classifier {
	return &Classifier{oracle: oracle, maxTokens: maxTokens}
}

// Classify runs the classification prompt for a mission request. Answers
// from an earlier clarification round are appended so the classifier does
// not re-ask resolved questions.
func (c *Classifier) Classify(ctx context.Context, request, clarifyingAnswers string) (*Classification, error) {
	user := request
	if clarifyingAnswers != "" {
		user += "\n\nUser answers to earlier questions:\n" + clarifyingAnswers
	}

	raw, err := c.oracle.Complete(ctx, llm.Request{
		System:    classifierSystemPrompt,
		User:      user,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("classification completion: %w", err)
	}

	blob, err := ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("classification output: %w", err)
	}
	var result Classification
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return nil, fmt.Errorf("parsing classification: %w", err)
	}
	if result.Category == "" {
		return nil, fmt.Errorf("classifier returned no classification")
	}
	return &result, nil
}
