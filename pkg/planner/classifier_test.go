package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("parses classification with questions", func(t *testing.T) {
		oracle := &cannedOracle{response: `{
		  "classification": "feature",
		  "needs_specification": true,
		  "clarifying_questions": [{"question_id": "Q1", "question": "Which database?"}]
		}`}
		c := NewClassifier(oracle, 1024)

		result, err := c.Classify(context.Background(), "add persistence", "")
		require.NoError(t, err)
		assert.Equal(t, "feature", result.Category)
		assert.True(t, result.NeedsSpecification)
		require.Len(t, result.ClarifyingQuestions, 1)
		assert.Equal(t, "Q1", result.ClarifyingQuestions[0].ID)
	})

	t.Run("answers are forwarded in the prompt", func(t *testing.T) {
		oracle := &cannedOracle{response: `{"classification": "feature"}`}
		c := NewClassifier(oracle, 1024)

		_, err := c.Classify(context.Background(), "add persistence", "Q1: use postgres")
		require.NoError(t, err)
		require.Len(t, oracle.requests, 1)
		assert.Contains(t, oracle.requests[0].User, "Q1: use postgres")
	})

	t.Run("empty classification is rejected", func(t *testing.T) {
		oracle := &cannedOracle{response: `{"needs_specification": false}`}
		c := NewClassifier(oracle, 1024)

		_, err := c.Classify(context.Background(), "do something", "")
		assert.ErrorContains(t, err, "no classification")
	})
}

func TestSpecify(t *testing.T) {
	t.Run("returns the spec text", func(t *testing.T) {
		oracle := &cannedOracle{response: "# Goal\nShip the endpoint."}
		s := NewSpecifier(oracle, 2048)

		spec, err := s.Specify(context.Background(), "add endpoint", "feature", "")
		require.NoError(t, err)
		assert.Contains(t, spec, "# Goal")
	})

	t.Run("empty spec is rejected", func(t *testing.T) {
		oracle := &cannedOracle{response: "   \n"}
		s := NewSpecifier(oracle, 2048)

		_, err := s.Specify(context.Background(), "add endpoint", "feature", "")
		assert.ErrorContains(t, err, "empty spec")
	})
}

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		out, err := ExtractJSON(`{"a": 1}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, out)
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		out, err := ExtractJSON("```json\n{\"a\": 1}\n```")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, out)
	})

	t.Run("surrounded by prose", func(t *testing.T) {
		out, err := ExtractJSON("Sure! Here you go: {\"a\": 1} Hope that helps.")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, out)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ExtractJSON("no json here")
		assert.Error(t, err)
	})
}
