package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldmind/worldmind/pkg/models"
)

func TestParseTestResult(t *testing.T) {
	t.Run("clean run", func(t *testing.T) {
		out := "building...\nTests run: 12, Failures: 0, Errors: 0\nBUILD SUCCESS"
		r := ParseTestResult("TASK-001", out)
		assert.True(t, r.Passed)
		assert.Equal(t, 12, r.TotalTests)
		assert.Equal(t, 0, r.FailedTests)
	})

	t.Run("failures and errors both count", func(t *testing.T) {
		r := ParseTestResult("TASK-001", "Tests run: 10, Failures: 2, Errors: 1")
		assert.False(t, r.Passed)
		assert.Equal(t, 3, r.FailedTests)
	})

	t.Run("noisy surroundings", func(t *testing.T) {
		out := "[INFO] some maven noise\n[INFO] Tests run: 5, Failures: 0, Errors: 0 - in FooTest\n[INFO] done"
		r := ParseTestResult("TASK-001", out)
		assert.True(t, r.Passed)
		assert.Equal(t, 5, r.TotalTests)
	})

	t.Run("missing summary line is a failed run", func(t *testing.T) {
		r := ParseTestResult("TASK-001", "the tester crashed before reporting")
		assert.False(t, r.Passed)
		assert.Contains(t, r.Summary, "no test summary line")
	})
}

func TestParseReviewFeedback(t *testing.T) {
	t.Run("full verdict", func(t *testing.T) {
		out := `The change looks solid overall.
Summary: clean implementation with one nit
Score: 8/10
Approved: yes
Issues:
- magic number in retry loop
Suggestions:
- extract the constant
- add a doc comment`

		f := ParseReviewFeedback("TASK-001", out)
		assert.True(t, f.Approved)
		assert.Equal(t, 8, f.Score)
		assert.Equal(t, "clean implementation with one nit", f.Summary)
		assert.Equal(t, []string{"magic number in retry loop"}, f.Issues)
		assert.Equal(t, []string{"extract the constant", "add a doc comment"}, f.Suggestions)
	})

	t.Run("rejection", func(t *testing.T) {
		f := ParseReviewFeedback("TASK-001", "Score: 3/10\nApproved: no\nIssues:\n- broken error handling")
		assert.False(t, f.Approved)
		assert.Equal(t, 3, f.Score)
		assert.Len(t, f.Issues, 1)
	})

	t.Run("case-insensitive approval", func(t *testing.T) {
		f := ParseReviewFeedback("TASK-001", "Score: 9/10\napproved: YES")
		assert.True(t, f.Approved)
	})

	t.Run("missing approval line means not approved", func(t *testing.T) {
		f := ParseReviewFeedback("TASK-001", "Score: 9/10")
		assert.False(t, f.Approved)
	})

	t.Run("bullet block ends at first non-bullet line", func(t *testing.T) {
		f := ParseReviewFeedback("TASK-001", "Issues:\n- first\n- second\nsome trailing prose\n- not an issue")
		assert.Equal(t, []string{"first", "second"}, f.Issues)
	})
}

func TestEvaluate(t *testing.T) {
	task := &models.Task{ID: "TASK-001", Agent: models.RoleCoder}
	passing := &models.TestResult{TaskID: "TASK-001", Passed: true, TotalTests: 3}
	approving := &models.ReviewFeedback{TaskID: "TASK-001", Approved: true, Score: 8}

	t.Run("granted when tests pass and review approves", func(t *testing.T) {
		d := Evaluate(task, passing, approving)
		assert.True(t, d.Granted)
	})

	t.Run("failing tests deny first", func(t *testing.T) {
		failing := &models.TestResult{TaskID: "TASK-001", Passed: false, TotalTests: 3, FailedTests: 1}
		rejecting := &models.ReviewFeedback{TaskID: "TASK-001", Approved: false, Score: 2}

		d := Evaluate(task, failing, rejecting)
		assert.False(t, d.Granted)
		assert.Equal(t, "tests", d.DenyReason)
	})

	t.Run("low score denies even when approved", func(t *testing.T) {
		d := Evaluate(task, passing, &models.ReviewFeedback{TaskID: "TASK-001", Approved: true, Score: 5})
		assert.False(t, d.Granted)
		assert.Equal(t, "review", d.DenyReason)
	})

	t.Run("unapproved review denies", func(t *testing.T) {
		d := Evaluate(task, passing, &models.ReviewFeedback{TaskID: "TASK-001", Approved: false, Score: 7})
		assert.False(t, d.Granted)
		assert.Equal(t, "review", d.DenyReason)
		assert.Contains(t, d.Message, "not approved")
	})

	t.Run("missing verifiers grant by default", func(t *testing.T) {
		// skipPerTaskTests runs no TESTER/REVIEWER at all.
		d := Evaluate(task, nil, nil)
		assert.True(t, d.Granted)
	})
}
