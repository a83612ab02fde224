// Package gate parses verifier outputs and decides whether a code task's
// work is accepted.
package gate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/worldmind/worldmind/pkg/models"
)

// MinApprovalScore is the lowest review score that can pass the gate.
const MinApprovalScore = 6

// Decision is the quality gate's verdict on one task iteration.
type Decision struct {
	Granted    bool
	DenyReason string // "tests" or "review" when denied
	Message    string
}

// testSummaryRe matches the TESTER summary line. Missing numbers count as 0.
var testSummaryRe = regexp.MustCompile(`Tests run:\s*(\d+)\s*,\s*Failures:\s*(\d+)\s*,\s*Errors:\s*(\d+)`)

// scoreRe and approvedRe match the REVIEWER verdict lines.
var (
	scoreRe    = regexp.MustCompile(`Score:\s*(\d+)\s*/\s*10`)
	approvedRe = regexp.MustCompile(`(?i)Approved:\s*(yes|no)`)
)

// Evaluate applies the gate rules in order, first match wins: failing tests
// deny with reason "tests", an unapproved or low-scored review denies with
// reason "review", otherwise the gate is granted.
func Evaluate(task *models.Task, tests *models.TestResult, review *models.ReviewFeedback) Decision {
	if tests != nil && (!tests.Passed || tests.FailedTests > 0) {
		return Decision{
			DenyReason: "tests",
			Message: fmt.Sprintf("%d of %d tests failed: %s",
				tests.FailedTests, tests.TotalTests, tests.Summary),
		}
	}
	if review != nil && (!review.Approved || review.Score < MinApprovalScore) {
		msg := fmt.Sprintf("review scored %d/10", review.Score)
		if !review.Approved {
			msg = "review not approved, " + msg
		}
		if len(review.Issues) > 0 {
			msg += "; issues: " + strings.Join(review.Issues, "; ")
		}
		return Decision{DenyReason: "review", Message: msg}
	}
	return Decision{Granted: true, Message: "quality gate granted"}
}

// ParseTestResult scans noisy TESTER output for the summary line.
// Output without the line counts as a failed run: a tester that never
// reported cannot vouch for anything.
func ParseTestResult(taskID, output string) models.TestResult {
	result := models.TestResult{TaskID: taskID}

	m := testSummaryRe.FindStringSubmatch(output)
	if m == nil {
		result.Summary = "no test summary line found in output"
		return result
	}

	total, _ := strconv.Atoi(m[1])
	failures, _ := strconv.Atoi(m[2])
	errors, _ := strconv.Atoi(m[3])

	result.TotalTests = total
	result.FailedTests = failures + errors
	result.Passed = result.FailedTests == 0
	result.Summary = strings.TrimSpace(m[0])
	return result
}

// ParseReviewFeedback scans noisy REVIEWER output for the verdict lines and
// the bulleted Issues:/Suggestions: blocks. A missing Approved line counts
// as not approved.
func ParseReviewFeedback(taskID, output string) models.ReviewFeedback {
	feedback := models.ReviewFeedback{TaskID: taskID}

	if m := scoreRe.FindStringSubmatch(output); m != nil {
		feedback.Score, _ = strconv.Atoi(m[1])
	}
	if m := approvedRe.FindStringSubmatch(output); m != nil {
		feedback.Approved = strings.EqualFold(m[1], "yes")
	}

	feedback.Issues = parseBulletBlock(output, "Issues:")
	feedback.Suggestions = parseBulletBlock(output, "Suggestions:")

	if idx := strings.Index(output, "Summary:"); idx >= 0 {
		rest := output[idx+len("Summary:"):]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		feedback.Summary = strings.TrimSpace(rest)
	}
	return feedback
}

// parseBulletBlock collects the "- item" lines directly following a header
// line. The block ends at the first non-bullet line.
func parseBulletBlock(output, header string) []string {
	idx := strings.Index(output, header)
	if idx < 0 {
		return nil
	}

	var items []string
	lines := strings.Split(output[idx+len(header):], "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && len(items) == 0 {
			continue
		}
		bullet, ok := strings.CutPrefix(trimmed, "- ")
		if !ok {
			if bullet, ok = strings.CutPrefix(trimmed, "* "); !ok {
				break
			}
		}
		items = append(items, strings.TrimSpace(bullet))
	}
	return items
}
