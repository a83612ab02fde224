// Package agent turns tasks into instruction documents, runs them through a
// sandbox provider, and watches retries for oscillation.
package agent

import (
	"fmt"
	"strings"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/models"
)

// InstructionBuilder assembles the markdown instruction document for one
// task. Templates are deterministic: the same task and context always
// produce the same document.
type InstructionBuilder struct {
	truncation *config.TruncationConfig
	deployer   *config.DeployerConfig
}

// NewInstructionBuilder creates a builder with the given caps and deployer
// defaults.
func NewInstructionBuilder(truncation *config.TruncationConfig, deployer *config.DeployerConfig) *InstructionBuilder {
	return &InstructionBuilder{truncation: truncation, deployer: deployer}
}

// BuildContext carries the mission-level inputs a template may use beyond
// the task itself.
type BuildContext struct {
	Project *models.ProjectContext

	// ManifestCreatedByTask tells the DEPLOYER template to reuse the
	// manifest a task committed instead of embedding a generated one.
	ManifestCreatedByTask bool

	// ParentTaskID is the CODER task under test for TESTER/REVIEWER.
	ParentTaskID string
}

// Build returns the instruction document for the task. The role switch is
// closed: an unknown role is a programming error upstream and yields an
// error rather than a half-filled template.
func (b *InstructionBuilder) Build(task *models.Task, bc BuildContext) (string, error) {
	var doc strings.Builder

	doc.WriteString("# Objective\n\n")
	doc.WriteString(task.Description)
	doc.WriteString("\n")

	if task.InputContext != "" {
		doc.WriteString("\n# Additional Context\n\n")
		doc.WriteString(truncateText(task.InputContext, b.truncation.OutputBytesMax))
		doc.WriteString("\n")
	}

	b.writeProjectSection(&doc, bc.Project)

	if task.SuccessCriteria != "" {
		doc.WriteString("\n# Success Criteria\n\n")
		doc.WriteString(task.SuccessCriteria)
		doc.WriteString("\n")
	}

	doc.WriteString("\n# Constraints\n\n")
	switch task.Agent {
	case models.RoleCoder:
		b.writeCoderConstraints(&doc, task)
	case models.RoleRefactorer:
		b.writeRefactorerConstraints(&doc, task)
	case models.RoleTester:
		b.writeTesterConstraints(&doc, bc)
	case models.RoleReviewer:
		b.writeReviewerConstraints(&doc, bc)
	case models.RoleResearcher:
		b.writeResearcherConstraints(&doc)
	case models.RoleDeployer:
		b.writeDeployerConstraints(&doc, bc)
	default:
		return "", fmt.Errorf("no instruction template for agent role %q", task.Agent)
	}

	if task.Iteration > 0 {
		fmt.Fprintf(&doc, "\nThis is retry attempt %d of %d. Address the feedback in the additional context before anything else.\n",
			task.Iteration, task.MaxIterations)
	}

	return doc.String(), nil
}

func (b *InstructionBuilder) writeProjectSection(doc *strings.Builder, pc *models.ProjectContext) {
	if pc == nil {
		return
	}

	doc.WriteString("\n# Project\n\n")
	if pc.Language != "" {
		fmt.Fprintf(doc, "Language: %s\n", pc.Language)
	}
	if pc.Framework != "" {
		fmt.Fprintf(doc, "Framework: %s\n", pc.Framework)
	}

	if len(pc.Dependencies) > 0 {
		doc.WriteString("\nDependencies:\n")
		writeCappedList(doc, pc.Dependencies, b.truncation.DependencyMax)
	}
	if len(pc.FileTree) > 0 {
		doc.WriteString("\nFile tree:\n")
		writeCappedList(doc, pc.FileTree, b.truncation.FileTreeMax)
	}
}

func (b *InstructionBuilder) writeCoderConstraints(doc *strings.Builder, task *models.Task) {
	doc.WriteString("- Implement the objective. Modify only what the objective requires.\n")
	doc.WriteString("- Commit nothing yourself; the workspace is committed for you after you exit.\n")
	doc.WriteString("- Exit 0 only when the code compiles.\n")
	if len(task.TargetFiles) > 0 {
		doc.WriteString("- Expected files to touch:\n")
		for _, f := range task.TargetFiles {
			fmt.Fprintf(doc, "  - %s\n", f)
		}
	}
}

func (b *InstructionBuilder) writeRefactorerConstraints(doc *strings.Builder, task *models.Task) {
	doc.WriteString("- Refactor without changing observable behavior.\n")
	doc.WriteString("- Keep the public API intact unless the objective says otherwise.\n")
	doc.WriteString("- Exit 0 only when the code compiles and existing tests still pass.\n")
	if len(task.TargetFiles) > 0 {
		doc.WriteString("- Expected files to touch:\n")
		for _, f := range task.TargetFiles {
			fmt.Fprintf(doc, "  - %s\n", f)
		}
	}
}

func (b *InstructionBuilder) writeTesterConstraints(doc *strings.Builder, bc BuildContext) {
	if bc.ParentTaskID != "" {
		fmt.Fprintf(doc, "- You are verifying the work of task %s. Its branch is already checked out.\n", bc.ParentTaskID)
	}
	doc.WriteString("- Run the project's test suite. Do not modify source files.\n")
	doc.WriteString("- End your output with a single summary line in exactly this form:\n")
	doc.WriteString("  Tests run: <total>, Failures: <failures>, Errors: <errors>\n")
}

func (b *InstructionBuilder) writeReviewerConstraints(doc *strings.Builder, bc BuildContext) {
	if bc.ParentTaskID != "" {
		fmt.Fprintf(doc, "- You are reviewing the work of task %s. Its branch is already checked out.\n", bc.ParentTaskID)
	}
	doc.WriteString("- Review the diff for correctness, safety, and fit with the surrounding code.\n")
	doc.WriteString("- Do not modify any files.\n")
	doc.WriteString("- End your output with these lines:\n")
	doc.WriteString("  Score: <1-10>/10\n")
	doc.WriteString("  Approved: <yes|no>\n")
	doc.WriteString("- List findings under bulleted `Issues:` and `Suggestions:` blocks.\n")
}

func (b *InstructionBuilder) writeResearcherConstraints(doc *strings.Builder) {
	doc.WriteString("- Investigate and report. Do not modify any files.\n")
	doc.WriteString("- Write your findings as a structured summary to stdout.\n")
}

func (b *InstructionBuilder) writeDeployerConstraints(doc *strings.Builder, bc BuildContext) {
	doc.WriteString("- Deploy the application from the current mainline.\n")
	if bc.ManifestCreatedByTask {
		fmt.Fprintf(doc, "- Use the deployment manifest at %s committed by an earlier task. Do not regenerate it.\n",
			b.deployer.ManifestPath)
	} else {
		fmt.Fprintf(doc, "- No task produced a manifest. Write the following to %s before deploying:\n\n",
			b.deployer.ManifestPath)
		doc.WriteString(b.manifestTemplate())
	}
	doc.WriteString("- Report the assigned route in your output.\n")
}

// manifestTemplate renders the fallback deployment manifest from configured
// defaults and user-supplied service bindings.
func (b *InstructionBuilder) manifestTemplate() string {
	var m strings.Builder
	m.WriteString("```yaml\napplications:\n- name: app\n")
	fmt.Fprintf(&m, "  memory: %s\n", b.deployer.Memory)
	fmt.Fprintf(&m, "  instances: %d\n", b.deployer.Instances)
	fmt.Fprintf(&m, "  buildpacks:\n  - %s\n", b.deployer.Buildpack)
	fmt.Fprintf(&m, "  health-check-type: %s\n", b.deployer.HealthCheckType)
	if b.deployer.HealthCheckType == "http" {
		fmt.Fprintf(&m, "  health-check-http-endpoint: %s\n", b.deployer.HealthCheckPath)
	}
	fmt.Fprintf(&m, "  timeout: %d\n", b.deployer.HealthTimeout)
	fmt.Fprintf(&m, "  env:\n    JBP_CONFIG_OPEN_JDK_JRE: '{ jre: { version: %s.+ } }'\n", b.deployer.JavaVersion)
	if len(b.deployer.ServiceBindings) > 0 {
		m.WriteString("  services:\n")
		for _, svc := range b.deployer.ServiceBindings {
			fmt.Fprintf(&m, "  - %s\n", svc)
		}
	}
	m.WriteString("```\n")
	return m.String()
}

// writeCappedList writes up to max entries as bullets, then an "and N more"
// marker for the remainder.
func writeCappedList(doc *strings.Builder, items []string, max int) {
	n := len(items)
	if max > 0 && n > max {
		n = max
	}
	for _, item := range items[:n] {
		fmt.Fprintf(doc, "- %s\n", item)
	}
	if rest := len(items) - n; rest > 0 {
		fmt.Fprintf(doc, "- ... and %d more\n", rest)
	}
}

func truncateText(text string, maxBytes int) string {
	if maxBytes <= 0 || len(text) <= maxBytes {
		return text
	}
	return text[:maxBytes] + "\n... [context truncated]"
}
