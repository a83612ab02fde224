package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/worldmind/worldmind/pkg/agent"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/gate"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/metrics"
	"github.com/worldmind/worldmind/pkg/models"
)

// Evaluator runs one wave at a time: fork-join dispatch, quality gates,
// oscillation checks, per-wave merge, and failure propagation.
type Evaluator struct {
	dispatcher *agent.Dispatcher
	ws         *gitws.Workspace
	bus        *events.Bus
	cfg        *config.EngineConfig
	detector   *agent.OscillationDetector
}

// NewEvaluator wires an evaluator for one mission run.
func NewEvaluator(dispatcher *agent.Dispatcher, ws *gitws.Workspace,
	bus *events.Bus, cfg *config.EngineConfig) *Evaluator {
	return &Evaluator{
		dispatcher: dispatcher,
		ws:         ws,
		bus:        bus,
		cfg:        cfg,
		detector:   agent.NewOscillationDetector(),
	}
}

// waveOutcome summarizes one wave for the engine's transition decision.
type waveOutcome struct {
	// Abort is set when a task failed with onFailure=ABORT.
	Abort bool
	// NeedsReplan is set when a task failed with onFailure=REPLAN.
	NeedsReplan bool
}

// ExecuteWave dispatches the admitted tasks in parallel, evaluates every
// result, merges the passing branches, and updates the state in place. The
// join is unconditional: all dispatch results are collected before any
// evaluation, including on partial failure.
func (e *Evaluator) ExecuteWave(ctx context.Context, state *models.MissionState, admitted []*models.Task) waveOutcome {
	channel := events.MissionChannel(state.MissionID)

	ids := make([]string, len(admitted))
	for i, t := range admitted {
		ids[i] = t.ID
	}
	state.WaveCount++
	state.WaveTaskIDs = ids
	metrics.WavesExecuted.Inc()
	e.bus.Publish(channel, events.WavePayload{
		BasePayload: events.NewBase(events.EventTypeWaveStarted, state.MissionID),
		Wave:        state.WaveCount,
		TaskIDs:     ids,
	})

	results := e.dispatchAll(ctx, state, admitted)

	var outcome waveOutcome
	var mergeCandidates []string
	for _, result := range results {
		task := state.Task(result.TaskID)
		task.FilesAffected = result.FileChanges
		task.ElapsedMs = result.ElapsedMs

		switch {
		case task.Agent == models.RoleDeployer:
			e.evaluateDeployer(state, task, result, &outcome)
		case result.Status == models.TaskVerifying:
			if e.evaluateCodeTask(ctx, state, task, result, &outcome) {
				mergeCandidates = append(mergeCandidates, task.ID)
			}
		case result.Status == models.TaskPassed:
			task.Status = models.TaskPassed
			state.MarkCompleted(task.ID)
			e.publishTask(state, task, events.EventTypeTaskCompleted, "")
		default:
			e.retryOrFail(state, task, "dispatch", result.Output, &outcome)
		}
	}

	merge := e.mergeWave(ctx, state, mergeCandidates)

	e.propagateFailures(state)

	state.WaveTaskIDs = nil
	e.bus.Publish(channel, events.WavePayload{
		BasePayload:   events.NewBase(events.EventTypeWaveCompleted, state.MissionID),
		Wave:          state.WaveCount,
		TaskIDs:       ids,
		MergedIDs:     merge.MergedIDs,
		ConflictedIDs: merge.ConflictedIDs,
	})
	return outcome
}

// dispatchAll forks the wave's dispatches under a maxParallel semaphore and
// joins all results. Dispatch order is lexicographic; completion order is
// not. Results come back ordered by task id.
func (e *Evaluator) dispatchAll(ctx context.Context, state *models.MissionState, admitted []*models.Task) []models.WaveDispatchResult {
	results := make([]models.WaveDispatchResult, len(admitted))
	sem := make(chan struct{}, e.cfg.MaxParallel)
	var wg sync.WaitGroup

	for i, task := range admitted {
		task.Status = models.TaskRunning
		e.publishTask(state, task, events.EventTypeTaskStarted, "")

		wg.Add(1)
		go func(i int, task *models.Task) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = e.dispatcher.Dispatch(ctx, task, agent.DispatchContext{
				MissionID:    state.MissionID,
				ProjectPath:  state.ProjectPath,
				GitRemoteURL: state.GitRemoteURL,
				Build: agent.BuildContext{
					Project:               state.ProjectContext,
					ManifestCreatedByTask: state.ManifestCreatedByTask,
				},
			})
		}(i, task)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].TaskID < results[j].TaskID })
	return results
}

// evaluateCodeTask runs the verifiers and the quality gate for one
// CODER/REFACTORER result. Returns whether the task's branch should merge.
func (e *Evaluator) evaluateCodeTask(ctx context.Context, state *models.MissionState,
	task *models.Task, result models.WaveDispatchResult, outcome *waveOutcome) bool {

	task.Status = models.TaskVerifying
	e.detector.Record(task.ID, result.FileChanges)

	var tests *models.TestResult
	var review *models.ReviewFeedback
	if !state.SkipPerTaskTests {
		tests, review = e.runVerifiers(ctx, state, task)
		if tests != nil {
			state.TestResults = append(state.TestResults, *tests)
		}
		if review != nil {
			state.ReviewFeedback = append(state.ReviewFeedback, *review)
		}
	}

	decision := gate.Evaluate(task, tests, review)
	if decision.Granted {
		return true
	}

	e.bus.Publish(events.MissionChannel(state.MissionID), events.QualityGateDeniedPayload{
		BasePayload: events.NewBase(events.EventTypeQualityGateDenied, state.MissionID),
		TaskID:      task.ID,
		Reason:      decision.DenyReason,
		Message:     decision.Message,
	})
	e.retryOrFail(state, task, decision.DenyReason, decision.Message, outcome)
	return false
}

// runVerifiers synchronously dispatches the TESTER and REVIEWER sub-tasks
// against the parent task's branch and parses their outputs.
func (e *Evaluator) runVerifiers(ctx context.Context, state *models.MissionState,
	parent *models.Task) (*models.TestResult, *models.ReviewFeedback) {

	dc := agent.DispatchContext{
		MissionID:    state.MissionID,
		ProjectPath:  state.ProjectPath,
		GitRemoteURL: state.GitRemoteURL,
		Build: agent.BuildContext{
			Project:      state.ProjectContext,
			ParentTaskID: parent.ID,
		},
	}

	testTask := &models.Task{
		ID:          parent.ID + "-test",
		Agent:       models.RoleTester,
		Description: fmt.Sprintf("Run the test suite against the changes of %s.", parent.ID),
	}
	testDispatch := e.dispatcher.Dispatch(ctx, testTask, dc)
	tests := gate.ParseTestResult(parent.ID, testDispatch.Output)
	tests.DurationMs = testDispatch.ElapsedMs

	reviewTask := &models.Task{
		ID:          parent.ID + "-review",
		Agent:       models.RoleReviewer,
		Description: fmt.Sprintf("Review the changes of %s.", parent.ID),
	}
	reviewDispatch := e.dispatcher.Dispatch(ctx, reviewTask, dc)
	review := gate.ParseReviewFeedback(parent.ID, reviewDispatch.Output)

	return &tests, &review
}

// evaluateDeployer classifies a DEPLOYER result into an outcome class.
func (e *Evaluator) evaluateDeployer(state *models.MissionState, task *models.Task,
	result models.WaveDispatchResult, outcome *waveOutcome) {

	deploy := gate.ClassifyDeployOutput(result.Output)
	if deploy.Outcome == gate.DeploySuccess && result.Status == models.TaskPassed {
		task.Status = models.TaskPassed
		state.DeploymentURL = deploy.URL
		state.MarkCompleted(task.ID)
		e.publishTask(state, task, events.EventTypeTaskCompleted, "")
		e.bus.Publish(events.MissionChannel(state.MissionID), events.DeploymentCompletedPayload{
			BasePayload: events.NewBase(events.EventTypeDeploymentCompleted, state.MissionID),
			URL:         deploy.URL,
		})
		return
	}

	diagnostic := fmt.Sprintf("%s: %s", deploy.Outcome, deploy.Diagnostic)
	e.retryOrFail(state, task, string(deploy.Outcome), diagnostic, outcome)
}

// retryOrFail routes a denied or failed task per its failure policy. A retry
// keeps the task PENDING with the diagnostic copied into its input context;
// oscillation or an exhausted budget forces FAILED.
func (e *Evaluator) retryOrFail(state *models.MissionState, task *models.Task,
	reason, message string, outcome *waveOutcome) {

	log := slog.With("mission_id", state.MissionID, "task_id", task.ID)

	if task.Agent.ProducesBranch() && e.detector.IsStuck(task.ID) {
		log.Warn("Task oscillating, forcing failure", "iteration", task.Iteration+1)
		metrics.OscillationFailures.Inc()
		task.Iteration++
		e.failTask(state, task, "oscillation")
		return
	}

	if task.OnFailure == models.OnFailureRetry && task.Iteration < task.MaxIterations {
		task.Iteration++
		task.Status = models.TaskPending
		task.InputContext = message
		log.Info("Task routed to retry", "reason", reason, "iteration", task.Iteration)
		return
	}

	switch task.OnFailure {
	case models.OnFailureSkip:
		task.Status = models.TaskSkipped
		state.MarkCompleted(task.ID)
		log.Info("Task skipped per failure policy", "reason", reason)
	case models.OnFailureAbort:
		outcome.Abort = true
		e.failTask(state, task, reason)
	case models.OnFailureReplan:
		outcome.NeedsReplan = true
		e.failTask(state, task, reason)
	default:
		e.failTask(state, task, reason)
	}
}

func (e *Evaluator) failTask(state *models.MissionState, task *models.Task, reason string) {
	task.Status = models.TaskFailed
	state.MarkCompleted(task.ID)
	state.AddError("task %s failed: %s", task.ID, reason)
	e.publishTask(state, task, events.EventTypeTaskFailed, reason)
}

// mergeWave merges the gate-granted branches. Merged tasks finalize as
// PASSED; conflicted tasks are re-queued against the updated mainline.
func (e *Evaluator) mergeWave(ctx context.Context, state *models.MissionState, candidates []string) gitws.MergeResult {
	if len(candidates) == 0 {
		return gitws.MergeResult{}
	}

	merge, err := e.ws.MergeWave(ctx, candidates, gitws.MergeOptions{
		RetryCount:   e.cfg.MergeRetryCount,
		RetryBackoff: e.cfg.MergeRetryBackoff,
	})
	if err != nil {
		// Infrastructure failure: no branch was merged; fail every candidate
		// through the normal routing so retries still apply.
		state.AddError("wave merge failed: %v", err)
		var discard waveOutcome
		for _, id := range candidates {
			e.retryOrFail(state, state.Task(id), "merge", err.Error(), &discard)
		}
		return gitws.MergeResult{}
	}

	for _, id := range merge.MergedIDs {
		task := state.Task(id)
		task.Status = models.TaskPassed
		state.MarkCompleted(id)
		e.publishTask(state, task, events.EventTypeTaskCompleted, "")
	}
	for _, id := range merge.ConflictedIDs {
		task := state.Task(id)
		task.Status = models.TaskPending
		task.Iteration++
		task.InputContext = "merge conflict — rebase against updated mainline"
		// A fresh run against the moved mainline is a new baseline.
		e.detector.Reset(id)
	}
	return merge
}

// propagateFailures marks every task transitively depending on a finalized
// FAILED task as SKIPPED.
func (e *Evaluator) propagateFailures(state *models.MissionState) {
	failed := make(map[string]bool)
	for _, t := range state.Tasks {
		if t.Status == models.TaskFailed {
			failed[t.ID] = true
		}
	}
	if len(failed) == 0 {
		return
	}

	// Fixed point: skipping a task can strand its own dependents.
	for changed := true; changed; {
		changed = false
		for _, t := range state.Tasks {
			if t.Status != models.TaskPending {
				continue
			}
			for _, dep := range t.Dependencies {
				parent := state.Task(dep)
				if parent == nil {
					continue
				}
				if parent.Status == models.TaskFailed || parent.Status == models.TaskSkipped {
					t.Status = models.TaskSkipped
					state.MarkCompleted(t.ID)
					e.publishTask(state, t, events.EventTypeTaskCompleted, "dependency failed")
					changed = true
					break
				}
			}
		}
	}
}

func (e *Evaluator) publishTask(state *models.MissionState, task *models.Task, eventType, reason string) {
	e.bus.Publish(events.MissionChannel(state.MissionID), events.TaskStatusPayload{
		BasePayload: events.NewBase(eventType, state.MissionID),
		TaskID:      task.ID,
		Agent:       task.Agent,
		Status:      task.Status,
		Iteration:   task.Iteration,
		Reason:      reason,
	})
}
