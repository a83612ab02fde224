// Package engine drives a mission through its state machine: classify,
// clarify, specify, plan, await approval, execute waves, finalize. Every
// node transition persists a checkpoint; the latest checkpoint is the
// authoritative mission state.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/worldmind/worldmind/pkg/agent"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/metrics"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/planner"
	"github.com/worldmind/worldmind/pkg/sandbox"
)

// Node names an engine state machine node. Node ids are persisted in
// checkpoints, so they are part of the durable format.
type Node string

// Engine nodes.
const (
	NodeClassify Node = "classify"
	NodeSpecify  Node = "specify"
	NodePlan     Node = "plan"
	NodeExecute  Node = "execute"
	NodeFinalize Node = "finalize"

	// nodeSuspend ends the run loop with the mission suspended, waiting for
	// user input (approval or clarification).
	nodeSuspend Node = ""
)

// maxReplans bounds how often a REPLAN failure policy may send a mission
// back to planning.
const maxReplans = 1

// ProviderFactory builds the sandbox provider for one mission's workspace.
type ProviderFactory func(ws *gitws.Workspace) sandbox.Provider

// RunOptions are the per-mission options of Run.
type RunOptions struct {
	ProjectPath          string
	GitRemoteURL         string
	ReasoningLevel       string
	ExecutionStrategy    models.ExecutionStrategy
	SkipPerTaskTests     bool
	CreateDeploymentTask bool
}

// Engine is the top-level mission state machine. One engine per process;
// each Run drives one mission on the calling goroutine.
type Engine struct {
	cfg         *config.Config
	checkpoints *checkpoint.Store
	bus         *events.Bus
	classifier  *planner.Classifier
	specifier   *planner.Specifier
	planner     *planner.Planner
	gitRunner   gitws.Runner
	providers   ProviderFactory

	missionCounter atomic.Int64
}

// New wires an engine from its collaborators.
func New(cfg *config.Config, checkpoints *checkpoint.Store, bus *events.Bus,
	classifier *planner.Classifier, specifier *planner.Specifier, plan *planner.Planner,
	gitRunner gitws.Runner, providers ProviderFactory) *Engine {
	return &Engine{
		cfg:         cfg,
		checkpoints: checkpoints,
		bus:         bus,
		classifier:  classifier,
		specifier:   specifier,
		planner:     plan,
		gitRunner:   gitRunner,
		providers:   providers,
	}
}

// NextMissionID returns the next mission id: a monotonic counter scoped to
// this process start. Ids therefore repeat across restarts; intake releases
// the prior checkpoints of a reused id.
func (e *Engine) NextMissionID() string {
	return fmt.Sprintf("mission-%04d", e.missionCounter.Add(1))
}

// Run drives a new mission to a terminal or suspended state. It never
// returns an error across the boundary: failures are captured into the
// state's errors and the terminal status.
func (e *Engine) Run(ctx context.Context, missionID, request string,
	mode models.InteractionMode, opts RunOptions) *models.MissionState {

	// Mission ids repeat across restarts, so stale checkpoints must go
	// before the first node runs. The crash window between this release and
	// the first checkpoint loses the released history; see DESIGN.md.
	if _, err := e.checkpoints.Release(ctx, missionID); err != nil {
		slog.Warn("Failed to release prior checkpoints", "mission_id", missionID, "error", err)
	}

	strategy := opts.ExecutionStrategy
	if !strategy.Valid() {
		strategy = models.StrategySequential
	}
	state := &models.MissionState{
		MissionID:            missionID,
		Request:              request,
		InteractionMode:      mode,
		Status:               models.MissionClassifying,
		ExecutionStrategy:    strategy,
		ProjectPath:          opts.ProjectPath,
		GitRemoteURL:         opts.GitRemoteURL,
		ReasoningLevel:       opts.ReasoningLevel,
		SkipPerTaskTests:     opts.SkipPerTaskTests,
		CreateDeploymentTask: opts.CreateDeploymentTask,
	}
	return e.loop(ctx, state, NodeClassify)
}

// RunWithState resumes a mission from a prior state, after approval or
// clarification.
func (e *Engine) RunWithState(ctx context.Context, state *models.MissionState) *models.MissionState {
	return e.loop(ctx, state, e.resumeNode(state))
}

// resumeNode maps a mission status back to the node that handles it.
func (e *Engine) resumeNode(state *models.MissionState) Node {
	switch state.Status {
	case models.MissionClassifying, models.MissionClarifying:
		return NodeClassify
	case models.MissionSpecifying:
		return NodeSpecify
	case models.MissionPlanning:
		return NodePlan
	case models.MissionExecuting:
		return NodeExecute
	default:
		return NodeFinalize
	}
}

// loop runs nodes until the mission suspends or terminates, checkpointing
// after every node. Node panics and errors never escape: they are converted
// into errors entries and a FAILED terminal state.
func (e *Engine) loop(ctx context.Context, state *models.MissionState, node Node) *models.MissionState {
	evaluator := NewEvaluator(e.buildDispatcher(state), e.workspace(state), e.bus, e.cfg.Engine)

	for node != nodeSuspend {
		if ctx.Err() != nil {
			state = e.cancel(ctx, state, node)
			break
		}

		next, nextState := e.step(ctx, state, node, evaluator)
		e.persist(ctx, nextState, node, next)
		if nextState.Status != state.Status {
			e.publishStatus(nextState)
		}
		state = nextState
		node = next
	}
	return state
}

// step runs one node over a clone of the state. The input state is never
// mutated; a panic inside a node fails the mission instead of the process.
func (e *Engine) step(ctx context.Context, in *models.MissionState, node Node,
	evaluator *Evaluator) (next Node, out *models.MissionState) {

	out = in.Clone()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Engine node panicked", "mission_id", in.MissionID, "node", node, "panic", r)
			out.AddError("node %s panicked: %v", node, r)
			out.Status = models.MissionFailed
			e.finalize(ctx, out)
			next = nodeSuspend
		}
	}()

	switch node {
	case NodeClassify:
		return e.classify(ctx, out), out
	case NodeSpecify:
		return e.specify(ctx, out), out
	case NodePlan:
		return e.plan(ctx, out), out
	case NodeExecute:
		return e.execute(ctx, out, evaluator), out
	case NodeFinalize:
		e.finalize(ctx, out)
		return nodeSuspend, out
	default:
		out.AddError("unknown engine node %q", node)
		out.Status = models.MissionFailed
		e.finalize(ctx, out)
		return nodeSuspend, out
	}
}

func (e *Engine) classify(ctx context.Context, state *models.MissionState) Node {
	state.Status = models.MissionClassifying

	result, err := e.classifier.Classify(ctx, state.Request, state.ClarifyingAnswers)
	if err != nil {
		state.AddError("classification failed: %v", err)
		state.Status = models.MissionFailed
		return NodeFinalize
	}
	state.Classification = result.Category

	// Unanswered questions suspend the mission until the clarify call.
	if state.InteractionMode == models.ModeClarify &&
		len(result.ClarifyingQuestions) > 0 && state.ClarifyingAnswers == "" {
		state.ClarifyingQuestions = result.ClarifyingQuestions
		state.Status = models.MissionClarifying
		return nodeSuspend
	}

	if result.NeedsSpecification {
		return NodeSpecify
	}
	return NodePlan
}

func (e *Engine) specify(ctx context.Context, state *models.MissionState) Node {
	state.Status = models.MissionSpecifying

	spec, err := e.specifier.Specify(ctx, state.Request, state.Classification, state.ClarifyingAnswers)
	if err != nil {
		state.AddError("specification failed: %v", err)
		state.Status = models.MissionFailed
		return NodeFinalize
	}
	state.ProductSpec = spec
	return NodePlan
}

func (e *Engine) plan(ctx context.Context, state *models.MissionState) Node {
	state.Status = models.MissionPlanning

	plan, err := e.planner.Plan(ctx, state)
	if err != nil {
		state.AddError("planning failed: %v", err)
		state.Status = models.MissionFailed
		return NodeFinalize
	}

	state.Tasks = plan.Tasks
	state.ExecutionStrategy = plan.Strategy
	state.ManifestCreatedByTask = plan.ManifestCreatedByTask
	state.CompletedTaskIDs = nil
	e.bus.Publish(events.MissionChannel(state.MissionID), events.PlanCreatedPayload{
		BasePayload: events.NewBase(events.EventTypePlanCreated, state.MissionID),
		TaskCount:   len(plan.Tasks),
		Strategy:    string(plan.Strategy),
	})

	if state.InteractionMode != models.ModeFullAuto {
		state.Status = models.MissionAwaitingApproval
		return nodeSuspend
	}
	state.Status = models.MissionExecuting
	return NodeExecute
}

// execute runs one wave per step so every wave lands in its own checkpoint.
func (e *Engine) execute(ctx context.Context, state *models.MissionState, evaluator *Evaluator) Node {
	state.Status = models.MissionExecuting
	if state.WaveCount == 0 {
		metrics.MissionsStarted.Inc()
	}

	completed := make(map[string]bool, len(state.CompletedTaskIDs))
	for _, id := range state.CompletedTaskIDs {
		completed[id] = true
	}

	selection := ScheduleNextWave(state.Tasks, completed, state.ExecutionStrategy, e.cfg.Engine.MaxParallel)
	if len(selection.Admitted) == 0 {
		// Stranded PENDING tasks at this point have unsatisfiable
		// dependencies; finalize decides the terminal status.
		return NodeFinalize
	}
	for range selection.Deferred {
		metrics.FileOverlapDeferrals.Inc()
	}

	outcome := evaluator.ExecuteWave(ctx, state, selection.Admitted)
	switch {
	case outcome.Abort:
		state.AddError("mission aborted by task failure policy")
		state.Status = models.MissionFailed
		return NodeFinalize
	case outcome.NeedsReplan:
		if state.ReplanCount >= maxReplans {
			state.AddError("replan budget exhausted")
			state.Status = models.MissionFailed
			return NodeFinalize
		}
		state.ReplanCount++
		return NodePlan
	}

	if e.cfg.Engine.WaveCooldown > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(e.cfg.Engine.WaveCooldown):
		}
	}
	return NodeExecute
}

// finalize settles the terminal status, cleans up branches, and tears down
// the mission's event topic.
func (e *Engine) finalize(ctx context.Context, state *models.MissionState) {
	if !state.Status.Terminal() {
		state.Status = models.MissionCompleted
		for _, t := range state.Tasks {
			if t.Status == models.TaskFailed {
				state.Status = models.MissionFailed
				break
			}
		}
	}

	e.cleanupBranches(ctx, state)

	channel := events.MissionChannel(state.MissionID)
	if state.Status == models.MissionFailed {
		e.bus.Publish(channel, events.MissionFailedPayload{
			BasePayload: events.NewBase(events.EventTypeMissionFailed, state.MissionID),
			Errors:      state.Errors,
		})
	}
	e.publishStatus(state)
	metrics.MissionsCompleted.WithLabelValues(string(state.Status)).Inc()
	e.bus.Clear(channel)

	state.QualityGateGranted = state.Status == models.MissionCompleted
	slog.Info("Mission finalized", "mission_id", state.MissionID,
		"status", state.Status, "waves", state.WaveCount, "errors", len(state.Errors))
}

// cleanupBranches deletes merged task branches at mission end. On a
// completed mission, branches of FAILED tasks stay for debugging; on a
// failed mission everything goes.
func (e *Engine) cleanupBranches(ctx context.Context, state *models.MissionState) {
	var codeTasks, preserve []string
	for _, t := range state.Tasks {
		if !t.Agent.ProducesBranch() {
			continue
		}
		codeTasks = append(codeTasks, t.ID)
		if t.Status == models.TaskFailed && state.Status != models.MissionFailed {
			preserve = append(preserve, t.ID)
		}
	}
	if len(codeTasks) == 0 || state.GitRemoteURL == "" {
		return
	}
	e.workspace(state).CleanupBranches(ctx, codeTasks, preserve)
}

func (e *Engine) cancel(ctx context.Context, state *models.MissionState, node Node) *models.MissionState {
	out := state.Clone()
	out.Status = models.MissionCancelled
	// Checkpoint with a fresh context; the run context is already dead.
	e.persist(context.WithoutCancel(ctx), out, node, nodeSuspend)
	e.publishStatus(out)
	metrics.MissionsCompleted.WithLabelValues(string(out.Status)).Inc()
	e.bus.Clear(events.MissionChannel(out.MissionID))
	return out
}

// persist writes the post-node checkpoint. A write failure is an
// infrastructure error: logged and surfaced, but the run continues so the
// mission can still finalize.
func (e *Engine) persist(ctx context.Context, state *models.MissionState, node, next Node) {
	blob, err := state.Marshal()
	if err != nil {
		slog.Error("Failed to marshal mission state", "mission_id", state.MissionID, "error", err)
		state.AddError("checkpoint marshal failed: %v", err)
		return
	}
	if _, err := e.checkpoints.Put(ctx, state.MissionID, string(node), string(next), blob); err != nil {
		slog.Error("Failed to persist checkpoint", "mission_id", state.MissionID, "node", node, "error", err)
		state.AddError("checkpoint write failed: %v", err)
	}
}

func (e *Engine) publishStatus(state *models.MissionState) {
	e.bus.Publish(events.MissionChannel(state.MissionID), events.MissionStatusPayload{
		BasePayload: events.NewBase(events.EventTypeMissionStatus, state.MissionID),
		Status:      state.Status,
	})
}

func (e *Engine) workspace(state *models.MissionState) *gitws.Workspace {
	return gitws.NewWorkspace(e.gitRunner, state.GitRemoteURL, e.cfg.Git.BranchPrefix, "")
}

func (e *Engine) buildDispatcher(state *models.MissionState) *agent.Dispatcher {
	ws := e.workspace(state)
	builder := agent.NewInstructionBuilder(e.cfg.Truncation, e.cfg.Deployer)
	return agent.NewDispatcher(e.providers(ws), builder, e.cfg.Sandbox, e.cfg.Engine, e.cfg.Truncation)
}
