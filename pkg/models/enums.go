package models

// InteractionMode controls how much user interaction a mission requires.
type InteractionMode string

// Interaction modes.
const (
	ModeFullAuto    InteractionMode = "FULL_AUTO"
	ModeApprovePlan InteractionMode = "APPROVE_PLAN"
	ModeStepByStep  InteractionMode = "STEP_BY_STEP"
	ModeClarify     InteractionMode = "CLARIFY"
)

// Valid reports whether the mode is a known interaction mode.
func (m InteractionMode) Valid() bool {
	switch m {
	case ModeFullAuto, ModeApprovePlan, ModeStepByStep, ModeClarify:
		return true
	}
	return false
}

// MissionStatus is the lifecycle status of a mission.
type MissionStatus string

// Mission statuses.
const (
	MissionClassifying      MissionStatus = "CLASSIFYING"
	MissionUploading        MissionStatus = "UPLOADING"
	MissionClarifying       MissionStatus = "CLARIFYING"
	MissionSpecifying       MissionStatus = "SPECIFYING"
	MissionPlanning         MissionStatus = "PLANNING"
	MissionAwaitingApproval MissionStatus = "AWAITING_APPROVAL"
	MissionExecuting        MissionStatus = "EXECUTING"
	MissionCompleted        MissionStatus = "COMPLETED"
	MissionFailed           MissionStatus = "FAILED"
	MissionCancelled        MissionStatus = "CANCELLED"
)

// Active reports whether the mission is still being advanced by the engine.
// Readers of active missions prefer the freshest checkpoint over any
// in-memory summary.
func (s MissionStatus) Active() bool {
	switch s {
	case MissionClassifying, MissionUploading, MissionClarifying,
		MissionSpecifying, MissionPlanning, MissionExecuting:
		return true
	}
	return false
}

// Terminal reports whether the status is final.
func (s MissionStatus) Terminal() bool {
	switch s {
	case MissionCompleted, MissionFailed, MissionCancelled:
		return true
	}
	return false
}

// ExecutionStrategy selects sequential or parallel wave execution.
type ExecutionStrategy string

// Execution strategies.
const (
	StrategySequential ExecutionStrategy = "SEQUENTIAL"
	StrategyParallel   ExecutionStrategy = "PARALLEL"
)

// Valid reports whether the strategy is known.
func (s ExecutionStrategy) Valid() bool {
	return s == StrategySequential || s == StrategyParallel
}

// AgentRole selects the instruction template and branch-protocol behavior
// for a task.
type AgentRole string

// Agent roles.
const (
	RoleCoder      AgentRole = "CODER"
	RoleTester     AgentRole = "TESTER"
	RoleReviewer   AgentRole = "REVIEWER"
	RoleResearcher AgentRole = "RESEARCHER"
	RoleRefactorer AgentRole = "REFACTORER"
	RoleDeployer   AgentRole = "DEPLOYER"
)

// Valid reports whether the role is known.
func (r AgentRole) Valid() bool {
	switch r {
	case RoleCoder, RoleTester, RoleReviewer, RoleResearcher, RoleRefactorer, RoleDeployer:
		return true
	}
	return false
}

// ProducesBranch reports whether tasks of this role create a git branch.
// RESEARCHER, TESTER and REVIEWER never push code.
func (r AgentRole) ProducesBranch() bool {
	return r == RoleCoder || r == RoleRefactorer
}

// TaskStatus is the lifecycle status of a single task.
type TaskStatus string

// Task statuses.
const (
	TaskPending   TaskStatus = "PENDING"
	TaskRunning   TaskStatus = "RUNNING"
	TaskVerifying TaskStatus = "VERIFYING"
	TaskPassed    TaskStatus = "PASSED"
	TaskFailed    TaskStatus = "FAILED"
	TaskSkipped   TaskStatus = "SKIPPED"
	TaskDeferred  TaskStatus = "DEFERRED"
)

// Terminal reports whether the task has reached a final status.
func (s TaskStatus) Terminal() bool {
	return s == TaskPassed || s == TaskFailed || s == TaskSkipped
}

// FailurePolicy selects what the evaluator does when a task fails.
type FailurePolicy string

// Failure policies.
const (
	OnFailureRetry  FailurePolicy = "RETRY"
	OnFailureReplan FailurePolicy = "REPLAN"
	OnFailureSkip   FailurePolicy = "SKIP"
	OnFailureAbort  FailurePolicy = "ABORT"
)

// FileAction describes what happened to a file in a task's branch.
type FileAction string

// File actions.
const (
	FileCreated  FileAction = "created"
	FileModified FileAction = "modified"
	FileDeleted  FileAction = "deleted"
)

// SandboxStatus is the lifecycle status reported for a sandbox worker.
type SandboxStatus string

// Sandbox statuses.
const (
	SandboxPending   SandboxStatus = "pending"
	SandboxCompleted SandboxStatus = "completed"
	SandboxFailed    SandboxStatus = "failed"
	SandboxCancelled SandboxStatus = "cancelled"
)
