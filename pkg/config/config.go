// Package config loads and validates the worldmind.yaml configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved orchestrator configuration.
type Config struct {
	Server      *ServerConfig      `yaml:"server"`
	Queue       *QueueConfig       `yaml:"queue"`
	Engine      *EngineConfig      `yaml:"engine"`
	Git         *GitConfig         `yaml:"git"`
	Sandbox     *SandboxConfig     `yaml:"sandbox"`
	Deployer    *DeployerConfig    `yaml:"deployer"`
	Truncation  *TruncationConfig  `yaml:"truncation"`
	LLM         *LLMConfig         `yaml:"llm"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EngineConfig controls wave scheduling and merging.
type EngineConfig struct {
	// MaxParallel is the wave concurrency cap.
	MaxParallel int `yaml:"max_parallel"`

	// WaveCooldown is the delay between waves.
	WaveCooldown time.Duration `yaml:"wave_cooldown"`

	// TaskTimeout is the per-task wall clock budget.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// MergeRetryCount is how many times a conflicted rebase is retried
	// against a freshly pulled mainline before the task is re-queued.
	MergeRetryCount int `yaml:"merge_retry_count"`

	// MergeRetryBackoff is the pause between merge retries.
	MergeRetryBackoff time.Duration `yaml:"merge_retry_backoff"`
}

// GitConfig controls the branch workspace.
type GitConfig struct {
	// BranchPrefix prefixes every per-task branch: <prefix>/<taskId>.
	BranchPrefix string `yaml:"branch_prefix"`

	// UseWorktrees enables shared-clone worktrees for local parallelism.
	UseWorktrees bool `yaml:"use_worktrees"`
}

// SandboxConfig selects and tunes the sandbox provider.
type SandboxConfig struct {
	// Provider is "local" (container per task) or "remote" (worker fleet).
	Provider string `yaml:"provider"`

	// Image is the container image for the local provider.
	Image string `yaml:"image"`

	// RemoteBaseURL is the worker-fleet API base for the remote provider.
	RemoteBaseURL string `yaml:"remote_base_url"`

	// Memory and CPU are resource hints passed to the provider.
	Memory string `yaml:"memory"`
	CPU    string `yaml:"cpu"`

	// RuntimeTag selects the worker runtime variant.
	RuntimeTag string `yaml:"runtime_tag"`

	// PollInterval is how often the remote provider polls task status.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// DeployerConfig carries the defaults embedded into generated deployment
// manifests when no task created one.
type DeployerConfig struct {
	Memory          string `yaml:"memory"`
	Instances       int    `yaml:"instances"`
	Buildpack       string `yaml:"buildpack"`
	JavaVersion     string `yaml:"java_version"`
	HealthCheckType string `yaml:"health_check_type"`
	HealthCheckPath string `yaml:"health_check_path"`
	HealthTimeout   int    `yaml:"health_timeout"`

	// ManifestPath is the repo-relative path of the deployment manifest.
	ManifestPath string `yaml:"manifest_path"`

	// ServiceBindings are user-supplied services bound at deploy time.
	ServiceBindings []string `yaml:"service_bindings"`
}

// TruncationConfig caps what goes into instructions and captured output.
type TruncationConfig struct {
	FileTreeMax    int `yaml:"file_tree_max"`
	DependencyMax  int `yaml:"dependency_max"`
	OutputBytesMax int `yaml:"output_bytes_max"`
}

// LLMConfig selects the LLM oracle transport.
type LLMConfig struct {
	// Provider is "anthropic" or "grpc".
	Provider string `yaml:"provider"`

	// Model is the model identifier for the anthropic provider.
	Model string `yaml:"model"`

	// GRPCAddr is the sidecar address for the grpc provider.
	GRPCAddr string `yaml:"grpc_addr"`

	// MaxTokens bounds completion length.
	MaxTokens int `yaml:"max_tokens"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: &ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Queue:  DefaultQueueConfig(),
		Engine: &EngineConfig{
			MaxParallel:       1,
			WaveCooldown:      0,
			TaskTimeout:       15 * time.Minute,
			MergeRetryCount:   2,
			MergeRetryBackoff: 500 * time.Millisecond,
		},
		Git: &GitConfig{
			BranchPrefix: "worldmind",
		},
		Sandbox: &SandboxConfig{
			Provider:     "local",
			Image:        "worldmind/agent-runner:latest",
			Memory:       "2G",
			CPU:          "2",
			PollInterval: 5 * time.Second,
		},
		Deployer: &DeployerConfig{
			Memory:          "1G",
			Instances:       1,
			Buildpack:       "java_buildpack_offline",
			JavaVersion:     "17",
			HealthCheckType: "http",
			HealthCheckPath: "/actuator/health",
			HealthTimeout:   180,
			ManifestPath:    "manifest.yml",
		},
		Truncation: &TruncationConfig{
			FileTreeMax:    200,
			DependencyMax:  50,
			OutputBytesMax: 10_000,
		},
		LLM: &LLMConfig{
			Provider:  "anthropic",
			Model:     "claude-sonnet-4-5",
			MaxTokens: 8192,
		},
	}
}

// Load reads the YAML file at path, expands environment variables, overlays
// it on the defaults, and validates the result. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			if err := cfg.validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	data = ExpandEnv(data)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration loaded", "path", path,
		"sandbox_provider", cfg.Sandbox.Provider,
		"max_parallel", cfg.Engine.MaxParallel)
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Engine.MaxParallel < 1 {
		return fmt.Errorf("engine.max_parallel must be >= 1, got %d", c.Engine.MaxParallel)
	}
	if c.Engine.TaskTimeout < time.Second {
		return fmt.Errorf("engine.task_timeout must be >= 1s, got %v", c.Engine.TaskTimeout)
	}
	if c.Engine.MergeRetryCount < 0 {
		return fmt.Errorf("engine.merge_retry_count must be >= 0, got %d", c.Engine.MergeRetryCount)
	}
	if c.Engine.WaveCooldown < 0 {
		return fmt.Errorf("engine.wave_cooldown must be >= 0, got %v", c.Engine.WaveCooldown)
	}
	switch c.Sandbox.Provider {
	case "local", "remote":
	default:
		return fmt.Errorf("sandbox.provider must be local or remote, got %q", c.Sandbox.Provider)
	}
	if c.Sandbox.Provider == "remote" && c.Sandbox.RemoteBaseURL == "" {
		return fmt.Errorf("sandbox.remote_base_url is required for the remote provider")
	}
	switch c.LLM.Provider {
	case "anthropic", "grpc":
	default:
		return fmt.Errorf("llm.provider must be anthropic or grpc, got %q", c.LLM.Provider)
	}
	if c.LLM.Provider == "grpc" && c.LLM.GRPCAddr == "" {
		return fmt.Errorf("llm.grpc_addr is required for the grpc provider")
	}
	if c.Git.BranchPrefix == "" {
		return fmt.Errorf("git.branch_prefix must not be empty")
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", c.Queue.WorkerCount)
	}
	return nil
}
