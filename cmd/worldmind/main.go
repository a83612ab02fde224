// Worldmind orchestrator server — provides the HTTP API, manages queue
// workers, and drives missions through the planning and execution engine.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/worldmind/worldmind/pkg/api"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/database"
	"github.com/worldmind/worldmind/pkg/engine"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/exchange"
	"github.com/worldmind/worldmind/pkg/gitws"
	"github.com/worldmind/worldmind/pkg/llm"
	"github.com/worldmind/worldmind/pkg/planner"
	"github.com/worldmind/worldmind/pkg/queue"
	"github.com/worldmind/worldmind/pkg/sandbox"
	"github.com/worldmind/worldmind/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildOracle selects the LLM transport from configuration. The returned
// cleanup closes the transport; it is a no-op for the Anthropic client.
func buildOracle(cfg *config.LLMConfig) (llm.Oracle, func(), error) {
	switch cfg.Provider {
	case "grpc":
		oracle, err := llm.NewGRPCOracle(cfg.GRPCAddr)
		if err != nil {
			return nil, nil, err
		}
		return oracle, func() {
			if err := oracle.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}, nil
	default:
		oracle, err := llm.NewAnthropicOracle(os.Getenv("ANTHROPIC_API_KEY"),
			cfg.Model, cfg.MaxTokens)
		if err != nil {
			return nil, nil, err
		}
		return oracle, func() {}, nil
	}
}

func main() {
	configPath := flag.String("config",
		getEnv("WORLDMIND_CONFIG", "./worldmind.yaml"),
		"Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting worldmind", "pod_id", podID, "config", *configPath)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the database and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: re-queue rows a previous
	// incarnation of this pod left in_progress.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan catches leftovers
	}

	// 4. LLM oracle and planning chain
	oracle, closeOracle, err := buildOracle(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM oracle",
			"provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	defer closeOracle()
	slog.Info("LLM oracle initialized", "provider", cfg.LLM.Provider)

	classifier := planner.NewClassifier(oracle, cfg.LLM.MaxTokens)
	specifier := planner.NewSpecifier(oracle, cfg.LLM.MaxTokens)
	missionPlanner := planner.NewPlanner(oracle, cfg.Deployer, cfg.LLM.MaxTokens)

	// 5. Event bus and sandbox exchange stores
	bus := events.NewBus()
	instructions := exchange.NewStore("instructions", 0)
	outputs := exchange.NewStore("outputs", 0)

	providers := func(ws *gitws.Workspace) sandbox.Provider {
		if cfg.Sandbox.Provider == "remote" {
			return sandbox.NewRemoteProvider(cfg.Sandbox, ws, instructions, outputs)
		}
		local := sandbox.NewLocalProvider(cfg.Sandbox, ws, sandbox.ExecCommandRunner{})
		if cfg.Git.UseWorktrees {
			local.EnableWorktrees()
		}
		return local
	}

	// 6. Engine and queue executor
	checkpoints := checkpoint.NewStore(dbClient.Client)
	eng := engine.New(cfg, checkpoints, bus, classifier, specifier, missionPlanner,
		gitws.ExecRunner{}, providers)
	executor := services.NewExecutor(eng, checkpoints)

	// 7. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Services and HTTP server
	missionService := services.NewMissionService(dbClient.Client, checkpoints, eng, workerPool)
	httpServer := api.NewServer(cfg.Server, missionService, bus,
		instructions, outputs, workerPool, dbClient.DB())

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Worldmind started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"sandbox_provider", cfg.Sandbox.Provider)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain workers first, then the HTTP server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete missions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
