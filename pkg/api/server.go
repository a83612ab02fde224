// Package api exposes the orchestrator over HTTP: mission intake and
// lifecycle actions under /api/v1, live event streams over SSE and
// WebSocket, the internal instruction/output exchange used by remote
// sandbox workers, and the health and metrics endpoints.
package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/database"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/exchange"
	"github.com/worldmind/worldmind/pkg/queue"
	"github.com/worldmind/worldmind/pkg/services"
)

// defaultSSEIdleTimeout ends an SSE stream that delivered no event for this
// long.
const defaultSSEIdleTimeout = 30 * time.Minute

// Server is the HTTP API server.
type Server struct {
	missions       *services.MissionService
	bus            *events.Bus
	instructions   *exchange.Store
	outputs        *exchange.Store
	pool           *queue.WorkerPool
	db             *sql.DB
	connManager    *ConnectionManager
	httpServer     *http.Server
	sseIdleTimeout time.Duration
}

// NewServer wires the API server. pool may be nil in tests; the health
// endpoint then reports the database only.
func NewServer(cfg *config.ServerConfig, missions *services.MissionService,
	bus *events.Bus, instructions, outputs *exchange.Store,
	pool *queue.WorkerPool, db *sql.DB) *Server {

	s := &Server{
		missions:       missions,
		bus:            bus,
		instructions:   instructions,
		outputs:        outputs,
		pool:           pool,
		db:             db,
		connManager:    NewConnectionManager(bus),
		sseIdleTimeout: defaultSSEIdleTimeout,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", s.handleWebSocket)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/missions", s.createMission)
		v1.GET("/missions", s.listMissions)
		v1.GET("/missions/:id", s.getMission)
		v1.POST("/missions/:id/approve", s.approveMission)
		v1.POST("/missions/:id/clarify", s.clarifyMission)
		v1.POST("/missions/:id/cancel", s.cancelMission)
		v1.POST("/missions/:id/retry", s.retryMission)
		v1.GET("/missions/:id/timeline", s.missionTimeline)
		v1.GET("/missions/:id/events", s.streamMissionEvents)
	}

	internal := r.Group("/internal")
	{
		internal.GET("/instructions/:key", s.getInstructions)
		internal.PUT("/output/:key", s.putOutput)
	}

	return r
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// health reports database connectivity and worker pool status.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	code := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db)
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy && code == http.StatusOK {
			body["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, body)
}
