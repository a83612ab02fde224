package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/services"
)

// createMission accepts a new mission and enqueues it. Returns 202: the
// mission runs asynchronously on a queue worker.
func (s *Server) createMission(c *gin.Context) {
	var req CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	request := req.Request
	if request == "" {
		request = req.PrdDocument
	}

	m, err := s.missions.Create(c.Request.Context(), services.CreateMissionInput{
		Request:              request,
		InteractionMode:      models.InteractionMode(req.InteractionMode),
		ExecutionStrategy:    models.ExecutionStrategy(req.ExecutionStrategy),
		ProjectPath:          req.ProjectPath,
		GitRemoteURL:         req.GitRemoteURL,
		ReasoningLevel:       req.ReasoningLevel,
		SkipPerTaskTests:     req.SkipPerTaskTests,
		CreateDeploymentTask: req.CreateDeploymentTask,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"mission_id": m.ID,
		"status":     string(m.Status),
	})
}

func (s *Server) listMissions(c *gin.Context) {
	missions, err := s.missions.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]MissionSummary, 0, len(missions))
	for _, m := range missions {
		out = append(out, toSummary(m))
	}
	c.JSON(http.StatusOK, gin.H{"missions": out, "total": len(out)})
}

func (s *Server) getMission(c *gin.Context) {
	m, state, err := s.missions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MissionDetail{MissionSummary: toSummary(m), State: state})
}

func (s *Server) approveMission(c *gin.Context) {
	id := c.Param("id")
	if err := s.missions.Approve(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": id, "status": "pending"})
}

func (s *Server) clarifyMission(c *gin.Context) {
	var req ClarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	id := c.Param("id")
	if err := s.missions.Clarify(c.Request.Context(), id, req.Answers); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": id, "status": "pending"})
}

func (s *Server) cancelMission(c *gin.Context) {
	id := c.Param("id")
	if err := s.missions.Cancel(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": id, "status": "cancelling"})
}

func (s *Server) retryMission(c *gin.Context) {
	var req RetryRequest
	// An empty body means "retry everything that failed".
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var taskIDs []string
	if req.TaskIDs != nil {
		taskIDs = *req.TaskIDs
	}

	id := c.Param("id")
	if err := s.missions.Retry(c.Request.Context(), id, taskIDs); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": id, "status": "pending"})
}

func (s *Server) missionTimeline(c *gin.Context) {
	id := c.Param("id")
	entries, err := s.missions.Timeline(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": id, "checkpoints": entries})
}
