package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/worldmind/worldmind/pkg/events"
)

// sseHeartbeatInterval is how often an idle SSE stream emits a comment line
// so proxies do not reap the connection.
const sseHeartbeatInterval = 30 * time.Second

// streamMissionEvents serves GET /missions/{id}/events as a Server-Sent
// Events stream. The stream ends when the client disconnects, the mission
// finishes (the bus closes the topic), or no event arrives for the idle
// timeout. Events dropped for a slow client are not replayed; the timeline
// endpoint is the catch-up path.
func (s *Server) streamMissionEvents(c *gin.Context) {
	missionID := c.Param("id")
	if _, _, err := s.missions.Get(c.Request.Context(), missionID); err != nil {
		mapServiceError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	sub := s.bus.Subscribe(events.MissionChannel(missionID))
	defer sub.Close()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()
	idle := time.NewTimer(s.sseIdleTimeout)
	defer idle.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case <-idle.C:
			fmt.Fprint(c.Writer, "event: stream.end\ndata: {}\n\n")
			flusher.Flush()
			return

		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ":heartbeat\n\n")
			flusher.Flush()

		case data, open := <-sub.C:
			if !open {
				// Mission finished and the topic was cleared.
				fmt.Fprint(c.Writer, "event: stream.end\ndata: {}\n\n")
				flusher.Flush()
				return
			}
			idle.Reset(s.sseIdleTimeout)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", eventName(data), data)
			flusher.Flush()
		}
	}
}

// eventName pulls the payload's "type" field for the SSE event line.
func eventName(data []byte) string {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Type == "" {
		return "message"
	}
	return envelope.Type
}
