package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxOutputBytes caps a PUT /internal/output body. The sandbox runner
// truncates captured output before upload; anything larger is abuse.
const maxOutputBytes = 1 << 20

// getInstructions serves the instruction document a remote sandbox worker
// fetches before running its agent. Entries are cleaned up by the sandbox
// provider, not here: a worker may re-fetch after a transient failure.
func (s *Server) getInstructions(c *gin.Context) {
	key := c.Param("key")
	text, ok := s.instructions.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no instructions for key " + key})
		return
	}
	c.String(http.StatusOK, text)
}

// putOutput receives the captured output a remote sandbox worker uploads
// when its task finishes.
func (s *Server) putOutput(c *gin.Context) {
	key := c.Param("key")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxOutputBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body: " + err.Error()})
		return
	}
	if len(body) > maxOutputBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "output exceeds 1MB limit"})
		return
	}

	s.outputs.Put(key, string(body))
	c.Status(http.StatusNoContent)
}
