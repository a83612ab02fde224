package agent

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/worldmind/worldmind/pkg/models"
)

// oscillationWindow is how many identical consecutive file-change sets force
// a failure.
const oscillationWindow = 3

// historyLimit bounds the fingerprints retained per task.
const historyLimit = 8

// OscillationDetector spots retry loops that keep producing the same file
// changes. Three identical consecutive fingerprints mean the model is stuck
// and the task must fail regardless of its remaining iteration budget.
type OscillationDetector struct {
	mu      sync.Mutex
	history map[string][]string // taskID → fingerprints, oldest first
}

// NewOscillationDetector creates an empty detector. One instance per mission.
func NewOscillationDetector() *OscillationDetector {
	return &OscillationDetector{history: make(map[string][]string)}
}

// Record fingerprints a completed iteration's file changes.
func (d *OscillationDetector) Record(taskID string, changes []models.FileRecord) {
	fp := Fingerprint(changes)

	d.mu.Lock()
	defer d.mu.Unlock()
	h := append(d.history[taskID], fp)
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	d.history[taskID] = h
}

// IsStuck reports whether the task's last three recorded change sets are
// pairwise identical.
func (d *OscillationDetector) IsStuck(taskID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := d.history[taskID]
	if len(h) < oscillationWindow {
		return false
	}
	tail := h[len(h)-oscillationWindow:]
	for _, fp := range tail[1:] {
		if fp != tail[0] {
			return false
		}
	}
	return true
}

// Reset drops a task's history, used when a retry starts from a genuinely
// new baseline (e.g. after a merge-conflict re-queue).
func (d *OscillationDetector) Reset(taskID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.history, taskID)
}

// Fingerprint hashes a file-change set order-independently: records are
// normalized to "path|action|lines" lines, sorted, then hashed.
func Fingerprint(changes []models.FileRecord) string {
	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = fmt.Sprintf("%s|%s|%d", c.Path, c.Action, c.LinesChanged)
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
