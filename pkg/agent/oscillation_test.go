package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldmind/worldmind/pkg/models"
)

func TestFingerprint(t *testing.T) {
	changes := []models.FileRecord{
		{Path: "a.go", Action: models.FileModified, LinesChanged: 5},
		{Path: "b.go", Action: models.FileCreated, LinesChanged: 10},
	}

	t.Run("order independent", func(t *testing.T) {
		reversed := []models.FileRecord{changes[1], changes[0]}
		assert.Equal(t, Fingerprint(changes), Fingerprint(reversed))
	})

	t.Run("sensitive to content", func(t *testing.T) {
		tweaked := []models.FileRecord{changes[0], {Path: "b.go", Action: models.FileCreated, LinesChanged: 11}}
		assert.NotEqual(t, Fingerprint(changes), Fingerprint(tweaked))
	})

	t.Run("empty set has a stable fingerprint", func(t *testing.T) {
		assert.Equal(t, Fingerprint(nil), Fingerprint([]models.FileRecord{}))
	})
}

func TestOscillationDetector(t *testing.T) {
	same := []models.FileRecord{{Path: "a.go", Action: models.FileModified, LinesChanged: 5}}
	other := []models.FileRecord{{Path: "b.go", Action: models.FileModified, LinesChanged: 2}}

	t.Run("three identical sets in a row is stuck", func(t *testing.T) {
		d := NewOscillationDetector()
		d.Record("TASK-001", same)
		assert.False(t, d.IsStuck("TASK-001"))
		d.Record("TASK-001", same)
		assert.False(t, d.IsStuck("TASK-001"))
		d.Record("TASK-001", same)
		assert.True(t, d.IsStuck("TASK-001"))
	})

	t.Run("a differing set in the window resets the streak", func(t *testing.T) {
		d := NewOscillationDetector()
		d.Record("TASK-001", same)
		d.Record("TASK-001", other)
		d.Record("TASK-001", same)
		assert.False(t, d.IsStuck("TASK-001"))
	})

	t.Run("identical sets beyond the window still trigger", func(t *testing.T) {
		d := NewOscillationDetector()
		d.Record("TASK-001", other)
		d.Record("TASK-001", same)
		d.Record("TASK-001", same)
		d.Record("TASK-001", same)
		assert.True(t, d.IsStuck("TASK-001"))
	})

	t.Run("tasks are tracked independently", func(t *testing.T) {
		d := NewOscillationDetector()
		for range 3 {
			d.Record("TASK-001", same)
			d.Record("TASK-002", other)
		}
		assert.True(t, d.IsStuck("TASK-001"))
		assert.True(t, d.IsStuck("TASK-002"))
		assert.False(t, d.IsStuck("TASK-003"))
	})

	t.Run("reset clears history", func(t *testing.T) {
		d := NewOscillationDetector()
		for range 3 {
			d.Record("TASK-001", same)
		}
		d.Reset("TASK-001")
		assert.False(t, d.IsStuck("TASK-001"))
	})
}
