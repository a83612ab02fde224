package engine

import (
	"sort"

	"github.com/worldmind/worldmind/pkg/models"
)

// WaveSelection is the scheduler's choice for the next wave.
type WaveSelection struct {
	// Admitted tasks, in lexicographic id order.
	Admitted []*models.Task
	// Deferred counts runnable candidates held back by the file-overlap rule.
	Deferred int
}

// ScheduleNextWave selects the next runnable wave. Pure function of its
// inputs: same tasks, completed set and strategy always produce the same
// wave.
//
// Candidates are PENDING tasks whose dependencies are all completed and none
// of whose dependencies ended FAILED or SKIPPED. They are sorted by id, then
// admitted in that order: one task under SEQUENTIAL, up to maxParallel under
// PARALLEL with the file-overlap rule applied — a candidate whose declared
// target files intersect an already-admitted task's is deferred to a later
// wave and stays PENDING.
func ScheduleNextWave(tasks []*models.Task, completed map[string]bool,
	strategy models.ExecutionStrategy, maxParallel int) WaveSelection {

	byID := make(map[string]*models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var candidates []*models.Task
	for _, t := range tasks {
		if t.Status != models.TaskPending {
			continue
		}
		runnable := true
		for _, dep := range t.Dependencies {
			parent := byID[dep]
			if !completed[dep] || parent == nil ||
				parent.Status == models.TaskFailed || parent.Status == models.TaskSkipped {
				runnable = false
				break
			}
		}
		if runnable {
			candidates = append(candidates, t)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	if len(candidates) == 0 {
		return WaveSelection{}
	}
	if strategy == models.StrategySequential {
		return WaveSelection{Admitted: candidates[:1]}
	}
	if maxParallel < 1 {
		maxParallel = 1
	}

	var selection WaveSelection
	claimed := make(map[string]bool)
	for _, t := range candidates {
		if len(selection.Admitted) >= maxParallel {
			break
		}
		if overlaps(t.TargetFiles, claimed) {
			selection.Deferred++
			continue
		}
		for _, f := range t.TargetFiles {
			claimed[f] = true
		}
		selection.Admitted = append(selection.Admitted, t)
	}
	return selection
}

func overlaps(files []string, claimed map[string]bool) bool {
	for _, f := range files {
		if claimed[f] {
			return true
		}
	}
	return false
}
