package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/engine"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/test/util"
)

type stubCanceller struct {
	cancelled []string
	found     bool
}

func (c *stubCanceller) CancelMission(missionID string) bool {
	c.cancelled = append(c.cancelled, missionID)
	return c.found
}

type serviceFixture struct {
	svc    *MissionService
	store  *checkpoint.Store
	client *ent.Client
}

func newServiceFixture(t *testing.T, canceller MissionCanceller) serviceFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	store := checkpoint.NewStore(client)
	eng := engine.New(config.Default(), store, events.NewBus(), nil, nil, nil, nil, nil)
	return serviceFixture{
		svc:    NewMissionService(client, store, eng, canceller),
		store:  store,
		client: client,
	}
}

func (fx serviceFixture) createMission(t *testing.T, in CreateMissionInput) *ent.Mission {
	t.Helper()
	m, err := fx.svc.Create(context.Background(), in)
	require.NoError(t, err)
	return m
}

func (fx serviceFixture) putState(t *testing.T, state *models.MissionState, node string) {
	t.Helper()
	blob, err := state.Marshal()
	require.NoError(t, err)
	_, err = fx.store.Put(context.Background(), state.MissionID, node, "", blob)
	require.NoError(t, err)
}

func (fx serviceFixture) latestState(t *testing.T, missionID string) *models.MissionState {
	t.Helper()
	cp, err := fx.store.GetLatest(context.Background(), missionID)
	require.NoError(t, err)
	state, err := models.UnmarshalState(cp.State)
	require.NoError(t, err)
	return state
}

func TestCreateMission(t *testing.T) {
	fx := newServiceFixture(t, nil)

	t.Run("valid request enqueues a pending row", func(t *testing.T) {
		m := fx.createMission(t, CreateMissionInput{
			Request:      "add a health endpoint",
			GitRemoteURL: "https://git.example.com/repo.git",
		})
		assert.Equal(t, "mission-0001", m.ID)
		assert.Equal(t, mission.StatusPending, m.Status)
		assert.Equal(t, string(models.ModeFullAuto), m.InteractionMode)
	})

	t.Run("ids are sequential", func(t *testing.T) {
		m := fx.createMission(t, CreateMissionInput{Request: "second"})
		assert.Equal(t, "mission-0002", m.ID)
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		_, err := fx.svc.Create(context.Background(), CreateMissionInput{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown interaction mode is rejected", func(t *testing.T) {
		_, err := fx.svc.Create(context.Background(), CreateMissionInput{
			Request:         "x",
			InteractionMode: "YOLO",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown strategy is rejected", func(t *testing.T) {
		_, err := fx.svc.Create(context.Background(), CreateMissionInput{
			Request:           "x",
			ExecutionStrategy: "SOMETIMES",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestGetMission(t *testing.T) {
	fx := newServiceFixture(t, nil)
	m := fx.createMission(t, CreateMissionInput{Request: "x"})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := fx.svc.Get(context.Background(), "mission-9999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no checkpoint yet", func(t *testing.T) {
		row, state, err := fx.svc.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ID, row.ID)
		assert.Nil(t, state)
	})

	t.Run("checkpoint state wins once present", func(t *testing.T) {
		fx.putState(t, &models.MissionState{
			MissionID: m.ID,
			Status:    models.MissionExecuting,
			WaveCount: 2,
		}, "execute")

		_, state, err := fx.svc.Get(context.Background(), m.ID)
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, models.MissionExecuting, state.Status)
		assert.Equal(t, 2, state.WaveCount)
	})
}

func TestApproveMission(t *testing.T) {
	fx := newServiceFixture(t, nil)
	m := fx.createMission(t, CreateMissionInput{Request: "x", InteractionMode: models.ModeApprovePlan})

	t.Run("not started yet", func(t *testing.T) {
		assert.ErrorIs(t, fx.svc.Approve(context.Background(), m.ID), ErrInvalidState)
	})

	t.Run("wrong status", func(t *testing.T) {
		fx.putState(t, &models.MissionState{MissionID: m.ID, Status: models.MissionExecuting}, "execute")
		assert.ErrorIs(t, fx.svc.Approve(context.Background(), m.ID), ErrInvalidState)
	})

	t.Run("awaiting approval resumes execution", func(t *testing.T) {
		fx.putState(t, &models.MissionState{
			MissionID:       m.ID,
			InteractionMode: models.ModeApprovePlan,
			Status:          models.MissionAwaitingApproval,
			Tasks:           []*models.Task{{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPending}},
		}, "plan")

		require.NoError(t, fx.svc.Approve(context.Background(), m.ID))

		state := fx.latestState(t, m.ID)
		assert.Equal(t, models.MissionExecuting, state.Status)
		assert.Equal(t, models.ModeFullAuto, state.InteractionMode)

		row, err := fx.client.Mission.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusPending, row.Status, "approved mission re-enters the queue")
	})
}

func TestClarifyMission(t *testing.T) {
	fx := newServiceFixture(t, nil)
	m := fx.createMission(t, CreateMissionInput{Request: "x", InteractionMode: models.ModeClarify})

	fx.putState(t, &models.MissionState{
		MissionID:       m.ID,
		InteractionMode: models.ModeClarify,
		Status:          models.MissionClarifying,
		ClarifyingQuestions: []models.ClarifyingQuestion{
			{ID: "Q1", Question: "Which endpoint?"},
		},
	}, "classify")

	t.Run("empty answers rejected", func(t *testing.T) {
		err := fx.svc.Clarify(context.Background(), m.ID, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("answers are recorded and mission re-queued", func(t *testing.T) {
		err := fx.svc.Clarify(context.Background(), m.ID, []models.ClarifyingAnswer{
			{QuestionID: "Q1", Answer: "/health"},
		})
		require.NoError(t, err)

		state := fx.latestState(t, m.ID)
		assert.Equal(t, models.MissionClassifying, state.Status)
		assert.JSONEq(t, `{"Q1": "/health"}`, state.ClarifyingAnswers)

		row, err := fx.client.Mission.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusPending, row.Status)
	})

	t.Run("second clarify is rejected", func(t *testing.T) {
		err := fx.svc.Clarify(context.Background(), m.ID, []models.ClarifyingAnswer{
			{QuestionID: "Q1", Answer: "again"},
		})
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCancelMission(t *testing.T) {
	t.Run("pending row is settled directly", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})

		require.NoError(t, fx.svc.Cancel(context.Background(), m.ID))

		row, err := fx.client.Mission.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusCancelled, row.Status)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("running mission is cancelled through the pool", func(t *testing.T) {
		canceller := &stubCanceller{found: true}
		fx := newServiceFixture(t, canceller)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		_, err := m.Update().SetStatus(mission.StatusInProgress).Save(context.Background())
		require.NoError(t, err)

		require.NoError(t, fx.svc.Cancel(context.Background(), m.ID))
		assert.Equal(t, []string{m.ID}, canceller.cancelled)

		// The owning worker settles the row; the service leaves it alone.
		row, err := fx.client.Mission.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusInProgress, row.Status)
	})

	t.Run("terminal mission cannot be cancelled", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		_, err := m.Update().SetStatus(mission.StatusCompleted).Save(context.Background())
		require.NoError(t, err)

		assert.ErrorIs(t, fx.svc.Cancel(context.Background(), m.ID), ErrInvalidState)
	})
}

func failedMissionState(id string) *models.MissionState {
	return &models.MissionState{
		MissionID: id,
		Status:    models.MissionFailed,
		Tasks: []*models.Task{
			{ID: "TASK-001", Agent: models.RoleCoder, Status: models.TaskPassed},
			{ID: "TASK-002", Agent: models.RoleCoder, Status: models.TaskFailed, Iteration: 5},
			{ID: "TASK-003", Agent: models.RoleCoder, Status: models.TaskSkipped, Dependencies: []string{"TASK-002"}},
		},
		CompletedTaskIDs: []string{"TASK-001", "TASK-002", "TASK-003"},
	}
}

func TestRetryMission(t *testing.T) {
	t.Run("explicit empty task set is rejected", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		fx.putState(t, failedMissionState(m.ID), "finalize")

		err := fx.svc.Retry(context.Background(), m.ID, []string{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("only failed missions can be retried", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		fx.putState(t, &models.MissionState{MissionID: m.ID, Status: models.MissionCompleted}, "finalize")

		assert.ErrorIs(t, fx.svc.Retry(context.Background(), m.ID, nil), ErrInvalidState)
	})

	t.Run("default resets failed and skipped tasks", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		fx.putState(t, failedMissionState(m.ID), "finalize")

		require.NoError(t, fx.svc.Retry(context.Background(), m.ID, nil))

		state := fx.latestState(t, m.ID)
		assert.Equal(t, models.MissionExecuting, state.Status)
		assert.Equal(t, models.TaskPassed, state.Task("TASK-001").Status)
		assert.Equal(t, models.TaskPending, state.Task("TASK-002").Status)
		assert.Equal(t, 0, state.Task("TASK-002").Iteration)
		assert.Equal(t, models.TaskPending, state.Task("TASK-003").Status)
		assert.Equal(t, []string{"TASK-001"}, state.CompletedTaskIDs)

		row, err := fx.client.Mission.Get(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusPending, row.Status)
	})

	t.Run("named reset pulls in skipped dependents", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		fx.putState(t, failedMissionState(m.ID), "finalize")

		require.NoError(t, fx.svc.Retry(context.Background(), m.ID, []string{"TASK-002"}))

		state := fx.latestState(t, m.ID)
		assert.Equal(t, models.TaskPending, state.Task("TASK-002").Status)
		assert.Equal(t, models.TaskPending, state.Task("TASK-003").Status, "skipped dependent is un-stranded")
	})

	t.Run("unknown task id is rejected", func(t *testing.T) {
		fx := newServiceFixture(t, nil)
		m := fx.createMission(t, CreateMissionInput{Request: "x"})
		fx.putState(t, failedMissionState(m.ID), "finalize")

		err := fx.svc.Retry(context.Background(), m.ID, []string{"TASK-999"})
		assert.True(t, IsValidationError(err))
	})
}

func TestMissionTimeline(t *testing.T) {
	fx := newServiceFixture(t, nil)
	m := fx.createMission(t, CreateMissionInput{Request: "x"})

	fx.putState(t, &models.MissionState{MissionID: m.ID, Status: models.MissionClassifying}, "classify")
	fx.putState(t, &models.MissionState{MissionID: m.ID, Status: models.MissionPlanning}, "plan")
	fx.putState(t, &models.MissionState{MissionID: m.ID, Status: models.MissionExecuting, WaveCount: 1}, "execute")

	entries, err := fx.svc.Timeline(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "classify", entries[0].Node)
	assert.Equal(t, models.MissionClassifying, entries[0].Status)
	assert.Equal(t, "execute", entries[2].Node)
	assert.Equal(t, 1, entries[2].WaveCount)

	_, err = fx.svc.Timeline(context.Background(), "mission-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}
