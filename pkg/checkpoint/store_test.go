package checkpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/test/util"
)

func newTestStore(t *testing.T) (*Store, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewStore(client), client
}

func createMissionRow(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Mission.Create().
		SetID(id).
		SetRequest("test request").
		Save(context.Background())
	require.NoError(t, err)
}

func marshalState(t *testing.T, state *models.MissionState) string {
	t.Helper()
	blob, err := state.Marshal()
	require.NoError(t, err)
	return blob
}

func TestPutAndGetLatest(t *testing.T) {
	store, client := newTestStore(t)
	createMissionRow(t, client, "mission-0001")
	ctx := context.Background()

	first := marshalState(t, &models.MissionState{
		MissionID: "mission-0001",
		Status:    models.MissionClassifying,
	})
	cp1, err := store.Put(ctx, "mission-0001", "classify", "plan", first)
	require.NoError(t, err)
	assert.NotEmpty(t, cp1.ID)
	assert.Equal(t, "classify", cp1.NodeID)
	require.NotNil(t, cp1.NextNodeID)
	assert.Equal(t, "plan", *cp1.NextNodeID)

	second := marshalState(t, &models.MissionState{
		MissionID: "mission-0001",
		Status:    models.MissionPlanning,
	})
	cp2, err := store.Put(ctx, "mission-0001", "plan", "", second)
	require.NoError(t, err)
	assert.Nil(t, cp2.NextNodeID, "empty next node is stored as null")

	latest, err := store.GetLatest(ctx, "mission-0001")
	require.NoError(t, err)
	assert.Equal(t, cp2.ID, latest.ID)

	state, err := models.UnmarshalState(latest.State)
	require.NoError(t, err)
	assert.Equal(t, models.MissionPlanning, state.Status)
}

func TestGetLatestUnknownThread(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetLatest(context.Background(), "mission-9999")
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestGetByID(t *testing.T) {
	store, client := newTestStore(t)
	createMissionRow(t, client, "mission-0001")
	ctx := context.Background()

	blob := marshalState(t, &models.MissionState{MissionID: "mission-0001"})
	cp, err := store.Put(ctx, "mission-0001", "classify", "", blob)
	require.NoError(t, err)

	got, err := store.Get(ctx, "mission-0001", cp.ID)
	require.NoError(t, err)
	assert.Equal(t, cp.ID, got.ID)

	// The thread scopes the lookup: another thread cannot see it.
	createMissionRow(t, client, "mission-0002")
	_, err = store.Get(ctx, "mission-0002", cp.ID)
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestListIsChronological(t *testing.T) {
	store, client := newTestStore(t)
	createMissionRow(t, client, "mission-0001")
	ctx := context.Background()

	nodes := []string{"classify", "plan", "execute"}
	for _, node := range nodes {
		blob := marshalState(t, &models.MissionState{MissionID: "mission-0001"})
		_, err := store.Put(ctx, "mission-0001", node, "", blob)
		require.NoError(t, err)
	}

	cps, err := store.List(ctx, "mission-0001")
	require.NoError(t, err)
	require.Len(t, cps, 3)
	for i, node := range nodes {
		assert.Equal(t, node, cps[i].NodeID)
	}
}

func TestReleaseRemovesThread(t *testing.T) {
	store, client := newTestStore(t)
	createMissionRow(t, client, "mission-0001")
	createMissionRow(t, client, "mission-0002")
	ctx := context.Background()

	blob := marshalState(t, &models.MissionState{MissionID: "mission-0001"})
	_, err := store.Put(ctx, "mission-0001", "classify", "", blob)
	require.NoError(t, err)
	_, err = store.Put(ctx, "mission-0001", "plan", "", blob)
	require.NoError(t, err)
	_, err = store.Put(ctx, "mission-0002", "classify", "", blob)
	require.NoError(t, err)

	released, err := store.Release(ctx, "mission-0001")
	require.NoError(t, err)
	assert.Len(t, released, 2)

	cps, err := store.List(ctx, "mission-0001")
	require.NoError(t, err)
	assert.Empty(t, cps)

	// Other threads are untouched.
	cps, err = store.List(ctx, "mission-0002")
	require.NoError(t, err)
	assert.Len(t, cps, 1)
}
