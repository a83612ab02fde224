package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/ent"
	"github.com/worldmind/worldmind/ent/mission"
	"github.com/worldmind/worldmind/pkg/checkpoint"
	"github.com/worldmind/worldmind/pkg/config"
	"github.com/worldmind/worldmind/pkg/engine"
	"github.com/worldmind/worldmind/pkg/events"
	"github.com/worldmind/worldmind/pkg/exchange"
	"github.com/worldmind/worldmind/pkg/models"
	"github.com/worldmind/worldmind/pkg/services"
	"github.com/worldmind/worldmind/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	server       *Server
	router       *gin.Engine
	bus          *events.Bus
	instructions *exchange.Store
	outputs      *exchange.Store
	store        *checkpoint.Store
	client       *ent.Client
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	store := checkpoint.NewStore(client)
	eng := engine.New(config.Default(), store, events.NewBus(), nil, nil, nil, nil, nil)
	missions := services.NewMissionService(client, store, eng, nil)

	bus := events.NewBus()
	instructions := exchange.NewStore("instructions", 0)
	outputs := exchange.NewStore("outputs", 0)

	srv := NewServer(config.Default().Server, missions, bus, instructions, outputs, nil, db)
	return apiFixture{
		server:       srv,
		router:       srv.Router(),
		bus:          bus,
		instructions: instructions,
		outputs:      outputs,
		store:        store,
		client:       client,
	}
}

func (fx apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(blob)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func (fx apiFixture) createMission(t *testing.T, request string) string {
	t.Helper()
	w := fx.do(t, http.MethodPost, "/api/v1/missions", gin.H{"request": request})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	var resp struct {
		MissionID string `json:"mission_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.MissionID
}

func (fx apiFixture) putState(t *testing.T, state *models.MissionState, node string) {
	t.Helper()
	blob, err := state.Marshal()
	require.NoError(t, err)
	_, err = fx.store.Put(context.Background(), state.MissionID, node, "", blob)
	require.NoError(t, err)
}

func TestCreateMissionEndpoint(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("accepts a valid request", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions", gin.H{
			"request":          "build a todo API",
			"interaction_mode": "APPROVE_PLAN",
		})
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"mission_id": "mission-0001", "status": "pending"}`, w.Body.String())

		m, err := fx.client.Mission.Get(context.Background(), "mission-0001")
		require.NoError(t, err)
		assert.Equal(t, mission.StatusPending, m.Status)
		assert.Equal(t, "APPROVE_PLAN", m.InteractionMode)
	})

	t.Run("accepts a PRD document in place of a request", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions", gin.H{
			"prd_document": "# Product\nA todo list service.",
		})
		require.Equal(t, http.StatusAccepted, w.Code)

		m, err := fx.client.Mission.Get(context.Background(), "mission-0002")
		require.NoError(t, err)
		assert.Contains(t, m.Request, "todo list")
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions", gin.H{"request": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request")
	})

	t.Run("rejects an unknown interaction mode", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions", gin.H{
			"request":          "do things",
			"interaction_mode": "YOLO",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		fx.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAndListMissions(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("unknown mission is 404", func(t *testing.T) {
		w := fx.do(t, http.MethodGet, "/api/v1/missions/mission-9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	id := fx.createMission(t, "add a health endpoint")

	t.Run("detail has null state before a worker starts", func(t *testing.T) {
		w := fx.do(t, http.MethodGet, "/api/v1/missions/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail MissionDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, id, detail.MissionID)
		assert.Equal(t, "pending", detail.Status)
		assert.Nil(t, detail.State)
	})

	t.Run("detail reflects the latest checkpoint", func(t *testing.T) {
		fx.putState(t, &models.MissionState{
			MissionID: id,
			Request:   "add a health endpoint",
			Status:    models.MissionExecuting,
			WaveCount: 2,
		}, "execute")

		w := fx.do(t, http.MethodGet, "/api/v1/missions/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail MissionDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.NotNil(t, detail.State)
		assert.Equal(t, models.MissionExecuting, detail.State.Status)
		assert.Equal(t, 2, detail.State.WaveCount)
	})

	t.Run("list returns all missions", func(t *testing.T) {
		w := fx.do(t, http.MethodGet, "/api/v1/missions", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Missions []MissionSummary `json:"missions"`
			Total    int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Missions, 1)
		assert.Equal(t, id, resp.Missions[0].MissionID)
	})
}

func TestMissionActions(t *testing.T) {
	fx := newAPIFixture(t)
	id := fx.createMission(t, "refactor the parser")

	t.Run("approve before any checkpoint is a conflict", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions/"+id+"/approve", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("approve resumes a suspended mission", func(t *testing.T) {
		fx.putState(t, &models.MissionState{
			MissionID:       id,
			Request:         "refactor the parser",
			InteractionMode: models.ModeApprovePlan,
			Status:          models.MissionAwaitingApproval,
		}, "plan")

		w := fx.do(t, http.MethodPost, "/api/v1/missions/"+id+"/approve", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		m, err := fx.client.Mission.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusPending, m.Status, "approved mission re-enters the queue")
	})

	t.Run("clarify in the wrong state is a conflict", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions/"+id+"/clarify", ClarifyRequest{
			Answers: []models.ClarifyingAnswer{{QuestionID: "Q1", Answer: "yes"}},
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("retry with an explicitly empty task list is rejected", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/v1/missions/"+id+"/retry", gin.H{"task_ids": []string{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancel settles a queued mission", func(t *testing.T) {
		other := fx.createMission(t, "another mission")
		w := fx.do(t, http.MethodPost, "/api/v1/missions/"+other+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)

		m, err := fx.client.Mission.Get(context.Background(), other)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusCancelled, m.Status)

		w = fx.do(t, http.MethodPost, "/api/v1/missions/"+other+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code, "cancelling twice conflicts")
	})
}

func TestMissionTimelineEndpoint(t *testing.T) {
	fx := newAPIFixture(t)
	id := fx.createMission(t, "timeline mission")

	fx.putState(t, &models.MissionState{MissionID: id, Status: models.MissionClassifying}, "classify")
	fx.putState(t, &models.MissionState{MissionID: id, Status: models.MissionPlanning}, "plan")

	w := fx.do(t, http.MethodGet, "/api/v1/missions/"+id+"/timeline", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MissionID   string                   `json:"mission_id"`
		Checkpoints []services.TimelineEntry `json:"checkpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.MissionID)
	require.Len(t, resp.Checkpoints, 2)
	assert.Equal(t, "classify", resp.Checkpoints[0].Node)
	assert.Equal(t, "plan", resp.Checkpoints[1].Node)

	w = fx.do(t, http.MethodGet, "/api/v1/missions/mission-9999/timeline", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExchangeEndpoints(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("instructions 404 for unknown key", func(t *testing.T) {
		w := fx.do(t, http.MethodGet, "/internal/instructions/sandbox-CODER-TASK-001", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("instructions served as plain text", func(t *testing.T) {
		fx.instructions.Put("sandbox-CODER-TASK-001", "# Task\nImplement the endpoint.")

		w := fx.do(t, http.MethodGet, "/internal/instructions/sandbox-CODER-TASK-001", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "# Task\nImplement the endpoint.", w.Body.String())
	})

	t.Run("output upload lands in the store", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/internal/output/sandbox-CODER-TASK-001",
			strings.NewReader("Tests run: 3, Failures: 0"))
		w := httptest.NewRecorder()
		fx.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)

		out, ok := fx.outputs.Get("sandbox-CODER-TASK-001")
		require.True(t, ok)
		assert.Equal(t, "Tests run: 3, Failures: 0", out)
	})
}

func TestHealthAndHeaders(t *testing.T) {
	fx := newAPIFixture(t)

	w := fx.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestStreamMissionEvents(t *testing.T) {
	fx := newAPIFixture(t)
	id := fx.createMission(t, "stream mission")

	ts := httptest.NewServer(fx.router)
	defer ts.Close()

	t.Run("unknown mission is 404", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/missions/mission-9999/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("events are framed and the stream ends with the topic", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/missions/" + id + "/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

		channel := events.MissionChannel(id)
		require.Eventually(t, func() bool {
			return fx.bus.SubscriberCount(channel) == 1
		}, 2*time.Second, 10*time.Millisecond, "stream handler subscribes")

		fx.bus.Publish(channel, map[string]any{
			"type":    events.EventTypeTaskStarted,
			"task_id": "TASK-001",
		})

		reader := bufio.NewReader(resp.Body)
		requireLine(t, reader, "event: task.started")
		data, err := reader.ReadString('\n')
		require.NoError(t, err)
		assert.Contains(t, data, `"task_id":"TASK-001"`)

		fx.bus.Clear(channel)
		requireLine(t, reader, "event: stream.end")
	})
}

func TestStreamMissionEventsIdleTimeout(t *testing.T) {
	fx := newAPIFixture(t)
	fx.server.sseIdleTimeout = 100 * time.Millisecond
	id := fx.createMission(t, "idle stream mission")

	ts := httptest.NewServer(fx.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/missions/" + id + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// No events are published; the handler ends the stream on its own.
	reader := bufio.NewReader(resp.Body)
	requireLine(t, reader, "event: stream.end")
	requireLine(t, reader, "data: {}")

	require.Eventually(t, func() bool {
		return fx.bus.SubscriberCount(events.MissionChannel(id)) == 0
	}, 2*time.Second, 10*time.Millisecond, "handler unsubscribes after closing")
}

// requireLine reads lines until a non-blank one and asserts its content.
func requireLine(t *testing.T, reader *bufio.Reader, want string) {
	t.Helper()
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		assert.Equal(t, want, line)
		return
	}
}

func TestWebSocketSubscribeAndPing(t *testing.T) {
	fx := newAPIFixture(t)
	id := fx.createMission(t, "ws mission")

	ts := httptest.NewServer(fx.router)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	sock, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer sock.Close(websocket.StatusNormalClosure, "")

	readMessage := func() map[string]any {
		_, data, err := sock.Read(ctx)
		require.NoError(t, err)
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}
	send := func(msg events.ClientMessage) {
		data, err := json.Marshal(msg)
		require.NoError(t, err)
		require.NoError(t, sock.Write(ctx, websocket.MessageText, data))
	}

	msg := readMessage()
	assert.Equal(t, "connection.established", msg["type"])

	channel := events.MissionChannel(id)
	send(events.ClientMessage{Action: "subscribe", Channel: channel})
	msg = readMessage()
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])

	require.Eventually(t, func() bool {
		return fx.bus.SubscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	fx.bus.Publish(channel, map[string]any{
		"type":     events.EventTypeWaveStarted,
		"wave":     1,
		"task_ids": []string{"TASK-001"},
	})
	msg = readMessage()
	assert.Equal(t, events.EventTypeWaveStarted, msg["type"])

	send(events.ClientMessage{Action: "ping"})
	msg = readMessage()
	assert.Equal(t, "pong", msg["type"])

	send(events.ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return fx.bus.SubscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond, "unsubscribe drops the bus subscription")
}
