package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numbergamble-go/internal/api"
	"github.com/mcoot/numbergamble-go/internal/api/response"
	"github.com/mcoot/numbergamble-go/internal/factory"
	"github.com/mcoot/numbergamble-go/internal/model"
)

const (
	testCreator = "0xcccccccccccccccccccccccccccccccccccccccc"
	testPlayer1 = "0x1111111111111111111111111111111111111111"
	testPlayer2 = "0x2222222222222222222222222222222222222222"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	app.Fund(model.JoinFee*10, testCreator, testPlayer1, testPlayer2)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		RegistryController: app.RegistryController,
		SessionController:  app.SessionController,
		HubManager:         app.HubManager,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, account string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set("X-Account", account)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createGame creates a two-seat game and returns its response view
func (ts *testServer) createGame(t *testing.T, capacity int) response.Game {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": capacity}, testCreator)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, 2)
	assert.Equal(t, uint64(1), game.ID)
	assert.Equal(t, testCreator, game.Creator)
	assert.Equal(t, "waiting", game.State)
	assert.Empty(t, game.Players)
}

func TestCreateGameRequiresAccount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": 2}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
}

func TestCreateGameInvalidAccount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": 2}, "not-an-address")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_ACCOUNT")
}

func TestCreateGameInvalidCapacity(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": 7}, testCreator)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CAPACITY")
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/42", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestListAndCount(t *testing.T) {
	ts := newTestServer(t)

	ts.createGame(t, 2)
	ts.createGame(t, 3)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Games, 2)

	rr = ts.request(http.MethodGet, "/api/v1/games/count", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var count response.GameCount
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &count))
	assert.Equal(t, uint64(2), count.Count)
}

func TestJoinFlow(t *testing.T) {
	ts := newTestServer(t)
	game := ts.createGame(t, 2)

	// Wrong fee is rejected
	rr := ts.request(http.MethodPost, "/api/v1/games/1/join", map[string]uint64{"payment": 1}, testPlayer1)
	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_AMOUNT")

	// Correct fee seats the player
	rr = ts.request(http.MethodPost, "/api/v1/games/1/join", map[string]uint64{"payment": model.JoinFee}, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var joined response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &joined))
	require.Len(t, joined.Players, 1)
	assert.Equal(t, testPlayer1, joined.Players[0].Account)
	assert.Equal(t, model.JoinFee, joined.Pot)

	// Double join is rejected
	rr = ts.request(http.MethodPost, "/api/v1/games/1/join", map[string]uint64{"payment": model.JoinFee}, testPlayer1)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ALREADY_JOINED")

	_ = game
}

func TestFullGameOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, 2)

	joinBody := map[string]uint64{"payment": model.JoinFee}
	rr := ts.request(http.MethodPost, "/api/v1/games/1/join", joinBody, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = ts.request(http.MethodPost, "/api/v1/games/1/join", joinBody, testPlayer2)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Only the creator can start
	rr = ts.request(http.MethodPost, "/api/v1/games/1/start", nil, testPlayer1)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_CREATOR")

	rr = ts.request(http.MethodPost, "/api/v1/games/1/start", nil, testCreator)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var started response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &started))
	assert.Equal(t, "started", started.State)
	assert.Empty(t, started.Seed, "seed stays hidden until the game finishes")

	// Members can read their sealed handles
	rr = ts.request(http.MethodGet, "/api/v1/games/1/rolls", nil, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var handles response.Handles
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &handles))
	assert.Len(t, handles.Handles, model.HandleCount)

	// Non-members cannot
	rr = ts.request(http.MethodGet, "/api/v1/games/1/rolls", nil, testCreator)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_MEMBER")

	// Decisions
	rr = ts.request(http.MethodPost, "/api/v1/games/1/decide",
		map[string]any{"continuing": true, "payment": model.ContinueFee}, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = ts.request(http.MethodPost, "/api/v1/games/1/decide",
		map[string]any{"continuing": false}, testPlayer2)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var ready response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ready))
	assert.Equal(t, "ready", ready.State)

	// Resolution needs an identified caller, and only the creator's
	// request is honored
	rr = ts.request(http.MethodPost, "/api/v1/games/1/resolve", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")

	rr = ts.request(http.MethodPost, "/api/v1/games/1/resolve", nil, testPlayer1)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_CREATOR")

	rr = ts.request(http.MethodPost, "/api/v1/games/1/resolve", nil, testCreator)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var finished response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &finished))
	assert.Equal(t, "finished", finished.State)
	assert.Equal(t, testPlayer1, finished.Winner)
	assert.NotEmpty(t, finished.Seed, "seed disclosed for audit once finished")
	require.Len(t, finished.Rolls, 1)
	assert.Equal(t, testPlayer1, finished.Rolls[0].Account)
	assert.Len(t, finished.Rolls[0].Rolls, model.HandleCount)
}

func TestPlayersEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, 2)

	rr := ts.request(http.MethodPost, "/api/v1/games/1/join", map[string]uint64{"payment": model.JoinFee}, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = ts.request(http.MethodGet, "/api/v1/games/1/players", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var players []response.PlayerRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "undecided", players[0].Decision)

	rr = ts.request(http.MethodGet, "/api/v1/games/1/players/"+testPlayer1, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var record response.PlayerRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, testPlayer1, record.Account)

	rr = ts.request(http.MethodGet, "/api/v1/games/1/players/"+testPlayer2, nil, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_MEMBER")
}

func TestDecideBeforeStart(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, 2)

	rr := ts.request(http.MethodPost, "/api/v1/games/1/join", map[string]uint64{"payment": model.JoinFee}, testPlayer1)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/1/decide",
		map[string]any{"continuing": true, "payment": model.ContinueFee}, testPlayer1)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_STARTED")
}
