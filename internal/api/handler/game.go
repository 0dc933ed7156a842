package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/numbergamble-go/internal/api/middleware"
	"github.com/mcoot/numbergamble-go/internal/api/request"
	"github.com/mcoot/numbergamble-go/internal/api/response"
	"github.com/mcoot/numbergamble-go/internal/api/sse"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/registry"
	"github.com/mcoot/numbergamble-go/internal/session"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	registry   *registry.Controller
	session    *session.Controller
	hubManager *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	registryController *registry.Controller,
	sessionController *session.Controller,
	hubManager *sse.HubManager,
) *GameHandler {
	return &GameHandler{
		registry:   registryController,
		session:    sessionController,
		hubManager: hubManager,
	}
}

// gameID extracts and parses the game id path variable
func gameID(r *http.Request) (model.GameID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("game id must be a positive integer")
	}
	return model.GameID(id), nil
}

// gameResponse builds the response view of a game, attaching the
// revealed rolls once the game has finished
func (h *GameHandler) gameResponse(r *http.Request, g *model.Game) response.Game {
	var revealed []session.PlayerRolls
	if g.State == model.GameStateFinished {
		revealed, _ = h.session.Rolls(r.Context(), g.ID)
	}
	return response.GameFromModel(g, revealed)
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.registry.CreateGame(r.Context(), account, req.Capacity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.gameResponse(r, g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.registry.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.Game, 0, len(games))}
	for _, g := range games {
		resp.Games = append(resp.Games, h.gameResponse(r, g))
	}
	response.JSON(w, http.StatusOK, resp)
}

// Count handles GET /api/v1/games/count
func (h *GameHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.registry.GameCount(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameCount{Count: count})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.registry.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameResponse(r, g))
}

// Players handles GET /api/v1/games/{id}/players
func (h *GameHandler) Players(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.registry.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	players := make([]response.PlayerRecord, 0, len(g.Players))
	for _, account := range g.Players {
		if record, ok := g.Records[account]; ok {
			players = append(players, response.PlayerRecordFromModel(account, record))
		}
	}
	response.JSON(w, http.StatusOK, players)
}

// Player handles GET /api/v1/games/{id}/players/{account}
func (h *GameHandler) Player(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	account, err := model.ParseAccountID(mux.Vars(r)["account"])
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.registry.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	record, ok := g.Records[account]
	if !ok {
		WriteError(w, model.ErrNotMember)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerRecordFromModel(account, record))
}

// Rolls handles GET /api/v1/games/{id}/rolls
// Returns the caller's sealed handles
func (h *GameHandler) Rolls(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	handles, err := h.session.Handles(r.Context(), id, account)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HandlesFromModel(account, handles))
}

// Join handles POST /api/v1/games/{id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.session.Join(r.Context(), id, account, req.Payment)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameResponse(r, g))
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.session.Start(r.Context(), id, account)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameResponse(r, g))
}

// Decide handles POST /api/v1/games/{id}/decide
func (h *GameHandler) Decide(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var g *model.Game
	if req.Continuing {
		g, err = h.session.Continue(r.Context(), id, account, req.Payment)
	} else {
		g, err = h.session.Fold(r.Context(), id, account, req.Payment)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameResponse(r, g))
}

// Resolve handles POST /api/v1/games/{id}/resolve
func (h *GameHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.session.Resolve(r.Context(), id, account)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameResponse(r, g))
}

// Events handles GET /api/v1/games/{id}/events
// Streams game events to the client over SSE
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The game must exist before we open a stream for it
	if _, err := h.registry.GetGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, middleware.GetAccount(r.Context()))
}
