// Package handler implements the API endpoint handlers
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/qubicgame/qubic/internal/api/apierr"
	"github.com/qubicgame/qubic/internal/api/request"
	"github.com/qubicgame/qubic/internal/api/response"
	"github.com/qubicgame/qubic/internal/model"
	"github.com/qubicgame/qubic/internal/notation"
	"github.com/qubicgame/qubic/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGame
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
			return
		}
	}

	g, err := h.gameController.NewGame(r.Context(), req.Randomize)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]string, len(ids))}
	for i, id := range ids {
		resp.Games[i] = string(id)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.HumanMove
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
		return
	}

	g, err := h.gameController.HumanMove(r.Context(), id, req.Cell)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// MachineMove handles POST /api/v1/games/{id}/machine-move
func (h *GameHandler) MachineMove(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	cell, g, err := h.gameController.MachineMove(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MachineMove{
		Cell: cell,
		Game: response.GameFromModel(g),
	})
}

// Undo handles DELETE /api/v1/games/{id}/moves/{cell}
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.GameID(vars["id"])

	cell, err := strconv.Atoi(vars["cell"])
	if err != nil {
		apierr.WriteError(w, apierr.BadRequest("cell must be an integer"))
		return
	}

	g, err := h.gameController.UndoMove(r.Context(), id, cell)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Refresh handles POST /api/v1/games/{id}/refresh-winner
func (h *GameHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.RefreshWinner(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SetWeights handles PUT /api/v1/games/{id}/weights
func (h *GameHandler) SetWeights(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SetWeights
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
		return
	}

	g, err := h.gameController.SetWeights(r.Context(), id, model.WeightMatrix(req.Weights))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SetRandomize handles PUT /api/v1/games/{id}/randomize
func (h *GameHandler) SetRandomize(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SetRandomize
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
		return
	}

	g, err := h.gameController.SetRandomize(r.Context(), id, req.Randomize)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SetBoard handles PUT /api/v1/games/{id}/board
func (h *GameHandler) SetBoard(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SetBoard
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
		return
	}

	g, err := h.gameController.SetBoard(r.Context(), id, req.Board)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// BestMove handles GET /api/v1/games/{id}/best-move?player=human|machine
func (h *GameHandler) BestMove(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	playerName := r.URL.Query().Get("player")
	if playerName == "" {
		playerName = model.Machine.String()
	}
	player, err := model.ParsePlayer(playerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	cell, err := h.gameController.BestMove(r.Context(), id, player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BestMove{
		Player: player.String(),
		Cell:   cell,
	})
}

// Overlay handles GET /api/v1/games/{id}/overlay
func (h *GameHandler) Overlay(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Overlay{
		Board: notation.WinnerOverlay(g.Board, g.Winner, g.WinPath),
	})
}

// Evaluate handles POST /api/v1/evaluate
func (h *GameHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req request.Evaluate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.BadRequest("invalid JSON body"))
		return
	}

	score, err := h.gameController.EvaluateBoard(req.Board)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Evaluation{Score: score})
}
