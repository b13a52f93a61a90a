// Package game orchestrates game sessions: it owns the turn flow between
// human and machine moves and keeps each game's winner state in step with
// its board.
package game

import (
	"context"
	"log/slog"

	"github.com/qubicgame/qubic/internal/dependencies/clock"
	"github.com/qubicgame/qubic/internal/dependencies/random"
	"github.com/qubicgame/qubic/internal/engine"
	"github.com/qubicgame/qubic/internal/model"
	"github.com/qubicgame/qubic/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages game records and turn flow. Games are independent
// persisted records; callers are expected to serialize access per game.
type Controller struct {
	storage  storage.Storage
	selector *engine.Selector
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	selector *engine.Selector,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		selector: selector,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// NewGame creates a fresh game: empty board, default weights, no winner
func (c *Controller) NewGame(ctx context.Context, randomize bool) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		Weights:   model.DefaultWeights(),
		Randomize: randomize,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Bool("randomize", randomize),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// ListGames returns the ids of all stored games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGameIDs(ctx)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	return c.storage.DeleteGame(ctx, id)
}

// HumanMove places a human piece on the given cell. The board is left
// untouched when the cell is out of range, occupied, or the game is already
// decided.
func (c *Controller) HumanMove(ctx context.Context, id model.GameID, cell int) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.ValidCell(cell) {
		return nil, model.ErrOutOfRange
	}
	if !game.InProgress() {
		return nil, model.ErrGameDecided
	}
	if !game.Board.IsEmpty(cell) {
		return nil, model.ErrCellOccupied
	}

	game.Board.Set(cell, model.Human)
	return c.settleMove(ctx, game)
}

// MachineMove lets the machine choose and play a move under the game's
// selection policy. It returns the chosen cell. No move is made when the
// game is already decided or the board is full.
func (c *Controller) MachineMove(ctx context.Context, id model.GameID) (int, *model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return -1, nil, err
	}

	if !game.InProgress() {
		return -1, nil, model.ErrGameDecided
	}

	cell, err := c.selector.Choose(game.Board, game.Weights, game.Randomize)
	if err != nil {
		return -1, nil, err
	}

	game.Board.Set(cell, model.Machine)
	game, err = c.settleMove(ctx, game)
	if err != nil {
		return -1, nil, err
	}

	c.logger.Info("machine moved",
		slog.String("game_id", string(game.ID)),
		slog.Int("cell", cell),
		slog.String("winner", game.Winner.String()),
	)

	return cell, game, nil
}

// UndoMove clears an occupied cell back to empty. The winner is deliberately
// not recomputed here, since an undo can retract a completed line; callers
// follow up with RefreshWinner when they need the state re-validated.
func (c *Controller) UndoMove(ctx context.Context, id model.GameID, cell int) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.ValidCell(cell) {
		return nil, model.ErrOutOfRange
	}
	if game.Board.IsEmpty(cell) {
		return nil, model.ErrCellEmpty
	}

	game.Board.Set(cell, model.Nobody)
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// RefreshWinner re-runs win detection on the current board and stores the
// result, clearing a winner that no longer holds.
func (c *Controller) RefreshWinner(ctx context.Context, id model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.settleMove(ctx, game)
}

// SetWeights replaces the game's evaluation weights
func (c *Controller) SetWeights(ctx context.Context, id model.GameID, w model.WeightMatrix) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	game.Weights = w
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// SetRandomize switches the machine's move policy
func (c *Controller) SetRandomize(ctx context.Context, id model.GameID, randomize bool) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	game.Randomize = randomize
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// SetBoard replaces the game's board from an external encoding. Only the
// encoding shape is validated; winner state is not recomputed until the next
// move or RefreshWinner.
func (c *Controller) SetBoard(ctx context.Context, id model.GameID, encoded string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	board, err := model.DecodeBoard(encoded)
	if err != nil {
		return nil, err
	}

	game.Board = board
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// BestMove returns the best one-ply move for the given player as a hint,
// without making a move or mutating any state.
func (c *Controller) BestMove(ctx context.Context, id model.GameID, p model.Player) (int, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return -1, err
	}
	return c.selector.BestMoveFor(game.Board, game.Weights, p)
}

// EvaluateBoard scores an arbitrary externally supplied board with the
// default weights. It is a pure query and never touches a live game.
func (c *Controller) EvaluateBoard(encoded string) (int, error) {
	board, err := model.DecodeBoard(encoded)
	if err != nil {
		return 0, err
	}
	return engine.Evaluate(board, model.DefaultWeights()), nil
}

// settleMove runs win detection on the game's board and persists the game
func (c *Controller) settleMove(ctx context.Context, game *model.Game) (*model.Game, error) {
	game.Winner, game.WinPath = engine.DetectWinner(game.Board)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if !game.InProgress() {
		c.logger.Info("game decided",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", game.Winner.String()),
		)
	}
	return game, nil
}
