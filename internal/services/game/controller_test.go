package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/qubicgame/qubic/internal/dependencies/mocks"
	"github.com/qubicgame/qubic/internal/engine"
	"github.com/qubicgame/qubic/internal/model"
	"github.com/qubicgame/qubic/internal/storage/memory"
	"github.com/qubicgame/qubic/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(
		s.storage,
		engine.NewSelector(s.random),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func (s *ControllerSuite) createGame(randomize bool) *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.NewGame(s.ctx, randomize)
	s.Require().NoError(err)
	return game
}

// NewGame tests

func (s *ControllerSuite) TestNewGame() {
	game := s.createGame(false)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.Board{}, game.Board)
	s.Equal(model.Nobody, game.Winner)
	s.Equal(model.DefaultWeights(), game.Weights)
	s.False(game.Randomize)
	s.Equal(s.clock.CurrentTime, game.CreatedAt)
	s.Equal(s.clock.CurrentTime, game.UpdatedAt)
}

func (s *ControllerSuite) TestNewGameWithRandomize() {
	game := s.createGame(true)
	s.True(game.Randomize)
}

func (s *ControllerSuite) TestNewGameIsPersisted() {
	game := s.createGame(false)

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, stored.ID)
}

// GetGame / ListGames / DeleteGame tests

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestListGames() {
	s.random.QueueString("GAMEA", "GAMEB")
	_, err := s.controller.NewGame(s.ctx, false)
	s.Require().NoError(err)
	_, err = s.controller.NewGame(s.ctx, false)
	s.Require().NoError(err)

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{"GAMEA", "GAMEB"}, ids)
}

func (s *ControllerSuite) TestDeleteGame() {
	game := s.createGame(false)

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))

	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// HumanMove tests

func (s *ControllerSuite) TestHumanMove() {
	game := s.createGame(false)
	s.clock.Advance(time.Minute)

	updated, err := s.controller.HumanMove(s.ctx, game.ID, 5)
	s.Require().NoError(err)
	s.Equal(model.Human, updated.Board.At(5))
	s.Equal(model.Nobody, updated.Winner)
	s.Equal(s.clock.CurrentTime, updated.UpdatedAt)
	s.Equal(game.CreatedAt, updated.CreatedAt)
}

func (s *ControllerSuite) TestHumanMoveOutOfRange() {
	game := s.createGame(false)

	_, err := s.controller.HumanMove(s.ctx, game.ID, 64)
	s.ErrorIs(err, model.ErrOutOfRange)

	_, err = s.controller.HumanMove(s.ctx, game.ID, -1)
	s.ErrorIs(err, model.ErrOutOfRange)
}

func (s *ControllerSuite) TestHumanMoveOccupiedCell() {
	game := s.createGame(false)

	_, err := s.controller.HumanMove(s.ctx, game.ID, 5)
	s.Require().NoError(err)

	_, err = s.controller.HumanMove(s.ctx, game.ID, 5)
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ControllerSuite) TestHumanMoveCompletesLine() {
	game := s.createGame(false)

	for _, cell := range []int{0, 1, 2} {
		_, err := s.controller.HumanMove(s.ctx, game.ID, cell)
		s.Require().NoError(err)
	}

	updated, err := s.controller.HumanMove(s.ctx, game.ID, 3)
	s.Require().NoError(err)
	s.Equal(model.Human, updated.Winner)
	s.Equal(model.WinPath{0, 1, 2, 3}, updated.WinPath)
}

func (s *ControllerSuite) TestHumanMoveAfterGameDecided() {
	game := s.createGame(false)

	for _, cell := range []int{0, 1, 2, 3} {
		_, err := s.controller.HumanMove(s.ctx, game.ID, cell)
		s.Require().NoError(err)
	}

	_, err := s.controller.HumanMove(s.ctx, game.ID, 10)
	s.ErrorIs(err, model.ErrGameDecided)
}

func (s *ControllerSuite) TestHumanMoveUnknownGame() {
	_, err := s.controller.HumanMove(s.ctx, "nonexistent", 0)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// MachineMove tests

func (s *ControllerSuite) TestMachineMoveOpensOnStrongCell() {
	game := s.createGame(false)

	cell, updated, err := s.controller.MachineMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, cell)
	s.Equal(model.Machine, updated.Board.At(0))
}

func (s *ControllerSuite) TestMachineMoveBlocksHumanLine() {
	game := s.createGame(false)
	_, err := s.controller.SetBoard(s.ctx, game.ID, "XXX")
	s.Require().NoError(err)

	cell, updated, err := s.controller.MachineMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(3, cell)
	s.Equal(model.Machine, updated.Board.At(3))
}

func (s *ControllerSuite) TestMachineMoveCompletesOwnLine() {
	game := s.createGame(false)
	_, err := s.controller.SetBoard(s.ctx, game.ID, "OOO")
	s.Require().NoError(err)

	cell, updated, err := s.controller.MachineMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(3, cell)
	s.Equal(model.Machine, updated.Winner)
	s.Equal(model.WinPath{0, 1, 2, 3}, updated.WinPath)
}

func (s *ControllerSuite) TestMachineMoveRandomizedUsesGamePolicy() {
	game := s.createGame(true)
	s.random.QueueIntn(4)

	cell, _, err := s.controller.MachineMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(21, cell)
	s.Require().Len(s.random.IntnCalls, 1)
	s.Equal(16, s.random.IntnCalls[0])
}

func (s *ControllerSuite) TestMachineMoveAfterGameDecided() {
	game := s.createGame(false)
	_, err := s.controller.SetBoard(s.ctx, game.ID, "XXXX")
	s.Require().NoError(err)
	_, err = s.controller.RefreshWinner(s.ctx, game.ID)
	s.Require().NoError(err)

	_, _, err = s.controller.MachineMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameDecided)
}

func (s *ControllerSuite) TestMachineMoveUnknownGame() {
	_, _, err := s.controller.MachineMove(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// UndoMove tests

func (s *ControllerSuite) TestUndoMove() {
	game := s.createGame(false)
	_, err := s.controller.HumanMove(s.ctx, game.ID, 5)
	s.Require().NoError(err)

	updated, err := s.controller.UndoMove(s.ctx, game.ID, 5)
	s.Require().NoError(err)
	s.Equal(model.Nobody, updated.Board.At(5))
}

func (s *ControllerSuite) TestUndoMoveEmptyCell() {
	game := s.createGame(false)

	_, err := s.controller.UndoMove(s.ctx, game.ID, 5)
	s.ErrorIs(err, model.ErrCellEmpty)
}

func (s *ControllerSuite) TestUndoMoveOutOfRange() {
	game := s.createGame(false)

	_, err := s.controller.UndoMove(s.ctx, game.ID, 64)
	s.ErrorIs(err, model.ErrOutOfRange)
}

func (s *ControllerSuite) TestUndoMoveLeavesWinnerUntilRefresh() {
	game := s.createGame(false)

	for _, cell := range []int{0, 1, 2, 3} {
		_, err := s.controller.HumanMove(s.ctx, game.ID, cell)
		s.Require().NoError(err)
	}

	// Retracting a winning piece keeps the stale winner until a refresh
	updated, err := s.controller.UndoMove(s.ctx, game.ID, 3)
	s.Require().NoError(err)
	s.Equal(model.Human, updated.Winner)

	refreshed, err := s.controller.RefreshWinner(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.Nobody, refreshed.Winner)
	s.Equal(model.WinPath{}, refreshed.WinPath)
}

// SetWeights / SetRandomize tests

func (s *ControllerSuite) TestSetWeightsChangesSelection() {
	game := s.createGame(false)

	// Invert the machine column so the machine flees strong cells
	w := model.DefaultWeights()
	w[0][1] = 2
	_, err := s.controller.SetWeights(s.ctx, game.ID, w)
	s.Require().NoError(err)

	// Cell 1 lies on only 4 lines; corner cell 0 now scores worse
	cell, _, err := s.controller.MachineMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(1, cell)
}

func (s *ControllerSuite) TestSetRandomize() {
	game := s.createGame(false)
	s.False(game.Randomize)

	updated, err := s.controller.SetRandomize(s.ctx, game.ID, true)
	s.Require().NoError(err)
	s.True(updated.Randomize)
}

// SetBoard / RefreshWinner tests

func (s *ControllerSuite) TestSetBoard() {
	game := s.createGame(false)

	updated, err := s.controller.SetBoard(s.ctx, game.ID, "XO")
	s.Require().NoError(err)
	s.Equal(model.Human, updated.Board.At(0))
	s.Equal(model.Machine, updated.Board.At(1))
}

func (s *ControllerSuite) TestSetBoardRejectsBadEncoding() {
	game := s.createGame(false)

	_, err := s.controller.SetBoard(s.ctx, game.ID, "XQ")
	s.ErrorIs(err, model.ErrBadEncoding)
}

func (s *ControllerSuite) TestSetBoardDefersWinnerToRefresh() {
	game := s.createGame(false)

	loaded, err := s.controller.SetBoard(s.ctx, game.ID, "OOOO")
	s.Require().NoError(err)
	s.Equal(model.Nobody, loaded.Winner)

	refreshed, err := s.controller.RefreshWinner(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.Machine, refreshed.Winner)
	s.Equal(model.WinPath{0, 1, 2, 3}, refreshed.WinPath)
}

// BestMove / EvaluateBoard tests

func (s *ControllerSuite) TestBestMoveForHuman() {
	game := s.createGame(false)
	_, err := s.controller.SetBoard(s.ctx, game.ID, "XXX")
	s.Require().NoError(err)

	cell, err := s.controller.BestMove(s.ctx, game.ID, model.Human)
	s.Require().NoError(err)
	s.Equal(3, cell)
}

func (s *ControllerSuite) TestBestMoveDoesNotMutateGame() {
	game := s.createGame(false)

	_, err := s.controller.BestMove(s.ctx, game.ID, model.Machine)
	s.Require().NoError(err)

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.Board{}, stored.Board)
}

func (s *ControllerSuite) TestBestMoveRejectsNobody() {
	game := s.createGame(false)

	_, err := s.controller.BestMove(s.ctx, game.ID, model.Nobody)
	s.ErrorIs(err, model.ErrInvalidPlayer)
}

func (s *ControllerSuite) TestEvaluateBoard() {
	score, err := s.controller.EvaluateBoard(strings.Repeat(".", 64))
	s.Require().NoError(err)
	s.Equal(0, score)

	score, err = s.controller.EvaluateBoard("O")
	s.Require().NoError(err)
	s.Equal(-14, score)

	score, err = s.controller.EvaluateBoard("X")
	s.Require().NoError(err)
	s.Equal(14, score)
}

func (s *ControllerSuite) TestEvaluateBoardRejectsBadEncoding() {
	_, err := s.controller.EvaluateBoard("Z")
	s.ErrorIs(err, model.ErrBadEncoding)
}
