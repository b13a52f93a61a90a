package engine

import (
	"github.com/qubicgame/qubic/internal/dependencies/random"
	"github.com/qubicgame/qubic/internal/model"
)

// Selector chooses machine moves by one-ply greedy lookahead: each empty
// cell is tried on a copy of the board, the result is evaluated, and the
// move with the minimum score wins. There is deliberately no deeper search;
// the engine's playing strength is defined by this single ply.
type Selector struct {
	random random.Random
}

// NewSelector creates a Selector using the given randomness source
func NewSelector(rnd random.Random) *Selector {
	return &Selector{random: rnd}
}

// moveRecord pairs a candidate cell with its evaluated score
type moveRecord struct {
	cell  int
	score int
}

// Choose picks a machine move under the given policy
func (s *Selector) Choose(b model.Board, w model.WeightMatrix, randomize bool) (int, error) {
	if randomize {
		return s.ChooseRandomized(b, w)
	}
	return s.ChooseDeterministic(b, w)
}

// ChooseDeterministic returns the lowest-indexed empty cell whose placement
// yields the strictly smallest one-ply score. Ties go to the first cell in
// index order.
func (s *Selector) ChooseDeterministic(b model.Board, w model.WeightMatrix) (int, error) {
	best := -1
	bestScore := 0
	for cell := 0; cell < model.BoardSize; cell++ {
		if b[cell] != model.Nobody {
			continue
		}
		score := scoreMove(b, w, cell, model.Machine)
		if best < 0 || score < bestScore {
			best = cell
			bestScore = score
		}
	}
	if best < 0 {
		return -1, model.ErrNoLegalMove
	}
	return best, nil
}

// ChooseRandomized collects every empty cell whose one-ply score equals the
// global minimum and picks uniformly among them. A new strict minimum resets
// the tie set.
func (s *Selector) ChooseRandomized(b model.Board, w model.WeightMatrix) (int, error) {
	var ties []moveRecord
	for cell := 0; cell < model.BoardSize; cell++ {
		if b[cell] != model.Nobody {
			continue
		}
		score := scoreMove(b, w, cell, model.Machine)
		switch {
		case len(ties) == 0 || score < ties[0].score:
			ties = append(ties[:0], moveRecord{cell: cell, score: score})
		case score == ties[0].score:
			ties = append(ties, moveRecord{cell: cell, score: score})
		}
	}
	if len(ties) == 0 {
		return -1, model.ErrNoLegalMove
	}
	return ties[s.random.Intn(len(ties))].cell, nil
}

// BestMoveFor returns the best one-ply move for either side without mutating
// the board: the machine minimizes the score, the human maximizes it.
func (s *Selector) BestMoveFor(b model.Board, w model.WeightMatrix, p model.Player) (int, error) {
	if p != model.Machine && p != model.Human {
		return -1, model.ErrInvalidPlayer
	}
	best := -1
	bestScore := 0
	for cell := 0; cell < model.BoardSize; cell++ {
		if b[cell] != model.Nobody {
			continue
		}
		score := scoreMove(b, w, cell, p)
		better := score < bestScore
		if p == model.Human {
			better = score > bestScore
		}
		if best < 0 || better {
			best = cell
			bestScore = score
		}
	}
	if best < 0 {
		return -1, model.ErrNoLegalMove
	}
	return best, nil
}

// scoreMove evaluates the board that results from p playing the given cell.
// The board argument is a value, so the placement happens on an independent
// copy and the caller's board is untouched.
func scoreMove(b model.Board, w model.WeightMatrix, cell int, p model.Player) int {
	b[cell] = p
	return Evaluate(b, w)
}
