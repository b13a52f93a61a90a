package engine

import "github.com/qubicgame/qubic/internal/model"

// Tally holds the per-line occupancy counts for one evaluated board. The
// counts are recomputed from scratch on every evaluation rather than
// maintained incrementally: 64 cells with at most 7 lines each is cheap, and
// full recomputation cannot drift out of sync with the board.
type Tally struct {
	human   [NumLines]int
	machine [NumLines]int
}

// Counts returns the (human, machine) piece counts along the given line.
// For any line human+machine <= 4, since every cell has one owner.
func (t *Tally) Counts(id LineID) (human, machine int) {
	return t.human[id], t.machine[id]
}

// TallyBoard counts each player's pieces along every line of the board
func TallyBoard(b model.Board) Tally {
	var t Tally
	for cell := 0; cell < model.BoardSize; cell++ {
		switch b[cell] {
		case model.Human:
			for _, id := range cellLines[cell] {
				t.human[id]++
			}
		case model.Machine:
			for _, id := range cellLines[cell] {
				t.machine[id]++
			}
		}
	}
	return t
}

// Evaluate scores the board by summing, over all 76 lines, the weight for
// that line's occupancy. Lower scores favor the machine. Evaluation is
// deterministic and never mutates the board.
func Evaluate(b model.Board, w model.WeightMatrix) int {
	t := TallyBoard(b)
	score := 0
	for id := 0; id < NumLines; id++ {
		score += w[t.human[id]][t.machine[id]]
	}
	return score
}
