// Package notation converts boards to and from their textual
// representations: the 64-symbol encoding, winning-line overlays, 1-based
// move lists and the layered display format.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qubicgame/qubic/internal/model"
)

// WinnerOverlay renders the board with the winning line's 4 cells marked by
// '*'. With no winner decided it is the plain board encoding.
func WinnerOverlay(b model.Board, winner model.Player, path model.WinPath) string {
	encoded := b.Encode()
	if winner == model.Nobody {
		return encoded
	}
	buf := []byte(encoded)
	for _, cell := range path {
		if model.ValidCell(cell) {
			buf[cell] = model.SymbolWin
		}
	}
	return string(buf)
}

// BoardFromMoveLists builds a board from whitespace-separated 1-based move
// lists, one per player. This is a representation conversion only; legality
// of the sequence is not checked beyond cell ownership.
func BoardFromMoveLists(humanMoves, machineMoves string) (model.Board, error) {
	var b model.Board
	if err := applyMoveList(&b, humanMoves, model.Human); err != nil {
		return model.Board{}, err
	}
	if err := applyMoveList(&b, machineMoves, model.Machine); err != nil {
		return model.Board{}, err
	}
	return b, nil
}

func applyMoveList(b *model.Board, moves string, p model.Player) error {
	for _, tok := range strings.Fields(moves) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("%w: move %q is not a number", model.ErrBadEncoding, tok)
		}
		cell := n - 1 // move lists are 1-based
		if !model.ValidCell(cell) {
			return fmt.Errorf("%w: move %d", model.ErrOutOfRange, n)
		}
		if !b.IsEmpty(cell) {
			return fmt.Errorf("%w: move %d given twice", model.ErrCellOccupied, n)
		}
		b.Set(cell, p)
	}
	return nil
}

// Layers renders an encoded board (or overlay) as four 4x4 grids, one per
// layer, for console display. Input shorter than 64 symbols is padded with
// empty cells.
func Layers(encoded string) string {
	for len(encoded) < model.BoardSize {
		encoded += string(model.SymbolEmpty)
	}

	var sb strings.Builder
	for layer := 0; layer < model.Dim; layer++ {
		fmt.Fprintf(&sb, "Layer %d\n", layer)
		for row := 0; row < model.Dim; row++ {
			sb.WriteString("  ")
			for col := 0; col < model.Dim; col++ {
				if col > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteByte(encoded[model.CellIndex(layer, row, col)])
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
