// Package engine implements the decision core of the 4x4x4 tic-tac-toe
// machine player: the winning-line geometry, the weighted board evaluator,
// win detection, and one-ply greedy move selection.
package engine

import (
	"fmt"

	"github.com/qubicgame/qubic/internal/model"
)

// LineID identifies one of the straight 4-cell lines of the cube.
type LineID int

// NumLines is the number of distinct winning lines on a 4x4x4 board:
// 16 rows, 16 columns, 8 in-layer diagonals, 16 pillars, 8 row-plane
// diagonals, 8 column-plane diagonals and 4 space diagonals.
const NumLines = 76

// The line table is the single source of truth for both scoring and win
// detection. It is generated once at startup and never mutated.
//
// Line ids are assigned in generation order:
//
//	0-15   rows         (layer-major, then row)
//	16-31  columns      (layer-major, then col)
//	32-39  in-layer diagonals (two per layer)
//	40-55  pillars      (row-major through all layers)
//	56-63  row-plane diagonals (two per row)
//	64-71  column-plane diagonals (two per col)
//	72-75  space diagonals
var (
	lineCells [NumLines][model.WinLength]int
	cellLines [model.BoardSize][]LineID
)

func init() {
	buildLines()
	if err := validateLines(); err != nil {
		panic(fmt.Sprintf("engine: invalid line table: %v", err))
	}
}

func buildLines() {
	id := 0
	add := func(cells [model.WinLength]int) {
		lineCells[id] = cells
		for _, c := range cells {
			cellLines[c] = append(cellLines[c], LineID(id))
		}
		id++
	}

	// Rows and columns within each layer
	for layer := 0; layer < model.Dim; layer++ {
		for row := 0; row < model.Dim; row++ {
			var cells [model.WinLength]int
			for col := 0; col < model.Dim; col++ {
				cells[col] = model.CellIndex(layer, row, col)
			}
			add(cells)
		}
	}
	for layer := 0; layer < model.Dim; layer++ {
		for col := 0; col < model.Dim; col++ {
			var cells [model.WinLength]int
			for row := 0; row < model.Dim; row++ {
				cells[row] = model.CellIndex(layer, row, col)
			}
			add(cells)
		}
	}

	// Diagonals within each layer
	for layer := 0; layer < model.Dim; layer++ {
		var main, anti [model.WinLength]int
		for k := 0; k < model.Dim; k++ {
			main[k] = model.CellIndex(layer, k, k)
			anti[k] = model.CellIndex(layer, k, model.Dim-1-k)
		}
		add(main)
		add(anti)
	}

	// Pillars through all four layers
	for row := 0; row < model.Dim; row++ {
		for col := 0; col < model.Dim; col++ {
			var cells [model.WinLength]int
			for layer := 0; layer < model.Dim; layer++ {
				cells[layer] = model.CellIndex(layer, row, col)
			}
			add(cells)
		}
	}

	// Diagonals in the vertical plane of each row
	for row := 0; row < model.Dim; row++ {
		var main, anti [model.WinLength]int
		for k := 0; k < model.Dim; k++ {
			main[k] = model.CellIndex(k, row, k)
			anti[k] = model.CellIndex(k, row, model.Dim-1-k)
		}
		add(main)
		add(anti)
	}

	// Diagonals in the vertical plane of each column
	for col := 0; col < model.Dim; col++ {
		var main, anti [model.WinLength]int
		for k := 0; k < model.Dim; k++ {
			main[k] = model.CellIndex(k, k, col)
			anti[k] = model.CellIndex(k, model.Dim-1-k, col)
		}
		add(main)
		add(anti)
	}

	// Space diagonals corner to corner
	var d1, d2, d3, d4 [model.WinLength]int
	for k := 0; k < model.Dim; k++ {
		d1[k] = model.CellIndex(k, k, k)
		d2[k] = model.CellIndex(k, k, model.Dim-1-k)
		d3[k] = model.CellIndex(k, model.Dim-1-k, k)
		d4[k] = model.CellIndex(k, model.Dim-1-k, model.Dim-1-k)
	}
	add(d1)
	add(d2)
	add(d3)
	add(d4)
}

// validateLines checks the generated geometry: every line in range and
// distinct as a cell set, every cell on at least one line.
func validateLines() error {
	seen := make(map[[model.WinLength]int]LineID, NumLines)
	for id := 0; id < NumLines; id++ {
		cells := lineCells[id]
		for _, c := range cells {
			if !model.ValidCell(c) {
				return fmt.Errorf("line %d references cell %d", id, c)
			}
		}
		key := sortedCells(cells)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("line %d duplicates line %d", id, prev)
		}
		seen[key] = LineID(id)
	}
	for cell, lines := range cellLines {
		if len(lines) == 0 {
			return fmt.Errorf("cell %d is on no line", cell)
		}
	}
	return nil
}

func sortedCells(cells [model.WinLength]int) [model.WinLength]int {
	// Insertion sort; the array is 4 wide
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j] < cells[j-1]; j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
	return cells
}

// CellsOf returns the 4 cell indices of the given line
func CellsOf(id LineID) [model.WinLength]int {
	return lineCells[id]
}

// LinesThrough returns the ids of every line passing through the given cell,
// between 4 and 7 of them. The returned slice is shared and must not be
// modified.
func LinesThrough(cell int) []LineID {
	if !model.ValidCell(cell) {
		return nil
	}
	return cellLines[cell]
}
