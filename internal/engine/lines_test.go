package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubicgame/qubic/internal/model"
)

func TestLineTableCovers76DistinctLines(t *testing.T) {
	seen := make(map[[model.WinLength]int]bool, NumLines)
	for id := LineID(0); id < NumLines; id++ {
		cells := sortedCells(CellsOf(id))
		assert.False(t, seen[cells], "line %d duplicates an earlier line", id)
		seen[cells] = true
	}
	assert.Len(t, seen, NumLines)
}

func TestEveryCellLiesOn4To7Lines(t *testing.T) {
	total := 0
	for cell := 0; cell < model.BoardSize; cell++ {
		lines := LinesThrough(cell)
		require.NotEmpty(t, lines, "cell %d", cell)
		assert.GreaterOrEqual(t, len(lines), 4, "cell %d", cell)
		assert.LessOrEqual(t, len(lines), 7, "cell %d", cell)
		total += len(lines)
	}
	// 76 lines of 4 cells each
	assert.Equal(t, NumLines*model.WinLength, total)
}

func TestCornerCellLiesOn7Lines(t *testing.T) {
	// Cell 0 is a cube corner: row, column, layer diagonal, pillar,
	// two plane diagonals and a space diagonal.
	assert.Len(t, LinesThrough(0), 7)
}

func TestEdgeCellLiesOn4Lines(t *testing.T) {
	// Cell 1 is a face cell: row, column, pillar, column-plane diagonal.
	assert.Len(t, LinesThrough(1), 4)
}

func TestLinesThroughRejectsInvalidCell(t *testing.T) {
	assert.Nil(t, LinesThrough(-1))
	assert.Nil(t, LinesThrough(model.BoardSize))
}

func TestKnownLines(t *testing.T) {
	// First row of the first layer
	assert.Equal(t, [model.WinLength]int{0, 1, 2, 3}, CellsOf(0))
	// First column of the first layer
	assert.Equal(t, [model.WinLength]int{0, 4, 8, 12}, CellsOf(16))
	// Main space diagonal
	assert.Equal(t, [model.WinLength]int{0, 21, 42, 63}, CellsOf(72))
}

func TestLinesStayWithinOneGeometricAxis(t *testing.T) {
	// Every line must be a straight segment: cell coordinates along the
	// line change by a constant step per axis.
	for id := LineID(0); id < NumLines; id++ {
		cells := CellsOf(id)
		l0, r0, c0 := model.Coords(cells[0])
		l1, r1, c1 := model.Coords(cells[1])
		dl, dr, dc := l1-l0, r1-r0, c1-c0
		for k := 2; k < model.WinLength; k++ {
			lk, rk, ck := model.Coords(cells[k])
			assert.Equal(t, l0+k*dl, lk, "line %d", id)
			assert.Equal(t, r0+k*dr, rk, "line %d", id)
			assert.Equal(t, c0+k*dc, ck, "line %d", id)
		}
	}
}
