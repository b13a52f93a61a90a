package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubicgame/qubic/internal/model"
)

func TestWinnerOverlayMarksWinningCells(t *testing.T) {
	var b model.Board
	for _, cell := range []int{0, 1, 2, 3} {
		b.Set(cell, model.Machine)
	}

	overlay := WinnerOverlay(b, model.Machine, model.WinPath{0, 1, 2, 3})
	assert.Equal(t, "****"+strings.Repeat(".", 60), overlay)
}

func TestWinnerOverlayWithoutWinnerIsPlainEncoding(t *testing.T) {
	var b model.Board
	b.Set(5, model.Human)

	overlay := WinnerOverlay(b, model.Nobody, model.WinPath{})
	assert.Equal(t, b.Encode(), overlay)
	assert.NotContains(t, overlay, "*")
}

func TestWinnerOverlayLeavesOtherPiecesVisible(t *testing.T) {
	var b model.Board
	for _, cell := range []int{0, 4, 8, 12} {
		b.Set(cell, model.Human)
	}
	b.Set(1, model.Machine)

	overlay := WinnerOverlay(b, model.Human, model.WinPath{0, 4, 8, 12})
	assert.Equal(t, byte('*'), overlay[0])
	assert.Equal(t, byte('*'), overlay[4])
	assert.Equal(t, byte('O'), overlay[1])
}

func TestBoardFromMoveLists(t *testing.T) {
	b, err := BoardFromMoveLists("1 22 64", "2 33")
	require.NoError(t, err)

	assert.Equal(t, model.Human, b.At(0))
	assert.Equal(t, model.Human, b.At(21))
	assert.Equal(t, model.Human, b.At(63))
	assert.Equal(t, model.Machine, b.At(1))
	assert.Equal(t, model.Machine, b.At(32))
	assert.Equal(t, model.BoardSize-5, b.EmptyCount())
}

func TestBoardFromMoveListsEmptyLists(t *testing.T) {
	b, err := BoardFromMoveLists("", "")
	require.NoError(t, err)
	assert.Equal(t, model.Board{}, b)
}

func TestBoardFromMoveListsRejectsOutOfRange(t *testing.T) {
	_, err := BoardFromMoveLists("65", "")
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	_, err = BoardFromMoveLists("0", "")
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func TestBoardFromMoveListsRejectsRepeatedCell(t *testing.T) {
	_, err := BoardFromMoveLists("5", "5")
	assert.ErrorIs(t, err, model.ErrCellOccupied)
}

func TestBoardFromMoveListsRejectsNonNumeric(t *testing.T) {
	_, err := BoardFromMoveLists("first", "")
	assert.ErrorIs(t, err, model.ErrBadEncoding)
}

func TestLayersRendersFourGrids(t *testing.T) {
	var b model.Board
	b.Set(0, model.Human)
	b.Set(63, model.Machine)

	out := Layers(b.Encode())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, "Layer 0", lines[0])
	assert.Equal(t, "  X . . .", lines[1])
	assert.Equal(t, "Layer 3", lines[15])
	assert.Equal(t, "  . . . O", lines[19])
}

func TestLayersPadsShortInput(t *testing.T) {
	out := Layers("X")
	assert.True(t, strings.HasPrefix(out, "Layer 0\n  X . . .\n"))
	assert.Contains(t, out, "Layer 3")
}
