package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCell(t *testing.T) {
	assert.True(t, ValidCell(0))
	assert.True(t, ValidCell(63))
	assert.False(t, ValidCell(-1))
	assert.False(t, ValidCell(64))
}

func TestCoordsRoundTrip(t *testing.T) {
	for cell := 0; cell < BoardSize; cell++ {
		layer, row, col := Coords(cell)
		assert.Equal(t, cell, CellIndex(layer, row, col))
	}
}

func TestCoordsKnownCells(t *testing.T) {
	layer, row, col := Coords(0)
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{layer, row, col})

	layer, row, col = Coords(21)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{layer, row, col})

	layer, row, col = Coords(63)
	assert.Equal(t, [3]int{3, 3, 3}, [3]int{layer, row, col})
}

func TestBoardSetAndAt(t *testing.T) {
	var b Board
	b.Set(5, Human)

	assert.Equal(t, Human, b.At(5))
	assert.Equal(t, Nobody, b.At(6))
	assert.False(t, b.IsEmpty(5))
	assert.True(t, b.IsEmpty(6))
}

func TestBoardAtOutOfRangeIsNobody(t *testing.T) {
	var b Board
	assert.Equal(t, Nobody, b.At(-1))
	assert.Equal(t, Nobody, b.At(BoardSize))
}

func TestBoardIsFullAndEmptyCount(t *testing.T) {
	var b Board
	assert.False(t, b.IsFull())
	assert.Equal(t, BoardSize, b.EmptyCount())

	for cell := 0; cell < BoardSize; cell++ {
		b.Set(cell, Machine)
	}
	assert.True(t, b.IsFull())
	assert.Equal(t, 0, b.EmptyCount())
}

func TestBoardAssignmentIsIndependentCopy(t *testing.T) {
	var b Board
	b.Set(0, Human)

	copied := b
	copied.Set(1, Machine)

	assert.Equal(t, Nobody, b.At(1))
	assert.Equal(t, Machine, copied.At(1))
}

func TestPlayerString(t *testing.T) {
	assert.Equal(t, "nobody", Nobody.String())
	assert.Equal(t, "machine", Machine.String())
	assert.Equal(t, "human", Human.String())
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer("human")
	require.NoError(t, err)
	assert.Equal(t, Human, p)

	p, err = ParsePlayer("machine")
	require.NoError(t, err)
	assert.Equal(t, Machine, p)

	_, err = ParsePlayer("alien")
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}
