package model

// Board geometry constants for the 4x4x4 cube
const (
	// Dim is the edge length of the cube
	Dim = 4
	// BoardSize is the total number of cells (4 layers of 4x4)
	BoardSize = Dim * Dim * Dim
	// WinLength is the number of cells that make up a winning line
	WinLength = 4
)

// Player identifies who occupies a cell or has won a game.
// Nobody doubles as the empty cell state.
type Player uint8

const (
	Nobody Player = iota
	Machine
	Human
)

// String returns a lowercase name for the player
func (p Player) String() string {
	switch p {
	case Machine:
		return "machine"
	case Human:
		return "human"
	default:
		return "nobody"
	}
}

// ParsePlayer converts a player name back to a Player
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "machine":
		return Machine, nil
	case "human":
		return Human, nil
	case "nobody":
		return Nobody, nil
	default:
		return Nobody, ErrInvalidPlayer
	}
}

// Board is the full 4x4x4 game board, indexed 0-63 in layer-major order:
// layer = i/16, row = (i%16)/4, col = i%4.
//
// Board is a value type. Plain assignment produces the fully independent
// deep copy that look-ahead evaluation requires; a hypothetical board never
// aliases the live one.
type Board [BoardSize]Player

// ValidCell returns true if the cell index is within the board
func ValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// At returns the occupant of the given cell, or Nobody if out of range
func (b Board) At(cell int) Player {
	if !ValidCell(cell) {
		return Nobody
	}
	return b[cell]
}

// Set places a player on the given cell; out-of-range indices are ignored
func (b *Board) Set(cell int, p Player) {
	if ValidCell(cell) {
		b[cell] = p
	}
}

// IsEmpty returns true if the cell is unoccupied
func (b Board) IsEmpty(cell int) bool {
	return b.At(cell) == Nobody
}

// IsFull returns true if no empty cell remains
func (b Board) IsFull() bool {
	for _, p := range b {
		if p == Nobody {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of unoccupied cells
func (b Board) EmptyCount() int {
	count := 0
	for _, p := range b {
		if p == Nobody {
			count++
		}
	}
	return count
}

// Coords translates a cell index into (layer, row, col)
func Coords(cell int) (layer, row, col int) {
	return cell / (Dim * Dim), (cell % (Dim * Dim)) / Dim, cell % Dim
}

// CellIndex translates (layer, row, col) into a cell index
func CellIndex(layer, row, col int) int {
	return layer*Dim*Dim + row*Dim + col
}
