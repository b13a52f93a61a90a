package model

import "fmt"

// Board encoding symbols. Decoding also accepts '_' and ' ' for empty cells,
// which older encodings of the same board format used.
const (
	SymbolHuman   = 'X'
	SymbolMachine = 'O'
	SymbolEmpty   = '.'
	SymbolWin     = '*'
)

// Encode renders the board as a 64-character string, one symbol per cell in
// index order 0-63.
func (b Board) Encode() string {
	buf := make([]byte, BoardSize)
	for i, p := range b {
		switch p {
		case Human:
			buf[i] = SymbolHuman
		case Machine:
			buf[i] = SymbolMachine
		default:
			buf[i] = SymbolEmpty
		}
	}
	return string(buf)
}

// DecodeBoard parses a board from its string encoding. Input shorter than 64
// symbols leaves the remaining cells empty; input longer than 64 symbols or
// containing an unrecognized symbol is rejected.
func DecodeBoard(s string) (Board, error) {
	var b Board
	if len(s) > BoardSize {
		return b, fmt.Errorf("%w: encoding is %d symbols, want at most %d", ErrBadEncoding, len(s), BoardSize)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case SymbolHuman:
			b[i] = Human
		case SymbolMachine:
			b[i] = Machine
		case SymbolEmpty, '_', ' ':
			b[i] = Nobody
		default:
			return Board{}, fmt.Errorf("%w: unrecognized symbol %q at cell %d", ErrBadEncoding, s[i], i)
		}
	}
	return b, nil
}
