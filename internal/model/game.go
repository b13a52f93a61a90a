package model

import "time"

// GameID uniquely identifies a game
type GameID string

// WinPath holds the 4 cell indices of a completed winning line.
// It is only meaningful while Winner is not Nobody.
type WinPath [WinLength]int

// Game is one game session: the live board plus the decision state derived
// from it. Multiple games are fully independent records; there is no shared
// state between them.
type Game struct {
	ID      GameID
	Board   Board
	Winner  Player
	WinPath WinPath

	// Weights drives the evaluator for this game's machine moves
	Weights WeightMatrix
	// Randomize selects the machine's move policy: false picks the first
	// best-scoring cell, true picks uniformly among equally-best cells
	Randomize bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InProgress returns true while no winner has been decided
func (g *Game) InProgress() bool {
	return g.Winner == Nobody
}
