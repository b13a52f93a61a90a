// Package response defines the JSON response bodies produced by the API
package response

import (
	"time"

	"github.com/qubicgame/qubic/internal/model"
)

// Game is the API view of a game
type Game struct {
	ID        string    `json:"id"`
	Board     string    `json:"board"`
	Winner    string    `json:"winner"`
	WinPath   []int     `json:"win_path,omitempty"`
	Randomize bool      `json:"randomize"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameFromModel converts a model game to its API view
func GameFromModel(g *model.Game) Game {
	resp := Game{
		ID:        string(g.ID),
		Board:     g.Board.Encode(),
		Winner:    g.Winner.String(),
		Randomize: g.Randomize,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if g.Winner != model.Nobody {
		resp.WinPath = g.WinPath[:]
	}
	return resp
}

// GameList lists stored game ids
type GameList struct {
	Games []string `json:"games"`
}

// MachineMove reports the machine's chosen cell with the resulting game
type MachineMove struct {
	Cell int  `json:"cell"`
	Game Game `json:"game"`
}

// BestMove is a hint: the best one-ply move for the requested player
type BestMove struct {
	Player string `json:"player"`
	Cell   int    `json:"cell"`
}

// Evaluation is the score of an externally supplied board
type Evaluation struct {
	Score int `json:"score"`
}

// Overlay is a board encoding with the winning line marked
type Overlay struct {
	Board string `json:"board"`
}
