package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/qubicgame/qubic/internal/notation"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case MachineMoveResult:
		o.printMachineMove(v)
	case BestMoveResult:
		o.printBestMove(v)
	case EvaluationResult:
		o.printEvaluation(v)
	case OverlayResult:
		o.printOverlay(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID        string `json:"id"`
	Board     string `json:"board"`
	Winner    string `json:"winner"`
	WinPath   []int  `json:"win_path,omitempty"`
	Randomize bool   `json:"randomize"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// GameList response type
type GameList struct {
	Games []string `json:"games"`
}

// MachineMoveResult response type
type MachineMoveResult struct {
	Cell int  `json:"cell"`
	Game Game `json:"game"`
}

// BestMoveResult response type
type BestMoveResult struct {
	Player string `json:"player"`
	Cell   int    `json:"cell"`
}

// EvaluationResult response type
type EvaluationResult struct {
	Score int `json:"score"`
}

// OverlayResult response type
type OverlayResult struct {
	Board string `json:"board"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Winner: %s\n", g.Winner)
	if len(g.WinPath) > 0 {
		cells := make([]string, len(g.WinPath))
		for i, c := range g.WinPath {
			cells[i] = fmt.Sprintf("%d", c)
		}
		fmt.Printf("Winning Cells: %s\n", strings.Join(cells, ", "))
	}
	randStr := "off"
	if g.Randomize {
		randStr = "on"
	}
	fmt.Printf("Randomize: %s\n", randStr)
	fmt.Println()
	fmt.Print(notation.Layers(g.Board))
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, id := range l.Games {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printMachineMove(m MachineMoveResult) {
	fmt.Printf("Machine played cell %d\n", m.Cell)
	fmt.Println()
	o.printGame(m.Game)
}

func (o *Output) printBestMove(b BestMoveResult) {
	fmt.Printf("Best move for %s: cell %d\n", b.Player, b.Cell)
}

func (o *Output) printEvaluation(e EvaluationResult) {
	fmt.Printf("Score: %d\n", e.Score)
}

func (o *Output) printOverlay(v OverlayResult) {
	fmt.Print(notation.Layers(v.Board))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
