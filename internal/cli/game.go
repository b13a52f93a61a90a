package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameReplyCmd())
	cmd.AddCommand(newGameUndoCmd())
	cmd.AddCommand(newGameRefreshCmd())
	cmd.AddCommand(newGameBoardCmd())
	cmd.AddCommand(newGameWeightsCmd())
	cmd.AddCommand(newGameRandomizeCmd())
	cmd.AddCommand(newGameHintCmd())
	cmd.AddCommand(newGameOverlayCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var randomize bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"randomize": randomize}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&randomize, "randomize", false, "Randomize tie-breaking between equal moves")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List game IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <cell>",
		Short: "Play a human move at a cell (0-63)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid cell: %w", err)
			}

			req := map[string]int{"cell": cell}
			var result Game

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameReplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply <id>",
		Short: "Ask the machine to play its move",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MachineMoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/machine-move", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func newGameUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id> <cell>",
		Short: "Remove the piece at a cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid cell: %w", err)
			}

			var result Game

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s/moves/%d", args[0], cell), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <id>",
		Short: "Recompute the winner from the current board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/refresh-winner", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board <id> <encoded>",
		Short: "Replace the board with an encoded position",
		Long: `Replace the board with an encoded position.

The encoding is 64 characters, cell 0 first: 'X' for the human,
'O' for the machine, '.' (or '_' or space) for an empty cell.
Shorter strings are padded with empty cells.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"board": args[1]}
			var result Game

			if err := client.Put(fmt.Sprintf("/api/v1/games/%s/board", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameWeightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weights <id> <w00> ... <w44>",
		Short: "Set the 5x5 evaluation weight matrix (25 values, row-major)",
		Args:  cobra.ExactArgs(26),
		RunE: func(cmd *cobra.Command, args []string) error {
			var weights [5][5]int
			for i, arg := range args[1:] {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid weight %q: %w", arg, err)
				}
				weights[i/5][i%5] = v
			}

			req := map[string]any{"weights": weights}
			var result Game

			if err := client.Put(fmt.Sprintf("/api/v1/games/%s/weights", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRandomizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "randomize <id> <on|off>",
		Short: "Turn randomized tie-breaking on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var randomize bool
			switch args[1] {
			case "on":
				randomize = true
			case "off":
				randomize = false
			default:
				return fmt.Errorf("expected 'on' or 'off', got %q", args[1])
			}

			req := map[string]bool{"randomize": randomize}
			var result Game

			if err := client.Put(fmt.Sprintf("/api/v1/games/%s/randomize", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "hint <id>",
		Short: "Show the best move for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BestMoveResult

			path := fmt.Sprintf("/api/v1/games/%s/best-move?player=%s", args[0], player)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "machine", "Player to find the best move for: human, machine")

	return cmd
}

func newGameOverlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlay <id>",
		Short: "Show the board with winning cells marked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result OverlayResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/overlay", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0]), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
