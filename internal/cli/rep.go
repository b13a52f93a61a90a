package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qubicgame/qubic/internal/notation"
)

func newRepCmd() *cobra.Command {
	var humanMoves, machineMoves string

	cmd := &cobra.Command{
		Use:   "rep",
		Short: "Render a board locally from 1-based move lists",
		Long: `Render a board locally from 1-based move lists.

Move lists are whitespace-separated cell numbers from 1 to 64.
This command does not contact the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := notation.BoardFromMoveLists(humanMoves, machineMoves)
			if err != nil {
				return fmt.Errorf("invalid move list: %w", err)
			}

			fmt.Print(notation.Layers(board.Encode()))
			return nil
		},
	}

	cmd.Flags().StringVar(&humanMoves, "human", "", "Human move list, e.g. \"1 22 64\"")
	cmd.Flags().StringVar(&machineMoves, "machine", "", "Machine move list, e.g. \"2 33\"")

	return cmd
}
