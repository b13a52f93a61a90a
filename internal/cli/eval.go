package cli

import (
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <encoded>",
		Short: "Evaluate an encoded board position",
		Long: `Evaluate an encoded board position.

Negative scores favor the machine, positive scores favor the human.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"board": args[0]}
			var result EvaluationResult

			if err := client.Post("/api/v1/evaluate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
