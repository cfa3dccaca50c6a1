package cmd

import (
	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/engine"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint <unit-id> <score-pct>",
	Short: "Record a graded checkpoint exam with its score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := parseScore(args[1])
		if err != nil {
			return err
		}
		return applyEvent(cmd, engine.KindCheckpointGraded, args[0], score)
	},
}
