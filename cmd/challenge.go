package cmd

import (
	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/engine"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <unit-id> <score-pct>",
	Short: "Record a completed coding challenge with its score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := parseScore(args[1])
		if err != nil {
			return err
		}
		return applyEvent(cmd, engine.KindChallengeCompleted, args[0], score)
	},
}
