package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/engine"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <unit-id> <score-pct>",
	Short: "Record a quiz submission with its score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := parseScore(args[1])
		if err != nil {
			return err
		}
		return applyEvent(cmd, engine.KindQuizSubmitted, args[0], score)
	},
}

// parseScore converts a CLI score argument to a percentage.
func parseScore(s string) (float64, error) {
	score, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: expected a percentage like 85", s)
	}
	return score, nil
}
