package cmd

import (
	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/engine"
)

var lectureCmd = &cobra.Command{
	Use:   "lecture <unit-id>",
	Short: "Record a completed lecture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyEvent(cmd, engine.KindLectureCompleted, args[0], 0)
	},
}
