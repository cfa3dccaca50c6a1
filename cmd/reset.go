package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progression data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete progression data without --yes")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(theme.Body.Render("All progression data deleted."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion of all data")
}
