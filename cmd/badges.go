package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/ui/theme"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges and progress toward the rest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defs, err := badgeDefs(cfg)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := loadState(cmd, st)
		if err != nil {
			return err
		}

		for _, category := range badges.AllCategories() {
			catDefs := badges.DefinitionsByCategory(defs, category)
			if len(catDefs) == 0 {
				continue
			}
			fmt.Println(theme.Subtitle.Render(category.DisplayName()))
			for _, def := range catDefs {
				p := state.Badges[def.ID]
				if p != nil && p.Earned() {
					fmt.Printf("  %s %s %s\n", def.Icon,
						theme.BadgeEarned.Render(def.Name),
						theme.Hint.Render("earned "+p.EarnedAt.Format("2006-01-02")))
					continue
				}
				var ratio float64
				if p != nil {
					ratio = p.Ratio(def.Threshold)
				}
				fmt.Printf("  %s %s %s %s\n", def.Icon,
					theme.BadgeLocked.Render(def.Name),
					theme.Bar(10, ratio),
					theme.Hint.Render(def.Description))
			}
			fmt.Println()
		}
		return nil
	},
}
