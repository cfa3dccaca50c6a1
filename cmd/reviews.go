package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/spacedrep"
	"github.com/questline-dev/questline/internal/ui/theme"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Show quiz units due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
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
		now := time.Now().UTC()

		if len(state.Reviews) == 0 {
			fmt.Println(theme.Hint.Render("No quizzes scheduled for review yet."))
			return nil
		}

		due := spacedrep.DueUnits(state.Reviews, now)
		if len(due) > 0 {
			fmt.Println(theme.Title.Render("Due now"))
			for _, id := range due {
				ri := state.Reviews[id]
				overdue := int(ri.OverdueDays(now))
				if overdue > 0 {
					fmt.Printf("  %s %s\n", theme.Overdue.Render(id),
						theme.Hint.Render(fmt.Sprintf("%d days overdue", overdue)))
				} else {
					fmt.Printf("  %s\n", theme.Due.Render(id))
				}
			}
		} else {
			fmt.Println(theme.Body.Render("Nothing due. Nice."))
		}

		upcoming := make([]*spacedrep.ReviewItem, 0, len(state.Reviews))
		for _, ri := range state.Reviews {
			if !ri.IsDue(now) {
				upcoming = append(upcoming, ri)
			}
		}
		if len(upcoming) == 0 {
			return nil
		}
		sort.Slice(upcoming, func(i, j int) bool {
			if !upcoming[i].DueDate.Equal(upcoming[j].DueDate) {
				return upcoming[i].DueDate.Before(upcoming[j].DueDate)
			}
			return upcoming[i].UnitID < upcoming[j].UnitID
		})

		fmt.Println()
		fmt.Println(theme.Subtitle.Render("Upcoming"))
		for _, ri := range upcoming {
			fmt.Printf("  %-20s in %d days (%s)\n",
				ri.UnitID, ri.DaysUntilDue(now), ri.DueDate.Format("2006-01-02"))
		}
		return nil
	},
}
