package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/ui/theme"
	"github.com/questline-dev/questline/internal/xp"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
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

		progress, span := xp.XPToNextLevel(state.Profile.TotalXP)
		fmt.Println(theme.Title.Render(fmt.Sprintf("Level %d", state.Profile.Level)))
		fmt.Printf("%s %s\n", theme.Bar(30, float64(progress)/float64(span)),
			theme.Subtitle.Render(fmt.Sprintf("%d/%d XP to next level", progress, span)))
		fmt.Println(theme.Body.Render(fmt.Sprintf("Total XP: %d", state.Profile.TotalXP)))
		fmt.Println(theme.Streak.Render(fmt.Sprintf("Streak: %d days", state.Profile.StreakDays)))
		fmt.Println()

		c := state.Counters
		fmt.Println(theme.Subtitle.Render("Completions"))
		fmt.Printf("  Lectures %d · Quizzes %d · Challenges %d · Checkpoints %d\n",
			c.Lectures, c.Quizzes, c.Challenges, c.Checkpoints)
		if c.PerfectQuizzes > 0 {
			fmt.Printf("  Perfect quizzes: %d\n", c.PerfectQuizzes)
		}

		if len(state.Mastery) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(theme.Subtitle.Render("Mastery"))
		skills := make([]string, 0, len(state.Mastery))
		for id := range state.Mastery {
			skills = append(skills, id)
		}
		sort.Strings(skills)

		for _, id := range skills {
			// Display-only decay: the stored score is untouched until the
			// next event.
			rec := *state.Mastery[id]
			rec.Decay(now, cfg.Progression.MasteryGraceDays)
			fmt.Printf("  %-20s %s %3.0f%% %s\n",
				id, theme.Bar(20, rec.Score), rec.Score*100,
				theme.Hint.Render(rec.LevelDescription()))
		}
		return nil
	},
}
