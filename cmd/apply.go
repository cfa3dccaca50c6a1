package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/content"
	"github.com/questline-dev/questline/internal/engine"
	"github.com/questline-dev/questline/internal/store"
	"github.com/questline-dev/questline/internal/ui/theme"
	"github.com/questline-dev/questline/internal/xp"
)

// snapshotKeep is how many snapshots survive pruning after each event.
const snapshotKeep = 20

// applyEvent runs the full pipeline for one learning event: load
// state, apply through the engine, append to the event log, save a
// fresh snapshot, and report the effects.
func applyEvent(cmd *cobra.Command, kind engine.Kind, unitID string, scorePct float64) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadContentCatalog(cfg)
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

	now := time.Now().UTC()
	eng := engine.New(catalog, defs, cfg.Progression)
	next, fx, err := eng.Apply(state, engine.Event{
		Kind:       kind,
		UnitID:     unitID,
		ScorePct:   scorePct,
		OccurredAt: now,
	})
	if err != nil {
		return err
	}

	eventID := uuid.New().String()
	seq, err := st.EventRepo().AppendProgress(ctx, store.ProgressEventData{
		EventID:     eventID,
		Kind:        string(kind),
		UnitID:      unitID,
		ScorePct:    scorePct,
		Attempt:     fx.Attempt,
		XPEarned:    fx.XPEarned,
		LevelAfter:  next.Profile.Level,
		StreakAfter: next.Profile.StreakDays,
		Timestamp:   now,
	})
	if err != nil {
		return err
	}

	for _, badgeID := range fx.NewlyUnlockedBadges {
		name := badgeID
		if def := badges.DefinitionByID(defs, badgeID); def != nil {
			name = def.Name
		}
		if err := st.EventRepo().AppendBadge(ctx, store.BadgeEventData{
			BadgeID:        badgeID,
			Name:           name,
			TriggerEventID: eventID,
			Timestamp:      now,
		}); err != nil {
			return err
		}
	}

	repo := st.SnapshotRepo()
	if err := repo.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data:      store.SnapshotData{Version: store.SnapshotDataVersion, State: *next},
	}); err != nil {
		return err
	}
	if err := repo.Prune(ctx, snapshotKeep); err != nil {
		return err
	}

	printEffects(catalog.Unit(unitID), next, fx, defs)
	return nil
}

func printEffects(unit *content.Unit, snap *engine.Snapshot, fx *engine.Effects, defs []badges.Definition) {
	title := unit.Title
	if title == "" {
		title = unit.ID
	}
	fmt.Println(theme.Title.Render(fmt.Sprintf("%s · %s", unit.Type.DisplayName(), title)))
	fmt.Println(theme.XPGain.Render(fmt.Sprintf("+%d XP", fx.XPEarned)))

	if fx.LeveledUp {
		fmt.Println(theme.LevelUp.Render(fmt.Sprintf("Level up! You are now level %d", fx.NewLevel)))
	} else {
		progress, span := xp.XPToNextLevel(snap.Profile.TotalXP)
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Level %d · %d/%d XP to next", fx.NewLevel, progress, span)))
	}

	switch {
	case fx.Streak.IsGracePeriod:
		fmt.Println(theme.Streak.Render(fmt.Sprintf("Streak held at %d days (%d grace days left)", fx.Streak.Count, fx.Streak.GraceDaysRemaining)))
	default:
		fmt.Println(theme.Streak.Render(fmt.Sprintf("Streak: %d days", fx.Streak.Count)))
	}

	for _, d := range fx.MasteryDeltas {
		fmt.Printf("  %s %s %.0f%% → %.0f%%\n",
			theme.Body.Render(d.SkillID), theme.Bar(20, d.After), d.Before*100, d.After*100)
	}

	if fx.ReviewScheduled {
		fmt.Println(theme.Hint.Render(fmt.Sprintf("Next review due %s", fx.NextReviewDue.Format("2006-01-02"))))
	}

	for _, badgeID := range fx.NewlyUnlockedBadges {
		def := badges.DefinitionByID(defs, badgeID)
		if def == nil {
			continue
		}
		fmt.Println(theme.BadgeEarned.Render(fmt.Sprintf("Badge unlocked: %s %s — %s", def.Icon, def.Name, def.Description)))
	}
}
