// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/questline-dev/questline/ent/badgeevent"
	"github.com/questline-dev/questline/ent/progressevent"
	"github.com/questline-dev/questline/ent/schema"
	"github.com/questline-dev/questline/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescName is the schema descriptor for name field.
	badgeeventDescName := badgeeventFields[1].Descriptor()
	// badgeevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badgeevent.NameValidator = badgeeventDescName.Validators[0].(func(string) error)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescEventID is the schema descriptor for event_id field.
	progresseventDescEventID := progresseventFields[0].Descriptor()
	// progressevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	progressevent.EventIDValidator = progresseventDescEventID.Validators[0].(func(string) error)
	// progresseventDescKind is the schema descriptor for kind field.
	progresseventDescKind := progresseventFields[1].Descriptor()
	// progressevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	progressevent.KindValidator = progresseventDescKind.Validators[0].(func(string) error)
	// progresseventDescUnitID is the schema descriptor for unit_id field.
	progresseventDescUnitID := progresseventFields[2].Descriptor()
	// progressevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	progressevent.UnitIDValidator = progresseventDescUnitID.Validators[0].(func(string) error)
	// progresseventDescScorePct is the schema descriptor for score_pct field.
	progresseventDescScorePct := progresseventFields[3].Descriptor()
	// progressevent.DefaultScorePct holds the default value on creation for the score_pct field.
	progressevent.DefaultScorePct = progresseventDescScorePct.Default.(float64)
	// progresseventDescAttempt is the schema descriptor for attempt field.
	progresseventDescAttempt := progresseventFields[4].Descriptor()
	// progressevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	progressevent.AttemptValidator = progresseventDescAttempt.Validators[0].(func(int) error)
	// progresseventDescXpEarned is the schema descriptor for xp_earned field.
	progresseventDescXpEarned := progresseventFields[5].Descriptor()
	// progressevent.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	progressevent.XpEarnedValidator = progresseventDescXpEarned.Validators[0].(func(int) error)
	// progresseventDescLevelAfter is the schema descriptor for level_after field.
	progresseventDescLevelAfter := progresseventFields[6].Descriptor()
	// progressevent.LevelAfterValidator is a validator for the "level_after" field. It is called by the builders before save.
	progressevent.LevelAfterValidator = progresseventDescLevelAfter.Validators[0].(func(int) error)
	// progresseventDescStreakAfter is the schema descriptor for streak_after field.
	progresseventDescStreakAfter := progresseventFields[7].Descriptor()
	// progressevent.StreakAfterValidator is a validator for the "streak_after" field. It is called by the builders before save.
	progressevent.StreakAfterValidator = progresseventDescStreakAfter.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
