// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/questline-dev/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldEventID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldKind, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldUnitID, v))
}

// ScorePct applies equality check predicate on the "score_pct" field. It's identical to ScorePctEQ.
func ScorePct(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldScorePct, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldAttempt, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldXpEarned, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// StreakAfter applies equality check predicate on the "streak_after" field. It's identical to StreakAfterEQ.
func StreakAfter(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldEventID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldKind, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// ScorePctEQ applies the EQ predicate on the "score_pct" field.
func ScorePctEQ(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldScorePct, v))
}

// ScorePctNEQ applies the NEQ predicate on the "score_pct" field.
func ScorePctNEQ(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldScorePct, v))
}

// ScorePctIn applies the In predicate on the "score_pct" field.
func ScorePctIn(vs ...float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldScorePct, vs...))
}

// ScorePctNotIn applies the NotIn predicate on the "score_pct" field.
func ScorePctNotIn(vs ...float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldScorePct, vs...))
}

// ScorePctGT applies the GT predicate on the "score_pct" field.
func ScorePctGT(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldScorePct, v))
}

// ScorePctGTE applies the GTE predicate on the "score_pct" field.
func ScorePctGTE(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldScorePct, v))
}

// ScorePctLT applies the LT predicate on the "score_pct" field.
func ScorePctLT(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldScorePct, v))
}

// ScorePctLTE applies the LTE predicate on the "score_pct" field.
func ScorePctLTE(v float64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldScorePct, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldAttempt, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldXpEarned, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// StreakAfterEQ applies the EQ predicate on the "streak_after" field.
func StreakAfterEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// StreakAfterNEQ applies the NEQ predicate on the "streak_after" field.
func StreakAfterNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldStreakAfter, v))
}

// StreakAfterIn applies the In predicate on the "streak_after" field.
func StreakAfterIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldStreakAfter, vs...))
}

// StreakAfterNotIn applies the NotIn predicate on the "streak_after" field.
func StreakAfterNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldStreakAfter, vs...))
}

// StreakAfterGT applies the GT predicate on the "streak_after" field.
func StreakAfterGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldStreakAfter, v))
}

// StreakAfterGTE applies the GTE predicate on the "streak_after" field.
func StreakAfterGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldStreakAfter, v))
}

// StreakAfterLT applies the LT predicate on the "streak_after" field.
func StreakAfterLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldStreakAfter, v))
}

// StreakAfterLTE applies the LTE predicate on the "streak_after" field.
func StreakAfterLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldStreakAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
