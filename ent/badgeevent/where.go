// Code generated by ent, DO NOT EDIT.

package badgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/questline-dev/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldName, v))
}

// TriggerEventID applies equality check predicate on the "trigger_event_id" field. It's identical to TriggerEventIDEQ.
func TriggerEventID(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTriggerEventID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldBadgeID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldName, v))
}

// TriggerEventIDEQ applies the EQ predicate on the "trigger_event_id" field.
func TriggerEventIDEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTriggerEventID, v))
}

// TriggerEventIDNEQ applies the NEQ predicate on the "trigger_event_id" field.
func TriggerEventIDNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldTriggerEventID, v))
}

// TriggerEventIDIn applies the In predicate on the "trigger_event_id" field.
func TriggerEventIDIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDNotIn applies the NotIn predicate on the "trigger_event_id" field.
func TriggerEventIDNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDGT applies the GT predicate on the "trigger_event_id" field.
func TriggerEventIDGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldTriggerEventID, v))
}

// TriggerEventIDGTE applies the GTE predicate on the "trigger_event_id" field.
func TriggerEventIDGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldTriggerEventID, v))
}

// TriggerEventIDLT applies the LT predicate on the "trigger_event_id" field.
func TriggerEventIDLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldTriggerEventID, v))
}

// TriggerEventIDLTE applies the LTE predicate on the "trigger_event_id" field.
func TriggerEventIDLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldTriggerEventID, v))
}

// TriggerEventIDContains applies the Contains predicate on the "trigger_event_id" field.
func TriggerEventIDContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldTriggerEventID, v))
}

// TriggerEventIDHasPrefix applies the HasPrefix predicate on the "trigger_event_id" field.
func TriggerEventIDHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldTriggerEventID, v))
}

// TriggerEventIDHasSuffix applies the HasSuffix predicate on the "trigger_event_id" field.
func TriggerEventIDHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldTriggerEventID, v))
}

// TriggerEventIDIsNil applies the IsNil predicate on the "trigger_event_id" field.
func TriggerEventIDIsNil() predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIsNull(FieldTriggerEventID))
}

// TriggerEventIDNotNil applies the NotNil predicate on the "trigger_event_id" field.
func TriggerEventIDNotNil() predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotNull(FieldTriggerEventID))
}

// TriggerEventIDEqualFold applies the EqualFold predicate on the "trigger_event_id" field.
func TriggerEventIDEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldTriggerEventID, v))
}

// TriggerEventIDContainsFold applies the ContainsFold predicate on the "trigger_event_id" field.
func TriggerEventIDContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldTriggerEventID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.NotPredicates(p))
}
