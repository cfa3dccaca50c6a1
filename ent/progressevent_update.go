// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/questline-dev/questline/ent/predicate"
	"github.com/questline-dev/questline/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdate) SetKind(v string) *ProgressEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableKind(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressEventUpdate) SetUnitID(v string) *ProgressEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableUnitID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *ProgressEventUpdate) SetScorePct(v float64) *ProgressEventUpdate {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableScorePct(v *float64) *ProgressEventUpdate {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *ProgressEventUpdate) AddScorePct(v float64) *ProgressEventUpdate {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ProgressEventUpdate) SetAttempt(v int) *ProgressEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableAttempt(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ProgressEventUpdate) AddAttempt(v int) *ProgressEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ProgressEventUpdate) SetXpEarned(v int) *ProgressEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableXpEarned(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ProgressEventUpdate) AddXpEarned(v int) *ProgressEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ProgressEventUpdate) SetLevelAfter(v int) *ProgressEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableLevelAfter(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ProgressEventUpdate) AddLevelAfter(v int) *ProgressEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *ProgressEventUpdate) SetStreakAfter(v int) *ProgressEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableStreakAfter(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *ProgressEventUpdate) AddStreakAfter(v int) *ProgressEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := progressevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := progressevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelAfter(); ok {
		if err := progressevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.level_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakAfter(); ok {
		if err := progressevent.StreakAfterValidator(v); err != nil {
			return &ValidationError{Name: "streak_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.streak_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(progressevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(progressevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(progressevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(progressevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(progressevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(progressevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(progressevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(progressevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(progressevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(progressevent.FieldStreakAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdateOne) SetKind(v string) *ProgressEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableKind(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressEventUpdateOne) SetUnitID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableUnitID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *ProgressEventUpdateOne) SetScorePct(v float64) *ProgressEventUpdateOne {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableScorePct(v *float64) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *ProgressEventUpdateOne) AddScorePct(v float64) *ProgressEventUpdateOne {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ProgressEventUpdateOne) SetAttempt(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableAttempt(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ProgressEventUpdateOne) AddAttempt(v int) *ProgressEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ProgressEventUpdateOne) SetXpEarned(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableXpEarned(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ProgressEventUpdateOne) AddXpEarned(v int) *ProgressEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ProgressEventUpdateOne) SetLevelAfter(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableLevelAfter(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ProgressEventUpdateOne) AddLevelAfter(v int) *ProgressEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *ProgressEventUpdateOne) SetStreakAfter(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableStreakAfter(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *ProgressEventUpdateOne) AddStreakAfter(v int) *ProgressEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := progressevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := progressevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelAfter(); ok {
		if err := progressevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.level_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakAfter(); ok {
		if err := progressevent.StreakAfterValidator(v); err != nil {
			return &ValidationError{Name: "streak_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.streak_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(progressevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(progressevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(progressevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(progressevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(progressevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(progressevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(progressevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(progressevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(progressevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(progressevent.FieldStreakAfter, field.TypeInt, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
