// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/questline-dev/questline/ent/progressevent"
)

// ProgressEventCreate is the builder for creating a ProgressEvent entity.
type ProgressEventCreate struct {
	config
	mutation *ProgressEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProgressEventCreate) SetSequence(v int64) *ProgressEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProgressEventCreate) SetTimestamp(v time.Time) *ProgressEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableTimestamp(v *time.Time) *ProgressEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *ProgressEventCreate) SetEventID(v string) *ProgressEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ProgressEventCreate) SetKind(v string) *ProgressEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *ProgressEventCreate) SetUnitID(v string) *ProgressEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetScorePct sets the "score_pct" field.
func (_c *ProgressEventCreate) SetScorePct(v float64) *ProgressEventCreate {
	_c.mutation.SetScorePct(v)
	return _c
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableScorePct(v *float64) *ProgressEventCreate {
	if v != nil {
		_c.SetScorePct(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *ProgressEventCreate) SetAttempt(v int) *ProgressEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *ProgressEventCreate) SetXpEarned(v int) *ProgressEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *ProgressEventCreate) SetLevelAfter(v int) *ProgressEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// SetStreakAfter sets the "streak_after" field.
func (_c *ProgressEventCreate) SetStreakAfter(v int) *ProgressEventCreate {
	_c.mutation.SetStreakAfter(v)
	return _c
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_c *ProgressEventCreate) Mutation() *ProgressEventMutation {
	return _c.mutation
}

// Save creates the ProgressEvent in the database.
func (_c *ProgressEventCreate) Save(ctx context.Context) (*ProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEventCreate) SaveX(ctx context.Context) *ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := progressevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ScorePct(); !ok {
		v := progressevent.DefaultScorePct
		_c.mutation.SetScorePct(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProgressEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ProgressEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := progressevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ProgressEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "ProgressEvent.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := progressevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScorePct(); !ok {
		return &ValidationError{Name: "score_pct", err: errors.New(`ent: missing required field "ProgressEvent.score_pct"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "ProgressEvent.attempt"`)}
	}
	if v, ok := _c.mutation.Attempt(); ok {
		if err := progressevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.attempt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "ProgressEvent.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := progressevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "ProgressEvent.level_after"`)}
	}
	if v, ok := _c.mutation.LevelAfter(); ok {
		if err := progressevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.level_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakAfter(); !ok {
		return &ValidationError{Name: "streak_after", err: errors.New(`ent: missing required field "ProgressEvent.streak_after"`)}
	}
	if v, ok := _c.mutation.StreakAfter(); ok {
		if err := progressevent.StreakAfterValidator(v); err != nil {
			return &ValidationError{Name: "streak_after", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.streak_after": %w`, err)}
		}
	}
	return nil
}

func (_c *ProgressEventCreate) sqlSave(ctx context.Context) (*ProgressEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressEventCreate) createSpec() (*ProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressevent.Table, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(progressevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(progressevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(progressevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(progressevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.ScorePct(); ok {
		_spec.SetField(progressevent.FieldScorePct, field.TypeFloat64, value)
		_node.ScorePct = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(progressevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(progressevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(progressevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	if value, ok := _c.mutation.StreakAfter(); ok {
		_spec.SetField(progressevent.FieldStreakAfter, field.TypeInt, value)
		_node.StreakAfter = value
	}
	return _node, _spec
}

// ProgressEventCreateBulk is the builder for creating many ProgressEvent entities in bulk.
type ProgressEventCreateBulk struct {
	config
	err      error
	builders []*ProgressEventCreate
}

// Save creates the ProgressEvent entities in the database.
func (_c *ProgressEventCreateBulk) Save(ctx context.Context) ([]*ProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) SaveX(ctx context.Context) []*ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
