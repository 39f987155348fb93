// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/hearwise/ent/trialevent"
)

// TrialEventCreate is the builder for creating a TrialEvent entity.
type TrialEventCreate struct {
	config
	mutation *TrialEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TrialEventCreate) SetSequence(v int64) *TrialEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TrialEventCreate) SetTimestamp(v time.Time) *TrialEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TrialEventCreate) SetNillableTimestamp(v *time.Time) *TrialEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TrialEventCreate) SetSessionID(v string) *TrialEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *TrialEventCreate) SetFrequency(v int) *TrialEventCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetEar sets the "ear" field.
func (_c *TrialEventCreate) SetEar(v string) *TrialEventCreate {
	_c.mutation.SetEar(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *TrialEventCreate) SetLevel(v int) *TrialEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetHeard sets the "heard" field.
func (_c *TrialEventCreate) SetHeard(v bool) *TrialEventCreate {
	_c.mutation.SetHeard(v)
	return _c
}

// SetTrial sets the "trial" field.
func (_c *TrialEventCreate) SetTrial(v int) *TrialEventCreate {
	_c.mutation.SetTrial(v)
	return _c
}

// SetResponseMs sets the "response_ms" field.
func (_c *TrialEventCreate) SetResponseMs(v int64) *TrialEventCreate {
	_c.mutation.SetResponseMs(v)
	return _c
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_c *TrialEventCreate) SetNillableResponseMs(v *int64) *TrialEventCreate {
	if v != nil {
		_c.SetResponseMs(*v)
	}
	return _c
}

// Mutation returns the TrialEventMutation object of the builder.
func (_c *TrialEventCreate) Mutation() *TrialEventMutation {
	return _c.mutation
}

// Save creates the TrialEvent in the database.
func (_c *TrialEventCreate) Save(ctx context.Context) (*TrialEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrialEventCreate) SaveX(ctx context.Context) *TrialEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrialEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := trialevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		v := trialevent.DefaultResponseMs
		_c.mutation.SetResponseMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrialEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TrialEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TrialEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TrialEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := trialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "TrialEvent.frequency"`)}
	}
	if _, ok := _c.mutation.Ear(); !ok {
		return &ValidationError{Name: "ear", err: errors.New(`ent: missing required field "TrialEvent.ear"`)}
	}
	if v, ok := _c.mutation.Ear(); ok {
		if err := trialevent.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.ear": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "TrialEvent.level"`)}
	}
	if _, ok := _c.mutation.Heard(); !ok {
		return &ValidationError{Name: "heard", err: errors.New(`ent: missing required field "TrialEvent.heard"`)}
	}
	if _, ok := _c.mutation.Trial(); !ok {
		return &ValidationError{Name: "trial", err: errors.New(`ent: missing required field "TrialEvent.trial"`)}
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		return &ValidationError{Name: "response_ms", err: errors.New(`ent: missing required field "TrialEvent.response_ms"`)}
	}
	return nil
}

func (_c *TrialEventCreate) sqlSave(ctx context.Context) (*TrialEvent, error) {
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

func (_c *TrialEventCreate) createSpec() (*TrialEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TrialEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trialevent.Table, sqlgraph.NewFieldSpec(trialevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(trialevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(trialevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(trialevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(trialevent.FieldFrequency, field.TypeInt, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Ear(); ok {
		_spec.SetField(trialevent.FieldEar, field.TypeString, value)
		_node.Ear = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(trialevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Heard(); ok {
		_spec.SetField(trialevent.FieldHeard, field.TypeBool, value)
		_node.Heard = value
	}
	if value, ok := _c.mutation.Trial(); ok {
		_spec.SetField(trialevent.FieldTrial, field.TypeInt, value)
		_node.Trial = value
	}
	if value, ok := _c.mutation.ResponseMs(); ok {
		_spec.SetField(trialevent.FieldResponseMs, field.TypeInt64, value)
		_node.ResponseMs = value
	}
	return _node, _spec
}

// TrialEventCreateBulk is the builder for creating many TrialEvent entities in bulk.
type TrialEventCreateBulk struct {
	config
	err      error
	builders []*TrialEventCreate
}

// Save creates the TrialEvent entities in the database.
func (_c *TrialEventCreateBulk) Save(ctx context.Context) ([]*TrialEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrialEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrialEventMutation)
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
func (_c *TrialEventCreateBulk) SaveX(ctx context.Context) []*TrialEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
