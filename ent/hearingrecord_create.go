// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/hearwise/ent/hearingrecord"
	"github.com/abhisek/hearwise/ent/schema"
)

// HearingRecordCreate is the builder for creating a HearingRecord entity.
type HearingRecordCreate struct {
	config
	mutation *HearingRecordMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *HearingRecordCreate) SetRecordID(v string) *HearingRecordCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *HearingRecordCreate) SetUserID(v string) *HearingRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *HearingRecordCreate) SetTakenAt(v time.Time) *HearingRecordCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HearingRecordCreate) SetCreatedAt(v time.Time) *HearingRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HearingRecordCreate) SetNillableCreatedAt(v *time.Time) *HearingRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *HearingRecordCreate) SetResults(v []schema.ThresholdEntry) *HearingRecordCreate {
	_c.mutation.SetResults(v)
	return _c
}

// Mutation returns the HearingRecordMutation object of the builder.
func (_c *HearingRecordCreate) Mutation() *HearingRecordMutation {
	return _c.mutation
}

// Save creates the HearingRecord in the database.
func (_c *HearingRecordCreate) Save(ctx context.Context) (*HearingRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HearingRecordCreate) SaveX(ctx context.Context) *HearingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HearingRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hearingrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HearingRecordCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "HearingRecord.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := hearingrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "HearingRecord.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "HearingRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := hearingrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HearingRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "HearingRecord.taken_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HearingRecord.created_at"`)}
	}
	if _, ok := _c.mutation.Results(); !ok {
		return &ValidationError{Name: "results", err: errors.New(`ent: missing required field "HearingRecord.results"`)}
	}
	return nil
}

func (_c *HearingRecordCreate) sqlSave(ctx context.Context) (*HearingRecord, error) {
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

func (_c *HearingRecordCreate) createSpec() (*HearingRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &HearingRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hearingrecord.Table, sqlgraph.NewFieldSpec(hearingrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(hearingrecord.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(hearingrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(hearingrecord.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hearingrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(hearingrecord.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	return _node, _spec
}

// HearingRecordCreateBulk is the builder for creating many HearingRecord entities in bulk.
type HearingRecordCreateBulk struct {
	config
	err      error
	builders []*HearingRecordCreate
}

// Save creates the HearingRecord entities in the database.
func (_c *HearingRecordCreateBulk) Save(ctx context.Context) ([]*HearingRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HearingRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HearingRecordMutation)
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
func (_c *HearingRecordCreateBulk) SaveX(ctx context.Context) []*HearingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
