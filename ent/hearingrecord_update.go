// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/hearwise/ent/hearingrecord"
	"github.com/abhisek/hearwise/ent/predicate"
	"github.com/abhisek/hearwise/ent/schema"
)

// HearingRecordUpdate is the builder for updating HearingRecord entities.
type HearingRecordUpdate struct {
	config
	hooks    []Hook
	mutation *HearingRecordMutation
}

// Where appends a list predicates to the HearingRecordUpdate builder.
func (_u *HearingRecordUpdate) Where(ps ...predicate.HearingRecord) *HearingRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResults sets the "results" field.
func (_u *HearingRecordUpdate) SetResults(v []schema.ThresholdEntry) *HearingRecordUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *HearingRecordUpdate) AppendResults(v []schema.ThresholdEntry) *HearingRecordUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// Mutation returns the HearingRecordMutation object of the builder.
func (_u *HearingRecordUpdate) Mutation() *HearingRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HearingRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HearingRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HearingRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hearingrecord.Table, hearingrecord.Columns, sqlgraph.NewFieldSpec(hearingrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(hearingrecord.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hearingrecord.FieldResults, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HearingRecordUpdateOne is the builder for updating a single HearingRecord entity.
type HearingRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HearingRecordMutation
}

// SetResults sets the "results" field.
func (_u *HearingRecordUpdateOne) SetResults(v []schema.ThresholdEntry) *HearingRecordUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *HearingRecordUpdateOne) AppendResults(v []schema.ThresholdEntry) *HearingRecordUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// Mutation returns the HearingRecordMutation object of the builder.
func (_u *HearingRecordUpdateOne) Mutation() *HearingRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the HearingRecordUpdate builder.
func (_u *HearingRecordUpdateOne) Where(ps ...predicate.HearingRecord) *HearingRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HearingRecordUpdateOne) Select(field string, fields ...string) *HearingRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HearingRecord entity.
func (_u *HearingRecordUpdateOne) Save(ctx context.Context) (*HearingRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingRecordUpdateOne) SaveX(ctx context.Context) *HearingRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HearingRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HearingRecordUpdateOne) sqlSave(ctx context.Context) (_node *HearingRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(hearingrecord.Table, hearingrecord.Columns, sqlgraph.NewFieldSpec(hearingrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HearingRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearingrecord.FieldID)
		for _, f := range fields {
			if !hearingrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hearingrecord.FieldID {
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
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(hearingrecord.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hearingrecord.FieldResults, value)
		})
	}
	_node = &HearingRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
