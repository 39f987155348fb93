// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/hearwise/ent/predicate"
	"github.com/abhisek/hearwise/ent/trialevent"
)

// TrialEventUpdate is the builder for updating TrialEvent entities.
type TrialEventUpdate struct {
	config
	hooks    []Hook
	mutation *TrialEventMutation
}

// Where appends a list predicates to the TrialEventUpdate builder.
func (_u *TrialEventUpdate) Where(ps ...predicate.TrialEvent) *TrialEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TrialEventUpdate) SetSessionID(v string) *TrialEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableSessionID(v *string) *TrialEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *TrialEventUpdate) SetFrequency(v int) *TrialEventUpdate {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableFrequency(v *int) *TrialEventUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *TrialEventUpdate) AddFrequency(v int) *TrialEventUpdate {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetEar sets the "ear" field.
func (_u *TrialEventUpdate) SetEar(v string) *TrialEventUpdate {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableEar(v *string) *TrialEventUpdate {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *TrialEventUpdate) SetLevel(v int) *TrialEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableLevel(v *int) *TrialEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *TrialEventUpdate) AddLevel(v int) *TrialEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHeard sets the "heard" field.
func (_u *TrialEventUpdate) SetHeard(v bool) *TrialEventUpdate {
	_u.mutation.SetHeard(v)
	return _u
}

// SetNillableHeard sets the "heard" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableHeard(v *bool) *TrialEventUpdate {
	if v != nil {
		_u.SetHeard(*v)
	}
	return _u
}

// SetTrial sets the "trial" field.
func (_u *TrialEventUpdate) SetTrial(v int) *TrialEventUpdate {
	_u.mutation.ResetTrial()
	_u.mutation.SetTrial(v)
	return _u
}

// SetNillableTrial sets the "trial" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableTrial(v *int) *TrialEventUpdate {
	if v != nil {
		_u.SetTrial(*v)
	}
	return _u
}

// AddTrial adds value to the "trial" field.
func (_u *TrialEventUpdate) AddTrial(v int) *TrialEventUpdate {
	_u.mutation.AddTrial(v)
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *TrialEventUpdate) SetResponseMs(v int64) *TrialEventUpdate {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *TrialEventUpdate) SetNillableResponseMs(v *int64) *TrialEventUpdate {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *TrialEventUpdate) AddResponseMs(v int64) *TrialEventUpdate {
	_u.mutation.AddResponseMs(v)
	return _u
}

// Mutation returns the TrialEventMutation object of the builder.
func (_u *TrialEventUpdate) Mutation() *TrialEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrialEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrialEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrialEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := trialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := trialevent.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.ear": %w`, err)}
		}
	}
	return nil
}

func (_u *TrialEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trialevent.Table, trialevent.Columns, sqlgraph.NewFieldSpec(trialevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(trialevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(trialevent.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(trialevent.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(trialevent.FieldEar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(trialevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(trialevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Heard(); ok {
		_spec.SetField(trialevent.FieldHeard, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Trial(); ok {
		_spec.SetField(trialevent.FieldTrial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrial(); ok {
		_spec.AddField(trialevent.FieldTrial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(trialevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(trialevent.FieldResponseMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrialEventUpdateOne is the builder for updating a single TrialEvent entity.
type TrialEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrialEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TrialEventUpdateOne) SetSessionID(v string) *TrialEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableSessionID(v *string) *TrialEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *TrialEventUpdateOne) SetFrequency(v int) *TrialEventUpdateOne {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableFrequency(v *int) *TrialEventUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *TrialEventUpdateOne) AddFrequency(v int) *TrialEventUpdateOne {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetEar sets the "ear" field.
func (_u *TrialEventUpdateOne) SetEar(v string) *TrialEventUpdateOne {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableEar(v *string) *TrialEventUpdateOne {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *TrialEventUpdateOne) SetLevel(v int) *TrialEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableLevel(v *int) *TrialEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *TrialEventUpdateOne) AddLevel(v int) *TrialEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHeard sets the "heard" field.
func (_u *TrialEventUpdateOne) SetHeard(v bool) *TrialEventUpdateOne {
	_u.mutation.SetHeard(v)
	return _u
}

// SetNillableHeard sets the "heard" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableHeard(v *bool) *TrialEventUpdateOne {
	if v != nil {
		_u.SetHeard(*v)
	}
	return _u
}

// SetTrial sets the "trial" field.
func (_u *TrialEventUpdateOne) SetTrial(v int) *TrialEventUpdateOne {
	_u.mutation.ResetTrial()
	_u.mutation.SetTrial(v)
	return _u
}

// SetNillableTrial sets the "trial" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableTrial(v *int) *TrialEventUpdateOne {
	if v != nil {
		_u.SetTrial(*v)
	}
	return _u
}

// AddTrial adds value to the "trial" field.
func (_u *TrialEventUpdateOne) AddTrial(v int) *TrialEventUpdateOne {
	_u.mutation.AddTrial(v)
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *TrialEventUpdateOne) SetResponseMs(v int64) *TrialEventUpdateOne {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *TrialEventUpdateOne) SetNillableResponseMs(v *int64) *TrialEventUpdateOne {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *TrialEventUpdateOne) AddResponseMs(v int64) *TrialEventUpdateOne {
	_u.mutation.AddResponseMs(v)
	return _u
}

// Mutation returns the TrialEventMutation object of the builder.
func (_u *TrialEventUpdateOne) Mutation() *TrialEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrialEventUpdate builder.
func (_u *TrialEventUpdateOne) Where(ps ...predicate.TrialEvent) *TrialEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrialEventUpdateOne) Select(field string, fields ...string) *TrialEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrialEvent entity.
func (_u *TrialEventUpdateOne) Save(ctx context.Context) (*TrialEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialEventUpdateOne) SaveX(ctx context.Context) *TrialEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrialEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrialEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := trialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := trialevent.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`ent: validator failed for field "TrialEvent.ear": %w`, err)}
		}
	}
	return nil
}

func (_u *TrialEventUpdateOne) sqlSave(ctx context.Context) (_node *TrialEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trialevent.Table, trialevent.Columns, sqlgraph.NewFieldSpec(trialevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrialEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trialevent.FieldID)
		for _, f := range fields {
			if !trialevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trialevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(trialevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(trialevent.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(trialevent.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(trialevent.FieldEar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(trialevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(trialevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Heard(); ok {
		_spec.SetField(trialevent.FieldHeard, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Trial(); ok {
		_spec.SetField(trialevent.FieldTrial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrial(); ok {
		_spec.AddField(trialevent.FieldTrial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(trialevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(trialevent.FieldResponseMs, field.TypeInt64, value)
	}
	_node = &TrialEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
