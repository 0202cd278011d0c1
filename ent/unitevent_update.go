// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/predicate"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/unitevent"
)

// UnitEventUpdate is the builder for updating UnitEvent entities.
type UnitEventUpdate struct {
	config
	hooks    []Hook
	mutation *UnitEventMutation
}

// Where appends a list predicates to the UnitEventUpdate builder.
func (_u *UnitEventUpdate) Where(ps ...predicate.UnitEvent) *UnitEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *UnitEventUpdate) SetTopic(v string) *UnitEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableTopic(v *string) *UnitEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBand sets the "band" field.
func (_u *UnitEventUpdate) SetBand(v string) *UnitEventUpdate {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableBand(v *string) *UnitEventUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *UnitEventUpdate) SetTier(v string) *UnitEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableTier(v *string) *UnitEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitEventUpdate) SetStatus(v string) *UnitEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableStatus(v *string) *UnitEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *UnitEventUpdate) SetAttempts(v int) *UnitEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableAttempts(v *int) *UnitEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *UnitEventUpdate) AddAttempts(v int) *UnitEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBlockCount sets the "block_count" field.
func (_u *UnitEventUpdate) SetBlockCount(v int) *UnitEventUpdate {
	_u.mutation.ResetBlockCount()
	_u.mutation.SetBlockCount(v)
	return _u
}

// SetNillableBlockCount sets the "block_count" field if the given value is not nil.
func (_u *UnitEventUpdate) SetNillableBlockCount(v *int) *UnitEventUpdate {
	if v != nil {
		_u.SetBlockCount(*v)
	}
	return _u
}

// AddBlockCount adds value to the "block_count" field.
func (_u *UnitEventUpdate) AddBlockCount(v int) *UnitEventUpdate {
	_u.mutation.AddBlockCount(v)
	return _u
}

// Mutation returns the UnitEventMutation object of the builder.
func (_u *UnitEventUpdate) Mutation() *UnitEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnitEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(unitevent.Table, unitevent.Columns, sqlgraph.NewFieldSpec(unitevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(unitevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(unitevent.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(unitevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unitevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(unitevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(unitevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockCount(); ok {
		_spec.SetField(unitevent.FieldBlockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockCount(); ok {
		_spec.AddField(unitevent.FieldBlockCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitEventUpdateOne is the builder for updating a single UnitEvent entity.
type UnitEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitEventMutation
}

// SetTopic sets the "topic" field.
func (_u *UnitEventUpdateOne) SetTopic(v string) *UnitEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableTopic(v *string) *UnitEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetBand sets the "band" field.
func (_u *UnitEventUpdateOne) SetBand(v string) *UnitEventUpdateOne {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableBand(v *string) *UnitEventUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *UnitEventUpdateOne) SetTier(v string) *UnitEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableTier(v *string) *UnitEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitEventUpdateOne) SetStatus(v string) *UnitEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableStatus(v *string) *UnitEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *UnitEventUpdateOne) SetAttempts(v int) *UnitEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableAttempts(v *int) *UnitEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *UnitEventUpdateOne) AddAttempts(v int) *UnitEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBlockCount sets the "block_count" field.
func (_u *UnitEventUpdateOne) SetBlockCount(v int) *UnitEventUpdateOne {
	_u.mutation.ResetBlockCount()
	_u.mutation.SetBlockCount(v)
	return _u
}

// SetNillableBlockCount sets the "block_count" field if the given value is not nil.
func (_u *UnitEventUpdateOne) SetNillableBlockCount(v *int) *UnitEventUpdateOne {
	if v != nil {
		_u.SetBlockCount(*v)
	}
	return _u
}

// AddBlockCount adds value to the "block_count" field.
func (_u *UnitEventUpdateOne) AddBlockCount(v int) *UnitEventUpdateOne {
	_u.mutation.AddBlockCount(v)
	return _u
}

// Mutation returns the UnitEventMutation object of the builder.
func (_u *UnitEventUpdateOne) Mutation() *UnitEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitEventUpdate builder.
func (_u *UnitEventUpdateOne) Where(ps ...predicate.UnitEvent) *UnitEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitEventUpdateOne) Select(field string, fields ...string) *UnitEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnitEvent entity.
func (_u *UnitEventUpdateOne) Save(ctx context.Context) (*UnitEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitEventUpdateOne) SaveX(ctx context.Context) *UnitEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnitEventUpdateOne) sqlSave(ctx context.Context) (_node *UnitEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(unitevent.Table, unitevent.Columns, sqlgraph.NewFieldSpec(unitevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitevent.FieldID)
		for _, f := range fields {
			if !unitevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(unitevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(unitevent.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(unitevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unitevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(unitevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(unitevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockCount(); ok {
		_spec.SetField(unitevent.FieldBlockCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockCount(); ok {
		_spec.AddField(unitevent.FieldBlockCount, field.TypeInt, value)
	}
	_node = &UnitEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
