// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/EyalShefer/ai-lms-system-sub002/ent/unitevent"
)

// UnitEventCreate is the builder for creating a UnitEvent entity.
type UnitEventCreate struct {
	config
	mutation *UnitEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *UnitEventCreate) SetSequence(v int64) *UnitEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *UnitEventCreate) SetTimestamp(v time.Time) *UnitEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *UnitEventCreate) SetNillableTimestamp(v *time.Time) *UnitEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *UnitEventCreate) SetTopic(v string) *UnitEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetBand sets the "band" field.
func (_c *UnitEventCreate) SetBand(v string) *UnitEventCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *UnitEventCreate) SetTier(v string) *UnitEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UnitEventCreate) SetStatus(v string) *UnitEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *UnitEventCreate) SetAttempts(v int) *UnitEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *UnitEventCreate) SetNillableAttempts(v *int) *UnitEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetBlockCount sets the "block_count" field.
func (_c *UnitEventCreate) SetBlockCount(v int) *UnitEventCreate {
	_c.mutation.SetBlockCount(v)
	return _c
}

// SetNillableBlockCount sets the "block_count" field if the given value is not nil.
func (_c *UnitEventCreate) SetNillableBlockCount(v *int) *UnitEventCreate {
	if v != nil {
		_c.SetBlockCount(*v)
	}
	return _c
}

// Mutation returns the UnitEventMutation object of the builder.
func (_c *UnitEventCreate) Mutation() *UnitEventMutation {
	return _c.mutation
}

// Save creates the UnitEvent in the database.
func (_c *UnitEventCreate) Save(ctx context.Context) (*UnitEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitEventCreate) SaveX(ctx context.Context) *UnitEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := unitevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := unitevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.BlockCount(); !ok {
		v := unitevent.DefaultBlockCount
		_c.mutation.SetBlockCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "UnitEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UnitEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "UnitEvent.topic"`)}
	}
	if _, ok := _c.mutation.Band(); !ok {
		return &ValidationError{Name: "band", err: errors.New(`ent: missing required field "UnitEvent.band"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "UnitEvent.tier"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UnitEvent.status"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "UnitEvent.attempts"`)}
	}
	if _, ok := _c.mutation.BlockCount(); !ok {
		return &ValidationError{Name: "block_count", err: errors.New(`ent: missing required field "UnitEvent.block_count"`)}
	}
	return nil
}

func (_c *UnitEventCreate) sqlSave(ctx context.Context) (*UnitEvent, error) {
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

func (_c *UnitEventCreate) createSpec() (*UnitEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UnitEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unitevent.Table, sqlgraph.NewFieldSpec(unitevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(unitevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(unitevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(unitevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(unitevent.FieldBand, field.TypeString, value)
		_node.Band = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(unitevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(unitevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(unitevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.BlockCount(); ok {
		_spec.SetField(unitevent.FieldBlockCount, field.TypeInt, value)
		_node.BlockCount = value
	}
	return _node, _spec
}

// UnitEventCreateBulk is the builder for creating many UnitEvent entities in bulk.
type UnitEventCreateBulk struct {
	config
	err      error
	builders []*UnitEventCreate
}

// Save creates the UnitEvent entities in the database.
func (_c *UnitEventCreateBulk) Save(ctx context.Context) ([]*UnitEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnitEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitEventMutation)
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
func (_c *UnitEventCreateBulk) SaveX(ctx context.Context) []*UnitEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
