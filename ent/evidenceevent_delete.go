// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/traitlab/ent/evidenceevent"
	"github.com/smehra/traitlab/ent/predicate"
)

// EvidenceEventDelete is the builder for deleting a EvidenceEvent entity.
type EvidenceEventDelete struct {
	config
	hooks    []Hook
	mutation *EvidenceEventMutation
}

// Where appends a list predicates to the EvidenceEventDelete builder.
func (_d *EvidenceEventDelete) Where(ps ...predicate.EvidenceEvent) *EvidenceEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvidenceEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvidenceEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evidenceevent.Table, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EvidenceEventDeleteOne is the builder for deleting a single EvidenceEvent entity.
type EvidenceEventDeleteOne struct {
	_d *EvidenceEventDelete
}

// Where appends a list predicates to the EvidenceEventDelete builder.
func (_d *EvidenceEventDeleteOne) Where(ps ...predicate.EvidenceEvent) *EvidenceEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvidenceEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evidenceevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
