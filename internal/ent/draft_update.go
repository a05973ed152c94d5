// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openlistings/formflow/internal/ent/draft"
	"github.com/openlistings/formflow/internal/ent/predicate"
)

// DraftUpdate is the builder for updating Draft entities.
type DraftUpdate struct {
	config
	hooks    []Hook
	mutation *DraftMutation
}

// Where appends a list predicates to the DraftUpdate builder.
func (_u *DraftUpdate) Where(ps ...predicate.Draft) *DraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftUpdate) SetDraftID(v string) *DraftUpdate {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableDraftID(v *string) *DraftUpdate {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DraftUpdate) SetOwnerID(v string) *DraftUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableOwnerID(v *string) *DraftUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DraftUpdate) SetKind(v string) *DraftUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableKind(v *string) *DraftUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *DraftUpdate) SetFields(v map[string]interface{}) *DraftUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *DraftUpdate) ClearFields() *DraftUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetPreviewThumbnail sets the "preview_thumbnail" field.
func (_u *DraftUpdate) SetPreviewThumbnail(v string) *DraftUpdate {
	_u.mutation.SetPreviewThumbnail(v)
	return _u
}

// SetNillablePreviewThumbnail sets the "preview_thumbnail" field if the given value is not nil.
func (_u *DraftUpdate) SetNillablePreviewThumbnail(v *string) *DraftUpdate {
	if v != nil {
		_u.SetPreviewThumbnail(*v)
	}
	return _u
}

// ClearPreviewThumbnail clears the value of the "preview_thumbnail" field.
func (_u *DraftUpdate) ClearPreviewThumbnail() *DraftUpdate {
	_u.mutation.ClearPreviewThumbnail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DraftUpdate) SetUpdatedAt(v time.Time) *DraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DraftMutation object of the builder.
func (_u *DraftUpdate) Mutation() *DraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := draft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftUpdate) check() error {
	if v, ok := _u.mutation.DraftID(); ok {
		if err := draft.DraftIDValidator(v); err != nil {
			return &ValidationError{Name: "draft_id", err: fmt.Errorf(`ent: validator failed for field "Draft.draft_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := draft.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Draft.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := draft.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Draft.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draft.Table, draft.Columns, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DraftID(); ok {
		_spec.SetField(draft.FieldDraftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(draft.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(draft.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(draft.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(draft.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreviewThumbnail(); ok {
		_spec.SetField(draft.FieldPreviewThumbnail, field.TypeString, value)
	}
	if _u.mutation.PreviewThumbnailCleared() {
		_spec.ClearField(draft.FieldPreviewThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(draft.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DraftUpdateOne is the builder for updating a single Draft entity.
type DraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DraftMutation
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftUpdateOne) SetDraftID(v string) *DraftUpdateOne {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableDraftID(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DraftUpdateOne) SetOwnerID(v string) *DraftUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableOwnerID(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DraftUpdateOne) SetKind(v string) *DraftUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableKind(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *DraftUpdateOne) SetFields(v map[string]interface{}) *DraftUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *DraftUpdateOne) ClearFields() *DraftUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetPreviewThumbnail sets the "preview_thumbnail" field.
func (_u *DraftUpdateOne) SetPreviewThumbnail(v string) *DraftUpdateOne {
	_u.mutation.SetPreviewThumbnail(v)
	return _u
}

// SetNillablePreviewThumbnail sets the "preview_thumbnail" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillablePreviewThumbnail(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetPreviewThumbnail(*v)
	}
	return _u
}

// ClearPreviewThumbnail clears the value of the "preview_thumbnail" field.
func (_u *DraftUpdateOne) ClearPreviewThumbnail() *DraftUpdateOne {
	_u.mutation.ClearPreviewThumbnail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DraftUpdateOne) SetUpdatedAt(v time.Time) *DraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DraftMutation object of the builder.
func (_u *DraftUpdateOne) Mutation() *DraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the DraftUpdate builder.
func (_u *DraftUpdateOne) Where(ps ...predicate.Draft) *DraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DraftUpdateOne) Select(field string, fields ...string) *DraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Draft entity.
func (_u *DraftUpdateOne) Save(ctx context.Context) (*Draft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftUpdateOne) SaveX(ctx context.Context) *Draft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := draft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftUpdateOne) check() error {
	if v, ok := _u.mutation.DraftID(); ok {
		if err := draft.DraftIDValidator(v); err != nil {
			return &ValidationError{Name: "draft_id", err: fmt.Errorf(`ent: validator failed for field "Draft.draft_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := draft.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Draft.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := draft.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Draft.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftUpdateOne) sqlSave(ctx context.Context) (_node *Draft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draft.Table, draft.Columns, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Draft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, draft.FieldID)
		for _, f := range fields {
			if !draft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != draft.FieldID {
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
	if value, ok := _u.mutation.DraftID(); ok {
		_spec.SetField(draft.FieldDraftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(draft.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(draft.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(draft.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(draft.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreviewThumbnail(); ok {
		_spec.SetField(draft.FieldPreviewThumbnail, field.TypeString, value)
	}
	if _u.mutation.PreviewThumbnailCleared() {
		_spec.ClearField(draft.FieldPreviewThumbnail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(draft.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Draft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
