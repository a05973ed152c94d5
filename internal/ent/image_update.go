// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openlistings/formflow/internal/ent/image"
	"github.com/openlistings/formflow/internal/ent/predicate"
)

// ImageUpdate is the builder for updating Image entities.
type ImageUpdate struct {
	config
	hooks    []Hook
	mutation *ImageMutation
}

// Where appends a list predicates to the ImageUpdate builder.
func (_u *ImageUpdate) Where(ps ...predicate.Image) *ImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *ImageUpdate) SetImageID(v string) *ImageUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableImageID(v *string) *ImageUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ImageUpdate) SetOwnerID(v string) *ImageUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableOwnerID(v *string) *ImageUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ImageUpdate) SetName(v string) *ImageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableName(v *string) *ImageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ImageUpdate) ClearName() *ImageUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetMime sets the "mime" field.
func (_u *ImageUpdate) SetMime(v string) *ImageUpdate {
	_u.mutation.SetMime(v)
	return _u
}

// SetNillableMime sets the "mime" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableMime(v *string) *ImageUpdate {
	if v != nil {
		_u.SetMime(*v)
	}
	return _u
}

// ClearMime clears the value of the "mime" field.
func (_u *ImageUpdate) ClearMime() *ImageUpdate {
	_u.mutation.ClearMime()
	return _u
}

// SetContent sets the "content" field.
func (_u *ImageUpdate) SetContent(v []byte) *ImageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the ImageMutation object of the builder.
func (_u *ImageUpdate) Mutation() *ImageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageUpdate) check() error {
	if v, ok := _u.mutation.ImageID(); ok {
		if err := image.ImageIDValidator(v); err != nil {
			return &ValidationError{Name: "image_id", err: fmt.Errorf(`ent: validator failed for field "Image.image_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := image.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Image.owner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(image.Table, image.Columns, sqlgraph.NewFieldSpec(image.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImageID(); ok {
		_spec.SetField(image.FieldImageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(image.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(image.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(image.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Mime(); ok {
		_spec.SetField(image.FieldMime, field.TypeString, value)
	}
	if _u.mutation.MimeCleared() {
		_spec.ClearField(image.FieldMime, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(image.FieldContent, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{image.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImageUpdateOne is the builder for updating a single Image entity.
type ImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageMutation
}

// SetImageID sets the "image_id" field.
func (_u *ImageUpdateOne) SetImageID(v string) *ImageUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableImageID(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ImageUpdateOne) SetOwnerID(v string) *ImageUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableOwnerID(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ImageUpdateOne) SetName(v string) *ImageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableName(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ImageUpdateOne) ClearName() *ImageUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetMime sets the "mime" field.
func (_u *ImageUpdateOne) SetMime(v string) *ImageUpdateOne {
	_u.mutation.SetMime(v)
	return _u
}

// SetNillableMime sets the "mime" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableMime(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetMime(*v)
	}
	return _u
}

// ClearMime clears the value of the "mime" field.
func (_u *ImageUpdateOne) ClearMime() *ImageUpdateOne {
	_u.mutation.ClearMime()
	return _u
}

// SetContent sets the "content" field.
func (_u *ImageUpdateOne) SetContent(v []byte) *ImageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the ImageMutation object of the builder.
func (_u *ImageUpdateOne) Mutation() *ImageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImageUpdate builder.
func (_u *ImageUpdateOne) Where(ps ...predicate.Image) *ImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImageUpdateOne) Select(field string, fields ...string) *ImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Image entity.
func (_u *ImageUpdateOne) Save(ctx context.Context) (*Image, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageUpdateOne) SaveX(ctx context.Context) *Image {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageUpdateOne) check() error {
	if v, ok := _u.mutation.ImageID(); ok {
		if err := image.ImageIDValidator(v); err != nil {
			return &ValidationError{Name: "image_id", err: fmt.Errorf(`ent: validator failed for field "Image.image_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := image.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Image.owner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageUpdateOne) sqlSave(ctx context.Context) (_node *Image, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(image.Table, image.Columns, sqlgraph.NewFieldSpec(image.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Image.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, image.FieldID)
		for _, f := range fields {
			if !image.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != image.FieldID {
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
	if value, ok := _u.mutation.ImageID(); ok {
		_spec.SetField(image.FieldImageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(image.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(image.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(image.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Mime(); ok {
		_spec.SetField(image.FieldMime, field.TypeString, value)
	}
	if _u.mutation.MimeCleared() {
		_spec.ClearField(image.FieldMime, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(image.FieldContent, field.TypeBytes, value)
	}
	_node = &Image{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{image.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
