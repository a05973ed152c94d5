// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/openlistings/formflow/internal/ent/predicate"
	"github.com/openlistings/formflow/internal/ent/record"
)

// RecordUpdate is the builder for updating Record entities.
type RecordUpdate struct {
	config
	hooks    []Hook
	mutation *RecordMutation
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdate) Where(ps ...predicate.Record) *RecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *RecordUpdate) SetRecordID(v string) *RecordUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableRecordID(v *string) *RecordUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *RecordUpdate) SetOwnerID(v string) *RecordUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableOwnerID(v *string) *RecordUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RecordUpdate) SetKind(v string) *RecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableKind(v *string) *RecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *RecordUpdate) SetFields(v map[string]interface{}) *RecordUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *RecordUpdate) ClearFields() *RecordUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetImages sets the "images" field.
func (_u *RecordUpdate) SetImages(v []string) *RecordUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *RecordUpdate) AppendImages(v []string) *RecordUpdate {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *RecordUpdate) ClearImages() *RecordUpdate {
	_u.mutation.ClearImages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordUpdate) SetStatus(v string) *RecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableStatus(v *string) *RecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordUpdate) SetUpdatedAt(v time.Time) *RecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdate) Mutation() *RecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := record.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := record.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Record.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := record.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Record.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := record.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Record.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(record.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(record.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(record.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(record.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(record.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(record.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(record.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(record.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(record.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordUpdateOne is the builder for updating a single Record entity.
type RecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordMutation
}

// SetRecordID sets the "record_id" field.
func (_u *RecordUpdateOne) SetRecordID(v string) *RecordUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableRecordID(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *RecordUpdateOne) SetOwnerID(v string) *RecordUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableOwnerID(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RecordUpdateOne) SetKind(v string) *RecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableKind(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *RecordUpdateOne) SetFields(v map[string]interface{}) *RecordUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *RecordUpdateOne) ClearFields() *RecordUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetImages sets the "images" field.
func (_u *RecordUpdateOne) SetImages(v []string) *RecordUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *RecordUpdateOne) AppendImages(v []string) *RecordUpdateOne {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *RecordUpdateOne) ClearImages() *RecordUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordUpdateOne) SetStatus(v string) *RecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableStatus(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordUpdateOne) SetUpdatedAt(v time.Time) *RecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdateOne) Mutation() *RecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdateOne) Where(ps ...predicate.Record) *RecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordUpdateOne) Select(field string, fields ...string) *RecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Record entity.
func (_u *RecordUpdateOne) Save(ctx context.Context) (*Record, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdateOne) SaveX(ctx context.Context) *Record {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := record.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := record.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Record.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := record.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Record.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := record.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Record.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordUpdateOne) sqlSave(ctx context.Context) (_node *Record, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Record.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, record.FieldID)
		for _, f := range fields {
			if !record.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != record.FieldID {
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
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(record.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(record.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(record.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(record.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(record.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(record.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(record.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(record.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(record.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Record{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
