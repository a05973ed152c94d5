// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openlistings/formflow/internal/ent/draft"
)

// Draft is the model entity for the Draft schema.
type Draft struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DraftID holds the value of the "draft_id" field.
	DraftID string `json:"draft_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields map[string]interface{} `json:"fields,omitempty"`
	// PreviewThumbnail holds the value of the "preview_thumbnail" field.
	PreviewThumbnail string `json:"preview_thumbnail,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Draft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case draft.FieldFields:
			values[i] = new([]byte)
		case draft.FieldID:
			values[i] = new(sql.NullInt64)
		case draft.FieldDraftID, draft.FieldOwnerID, draft.FieldKind, draft.FieldPreviewThumbnail:
			values[i] = new(sql.NullString)
		case draft.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Draft fields.
func (_m *Draft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case draft.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case draft.FieldDraftID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field draft_id", values[i])
			} else if value.Valid {
				_m.DraftID = value.String
			}
		case draft.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case draft.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case draft.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case draft.FieldPreviewThumbnail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_thumbnail", values[i])
			} else if value.Valid {
				_m.PreviewThumbnail = value.String
			}
		case draft.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Draft.
// This includes values selected through modifiers, order, etc.
func (_m *Draft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Draft.
// Note that you need to call Draft.Unwrap() before calling this method if this Draft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Draft) Update() *DraftUpdateOne {
	return NewDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Draft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Draft) Unwrap() *Draft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Draft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Draft) String() string {
	var builder strings.Builder
	builder.WriteString("Draft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("draft_id=")
	builder.WriteString(_m.DraftID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("preview_thumbnail=")
	builder.WriteString(_m.PreviewThumbnail)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Drafts is a parsable slice of Draft.
type Drafts []*Draft
