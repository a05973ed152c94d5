// Code generated by ent, DO NOT EDIT.

package draft

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the draft type in the database.
	Label = "draft"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDraftID holds the string denoting the draft_id field in the database.
	FieldDraftID = "draft_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldPreviewThumbnail holds the string denoting the preview_thumbnail field in the database.
	FieldPreviewThumbnail = "preview_thumbnail"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the draft in the database.
	Table = "drafts"
)

// Columns holds all SQL columns for draft fields.
var Columns = []string{
	FieldID,
	FieldDraftID,
	FieldOwnerID,
	FieldKind,
	FieldFields,
	FieldPreviewThumbnail,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DraftIDValidator is a validator for the "draft_id" field. It is called by the builders before save.
	DraftIDValidator func(string) error
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Draft queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDraftID orders the results by the draft_id field.
func ByDraftID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraftID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPreviewThumbnail orders the results by the preview_thumbnail field.
func ByPreviewThumbnail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewThumbnail, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
