// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "category_kind_sort_order",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[3], CategoriesColumns[4]},
			},
		},
	}
	// DraftsColumns holds the columns for the "drafts" table.
	DraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "draft_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "preview_thumbnail", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// DraftsTable holds the schema information for the "drafts" table.
	DraftsTable = &schema.Table{
		Name:       "drafts",
		Columns:    DraftsColumns,
		PrimaryKey: []*schema.Column{DraftsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "draft_owner_id",
				Unique:  false,
				Columns: []*schema.Column{DraftsColumns[2]},
			},
		},
	}
	// ImagesColumns holds the columns for the "images" table.
	ImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "image_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "mime", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// ImagesTable holds the schema information for the "images" table.
	ImagesTable = &schema.Table{
		Name:       "images",
		Columns:    ImagesColumns,
		PrimaryKey: []*schema.Column{ImagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "image_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ImagesColumns[2]},
			},
		},
	}
	// RecordsColumns holds the columns for the "records" table.
	RecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// RecordsTable holds the schema information for the "records" table.
	RecordsTable = &schema.Table{
		Name:       "records",
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "record_owner_id",
				Unique:  false,
				Columns: []*schema.Column{RecordsColumns[2]},
			},
			{
				Name:    "record_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecordsColumns[2], RecordsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		DraftsTable,
		ImagesTable,
		RecordsTable,
	}
)

func init() {
}
