// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openlistings/formflow/internal/ent/category"
	"github.com/openlistings/formflow/internal/ent/draft"
	"github.com/openlistings/formflow/internal/ent/image"
	"github.com/openlistings/formflow/internal/ent/record"
	"github.com/openlistings/formflow/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCategoryID is the schema descriptor for category_id field.
	categoryDescCategoryID := categoryFields[0].Descriptor()
	// category.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	category.CategoryIDValidator = categoryDescCategoryID.Validators[0].(func(string) error)
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescKind is the schema descriptor for kind field.
	categoryDescKind := categoryFields[2].Descriptor()
	// category.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	category.KindValidator = categoryDescKind.Validators[0].(func(string) error)
	// categoryDescSortOrder is the schema descriptor for sort_order field.
	categoryDescSortOrder := categoryFields[3].Descriptor()
	// category.DefaultSortOrder holds the default value on creation for the sort_order field.
	category.DefaultSortOrder = categoryDescSortOrder.Default.(int)
	draftFields := schema.Draft{}.Fields()
	_ = draftFields
	// draftDescDraftID is the schema descriptor for draft_id field.
	draftDescDraftID := draftFields[0].Descriptor()
	// draft.DraftIDValidator is a validator for the "draft_id" field. It is called by the builders before save.
	draft.DraftIDValidator = draftDescDraftID.Validators[0].(func(string) error)
	// draftDescOwnerID is the schema descriptor for owner_id field.
	draftDescOwnerID := draftFields[1].Descriptor()
	// draft.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	draft.OwnerIDValidator = draftDescOwnerID.Validators[0].(func(string) error)
	// draftDescKind is the schema descriptor for kind field.
	draftDescKind := draftFields[2].Descriptor()
	// draft.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	draft.KindValidator = draftDescKind.Validators[0].(func(string) error)
	// draftDescUpdatedAt is the schema descriptor for updated_at field.
	draftDescUpdatedAt := draftFields[5].Descriptor()
	// draft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	draft.DefaultUpdatedAt = draftDescUpdatedAt.Default.(func() time.Time)
	// draft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	draft.UpdateDefaultUpdatedAt = draftDescUpdatedAt.UpdateDefault.(func() time.Time)
	imageFields := schema.Image{}.Fields()
	_ = imageFields
	// imageDescImageID is the schema descriptor for image_id field.
	imageDescImageID := imageFields[0].Descriptor()
	// image.ImageIDValidator is a validator for the "image_id" field. It is called by the builders before save.
	image.ImageIDValidator = imageDescImageID.Validators[0].(func(string) error)
	// imageDescOwnerID is the schema descriptor for owner_id field.
	imageDescOwnerID := imageFields[1].Descriptor()
	// image.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	image.OwnerIDValidator = imageDescOwnerID.Validators[0].(func(string) error)
	// imageDescCreatedAt is the schema descriptor for created_at field.
	imageDescCreatedAt := imageFields[5].Descriptor()
	// image.DefaultCreatedAt holds the default value on creation for the created_at field.
	image.DefaultCreatedAt = imageDescCreatedAt.Default.(func() time.Time)
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescRecordID is the schema descriptor for record_id field.
	recordDescRecordID := recordFields[0].Descriptor()
	// record.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	record.RecordIDValidator = recordDescRecordID.Validators[0].(func(string) error)
	// recordDescOwnerID is the schema descriptor for owner_id field.
	recordDescOwnerID := recordFields[1].Descriptor()
	// record.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	record.OwnerIDValidator = recordDescOwnerID.Validators[0].(func(string) error)
	// recordDescKind is the schema descriptor for kind field.
	recordDescKind := recordFields[2].Descriptor()
	// record.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	record.KindValidator = recordDescKind.Validators[0].(func(string) error)
	// recordDescStatus is the schema descriptor for status field.
	recordDescStatus := recordFields[5].Descriptor()
	// record.DefaultStatus holds the default value on creation for the status field.
	record.DefaultStatus = recordDescStatus.Default.(string)
	// recordDescCreatedAt is the schema descriptor for created_at field.
	recordDescCreatedAt := recordFields[6].Descriptor()
	// record.DefaultCreatedAt holds the default value on creation for the created_at field.
	record.DefaultCreatedAt = recordDescCreatedAt.Default.(func() time.Time)
	// recordDescUpdatedAt is the schema descriptor for updated_at field.
	recordDescUpdatedAt := recordFields[7].Descriptor()
	// record.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	record.DefaultUpdatedAt = recordDescUpdatedAt.Default.(func() time.Time)
	// record.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	record.UpdateDefaultUpdatedAt = recordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
