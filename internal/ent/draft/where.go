// Code generated by ent, DO NOT EDIT.

package draft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/openlistings/formflow/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldID, id))
}

// DraftID applies equality check predicate on the "draft_id" field. It's identical to DraftIDEQ.
func DraftID(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldDraftID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldOwnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldKind, v))
}

// PreviewThumbnail applies equality check predicate on the "preview_thumbnail" field. It's identical to PreviewThumbnailEQ.
func PreviewThumbnail(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldPreviewThumbnail, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldUpdatedAt, v))
}

// DraftIDEQ applies the EQ predicate on the "draft_id" field.
func DraftIDEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldDraftID, v))
}

// DraftIDNEQ applies the NEQ predicate on the "draft_id" field.
func DraftIDNEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldDraftID, v))
}

// DraftIDIn applies the In predicate on the "draft_id" field.
func DraftIDIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldDraftID, vs...))
}

// DraftIDNotIn applies the NotIn predicate on the "draft_id" field.
func DraftIDNotIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldDraftID, vs...))
}

// DraftIDGT applies the GT predicate on the "draft_id" field.
func DraftIDGT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldDraftID, v))
}

// DraftIDGTE applies the GTE predicate on the "draft_id" field.
func DraftIDGTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldDraftID, v))
}

// DraftIDLT applies the LT predicate on the "draft_id" field.
func DraftIDLT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldDraftID, v))
}

// DraftIDLTE applies the LTE predicate on the "draft_id" field.
func DraftIDLTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldDraftID, v))
}

// DraftIDContains applies the Contains predicate on the "draft_id" field.
func DraftIDContains(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContains(FieldDraftID, v))
}

// DraftIDHasPrefix applies the HasPrefix predicate on the "draft_id" field.
func DraftIDHasPrefix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasPrefix(FieldDraftID, v))
}

// DraftIDHasSuffix applies the HasSuffix predicate on the "draft_id" field.
func DraftIDHasSuffix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasSuffix(FieldDraftID, v))
}

// DraftIDEqualFold applies the EqualFold predicate on the "draft_id" field.
func DraftIDEqualFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEqualFold(FieldDraftID, v))
}

// DraftIDContainsFold applies the ContainsFold predicate on the "draft_id" field.
func DraftIDContainsFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContainsFold(FieldDraftID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContainsFold(FieldOwnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContainsFold(FieldKind, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.Draft {
	return predicate.Draft(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.Draft {
	return predicate.Draft(sql.FieldNotNull(FieldFields))
}

// PreviewThumbnailEQ applies the EQ predicate on the "preview_thumbnail" field.
func PreviewThumbnailEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldPreviewThumbnail, v))
}

// PreviewThumbnailNEQ applies the NEQ predicate on the "preview_thumbnail" field.
func PreviewThumbnailNEQ(v string) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldPreviewThumbnail, v))
}

// PreviewThumbnailIn applies the In predicate on the "preview_thumbnail" field.
func PreviewThumbnailIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldPreviewThumbnail, vs...))
}

// PreviewThumbnailNotIn applies the NotIn predicate on the "preview_thumbnail" field.
func PreviewThumbnailNotIn(vs ...string) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldPreviewThumbnail, vs...))
}

// PreviewThumbnailGT applies the GT predicate on the "preview_thumbnail" field.
func PreviewThumbnailGT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldPreviewThumbnail, v))
}

// PreviewThumbnailGTE applies the GTE predicate on the "preview_thumbnail" field.
func PreviewThumbnailGTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldPreviewThumbnail, v))
}

// PreviewThumbnailLT applies the LT predicate on the "preview_thumbnail" field.
func PreviewThumbnailLT(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldPreviewThumbnail, v))
}

// PreviewThumbnailLTE applies the LTE predicate on the "preview_thumbnail" field.
func PreviewThumbnailLTE(v string) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldPreviewThumbnail, v))
}

// PreviewThumbnailContains applies the Contains predicate on the "preview_thumbnail" field.
func PreviewThumbnailContains(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContains(FieldPreviewThumbnail, v))
}

// PreviewThumbnailHasPrefix applies the HasPrefix predicate on the "preview_thumbnail" field.
func PreviewThumbnailHasPrefix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasPrefix(FieldPreviewThumbnail, v))
}

// PreviewThumbnailHasSuffix applies the HasSuffix predicate on the "preview_thumbnail" field.
func PreviewThumbnailHasSuffix(v string) predicate.Draft {
	return predicate.Draft(sql.FieldHasSuffix(FieldPreviewThumbnail, v))
}

// PreviewThumbnailIsNil applies the IsNil predicate on the "preview_thumbnail" field.
func PreviewThumbnailIsNil() predicate.Draft {
	return predicate.Draft(sql.FieldIsNull(FieldPreviewThumbnail))
}

// PreviewThumbnailNotNil applies the NotNil predicate on the "preview_thumbnail" field.
func PreviewThumbnailNotNil() predicate.Draft {
	return predicate.Draft(sql.FieldNotNull(FieldPreviewThumbnail))
}

// PreviewThumbnailEqualFold applies the EqualFold predicate on the "preview_thumbnail" field.
func PreviewThumbnailEqualFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldEqualFold(FieldPreviewThumbnail, v))
}

// PreviewThumbnailContainsFold applies the ContainsFold predicate on the "preview_thumbnail" field.
func PreviewThumbnailContainsFold(v string) predicate.Draft {
	return predicate.Draft(sql.FieldContainsFold(FieldPreviewThumbnail, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Draft {
	return predicate.Draft(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Draft) predicate.Draft {
	return predicate.Draft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Draft) predicate.Draft {
	return predicate.Draft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Draft) predicate.Draft {
	return predicate.Draft(sql.NotPredicates(p))
}
