package entservice

import (
	"context"
	"testing"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
)

func openSQLite(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	svc, err := Open(ctx, "sqlite:file:entservice_"+t.Name()+"?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	if err := svc.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return svc
}

func sampleFields() listing.Fields {
	return listing.Fields{
		Title:       "Winter night market",
		Description: "A night market with food stalls, crafts and mulled drinks.",
		CategoryID:  "cat-markets",
		Region:      "north",
		StartDate:   "2026-12-05",
		TicketType:  listing.TicketFree,
	}
}

func TestSQLiteRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := openSQLite(t)

	created, err := svc.CreateRecord(ctx, listing.NewRecord{
		OwnerID:   "u1",
		Kind:      listing.KindEvent,
		Fields:    sampleFields(),
		ImageURLs: []string{"blob:a", "blob:b"},
		Status:    listing.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("no record id assigned")
	}

	got, err := svc.GetRecordByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Fields.Title != "Winter night market" || got.Kind != listing.KindEvent {
		t.Fatalf("got=%+v", got)
	}
	if len(got.ImageURLs) != 2 || got.ImageURLs[0] != "blob:a" {
		t.Fatalf("images=%v", got.ImageURLs)
	}

	f := got.Fields
	f.Title = "Winter night market (extended)"
	upd, err := svc.UpdateRecord(ctx, created.ID, listing.RecordUpdate{
		Fields:    f,
		ImageURLs: []string{"blob:b"},
		Status:    listing.StatusPublished,
	})
	if err != nil {
		t.Fatal(err)
	}
	if upd.Status != listing.StatusPublished || len(upd.ImageURLs) != 1 {
		t.Fatalf("upd=%+v", upd)
	}
}

func TestSQLiteGetRecordNotFound(t *testing.T) {
	svc := openSQLite(t)
	_, err := svc.GetRecordByID(context.Background(), "ghost")
	if errmodel.From(err).Code != "not_found" {
		t.Fatalf("err=%v", err)
	}
}

func TestSQLiteDraftUpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	svc := openSQLite(t)

	d1, err := svc.SaveDraft(ctx, listing.DraftRecord{
		OwnerID: "u1",
		Kind:    listing.KindEvent,
		Fields:  sampleFields(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if d1.ID == "" {
		t.Fatal("no draft id assigned")
	}

	f := sampleFields()
	f.Title = "Winter night market v2"
	d2, err := svc.SaveDraft(ctx, listing.DraftRecord{
		ID:      d1.ID,
		OwnerID: "u1",
		Kind:    listing.KindEvent,
		Fields:  f,
	})
	if err != nil {
		t.Fatal(err)
	}
	if d2.ID != d1.ID {
		t.Fatalf("draft id changed: %s -> %s", d1.ID, d2.ID)
	}

	drafts, err := svc.ListDraftsByOwner(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts=%d want 1", len(drafts))
	}
	if drafts[0].Fields.Title != "Winter night market v2" {
		t.Fatalf("draft=%+v", drafts[0])
	}
}

func TestSQLiteDraftOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	svc := openSQLite(t)

	d, err := svc.SaveDraft(ctx, listing.DraftRecord{OwnerID: "u1", Kind: listing.KindEvent, Fields: sampleFields()})
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.SaveDraft(ctx, listing.DraftRecord{ID: d.ID, OwnerID: "intruder", Kind: listing.KindEvent, Fields: sampleFields()})
	if !errmodel.IsCategory(err, errmodel.CategoryAuth) {
		t.Fatalf("err=%v", err)
	}

	// Deleting with the wrong owner is a silent no-op; the row survives.
	if err := svc.DeleteDraft(ctx, d.ID, "intruder"); err != nil {
		t.Fatal(err)
	}
	drafts, err := svc.ListDraftsByOwner(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts=%d want 1", len(drafts))
	}

	if err := svc.DeleteDraft(ctx, d.ID, "u1"); err != nil {
		t.Fatal(err)
	}
	drafts, err = svc.ListDraftsByOwner(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 0 {
		t.Fatalf("drafts=%d want 0", len(drafts))
	}
}

func TestSQLiteImageRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := openSQLite(t)

	url, err := svc.UploadImage(ctx, listing.File{Name: "cover.jpg", MIME: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(url) <= len("blob:") {
		t.Fatalf("url=%q", url)
	}

	f, err := svc.GetImage(ctx, url)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "cover.jpg" || f.MIME != "image/jpeg" || len(f.Data) != 3 {
		t.Fatalf("file=%+v", f)
	}
}

func TestSQLiteSeedCategoriesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := openSQLite(t)

	cats := []listing.Category{
		{ID: "cat-markets", Name: "Markets", Kind: listing.KindEvent},
		{ID: "cat-food", Name: "Food & Drink", Kind: listing.KindBusiness},
	}
	if err := svc.SeedCategories(ctx, cats); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedCategories(ctx, cats); err != nil {
		t.Fatal(err)
	}
	got, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("categories=%d want 2", len(got))
	}
	if got[0].ID != "cat-markets" {
		t.Fatalf("order wrong: %+v", got)
	}
}
