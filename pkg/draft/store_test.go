package draft

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/listingtest"
	"github.com/openlistings/formflow/pkg/localstate"
)

func testLocal(t *testing.T) *localstate.Store {
	t.Helper()
	local, err := localstate.Open("file:" + t.Name() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = local.Close() })
	return local
}

func someFields() listing.Fields {
	return listing.Fields{Title: "Harvest festival", Description: "Apples, cider and a parade.", CategoryID: "cat-markets"}
}

func TestSave_ReusesIdentity(t *testing.T) {
	svc := listingtest.NewFakeService()
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t))
	defer s.Close()
	ctx := context.Background()

	if err := s.Save(ctx, someFields(), Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	first := s.DraftID()
	if first == "" {
		t.Fatal("no identity adopted after first save")
	}
	if err := s.Save(ctx, someFields(), Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	if s.DraftID() != first {
		t.Fatalf("identity changed: %q -> %q", first, s.DraftID())
	}
	if n := len(svc.Drafts()); n != 1 {
		t.Fatalf("remote rows=%d want 1", n)
	}
}

func TestSave_RequiresAuth(t *testing.T) {
	svc := listingtest.NewFakeService()
	s := NewStore(svc, listingtest.FakeIdentity{}, testLocal(t))
	defer s.Close()

	err := s.Save(context.Background(), someFields(), Meta{Kind: listing.KindEvent})
	if !errmodel.IsCategory(err, errmodel.CategoryAuth) {
		t.Fatalf("err=%v", err)
	}
	if svc.CallCount("SaveDraft") != 0 {
		t.Fatal("unauthenticated save must not reach the service")
	}
}

func TestSave_InsufficientData(t *testing.T) {
	svc := listingtest.NewFakeService()
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t))
	defer s.Close()

	err := s.Save(context.Background(), listing.Fields{Region: "north"}, Meta{Kind: listing.KindEvent})
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("err=%v", err)
	}
	if svc.CallCount("SaveDraft") != 0 {
		t.Fatal("empty form must not reach the service")
	}
}

func TestSave_RetriesTransientFailures(t *testing.T) {
	svc := listingtest.NewFakeService()
	svc.SaveDraftFailures = 2
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t),
		WithRetryInterval(time.Millisecond))
	defer s.Close()

	if err := s.Save(context.Background(), someFields(), Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatalf("save should succeed on third try: %v", err)
	}
	if got := svc.CallCount("SaveDraft"); got != 3 {
		t.Fatalf("attempts=%d want 3", got)
	}
}

func TestSave_SurfacesAfterRetriesExhausted(t *testing.T) {
	svc := listingtest.NewFakeService()
	svc.SaveDraftFailures = 5
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t),
		WithRetryInterval(time.Millisecond))
	defer s.Close()

	err := s.Save(context.Background(), someFields(), Meta{Kind: listing.KindEvent})
	if !errmodel.IsCategory(err, errmodel.CategoryPersistence) {
		t.Fatalf("err=%v", err)
	}
	if got := svc.CallCount("SaveDraft"); got != 3 {
		t.Fatalf("attempts=%d want 3 (2 retries)", got)
	}
}

func TestScheduleAutoSave_Coalesces(t *testing.T) {
	svc := listingtest.NewFakeService()
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t))
	defer s.Close()

	delay := 40 * time.Millisecond
	for i := 1; i <= 5; i++ {
		f := someFields()
		f.Title = "Change " + string(rune('0'+i))
		s.ScheduleAutoSave(f, Meta{Kind: listing.KindEvent}, delay)
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(4 * delay)

	if got := svc.CallCount("SaveDraft"); got != 1 {
		t.Fatalf("saves=%d want 1", got)
	}
	for _, d := range svc.Drafts() {
		if d.Fields.Title != "Change 5" {
			t.Fatalf("saved fields from %q, want the 5th change", d.Fields.Title)
		}
	}
}

func TestScheduleAutoSave_ZeroDelayDisables(t *testing.T) {
	svc := listingtest.NewFakeService()
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t))
	defer s.Close()

	s.ScheduleAutoSave(someFields(), Meta{Kind: listing.KindEvent}, 0)
	time.Sleep(30 * time.Millisecond)
	if svc.CallCount("SaveDraft") != 0 {
		t.Fatal("zero delay must disable auto-save")
	}
}

func TestLocalSnapshot_RoundTrip(t *testing.T) {
	svc := listingtest.NewFakeService()
	local := testLocal(t)
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, local)
	defer s.Close()

	f := someFields()
	f.Region = "north"
	s.PersistLocalSnapshot(f, 3)

	// Fresh session over the same device store: no edit id, no handoff,
	// no tracked draft.
	s2 := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, local)
	defer s2.Close()
	snap, ok := s2.LoadLocalSnapshot()
	if !ok {
		t.Fatal("snapshot not found")
	}
	if snap.Fields != f {
		t.Fatalf("fields=%+v want %+v", snap.Fields, f)
	}
	if snap.ImageCount != 3 {
		t.Fatalf("image count=%d want 3", snap.ImageCount)
	}
}

func TestLocalSnapshot_SkippedInEditMode(t *testing.T) {
	svc := listingtest.NewFakeService()
	local := testLocal(t)
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, local)
	defer s.Close()

	s.PersistLocalSnapshot(someFields(), 0)
	s.SetEditMode(true)

	// Entering edit mode drops the snapshot and blocks further writes.
	if _, ok := s.LoadLocalSnapshot(); ok {
		t.Fatal("snapshot offered in edit mode")
	}
	s.PersistLocalSnapshot(someFields(), 0)
	if _, ok, _ := local.Get(localstate.KeySnapshot); ok {
		t.Fatal("snapshot written in edit mode")
	}
}

func TestHandoff_ConsumedOnceAndAdoptsIdentity(t *testing.T) {
	svc := listingtest.NewFakeService()
	local := testLocal(t)
	raw, _ := json.Marshal(Handoff{DraftID: "d-42", OwnerID: "u1", Kind: listing.KindEvent, Fields: someFields()})
	if err := local.Put(localstate.KeyHandoff, raw); err != nil {
		t.Fatal(err)
	}
	// A stale snapshot is superseded by the handoff.
	if err := local.Put(localstate.KeySnapshot, []byte(`{"fields":{"title":"old"}}`)); err != nil {
		t.Fatal(err)
	}

	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, local)
	defer s.Close()

	h, err := s.LoadFromTransientHandoff()
	if err != nil || h == nil {
		t.Fatalf("h=%v err=%v", h, err)
	}
	if h.DraftID != "d-42" || s.DraftID() != "d-42" {
		t.Fatalf("identity not adopted: %q / %q", h.DraftID, s.DraftID())
	}
	if _, ok := s.LoadLocalSnapshot(); ok {
		t.Fatal("superseded snapshot still offered")
	}

	h2, err := s.LoadFromTransientHandoff()
	if err != nil || h2 != nil {
		t.Fatalf("handoff consumed twice: %v", h2)
	}
}

func TestCleanupAfterPublish(t *testing.T) {
	svc := listingtest.NewFakeService()
	local := testLocal(t)
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, local)
	defer s.Close()
	ctx := context.Background()

	if err := s.Save(ctx, someFields(), Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	s.PersistLocalSnapshot(someFields(), 1)

	s.CleanupAfterPublish(ctx)
	if s.DraftID() != "" {
		t.Fatal("identity kept after publish")
	}
	if n := len(svc.Drafts()); n != 0 {
		t.Fatalf("remote drafts=%d want 0", n)
	}
	if _, ok, _ := local.Get(localstate.KeySnapshot); ok {
		t.Fatal("local snapshot kept after publish")
	}
}

func TestDeleteCurrentDraft_SwallowsFailures(t *testing.T) {
	svc := listingtest.NewFakeService()
	svc.DeleteDraftErr = errmodel.Timeout("delete")
	s := NewStore(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, testLocal(t))
	defer s.Close()
	ctx := context.Background()

	if err := s.Save(ctx, someFields(), Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	// Must not panic or surface anything.
	s.DeleteCurrentDraft(ctx)
	if s.DraftID() != "" {
		t.Fatal("identity kept after cleanup attempt")
	}
}
