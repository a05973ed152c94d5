package submit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openlistings/formflow/pkg/draft"
	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/listingtest"
	"github.com/openlistings/formflow/pkg/localstate"
)

type sink struct {
	mu        sync.Mutex
	notices   []string
	redirects []string
	progress  []Progress
}

func (s *sink) slots() (*listing.Slot[listing.NotifyFunc], *listing.Slot[listing.NavigateFunc]) {
	notify := listing.NewSlot[listing.NotifyFunc](func(level, msg string) {
		s.mu.Lock()
		s.notices = append(s.notices, level+": "+msg)
		s.mu.Unlock()
	})
	navigate := listing.NewSlot[listing.NavigateFunc](func(target string) {
		s.mu.Lock()
		s.redirects = append(s.redirects, target)
		s.mu.Unlock()
	})
	return notify, navigate
}

func (s *sink) onProgress(p Progress) {
	s.mu.Lock()
	s.progress = append(s.progress, p)
	s.mu.Unlock()
}

func (s *sink) noticeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notices)
}

func validFields() listing.Fields {
	return listing.Fields{
		Title:       "Night market at the river",
		Description: "A weekly night market with regional food stalls and live music.",
		CategoryID:  "cat-markets",
		Region:      "north",
		StartDate:   "2026-09-12",
	}
}

func newImages(names ...string) []listing.File {
	out := make([]listing.File, 0, len(names))
	for _, n := range names {
		out = append(out, listing.File{Name: n, MIME: "image/jpeg", Data: []byte{0xff, 0xd8}})
	}
	return out
}

func setup(t *testing.T, ident listingtest.FakeIdentity, opts ...Option) (*listingtest.FakeService, *draft.Store, *Coordinator, *sink) {
	t.Helper()
	svc := listingtest.NewFakeService()
	local, err := localstate.Open("file:" + t.Name() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = local.Close() })
	drafts := draft.NewStore(svc, ident, local)
	t.Cleanup(drafts.Close)
	snk := &sink{}
	notify, navigate := snk.slots()
	opts = append(opts, WithProgress(snk.onProgress))
	c := NewCoordinator(svc, ident, drafts, notify, navigate, opts...)
	return svc, drafts, c, snk
}

func TestSubmit_CreatesPendingRecord(t *testing.T) {
	svc, _, c, snk := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	req := listing.SubmissionRequest{
		Kind:              listing.KindEvent,
		Fields:            validFields(),
		ExistingImageURLs: []string{"blob:kept"},
		NewImages:         newImages("one.jpg", "two.jpg"),
	}
	if err := c.Submit(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	recs := svc.Records()
	if len(recs) != 1 {
		t.Fatalf("records=%d want 1", len(recs))
	}
	for _, r := range recs {
		if r.Status != listing.StatusPending {
			t.Fatalf("status=%q want pending", r.Status)
		}
		if len(r.ImageURLs) != 3 || r.ImageURLs[0] != "blob:kept" {
			t.Fatalf("merged urls=%v (existing must come first)", r.ImageURLs)
		}
	}
	if got := svc.Uploads(); len(got) != 2 || got[0] != "one.jpg" || got[1] != "two.jpg" {
		t.Fatalf("uploads=%v want selection order", got)
	}
	if snk.noticeCount() != 1 {
		t.Fatalf("notices=%v want exactly one", snk.notices)
	}
	if len(snk.redirects) != 1 || snk.redirects[0] != "/account/listings" {
		t.Fatalf("redirects=%v", snk.redirects)
	}
	if len(snk.progress) != 2 || snk.progress[1] != (Progress{Current: 2, Total: 2}) {
		t.Fatalf("progress=%v", snk.progress)
	}
	if c.InFlight() {
		t.Fatal("in-flight flag left set")
	}
}

func TestSubmit_ElevatedPublishesDirectly(t *testing.T) {
	svc, _, c, snk := setup(t, listingtest.FakeIdentity{ID: "mod", Elevated: true, Authenticated: true})

	req := listing.SubmissionRequest{Kind: listing.KindEvent, Fields: validFields()}
	if err := c.Submit(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	for _, r := range svc.Records() {
		if r.Status != listing.StatusPublished {
			t.Fatalf("status=%q want published", r.Status)
		}
	}
	if len(snk.redirects) != 1 || snk.redirects[0] != "/admin/listings" {
		t.Fatalf("redirects=%v", snk.redirects)
	}
}

func TestSubmit_EditUpdatesExistingRecord(t *testing.T) {
	svc, _, c, _ := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	svc.SeedRecord(listing.Record{ID: "r9", OwnerID: "u1", Kind: listing.KindEvent, Fields: validFields()})

	req := listing.SubmissionRequest{
		Kind:     listing.KindEvent,
		Fields:   validFields(),
		RecordID: "r9",
	}
	if err := c.Submit(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if svc.CallCount("CreateRecord") != 0 {
		t.Fatal("edit must not create a new record")
	}
	if svc.CallCount("UpdateRecord") != 1 {
		t.Fatal("edit must update in place")
	}
}

func TestSubmit_RequiresAuth(t *testing.T) {
	svc, _, c, snk := setup(t, listingtest.FakeIdentity{})

	err := c.Submit(context.Background(), listing.SubmissionRequest{Kind: listing.KindEvent, Fields: validFields()})
	if !errmodel.IsCategory(err, errmodel.CategoryAuth) {
		t.Fatalf("err=%v", err)
	}
	if svc.CallCount("UploadImage")+svc.CallCount("CreateRecord") != 0 {
		t.Fatal("unauthenticated submit must have no side effects")
	}
	if snk.noticeCount() != 1 {
		t.Fatalf("notices=%v want exactly one", snk.notices)
	}
}

func TestSubmit_ValidationBlocksNetwork(t *testing.T) {
	svc, _, c, _ := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	f := validFields()
	f.Title = ""
	err := c.Submit(context.Background(), listing.SubmissionRequest{
		Kind:      listing.KindEvent,
		Fields:    f,
		NewImages: newImages("one.jpg"),
	})
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("err=%v", err)
	}
	if svc.CallCount("UploadImage") != 0 || svc.CallCount("CreateRecord") != 0 {
		t.Fatal("validation failure must make zero network calls")
	}
	if c.InFlight() {
		t.Fatal("in-flight flag left set")
	}
}

func TestSubmit_UploadFailureAbortsAndNamesFile(t *testing.T) {
	svc, _, c, _ := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	svc.FailUploadOf = "two.jpg"

	err := c.Submit(context.Background(), listing.SubmissionRequest{
		Kind:      listing.KindEvent,
		Fields:    validFields(),
		NewImages: newImages("one.jpg", "two.jpg", "three.jpg"),
	})
	ce := errmodel.From(err)
	if ce.Category != errmodel.CategoryUpload || ce.Context["file"] != "two.jpg" {
		t.Fatalf("err=%#v", ce)
	}
	// Record never created; the first upload stays orphaned server-side
	// and is referenced nowhere.
	if len(svc.Records()) != 0 {
		t.Fatal("record created despite failed upload")
	}
	if got := svc.Uploads(); len(got) != 1 || got[0] != "one.jpg" {
		t.Fatalf("uploads=%v want only the first", got)
	}
	if svc.CallCount("UploadImage") != 2 {
		t.Fatal("third upload must never start")
	}
	if c.InFlight() {
		t.Fatal("in-flight flag left set")
	}
}

func TestSubmit_DoubleSubmitGuard(t *testing.T) {
	svc, _, c, snk := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	svc.UploadGate = make(chan struct{})

	first := make(chan error, 1)
	go func() {
		first <- c.Submit(context.Background(), listing.SubmissionRequest{
			Kind:      listing.KindEvent,
			Fields:    validFields(),
			NewImages: newImages("one.jpg"),
		})
	}()
	for !c.InFlight() {
		time.Sleep(time.Millisecond)
	}

	// Second trigger while the first is mid-upload: immediate return, no
	// side effects, no notification.
	err := c.Submit(context.Background(), listing.SubmissionRequest{
		Kind:   listing.KindEvent,
		Fields: validFields(),
	})
	if !errmodel.IsCancelled(err) {
		t.Fatalf("err=%v", err)
	}

	close(svc.UploadGate)
	if err := <-first; err != nil {
		t.Fatal(err)
	}
	if len(svc.Records()) != 1 {
		t.Fatalf("records=%d want exactly 1", len(svc.Records()))
	}
	if snk.noticeCount() != 1 {
		t.Fatalf("notices=%v want exactly one", snk.notices)
	}
}

func TestSubmit_CancelStopsUploadLoop(t *testing.T) {
	svc, _, c, snk := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	svc.UploadGate = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background(), listing.SubmissionRequest{
			Kind:      listing.KindEvent,
			Fields:    validFields(),
			NewImages: newImages("one.jpg", "two.jpg"),
		})
	}()
	for !c.InFlight() {
		time.Sleep(time.Millisecond)
	}

	c.Cancel()
	err := <-done
	if !errmodel.IsCancelled(err) {
		t.Fatalf("err=%v", err)
	}
	if len(svc.Records()) != 0 {
		t.Fatal("record created despite cancellation")
	}
	// Cancellation is silent.
	if snk.noticeCount() != 0 {
		t.Fatalf("notices=%v want none", snk.notices)
	}
	// The flag clears so a fresh submission can run.
	if c.InFlight() {
		t.Fatal("in-flight flag left set after cancel")
	}
	svc.UploadGate = nil
	if err := c.Submit(context.Background(), listing.SubmissionRequest{
		Kind:   listing.KindEvent,
		Fields: validFields(),
	}); err != nil {
		t.Fatalf("fresh submit after cancel: %v", err)
	}
}

func TestSubmit_CleansUpDraftAndSnapshot(t *testing.T) {
	svc, drafts, c, _ := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	ctx := context.Background()

	if err := drafts.Save(ctx, validFields(), draft.Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	drafts.PersistLocalSnapshot(validFields(), 0)

	if err := c.Submit(ctx, listing.SubmissionRequest{
		Kind:    listing.KindEvent,
		Fields:  validFields(),
		DraftID: drafts.DraftID(),
	}); err != nil {
		t.Fatal(err)
	}
	if drafts.DraftID() != "" {
		t.Fatal("draft identity kept after publish")
	}
	if n := len(svc.Drafts()); n != 0 {
		t.Fatalf("remote drafts=%d want 0", n)
	}
	if _, ok := drafts.LoadLocalSnapshot(); ok {
		t.Fatal("local snapshot survived publish")
	}
}

func TestSubmit_DraftCleanupFailureDoesNotTaintSuccess(t *testing.T) {
	svc, drafts, c, snk := setup(t, listingtest.FakeIdentity{ID: "u1", Authenticated: true})
	ctx := context.Background()

	if err := drafts.Save(ctx, validFields(), draft.Meta{Kind: listing.KindEvent}); err != nil {
		t.Fatal(err)
	}
	svc.DeleteDraftErr = errmodel.Timeout("delete")

	if err := c.Submit(ctx, listing.SubmissionRequest{
		Kind:   listing.KindEvent,
		Fields: validFields(),
	}); err != nil {
		t.Fatalf("cleanup failure must not fail the submission: %v", err)
	}
	if snk.noticeCount() != 1 {
		t.Fatalf("notices=%v want exactly the success one", snk.notices)
	}
}
