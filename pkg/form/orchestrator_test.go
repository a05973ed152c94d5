package form

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/openlistings/formflow/pkg/draft"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/listingtest"
	"github.com/openlistings/formflow/pkg/localstate"
)

type sink struct {
	mu        sync.Mutex
	notices   []string
	redirects []string
}

func (s *sink) notify(level, msg string) {
	s.mu.Lock()
	s.notices = append(s.notices, level+": "+msg)
	s.mu.Unlock()
}

func (s *sink) navigate(target string) {
	s.mu.Lock()
	s.redirects = append(s.redirects, target)
	s.mu.Unlock()
}

func testLocal(t *testing.T) *localstate.Store {
	t.Helper()
	st, err := localstate.Open("file:form_" + t.Name() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func validFields() listing.Fields {
	return listing.Fields{
		Title:       "Harvest market",
		Description: "A weekend harvest market with regional produce and live music.",
		CategoryID:  "cat-markets",
		Region:      "north",
		District:    "old-town",
		StartDate:   "2026-10-10",
		TicketType:  listing.TicketFree,
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func setup(t *testing.T, svc *listingtest.FakeService, ident listing.Identity) (*Orchestrator, *sink, *localstate.Store) {
	t.Helper()
	snk := &sink{}
	local := testLocal(t)
	o := New(Config{
		Service:  svc,
		Identity: ident,
		Local:    local,
		Kind:     listing.KindEvent,
		Notify:   snk.notify,
		Navigate: snk.navigate,
	})
	t.Cleanup(o.Close)
	return o, snk, local
}

func TestSetup_LoadsCategoriesOnce(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	if err := o.Setup(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(o.Categories()) != 2 {
		t.Fatalf("categories=%v", o.Categories())
	}
	if o.Loading() {
		t.Fatal("loading flag left set")
	}
	// A second run in immediate succession is a no-op.
	if err := o.Setup(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := svc.CallCount("ListCategories"); got != 1 {
		t.Fatalf("category loads=%d want 1", got)
	}
}

func TestSetup_RestoresLocalSnapshot(t *testing.T) {
	svc := listingtest.NewFakeService()
	snk := &sink{}
	local := testLocal(t)

	seed := draft.Snapshot{Fields: validFields(), ImageCount: 2, SavedAt: time.Now().UTC()}
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatal(err)
	}
	if err := local.Put(localstate.KeySnapshot, raw); err != nil {
		t.Fatal(err)
	}

	o := New(Config{
		Service:  svc,
		Identity: listingtest.FakeIdentity{ID: "u1", Authenticated: true},
		Local:    local,
		Kind:     listing.KindEvent,
		Notify:   snk.notify,
		Navigate: snk.navigate,
	})
	defer o.Close()

	if err := o.Setup(context.Background()); err != nil {
		t.Fatal(err)
	}
	if o.Fields().Title != "Harvest market" {
		t.Fatalf("fields=%+v", o.Fields())
	}
}

func TestSetup_HandoffWinsOverSnapshot(t *testing.T) {
	svc := listingtest.NewFakeService()
	snk := &sink{}
	local := testLocal(t)

	stale := validFields()
	stale.Title = "Stale snapshot title"
	rawSnap, _ := json.Marshal(draft.Snapshot{Fields: stale})
	if err := local.Put(localstate.KeySnapshot, rawSnap); err != nil {
		t.Fatal(err)
	}
	h := draft.Handoff{DraftID: "d-7", OwnerID: "u1", Kind: listing.KindBusiness, Fields: validFields()}
	rawH, _ := json.Marshal(h)
	if err := local.Put(localstate.KeyHandoff, rawH); err != nil {
		t.Fatal(err)
	}

	o := New(Config{
		Service:  svc,
		Identity: listingtest.FakeIdentity{ID: "u1", Authenticated: true},
		Local:    local,
		Kind:     listing.KindEvent,
		Notify:   snk.notify,
		Navigate: snk.navigate,
	})
	defer o.Close()

	if err := o.Setup(context.Background()); err != nil {
		t.Fatal(err)
	}
	if o.Fields().Title != "Harvest market" {
		t.Fatalf("handoff did not win: %+v", o.Fields())
	}
	// The handed-off draft identity is adopted and its kind sticks.
	if got := o.Fields(); got.Title == "Stale snapshot title" {
		t.Fatal("stale snapshot restored over handoff")
	}
}

func TestFieldChange_RegionResetsDistrict(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	o.HandleFieldChange("region", "north")
	o.HandleFieldChange("district", "old-town")
	o.HandleFieldChange("region", "south")
	f := o.Fields()
	if f.Region != "south" || f.District != "" {
		t.Fatalf("fields=%+v want district reset", f)
	}
	// Same-region change keeps the district.
	o.HandleFieldChange("district", "harbor")
	o.HandleFieldChange("region", "south")
	if o.Fields().District != "harbor" {
		t.Fatalf("district=%q want harbor", o.Fields().District)
	}
}

func TestFieldChange_StartDatePastEndClearsEnd(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	o.HandleFieldChange("start_date", "2026-10-01")
	o.HandleFieldChange("end_date", "2026-10-05")
	o.HandleFieldChange("start_date", "2026-10-08")
	f := o.Fields()
	if f.StartDate != "2026-10-08" || f.EndDate != "" {
		t.Fatalf("fields=%+v want end date cleared", f)
	}
	// Moving the start date earlier keeps a later end date.
	o.HandleFieldChange("end_date", "2026-10-12")
	o.HandleFieldChange("start_date", "2026-10-02")
	if o.Fields().EndDate != "2026-10-12" {
		t.Fatalf("end=%q want kept", o.Fields().EndDate)
	}
}

func TestErrors_MergesValidationAndImageErrors(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	// Submitting empty fields populates the validation side of the map.
	if err := o.HandleSubmit(context.Background()); err == nil {
		t.Fatal("expected validation failure")
	}
	// A non-image file populates the image side.
	o.HandleImageAdd(context.Background(), listing.File{Name: "notes.pdf", MIME: "application/pdf", Data: []byte("%PDF")})

	errs := o.Errors()
	if errs["title"] == "" {
		t.Fatalf("errs=%v want title entry", errs)
	}
	if errs["notes.pdf"] == "" {
		t.Fatalf("errs=%v want notes.pdf entry", errs)
	}
	// Editing a field clears its own entry only.
	o.HandleFieldChange("title", "Harvest market")
	errs = o.Errors()
	if _, ok := errs["title"]; ok {
		t.Fatalf("errs=%v title entry not cleared", errs)
	}
	if errs["notes.pdf"] == "" {
		t.Fatal("image error lost")
	}
}

func TestEnterEdit_WiresLoaderIntoFormState(t *testing.T) {
	svc := listingtest.NewFakeService()
	svc.SeedRecord(listing.Record{
		ID:      "r1",
		OwnerID: "u1",
		Kind:    listing.KindEvent,
		Fields:  validFields(),
		ImageURLs: []string{
			"blob:cover", "blob:second",
		},
		Status: listing.StatusPublished,
	})
	o, _, local := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	if err := o.EnterEdit(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	if o.Fields().Title != "Harvest market" {
		t.Fatalf("fields=%+v", o.Fields())
	}
	if o.Images().Count() != 2 {
		t.Fatalf("images=%d want 2 existing", o.Images().Count())
	}
	if o.Loading() {
		t.Fatal("loading flag left set")
	}

	// Snapshot writes are off for the life of the edit session.
	o.FlushSnapshot()
	if _, ok, _ := local.Get(localstate.KeySnapshot); ok {
		t.Fatal("snapshot written in edit mode")
	}

	o.ExitEdit()
	o.FlushSnapshot()
	if _, ok, _ := local.Get(localstate.KeySnapshot); !ok {
		t.Fatal("snapshot not written after exiting edit mode")
	}
}

func TestSubmit_SuccessClearsStagedImagesAndErrors(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, snk, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	for name, value := range map[string]string{
		"title":       "Harvest market",
		"description": "A weekend harvest market with regional produce and live music.",
		"category_id": "cat-markets",
		"region":      "north",
		"start_date":  "2026-10-10",
		"ticket_type": listing.TicketFree,
	} {
		o.HandleFieldChange(name, value)
	}
	if errs := o.Images().Add(context.Background(), listing.File{Name: "a.png", MIME: "image/png", Data: tinyPNG(t)}); errs != nil {
		t.Fatalf("add errs=%v", errs)
	}

	if err := o.HandleSubmit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(svc.Records()) != 1 {
		t.Fatalf("records=%d want 1", len(svc.Records()))
	}
	if o.Images().Count() != 0 {
		t.Fatal("staged images not cleared after publish")
	}
	if o.Images().LivePreviewCount() != 0 {
		t.Fatal("preview handles leaked after publish")
	}
	if len(o.Errors()) != 0 {
		t.Fatalf("errs=%v want empty", o.Errors())
	}
	snk.mu.Lock()
	defer snk.mu.Unlock()
	if len(snk.redirects) != 1 || snk.redirects[0] != "/account/listings" {
		t.Fatalf("redirects=%v", snk.redirects)
	}
}

func TestFlushSnapshot_PersistsImmediately(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, local := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	o.HandleFieldChange("title", "Night flea market")
	o.FlushSnapshot()

	raw, ok, err := local.Get(localstate.KeySnapshot)
	if err != nil || !ok {
		t.Fatalf("snapshot missing: ok=%v err=%v", ok, err)
	}
	var snap draft.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Fields.Title != "Night flea market" {
		t.Fatalf("snapshot=%+v", snap)
	}
}

func TestClose_IsIdempotentAndReleasesPreviews(t *testing.T) {
	svc := listingtest.NewFakeService()
	o, _, _ := setup(t, svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true})

	if errs := o.Images().Add(context.Background(), listing.File{Name: "a.png", MIME: "image/png", Data: tinyPNG(t)}); errs != nil {
		t.Fatalf("add errs=%v", errs)
	}
	previews := o.Images().Previews()
	o.Close()
	o.Close() // double teardown must be safe
	for _, p := range previews {
		if !p.Released() {
			t.Fatal("preview handle leaked on close")
		}
	}
}
