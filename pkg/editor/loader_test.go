package editor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/listingtest"
)

type sink struct {
	mu        sync.Mutex
	notices   []string
	redirects []string
	sessions  []Session
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

func (s *sink) onLoaded(sess Session) {
	s.mu.Lock()
	s.sessions = append(s.sessions, sess)
	s.mu.Unlock()
}

func seedRecord(svc *listingtest.FakeService, id, owner string) {
	svc.SeedRecord(listing.Record{
		ID:      id,
		OwnerID: owner,
		Kind:    listing.KindEvent,
		Fields: listing.Fields{
			Title:       "Lantern walk",
			Description: "An evening lantern walk along the canal for families.",
			CategoryID:  "cat-markets",
			Region:      "north",
			StartDate:   "2026-10-01",
			EndDate:     "2026-10-03",
		},
		ImageURLs: []string{"blob:cover", "blob:second"},
		Status:    listing.StatusPublished,
	})
}

func TestLoad_Success(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "u1")
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	if l.Phase() != Loaded {
		t.Fatalf("phase=%v", l.Phase())
	}
	sess := l.Session()
	if sess == nil || sess.RecordID != "r1" {
		t.Fatalf("session=%+v", sess)
	}
	// Multi-day flag derived from differing start/end dates.
	if !sess.Fields.MultiDay {
		t.Fatal("multi-day flag not derived")
	}
	if len(sess.ImageURLs) != 2 || sess.ImageURLs[0] != "blob:cover" {
		t.Fatalf("images=%v", sess.ImageURLs)
	}
	if len(snk.sessions) != 1 {
		t.Fatalf("onLoaded calls=%d want 1", len(snk.sessions))
	}
}

func TestLoad_DedupSameID(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "u1")
	svc.RecordGate = make(chan struct{})
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	done := make(chan error, 1)
	go func() { done <- l.Load(context.Background(), "r1") }()
	for l.Phase() != Loading {
		time.Sleep(time.Millisecond)
	}

	// Re-entrant request for the same id while loading: no-op, no second
	// fetch.
	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	close(svc.RecordGate)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := svc.CallCount("GetRecordByID"); got != 1 {
		t.Fatalf("fetches=%d want 1", got)
	}
	if l.Phase() != Loaded {
		t.Fatalf("phase=%v", l.Phase())
	}
	// Loaded is sticky for the same id too.
	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	if got := svc.CallCount("GetRecordByID"); got != 1 {
		t.Fatalf("fetches=%d want 1 after loaded no-op", got)
	}
}

func TestLoad_Unauthorized(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "userA")
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "userB", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	err := l.Load(context.Background(), "r1")
	if !errmodel.IsCategory(err, errmodel.CategoryAuth) {
		t.Fatalf("err=%v", err)
	}
	if l.Phase() != Unauthorized {
		t.Fatalf("phase=%v", l.Phase())
	}
	if l.Session() != nil || len(snk.sessions) != 0 {
		t.Fatal("fields exposed to unauthorized user")
	}
	if len(snk.notices) != 1 || len(snk.redirects) != 1 {
		t.Fatalf("notices=%v redirects=%v", snk.notices, snk.redirects)
	}
}

func TestLoad_ElevatedMayEditForeignRecord(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "userA")
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "mod", Elevated: true, Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	if l.Phase() != Loaded {
		t.Fatalf("phase=%v", l.Phase())
	}
}

func TestLoad_NotFound(t *testing.T) {
	svc := listingtest.NewFakeService()
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	err := l.Load(context.Background(), "ghost")
	if errmodel.From(err).Code != "not_found" {
		t.Fatalf("err=%v", err)
	}
	if l.Phase() != NotFound {
		t.Fatalf("phase=%v", l.Phase())
	}
	if len(snk.redirects) != 1 {
		t.Fatalf("redirects=%v", snk.redirects)
	}
}

func TestLoad_SupersededByNewID(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "u1")
	seedRecord(svc, "r2", "u1")
	svc.RecordGate = make(chan struct{})
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	first := make(chan error, 1)
	go func() { first <- l.Load(context.Background(), "r1") }()
	for l.Phase() != Loading {
		time.Sleep(time.Millisecond)
	}

	second := make(chan error, 1)
	go func() { second <- l.Load(context.Background(), "r2") }()
	for svc.CallCount("GetRecordByID") != 2 {
		time.Sleep(time.Millisecond)
	}
	// Unblock both fetches; r1's cancelled context exits the gate select.
	close(svc.RecordGate)

	if err := <-first; !errmodel.IsCancelled(err) {
		t.Fatalf("superseded load err=%v", err)
	}
	if err := <-second; err != nil {
		t.Fatal(err)
	}
	sess := l.Session()
	if sess == nil || sess.RecordID != "r2" {
		t.Fatalf("session=%+v want r2", sess)
	}
	// No notification for the superseded fetch.
	if len(snk.notices) != 0 {
		t.Fatalf("notices=%v", snk.notices)
	}
}

func TestExit_ResetsForFutureLoads(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "u1")
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)
	defer l.Close()

	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	l.Exit()
	if l.Phase() != Idle || l.Session() != nil {
		t.Fatalf("phase=%v after exit", l.Phase())
	}
	// The guard must not block a fresh load for the same id.
	if err := l.Load(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
	if got := svc.CallCount("GetRecordByID"); got != 2 {
		t.Fatalf("fetches=%d want 2", got)
	}
}

func TestClose_AbortsAndIsIdempotent(t *testing.T) {
	svc := listingtest.NewFakeService()
	seedRecord(svc, "r1", "u1")
	svc.RecordGate = make(chan struct{})
	snk := &sink{}
	notify, navigate := snk.slots()
	l := NewLoader(svc, listingtest.FakeIdentity{ID: "u1", Authenticated: true}, notify, navigate, snk.onLoaded)

	done := make(chan error, 1)
	go func() { done <- l.Load(context.Background(), "r1") }()
	for l.Phase() != Loading {
		time.Sleep(time.Millisecond)
	}
	l.Close()
	l.Close() // double teardown must be safe
	if err := <-done; !errmodel.IsCancelled(err) {
		t.Fatalf("err=%v", err)
	}
	if l.Loading() {
		t.Fatal("loading flag left set after abort")
	}
}
