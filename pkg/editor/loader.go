// Package editor loads an existing record for edit mode. Loading is a
// small state machine keyed by record id: repeated requests for the id
// already loading or loaded are no-ops, a request for a different id
// cancels and supersedes the current one, and teardown aborts whatever is
// in flight. Results that arrive after supersession are discarded before
// any state is touched.
package editor

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
)

// Phase is the loader state.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Unauthorized
	NotFound
	Aborted
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session is an in-progress edit of a pre-existing record. Fields are
// only ever populated after the ownership check passed.
type Session struct {
	RecordID     string
	AuthorizedBy string
	Fields       listing.Fields
	Kind         listing.Kind
	ImageURLs    []string
}

// LoadedFunc receives the session once a record is ready for editing.
type LoadedFunc func(Session)

// Loader drives edit-mode record loading.
type Loader struct {
	svc      listing.DataService
	ident    listing.Identity
	notify   *listing.Slot[listing.NotifyFunc]
	navigate *listing.Slot[listing.NavigateFunc]
	onLoaded LoadedFunc

	mu       sync.Mutex
	phase    Phase
	recordID string
	session  *Session
	cancel   context.CancelFunc
	gen      uint64
	closed   bool
}

// NewLoader constructs a Loader. The notify and navigate slots are read
// at call time so callbacks swapped mid-load are honored.
func NewLoader(svc listing.DataService, ident listing.Identity,
	notify *listing.Slot[listing.NotifyFunc], navigate *listing.Slot[listing.NavigateFunc],
	onLoaded LoadedFunc) *Loader {
	return &Loader{svc: svc, ident: ident, notify: notify, navigate: navigate, onLoaded: onLoaded}
}

// Load fetches recordID for editing. A repeated request for the id
// already loading or loaded is a no-op. A request for a different id
// cancels the in-flight fetch and supersedes it.
func (l *Loader) Load(ctx context.Context, recordID string) error {
	tr := otel.Tracer("formflow/editor")
	ctx, span := tr.Start(ctx, "Loader.Load", trace.WithAttributes(
		attribute.String("record.id", recordID),
	))
	defer span.End()

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return errmodel.Cancelled("edit load")
	}
	// De-dup guard: same id, already underway or done.
	if recordID == l.recordID && (l.phase == Loading || l.phase == Loaded) {
		l.mu.Unlock()
		return nil
	}
	if l.cancel != nil {
		l.cancel()
	}
	cctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	myGen := l.gen
	l.recordID = recordID
	l.phase = Loading
	l.session = nil
	l.mu.Unlock()

	rec, err := l.svc.GetRecordByID(cctx, recordID)

	l.mu.Lock()
	// Stale-result discard: a newer load or teardown owns the state now.
	if l.gen != myGen {
		l.mu.Unlock()
		return errmodel.Cancelled("edit load")
	}
	if err != nil {
		if cctx.Err() != nil || errmodel.IsCancelled(err) {
			// Aborted fetch still releases the loading flag, silently.
			l.phase = Aborted
			l.mu.Unlock()
			return errmodel.Cancelled("edit load")
		}
		if errmodel.From(err).Code == "not_found" {
			l.phase = NotFound
			l.mu.Unlock()
			span.RecordError(err)
			l.notify.Load()("error", "this record no longer exists")
			l.navigate.Load()("/")
			return errmodel.NotFound(recordID)
		}
		l.phase = Idle
		l.mu.Unlock()
		span.RecordError(err)
		return errmodel.From(err)
	}

	if rec.OwnerID != l.ident.UserID() && !l.ident.IsElevated() {
		// Fields are never exposed past this point.
		l.phase = Unauthorized
		l.mu.Unlock()
		l.notify.Load()("error", "you are not allowed to edit this record")
		l.navigate.Load()("/")
		return errmodel.Forbidden(recordID)
	}

	fields := rec.Fields
	fields.MultiDay = fields.EndDate != "" && fields.EndDate != fields.StartDate
	s := Session{
		RecordID:     rec.ID,
		AuthorizedBy: l.ident.UserID(),
		Fields:       fields,
		Kind:         rec.Kind,
		ImageURLs:    append([]string(nil), rec.ImageURLs...),
	}
	l.phase = Loaded
	l.session = &s
	onLoaded := l.onLoaded
	l.mu.Unlock()

	if onLoaded != nil {
		onLoaded(s)
	}
	return nil
}

// Exit leaves edit mode: the in-flight fetch (if any) is aborted and the
// loader returns to Idle so a future load for a new id starts clean.
func (l *Loader) Exit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.phase = Idle
	l.recordID = ""
	l.session = nil
}

// Close aborts any in-flight fetch. Idempotent.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.phase = Idle
	l.recordID = ""
	l.session = nil
}

// Phase returns the current loader state.
func (l *Loader) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Loading reports whether a fetch is underway.
func (l *Loader) Loading() bool { return l.Phase() == Loading }

// Session returns the active edit session, nil unless Loaded.
func (l *Loader) Session() *Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != Loaded || l.session == nil {
		return nil
	}
	s := *l.session
	return &s
}
