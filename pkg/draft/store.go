// Package draft persists the working copy of a publication form: a
// durable remote draft through the Data Service and an ephemeral local
// snapshot for same-device recovery, plus the one-shot handoff used by
// "continue editing this draft".
//
// The store is the sole owner of the remote draft identity. The first
// successful save adopts the identity the Data Service assigned; every
// later save reuses it, so the same form never produces duplicate rows.
package draft

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/localstate"
)

// Meta carries the non-field attributes of a draft save.
type Meta struct {
	Kind             listing.Kind
	PreviewThumbnail string
}

// Snapshot is the device-local copy of in-progress fields. Image
// resources cannot be serialized, so only their count is retained.
type Snapshot struct {
	Fields     listing.Fields `json:"fields"`
	ImageCount int            `json:"image_count"`
	SavedAt    time.Time      `json:"saved_at"`
}

// Handoff is the one-shot payload placed by a "continue editing draft"
// action in another part of the app.
type Handoff struct {
	DraftID string         `json:"draft_id"`
	OwnerID string         `json:"owner_id"`
	Kind    listing.Kind   `json:"kind"`
	Fields  listing.Fields `json:"fields"`
}

// Store coordinates remote draft persistence and local snapshots for one
// form instance.
type Store struct {
	svc   listing.DataService
	ident listing.Identity
	local *localstate.Store
	log   *slog.Logger

	retryInterval time.Duration
	saveTimeout   time.Duration

	mu           sync.Mutex
	draftID      string
	savedAt      time.Time
	editMode     bool
	handoffTaken bool
	timer        *time.Timer
	closed       bool
}

// Option configures the Store at construction time.
type Option func(*Store)

// WithLogger sets the logger for best-effort failure paths.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRetryInterval sets the fixed back-off between save retries.
func WithRetryInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.retryInterval = d
		}
	}
}

// WithSaveTimeout bounds each auto-save triggered save.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// NewStore constructs a draft store over the given collaborators.
func NewStore(svc listing.DataService, ident listing.Identity, local *localstate.Store, opts ...Option) *Store {
	s := &Store{
		svc:           svc,
		ident:         ident,
		local:         local,
		log:           slog.Default(),
		retryInterval: 500 * time.Millisecond,
		saveTimeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadFromTransientHandoff consumes the one-shot handoff channel if a
// pending draft is present. The read implies the delete, so a handoff is
// observed exactly once. The handed-off draft identity is adopted and the
// local snapshot it supersedes is dropped.
func (s *Store) LoadFromTransientHandoff() (*Handoff, error) {
	raw, ok, err := s.local.TakeOnce(localstate.KeyHandoff)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var h Handoff
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.handoffTaken = true
	if s.draftID == "" {
		s.draftID = h.DraftID
	}
	s.mu.Unlock()
	if err := s.local.Delete(localstate.KeySnapshot); err != nil {
		s.log.Warn("clearing superseded snapshot failed", "error", err)
	}
	return &h, nil
}

// LoadLocalSnapshot returns the last locally persisted snapshot, but only
// when nothing better is available: not in edit mode, no handoff consumed,
// no remote draft already tracked.
func (s *Store) LoadLocalSnapshot() (*Snapshot, bool) {
	s.mu.Lock()
	skip := s.editMode || s.handoffTaken || s.draftID != ""
	s.mu.Unlock()
	if skip {
		return nil, false
	}
	raw, ok, err := s.local.Get(localstate.KeySnapshot)
	if err != nil {
		s.log.Warn("reading local snapshot failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warn("decoding local snapshot failed", "error", err)
		return nil, false
	}
	return &snap, true
}

// Save persists the draft remotely. It requires an authenticated owner
// and at least one populated minimum-signal field; otherwise it fails
// without calling the Data Service. Transient failures are retried twice
// with a fixed back-off before SaveFailed is surfaced.
func (s *Store) Save(ctx context.Context, fields listing.Fields, meta Meta) error {
	tr := otel.Tracer("formflow/draft")
	ctx, span := tr.Start(ctx, "Store.Save", trace.WithAttributes(
		attribute.String("draft.kind", string(meta.Kind)),
	))
	defer span.End()

	if !s.ident.IsAuthenticated() {
		return errmodel.AuthRequired()
	}
	if !fields.HasMinimumSignal() {
		return errmodel.Validation("insufficient_data",
			"add a title, description or category before saving", nil)
	}

	s.mu.Lock()
	d := listing.DraftRecord{
		ID:               s.draftID,
		OwnerID:          s.ident.UserID(),
		Kind:             meta.Kind,
		Fields:           fields,
		PreviewThumbnail: meta.PreviewThumbnail,
	}
	s.mu.Unlock()

	saved, err := backoff.Retry(ctx, func() (listing.DraftRecord, error) {
		return s.svc.SaveDraft(ctx, d)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(s.retryInterval)),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		span.RecordError(err)
		if ce := errmodel.From(err); ce.Category == errmodel.CategoryCancelled || ce.Category == errmodel.CategoryTimeout {
			return ce
		}
		return errmodel.SaveFailed(err)
	}

	s.mu.Lock()
	// First save adopts the remote identity; later saves must agree.
	if s.draftID == "" {
		s.draftID = saved.ID
	}
	s.savedAt = time.Now()
	s.mu.Unlock()
	span.SetAttributes(attribute.String("draft.id", saved.ID))
	return nil
}

// ScheduleAutoSave debounces Save: only the most recent call within the
// delay window executes. A delay of zero disables auto-save entirely.
func (s *Store) ScheduleAutoSave(fields listing.Fields, meta Meta, delay time.Duration) {
	if delay <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := s.Save(ctx, fields, meta); err != nil && !errmodel.IsCancelled(err) {
			s.log.Warn("auto-save failed", "error", err)
		}
	})
}

// PersistLocalSnapshot writes the fields to the device-local key.
// Best-effort and non-throwing: failures are logged only. No-op once
// edit mode is active.
func (s *Store) PersistLocalSnapshot(fields listing.Fields, imageCount int) {
	s.mu.Lock()
	skip := s.editMode
	s.mu.Unlock()
	if skip {
		return
	}
	raw, err := json.Marshal(Snapshot{Fields: fields, ImageCount: imageCount, SavedAt: time.Now().UTC()})
	if err != nil {
		s.log.Warn("encoding local snapshot failed", "error", err)
		return
	}
	if err := s.local.Put(localstate.KeySnapshot, raw); err != nil {
		s.log.Warn("writing local snapshot failed", "error", err)
	}
}

// ClearLocalSnapshot removes the device-local snapshot, best-effort.
func (s *Store) ClearLocalSnapshot() {
	if err := s.local.Delete(localstate.KeySnapshot); err != nil {
		s.log.Warn("clearing local snapshot failed", "error", err)
	}
}

// DeleteCurrentDraft deletes the tracked remote draft, best-effort.
// Failures are logged, never surfaced; this is cleanup, not a user-facing
// operation.
func (s *Store) DeleteCurrentDraft(ctx context.Context) {
	s.mu.Lock()
	id := s.draftID
	s.draftID = ""
	s.mu.Unlock()
	if id == "" {
		return
	}
	if err := s.svc.DeleteDraft(ctx, id, s.ident.UserID()); err != nil {
		s.log.Warn("draft cleanup failed", "draft_id", id, "error", err)
	}
}

// CleanupAfterPublish deletes the remote draft (silently on failure) and
// clears all local state.
func (s *Store) CleanupAfterPublish(ctx context.Context) {
	s.DeleteCurrentDraft(ctx)
	s.ClearLocalSnapshot()
	s.mu.Lock()
	s.savedAt = time.Time{}
	s.handoffTaken = false
	s.mu.Unlock()
}

// SetEditMode marks the store as serving an edit session. Entering edit
// mode drops the local snapshot; snapshots are never written while it is
// active.
func (s *Store) SetEditMode(on bool) {
	s.mu.Lock()
	s.editMode = on
	s.mu.Unlock()
	if on {
		s.ClearLocalSnapshot()
	}
}

// DraftID returns the tracked remote draft identity, empty before the
// first successful save.
func (s *Store) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID
}

// LastSavedAt returns the time of the last successful remote save.
func (s *Store) LastSavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedAt
}

// Close stops any pending auto-save. Idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
