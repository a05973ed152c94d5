// Package form is the façade consumed by the presentation layer. It wires
// the image manager, draft store, record loader and submission
// coordinator together and exposes a single state-and-handlers surface:
// merged field state, a merged error map, derived loading flags and
// stable handler references.
package form

import (
	"context"
	"sync"
	"time"

	"github.com/openlistings/formflow/pkg/draft"
	"github.com/openlistings/formflow/pkg/editor"
	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/images"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/localstate"
	"github.com/openlistings/formflow/pkg/submit"
)

// Config assembles an Orchestrator.
type Config struct {
	Service  listing.DataService
	Identity listing.Identity
	Local    *localstate.Store
	Kind     listing.Kind

	Notify   listing.NotifyFunc
	Navigate listing.NavigateFunc

	// AutoSaveDelay debounces remote draft saves; zero disables them.
	AutoSaveDelay time.Duration
	// SnapshotDelay debounces local snapshot writes; zero disables the
	// debounced path (FlushSnapshot still works).
	SnapshotDelay time.Duration

	Images images.Config

	// Progress receives upload progress during submission.
	Progress submit.ProgressFunc

	DraftOptions  []draft.Option
	SubmitOptions []submit.Option
}

// Orchestrator is the single surface the presentation layer talks to.
type Orchestrator struct {
	svc   listing.DataService
	ident listing.Identity

	notify   *listing.Slot[listing.NotifyFunc]
	navigate *listing.Slot[listing.NavigateFunc]

	imgs      *images.Manager
	drafts    *draft.Store
	loader    *editor.Loader
	submitter *submit.Coordinator

	autoSaveDelay time.Duration
	snapshotDelay time.Duration
	kind          listing.Kind

	mu              sync.Mutex
	fields          listing.Fields
	fieldErrs       map[string]string
	imageErrs       map[string]string
	categories      []listing.Category
	categoryLoading bool
	recordLoading   bool
	submitting      bool
	snapTimer       *time.Timer
	started         bool
	closed          bool
}

// New wires the subsystem. Call Setup to hydrate state, Close on
// teardown; both are idempotent.
func New(cfg Config) *Orchestrator {
	notifyFn := cfg.Notify
	if notifyFn == nil {
		notifyFn = func(string, string) {}
	}
	navigateFn := cfg.Navigate
	if navigateFn == nil {
		navigateFn = func(string) {}
	}
	o := &Orchestrator{
		svc:           cfg.Service,
		ident:         cfg.Identity,
		notify:        listing.NewSlot(notifyFn),
		navigate:      listing.NewSlot(navigateFn),
		autoSaveDelay: cfg.AutoSaveDelay,
		snapshotDelay: cfg.SnapshotDelay,
		kind:          cfg.Kind,
		fieldErrs:     make(map[string]string),
		imageErrs:     make(map[string]string),
	}
	o.imgs = images.New(cfg.Images)
	o.drafts = draft.NewStore(cfg.Service, cfg.Identity, cfg.Local, cfg.DraftOptions...)
	o.loader = editor.NewLoader(cfg.Service, cfg.Identity, o.notify, o.navigate, o.onRecordLoaded)
	submitOpts := cfg.SubmitOptions
	if cfg.Progress != nil {
		submitOpts = append(submitOpts, submit.WithProgress(cfg.Progress))
	}
	o.submitter = submit.NewCoordinator(cfg.Service, cfg.Identity, o.drafts, o.notify, o.navigate, submitOpts...)
	return o
}

// SetNotify swaps the notification callback. In-flight operations pick up
// the new value at call time.
func (o *Orchestrator) SetNotify(fn listing.NotifyFunc) {
	if fn != nil {
		o.notify.Store(fn)
	}
}

// SetNavigate swaps the navigation callback.
func (o *Orchestrator) SetNavigate(fn listing.NavigateFunc) {
	if fn != nil {
		o.navigate.Store(fn)
	}
}

// Setup hydrates the form: a pending handoff wins, then the local
// snapshot, and categories load either way. Safe to run twice in
// immediate succession; the second run is a no-op.
func (o *Orchestrator) Setup(ctx context.Context) error {
	o.mu.Lock()
	if o.started || o.closed {
		o.mu.Unlock()
		return nil
	}
	o.started = true
	o.categoryLoading = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.categoryLoading = false
		o.mu.Unlock()
	}()

	if h, err := o.drafts.LoadFromTransientHandoff(); err == nil && h != nil {
		o.mu.Lock()
		o.fields = h.Fields
		if h.Kind != "" {
			o.kind = h.Kind
		}
		o.mu.Unlock()
	} else if snap, ok := o.drafts.LoadLocalSnapshot(); ok {
		o.mu.Lock()
		o.fields = snap.Fields
		o.mu.Unlock()
	}

	cats, err := o.svc.ListCategories(ctx)
	if err != nil {
		if errmodel.IsCancelled(err) {
			return errmodel.From(err)
		}
		o.notify.Load()("error", "could not load categories")
		return errmodel.From(err)
	}
	o.mu.Lock()
	o.categories = cats
	o.mu.Unlock()
	return nil
}

// EnterEdit loads record id for editing. The local snapshot is dropped
// and snapshot writes stay off for the life of the edit session.
func (o *Orchestrator) EnterEdit(ctx context.Context, recordID string) error {
	o.drafts.SetEditMode(true)
	o.mu.Lock()
	o.recordLoading = true
	o.mu.Unlock()
	err := o.loader.Load(ctx, recordID)
	o.mu.Lock()
	o.recordLoading = false
	o.mu.Unlock()
	return err
}

// ExitEdit leaves edit mode and clears loaded state.
func (o *Orchestrator) ExitEdit() {
	o.loader.Exit()
	o.drafts.SetEditMode(false)
}

func (o *Orchestrator) onRecordLoaded(s editor.Session) {
	o.mu.Lock()
	o.fields = s.Fields
	if s.Kind != "" {
		o.kind = s.Kind
	}
	o.mu.Unlock()
	o.imgs.SetExisting(s.ImageURLs)
}

// HandleFieldChange applies one field edit and schedules the debounced
// persistence paths. Region changes reset the dependent district; a start
// date moving past the chosen end date clears the end date.
func (o *Orchestrator) HandleFieldChange(name, value string) {
	o.mu.Lock()
	switch name {
	case "title":
		o.fields.Title = value
	case "description":
		o.fields.Description = value
	case "category_id":
		o.fields.CategoryID = value
	case "region":
		if o.fields.Region != value {
			o.fields.District = ""
		}
		o.fields.Region = value
	case "district":
		o.fields.District = value
	case "venue":
		o.fields.Venue = value
	case "start_date":
		o.fields.StartDate = value
		if o.fields.EndDate != "" && o.fields.EndDate < value {
			o.fields.EndDate = ""
		}
	case "end_date":
		o.fields.EndDate = value
	case "start_time":
		o.fields.StartTime = value
	case "multi_day":
		o.fields.MultiDay = value == "true"
	case "ticket_type":
		o.fields.TicketType = value
	case "price":
		o.fields.Price = value
	case "contact":
		o.fields.Contact = value
	case "website":
		o.fields.Website = value
	}
	delete(o.fieldErrs, name)
	fields := o.fields
	kind := o.kind
	o.mu.Unlock()

	o.drafts.ScheduleAutoSave(fields, draft.Meta{Kind: kind}, o.autoSaveDelay)
	o.scheduleSnapshot(fields)
}

func (o *Orchestrator) scheduleSnapshot(fields listing.Fields) {
	if o.snapshotDelay <= 0 {
		return
	}
	count := o.imgs.Count()
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	if o.snapTimer != nil {
		o.snapTimer.Stop()
	}
	o.snapTimer = time.AfterFunc(o.snapshotDelay, func() {
		o.drafts.PersistLocalSnapshot(fields, count)
	})
}

// FlushSnapshot persists the local snapshot immediately; wired to
// visibility-loss and unload signals by the presentation layer.
func (o *Orchestrator) FlushSnapshot() {
	o.mu.Lock()
	fields := o.fields
	o.mu.Unlock()
	o.drafts.PersistLocalSnapshot(fields, o.imgs.Count())
}

// HandleImageAdd stages files. Per-file rejections land in the image
// error map keyed by file name.
func (o *Orchestrator) HandleImageAdd(ctx context.Context, files ...listing.File) {
	errs := o.imgs.Add(ctx, files...)
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range errs {
		o.imageErrs[e.Name] = errmodel.From(e.Err).Message
	}
}

// HandleImageRemove drops the resource at index over the combined list.
func (o *Orchestrator) HandleImageRemove(index int) {
	if err := o.imgs.Remove(index); err != nil {
		o.mu.Lock()
		o.imageErrs["images"] = errmodel.From(err).Message
		o.mu.Unlock()
	}
}

// HandleSaveDraft saves the draft immediately.
func (o *Orchestrator) HandleSaveDraft(ctx context.Context) error {
	o.mu.Lock()
	fields := o.fields
	kind := o.kind
	o.mu.Unlock()
	err := o.drafts.Save(ctx, fields, draft.Meta{Kind: kind})
	if err != nil && !errmodel.IsCancelled(err) {
		o.notify.Load()("error", errmodel.From(err).Message)
		return err
	}
	if err == nil {
		o.notify.Load()("success", "draft saved")
	}
	return err
}

// HandleSubmit builds the submission request from current state and runs
// the pipeline. On success the staged images are cleared, releasing their
// preview handles.
func (o *Orchestrator) HandleSubmit(ctx context.Context) error {
	o.mu.Lock()
	fields := o.fields
	kind := o.kind
	o.submitting = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.mu.Unlock()
	}()

	existing, files := o.imgs.Snapshot()
	recordID := ""
	if s := o.loader.Session(); s != nil {
		recordID = s.RecordID
	}
	req := listing.SubmissionRequest{
		Kind:              kind,
		Fields:            fields,
		ExistingImageURLs: existing,
		NewImages:         files,
		RecordID:          recordID,
		DraftID:           o.drafts.DraftID(),
	}

	err := o.submitter.Submit(ctx, req)
	if err != nil {
		if fe := errmodel.FieldErrors(err); fe != nil {
			o.mu.Lock()
			o.fieldErrs = fe
			o.mu.Unlock()
		}
		return err
	}
	o.imgs.Clear()
	o.mu.Lock()
	o.fieldErrs = make(map[string]string)
	o.imageErrs = make(map[string]string)
	o.mu.Unlock()
	return nil
}

// CancelSubmit requests cancellation of the running submission.
func (o *Orchestrator) CancelSubmit() { o.submitter.Cancel() }

// Fields returns the current field state.
func (o *Orchestrator) Fields() listing.Fields {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fields
}

// Categories returns the loaded category list.
func (o *Orchestrator) Categories() []listing.Category {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]listing.Category(nil), o.categories...)
}

// Errors returns the merged error map: form validation errors plus image
// manager errors.
func (o *Orchestrator) Errors() map[string]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[string]string, len(o.fieldErrs)+len(o.imageErrs))
	for k, v := range o.fieldErrs {
		out[k] = v
	}
	for k, v := range o.imageErrs {
		out[k] = v
	}
	return out
}

// Loading reports whether categories or the edit record are still
// loading.
func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.categoryLoading || o.recordLoading
}

// Submitting reports whether a submission is running.
func (o *Orchestrator) Submitting() bool {
	o.mu.Lock()
	s := o.submitting
	o.mu.Unlock()
	return s || o.submitter.InFlight()
}

// Compressing reports whether an image shrink step is running.
func (o *Orchestrator) Compressing() bool { return o.imgs.Compressing() }

// Images exposes the image manager for preview rendering.
func (o *Orchestrator) Images() *images.Manager { return o.imgs }

// DraftSavedAt returns the time of the last successful remote draft save.
func (o *Orchestrator) DraftSavedAt() time.Time { return o.drafts.LastSavedAt() }

// Close tears the form down: pending timers stop, in-flight loads abort
// and every live preview handle is released. Safe to run twice in
// immediate succession.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	if o.snapTimer != nil {
		o.snapTimer.Stop()
		o.snapTimer = nil
	}
	o.mu.Unlock()

	o.loader.Close()
	o.drafts.Close()
	o.imgs.Close()
}
