// Package submit sequences the publication pipeline: validate, upload
// staged images, merge with existing ones, create or update the record,
// clean up drafts and navigate away. One submission runs at a time; a
// second trigger while one is in flight returns immediately with no side
// effects, and the in-flight flag is cleared on every exit path so the
// form is never left permanently disabled.
package submit

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openlistings/formflow/pkg/draft"
	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/schema"
)

// Progress reports upload progress for the presentation layer.
type Progress struct {
	Current int
	Total   int
}

// ProgressFunc receives upload progress updates.
type ProgressFunc func(Progress)

// Coordinator owns the submission-in-flight flag. Nothing else may set it.
type Coordinator struct {
	svc      listing.DataService
	ident    listing.Identity
	drafts   *draft.Store
	notify   *listing.Slot[listing.NotifyFunc]
	navigate *listing.Slot[listing.NavigateFunc]

	persistTimeout time.Duration
	onProgress     ProgressFunc

	mu       sync.Mutex
	inFlight bool
	cancel   context.CancelFunc
}

// Option configures the Coordinator.
type Option func(*Coordinator)

// WithPersistTimeout bounds the create/update call.
func WithPersistTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.persistTimeout = d
		}
	}
}

// WithProgress sets the upload progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Coordinator) { c.onProgress = fn }
}

// NewCoordinator constructs a Coordinator over the given collaborators.
func NewCoordinator(svc listing.DataService, ident listing.Identity, drafts *draft.Store,
	notify *listing.Slot[listing.NotifyFunc], navigate *listing.Slot[listing.NavigateFunc],
	opts ...Option) *Coordinator {
	c := &Coordinator{
		svc:            svc,
		ident:          ident,
		drafts:         drafts,
		notify:         notify,
		navigate:       navigate,
		persistTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InFlight reports whether a submission is currently running.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Cancel requests cooperative cancellation of the running submission.
// The upload loop stops at its next checkpoint; already-uploaded files
// stay where they are.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Submit runs the pipeline for one request. The request is consumed
// exactly once; re-entrant triggers while a submission is in flight
// return a cancelled-category error and produce no side effects and no
// notification.
func (c *Coordinator) Submit(ctx context.Context, req listing.SubmissionRequest) error {
	tr := otel.Tracer("formflow/submit")
	ctx, span := tr.Start(ctx, "Coordinator.Submit", trace.WithAttributes(
		attribute.String("record.kind", string(req.Kind)),
		attribute.Int("images.new", len(req.NewImages)),
		attribute.Int("images.existing", len(req.ExistingImageURLs)),
	))
	defer span.End()

	// Double-submit guard.
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return errmodel.Cancelled("duplicate submit")
	}
	cctx, cancel := context.WithCancel(ctx)
	c.inFlight = true
	c.cancel = cancel
	c.mu.Unlock()

	// The flag and request-scoped state clear on every exit path.
	defer func() {
		cancel()
		c.mu.Lock()
		c.inFlight = false
		c.cancel = nil
		c.mu.Unlock()
	}()

	err := c.run(cctx, span, req)
	if err != nil && !errmodel.IsCancelled(err) {
		span.RecordError(err)
		c.notifyError(err)
	}
	return err
}

func (c *Coordinator) run(ctx context.Context, span trace.Span, req listing.SubmissionRequest) error {
	// Authorization guard.
	if !c.ident.IsAuthenticated() {
		return errmodel.AuthRequired()
	}

	// Validation guard: nothing reaches the network while this fails.
	if errs := schema.Validate(req.Kind, req.Fields); errs != nil {
		return errmodel.Validation("field", "please fix the highlighted fields", errs)
	}

	// Upload phase: strictly sequential, selection order preserved so the
	// first image stays the cover image. A failure aborts the whole
	// submission naming the file; earlier uploads are left orphaned.
	owner := c.ident.UserID()
	uploaded := make([]string, 0, len(req.NewImages))
	total := len(req.NewImages)
	for i, f := range req.NewImages {
		// Cancellation checkpoint at the loop boundary.
		if err := ctx.Err(); err != nil {
			return errmodel.Cancelled("submission")
		}
		c.reportProgress(Progress{Current: i + 1, Total: total})
		url, err := c.svc.UploadImage(ctx, f, owner)
		if err != nil {
			if errmodel.IsCancelled(err) || ctx.Err() != nil {
				return errmodel.Cancelled("submission")
			}
			return errmodel.Upload(f.Name, err)
		}
		uploaded = append(uploaded, url)
	}

	// Merge phase: existing URLs keep their place ahead of new uploads.
	merged := make([]string, 0, len(req.ExistingImageURLs)+len(uploaded))
	merged = append(merged, req.ExistingImageURLs...)
	merged = append(merged, uploaded...)

	// Persist phase, bounded.
	status := listing.StatusPending
	if c.ident.IsElevated() {
		status = listing.StatusPublished
	}
	pctx, pcancel := context.WithTimeout(ctx, c.persistTimeout)
	defer pcancel()

	var rec listing.Record
	var err error
	if req.RecordID != "" {
		rec, err = c.svc.UpdateRecord(pctx, req.RecordID, listing.RecordUpdate{
			Fields:    req.Fields,
			ImageURLs: merged,
			Status:    status,
		})
	} else {
		rec, err = c.svc.CreateRecord(pctx, listing.NewRecord{
			OwnerID:   owner,
			Kind:      req.Kind,
			Fields:    req.Fields,
			ImageURLs: merged,
			Status:    status,
		})
	}
	if err != nil {
		if ctx.Err() != nil {
			return errmodel.Cancelled("submission")
		}
		if pctx.Err() != nil {
			return errmodel.Timeout("saving the record")
		}
		return errmodel.From(err)
	}
	span.SetAttributes(attribute.String("record.id", rec.ID))

	// Cleanup phase: best-effort, must never taint the submission.
	c.drafts.CleanupAfterPublish(context.WithoutCancel(ctx))

	// Exactly one notification for the action, then navigate.
	if status == listing.StatusPublished {
		c.notify.Load()("success", "your listing is published")
		c.navigate.Load()("/admin/listings")
	} else {
		c.notify.Load()("success", "your listing was submitted for review")
		c.navigate.Load()("/account/listings")
	}
	return nil
}

func (c *Coordinator) reportProgress(p Progress) {
	if c.onProgress != nil {
		c.onProgress(p)
	}
}

func (c *Coordinator) notifyError(err error) {
	ce := errmodel.From(err)
	switch ce.Category {
	case errmodel.CategoryAuth:
		c.notify.Load()("error", "sign in to publish your listing")
	case errmodel.CategoryValidation:
		c.notify.Load()("error", "please fix the highlighted fields")
	case errmodel.CategoryTimeout:
		c.notify.Load()("error", ce.Message)
	default:
		c.notify.Load()("error", ce.Message)
	}
}
