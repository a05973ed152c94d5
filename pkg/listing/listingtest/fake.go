// Package listingtest provides in-memory fakes of the Data Service and
// identity collaborators for tests.
package listingtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
)

// FakeIdentity is a configurable identity collaborator.
type FakeIdentity struct {
	ID            string
	Elevated      bool
	Authenticated bool
}

func (f FakeIdentity) UserID() string        { return f.ID }
func (f FakeIdentity) IsElevated() bool      { return f.Elevated }
func (f FakeIdentity) IsAuthenticated() bool { return f.Authenticated }

// Call records one Data Service invocation.
type Call struct {
	Op  string
	Arg string
}

// FakeService is an in-memory Data Service that records every call and
// lets tests inject per-operation failures and blocking.
type FakeService struct {
	mu      sync.Mutex
	calls   []Call
	records map[string]listing.Record
	drafts  map[string]listing.DraftRecord
	uploads []string

	Categories []listing.Category

	// SaveDraftFailures makes the next N SaveDraft calls fail.
	SaveDraftFailures int
	// FailUploadOf makes uploads of the named file fail.
	FailUploadOf string
	// UploadGate, when non-nil, is received from before each upload
	// returns; lets tests hold a submission in its upload phase.
	UploadGate chan struct{}
	// RecordGate, when non-nil, is received from before each
	// GetRecordByID returns; lets tests hold a load in flight.
	RecordGate chan struct{}
	// DeleteDraftErr is returned from DeleteDraft when set.
	DeleteDraftErr error
}

var _ listing.DataService = (*FakeService)(nil)

// NewFakeService returns an empty fake.
func NewFakeService() *FakeService {
	return &FakeService{
		records: make(map[string]listing.Record),
		drafts:  make(map[string]listing.DraftRecord),
		Categories: []listing.Category{
			{ID: "cat-markets", Name: "Markets", Kind: listing.KindEvent},
			{ID: "cat-food", Name: "Food & Drink", Kind: listing.KindBusiness},
		},
	}
}

func (f *FakeService) record(op, arg string) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: op, Arg: arg})
	f.mu.Unlock()
}

// Calls returns all recorded calls.
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns the number of calls for op.
func (f *FakeService) CallCount(op string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Uploads returns the uploaded file names in order.
func (f *FakeService) Uploads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

// Records returns a copy of the stored records.
func (f *FakeService) Records() map[string]listing.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]listing.Record, len(f.records))
	for k, v := range f.records {
		out[k] = v
	}
	return out
}

// Drafts returns a copy of the stored drafts.
func (f *FakeService) Drafts() map[string]listing.DraftRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]listing.DraftRecord, len(f.drafts))
	for k, v := range f.drafts {
		out[k] = v
	}
	return out
}

// SeedRecord stores a record directly, bypassing call recording.
func (f *FakeService) SeedRecord(r listing.Record) {
	f.mu.Lock()
	f.records[r.ID] = r
	f.mu.Unlock()
}

func (f *FakeService) ListCategories(ctx context.Context) ([]listing.Category, error) {
	f.record("ListCategories", "")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]listing.Category(nil), f.Categories...), nil
}

func (f *FakeService) CreateRecord(ctx context.Context, rec listing.NewRecord) (listing.Record, error) {
	f.record("CreateRecord", rec.Fields.Title)
	if err := ctx.Err(); err != nil {
		return listing.Record{}, err
	}
	r := listing.Record{
		ID:        uuid.NewString(),
		OwnerID:   rec.OwnerID,
		Kind:      rec.Kind,
		Fields:    rec.Fields,
		ImageURLs: rec.ImageURLs,
		Status:    rec.Status,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.mu.Lock()
	f.records[r.ID] = r
	f.mu.Unlock()
	return r, nil
}

func (f *FakeService) UpdateRecord(ctx context.Context, id string, upd listing.RecordUpdate) (listing.Record, error) {
	f.record("UpdateRecord", id)
	if err := ctx.Err(); err != nil {
		return listing.Record{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return listing.Record{}, errmodel.NotFound(id)
	}
	r.Fields = upd.Fields
	r.ImageURLs = upd.ImageURLs
	r.Status = upd.Status
	r.UpdatedAt = time.Now().UTC()
	f.records[id] = r
	return r, nil
}

func (f *FakeService) GetRecordByID(ctx context.Context, id string) (listing.Record, error) {
	f.record("GetRecordByID", id)
	if f.RecordGate != nil {
		select {
		case <-f.RecordGate:
		case <-ctx.Done():
			return listing.Record{}, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return listing.Record{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return listing.Record{}, errmodel.NotFound(id)
	}
	return r, nil
}

func (f *FakeService) UploadImage(ctx context.Context, file listing.File, ownerID string) (string, error) {
	f.record("UploadImage", file.Name)
	if f.UploadGate != nil {
		select {
		case <-f.UploadGate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.FailUploadOf != "" && file.Name == f.FailUploadOf {
		return "", fmt.Errorf("storage rejected %s", file.Name)
	}
	url := "blob:" + uuid.NewString()
	f.mu.Lock()
	f.uploads = append(f.uploads, file.Name)
	f.mu.Unlock()
	return url, nil
}

func (f *FakeService) SaveDraft(ctx context.Context, d listing.DraftRecord) (listing.DraftRecord, error) {
	f.record("SaveDraft", d.Fields.Title)
	if err := ctx.Err(); err != nil {
		return listing.DraftRecord{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveDraftFailures > 0 {
		f.SaveDraftFailures--
		return listing.DraftRecord{}, fmt.Errorf("transient draft store failure")
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.UpdatedAt = time.Now().UTC()
	f.drafts[d.ID] = d
	return d, nil
}

func (f *FakeService) DeleteDraft(ctx context.Context, id, ownerID string) error {
	f.record("DeleteDraft", id)
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.DeleteDraftErr != nil {
		return f.DeleteDraftErr
	}
	f.mu.Lock()
	delete(f.drafts, id)
	f.mu.Unlock()
	return nil
}
