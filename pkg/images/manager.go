// Package images owns the set of user-selected image resources for a
// publication form: already-persisted URLs, newly staged files, and the
// preview handles that make staged files renderable before upload.
//
// The manager is the only component that creates or releases preview
// handles. Every staged file has exactly one live handle until it is
// removed, cleared, submitted or the manager is closed; handles release
// exactly once and are never reused afterwards.
package images

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
)

// Preview is a transient in-memory handle usable to render a
// not-yet-uploaded image. Release is idempotent.
type Preview struct {
	mu       sync.Mutex
	id       string
	data     []byte
	released bool
}

// ID returns the stable handle id.
func (p *Preview) ID() string { return p.id }

// Bytes returns the renderable image bytes, nil once released.
func (p *Preview) Bytes() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// Release frees the handle. Safe to call more than once; only the first
// call has any effect.
func (p *Preview) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return
	}
	p.released = true
	p.data = nil
}

// Released reports whether the handle has been released.
func (p *Preview) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// Config bounds the manager. Zero values take the defaults below.
type Config struct {
	// MaxCount caps existing + staged resources combined.
	MaxCount int
	// CompressThreshold is the size in bytes above which files are
	// shrunk before being accepted.
	CompressThreshold int64
	// MaxDimension and Quality parameterize the shrink step.
	MaxDimension int
	Quality      int
}

const (
	defaultMaxCount          = 10
	defaultCompressThreshold = 1 << 20
	defaultMaxDimension      = 1920
	defaultQuality           = 80
)

func (c Config) withDefaults() Config {
	if c.MaxCount <= 0 {
		c.MaxCount = defaultMaxCount
	}
	if c.CompressThreshold <= 0 {
		c.CompressThreshold = defaultCompressThreshold
	}
	if c.MaxDimension <= 0 {
		c.MaxDimension = defaultMaxDimension
	}
	if c.Quality <= 0 {
		c.Quality = defaultQuality
	}
	return c
}

// ItemError reports a per-file rejection from Add.
type ItemError struct {
	Index int
	Name  string
	Err   error
}

type stagedImage struct {
	file    listing.File
	preview *Preview
}

// Manager tracks image resources for one form instance.
type Manager struct {
	mu       sync.Mutex
	cfg      Config
	existing []string
	staged   []stagedImage
	// every handle ever created, so Close can sweep regardless of how
	// staged entries came and went
	created     []*Preview
	compressing bool
	closed      bool
}

// New returns a Manager with the given bounds.
func New(cfg Config) *Manager {
	return &Manager{cfg: cfg.withDefaults()}
}

// Add accepts a batch of file-like inputs. Non-image files and files past
// the remaining capacity are rejected with a per-item error; the allowed
// prefix is still accepted. Files above the compression threshold are
// shrunk first; if shrinking fails the original bytes are kept.
func (m *Manager) Add(ctx context.Context, files ...listing.File) []ItemError {
	var errs []ItemError
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, ItemError{Index: i, Name: f.Name, Err: errmodel.From(err)})
			continue
		}
		if !strings.HasPrefix(f.MIME, "image/") {
			errs = append(errs, ItemError{Index: i, Name: f.Name, Err: errmodel.New(
				errmodel.CategoryValidation, "not_image", f.Name+" is not an image", map[string]any{"mime": f.MIME})})
			continue
		}

		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			errs = append(errs, ItemError{Index: i, Name: f.Name, Err: errmodel.Cancelled("add image")})
			continue
		}
		if len(m.existing)+len(m.staged) >= m.cfg.MaxCount {
			max := m.cfg.MaxCount
			m.mu.Unlock()
			errs = append(errs, ItemError{Index: i, Name: f.Name, Err: errmodel.New(
				errmodel.CategoryValidation, "capacity", "image limit reached", map[string]any{"max": max})})
			continue
		}
		cfg := m.cfg
		m.mu.Unlock()

		if f.Size() > cfg.CompressThreshold {
			m.setCompressing(true)
			shrunk, err := Shrink(f.Data, cfg.MaxDimension, cfg.Quality)
			m.setCompressing(false)
			// Fallback: a failed or useless shrink keeps the original.
			if err == nil && len(shrunk) < len(f.Data) {
				f.Data = shrunk
				f.MIME = "image/jpeg"
			}
		}

		p := &Preview{id: uuid.NewString(), data: f.Data}
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			p.Release()
			errs = append(errs, ItemError{Index: i, Name: f.Name, Err: errmodel.Cancelled("add image")})
			continue
		}
		m.staged = append(m.staged, stagedImage{file: f, preview: p})
		m.created = append(m.created, p)
		m.mu.Unlock()
	}
	return errs
}

// Remove drops the resource at index over the combined list, existing
// resources first. Removing a staged resource releases its preview handle
// immediately.
func (m *Manager) Remove(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.existing)+len(m.staged) {
		return errmodel.New(errmodel.CategoryValidation, "bad_index", "no image at that position", map[string]any{"index": index})
	}
	if index < len(m.existing) {
		m.existing = append(m.existing[:index], m.existing[index+1:]...)
		return nil
	}
	i := index - len(m.existing)
	m.staged[i].preview.Release()
	m.staged = append(m.staged[:i], m.staged[i+1:]...)
	return nil
}

// Clear releases every staged preview handle and empties both sets.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.staged {
		s.preview.Release()
	}
	m.staged = nil
	m.existing = nil
}

// SetExisting replaces the existing-set, leaving staged resources alone.
// Used when an edit session loads a record's stored images.
func (m *Manager) SetExisting(urls []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.existing = append([]string(nil), urls...)
}

// Close releases every handle the manager ever created. Idempotent and
// safe to call twice in immediate succession.
func (m *Manager) Close() {
	m.mu.Lock()
	created := m.created
	m.created = nil
	m.staged = nil
	m.existing = nil
	m.closed = true
	m.mu.Unlock()
	for _, p := range created {
		p.Release()
	}
}

// Count returns existing + staged resources.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.existing) + len(m.staged)
}

// Remaining returns how many more resources fit.
func (m *Manager) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.cfg.MaxCount - len(m.existing) - len(m.staged)
	if r < 0 {
		r = 0
	}
	return r
}

// HasAny reports whether at least one resource is present.
func (m *Manager) HasAny() bool { return m.Count() > 0 }

// Compressing reports whether a shrink step is in progress.
func (m *Manager) Compressing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compressing
}

func (m *Manager) setCompressing(v bool) {
	m.mu.Lock()
	m.compressing = v
	m.mu.Unlock()
}

// Snapshot returns the submission inputs: existing URLs in stored order
// and staged files in selection order.
func (m *Manager) Snapshot() (existing []string, files []listing.File) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing = append([]string(nil), m.existing...)
	files = make([]listing.File, 0, len(m.staged))
	for _, s := range m.staged {
		files = append(files, s.file)
	}
	return existing, files
}

// Previews returns the live preview handles in selection order.
func (m *Manager) Previews() []*Preview {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Preview, 0, len(m.staged))
	for _, s := range m.staged {
		out = append(out, s.preview)
	}
	return out
}

// LivePreviewCount returns the number of created-and-not-yet-released
// handles across the manager's lifetime.
func (m *Manager) LivePreviewCount() int {
	m.mu.Lock()
	created := append([]*Preview(nil), m.created...)
	m.mu.Unlock()
	n := 0
	for _, p := range created {
		if !p.Released() {
			n++
		}
	}
	return n
}
