// Package listing defines the core contracts for the publication form
// orchestration subsystem: the data model shared by every component, the
// Data Service and identity collaborators, and the callback cells handed
// to long-lived operations.
//
// The subsystem itself never renders anything; the presentation layer
// consumes the orchestrator in pkg/form and supplies notification and
// navigation callbacks through Slot cells so that in-flight operations
// always observe the most recent callback rather than a stale capture.
package listing

import (
	"context"
	"time"
)

// Kind distinguishes the two publishable record families.
type Kind string

const (
	KindEvent    Kind = "event"
	KindBusiness Kind = "business"
)

// RecordStatus is the moderation state of a persisted record.
// Elevated users publish directly; everyone else lands in pending review.
type RecordStatus string

const (
	StatusPending   RecordStatus = "pending"
	StatusPublished RecordStatus = "published"
)

// Ticket type values used by event records.
const (
	TicketFree = "free"
	TicketPaid = "paid"
)

// Fields is the structured form data carried by drafts, snapshots and
// persisted records. Dates use the 2006-01-02 layout, times 15:04.
// Kind-specific members stay empty for the other kind.
type Fields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	Region      string `json:"region"`
	District    string `json:"district"`
	Venue       string `json:"venue,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	MultiDay    bool   `json:"multi_day,omitempty"`
	TicketType  string `json:"ticket_type,omitempty"`
	Price       string `json:"price,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Website     string `json:"website,omitempty"`
}

// HasMinimumSignal reports whether the fields carry enough content to be
// worth a remote draft row: at least one of title, description or category.
func (f Fields) HasMinimumSignal() bool {
	return f.Title != "" || f.Description != "" || f.CategoryID != ""
}

// Category is a selectable listing category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// File is a file-like input selected by the user: the raw bytes plus the
// metadata the browser-side picker reported.
type File struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data []byte `json:"-"`
}

// Size returns the byte length of the file content.
func (f File) Size() int64 { return int64(len(f.Data)) }

// Record is the durable server-side entity created or updated by a
// submission.
type Record struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	Kind      Kind         `json:"kind"`
	Fields    Fields       `json:"fields"`
	ImageURLs []string     `json:"image_urls"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewRecord is the payload for creating a record.
type NewRecord struct {
	OwnerID   string
	Kind      Kind
	Fields    Fields
	ImageURLs []string
	Status    RecordStatus
}

// RecordUpdate is the payload for updating an existing record. The image
// URL list replaces the stored one wholesale; ordering is meaningful
// (first image is the cover image).
type RecordUpdate struct {
	Fields    Fields
	ImageURLs []string
	Status    RecordStatus
}

// DraftRecord is an unpublished working copy persisted by the Data
// Service. ID is assigned remotely on first save and must be reused on
// every subsequent save (upsert, never a duplicate row).
type DraftRecord struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Kind             Kind      `json:"kind"`
	Fields           Fields    `json:"fields"`
	PreviewThumbnail string    `json:"preview_thumbnail,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SubmissionRequest is the ephemeral value object consumed exactly once
// per user-triggered submit. ExistingImageURLs precede NewImages in the
// final merged order.
type SubmissionRequest struct {
	Kind              Kind
	Fields            Fields
	ExistingImageURLs []string
	NewImages         []File
	RecordID          string
	DraftID           string
}

// DataService is the remote data/auth collaborator. Implementations must
// honor context cancellation on every call; exact transport is out of
// scope for this module (pkg/dataservice/entservice provides an ent-backed
// reference implementation).
type DataService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateRecord(ctx context.Context, rec NewRecord) (Record, error)
	UpdateRecord(ctx context.Context, id string, upd RecordUpdate) (Record, error)
	GetRecordByID(ctx context.Context, id string) (Record, error)
	UploadImage(ctx context.Context, file File, ownerID string) (string, error)
	SaveDraft(ctx context.Context, d DraftRecord) (DraftRecord, error)
	DeleteDraft(ctx context.Context, id, ownerID string) error
}

// Identity is the session collaborator consulted before privileged
// operations.
type Identity interface {
	// UserID returns the current user id, empty when signed out.
	UserID() string
	// IsElevated reports moderator/admin privilege.
	IsElevated() bool
	// IsAuthenticated reports whether a user session is active.
	IsAuthenticated() bool
}

// NotifyFunc surfaces a single user-visible notification. Level is one of
// "info", "success", "error".
type NotifyFunc func(level, message string)

// NavigateFunc redirects the presentation layer to the given target.
type NavigateFunc func(target string)
