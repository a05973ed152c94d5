// Package errmodel defines the compact error taxonomy used across the
// form orchestration subsystem and maps it onto HTTP for the dev control
// plane. Cancellation is part of the taxonomy but is never surfaced to
// users; callers check IsCancelled before notifying.
package errmodel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Category values for compact errors.
const (
	CategoryValidation  = "validation"
	CategoryAuth        = "auth"
	CategoryUpload      = "upload"
	CategoryPersistence = "persistence"
	CategoryCancelled   = "cancelled"
	CategoryTimeout     = "timeout"
)

// Error is the compact error payload used internally and returned by the
// control-plane API. It implements the error interface.
type Error struct {
	Category string         `json:"category"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
	Causes   []Error        `json:"causes,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// New constructs a new compact error.
func New(category, code, message string, ctx map[string]any, causes ...error) *Error {
	ce := &Error{Category: category, Code: code, Message: truncate(message, 512)}
	if len(ctx) > 0 {
		ce.Context = truncateContext(ctx)
	}
	for _, c := range causes {
		if c == nil {
			continue
		}
		ce.Causes = append(ce.Causes, *From(c))
	}
	return ce
}

// From converts any error into a compact Error. If err is already *Error,
// it is returned as-is. Context cancellation and deadline errors map to
// their dedicated categories so call sites can branch on them uniformly.
func From(err error) *Error {
	var ce *Error
	if err == nil {
		return nil
	}
	if errors.As(err, &ce) {
		return ce
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Category: CategoryCancelled, Code: "cancelled", Message: "operation cancelled"}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Category: CategoryTimeout, Code: "deadline", Message: "operation timed out, please try again"}
	}
	// Default to persistence/internal for unknown error types.
	return &Error{Category: CategoryPersistence, Code: "internal", Message: truncate(err.Error(), 512)}
}

// Validation reports a field-level validation failure. FieldErrors keys
// the offending fields; the user recovers by editing.
func Validation(code, message string, fieldErrors map[string]string) *Error {
	ctx := make(map[string]any, len(fieldErrors))
	for k, v := range fieldErrors {
		ctx[k] = v
	}
	return New(CategoryValidation, code, message, ctx)
}

// NotFound reports a missing record; terminal for an edit session.
func NotFound(id string) *Error {
	return New(CategoryValidation, "not_found", "record not found", map[string]any{"id": id})
}

// AuthRequired blocks privileged operations until the user signs in.
func AuthRequired() *Error {
	return New(CategoryAuth, "required", "sign in to continue", nil)
}

// Forbidden reports an edit attempt on a record the user does not own.
func Forbidden(recordID string) *Error {
	return New(CategoryAuth, "forbidden", "you are not allowed to edit this record", map[string]any{"record_id": recordID})
}

// Upload reports a failed image upload, naming the offending file. Files
// uploaded before the failure stay orphaned server-side; there is no
// compensating delete.
func Upload(fileName string, cause error) *Error {
	return New(CategoryUpload, "failed", "upload failed for "+fileName, map[string]any{"file": fileName}, cause)
}

// SaveFailed reports a draft save that still failed after retries.
func SaveFailed(cause error) *Error {
	return New(CategoryPersistence, "save_failed", "could not save draft", nil, cause)
}

// Cancelled marks an intentionally aborted operation. Never user-visible.
func Cancelled(op string) *Error {
	return New(CategoryCancelled, "cancelled", op+" cancelled", nil)
}

// Timeout reports a persistence operation that exceeded its bounded wait.
func Timeout(op string) *Error {
	return New(CategoryTimeout, "deadline", op+" timed out, please try again", nil)
}

// IsCategory checks if err belongs to a specific category.
func IsCategory(err error, category string) bool {
	ce := From(err)
	return ce != nil && strings.EqualFold(ce.Category, category)
}

// IsCancelled reports whether err represents intentional cancellation.
// Cancellation produces no user notification.
func IsCancelled(err error) bool {
	return IsCategory(err, CategoryCancelled)
}

// FieldErrors extracts the per-field messages from a validation error.
// Returns nil for non-validation errors.
func FieldErrors(err error) map[string]string {
	ce := From(err)
	if ce == nil || ce.Category != CategoryValidation || len(ce.Context) == 0 {
		return nil
	}
	out := make(map[string]string, len(ce.Context))
	for k, v := range ce.Context {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// HTTPStatus maps category/code to HTTP status.
func HTTPStatus(e *Error) int {
	if e == nil {
		return http.StatusInternalServerError
	}
	switch e.Category {
	case CategoryValidation:
		switch e.Code {
		case "not_found":
			return http.StatusNotFound
		default:
			return http.StatusBadRequest
		}
	case CategoryAuth:
		switch e.Code {
		case "required":
			return http.StatusUnauthorized
		default:
			return http.StatusForbidden
		}
	case CategoryUpload:
		return http.StatusBadGateway
	case CategoryTimeout:
		return http.StatusGatewayTimeout
	case CategoryCancelled:
		// Client went away; nginx convention.
		return 499
	case CategoryPersistence:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP writes a compact error envelope to the response writer.
// It attempts to include the trace_id if present in ctx.
func WriteHTTP(w http.ResponseWriter, r *http.Request, err error) {
	ce := From(err)
	if ce == nil {
		ce = &Error{Category: CategoryPersistence, Code: "internal", Message: "unknown error"}
	}
	status := HTTPStatus(ce)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	traceID := ""
	if r != nil {
		if span := trace.SpanFromContext(r.Context()); span != nil {
			sc := span.SpanContext()
			if sc.HasTraceID() {
				traceID = sc.TraceID().String()
			}
		}
	}
	// Envelope { error: Error, trace_id?: string }
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":    ce,
		"trace_id": traceID,
	})
}

// truncate trims a string to max characters.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateContext trims long string values in the context map.
func truncateContext(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		switch t := v.(type) {
		case string:
			out[k] = truncate(t, 256)
		default:
			b, err := json.Marshal(t)
			if err == nil && len(b) > 0 {
				s := string(b)
				if len(s) > 256 {
					s = truncate(s, 256)
				}
				out[k] = s
			} else {
				out[k] = t
			}
		}
	}
	return out
}
