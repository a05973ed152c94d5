package errmodel

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewAndFrom(t *testing.T) {
	e := Validation("field", "validation failed", map[string]string{"title": "title is required"})
	if e.Category != CategoryValidation || e.Code != "field" {
		t.Fatalf("unexpected: %#v", e)
	}
	if got := From(e); got != e {
		t.Fatalf("From should return same error instance")
	}
}

func TestFrom_ContextErrors(t *testing.T) {
	if got := From(context.Canceled); got.Category != CategoryCancelled {
		t.Fatalf("canceled mapped to %q", got.Category)
	}
	if got := From(context.DeadlineExceeded); got.Category != CategoryTimeout {
		t.Fatalf("deadline mapped to %q", got.Category)
	}
	if got := From(errors.New("boom")); got.Category != CategoryPersistence || got.Code != "internal" {
		t.Fatalf("unknown mapped to %q/%q", got.Category, got.Code)
	}
}

func TestIsCancelled_NeverForUserErrors(t *testing.T) {
	if IsCancelled(AuthRequired()) {
		t.Fatal("auth error must not read as cancelled")
	}
	if !IsCancelled(Cancelled("upload")) {
		t.Fatal("Cancelled must read as cancelled")
	}
	if !IsCancelled(context.Canceled) {
		t.Fatal("context.Canceled must read as cancelled")
	}
}

func TestUpload_NamesFile(t *testing.T) {
	e := Upload("poster.jpg", errors.New("network down"))
	if e.Context["file"] != "poster.jpg" {
		t.Fatalf("context=%v", e.Context)
	}
	if len(e.Causes) != 1 {
		t.Fatalf("causes=%d want 1", len(e.Causes))
	}
}

func TestFieldErrors(t *testing.T) {
	e := Validation("field", "validation failed", map[string]string{"price": "price is required for paid tickets"})
	fe := FieldErrors(e)
	if fe["price"] == "" {
		t.Fatalf("field errors lost: %v", fe)
	}
	if FieldErrors(AuthRequired()) != nil {
		t.Fatal("non-validation error must yield nil field errors")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("field", "bad", nil), 400},
		{NotFound("r1"), 404},
		{AuthRequired(), 401},
		{Forbidden("r1"), 403},
		{Upload("a.jpg", nil), 502},
		{Timeout("save"), 504},
		{SaveFailed(nil), 500},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("%s: status=%d want %d", c.err.Code, got, c.want)
		}
	}
}

func TestWriteHTTP_StatusAndEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	WriteHTTP(rr, req, Validation("bad_json", "oops", nil))
	if rr.Code != 400 {
		t.Fatalf("status=%d want 400", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "\"category\":\"validation\"") {
		t.Fatalf("body missing category: %s", body)
	}
	if !strings.Contains(body, "\"code\":\"bad_json\"") {
		t.Fatalf("body missing code: %s", body)
	}
}
