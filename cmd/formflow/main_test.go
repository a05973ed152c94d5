package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openlistings/formflow/pkg/dataservice/entservice"
	"github.com/openlistings/formflow/pkg/listing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FOO", "bar")
	if got := getEnv("FOO", "default"); got != "bar" {
		t.Fatalf("getEnv returned %q, want %q", got, "bar")
	}
	if got := getEnv("MISSING", "default"); got != "default" {
		t.Fatalf("getEnv returned %q, want %q", got, "default")
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc, err := entservice.Open(t.Context(), "sqlite:file:httptest_"+t.Name()+"?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	if err := svc.Migrate(t.Context()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedCategories(t.Context(), defaultCategories()); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(buildMux(svc))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body []byte, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func validSubmitBody(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(submitPayload{
		Kind: listing.KindEvent,
		Fields: listing.Fields{
			Title:       "Canal lantern walk",
			Description: "An evening lantern walk along the canal for families and friends.",
			CategoryID:  "cat-family",
			Region:      "north",
			StartDate:   "2026-10-01",
			TicketType:  listing.TicketFree,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestControlPlane_RecordLifecycle(t *testing.T) {
	srv := newTestServer(t)
	user := map[string]string{"X-User-ID": "u1"}

	// categories seeded
	res, err := http.Get(srv.URL + "/api/categories")
	if err != nil {
		t.Fatal(err)
	}
	var cats []listing.Category
	if err := json.NewDecoder(res.Body).Decode(&cats); err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if len(cats) != 5 {
		t.Fatalf("categories=%d want 5", len(cats))
	}

	// create record
	res2 := doJSON(t, http.MethodPost, srv.URL+"/api/records", validSubmitBody(t), user)
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("create status=%d", res2.StatusCode)
	}
	var created listing.Record
	if err := json.NewDecoder(res2.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	_ = res2.Body.Close()
	if created.ID == "" {
		t.Fatal("missing record id")
	}
	// a regular user's record awaits review
	if created.Status != listing.StatusPending {
		t.Fatalf("status=%s want pending", created.Status)
	}

	// fetch by id
	res3, err := http.Get(srv.URL + "/api/records?id=" + created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res3.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res3.StatusCode)
	}
	_ = res3.Body.Close()

	// unknown id is a 404 with the compact envelope
	res4, err := http.Get(srv.URL + "/api/records?id=ghost")
	if err != nil {
		t.Fatal(err)
	}
	if res4.StatusCode != http.StatusNotFound {
		t.Fatalf("get missing status=%d", res4.StatusCode)
	}
	_ = res4.Body.Close()
}

func TestControlPlane_ModeratorPublishesDirectly(t *testing.T) {
	srv := newTestServer(t)
	mod := map[string]string{"X-User-ID": "mod", "X-User-Role": "moderator"}

	res := doJSON(t, http.MethodPost, srv.URL+"/api/records", validSubmitBody(t), mod)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var created listing.Record
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if created.Status != listing.StatusPublished {
		t.Fatalf("status=%s want published", created.Status)
	}
}

func TestControlPlane_AuthAndValidationGuards(t *testing.T) {
	srv := newTestServer(t)

	// no identity header
	res := doJSON(t, http.MethodPost, srv.URL+"/api/records", validSubmitBody(t), nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", res.StatusCode)
	}
	_ = res.Body.Close()

	// invalid fields
	bad, _ := json.Marshal(submitPayload{Kind: listing.KindEvent, Fields: listing.Fields{Title: "x"}})
	res2 := doJSON(t, http.MethodPost, srv.URL+"/api/records", bad, map[string]string{"X-User-ID": "u1"})
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", res2.StatusCode)
	}
	var envelope struct {
		Error struct {
			Category string         `json:"category"`
			Context  map[string]any `json:"context"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	_ = res2.Body.Close()
	if envelope.Error.Category != "validation" {
		t.Fatalf("category=%s", envelope.Error.Category)
	}
	if envelope.Error.Context["description"] == nil {
		t.Fatalf("context=%v want description entry", envelope.Error.Context)
	}
}

func TestControlPlane_DraftLifecycle(t *testing.T) {
	srv := newTestServer(t)
	user := map[string]string{"X-User-ID": "u1"}

	raw, _ := json.Marshal(listing.DraftRecord{
		Kind:   listing.KindEvent,
		Fields: listing.Fields{Title: "Half-finished idea"},
	})
	res := doJSON(t, http.MethodPost, srv.URL+"/api/drafts", raw, user)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("save status=%d", res.StatusCode)
	}
	var saved listing.DraftRecord
	if err := json.NewDecoder(res.Body).Decode(&saved); err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if saved.ID == "" {
		t.Fatal("missing draft id")
	}

	// empty drafts are rejected before hitting storage
	empty, _ := json.Marshal(listing.DraftRecord{Kind: listing.KindEvent})
	res2 := doJSON(t, http.MethodPost, srv.URL+"/api/drafts", empty, user)
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty draft status=%d want 400", res2.StatusCode)
	}
	_ = res2.Body.Close()

	res3 := doJSON(t, http.MethodDelete, srv.URL+"/api/drafts?id="+saved.ID, nil, user)
	if res3.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status=%d", res3.StatusCode)
	}
	_ = res3.Body.Close()

	res4 := doJSON(t, http.MethodGet, srv.URL+"/api/drafts", nil, user)
	var drafts []listing.DraftRecord
	if err := json.NewDecoder(res4.Body).Decode(&drafts); err != nil {
		t.Fatal(err)
	}
	_ = res4.Body.Close()
	if len(drafts) != 0 {
		t.Fatalf("drafts=%d want 0", len(drafts))
	}
}
