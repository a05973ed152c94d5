package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openlistings/formflow/pkg/dataservice/entservice"
	"github.com/openlistings/formflow/pkg/errmodel"
	"github.com/openlistings/formflow/pkg/listing"
	"github.com/openlistings/formflow/pkg/listing/schema"
	otelx "github.com/openlistings/formflow/pkg/otel"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	var showVersion bool
	var addr string
	var dbURL string

	_ = godotenv.Load()

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&addr, "addr", getEnv("FORMFLOW_ADDR", ":8080"), "http listen address")
	flag.StringVar(&dbURL, "db", getEnv("DATABASE_URL", "sqlite:file:formflow.sqlite?cache=shared&_pragma=busy_timeout(5000)"), "database url")
	flag.Parse()

	if showVersion {
		fmt.Printf("formflow %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	ctx := context.Background()
	shutdown, err := otelx.Init(ctx, otelx.Config{ServiceName: "formflow", UseStdout: os.Getenv("FORMFLOW_TRACE_STDOUT") == "1"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "otel init error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(context.Background()) }()

	svc, err := entservice.Open(ctx, dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = svc.Close() }()
	if err := svc.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrate error: %v\n", err)
		os.Exit(1)
	}
	if err := svc.SeedCategories(ctx, defaultCategories()); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}

	server := &http.Server{Addr: addr, Handler: buildMux(svc)}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultCategories() []listing.Category {
	return []listing.Category{
		{ID: "cat-markets", Name: "Markets & Fairs", Kind: listing.KindEvent},
		{ID: "cat-music", Name: "Music & Nightlife", Kind: listing.KindEvent},
		{ID: "cat-family", Name: "Family & Kids", Kind: listing.KindEvent},
		{ID: "cat-food", Name: "Food & Drink", Kind: listing.KindBusiness},
		{ID: "cat-services", Name: "Services", Kind: listing.KindBusiness},
	}
}

// headerIdentity derives the caller identity from dev headers. This is
// the development control plane only; production identity comes from the
// session layer in front.
type headerIdentity struct {
	id   string
	role string
}

func identityFrom(r *http.Request) headerIdentity {
	return headerIdentity{id: r.Header.Get("X-User-ID"), role: r.Header.Get("X-User-Role")}
}

func (h headerIdentity) UserID() string        { return h.id }
func (h headerIdentity) IsElevated() bool      { return h.role == "moderator" || h.role == "admin" }
func (h headerIdentity) IsAuthenticated() bool { return h.id != "" }

type submitPayload struct {
	Kind      listing.Kind   `json:"kind"`
	Fields    listing.Fields `json:"fields"`
	ImageURLs []string       `json:"image_urls"`
}

func buildMux(svc *entservice.Service) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.ListCategories(r.Context())
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		writeJSON(w, cats)
	})

	mux.HandleFunc("/api/records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			id := r.URL.Query().Get("id")
			if id == "" {
				ident := identityFrom(r)
				if !ident.IsAuthenticated() {
					errmodel.WriteHTTP(w, r, errmodel.AuthRequired())
					return
				}
				recs, err := svc.ListRecordsByOwner(r.Context(), ident.UserID())
				if err != nil {
					errmodel.WriteHTTP(w, r, err)
					return
				}
				writeJSON(w, recs)
				return
			}
			rec, err := svc.GetRecordByID(r.Context(), id)
			if err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			writeJSON(w, rec)
		case http.MethodPost:
			ident := identityFrom(r)
			if !ident.IsAuthenticated() {
				errmodel.WriteHTTP(w, r, errmodel.AuthRequired())
				return
			}
			var p submitPayload
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				errmodel.WriteHTTP(w, r, errmodel.Validation("bad_json", "request body is not valid json", nil))
				return
			}
			if errs := schema.Validate(p.Kind, p.Fields); errs != nil {
				errmodel.WriteHTTP(w, r, errmodel.Validation("field", "please fix the highlighted fields", errs))
				return
			}
			status := listing.StatusPending
			if ident.IsElevated() {
				status = listing.StatusPublished
			}
			rec, err := svc.CreateRecord(r.Context(), listing.NewRecord{
				OwnerID:   ident.UserID(),
				Kind:      p.Kind,
				Fields:    p.Fields,
				ImageURLs: p.ImageURLs,
				Status:    status,
			})
			if err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			writeJSON(w, rec)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/drafts", func(w http.ResponseWriter, r *http.Request) {
		ident := identityFrom(r)
		if !ident.IsAuthenticated() {
			errmodel.WriteHTTP(w, r, errmodel.AuthRequired())
			return
		}
		switch r.Method {
		case http.MethodGet:
			drafts, err := svc.ListDraftsByOwner(r.Context(), ident.UserID())
			if err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			writeJSON(w, drafts)
		case http.MethodPost:
			var d listing.DraftRecord
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				errmodel.WriteHTTP(w, r, errmodel.Validation("bad_json", "request body is not valid json", nil))
				return
			}
			d.OwnerID = ident.UserID()
			if !d.Fields.HasMinimumSignal() {
				errmodel.WriteHTTP(w, r, errmodel.Validation("insufficient_data",
					"add a title, description or category before saving", nil))
				return
			}
			saved, err := svc.SaveDraft(r.Context(), d)
			if err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			writeJSON(w, saved)
		case http.MethodDelete:
			id := r.URL.Query().Get("id")
			if err := svc.DeleteDraft(r.Context(), id, ident.UserID()); err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/images", func(w http.ResponseWriter, r *http.Request) {
		ref := r.URL.Query().Get("ref")
		f, err := svc.GetImage(r.Context(), ref)
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		if f.MIME != "" {
			w.Header().Set("Content-Type", f.MIME)
		}
		_, _ = w.Write(f.Data)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
