//go:build integration

package entservice

import (
	"context"
	"fmt"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/openlistings/formflow/pkg/listing"
)

func TestPostgresRecordFlow(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("formflow"),
		tcpostgres.WithUsername("formflow"),
		tcpostgres.WithPassword("formflow"),
		tcpostgres.WithSQLDriver("pgx"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	svc, err := Open(ctx, fmt.Sprintf("postgres://%s", dsn))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if err := svc.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	url, err := svc.UploadImage(ctx, listing.File{Name: "cover.jpg", MIME: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}, "u1")
	if err != nil {
		t.Fatal(err)
	}

	created, err := svc.CreateRecord(ctx, listing.NewRecord{
		OwnerID:   "u1",
		Kind:      listing.KindEvent,
		Fields:    sampleFields(),
		ImageURLs: []string{url},
		Status:    listing.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetRecordByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Fields.Title != created.Fields.Title || len(got.ImageURLs) != 1 {
		t.Fatalf("got=%+v", got)
	}

	// Draft lifecycle against the same backend.
	d, err := svc.SaveDraft(ctx, listing.DraftRecord{OwnerID: "u1", Kind: listing.KindEvent, Fields: sampleFields()})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteDraft(ctx, d.ID, "u1"); err != nil {
		t.Fatal(err)
	}
	drafts, err := svc.ListDraftsByOwner(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 0 {
		t.Fatalf("drafts=%d want 0", len(drafts))
	}
}
