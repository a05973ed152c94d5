package schema

import (
	"testing"

	"github.com/openlistings/formflow/pkg/listing"
)

func validEventFields() listing.Fields {
	return listing.Fields{
		Title:       "Night market at the river",
		Description: "A weekly night market with regional food stalls and live music.",
		CategoryID:  "cat-markets",
		Region:      "north",
		District:    "harbor",
		StartDate:   "2026-09-12",
		StartTime:   "18:00",
		TicketType:  listing.TicketFree,
	}
}

func TestValidate_ValidEvent(t *testing.T) {
	if errs := Validate(listing.KindEvent, validEventFields()); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	f := validEventFields()
	f.StartDate = ""
	errs := Validate(listing.KindEvent, f)
	if errs["start_date"] == "" {
		t.Fatalf("missing start_date not reported: %v", errs)
	}
}

func TestValidate_MinimumLengths(t *testing.T) {
	f := validEventFields()
	f.Title = "ab"
	f.Description = "too short"
	errs := Validate(listing.KindEvent, f)
	if errs["title"] == "" {
		t.Fatalf("short title not reported: %v", errs)
	}
	if errs["description"] == "" {
		t.Fatalf("short description not reported: %v", errs)
	}
}

func TestValidate_PaidTicketNeedsPrice(t *testing.T) {
	f := validEventFields()
	f.TicketType = listing.TicketPaid
	errs := Validate(listing.KindEvent, f)
	if errs["price"] == "" {
		t.Fatalf("missing price not reported: %v", errs)
	}
	f.Price = "12.50"
	if errs := Validate(listing.KindEvent, f); errs != nil {
		t.Fatalf("priced paid event should pass: %v", errs)
	}
}

func TestValidate_DateOrder(t *testing.T) {
	f := validEventFields()
	f.MultiDay = true
	f.EndDate = "2026-09-10"
	errs := Validate(listing.KindEvent, f)
	if errs["end_date"] == "" {
		t.Fatalf("reversed range not reported: %v", errs)
	}
	f.EndDate = "2026-09-14"
	if errs := Validate(listing.KindEvent, f); errs != nil {
		t.Fatalf("forward range should pass: %v", errs)
	}
}

func TestValidate_MultiDayNeedsEndDate(t *testing.T) {
	f := validEventFields()
	f.MultiDay = true
	errs := Validate(listing.KindEvent, f)
	if errs["end_date"] == "" {
		t.Fatalf("multi-day without end date not reported: %v", errs)
	}
}

func TestValidate_Business(t *testing.T) {
	f := listing.Fields{
		Title:       "Harbor Bakery",
		Description: "Family bakery with sourdough, rye and seasonal pastries.",
		CategoryID:  "cat-food",
		Region:      "north",
		Contact:     "hello@harborbakery.example",
	}
	if errs := Validate(listing.KindBusiness, f); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	f.Contact = ""
	errs := Validate(listing.KindBusiness, f)
	if errs["contact"] == "" {
		t.Fatalf("missing contact not reported: %v", errs)
	}
}
