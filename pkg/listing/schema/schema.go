// Package schema implements the schema-driven validation rules for
// publication form fields. Structural rules (required fields, minimum
// lengths, date formats) live in JSON Schema documents compiled with
// jsonschema/v6; cross-field conditions that JSON Schema expresses poorly
// (price required for paid tickets, date ordering for multi-day ranges)
// are checked in Go afterwards.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/openlistings/formflow/pkg/listing"
)

const eventSchema = `{
  "type": "object",
  "required": ["title", "description", "category_id", "region", "start_date"],
  "properties": {
    "title": {"type": "string", "minLength": 3},
    "description": {"type": "string", "minLength": 20},
    "category_id": {"type": "string", "minLength": 1},
    "region": {"type": "string", "minLength": 1},
    "district": {"type": "string"},
    "venue": {"type": "string"},
    "start_date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "end_date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "start_time": {"type": "string", "pattern": "^[0-9]{2}:[0-9]{2}$"},
    "ticket_type": {"type": "string", "enum": ["free", "paid"]},
    "price": {"type": "string"},
    "contact": {"type": "string"},
    "website": {"type": "string"}
  }
}`

const businessSchema = `{
  "type": "object",
  "required": ["title", "description", "category_id", "region", "contact"],
  "properties": {
    "title": {"type": "string", "minLength": 3},
    "description": {"type": "string", "minLength": 20},
    "category_id": {"type": "string", "minLength": 1},
    "region": {"type": "string", "minLength": 1},
    "district": {"type": "string"},
    "venue": {"type": "string"},
    "contact": {"type": "string", "minLength": 3},
    "website": {"type": "string"}
  }
}`

var (
	compileOnce sync.Once
	compiled    map[listing.Kind]*jsonschema.Schema
	compileErr  error
)

func compile() {
	compiled = make(map[listing.Kind]*jsonschema.Schema, 2)
	for k, src := range map[listing.Kind]string{
		listing.KindEvent:    eventSchema,
		listing.KindBusiness: businessSchema,
	} {
		c := jsonschema.NewCompiler()
		var doc any
		if err := json.Unmarshal([]byte(src), &doc); err != nil {
			compileErr = err
			return
		}
		url := fmt.Sprintf("mem://%s.schema.json", k)
		if err := c.AddResource(url, doc); err != nil {
			compileErr = err
			return
		}
		sch, err := c.Compile(url)
		if err != nil {
			compileErr = err
			return
		}
		compiled[k] = sch
	}
}

// Validate runs the full-form validation for the given kind. It returns a
// map of field name to message, empty-by-nil when the form is valid. It
// never performs I/O; submission must not reach the network while this
// returns errors.
func Validate(k listing.Kind, f listing.Fields) map[string]string {
	compileOnce.Do(compile)
	if compileErr != nil {
		return map[string]string{"form": "validation rules unavailable: " + compileErr.Error()}
	}
	sch, ok := compiled[k]
	if !ok {
		return map[string]string{"form": fmt.Sprintf("unknown record kind %q", k)}
	}

	errs := make(map[string]string)

	// Structural pass over the generic JSON form of the fields.
	b, _ := json.Marshal(f)
	var v any
	_ = json.Unmarshal(b, &v)
	if err := sch.Validate(v); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			collect(ve, errs)
		} else {
			errs["form"] = err.Error()
		}
	}

	// Cross-field pass.
	if k == listing.KindEvent {
		if f.TicketType == listing.TicketPaid && f.Price == "" {
			errs["price"] = "price is required for paid tickets"
		}
		if f.StartDate != "" && f.EndDate != "" {
			start, serr := time.Parse("2006-01-02", f.StartDate)
			end, eerr := time.Parse("2006-01-02", f.EndDate)
			if serr == nil && eerr == nil && end.Before(start) {
				errs["end_date"] = "end date must not be before start date"
			}
		}
		if f.MultiDay && f.EndDate == "" {
			errs["end_date"] = "end date is required for multi-day events"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// collect walks the validation error tree and keys leaf failures by the
// offending field name.
func collect(ve *jsonschema.ValidationError, out map[string]string) {
	if len(ve.Causes) == 0 {
		field := ""
		if n := len(ve.InstanceLocation); n > 0 {
			field = ve.InstanceLocation[n-1]
		}
		switch ek := ve.ErrorKind.(type) {
		case *kind.Required:
			for _, p := range ek.Missing {
				out[p] = p + " is required"
			}
			return
		case *kind.MinLength:
			out[field] = fmt.Sprintf("%s must be at least %d characters", field, ek.Want)
			return
		case *kind.Pattern:
			out[field] = field + " has an invalid format"
			return
		case *kind.Enum:
			out[field] = field + " has an unsupported value"
			return
		}
		if field == "" {
			field = "form"
		}
		if _, seen := out[field]; !seen {
			out[field] = field + " is invalid"
		}
		return
	}
	for _, c := range ve.Causes {
		collect(c, out)
	}
}
