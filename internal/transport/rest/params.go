package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/easi-app/easi-server/internal/domain"
)

// queryDateLayout is the layout of the from/to query parameters.
const queryDateLayout = "2006-01-02"

// tableQuery holds the query parameters shared by every table endpoint.
type tableQuery struct {
	SortBy   string
	Desc     bool
	Query    string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// paramParser collects errors across parameters so all of them are reported at once.
type paramParser struct {
	errs domain.FieldErrors
}

func (p *paramParser) fail(field, message string) {
	p.errs.Add(field, message)
}

func (p *paramParser) err() error {
	return p.errs.Err()
}

func (p *paramParser) intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, "must be an integer")
		return fallback
	}
	return v
}

// dateParam parses a calendar date as the start of that day in UTC, or the
// last nanosecond of it when endOfDay is set.
func (p *paramParser) dateParam(r *http.Request, name string, endOfDay bool) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	d, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		p.fail(name, "must be a date in YYYY-MM-DD format")
		return nil
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Nanosecond)
	}
	return &d
}

func (p *paramParser) uuidParam(r *http.Request, name string) uuid.UUID {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		p.fail(name, "must be a UUID")
	}
	return id
}

func (p *paramParser) tableQuery(r *http.Request, defaultPageSize int) tableQuery {
	q := r.URL.Query()

	tq := tableQuery{
		SortBy:   q.Get("sort"),
		Query:    q.Get("q"),
		From:     p.dateParam(r, "from", false),
		To:       p.dateParam(r, "to", true),
		Page:     p.intParam(r, "page", 1),
		PageSize: p.intParam(r, "pageSize", defaultPageSize),
	}

	switch q.Get("order") {
	case "", "asc":
	case "desc":
		tq.Desc = true
	default:
		p.fail("order", "must be asc or desc")
	}
	return tq
}
