// Package paging implements offset pagination for the list endpoints.
//
// The clients send human-friendly 1-based "page" plus "limit" query
// parameters; out-of-range values are clamped rather than rejected.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the client sends none.
const DefaultLimit = 5

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Params holds clamped pagination values.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts page/limit from the request, clamping page to >= 1 and
// limit to [1, MaxLimit] with DefaultLimit as fallback.
func Parse(r *http.Request) Params {
	return Params{
		Page:  parseClamped(query.Get(r, "page"), 1, 1, 0),
		Limit: parseClamped(query.Get(r, "limit"), DefaultLimit, 1, MaxLimit),
	}
}

func parseClamped(s string, def, min, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages computes ceil(total/limit), with a minimum of 1 so clients
// always have a last page to point at.
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 1
	}
	pages := (total + int64(p.Limit) - 1) / int64(p.Limit)
	return int(pages)
}
