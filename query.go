package serp

import (
	"regexp"
	"strconv"
	"strings"
)

// Defaults applied by Query.Normalize.
const (
	DefaultNum = 10
	DefaultTLD = "com"
	MaxNum     = 100
)

var durationPattern = regexp.MustCompile(`^[hdwmy][0-9]*$`)

// Query describes a single search request.
type Query struct {
	Terms string `json:"terms"`

	// Start is the 0-based offset of the first result.
	Start int `json:"start"`

	// Num is the number of results requested per page.
	Num int `json:"num"`

	News  bool   `json:"news,omitempty"`
	TLD   string `json:"tld,omitempty"`
	Lang  string `json:"lang,omitempty"`
	Exact bool   `json:"exact,omitempty"`

	// Duration restricts results by age, e.g. "h5" (5 hours) or "m" (past month).
	Duration string `json:"duration,omitempty"`

	// Site restricts results to a single site.
	Site string `json:"site,omitempty"`
}

// Normalize fills in defaults for zero-valued fields.
func (q *Query) Normalize() {
	q.Terms = strings.TrimSpace(q.Terms)
	if q.Num == 0 {
		q.Num = DefaultNum
	}
	if q.TLD == "" {
		q.TLD = DefaultTLD
	}
	q.TLD = strings.TrimPrefix(strings.ToLower(q.TLD), ".")
}

// Validate returns an error if the query contains invalid fields.
func (q *Query) Validate() error {
	if strings.TrimSpace(q.Terms) == "" {
		return Errorf(EINVALID, "search keywords required")
	}
	if q.Start < 0 {
		return Errorf(EINVALID, "start offset must not be negative")
	}
	if q.Num < 1 || q.Num > MaxNum {
		return Errorf(EINVALID, "results per page must be between 1 and %d", MaxNum)
	}
	if q.Duration != "" && !durationPattern.MatchString(q.Duration) {
		return Errorf(EINVALID, "invalid time limit %q (expected e.g. h5, d5, w5, m5, y5)", q.Duration)
	}
	return nil
}

// Keywords returns the terms as sent to the engine, including any site filter.
func (q *Query) Keywords() string {
	if q.Site == "" {
		return q.Terms
	}
	return "site:" + q.Site + " " + q.Terms
}

// Canonical returns a stable string form of the query, used to group
// repeated searches in history.
func (q *Query) Canonical() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.Join(strings.Fields(q.Keywords()), " ")))
	b.WriteString("|start=" + strconv.Itoa(q.Start))
	b.WriteString("|num=" + strconv.Itoa(q.Num))
	b.WriteString("|tld=" + q.TLD)
	if q.News {
		b.WriteString("|news")
	}
	if q.Lang != "" {
		b.WriteString("|lang=" + q.Lang)
	}
	if q.Exact {
		b.WriteString("|exact")
	}
	if q.Duration != "" {
		b.WriteString("|tbs=" + q.Duration)
	}
	return b.String()
}

// Next returns a copy of the query advanced by one page.
func (q Query) Next() Query {
	q.Start += q.Num
	return q
}

// Prev returns a copy of the query moved back by one page, clamped at zero.
func (q Query) Prev() Query {
	q.Start -= q.Num
	if q.Start < 0 {
		q.Start = 0
	}
	return q
}
