// Package goquery inspects Google response pages with CSS selectors to
// explain why they yielded no results.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serp"
)

// Ensure Detector implements serp.PageDetector at compile time.
var _ serp.PageDetector = (*Detector)(nil)

// Detector classifies result pages that contain no organic results.
// It checks for the markers Google puts on captcha interstitials, cookie
// consent walls and "did not match" notices.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the page kind.
// Returns PageUnknown if the page cannot be classified.
func (d *Detector) Detect(html string) serp.PageKind {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return serp.PageUnknown
	}

	// Captcha interstitial served from /sorry/index
	if d.hasSelector(doc, "form#captcha-form") ||
		d.hasSelector(doc, "#recaptcha, .g-recaptcha") ||
		d.hasSelector(doc, "form[action*='/sorry/']") ||
		d.bodyContains(doc, "unusual traffic from your computer network") {
		return serp.PageBlocked
	}

	// Cookie consent wall, either inline or served from consent.google.*
	if d.hasSelector(doc, "form[action*='consent.google']") ||
		d.hasSelector(doc, "#consent-bump, #CXQnmb") ||
		strings.HasPrefix(strings.TrimSpace(doc.Find("title").First().Text()), "Before you continue") {
		return serp.PageConsent
	}

	if d.bodyContains(doc, "did not match any documents") ||
		d.bodyContains(doc, "No results found for") {
		return serp.PageNoMatch
	}

	return serp.PageUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// bodyContains reports whether the visible body text contains s.
func (d *Detector) bodyContains(doc *goquery.Document, s string) bool {
	body := doc.Find("body").Clone()
	body.Find("script, style").Remove()
	return strings.Contains(strings.Join(strings.Fields(body.Text()), " "), s)
}
