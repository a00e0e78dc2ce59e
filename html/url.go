package html

import (
	"net/url"
	"strings"
)

// schemeWindow is how far into an unwrapped URL the "://" marker must end
// for the record to count as an organic result. Ads and internal links use
// relative redirect paths such as /aclk?... and fail this check.
const schemeWindow = 12

// unwrapURL strips Google's redirect wrapper: everything up to and
// including "?q=", and everything from "&sa=" on.
func unwrapURL(href string) string {
	u := href
	if i := strings.Index(u, "?q="); i >= 0 {
		u = u[i+len("?q="):]
	}
	if i := strings.Index(u, "&sa="); i >= 0 {
		u = u[:i]
	}
	return u
}

// hasScheme reports whether u carries an absolute-URL scheme marker near
// its start.
func hasScheme(u string) bool {
	i := strings.Index(u, "://")
	return i >= 0 && i+len("://") <= schemeWindow
}

// unescapeURL percent-decodes u, returning it unchanged if it contains an
// invalid escape.
func unescapeURL(u string) string {
	s, err := url.PathUnescape(u)
	if err != nil {
		return u
	}
	return s
}
