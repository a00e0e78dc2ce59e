package html

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/serp"
	"golang.org/x/net/html"
)

// decodeEntity resolves a named reference using the HTML5 entity table.
// Unknown names are reproduced verbatim as "&name".
func decodeEntity(name string) string {
	ref := "&" + name + ";"
	s := html.UnescapeString(ref)

	// For unknown names x/net/html decodes the longest legacy prefix and
	// leaves the rest of the name, including the ';', in place.
	if s == ref || (s != ";" && strings.HasSuffix(s, ";")) {
		return "&" + name
	}
	return s
}

// decodeCharRef resolves a decimal or hexadecimal character reference.
// Code points outside the Unicode range, surrogates and NUL decode to
// U+FFFD. A payload that is not a number returns an EMALFORMED error.
func decodeCharRef(digits string, hex bool) (string, error) {
	base, prefix := 10, "&#"
	if hex {
		base, prefix = 16, "&#x"
	}

	n, err := strconv.ParseUint(digits, base, 32)
	if errors.Is(err, strconv.ErrRange) {
		return string(utf8.RuneError), nil
	}
	if err != nil {
		return "", serp.Errorf(serp.EMALFORMED, "malformed character reference %q", prefix+digits+";")
	}

	if n == 0 || n > unicode.MaxRune || (0xD800 <= n && n <= 0xDFFF) {
		return string(utf8.RuneError), nil
	}
	return string(rune(n)), nil
}
