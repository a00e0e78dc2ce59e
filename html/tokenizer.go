package html

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Tokenize reads markup from r and calls fn for every event in document
// order. Text is passed through raw, with entity and character references
// split out into their own events. Tokenize stops at the first error
// returned by fn.
func Tokenize(r io.Reader, fn func(Event) error) error {
	z := html.NewTokenizer(r)
	for {
		var err error
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		case html.StartTagToken:
			err = fn(startTag(z, false))
		case html.SelfClosingTagToken:
			err = fn(startTag(z, true))
		case html.EndTagToken:
			name, _ := z.TagName()
			err = fn(Event{Kind: EndTagEvent, Name: string(name)})
		case html.TextToken:
			err = splitText(string(z.Raw()), fn)
		}
		if err != nil {
			return err
		}
	}
}

func startTag(z *html.Tokenizer, selfClosing bool) Event {
	name, more := z.TagName()
	ev := Event{Kind: StartTagEvent, Name: string(name), SelfClosing: selfClosing}
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		ev.Attrs = append(ev.Attrs, html.Attribute{Key: string(key), Val: string(val)})
	}
	return ev
}

// splitText emits s as text events, with references split out.
func splitText(s string, fn func(Event) error) error {
	for s != "" {
		i := strings.IndexByte(s, '&')
		if i < 0 {
			return fn(Event{Kind: TextEvent, Data: s})
		}
		if i > 0 {
			if err := fn(Event{Kind: TextEvent, Data: s[:i]}); err != nil {
				return err
			}
			s = s[i:]
		}

		ev, n := scanReference(s)
		if n == 0 {
			// A lone ampersand is ordinary text.
			ev, n = Event{Kind: TextEvent, Data: "&"}, 1
		}
		if err := fn(ev); err != nil {
			return err
		}
		s = s[n:]
	}
	return nil
}

// scanReference parses a reference at the start of s, which begins with '&'.
// It returns the event and the number of bytes consumed, or 0 if s does not
// start with a reference. The trailing ';' is optional. A numeric payload
// ends at the first character that is not a digit of its base, so "&#39s"
// is a reference followed by text. A payload without any digits is passed
// on whole, to be rejected by the decoder.
func scanReference(s string) (Event, int) {
	if len(s) > 1 && s[1] == '#' {
		start, hex := 2, false
		if start < len(s) && (s[start] == 'x' || s[start] == 'X') {
			start, hex = start+1, true
		}
		isDigit := isDecimal
		if hex {
			isDigit = isHex
		}
		end := scan(s, start, isDigit)
		if end == start {
			end = scan(s, start, isAlnum)
		}
		if end == start {
			return Event{}, 0
		}
		return Event{Kind: CharRefEvent, Data: s[start:end], Hex: hex}, consumeSemicolon(s, end)
	}

	if len(s) < 2 || !isLetter(s[1]) {
		return Event{}, 0
	}
	end := scan(s, 2, isAlnum)
	return Event{Kind: EntityRefEvent, Name: s[1:end]}, consumeSemicolon(s, end)
}

// scan returns the end of the run of bytes matching ok from i.
func scan(s string, i int, ok func(byte) bool) int {
	for i < len(s) && ok(s[i]) {
		i++
	}
	return i
}

func consumeSemicolon(s string, i int) int {
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return i
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDecimal(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDecimal(c)
}
