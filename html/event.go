// Package html extracts search results from Google result pages.
//
// Markup is tokenized with golang.org/x/net/html and turned into a flat
// stream of events, which a small state machine reduces into serp.Result
// records without building a document tree.
package html

import (
	"strings"

	"golang.org/x/net/html"
)

// EventKind identifies the type of a markup event.
type EventKind int

// Event kinds emitted by Tokenize.
const (
	StartTagEvent EventKind = iota
	EndTagEvent
	TextEvent
	EntityRefEvent
	CharRefEvent
)

func (k EventKind) String() string {
	switch k {
	case StartTagEvent:
		return "start-tag"
	case EndTagEvent:
		return "end-tag"
	case TextEvent:
		return "text"
	case EntityRefEvent:
		return "entity-ref"
	case CharRefEvent:
		return "char-ref"
	}
	return "unknown"
}

// Event is a primitive markup event.
type Event struct {
	Kind EventKind

	// Name is the lowercase tag name for tag events and the reference name
	// (without '&' and ';') for EntityRefEvent.
	Name string

	// Attrs holds the attributes of a start tag, in document order.
	// Values are already unescaped.
	Attrs []html.Attribute

	// SelfClosing is set for start tags written as <tag/>.
	SelfClosing bool

	// Data is the raw text for TextEvent and the digits of a CharRefEvent.
	Data string

	// Hex is set for hexadecimal character references (&#x...;).
	Hex bool
}

// Attr returns the value of the first attribute named key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute contains the given token.
func (e Event) HasClass(class string) bool {
	v, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
