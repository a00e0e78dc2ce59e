package html

import (
	"regexp"
	"strings"

	"github.com/fwojciec/serp"
)

// state is a structural zone of a result record.
type state int

const (
	scanning state = iota
	inRecord
	inTitle
	inBody
	snippetOuter
	snippetInner
	numStates
)

var stateNames = [numStates]string{
	scanning:     "scanning",
	inRecord:     "in-record",
	inTitle:      "in-title",
	inBody:       "in-body",
	snippetOuter: "snippet-outer",
	snippetInner: "snippet-inner",
}

func (s state) String() string { return stateNames[s] }

// field is the record field that text is accumulated into.
type field int

const (
	noField field = iota
	titleField
	snippetField
)

// frame is an element the extractor is currently inside of.
type frame struct {
	state state
	tag   string
	dest  field

	// depth counts nested elements with the same tag name, so that only the
	// close tag matching the frame's own element pops it.
	depth int
}

// handlers reacts to events for a single state. A nil handler means the
// event is ignored in that state.
type handlers struct {
	start func(*extractor, Event)
	text  func(*extractor, Event)
	ref   func(*extractor, Event)
	exit  func(*extractor)
}

var dispatch = [numStates]handlers{
	scanning:     {start: (*extractor).scanStart},
	inRecord:     {start: (*extractor).recordStart, exit: (*extractor).finalize},
	inTitle:      {start: (*extractor).titleStart, text: (*extractor).appendText, ref: (*extractor).appendRef},
	inBody:       {start: (*extractor).bodyStart},
	snippetOuter: {start: (*extractor).snippetStart, text: (*extractor).appendText, ref: (*extractor).appendRef},
	snippetInner: {start: (*extractor).snippetStart, text: (*extractor).appendText, ref: (*extractor).appendRef},
}

// record is a result under construction.
type record struct {
	title   strings.Builder
	url     string
	snippet strings.Builder
}

// extractor reduces one document's event stream into results.
// It is not reused across documents.
type extractor struct {
	news bool

	stack   []frame
	rec     *record
	err     error
	results []*serp.Result
	skipped int
}

func newExtractor(news bool) *extractor {
	return &extractor{
		news:  news,
		stack: []frame{{state: scanning}},
	}
}

// handle feeds a single event into the state machine. It returns an error
// only for malformed character references inside a title or snippet.
func (x *extractor) handle(ev Event) error {
	h := dispatch[x.top().state]
	switch ev.Kind {
	case StartTagEvent:
		before := len(x.stack)
		if h.start != nil {
			h.start(x, ev)
		}
		if len(x.stack) == before && !ev.SelfClosing {
			if top := x.top(); top.tag == ev.Name {
				top.depth++
			}
		}
	case EndTagEvent:
		x.end(ev)
	case TextEvent:
		if h.text != nil {
			h.text(x, ev)
		}
	case EntityRefEvent, CharRefEvent:
		if h.ref != nil {
			h.ref(x, ev)
		}
	}

	err := x.err
	x.err = nil
	return err
}

func (x *extractor) top() *frame {
	return &x.stack[len(x.stack)-1]
}

func (x *extractor) push(ev Event, s state, dest field) {
	if ev.SelfClosing {
		return
	}
	x.stack = append(x.stack, frame{state: s, tag: ev.Name, dest: dest})
}

// end pops the current frame when ev closes its element. Close tags for
// any other element are ignored.
func (x *extractor) end(ev Event) {
	top := x.top()
	if top.state == scanning || top.tag != ev.Name {
		return
	}
	if top.depth > 0 {
		top.depth--
		return
	}

	closed := *top
	x.stack = x.stack[:len(x.stack)-1]
	if exit := dispatch[closed.state].exit; exit != nil {
		exit(x)
	}
}

// dest returns the field receiving text, taken from the innermost frame.
func (x *extractor) dest() *strings.Builder {
	switch x.top().dest {
	case titleField:
		return &x.rec.title
	case snippetField:
		return &x.rec.snippet
	}
	return nil
}

func (x *extractor) scanStart(ev Event) {
	if (ev.Name == "div" || ev.Name == "li") && ev.HasClass("g") {
		x.rec = new(record)
		x.push(ev, inRecord, noField)
	}
}

func (x *extractor) recordStart(ev Event) {
	switch {
	case ev.Name == "h3":
		x.push(ev, inTitle, titleField)
	case ev.Name == "div" && ev.HasClass("s"):
		x.push(ev, inBody, noField)
	}
}

func (x *extractor) titleStart(ev Event) {
	if ev.Name != "a" {
		return
	}
	if href, ok := ev.Attr("href"); ok {
		x.rec.url = href
	}
}

func (x *extractor) bodyStart(ev Event) {
	if ev.Name == "span" && ev.HasClass("st") {
		x.push(ev, snippetOuter, snippetField)
	}
}

func (x *extractor) snippetStart(ev Event) {
	if x.top().state == snippetOuter && ev.Name == "span" {
		x.push(ev, snippetInner, snippetField)
	}
}

func (x *extractor) appendText(ev Event) {
	if b := x.dest(); b != nil {
		b.WriteString(ev.Data)
	}
}

// newsDash matches a dash standing alone between spaces, including
// non-breaking ones, or at either end of the snippet.
var newsDash = regexp.MustCompile(`(?:^|[\s\x{00a0}]+)-(?:[\s\x{00a0}]+|$)`)

func (x *extractor) appendRef(ev Event) {
	b := x.dest()
	if b == nil {
		return
	}
	if ev.Kind == EntityRefEvent {
		b.WriteString(decodeEntity(ev.Name))
		return
	}
	s, err := decodeCharRef(ev.Data, ev.Hex)
	if err != nil {
		x.err = err
		return
	}
	b.WriteString(s)
}

// finalize runs when the record container closes and either appends the
// record to the results or discards it.
func (x *extractor) finalize() {
	rec := x.rec
	x.rec = nil

	u := unwrapURL(rec.url)
	if u == "" {
		return
	}
	if !hasScheme(u) {
		x.skipped++
		return
	}

	snippet := rec.snippet.String()
	if x.news {
		// A dash and its spaces may span several text and reference events.
		snippet = newsDash.ReplaceAllString(snippet, ", ")
	}

	x.results = append(x.results, &serp.Result{
		Index:   len(x.results) + 1,
		Title:   collapseSpace(rec.title.String()),
		URL:     unescapeURL(u),
		Snippet: collapseSpace(snippet),
	})
}

func (x *extractor) result() *serp.ParseResult {
	return &serp.ParseResult{Results: x.results, Skipped: x.skipped}
}

// collapseSpace trims s and folds runs of ASCII whitespace into a single
// space. Non-breaking spaces are kept.
func collapseSpace(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return true
		}
		return false
	})
	return strings.Join(fields, " ")
}
