// Package htmlcat is the element catalog the scanner consults to
// decide whether an element's content is opaque text (SCRIPT, STYLE,
// ...) and whether an element's default parent is BODY, which lets
// the meta-charset component stop buffering bytes early.
//
// It plays the role of the original scanner's HTMLElements table
// (org.cyberneko.html.HTMLElements), narrowed to exactly the two
// questions the tokenizer core asks: is this element special, and
// what is its default parent.
package htmlcat

import "strings"

// Element describes what the catalog knows about a tag name.
type Element struct {
	// Special elements have their content scanned as opaque text
	// until a matching end tag; the scanner never looks for nested
	// markup, entity references, or comments inside them.
	Special bool
	// Parent is the element's default parent, or "" if it has none
	// worth recording. Only compared against "BODY".
	Parent string
}

// Catalog answers questions about HTML elements by name. Lookups are
// case-insensitive; ok is false for names the catalog has no opinion
// about (in which case Special is false and Parent is "").
type Catalog interface {
	Get(name string) (Element, bool)
}

// special lists elements whose content is raw or escapable raw text
// per the HTML tokenization model: SCRIPT and STYLE are true raw
// text, TEXTAREA and TITLE are RCDATA (character references still
// literal here since this scanner's special-text handling doesn't
// distinguish RCDATA from RAWTEXT), and NOSCRIPT/NOFRAMES/NOEMBED/
// XMP/IFRAME are legacy raw-text elements carried over from
// HTMLElements.txt.
var special = map[string]bool{
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"noscript":  true,
	"noframes":  true,
	"noembed":   true,
	"xmp":       true,
	"iframe":    true,
	"comment":   true, // historical HTML comment element (NekoHTML legacy)
	"plaintext": true,
}

// bodyDefaultParent lists elements whose default parent is BODY, per
// the original scanner's HTMLElements table. Any of these appearing
// before a META charset re-decode has happened lets the byte buffer be
// released, since nothing later in the document can retroactively
// change the encoding.
var bodyDefaultParent = map[string]bool{
	"p": true, "div": true, "span": true, "a": true, "img": true,
	"table": true, "tr": true, "td": true, "th": true, "tbody": true,
	"thead": true, "tfoot": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"form": true, "input": true, "button": true, "select": true,
	"option": true, "label": true, "pre": true, "blockquote": true,
	"br": true, "hr": true, "b": true, "i": true, "u": true, "strong": true,
	"em": true, "small": true, "code": true, "video": true, "audio": true,
	"canvas": true, "svg": true, "article": true, "section": true,
	"nav": true, "aside": true, "header": true, "footer": true, "main": true,
	"figure": true, "figcaption": true, "dl": true, "dt": true, "dd": true,
}

// Default is the built-in catalog used when a caller does not supply
// its own. It is grounded on the special-element and default-parent
// lists the original scanner ships as static text resources.
type Default struct{}

// NewDefault returns the built-in element catalog.
func NewDefault() Default { return Default{} }

func (Default) Get(name string) (Element, bool) {
	lower := strings.ToLower(name)
	sp := special[lower]
	var parent string
	if bodyDefaultParent[lower] {
		parent = "BODY"
	}
	if !sp && parent == "" {
		if lower == "body" || lower == "head" || lower == "html" {
			return Element{}, true
		}
		return Element{}, false
	}
	return Element{Special: sp, Parent: parent}, true
}
