package scanner

import "github.com/heathj/htmlscan/sax"

// locator adapts a Scanner's current entity into a sax.Locator, valid
// only while the current callback is executing.
type locator struct {
	s *Scanner
}

func (l locator) PublicID() string {
	if l.s.cur == nil {
		return ""
	}
	return l.s.cur.publicID
}

func (l locator) BaseSystemID() string {
	if l.s.cur == nil {
		return ""
	}
	return l.s.cur.baseSystemID
}

func (l locator) LiteralSystemID() string {
	if l.s.cur == nil {
		return ""
	}
	return l.s.cur.literalSystemID
}

func (l locator) ExpandedSystemID() string {
	if l.s.cur == nil {
		return ""
	}
	return l.s.cur.expandedSystemID
}

func (l locator) LineNumber() int {
	if l.s.cur == nil {
		return -1
	}
	return l.s.cur.lineNumber
}

func (l locator) ColumnNumber() int {
	if l.s.cur == nil {
		return -1
	}
	return l.s.cur.columnNumber
}

// locationAugs builds the Augmentations attached to the next event
// from the scanner's begin/end location, reusing a pooled instance
// for element, text, and comment events. Attribute events always get
// a fresh instance instead — see freshLocationAugs — because attribute
// lists outlive the scanner's own scratch state.
func (s *Scanner) locationAugs() *sax.Augmentations {
	if !s.cfg.Augmentations {
		return nil
	}
	s.pooledAugs.BeginLine = s.beginLine
	s.pooledAugs.BeginColumn = s.beginColumn
	s.pooledAugs.EndLine = s.endLine
	s.pooledAugs.EndColumn = s.endColumn
	return &s.pooledAugs
}

// freshLocationAugs is locationAugs without the pooling, for
// attribute events.
func (s *Scanner) freshLocationAugs() *sax.Augmentations {
	if !s.cfg.Augmentations {
		return nil
	}
	return &sax.Augmentations{
		BeginLine:   s.beginLine,
		BeginColumn: s.beginColumn,
		EndLine:     s.endLine,
		EndColumn:   s.endColumn,
	}
}
