package scanner

import (
	"strings"

	"github.com/heathj/htmlscan/sax"
)

// stepSpecial accumulates raw text for an element the catalog marked
// special (SCRIPT, STYLE, and the like), watching only for a matching
// close tag; nothing inside is scanned as markup, entity references,
// or comments. It mirrors stepContent's return shape so ScanDocument
// can dispatch to either without caring which is active.
func (s *Scanner) stepSpecial() (yielded, eof bool, err error) {
	var buf []rune
	flushAndStop := func() (bool, bool, error) {
		s.reportError("HTML1007")
		if len(buf) > 0 {
			s.emitCharacters(string(buf))
		}
		s.active = activeContent
		s.state = stateContent
		return false, true, nil
	}

	for {
		c, ok := s.cur.read()
		if !ok {
			return flushAndStop()
		}

		switch c {
		case '\r':
			if c2, ok2 := s.cur.read(); !ok2 || c2 != '\n' {
				if ok2 {
					s.cur.unread()
				}
			}
			buf = append(buf, '\n')
			continue
		case '\n':
			buf = append(buf, '\n')
			continue
		}

		if c != '<' {
			buf = append(buf, c)
			continue
		}

		c2, ok2 := s.cur.read()
		if !ok2 {
			buf = append(buf, '<')
			return flushAndStop()
		}
		if c2 != '/' {
			buf = append(buf, '<')
			s.cur.unread()
			continue
		}

		name, matched := s.cur.scanName()
		if !matched || !strings.EqualFold(name, s.specialElementName) {
			buf = append(buf, '<', '/')
			buf = append(buf, []rune(name)...)
			continue
		}

		if len(buf) > 0 {
			s.emitCharacters(string(buf))
		}
		s.cur.skipMarkup()
		ename := modifyName(name, s.cfg.NamesElems)
		if s.handler != nil && s.elementCount >= s.elementDepth {
			s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
			s.callHandler(s.handler.EndElement(sax.QName{Local: ename, Raw: ename}, s.locationAugs()))
		}
		s.active = activeContent
		s.state = stateContent
		return false, false, nil
	}
}
