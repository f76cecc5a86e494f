package scanner

import (
	"strings"

	"github.com/heathj/htmlscan/sax"
)

// stepContent runs one unit of the CONTENT/MARKUP_BRACKET state
// machine: either a run of characters, an entity reference, a
// comment, a processing instruction, a start tag, or an end tag.
// eof reports that the current entity ran out of input; yielded
// reports that a special element's start tag was just emitted and the
// active scanner has switched, which the original scanner treats as
// its own reason to return control to the driver.
func (s *Scanner) stepContent() (yielded, eof bool, err error) {
	for {
		switch s.state {
		case stateContent:
			s.beginLine, s.beginColumn = s.cur.lineNumber, s.cur.columnNumber
			c, ok := s.cur.read()
			switch {
			case !ok:
				return false, true, nil
			case c == '<':
				s.state = stateMarkupBracket
				continue
			case c == '&':
				s.scanEntityRef(true)
			default:
				s.cur.unread()
				s.scanCharacters()
			}
			return false, false, nil

		case stateMarkupBracket:
			c, ok := s.cur.read()
			switch {
			case ok && c == '!':
				c1, ok1 := s.cur.read()
				if ok1 && c1 == '-' {
					c2, ok2 := s.cur.read()
					if ok2 && c2 == '-' {
						if eofInComment := s.scanComment(); eofInComment {
							s.state = stateContent
							return false, true, nil
						}
					} else {
						s.reportError("HTML1002")
						s.cur.skipMarkup()
					}
				} else {
					s.reportError("HTML1002")
					s.cur.skipMarkup()
				}
			case ok && c == '?':
				s.reportWarning("HTML1008")
				s.cur.skipMarkup()
			case ok && c == '/':
				s.scanEndElement()
			case !ok:
				s.reportError("HTML1003")
				s.state = stateContent
				return false, true, nil
			default:
				s.cur.unread()
				s.elementCount++
				ename, special, eofInTag := s.scanStartElement()
				if eofInTag {
					s.state = stateContent
					return false, true, nil
				}
				if special {
					s.specialElementName = ename
					s.active = activeSpecial
					s.state = stateContent
					return true, false, nil
				}
			}
			s.state = stateContent
			return false, false, nil
		}
	}
}

// scanCharacters normalizes any leading newline run to '\n', then
// scans forward to the next '<', '&', or newline and emits the whole
// span as one characters event.
func (s *Scanner) scanCharacters() {
	newlines := s.cur.skipNewlines()
	if newlines == 0 && s.cur.offset == s.cur.length {
		return
	}
	start := s.cur.offset - newlines
	for i := start; i < s.cur.offset; i++ {
		s.cur.buffer[i] = '\n'
	}
	for s.cur.offset < s.cur.length {
		c := s.cur.buffer[s.cur.offset]
		if c == '<' || c == '&' || c == '\n' || c == '\r' {
			break
		}
		s.cur.offset++
		s.cur.columnNumber++
	}
	if s.cur.offset > start {
		s.emitCharacters(string(s.cur.buffer[start:s.cur.offset]))
	}
}

// scanComment consumes up to a "-->" terminator, handling runs of
// dashes per spec: n>=2 dashes followed by '>' ends the comment and
// contributes n-2 literal dashes; a lone dash followed by non-'>'
// contributes all dashes seen and continues. eof reports an
// end-of-entity signal (already reported as HTML1007).
func (s *Scanner) scanComment() (eof bool) {
	var buf []rune
	for {
		c, ok := s.cur.read()
		if !ok {
			s.reportError("HTML1007")
			return true
		}
		if c == '-' {
			count := 1
			var last rune
			var lastOK bool
			for {
				last, lastOK = s.cur.read()
				if lastOK && last == '-' {
					count++
					continue
				}
				break
			}
			if count < 2 {
				buf = append(buf, '-')
				if lastOK {
					s.cur.unread()
				}
				continue
			}
			if !lastOK || last != '>' {
				for i := 0; i < count; i++ {
					buf = append(buf, '-')
				}
				if lastOK {
					s.cur.unread()
				}
				continue
			}
			for i := 0; i < count-2; i++ {
				buf = append(buf, '-')
			}
			break
		}
		if c == '\n' || c == '\r' {
			s.cur.unread()
			s.cur.skipNewlines()
			buf = append(buf, '\n')
			continue
		}
		buf = append(buf, c)
	}
	if s.handler != nil && s.elementCount >= s.elementDepth {
		s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
		s.callHandler(s.handler.Comment(buf, s.locationAugs()))
	}
	return false
}

// scanStartElement scans a start tag's name and attributes, applies
// the meta-charset re-decode and BODY-triggered buffer release, and
// emits startElement. eof signals an unrecoverable end-of-entity from
// inside attribute scanning.
func (s *Scanner) scanStartElement() (ename string, special bool, eof bool) {
	name, ok := s.cur.scanName()
	if !ok {
		s.reportError("HTML1009")
		s.cur.skipMarkup()
		return "", false, false
	}
	ename = modifyName(name, s.cfg.NamesElems)

	var attrs sax.Attributes
	beginLine, beginColumn := s.beginLine, s.beginColumn
	for {
		more, attrEOF := s.scanAttribute(&attrs)
		if attrEOF {
			return "", false, true
		}
		if !more {
			break
		}
	}
	s.beginLine, s.beginColumn = beginLine, beginColumn

	if s.byteStream != nil && s.elementDepth == -1 {
		s.applyByteStreamHints(ename, attrs)
	}

	if s.handler != nil && s.elementCount >= s.elementDepth {
		s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
		s.callHandler(s.handler.StartElement(sax.QName{Local: ename, Raw: ename}, attrs, s.locationAugs()))
	}

	if el, found := s.catalog.Get(ename); found {
		special = el.Special
	}
	return ename, special, false
}

// applyByteStreamHints implements the meta-charset re-decode and the
// BODY/default-parent-BODY early buffer release, both of which only
// matter before the byte buffer would otherwise be replayed or
// released for good.
func (s *Scanner) applyByteStreamHints(ename string, attrs sax.Attributes) {
	switch {
	case strings.EqualFold(ename, "META"):
		httpEquiv, _ := GetValue(attrs, "http-equiv")
		if !strings.EqualFold(httpEquiv, "content-type") {
			return
		}
		content, _ := GetValue(attrs, "content")
		idx := strings.Index(strings.ToLower(content), "charset=")
		if idx == -1 {
			return
		}
		rest := content[idx+len("charset="):]
		charset := rest
		if semi := strings.IndexByte(rest, ';'); semi != -1 {
			charset = rest[:semi]
		}
		s.redecodeFromCharset(charset)
	case strings.EqualFold(ename, "BODY"):
		s.byteStream.Clear()
	default:
		if el, found := s.catalog.Get(ename); found && strings.EqualFold(el.Parent, "BODY") {
			s.byteStream.Clear()
		}
	}
}

func (s *Scanner) redecodeFromCharset(ianaCharset string) {
	native, ok := s.encMap.Native(ianaCharset)
	if !ok {
		native = ianaCharset
		s.reportError("HTML1001", ianaCharset)
	}
	dec, ok := s.encMap.Decoder(native)
	if !ok {
		s.reportError("HTML1010", ianaCharset)
		s.byteStream.Clear()
		return
	}
	s.ianaEncoding = ianaCharset
	s.cur.src = newDecodedRuneSource(s.byteStream, dec)
	s.byteStream.Playback()
	s.elementDepth = s.elementCount
	s.elementCount = 0
	s.cur.offset, s.cur.length = 0, 0
	s.cur.lineNumber, s.cur.columnNumber = 1, 1
}

// scanAttribute reads one attribute and reports whether the tag has
// more (true) or was just closed (false). eof signals an
// end-of-entity condition, already reported as HTML1007.
func (s *Scanner) scanAttribute(attrs *sax.Attributes) (more, eof bool) {
	s.cur.skipSpaces()
	s.beginLine, s.beginColumn = s.cur.lineNumber, s.cur.columnNumber

	c, ok := s.cur.read()
	if !ok {
		s.reportError("HTML1007")
		return false, true
	}
	if c == '>' {
		return false, false
	}
	s.cur.unread()

	aname, ok := s.cur.scanName()
	if !ok {
		s.reportError("HTML1011")
		s.cur.skipMarkup()
		return false, false
	}
	aname = modifyName(aname, s.cfg.NamesAttrs)
	s.cur.skipSpaces()

	c, ok = s.cur.read()
	if !ok {
		s.reportError("HTML1007")
		return false, true
	}
	if c == '/' || c == '>' {
		s.addAttribute(attrs, aname, "")
		if c == '/' {
			s.cur.skipMarkup()
		}
		return false, false
	}
	if c != '=' {
		s.cur.unread()
		s.addAttribute(attrs, aname, "")
		return true, false
	}

	s.cur.skipSpaces()
	c, ok = s.cur.read()
	if !ok {
		s.reportError("HTML1007")
		return false, true
	}
	if c == '>' {
		s.addAttribute(attrs, aname, "")
		return false, false
	}

	if c != '\'' && c != '"' {
		var buf []rune
		buf = append(buf, c)
		for {
			c, ok = s.cur.read()
			if !ok {
				s.reportError("HTML1007")
				return false, true
			}
			if isSpace(c) || c == '>' {
				s.cur.unread()
				break
			}
			buf = append(buf, c)
		}
		s.addAttribute(attrs, aname, string(buf))
		return true, false
	}

	quote := c
	var buf []rune
	for {
		c, ok = s.cur.read()
		if !ok {
			s.reportError("HTML1007")
			return false, true
		}
		if c == quote {
			break
		}
		if c == '&' {
			value, raw, resolved := s.scanEntityRef(false)
			if resolved {
				buf = append(buf, value)
			} else {
				buf = append(buf, []rune(raw)...)
			}
			continue
		}
		buf = append(buf, c)
	}
	s.addAttribute(attrs, aname, string(buf))
	return true, false
}

func (s *Scanner) addAttribute(attrs *sax.Attributes, name, value string) {
	*attrs = append(*attrs, sax.Attribute{
		Name:  sax.QName{Local: name, Raw: name},
		Type:  "CDATA",
		Value: value,
		Augs:  s.freshLocationAugs(),
	})
}

// scanEndElement scans "</name" up to and including the terminating
// '>' and emits endElement, or HTML1012 if no name was found.
func (s *Scanner) scanEndElement() {
	name, ok := s.cur.scanName()
	if !ok {
		s.reportError("HTML1012")
	}
	s.cur.skipMarkup()
	if !ok {
		return
	}
	ename := modifyName(name, s.cfg.NamesElems)
	if s.handler != nil && s.elementCount >= s.elementDepth {
		s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
		s.callHandler(s.handler.EndElement(sax.QName{Local: ename, Raw: ename}, s.locationAugs()))
	}
}
