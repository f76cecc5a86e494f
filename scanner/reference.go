package scanner

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/heathj/htmlscan/entities"
)

// scanEntityRef parses "&name;" or "&#N;" starting just after the
// '&' the caller already consumed. In content mode it emits
// characters/startGeneralEntity/endGeneralEntity directly; in
// attribute-value mode it emits nothing and leaves delivery to the
// caller, which is why raw (the exact source text scanned) is always
// returned alongside the resolved value.
//
// ok is true only when the reference resolved to a single character;
// raw is the literal text a caller should fall back to embedding when
// ok is false.
func (s *Scanner) scanEntityRef(contentMode bool) (value rune, raw string, ok bool) {
	buf := []rune{'&'}
	for {
		c, avail := s.cur.read()
		if !avail {
			raw = string(buf)
			s.reportWarning("HTML1004", raw)
			if contentMode {
				s.emitCharacters(raw)
			}
			return 0, raw, false
		}
		if c == ';' {
			buf = append(buf, ';')
			break
		}
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '#' {
			s.cur.unread()
			raw = string(buf)
			s.reportWarning("HTML1004", raw)
			if contentMode {
				s.emitCharacters(raw)
			}
			return 0, raw, false
		}
		buf = append(buf, c)
	}
	raw = string(buf)

	name := string(buf[1 : len(buf)-1])
	if name == "" {
		if contentMode {
			s.emitCharacters(raw)
		}
		return 0, raw, false
	}

	if strings.HasPrefix(name, "#") {
		base := 10
		digits := name[1:]
		if strings.HasPrefix(name, "#x") || strings.HasPrefix(name, "#X") {
			base = 16
			digits = name[2:]
		}
		n, err := strconv.ParseInt(digits, base, 32)
		if err != nil {
			s.reportError("HTML1005", name)
			if contentMode {
				s.emitCharacters(raw)
			}
			return 0, raw, false
		}
		if contentMode {
			notify := s.cfg.NotifyCharRefs
			s.emitReferenceEvent(name, rune(n), notify)
		}
		return rune(n), raw, true
	}

	c, found := s.entities.Get(name)
	if !found {
		s.reportWarning("HTML1006", name)
		if contentMode {
			s.emitCharacters(raw)
		}
		return 0, raw, false
	}
	if contentMode {
		notify := s.cfg.NotifyHTMLBuiltinRefs || (s.cfg.NotifyXMLBuiltinRefs && entities.IsXMLBuiltin(name))
		s.emitReferenceEvent(name, c, notify)
	}
	return c, raw, true
}

func (s *Scanner) emitReferenceEvent(name string, value rune, notify bool) {
	if s.handler == nil || s.elementCount < s.elementDepth {
		return
	}
	s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
	if notify {
		s.callHandler(s.handler.StartGeneralEntity(name, s.locationAugs()))
	}
	s.emitCharacters(string(value))
	if notify {
		s.callHandler(s.handler.EndGeneralEntity(name, s.locationAugs()))
	}
}
