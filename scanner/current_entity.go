package scanner

// bufferCapacity is the default character buffer size, ported from
// the original scanner's DEFAULT_BUFFER_SIZE.
const bufferCapacity = 2048

// runeSource is the character-level input a currentEntity refills
// from. A decoded byte stream (via golang.org/x/text/transform.NewReader
// wrapped in bufio.Reader) satisfies this, as does anything else that
// hands back one rune at a time — including a pushed nested source.
type runeSource interface {
	ReadRune() (rune, int, error)
}

// currentEntity is a decoded character stream together with its
// location bookkeeping: a sliding window into a fixed-capacity
// buffer, plus the identifiers describing where it came from. It
// plays the role of the original scanner's CurrentEntity value type.
type currentEntity struct {
	src runeSource

	publicID         string
	baseSystemID     string
	literalSystemID  string
	expandedSystemID string

	lineNumber   int
	columnNumber int

	buffer []rune
	offset int
	length int
}

func newCurrentEntity(src runeSource, publicID, baseSystemID, literalSystemID, expandedSystemID string) *currentEntity {
	return &currentEntity{
		src:              src,
		publicID:         publicID,
		baseSystemID:     baseSystemID,
		literalSystemID:  literalSystemID,
		expandedSystemID: expandedSystemID,
		lineNumber:       1,
		columnNumber:     1,
		buffer:           make([]rune, bufferCapacity),
	}
}

// load compacts nothing itself; it fills buffer[offset:] from src,
// setting offset/length to reflect what's now available. It returns
// the count of runes newly read and a non-nil error only when zero
// runes were obtained (a genuine end-of-entity signal) — matching the
// original load()'s "-1 means nothing more came in" contract without
// its dependence on the underlying reader's single-call fill amount.
func (e *currentEntity) load(offset int) (int, error) {
	n := 0
	for offset+n < len(e.buffer) {
		r, _, err := e.src.ReadRune()
		if err != nil {
			if n == 0 {
				e.offset, e.length = offset, offset
				return 0, err
			}
			break
		}
		e.buffer[offset+n] = r
		n++
	}
	e.offset, e.length = offset, offset+n
	return n, nil
}

// read returns the next character, or ok=false at end of entity.
func (e *currentEntity) read() (rune, bool) {
	if e.offset == e.length {
		if _, err := e.load(0); err != nil {
			return 0, false
		}
	}
	c := e.buffer[e.offset]
	e.offset++
	e.columnNumber++
	return c, true
}

// unread pushes back the single most recently read character.
func (e *currentEntity) unread() {
	e.offset--
	e.columnNumber--
}

// scanName reads while isNameChar matches, compacting and refilling
// across buffer boundaries as needed. ok is false if no character
// matched (including immediate EOF).
func (e *currentEntity) scanName() (string, bool) {
	if e.offset == e.length {
		if n, err := e.load(0); err != nil || n == 0 {
			return "", false
		}
	}
	start := e.offset
	for {
		for e.offset < e.length {
			if !isNameChar(e.buffer[e.offset]) {
				break
			}
			e.offset++
			e.columnNumber++
		}
		if e.offset != e.length {
			break
		}
		kept := e.length - start
		copy(e.buffer[0:kept], e.buffer[start:e.length])
		start = 0
		if n, err := e.load(kept); err != nil || n == 0 {
			break
		}
	}
	if e.offset == start {
		return "", false
	}
	return string(e.buffer[start:e.offset]), true
}

// skipSpaces consumes whitespace per isSpace, delegating newline runs
// to skipNewlines so line/column stay consistent.
func (e *currentEntity) skipSpaces() {
	for {
		if e.offset == e.length {
			if _, err := e.load(0); err != nil {
				return
			}
		}
		c := e.buffer[e.offset]
		if !isSpace(c) {
			return
		}
		if c == '\r' || c == '\n' {
			e.skipNewlines()
			continue
		}
		e.offset++
		e.columnNumber++
	}
}

// skipNewlines consumes a run of \r, \n, and \r\n sequences, each
// counting as exactly one line advance, and returns how many it
// counted. columnNumber is reset to 1 when any newlines are found.
func (e *currentEntity) skipNewlines() int {
	if e.offset == e.length {
		if _, err := e.load(0); err != nil {
			return 0
		}
	}
	if c := e.buffer[e.offset]; c != '\n' && c != '\r' {
		return 0
	}
	count := 0
	for {
		if e.offset == e.length {
			if _, err := e.load(0); err != nil {
				break
			}
		}
		c := e.buffer[e.offset]
		switch c {
		case '\r':
			e.offset++
			count++
			if e.offset == e.length {
				if _, err := e.load(0); err != nil {
					goto done
				}
			}
			if e.buffer[e.offset] == '\n' {
				e.offset++
			}
		case '\n':
			e.offset++
			count++
		default:
			goto done
		}
	}
done:
	e.lineNumber += count
	e.columnNumber = 1
	return count
}

// skipMarkup consumes characters up to and including the '>' that
// balances the '<' already consumed by the caller, tolerating nested
// '<' by tracking depth. It returns at EOF without complaint; the
// caller has already reported whatever error prompted the skip.
func (e *currentEntity) skipMarkup() {
	depth := 1
	for {
		if e.offset == e.length {
			if _, err := e.load(0); err != nil {
				return
			}
		}
		for e.offset < e.length {
			c := e.buffer[e.offset]
			e.offset++
			e.columnNumber++
			switch c {
			case '<':
				depth++
			case '>':
				depth--
				if depth == 0 {
					return
				}
			case '\r', '\n':
				e.unread()
				e.skipNewlines()
			}
		}
	}
}
