package scanner

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/transform"

	"github.com/heathj/htmlscan/entities"
	"github.com/heathj/htmlscan/htmlcat"
	"github.com/heathj/htmlscan/htmlenc"
	"github.com/heathj/htmlscan/reporter"
	"github.com/heathj/htmlscan/sax"
	"github.com/heathj/htmlscan/source"
)

// scannerState is the four-state enumeration from the original
// scanner's STATE_* constants, kept as a tagged variant rather than a
// polymorphic Scanner subclass per element.
type scannerState int

const (
	stateContent scannerState = iota
	stateMarkupBracket
	stateStartDocument
	stateEndDocument
)

// activeScanner selects which of the two scanner variants (ordinary
// content vs. special raw-text) is driving the current scan.
type activeScanner int

const (
	activeContent activeScanner = iota
	activeSpecial
)

// Scanner is the streaming tokenizer. It holds no goroutines: every
// call to ScanDocument runs synchronously on the caller's goroutine,
// pulling characters through the current entity and, for byte
// sources, through the playback stream underneath it.
type Scanner struct {
	cfg      Config
	handler  sax.Handler
	rep      reporter.Reporter
	catalog  htmlcat.Catalog
	entities entities.Table
	encMap   htmlenc.Map

	cur   *currentEntity
	stack []*currentEntity

	byteStream    *playbackStream
	ianaEncoding  string

	elementCount int
	elementDepth int

	state  scannerState
	active activeScanner

	specialElementName string

	beginLine, beginColumn int
	endLine, endColumn     int

	pooledAugs sax.Augmentations

	// handlerErr latches the first error a Handler callback returns
	// within the current ScanDocument step. Handler methods run deep
	// inside lexical scanning, where threading an error return through
	// every call site would obscure the scan logic; ScanDocument checks
	// this after every step instead and aborts the scan on the first one.
	handlerErr error
}

// callHandler records the first error a Handler callback returns,
// leaving any later ones in the same step silently discarded.
func (s *Scanner) callHandler(err error) {
	if err != nil && s.handlerErr == nil {
		s.handlerErr = err
	}
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

func WithHandler(h sax.Handler) Option        { return func(s *Scanner) { s.handler = h } }
func WithReporter(r reporter.Reporter) Option { return func(s *Scanner) { s.rep = r } }
func WithCatalog(c htmlcat.Catalog) Option     { return func(s *Scanner) { s.catalog = c } }
func WithEntities(t entities.Table) Option     { return func(s *Scanner) { s.entities = t } }
func WithEncodingMap(m htmlenc.Map) Option     { return func(s *Scanner) { s.encMap = m } }

// New builds a Scanner. Any collaborator left unset by opts falls
// back to this package's built-in default (htmlcat.Default,
// entities.Default, htmlenc.Default, reporter.Discard) — a caller
// wanting the real defaults doesn't have to know their names.
func New(cfg Config, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:      cfg,
		catalog:  htmlcat.NewDefault(),
		entities: entities.NewDefault(),
		encMap:   htmlenc.NewDefault(),
		rep:      reporter.Discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) Locator() sax.Locator { return locator{s} }

// SetInputSource resets the scanner and starts scanning src. Callers
// must not invoke this again mid-scan; use PushInputSource for nested
// streams instead.
func (s *Scanner) SetInputSource(src source.InputSource) error {
	s.elementCount = 0
	s.elementDepth = -1
	s.byteStream = nil
	s.stack = nil
	s.beginLine, s.beginColumn = 1, 1
	s.endLine, s.endColumn = s.beginLine, s.beginColumn

	s.ianaEncoding = s.cfg.DefaultEncoding

	expanded := source.ExpandedSystemID(src.SystemID, src.BaseSystemID)

	var rs runeSource
	switch {
	case src.Chars != nil:
		rs = bufio.NewReader(src.Chars)
	case src.Bytes != nil:
		r, err := s.openByteSource(src.Bytes, src.Encoding)
		if err != nil {
			return err
		}
		rs = r
	default:
		return errors.New("htmlscan: input source has neither a byte nor a character stream")
	}

	s.cur = newCurrentEntity(rs, src.PublicID, src.BaseSystemID, src.SystemID, expanded)
	s.state = stateStartDocument
	s.active = activeContent
	return nil
}

func (s *Scanner) openByteSource(raw io.Reader, forcedEncoding string) (runeSource, error) {
	s.byteStream = newPlaybackStream(raw)

	iana := forcedEncoding
	if iana == "" {
		detectedIANA, _, err := s.byteStream.detectEncoding()
		if err != nil {
			return nil, err
		}
		iana = detectedIANA
	}
	if iana == "" {
		iana = s.cfg.DefaultEncoding
		s.reportWarning("HTML1000", iana)
	}

	native, ok := s.encMap.Native(iana)
	if !ok {
		native = iana
		s.reportWarning("HTML1001", iana)
	}
	s.ianaEncoding = iana
	dec, ok := s.encMap.Decoder(native)
	if !ok {
		// Unresolvable encoding name: read the bytes as-is rather than
		// refuse to scan. Most undeclared/unknown labels seen in the
		// wild are ASCII-compatible anyway.
		return bufio.NewReader(s.byteStream), nil
	}
	return bufio.NewReader(transform.NewReader(s.byteStream, dec.NewDecoder())), nil
}

// PushInputSource suspends the current entity and starts scanning a
// new character stream transparently. When the pushed stream reaches
// EOF, the suspended entity resumes exactly where it left off.
func (s *Scanner) PushInputSource(src source.InputSource) error {
	if src.Chars == nil {
		return errors.New("htmlscan: pushed input source has no character stream")
	}
	s.stack = append(s.stack, s.cur)
	expanded := source.ExpandedSystemID(src.SystemID, src.BaseSystemID)
	s.cur = newCurrentEntity(bufio.NewReader(src.Chars), src.PublicID, src.BaseSystemID, src.SystemID, expanded)
	return nil
}

// ScanDocument advances the scan. When complete is true it runs until
// the document ends; when false it returns after one scanner
// transition, ready to be called again with identical semantics.
func (s *Scanner) ScanDocument(complete bool) (bool, error) {
	for {
		switch s.state {
		case stateStartDocument:
			s.emitStartDocument()
			s.state = stateContent
			if err := s.handlerErr; err != nil {
				s.handlerErr = nil
				return false, err
			}
			continue
		case stateEndDocument:
			s.emitEndDocument()
			err := s.handlerErr
			s.handlerErr = nil
			return false, err
		}

		var eof bool
		var err error
		if s.active == activeSpecial {
			_, eof, err = s.stepSpecial()
		} else {
			_, eof, err = s.stepContent()
		}
		if err != nil {
			return false, err
		}
		if err := s.handlerErr; err != nil {
			s.handlerErr = nil
			return false, err
		}
		if eof {
			if len(s.stack) == 0 {
				s.state = stateEndDocument
			} else {
				s.cur = s.stack[len(s.stack)-1]
				s.stack = s.stack[:len(s.stack)-1]
			}
			continue
		}
		if !complete {
			return true, nil
		}
	}
}

func (s *Scanner) emitStartDocument() {
	if s.handler == nil || s.elementCount < s.elementDepth {
		return
	}
	s.beginLine, s.beginColumn = s.cur.lineNumber, s.cur.columnNumber
	s.endLine, s.endColumn = s.beginLine, s.beginColumn
	s.callHandler(s.handler.StartDocument(s.Locator(), s.ianaEncoding, s.locationAugs()))
}

func (s *Scanner) emitEndDocument() {
	if s.handler == nil || s.elementCount < s.elementDepth {
		return
	}
	s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
	s.callHandler(s.handler.EndDocument(s.locationAugs()))
}

func (s *Scanner) reportWarning(code string, args ...interface{}) {
	s.report(reporter.Warning, code, args...)
}

func (s *Scanner) reportError(code string, args ...interface{}) {
	s.report(reporter.Error, code, args...)
}

func (s *Scanner) report(sev reporter.Severity, code string, args ...interface{}) {
	if !s.cfg.ReportErrors {
		return
	}
	line, col := 1, 1
	if s.cur != nil {
		line, col = s.cur.lineNumber, s.cur.columnNumber
	}
	s.rep.Report(reporter.Diagnostic{
		Code:     code,
		Severity: sev,
		Message:  reporter.Format(code, args...),
		Line:     line,
		Column:   col,
	})
}

// emitCharacters delivers text through the document handler, honoring
// the elementCount >= elementDepth suppression window used during a
// meta-charset replay.
func (s *Scanner) emitCharacters(text string) {
	if s.handler == nil || text == "" || s.elementCount < s.elementDepth {
		return
	}
	s.endLine, s.endColumn = s.cur.lineNumber, s.cur.columnNumber
	s.callHandler(s.handler.Characters([]rune(text), s.locationAugs()))
}

// GetValue returns the value of the first attribute named aname,
// case-insensitively, mirroring the original scanner's static
// getValue helper.
func GetValue(attrs sax.Attributes, aname string) (string, bool) {
	return attrs.Get(aname)
}
