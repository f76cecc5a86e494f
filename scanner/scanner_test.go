package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlscan/reporter"
	"github.com/heathj/htmlscan/sax"
	"github.com/heathj/htmlscan/scanner"
	"github.com/heathj/htmlscan/source"
)

// recordingReporter captures every diagnostic reported during a scan,
// so tests can assert a specific HTML10xx code fired.
type recordingReporter struct {
	diags []reporter.Diagnostic
}

func (r *recordingReporter) Report(d reporter.Diagnostic) { r.diags = append(r.diags, d) }

func (r *recordingReporter) codes() []string {
	out := make([]string, len(r.diags))
	for i, d := range r.diags {
		out[i] = d.Code
	}
	return out
}

func scanString(t *testing.T, cfg scanner.Config, html string) *sax.Recording {
	t.Helper()
	rec := &sax.Recording{}
	sc := scanner.New(cfg, scanner.WithHandler(rec))
	require.NoError(t, sc.SetInputSource(source.InputSource{Chars: strings.NewReader(html)}))
	_, err := sc.ScanDocument(true)
	require.NoError(t, err)
	return rec
}

func scanBytes(t *testing.T, cfg scanner.Config, raw []byte) *sax.Recording {
	t.Helper()
	rec := &sax.Recording{}
	sc := scanner.New(cfg, scanner.WithHandler(rec))
	require.NoError(t, sc.SetInputSource(source.InputSource{Bytes: strings.NewReader(string(raw))}))
	_, err := sc.ScanDocument(true)
	require.NoError(t, err)
	return rec
}

func kinds(rec *sax.Recording) []string {
	out := make([]string, len(rec.Events))
	for i, e := range rec.Events {
		out[i] = e.Kind
	}
	return out
}

func TestBasicElement(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), "<p>hi</p>")
	require.Equal(t, []string{"startDocument", "startElement", "characters", "endElement", "endDocument"}, kinds(rec))
	require.Equal(t, "p", rec.Events[1].Name)
	require.Equal(t, "hi", rec.Events[2].Text)
	require.Equal(t, "p", rec.Events[3].Name)
}

func TestNameCaseTransform(t *testing.T) {
	cfg := scanner.DefaultConfig()
	cfg.NamesElems = scanner.NamesUpper
	cfg.NamesAttrs = scanner.NamesLower
	rec := scanString(t, cfg, `<Div CLASS="x">y</Div>`)
	require.Equal(t, "DIV", rec.Events[1].Name)
	require.Len(t, rec.Events[1].Attrs, 1)
	require.Equal(t, "class", rec.Events[1].Attrs[0].Name.Local)
	require.Equal(t, "DIV", rec.Events[3].Name)
}

func TestCommentDashRule(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), "<!-- a -- b --- c -->")
	require.Equal(t, []string{"startDocument", "comment", "endDocument"}, kinds(rec))
	require.Equal(t, " a -- b --- c ", rec.Events[1].Text)
}

func TestSpecialElementRawText(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), "<script>if(a<b){}</script>")
	require.Equal(t, []string{"startDocument", "startElement", "characters", "endElement", "endDocument"}, kinds(rec))
	require.Equal(t, "if(a<b){}", rec.Events[2].Text)
	require.Equal(t, "script", rec.Events[3].Name)
}

func TestUTF8BOMIsConsumed(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<p>x</p>")...)
	rec := scanBytes(t, scanner.DefaultConfig(), raw)
	require.Equal(t, "UTF-8", rec.Encoding)
	require.Equal(t, "p", rec.Events[1].Name)
	require.Equal(t, "x", rec.Events[2].Text)
}

func TestMetaCharsetRedecode(t *testing.T) {
	// The document is actually UTF-8 (café encoded as caf + C3 A9), but
	// nothing declares that up front, so the scanner starts out assuming
	// its configured default (windows-1252) until the <meta> tag corrects it.
	html := []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"></head><body>caf`)
	html = append(html, 0xC3, 0xA9)
	html = append(html, []byte(`</body></html>`)...)

	rec := scanBytes(t, scanner.DefaultConfig(), html)
	// startDocument fires before the <meta> tag is seen, so its
	// encoding argument reflects the initial default, not the switch.
	require.Equal(t, "windows-1252", rec.Encoding)

	var names []string
	for _, e := range rec.Events {
		if e.Kind == "startElement" {
			names = append(names, e.Name)
		}
	}
	require.Equal(t, []string{"html", "head", "meta", "body"}, names)

	var text string
	for _, e := range rec.Events {
		if e.Kind == "characters" {
			text += e.Text
		}
	}
	require.Equal(t, "café", text)
}

func TestUnquotedAttributeValue(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), `<a href=/x?y=1&amp;z=2>link</a>`)
	require.Equal(t, "a", rec.Events[1].Name)
	require.Len(t, rec.Events[1].Attrs, 1)
	require.Equal(t, "href", rec.Events[1].Attrs[0].Name.Local)
	// Entity resolution only happens inside quoted attribute values;
	// an unquoted value is taken as literal text up to the terminator.
	require.Equal(t, "/x?y=1&amp;z=2", rec.Events[1].Attrs[0].Value)
}

func TestUnknownNamedEntityFallsBackToLiteral(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), "&nosuch; text")
	require.Equal(t, []string{"startDocument", "characters", "characters", "endDocument"}, kinds(rec))
	require.Equal(t, "&nosuch;", rec.Events[1].Text)
	require.Equal(t, " text", rec.Events[2].Text)
}

func TestMalformedEndTagReportsButRecovers(t *testing.T) {
	cfg := scanner.DefaultConfig()
	cfg.ReportErrors = true
	rec := &sax.Recording{}
	rep := &recordingReporter{}
	sc := scanner.New(cfg, scanner.WithHandler(rec), scanner.WithReporter(rep))
	require.NoError(t, sc.SetInputSource(source.InputSource{Chars: strings.NewReader("<p>a</></p>")}))
	_, err := sc.ScanDocument(true)
	require.NoError(t, err)
	require.Equal(t, "p", rec.Events[1].Name)
	require.Equal(t, "a", rec.Events[2].Text)
	require.Equal(t, "p", rec.Events[3].Name)
	require.Contains(t, rep.codes(), "HTML1012")
}

func TestCharacterReferenceNumeric(t *testing.T) {
	rec := scanString(t, scanner.DefaultConfig(), "&#65;&#x42;")
	require.Equal(t, "AB", rec.Events[1].Text+rec.Events[2].Text)
}

func TestUnterminatedSpecialElementReportsEOF(t *testing.T) {
	cfg := scanner.DefaultConfig()
	cfg.ReportErrors = true
	rec := &sax.Recording{}
	rep := &recordingReporter{}
	sc := scanner.New(cfg, scanner.WithHandler(rec), scanner.WithReporter(rep))
	require.NoError(t, sc.SetInputSource(source.InputSource{Chars: strings.NewReader("<script>if(a<b){}")}))
	_, err := sc.ScanDocument(true)
	require.NoError(t, err)

	require.Equal(t, []string{"startDocument", "startElement", "characters", "endDocument"}, kinds(rec))
	require.Equal(t, "if(a<b){}", rec.Events[2].Text)
	require.Contains(t, rep.codes(), "HTML1007")
}

func TestPushInputSourceResumesParentEntity(t *testing.T) {
	rec := &sax.Recording{}
	sc := scanner.New(scanner.DefaultConfig(), scanner.WithHandler(rec))
	require.NoError(t, sc.SetInputSource(source.InputSource{Chars: strings.NewReader("<p>before &ref; after</p>")}))

	// Drive the scan up to (but not including) the entity reference,
	// then push a nested character stream the way a general-entity
	// expansion would, and let the parent entity resume once it drains.
	for {
		more, err := sc.ScanDocument(false)
		require.NoError(t, err)
		if !more {
			break
		}
		if len(rec.Events) > 0 && rec.Events[len(rec.Events)-1].Kind == "characters" {
			break
		}
	}
	require.NoError(t, sc.PushInputSource(source.InputSource{Chars: strings.NewReader("PUSHED")}))
	_, err := sc.ScanDocument(true)
	require.NoError(t, err)

	var text string
	for _, e := range rec.Events {
		if e.Kind == "characters" {
			text += e.Text
		}
	}
	require.Contains(t, text, "PUSHED")
	require.Equal(t, "p", rec.Events[len(rec.Events)-2].Name)
}

func TestLineColumnAcrossNewlineStyles(t *testing.T) {
	cfg := scanner.DefaultConfig()
	cfg.Augmentations = true
	rec := scanString(t, cfg, "a\nb\rc\r\nd")

	var chars []sax.Event
	var text string
	for _, e := range rec.Events {
		if e.Kind == "characters" {
			chars = append(chars, e)
			text += e.Text
		}
	}
	require.NotEmpty(t, chars)
	require.Equal(t, "a\nb\nc\nd", text)
	// Each of the three newline runs (\n, \r, \r\n) advances the line
	// count by exactly one, never two, matching the single-count-per-run
	// behavior chosen over the Java original's double-counting bug.
	require.Equal(t, 4, chars[len(chars)-1].Augs.EndLine)
}

func TestAugmentationsCarryLocation(t *testing.T) {
	cfg := scanner.DefaultConfig()
	cfg.Augmentations = true
	rec := scanString(t, cfg, "<p>hi</p>")
	require.NotNil(t, rec.Events[1].Augs)
	require.Equal(t, 1, rec.Events[1].Augs.BeginLine)
}
