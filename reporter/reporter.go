// Package reporter is the scanner's diagnostic sink for recoverable
// well-formedness violations, as opposed to fatal errors returned
// from Go functions. It plays the role of the original scanner's
// XMLErrorReporter collaborator, narrowed to the fixed HTML10xx
// catalog the scanner itself raises.
package reporter

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Severity classifies a diagnostic the way the original reporter's
// ERROR/WARNING domain constants do.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single reported condition, identified by one of the
// stable HTML10xx codes.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// Reporter receives diagnostics as the scanner encounters them. It
// never aborts a scan; a Reporter that wants to stop the scan early
// must do so by other means (its caller inspecting Diagnostic.Severity
// after the fact, for instance).
type Reporter interface {
	Report(d Diagnostic)
}

// Logrus is the default Reporter, logging each diagnostic as a
// structured entry keyed by code, line and column. Diagnostics are
// off the hot path already (the scanner only calls Report when
// Config.ReportErrors is set), so no buffering is attempted here.
type Logrus struct {
	Log *logrus.Logger
}

// NewLogrus returns a Reporter backed by a logrus.Logger. Passing nil
// uses logrus.StandardLogger().
func NewLogrus(log *logrus.Logger) *Logrus {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Logrus{Log: log}
}

func (r *Logrus) Report(d Diagnostic) {
	entry := r.Log.WithFields(logrus.Fields{
		"code":   d.Code,
		"line":   d.Line,
		"column": d.Column,
	})
	if d.Severity == Error {
		entry.Error(d.Message)
		return
	}
	entry.Warn(d.Message)
}

// Discard drops every diagnostic. Useful for callers that only want
// well-formed-enough output and don't care why the input was messy.
type Discard struct{}

func (Discard) Report(Diagnostic) {}

// Catalog maps a stable code to its message template, filled in with
// fmt.Sprintf-style args by the scanner at the call site.
var Catalog = map[string]string{
	"HTML1000": "no encoding declared; using default %q",
	"HTML1001": "unknown IANA encoding %q; using name as-is",
	"HTML1002": "\"<!\" not followed by \"--\"",
	"HTML1003": "unexpected end of input after \"<\"",
	"HTML1004": "malformed entity reference %q (missing \";\")",
	"HTML1005": "malformed numeric character reference %q",
	"HTML1006": "unknown named entity %q",
	"HTML1007": "unexpected end of input in markup, attribute, or comment",
	"HTML1008": "processing instructions are not expanded",
	"HTML1009": "missing element name after \"<\"",
	"HTML1010": "unsupported encoding %q declared in <meta>",
	"HTML1011": "missing attribute name",
	"HTML1012": "missing element name after \"</\"",
}

// Format renders a diagnostic message from Catalog, falling back to
// the raw code if it isn't registered.
func Format(code string, args ...interface{}) string {
	tmpl, ok := Catalog[code]
	if !ok {
		return code
	}
	return fmt.Sprintf(tmpl, args...)
}
