// Package scanner is the streaming HTML tokenizer core: it turns a
// byte or character stream into document events without attempting
// to balance tags or build a tree. It is grounded on the classic
// NekoHTML scanner design (content/markup-bracket state machine,
// playback byte buffer, entity stack) reworked into idiomatic Go:
// tagged-variant dispatch instead of subclassing, explicit error
// returns instead of exceptions, and small leaf types (playbackStream,
// currentEntity) composed by the top-level Scanner.
package scanner

import (
	"strings"
	"unicode"
)

// NameCase controls the case transform applied to element and
// attribute names as they are scanned.
type NameCase int

const (
	NamesDefault NameCase = iota
	NamesUpper
	NamesLower
)

// ParseNameCase accepts any spelling a caller might pass through
// configuration plumbing and coerces it to a NameCase, defaulting to
// NamesDefault for anything unrecognized.
func ParseNameCase(v string) NameCase {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "upper", "uppercase":
		return NamesUpper
	case "lower", "lowercase":
		return NamesLower
	default:
		return NamesDefault
	}
}

func modifyName(name string, mode NameCase) string {
	switch mode {
	case NamesUpper:
		return strings.ToUpper(name)
	case NamesLower:
		return strings.ToLower(name)
	default:
		return name
	}
}

// Config holds the options that are fixed for the lifetime of a scan.
type Config struct {
	// Augmentations attaches a LocationItem to every emitted event.
	Augmentations bool
	// ReportErrors routes recoverable diagnostics to the Reporter.
	ReportErrors bool
	// NotifyCharRefs wraps numeric character references in
	// startGeneralEntity/endGeneralEntity events.
	NotifyCharRefs bool
	// NotifyXMLBuiltinRefs does the same for amp/lt/gt/quot/apos.
	NotifyXMLBuiltinRefs bool
	// NotifyHTMLBuiltinRefs does the same for every named entity.
	NotifyHTMLBuiltinRefs bool
	// NamesElems and NamesAttrs control element/attribute name case.
	NamesElems NameCase
	NamesAttrs NameCase
	// DefaultEncoding is the fallback IANA name used when a byte
	// stream's encoding cannot be auto-detected or isn't declared.
	DefaultEncoding string
}

// DefaultConfig returns the scanner's out-of-the-box defaults: every
// notify flag off, default-encoding windows-1252, names left unchanged.
func DefaultConfig() Config {
	return Config{
		DefaultEncoding: "windows-1252",
	}
}

func isNameChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '.' || c == ':'
}

// isSpace is the practical ASCII whitespace predicate used by both
// skipSpaces and the unquoted-attribute-value terminator, chosen over
// Go's Unicode-aware unicode.IsSpace for consistency with the
// original scanner's narrower legacy definition (space, tab, newline,
// carriage return, form feed).
func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
