// Package htmlenc wraps golang.org/x/text/encoding the way
// lestrrat-go/helium's internal encoding package does, hiding the
// per-charset sub-package imports behind a single name-keyed lookup.
// It plays the role of the original scanner's IANA-to-native encoding
// map (org.apache.xerces.util.EncodingMap) and supplies the decoder
// used to re-wrap the byte stream after a <meta charset> switch.
package htmlenc

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Map resolves an IANA charset name to a native decoder. It plays the
// role of the original EncodingMap.getIANA2JavaMapping lookup.
type Map interface {
	// Native returns the canonical native name for an IANA name, and
	// whether the encoding is known at all.
	Native(iana string) (native string, ok bool)
	// Decoder returns a fresh x/text encoding for a native name
	// previously returned by Native.
	Decoder(native string) (enc.Encoding, bool)
}

// Default is the built-in encoding map. It normalizes case and a
// handful of common aliases the way HTML documents actually spell
// charset names, then resolves to an x/text encoding.
type Default struct{}

// NewDefault returns the built-in IANA-to-native encoding map.
func NewDefault() Default { return Default{} }

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "utf8":
		return "utf-8"
	case "us-ascii", "ascii":
		return "windows-1252"
	case "iso-8859-1", "latin1":
		return "windows-1252"
	}
	return name
}

func (Default) Native(iana string) (string, bool) {
	name := normalize(iana)
	if _, ok := load(name); !ok {
		return "", false
	}
	return name, true
}

func (Default) Decoder(native string) (enc.Encoding, bool) {
	return load(native)
}

// load is the actual name -> encoding.Encoding table, shaped after
// lestrrat-go-helium/encoding.Load.
func load(name string) (enc.Encoding, bool) {
	switch name {
	case "utf-8":
		return unicode.UTF8, true
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "windows-1250":
		return charmap.Windows1250, true
	case "windows-1251":
		return charmap.Windows1251, true
	case "windows-1252":
		return charmap.Windows1252, true
	case "windows-1253":
		return charmap.Windows1253, true
	case "windows-1254":
		return charmap.Windows1254, true
	case "windows-1255":
		return charmap.Windows1255, true
	case "windows-1256":
		return charmap.Windows1256, true
	case "windows-1257":
		return charmap.Windows1257, true
	case "windows-1258":
		return charmap.Windows1258, true
	case "iso-8859-2":
		return charmap.ISO8859_2, true
	case "iso-8859-3":
		return charmap.ISO8859_3, true
	case "iso-8859-4":
		return charmap.ISO8859_4, true
	case "iso-8859-5":
		return charmap.ISO8859_5, true
	case "iso-8859-6":
		return charmap.ISO8859_6, true
	case "iso-8859-7":
		return charmap.ISO8859_7, true
	case "iso-8859-8":
		return charmap.ISO8859_8, true
	case "iso-8859-10":
		return charmap.ISO8859_10, true
	case "iso-8859-13":
		return charmap.ISO8859_13, true
	case "iso-8859-14":
		return charmap.ISO8859_14, true
	case "iso-8859-15":
		return charmap.ISO8859_15, true
	case "iso-8859-16":
		return charmap.ISO8859_16, true
	case "koi8-r":
		return charmap.KOI8R, true
	case "koi8-u":
		return charmap.KOI8U, true
	case "macintosh":
		return charmap.Macintosh, true
	case "shift-jis", "shift_jis", "sjis", "cp932":
		return japanese.ShiftJIS, true
	case "euc-jp":
		return japanese.EUCJP, true
	case "iso-2022-jp":
		return japanese.ISO2022JP, true
	case "euc-kr":
		return korean.EUCKR, true
	case "big5":
		return traditionalchinese.Big5, true
	case "gbk":
		return simplifiedchinese.GBK, true
	case "gb2312", "hz-gb2312":
		return simplifiedchinese.HZGB2312, true
	case "gb18030":
		return simplifiedchinese.GB18030, true
	}
	return nil, false
}
