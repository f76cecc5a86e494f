// Package entities is the named-entity table the scanner consults
// when resolving a "&name;" reference that isn't numeric. It plays
// the role of the original scanner's HTMLEntities lookup.
package entities

// Table maps an entity name (without the leading & or trailing ;) to
// its codepoint. Get returns ok=false for unknown names.
type Table interface {
	Get(name string) (rune, bool)
}

// xmlPredefined are the five entities every XML processor knows,
// regardless of any HTML table — mirrors the original scanner's
// builtinXmlRef list, used to decide whether NotifyXMLBuiltinRefs
// applies to a given name.
var xmlPredefined = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

// IsXMLBuiltin reports whether name is one of the five predefined XML
// general entities.
func IsXMLBuiltin(name string) bool {
	_, ok := xmlPredefined[name]
	return ok
}

// Default is a built-in table covering the predefined XML entities
// plus the common named HTML entities that appear in ordinary markup.
// It is not the full HTML5 named-entity list (~2200 names); it is the
// practical subset a permissive tag-soup scanner needs for character
// reference resolution, not full named-entity conformance.
type Default struct{}

// NewDefault returns the built-in entity table.
func NewDefault() Default { return Default{} }

func (Default) Get(name string) (rune, bool) {
	if r, ok := xmlPredefined[name]; ok {
		return r, true
	}
	r, ok := htmlNamed[name]
	return r, ok
}

var htmlNamed = map[string]rune{
	"nbsp":     ' ',
	"iexcl":    '¡',
	"cent":     '¢',
	"pound":    '£',
	"curren":   '¤',
	"yen":      '¥',
	"sect":     '§',
	"copy":     '©',
	"ordf":     'ª',
	"laquo":    '«',
	"not":      '¬',
	"reg":      '®',
	"deg":      '°',
	"plusmn":   '±',
	"sup2":     '²',
	"sup3":     '³',
	"micro":    'µ',
	"para":     '¶',
	"middot":   '·',
	"sup1":     '¹',
	"ordm":     'º',
	"raquo":    '»',
	"frac14":   '¼',
	"frac12":   '½',
	"frac34":   '¾',
	"iquest":   '¿',
	"times":    '×',
	"divide":   '÷',
	"Agrave":   'À',
	"Aacute":   'Á',
	"Acirc":    'Â',
	"Atilde":   'Ã',
	"Auml":     'Ä',
	"Aring":    'Å',
	"AElig":    'Æ',
	"Ccedil":   'Ç',
	"Egrave":   'È',
	"Eacute":   'É',
	"Ecirc":    'Ê',
	"Euml":     'Ë',
	"Igrave":   'Ì',
	"Iacute":   'Í',
	"Icirc":    'Î',
	"Iuml":     'Ï',
	"ETH":      'Ð',
	"Ntilde":   'Ñ',
	"Ograve":   'Ò',
	"Oacute":   'Ó',
	"Ocirc":    'Ô',
	"Otilde":   'Õ',
	"Ouml":     'Ö',
	"Oslash":   'Ø',
	"Ugrave":   'Ù',
	"Uacute":   'Ú',
	"Ucirc":    'Û',
	"Uuml":     'Ü',
	"Yacute":   'Ý',
	"szlig":    'ß',
	"agrave":   'à',
	"aacute":   'á',
	"acirc":    'â',
	"atilde":   'ã',
	"auml":     'ä',
	"aring":    'å',
	"aelig":    'æ',
	"ccedil":   'ç',
	"egrave":   'è',
	"eacute":   'é',
	"ecirc":    'ê',
	"euml":     'ë',
	"igrave":   'ì',
	"iacute":   'í',
	"icirc":    'î',
	"iuml":     'ï',
	"eth":      'ð',
	"ntilde":   'ñ',
	"ograve":   'ò',
	"oacute":   'ó',
	"ocirc":    'ô',
	"otilde":   'õ',
	"ouml":     'ö',
	"oslash":   'ø',
	"ugrave":   'ù',
	"uacute":   'ú',
	"ucirc":    'û',
	"uuml":     'ü',
	"yacute":   'ý',
	"thorn":    'þ',
	"yuml":     'ÿ',
	"mdash":    '—',
	"ndash":    '–',
	"lsquo":    '‘',
	"rsquo":    '’',
	"ldquo":    '“',
	"rdquo":    '”',
	"bull":     '•',
	"hellip":   '…',
	"trade":    '™',
	"euro":     '€',
	"larr":     '←',
	"uarr":     '↑',
	"rarr":     '→',
	"darr":     '↓',
	"harr":     '↔',
	"spades":   '♠',
	"clubs":    '♣',
	"hearts":   '♥',
	"diams":    '♦',
	"alpha":    'α',
	"beta":     'β',
	"gamma":    'γ',
	"delta":    'δ',
	"pi":       'π',
	"sigma":    'σ',
	"omega":    'ω',
}
