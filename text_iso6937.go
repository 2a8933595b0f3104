package astipsi

import "strings"

// ISO 8859-9 is ISO 8859-1 where six Icelandic letters are replaced with Turkish ones. ISO 8859-1 bytes match
// Unicode code points.
var iso8859_9Exceptions = map[byte]rune{
	0xd0: 'Ğ',
	0xdd: 'İ',
	0xde: 'Ş',
	0xf0: 'ğ',
	0xfd: 'ı',
	0xfe: 'ş',
}

func decodeISO8859_9(bs []byte) string {
	var b strings.Builder
	b.Grow(len(bs))
	for _, c := range bs {
		if r, ok := iso8859_9Exceptions[c]; ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Spacing characters of the ISO/IEC 6937 upper half. Missing bytes have no mapping.
var iso6937Symbols = map[byte]rune{
	0xa0: '\u00a0',
	0xa1: '¡',
	0xa2: '¢',
	0xa3: '£',
	0xa4: '€',
	0xa5: '¥',
	0xa7: '§',
	0xa8: '¤',
	0xa9: '‘',
	0xaa: '“',
	0xab: '«',
	0xac: '←',
	0xad: '↑',
	0xae: '→',
	0xaf: '↓',
	0xb0: '°',
	0xb1: '±',
	0xb2: '²',
	0xb3: '³',
	0xb4: '×',
	0xb5: 'µ',
	0xb6: '¶',
	0xb7: '·',
	0xb8: '÷',
	0xb9: '’',
	0xba: '”',
	0xbb: '»',
	0xbc: '¼',
	0xbd: '½',
	0xbe: '¾',
	0xbf: '¿',
	0xd0: '―',
	0xd1: '¹',
	0xd2: '®',
	0xd3: '©',
	0xd4: '™',
	0xd5: '♪',
	0xd6: '¬',
	0xd7: '¦',
	0xdc: '⅛',
	0xdd: '⅜',
	0xde: '⅝',
	0xdf: '⅞',
	0xe0: 'Ω',
	0xe1: 'Æ',
	0xe2: 'Đ',
	0xe3: 'ª',
	0xe4: 'Ħ',
	0xe6: 'Ĳ',
	0xe7: 'Ŀ',
	0xe8: 'Ł',
	0xe9: 'Ø',
	0xea: 'Œ',
	0xeb: 'º',
	0xec: 'Þ',
	0xed: 'Ŧ',
	0xee: 'Ŋ',
	0xef: 'ŉ',
	0xf0: 'ĸ',
	0xf1: 'æ',
	0xf2: 'đ',
	0xf3: 'ð',
	0xf4: 'ħ',
	0xf5: 'ı',
	0xf6: 'ĳ',
	0xf7: 'ŀ',
	0xf8: 'ł',
	0xf9: 'ø',
	0xfa: 'œ',
	0xfb: 'ß',
	0xfc: 'þ',
	0xfd: 'ŧ',
	0xfe: 'ŋ',
	0xff: '\u00ad',
}

// Precomposed letters indexed by non-spacing accent byte then base letter
var iso6937Accents = map[byte]map[byte]rune{
	// Grave
	0xc1: {
		'A': 'À', 'E': 'È', 'I': 'Ì', 'O': 'Ò', 'U': 'Ù',
		'a': 'à', 'e': 'è', 'i': 'ì', 'o': 'ò', 'u': 'ù',
	},
	// Acute
	0xc2: {
		'A': 'Á', 'C': 'Ć', 'E': 'É', 'I': 'Í', 'L': 'Ĺ', 'N': 'Ń', 'O': 'Ó', 'R': 'Ŕ', 'S': 'Ś', 'U': 'Ú', 'Y': 'Ý', 'Z': 'Ź',
		'a': 'á', 'c': 'ć', 'e': 'é', 'g': 'ģ', 'i': 'í', 'l': 'ĺ', 'n': 'ń', 'o': 'ó', 'r': 'ŕ', 's': 'ś', 'u': 'ú', 'y': 'ý', 'z': 'ź',
	},
	// Circumflex
	0xc3: {
		'A': 'Â', 'C': 'Ĉ', 'E': 'Ê', 'G': 'Ĝ', 'H': 'Ĥ', 'I': 'Î', 'J': 'Ĵ', 'O': 'Ô', 'S': 'Ŝ', 'U': 'Û', 'W': 'Ŵ', 'Y': 'Ŷ',
		'a': 'â', 'c': 'ĉ', 'e': 'ê', 'g': 'ĝ', 'h': 'ĥ', 'i': 'î', 'j': 'ĵ', 'o': 'ô', 's': 'ŝ', 'u': 'û', 'w': 'ŵ', 'y': 'ŷ',
	},
	// Tilde
	0xc4: {
		'A': 'Ã', 'I': 'Ĩ', 'N': 'Ñ', 'O': 'Õ', 'U': 'Ũ',
		'a': 'ã', 'i': 'ĩ', 'n': 'ñ', 'o': 'õ', 'u': 'ũ',
	},
	// Macron
	0xc5: {
		'A': 'Ā', 'E': 'Ē', 'I': 'Ī', 'O': 'Ō', 'U': 'Ū',
		'a': 'ā', 'e': 'ē', 'i': 'ī', 'o': 'ō', 'u': 'ū',
	},
	// Breve
	0xc6: {
		'A': 'Ă', 'G': 'Ğ', 'U': 'Ŭ',
		'a': 'ă', 'g': 'ğ', 'u': 'ŭ',
	},
	// Dot
	0xc7: {
		'C': 'Ċ', 'E': 'Ė', 'G': 'Ġ', 'I': 'İ', 'Z': 'Ż',
		'c': 'ċ', 'e': 'ė', 'g': 'ġ', 'z': 'ż',
	},
	// Umlaut
	0xc8: {
		'A': 'Ä', 'E': 'Ë', 'I': 'Ï', 'O': 'Ö', 'U': 'Ü', 'Y': 'Ÿ',
		'a': 'ä', 'e': 'ë', 'i': 'ï', 'o': 'ö', 'u': 'ü', 'y': 'ÿ',
	},
	// Ring
	0xca: {
		'A': 'Å', 'U': 'Ů',
		'a': 'å', 'u': 'ů',
	},
	// Cedilla
	0xcb: {
		'C': 'Ç', 'G': 'Ģ', 'K': 'Ķ', 'L': 'Ļ', 'N': 'Ņ', 'R': 'Ŗ', 'S': 'Ş', 'T': 'Ţ',
		'c': 'ç', 'k': 'ķ', 'l': 'ļ', 'n': 'ņ', 'r': 'ŗ', 's': 'ş', 't': 'ţ',
	},
	// Double acute
	0xcd: {
		'O': 'Ő', 'U': 'Ű',
		'o': 'ő', 'u': 'ű',
	},
	// Ogonek
	0xce: {
		'A': 'Ą', 'E': 'Ę', 'I': 'Į', 'U': 'Ų',
		'a': 'ą', 'e': 'ę', 'i': 'į', 'u': 'ų',
	},
	// Caron
	0xcf: {
		'C': 'Č', 'D': 'Ď', 'E': 'Ě', 'L': 'Ľ', 'N': 'Ň', 'R': 'Ř', 'S': 'Š', 'T': 'Ť', 'Z': 'Ž',
		'c': 'č', 'd': 'ď', 'e': 'ě', 'l': 'ľ', 'n': 'ň', 'r': 'ř', 's': 'š', 't': 'ť', 'z': 'ž',
	},
}

// decodeISO6937 decodes bs as ISO/IEC 6937, the default DVB character table (Figure A.1 of ETSI EN 300 468)
func decodeISO6937(bs []byte) string {
	var b strings.Builder
	b.Grow(len(bs))
	for idx := 0; idx < len(bs); idx++ {
		c := bs[idx]
		switch {
		case c >= 0x20 && c <= 0x7f:
			b.WriteByte(c)
		case c >= 0xc0 && c <= 0xcf:
			// The accent applies to the next byte, which is consumed even when the pair has no mapping
			if idx+1 >= len(bs) {
				continue
			}
			idx++
			if r, ok := iso6937Accents[c][bs[idx]]; ok {
				b.WriteRune(r)
			}
		default:
			if r, ok := iso6937Symbols[c]; ok {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
