package astipsi

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Character tables selected by the first byte of a DVB string
// Chapter: Annex A | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
var textSingleByteSelectors = map[byte]textDecoder{
	0x01: withEncoding(charmap.ISO8859_5),
	0x02: withEncoding(charmap.ISO8859_6),
	0x03: withEncoding(charmap.ISO8859_7),
	0x04: withEncoding(charmap.ISO8859_8),
	0x05: decodeISO8859_9,
	0x06: withEncoding(charmap.ISO8859_10),
	0x09: withEncoding(charmap.ISO8859_13),
	0x0a: withEncoding(charmap.ISO8859_14),
	0x0b: withEncoding(charmap.ISO8859_15),
	// Big5 subset of ISO/IEC 10646 is approximated as UCS-2
	0x11: withEncoding(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)),
	// KS X 1001
	0x12: withEncoding(korean.EUCKR),
	// GB-2312 is a subset of GBK
	0x13: withEncoding(simplifiedchinese.GBK),
	0x14: withEncoding(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)),
	0x15: withEncoding(unicode.UTF8),
}

// Tables selected by the third byte of a 0x10 0x00 NN prefix
var textISO8859Tables = map[byte]textDecoder{
	0x01: withEncoding(charmap.ISO8859_1),
	0x02: withEncoding(charmap.ISO8859_2),
	0x03: withEncoding(charmap.ISO8859_3),
	0x04: withEncoding(charmap.ISO8859_4),
	0x05: withEncoding(charmap.ISO8859_5),
	0x06: withEncoding(charmap.ISO8859_6),
	0x07: withEncoding(charmap.ISO8859_7),
	0x08: withEncoding(charmap.ISO8859_8),
	0x09: decodeISO8859_9,
	0x0a: withEncoding(charmap.ISO8859_10),
	// ISO 8859-11 is TIS-620 plus NBSP, which Windows-874 maps the same way
	0x0b: withEncoding(charmap.Windows874),
	0x0d: withEncoding(charmap.ISO8859_13),
	0x0e: withEncoding(charmap.ISO8859_14),
	0x0f: withEncoding(charmap.ISO8859_15),
}

// DecodeText decodes a DVB string. The first bytes may select the character table, ISO/IEC 6937 is used
// otherwise.
// Decoding is best effort: bytes that can't be mapped are dropped and an unusable prefix yields an empty string.
func DecodeText(bs []byte) string {
	// Empty
	if len(bs) == 0 {
		return ""
	}

	// Default table
	if bs[0] >= 0x20 {
		return decodeISO6937(bs)
	}

	// Three bytes prefix
	if bs[0] == 0x10 {
		if len(bs) < 3 || bs[1] != 0x0 {
			return ""
		}
		d, ok := textISO8859Tables[bs[2]]
		if !ok {
			return ""
		}
		return d(bs[3:])
	}

	// One byte prefix
	d, ok := textSingleByteSelectors[bs[0]]
	if !ok {
		return ""
	}
	return d(bs[1:])
}

type textDecoder func(bs []byte) string

var invalidRunes = runes.Predicate(func(r rune) bool { return r == utf8.RuneError })

func withEncoding(e encoding.Encoding) textDecoder {
	return func(bs []byte) string {
		s, _, err := transform.String(transform.Chain(e.NewDecoder(), runes.Remove(invalidRunes)), string(bs))
		if err != nil {
			logger.Debugf("astipsi: decoding text failed: %s", err)
			return ""
		}
		return s
	}
}
