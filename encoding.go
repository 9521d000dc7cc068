// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Text-string decoding: PDFDocEncoding, WinAnsiEncoding, MacRomanEncoding,
// UTF-16BE text strings, and the ASCII85 cleanup reader used by the
// filter pipeline.

package xtract

import (
	"io"
	"math"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// pdfDocEncoding maps bytes 0x00-0xff to the Unicode code points of
// PDFDocEncoding (ISO 32000-1 Annex D.3), the default encoding for
// text strings outside a content stream (document info, outlines,
// form fields). Entries left at the zero rune are undefined code
// points; 0xad is explicitly undefined in PDFDocEncoding.
var pdfDocEncoding = [256]rune{
	0x01: '\u0001', 0x02: '\u0002', 0x03: '\u0003', 0x04: '\u0004',
	0x05: '\u0005', 0x06: '\u0006', 0x07: '\u0007', 0x08: '\u0008',
	0x09: '\u0009', 0x0a: '\u000a', 0x0b: '\u000b', 0x0c: '\u000c',
	0x0d: '\u000d', 0x0e: '\u000e', 0x0f: '\u000f', 0x10: '\u0010',
	0x11: '\u0011', 0x12: '\u0012', 0x13: '\u0013', 0x14: '\u0014',
	0x15: '\u0015', 0x16: '\u0017', 0x17: '\u0017', 0x18: '\u02d8',
	0x19: '\u02c7', 0x1a: '\u02c6', 0x1b: '\u02d9', 0x1c: '\u02dd',
	0x1d: '\u02db', 0x1e: '\u02da', 0x1f: '\u02dc',
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#', 0x24: '$', 0x25: '%',
	0x26: '&', 0x27: '\'', 0x28: '(', 0x29: ')', 0x2a: '*', 0x2b: '+',
	0x2c: ',', 0x2d: '-', 0x2e: '.', 0x2f: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3', 0x34: '4', 0x35: '5',
	0x36: '6', 0x37: '7', 0x38: '8', 0x39: '9', 0x3a: ':', 0x3b: ';',
	0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C', 0x44: 'D', 0x45: 'E',
	0x46: 'F', 0x47: 'G', 0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K',
	0x4c: 'L', 0x4d: 'M', 0x4e: 'N', 0x4f: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S', 0x54: 'T', 0x55: 'U',
	0x56: 'V', 0x57: 'W', 0x58: 'X', 0x59: 'Y', 0x5a: 'Z', 0x5b: '[',
	0x5c: '\\', 0x5d: ']', 0x5e: '^', 0x5f: '_',
	0x60: '`', 0x61: 'a', 0x62: 'b', 0x63: 'c', 0x64: 'd', 0x65: 'e',
	0x66: 'f', 0x67: 'g', 0x68: 'h', 0x69: 'i', 0x6a: 'j', 0x6b: 'k',
	0x6c: 'l', 0x6d: 'm', 0x6e: 'n', 0x6f: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's', 0x74: 't', 0x75: 'u',
	0x76: 'v', 0x77: 'w', 0x78: 'x', 0x79: 'y', 0x7a: 'z', 0x7b: '{',
	0x7c: '|', 0x7d: '}', 0x7e: '~',
	0x80: '•', 0x81: '†', 0x82: '‡', 0x83: '…',
	0x84: '—', 0x85: '–', 0x86: 'ƒ', 0x87: '⁄',
	0x88: '‹', 0x89: '›', 0x8a: '−', 0x8b: '‰',
	0x8c: '„', 0x8d: '“', 0x8e: '”', 0x8f: '‘',
	0x90: '’', 0x91: '‚', 0x92: '™', 0x93: 'ﬁ',
	0x94: 'ﬂ', 0x95: 'Ł', 0x96: 'Œ', 0x97: 'Š',
	0x98: 'Ÿ', 0x99: 'Ž', 0x9a: 'ı', 0x9b: 'ł',
	0x9c: 'œ', 0x9d: 'š', 0x9e: 'ž',
	0xa0: '€', 0xa1: '¡', 0xa2: '¢', 0xa3: '£',
	0xa4: '¤', 0xa5: '¥', 0xa6: '¦', 0xa7: '§',
	0xa8: '¨', 0xa9: '©', 0xaa: 'ª', 0xab: '«',
	0xac: '¬', 0xad: unicode.ReplacementChar, 0xae: '®', 0xaf: '¯',
	0xb0: '°', 0xb1: '±', 0xb2: '²', 0xb3: '³',
	0xb4: '´', 0xb5: 'µ', 0xb6: '¶', 0xb7: '·',
	0xb8: '¸', 0xb9: '¹', 0xba: 'º', 0xbb: '»',
	0xbc: '¼', 0xbd: '½', 0xbe: '¾', 0xbf: '¿',
	0xc0: 'À', 0xc1: 'Á', 0xc2: 'Â', 0xc3: 'Ã',
	0xc4: 'Ä', 0xc5: 'Å', 0xc6: 'Æ', 0xc7: 'Ç',
	0xc8: 'È', 0xc9: 'É', 0xca: 'Ê', 0xcb: 'Ë',
	0xcc: 'Ì', 0xcd: 'Í', 0xce: 'Î', 0xcf: 'Ï',
	0xd0: 'Ð', 0xd1: 'Ñ', 0xd2: 'Ò', 0xd3: 'Ó',
	0xd4: 'Ô', 0xd5: 'Õ', 0xd6: 'Ö', 0xd7: '×',
	0xd8: 'Ø', 0xd9: 'Ù', 0xda: 'Ú', 0xdb: 'Û',
	0xdc: 'Ü', 0xdd: 'Ý', 0xde: 'Þ', 0xdf: 'ß',
	0xe0: 'à', 0xe1: 'á', 0xe2: 'â', 0xe3: 'ã',
	0xe4: 'ä', 0xe5: 'å', 0xe6: 'æ', 0xe7: 'ç',
	0xe8: 'è', 0xe9: 'é', 0xea: 'ê', 0xeb: 'ë',
	0xec: 'ì', 0xed: 'í', 0xee: 'î', 0xef: 'ï',
	0xf0: 'ð', 0xf1: 'ñ', 0xf2: 'ò', 0xf3: 'ó',
	0xf4: 'ô', 0xf5: 'õ', 0xf6: 'ö', 0xf7: '÷',
	0xf8: 'ø', 0xf9: 'ù', 0xfa: 'ú', 0xfb: 'û',
	0xfc: 'ü', 0xfd: 'ý', 0xfe: 'þ', 0xff: 'ÿ',
}

// winAnsiEncoding maps bytes to the Unicode code points of
// WinAnsiEncoding (essentially Windows-1252), used by simple fonts
// whose /Encoding names it directly.
var winAnsiEncoding = [256]rune{
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#', 0x24: '$', 0x25: '%',
	0x26: '&', 0x27: '\'', 0x28: '(', 0x29: ')', 0x2a: '*', 0x2b: '+',
	0x2c: ',', 0x2d: '-', 0x2e: '.', 0x2f: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3', 0x34: '4', 0x35: '5',
	0x36: '6', 0x37: '7', 0x38: '8', 0x39: '9', 0x3a: ':', 0x3b: ';',
	0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C', 0x44: 'D', 0x45: 'E',
	0x46: 'F', 0x47: 'G', 0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K',
	0x4c: 'L', 0x4d: 'M', 0x4e: 'N', 0x4f: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S', 0x54: 'T', 0x55: 'U',
	0x56: 'V', 0x57: 'W', 0x58: 'X', 0x59: 'Y', 0x5a: 'Z', 0x5b: '[',
	0x5c: '\\', 0x5d: ']', 0x5e: '^', 0x5f: '_',
	0x60: '`', 0x61: 'a', 0x62: 'b', 0x63: 'c', 0x64: 'd', 0x65: 'e',
	0x66: 'f', 0x67: 'g', 0x68: 'h', 0x69: 'i', 0x6a: 'j', 0x6b: 'k',
	0x6c: 'l', 0x6d: 'm', 0x6e: 'n', 0x6f: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's', 0x74: 't', 0x75: 'u',
	0x76: 'v', 0x77: 'w', 0x78: 'x', 0x79: 'y', 0x7a: 'z', 0x7b: '{',
	0x7c: '|', 0x7d: '}', 0x7e: '~',
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8a: 'Š', 0x8b: '‹', 0x8c: 'Œ',
	0x8e: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9a: 'š', 0x9b: '›',
	0x9c: 'œ', 0x9e: 'ž', 0x9f: 'Ÿ',
	0xa0: ' ', 0xa1: '¡', 0xa2: '¢', 0xa3: '£',
	0xa4: '¤', 0xa5: '¥', 0xa6: '¦', 0xa7: '§',
	0xa8: '¨', 0xa9: '©', 0xaa: 'ª', 0xab: '«',
	0xac: '¬', 0xad: '\u00ad', 0xae: '®', 0xaf: '¯',
	0xb0: '°', 0xb1: '±', 0xb2: '²', 0xb3: '³',
	0xb4: '´', 0xb5: 'µ', 0xb6: '¶', 0xb7: '·',
	0xb8: '¸', 0xb9: '¹', 0xba: 'º', 0xbb: '»',
	0xbc: '¼', 0xbd: '½', 0xbe: '¾', 0xbf: '¿',
	0xc0: 'À', 0xc1: 'Á', 0xc2: 'Â', 0xc3: 'Ã',
	0xc4: 'Ä', 0xc5: 'Å', 0xc6: 'Æ', 0xc7: 'Ç',
	0xc8: 'È', 0xc9: 'É', 0xca: 'Ê', 0xcb: 'Ë',
	0xcc: 'Ì', 0xcd: 'Í', 0xce: 'Î', 0xcf: 'Ï',
	0xd0: 'Ð', 0xd1: 'Ñ', 0xd2: 'Ò', 0xd3: 'Ó',
	0xd4: 'Ô', 0xd5: 'Õ', 0xd6: 'Ö', 0xd7: '×',
	0xd8: 'Ø', 0xd9: 'Ù', 0xda: 'Ú', 0xdb: 'Û',
	0xdc: 'Ü', 0xdd: 'Ý', 0xde: 'Þ', 0xdf: 'ß',
	0xe0: 'à', 0xe1: 'á', 0xe2: 'â', 0xe3: 'ã',
	0xe4: 'ä', 0xe5: 'å', 0xe6: 'æ', 0xe7: 'ç',
	0xe8: 'è', 0xe9: 'é', 0xea: 'ê', 0xeb: 'ë',
	0xec: 'ì', 0xed: 'í', 0xee: 'î', 0xef: 'ï',
	0xf0: 'ð', 0xf1: 'ñ', 0xf2: 'ò', 0xf3: 'ó',
	0xf4: 'ô', 0xf5: 'õ', 0xf6: 'ö', 0xf7: '÷',
	0xf8: 'ø', 0xf9: 'ù', 0xfa: 'ú', 0xfb: 'û',
	0xfc: 'ü', 0xfd: 'ý', 0xfe: 'þ', 0xff: 'ÿ',
}

// macRomanEncoding maps bytes to the Unicode code points of
// MacRomanEncoding, used by simple fonts whose /Encoding names it
// directly. The ASCII range (0x00-0x7f) is shared with WinAnsi; only
// the upper half differs.
var macRomanEncoding = func() [256]rune {
	t := winAnsiEncoding
	upper := [256]rune{
		0x80: 'Ä', 0x81: 'Å', 0x82: 'Ç', 0x83: 'É',
		0x84: 'Ñ', 0x85: 'Ö', 0x86: 'Ü', 0x87: 'á',
		0x88: 'à', 0x89: 'â', 0x8a: 'ä', 0x8b: 'ã',
		0x8c: 'å', 0x8d: 'ç', 0x8e: 'é', 0x8f: 'è',
		0x90: 'ê', 0x91: 'ë', 0x92: 'í', 0x93: 'ì',
		0x94: 'î', 0x95: 'ï', 0x96: 'ñ', 0x97: 'ó',
		0x98: 'ò', 0x99: 'ô', 0x9a: 'ö', 0x9b: 'õ',
		0x9c: 'ú', 0x9d: 'ù', 0x9e: 'û', 0x9f: 'ü',
		0xa0: '†', 0xa1: '°', 0xa2: '¢', 0xa3: '£',
		0xa4: '§', 0xa5: '•', 0xa6: '¶', 0xa7: 'ß',
		0xa8: '®', 0xa9: '©', 0xaa: '™', 0xab: '´',
		0xac: '¨', 0xad: '≠', 0xae: 'Æ', 0xaf: 'Ø',
		0xb0: '∞', 0xb1: '±', 0xb2: '≤', 0xb3: '≥',
		0xb4: '¥', 0xb5: 'µ', 0xb6: '∂', 0xb7: '∑',
		0xb8: '∏', 0xb9: 'π', 0xba: '∫', 0xbb: 'ª',
		0xbc: 'º', 0xbd: 'Ω', 0xbe: 'æ', 0xbf: 'ø',
		0xc0: '¿', 0xc1: '¡', 0xc2: '¬', 0xc3: '√',
		0xc4: 'ƒ', 0xc5: '≈', 0xc6: '∆', 0xc7: '«',
		0xc8: '»', 0xc9: '…', 0xca: ' ', 0xcb: 'À',
		0xcc: 'Ã', 0xcd: 'Õ', 0xce: 'Œ', 0xcf: 'œ',
		0xd0: '–', 0xd1: '—', 0xd2: '“', 0xd3: '”',
		0xd4: '‘', 0xd5: '’', 0xd6: '÷', 0xd7: '◊',
		0xd8: 'ÿ', 0xd9: 'Ÿ', 0xda: '⁄', 0xdb: '€',
		0xdc: '‹', 0xdd: '›', 0xde: 'ﬁ', 0xdf: 'ﬂ',
		0xe0: '‡', 0xe1: '·', 0xe2: '‚', 0xe3: '„',
		0xe4: '‰', 0xe5: 'Â', 0xe6: 'Ê', 0xe7: 'Á',
		0xe8: 'Ë', 0xe9: 'È', 0xea: 'Í', 0xeb: 'Î',
		0xec: 'Ï', 0xed: 'Ì', 0xee: 'Ó', 0xef: 'Ô',
		0xf1: 'Ò', 0xf2: 'Ú', 0xf3: 'Û', 0xf4: 'Ù',
		0xf5: 'ı', 0xf6: 'ˆ', 0xf7: '˜', 0xf8: '¯',
		0xf9: '˘', 0xfa: '˙', 0xfb: '˚', 0xfc: '¸',
		0xfd: '˝', 0xfe: '˛', 0xff: 'ˇ',
	}
	for i, r := range upper {
		if r != 0 {
			t[i] = r
		}
	}
	return t
}()

// nameToRune maps a common subset of Adobe Glyph List names to their
// Unicode code points, for decoding a font's /Differences array.
// Names absent from this table decode to the replacement character.
var nameToRune = map[string]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"parenleft": '(', "parenright": ')', "asterisk": '*', "plus": '+',
	"comma": ',', "hyphen": '-', "period": '.', "slash": '/',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=',
	"greater": '>', "question": '?', "at": '@',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
	"bullet": '•', "dagger": '†', "daggerdbl": '‡',
	"ellipsis": '…', "emdash": '—', "endash": '–',
	"quotedblleft": '“', "quotedblright": '”',
	"quoteleft": '‘', "quoteright": '’',
	"quotesinglbase": '‚', "quotedblbase": '„',
	"trademark": '™', "fi": 'ﬁ', "fl": 'ﬂ',
	"Euro": '€', "florin": 'ƒ', "degree": '°',
	"copyright": '©', "registered": '®', "minus": '−',
	"perthousand": '‰', "guilsinglleft": '‹',
	"guilsinglright": '›',
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		nameToRune[string(c)] = c
	}
	for c := 'a'; c <= 'z'; c++ {
		nameToRune[string(c)] = c
	}
}

// isUTF16 reports whether s looks like a PDF "text string" encoded as
// big-endian UTF-16 with a leading byte-order mark (0xFE 0xFF).
func isUTF16(s string) bool {
	if len(s) < 2 || s[0] != 0xfe || s[1] != 0xff {
		return false
	}
	return len(s)%2 == 0
}

// utf16Decode decodes s, a sequence of big-endian UTF-16 code units
// with no byte-order mark, into a UTF-8 string.
func utf16Decode(s string) string {
	n := len(s) / 2
	u := make([]uint16, n)
	for i := 0; i < n; i++ {
		u[i] = uint16(s[2*i])<<8 | uint16(s[2*i+1])
	}
	return string(utf16.Decode(u))
}

// isPDFDocEncoded reports whether every byte of s has a defined
// mapping in pdfDocEncoding and s is not itself a UTF-16 text string.
func isPDFDocEncoded(s string) bool {
	if isUTF16(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if r := pdfDocEncoding[s[i]]; r == 0 || r == unicode.ReplacementChar {
			return false
		}
	}
	return true
}

// pdfDocDecode decodes s from PDFDocEncoding to a UTF-8 string.
func pdfDocDecode(s string) string {
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = pdfDocEncoding[s[i]]
	}
	return string(r)
}

// DecodeUTF8OrPreserve returns the runes of s if s is valid UTF-8, and
// otherwise returns one rune per raw byte, so that callers never lose
// data to a failed decode of a string whose encoding could not be
// determined.
func DecodeUTF8OrPreserve(s string) []rune {
	if utf8.ValidString(s) {
		return []rune(s)
	}
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = rune(s[i])
	}
	return r
}

// IsSameSentence reports whether current continues the same run of
// styled text as last: same font, close enough font size, and close
// enough baseline to be the same line or a tightly wrapped one.
func IsSameSentence(last, current Text) bool {
	if last.S == "" {
		return false
	}
	if last.Font != current.Font {
		return false
	}
	if math.Abs(last.FontSize-current.FontSize) > 0.5 {
		return false
	}
	tolerance := last.FontSize
	if tolerance <= 0 {
		tolerance = 1
	}
	return math.Abs(last.Y-current.Y) <= tolerance
}

// alphaReader passes through bytes in the ASCII85 alphabet ('!'-'u')
// unchanged and zeroes everything else, including every byte once the
// "~" end-of-data marker has been seen. PDF producers routinely
// interleave line breaks and stray whitespace into ASCII85Decode
// streams; this scrubs them before handing the stream to
// encoding/ascii85, which has no tolerance for non-alphabet bytes.
type alphaReader struct {
	r       io.Reader
	stopped bool
}

func newAlphaReader(r io.Reader) io.Reader {
	return &alphaReader{r: r}
}

func (a *alphaReader) Read(p []byte) (int, error) {
	n, err := a.r.Read(p)
	for i := 0; i < n; i++ {
		if a.stopped {
			p[i] = 0
			continue
		}
		c := p[i]
		if c == '~' {
			a.stopped = true
			p[i] = 0
			continue
		}
		if c < '!' || c > 'u' {
			p[i] = 0
		}
	}
	return n, err
}
