package lexer

import "unicode/utf8"

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// hexTable maps a byte to its nibble value, or -1 for non hex digits.
var hexTable = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = int8(10 + c - 'a')
	}
	for c := 'A'; c <= 'F'; c++ {
		t[c] = int8(10 + c - 'A')
	}
	return t
}()

func isHexDigit(ch byte) bool {
	return hexTable[ch] >= 0
}

// decodeHex4 decodes four hex digits. Callers must have checked them with
// isHexDigit.
func decodeHex4(b [4]byte) rune {
	return rune(hexTable[b[0]])<<12 |
		rune(hexTable[b[1]])<<8 |
		rune(hexTable[b[2]])<<4 |
		rune(hexTable[b[3]])
}

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

func isLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

// mergeSurrogate combines a UTF-16 surrogate pair into one code point.
func mergeSurrogate(high, low rune) rune {
	return (high-0xD800)<<10 + (low - 0xDC00) + 0x10000
}

// appendCodePoint appends the UTF-8 encoding of r. Surrogate halves never
// reach here: the lexer pairs or rejects them first.
func appendCodePoint(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, r)
}
