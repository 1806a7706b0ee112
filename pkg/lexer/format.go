package lexer

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// Quote returns s as a JSON string literal. Quote, backslash and control
// characters are escaped; all other bytes are copied unchanged, so invalid
// UTF-8 survives a Quote and Lex round trip.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xF])
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Format concatenates the canonical forms of tokens. Adjacent numbers are
// separated by a space so that lexing the result yields the same sequence.
func Format(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 && t.Kind == KindNumber && tokens[i-1].Kind == KindNumber {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Format())
	}
	return sb.String()
}

// Display returns the debug display of each token.
func Display(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
