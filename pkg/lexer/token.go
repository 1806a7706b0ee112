package lexer

import "strconv"

// Kind represents the type of token identified by the lexer.
type Kind uint8

const (
	KindObjectStart Kind = iota // {
	KindObjectEnd               // }
	KindArrayStart              // [
	KindArrayEnd                // ]
	KindColon                   // :
	KindComma                   // ,
	KindString
	KindNumber
	KindBoolean
	KindNull
)

var kindNames = [...]string{
	KindObjectStart: "ObjectStart",
	KindObjectEnd:   "ObjectEnd",
	KindArrayStart:  "ArrayStart",
	KindArrayEnd:    "ArrayEnd",
	KindColon:       "Colon",
	KindComma:       "Comma",
	KindString:      "String",
	KindNumber:      "Number",
	KindBoolean:     "Boolean",
	KindNull:        "Null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token represents one lexical unit of JSON source.
// Text holds the decoded value of a string or the verbatim lexeme of a
// number; Bool holds the value of a boolean. Other kinds carry no payload.
type Token struct {
	Kind Kind
	Text string
	Bool bool
}

// Structural and null tokens have no payload and can be shared.
var (
	ObjectStart = Token{Kind: KindObjectStart}
	ObjectEnd   = Token{Kind: KindObjectEnd}
	ArrayStart  = Token{Kind: KindArrayStart}
	ArrayEnd    = Token{Kind: KindArrayEnd}
	Colon       = Token{Kind: KindColon}
	Comma       = Token{Kind: KindComma}
	Null        = Token{Kind: KindNull}
)

// String returns a string token holding already decoded text.
func String(text string) Token { return Token{Kind: KindString, Text: text} }

// Number returns a number token holding the source lexeme.
func Number(lexeme string) Token { return Token{Kind: KindNumber, Text: lexeme} }

// Boolean returns a boolean token.
func Boolean(v bool) Token { return Token{Kind: KindBoolean, Bool: v} }

// literal returns the fixed source text of a payload-free or boolean token.
func (t Token) literal() string {
	switch t.Kind {
	case KindObjectStart:
		return "{"
	case KindObjectEnd:
		return "}"
	case KindArrayStart:
		return "["
	case KindArrayEnd:
		return "]"
	case KindColon:
		return ":"
	case KindComma:
		return ","
	case KindBoolean:
		if t.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	}
	return ""
}

// Format returns the canonical JSON literal for the token. Strings are
// re-escaped with Quote, numbers are returned verbatim.
func (t Token) Format() string {
	switch t.Kind {
	case KindString:
		return Quote(t.Text)
	case KindNumber:
		return t.Text
	}
	return t.literal()
}

// String returns a debug display such as StringToken(a) or ColonToken(:).
func (t Token) String() string {
	v := t.Text
	if t.Kind != KindString && t.Kind != KindNumber {
		v = t.literal()
	}
	return t.Kind.String() + "Token(" + v + ")"
}
