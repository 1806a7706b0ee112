package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/jsonlex/pkg/lexer"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind lexer.Kind
		want string
	}{
		{lexer.KindObjectStart, "ObjectStart"},
		{lexer.KindObjectEnd, "ObjectEnd"},
		{lexer.KindArrayStart, "ArrayStart"},
		{lexer.KindArrayEnd, "ArrayEnd"},
		{lexer.KindColon, "Colon"},
		{lexer.KindComma, "Comma"},
		{lexer.KindString, "String"},
		{lexer.KindNumber, "Number"},
		{lexer.KindBoolean, "Boolean"},
		{lexer.KindNull, "Null"},
		{lexer.Kind(99), "Kind(99)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestTokenFormatAndDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok     lexer.Token
		format  string
		display string
	}{
		{lexer.ObjectStart, "{", "ObjectStartToken({)"},
		{lexer.ObjectEnd, "}", "ObjectEndToken(})"},
		{lexer.ArrayStart, "[", "ArrayStartToken([)"},
		{lexer.ArrayEnd, "]", "ArrayEndToken(])"},
		{lexer.Colon, ":", "ColonToken(:)"},
		{lexer.Comma, ",", "CommaToken(,)"},
		{lexer.String("a\"b"), `"a\"b"`, `StringToken(a"b)`},
		{lexer.Number("-1.5e10"), "-1.5e10", "NumberToken(-1.5e10)"},
		{lexer.Boolean(true), "true", "BooleanToken(true)"},
		{lexer.Boolean(false), "false", "BooleanToken(false)"},
		{lexer.Null, "null", "NullToken(null)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.format, tc.tok.Format())
		assert.Equal(t, tc.display, tc.tok.String())
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`a"b\c`, `"a\"b\\c"`},
		{"/", `"/"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"\x7f", "\"\x7f\""},
		{"世界 \U0001F600", "\"世界 \U0001F600\""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, lexer.Quote(tc.in), "%q", tc.in)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"", "x", "quote \" and \\ backslash", "ctl \x01\x02\x1b", "\xff\xfe invalid",
		"\U0001F600\U0001F308", "tab\tnewline\n",
	} {
		tokens, err := lexer.LexString(lexer.Quote(s))
		require.NoError(t, err, "%q", s)
		assert.Equal(t, []lexer.Token{lexer.String(s)}, tokens, "%q", s)
	}
}

func TestFormatRelexIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		`{"a":1,"b":[true,false,null]}`,
		`[1, 2, 3]`,
		`1 2 -3 4.5e6`,
		` { "k" : "😀\n" , "z" : [ -0 , 0.0 ] } `,
		`"\u0001\"" true null false`,
	} {
		first, err := lexer.LexString(src)
		require.NoError(t, err, src)

		second, err := lexer.LexString(lexer.Format(first))
		require.NoError(t, err, src)
		assert.Equal(t, first, second, src)
	}
}

func TestFormatSeparatesNumbers(t *testing.T) {
	t.Parallel()

	tokens := []lexer.Token{lexer.Number("1"), lexer.Number("2"), lexer.Comma, lexer.Number("3")}
	assert.Equal(t, "1 2,3", lexer.Format(tokens))
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.LexString(`{"a":[1]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ObjectStartToken({)",
		"StringToken(a)",
		"ColonToken(:)",
		"ArrayStartToken([)",
		"NumberToken(1)",
		"ArrayEndToken(])",
		"ObjectEndToken(})",
	}, lexer.Display(tokens))
}
