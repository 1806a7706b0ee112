// Package lexer converts JSON text into a flat sequence of tokens.
//
// The lexer is a byte-driven state machine. It enforces the RFC 8259 number
// grammar, decodes string escapes (merging UTF-16 surrogate pairs into single
// code points) and recognizes the true, false and null keywords. It does not
// check structural nesting. The first lexical error ends the run.
package lexer

import (
	"sync"

	"github.com/golang/glog"
)

const defaultBufferSize = 64

// Lexer holds the transient buffers of a lexing run. A Lexer is not safe for
// concurrent use, but independent Lexers are.
type Lexer struct {
	state State
	buf   []byte
	hex   [4]byte
	nhex  int
	high  rune

	trace    bool
	capacity int
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithTrace logs every transition at glog verbosity 3 and every emitted token
// at verbosity 2.
func WithTrace(on bool) Option {
	return func(l *Lexer) { l.trace = on }
}

// WithCapacity sets the initial capacity of the returned token slice.
func WithCapacity(n int) Option {
	return func(l *Lexer) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// New creates a new lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{buf: make([]byte, 0, defaultBufferSize)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Reset discards all transient state for pool reuse.
func (l *Lexer) Reset() {
	l.state = StateInit
	l.buf = l.buf[:0]
	l.nhex = 0
	l.high = 0
}

var lexerPool = sync.Pool{
	New: func() any { return New() },
}

// Get takes a lexer from the shared pool.
func Get() *Lexer {
	return lexerPool.Get().(*Lexer)
}

// Put returns a lexer to the shared pool.
func Put(l *Lexer) {
	l.Reset()
	l.trace = false
	l.capacity = 0
	lexerPool.Put(l)
}

// Lex tokenizes input with a pooled lexer.
func Lex(input []byte) ([]Token, error) {
	l := Get()
	defer Put(l)
	return l.Lex(input)
}

// LexString tokenizes s with a pooled lexer.
func LexString(s string) ([]Token, error) {
	return Lex([]byte(s))
}

// Lex tokenizes the whole input. On failure it returns a *Error and no
// tokens.
func (l *Lexer) Lex(input []byte) ([]Token, error) {
	l.Reset()
	tokens := make([]Token, 0, l.capacity)

	for i := 0; i < len(input); {
		c := input[i]
		from := l.state
		tok, emitted, consume, err := l.step(c)
		if err != nil {
			err.Offset = i
			l.Reset()
			return nil, err
		}
		if l.trace {
			glog.V(3).Infof("jsonlex: %d %q %s -> %s consume=%t", i, c, from, l.state, consume)
		}
		if emitted {
			if l.trace {
				glog.V(2).Infof("jsonlex: emit %s", tok)
			}
			tokens = append(tokens, tok)
		}
		if consume {
			i++
		}
	}

	tok, emitted, err := l.finish()
	l.Reset()
	if err != nil {
		err.Offset = len(input)
		return nil, err
	}
	if emitted {
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// finish settles whatever is pending once the input is exhausted.
func (l *Lexer) finish() (Token, bool, *Error) {
	if l.nhex > 0 {
		return Token{}, false, l.fail(IncompleteUnicodeEscape, 0)
	}
	if l.high != 0 {
		return Token{}, false, l.fail(UnpairedHighSurrogate, 0)
	}

	switch {
	case l.state == StateInit:
		return Token{}, false, nil
	case l.state.numberComplete():
		return l.endNumber(), true, nil
	case l.state.isNumber():
		return Token{}, false, l.fail(MalformedNumberAtEndOfInput, 0)
	case l.state.isKeyword():
		return Token{}, false, l.fail(IncompleteKeyword, 0)
	case l.state == StateUnicodeEscape:
		return Token{}, false, l.fail(IncompleteUnicodeEscape, 0)
	}
	return Token{}, false, l.fail(UnterminatedString, 0)
}
