// parser.go: stream parser from tokens to expressions.
//
// The parser pulls tokens lazily from a TokenStream and yields one parsed
// expression per Next call, in the style of encoding/json.Decoder.Token:
// io.EOF marks the clean end of input, any other error belongs to the
// expression that failed. Grammar errors (an unexpected token, a malformed
// dotted pair) poison only the current expression; the stream keeps going
// with the tokens that follow. A tokenizer error is terminal: it is
// delivered once and every later Next returns io.EOF.

package slip

import (
	"errors"
	"fmt"
	"io"
)

// UnexpectedTokenError reports a token that cannot start or continue an
// expression at its position, such as a stray ')' or a misplaced '.'.
type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Token)
}

// UnexpectedEndError reports input that ends in the middle of an expression,
// for example an unclosed list or a quote with nothing after it.
type UnexpectedEndError struct{}

func (e *UnexpectedEndError) Error() string {
	return "unexpected end of input"
}

// ExprStream parses expressions one at a time from a token stream.
type ExprStream struct {
	ts *TokenStream

	// one-token lookahead; filled means tok/terr hold the next result
	tok    Token
	terr   error
	filled bool

	tokErrDone bool // the tokenizer's terminal error has been handed out
	done       bool
}

// NewExprStream returns a parser reading from ts.
func NewExprStream(ts *TokenStream) *ExprStream {
	return &ExprStream{ts: ts}
}

// Parse returns a parser over the expressions in src.
func Parse(src string) *ExprStream {
	return NewExprStream(Tokenize(src))
}

// ParseString eagerly parses every expression in src. It stops at the first
// error; a clean end of input is not an error.
func ParseString(src string) ([]Value, error) {
	es := Parse(src)
	var out []Value
	for {
		v, err := es.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Next returns the next expression from the stream. It returns io.EOF once
// the input is exhausted. Any other error describes the expression that
// failed to parse; after a grammar error the stream resumes with the next
// token, after a tokenizer error the stream is over.
func (es *ExprStream) Next() (Value, error) {
	if es.done {
		return Nil, io.EOF
	}
	if _, err := es.peekTok(); err != nil {
		es.nextTok()
		es.done = true
		return Nil, err
	}
	v, err := es.parseExpression()
	if err != nil && es.ts.Err() != nil {
		// the tokenizer died mid-expression; nothing more can follow
		es.done = true
	}
	return v, err
}

// fill loads the lookahead slot. The slot holds either a token or the
// reason no token is available: io.EOF at the end of input, or the
// tokenizer's own error exactly once.
func (es *ExprStream) fill() {
	if es.filled {
		return
	}
	es.filled = true
	if es.ts.Scan() {
		es.tok, es.terr = es.ts.Token(), nil
		return
	}
	if err := es.ts.Err(); err != nil && !es.tokErrDone {
		es.tokErrDone = true
		es.tok, es.terr = Token{}, err
		return
	}
	es.tok, es.terr = Token{}, io.EOF
}

func (es *ExprStream) peekTok() (Token, error) {
	es.fill()
	return es.tok, es.terr
}

func (es *ExprStream) nextTok() (Token, error) {
	es.fill()
	es.filled = false
	return es.tok, es.terr
}

func (es *ExprStream) parseExpression() (Value, error) {
	t, err := es.nextTok()
	if err == io.EOF {
		return Nil, &UnexpectedEndError{}
	}
	if err != nil {
		return Nil, err
	}
	switch t.Type {
	case TokenParOpen:
		return es.parseList()
	case TokenNil:
		return Nil, nil
	case TokenTrue:
		return True, nil
	case TokenInt:
		return Int(t.Int), nil
	case TokenFloat:
		return Float(t.Float), nil
	case TokenString:
		return Str(t.Text), nil
	case TokenSymbol:
		return Sym(t.Text), nil
	case TokenQuote:
		inner, err := es.parseExpression()
		if err != nil {
			return Nil, err
		}
		return Quote(inner), nil
	default:
		// ')' or '.' outside a list
		return Nil, &UnexpectedTokenError{Token: t}
	}
}

// parseList parses the remainder of a list after its opening parenthesis.
// A '.' is only legal with exactly one element before it and exactly one
// expression between it and the closing parenthesis.
func (es *ExprStream) parseList() (Value, error) {
	var elems []Value
	for {
		t, err := es.peekTok()
		if err == nil && t.Type == TokenParClose {
			es.nextTok()
			return List(elems...), nil
		}
		if err == nil && t.Type == TokenDot {
			es.nextTok()
			if len(elems) != 1 {
				return Nil, &UnexpectedTokenError{Token: t}
			}
			tail, err := es.parseExpression()
			if err != nil {
				return Nil, err
			}
			closing, err := es.nextTok()
			if err == io.EOF {
				return Nil, &UnexpectedEndError{}
			}
			if err != nil {
				return Nil, err
			}
			if closing.Type != TokenParClose {
				return Nil, &UnexpectedTokenError{Token: closing}
			}
			return Cons(elems[0], tail), nil
		}
		// anything else, including end of input or a tokenizer error,
		// goes through parseExpression and surfaces from there
		elem, err := es.parseExpression()
		if err != nil {
			return Nil, err
		}
		elems = append(elems, elem)
	}
}
