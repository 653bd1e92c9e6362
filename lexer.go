// lexer.go: longest-match tokenizer over a staged, backtracking reader.
//
// Tokens are recognized by independent competing scanners. For each token
// every scanner runs from the same start position; the longest match wins
// and ties go to the scanner listed LAST. That tie-break is load-bearing:
// the keyword scanners for true and nil are listed after the symbol scanner,
// so the bare texts `true` and `nil` become keywords while `true?` or `nilx`
// stay symbols, and the integer scanner outranks the symbol scanner on
// all-digit text.
package slip

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// TokenType enumerates the lexeme kinds.
type TokenType int

const (
	TokenFloat TokenType = iota
	TokenInt
	TokenDot
	TokenNil
	TokenParClose
	TokenParOpen
	TokenQuote
	TokenString
	TokenSymbol
	TokenTrue
)

// Token is one scanned lexeme. Text carries the payload for symbols and
// string literals; Int and Float the parsed numeric payloads.
type Token struct {
	Type  TokenType
	Text  string
	Int   int64
	Float float64
}

func (t Token) String() string {
	switch t.Type {
	case TokenFloat:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case TokenInt:
		return strconv.FormatInt(t.Int, 10)
	case TokenDot:
		return "."
	case TokenNil:
		return "nil"
	case TokenParClose:
		return ")"
	case TokenParOpen:
		return "("
	case TokenQuote:
		return "'"
	case TokenString:
		return strconv.Quote(t.Text)
	case TokenSymbol:
		return t.Text
	case TokenTrue:
		return "true"
	default:
		return "<invalid token>"
	}
}

// UnmatchedSequenceError: the input contains a residue no scanner accepts.
// The token stream ends permanently after yielding it once.
type UnmatchedSequenceError struct {
	Residue string
}

func (e *UnmatchedSequenceError) Error() string {
	return fmt.Sprintf("unscannable input %q", e.Residue)
}

// TokenStream scans tokens lazily from a rune source:
//
//	ts := Tokenize(src)
//	for ts.Scan() {
//		use(ts.Token())
//	}
//	if err := ts.Err(); err != nil { ... }
//
// The staging buffer holds runes read from the input but not yet consumed by
// an accepted token, which is what lets every scanner re-read the same
// region without demanding a seekable source.
type TokenStream struct {
	staging []rune
	input   io.RuneReader
	tok     Token
	err     error
	dead    bool
}

// NewTokenStream scans from an arbitrary rune source.
func NewTokenStream(r io.RuneReader) *TokenStream {
	return &TokenStream{input: r}
}

// Tokenize scans a string.
func Tokenize(src string) *TokenStream {
	return NewTokenStream(strings.NewReader(src))
}

// Scan advances to the next token. It returns false at the end of input or
// once an unscannable residue has been hit; Err distinguishes the two.
func (ts *TokenStream) Scan() bool {
	if ts.dead {
		return false
	}
	ts.skipWhitespace()
	if tok, n, ok := ts.runScanners(); ok {
		ts.staging = ts.staging[n:]
		ts.tok = tok
		return true
	}
	ts.dead = true
	if len(ts.staging) > 0 {
		ts.err = &UnmatchedSequenceError{Residue: string(ts.staging)}
		ts.staging = nil
	}
	return false
}

// Token returns the token produced by the last successful Scan.
func (ts *TokenStream) Token() Token { return ts.tok }

// Err returns the terminal scanning error, or nil after a clean end.
func (ts *TokenStream) Err() error { return ts.err }

// readAt returns the rune at offset i from the current position, pulling
// from the input into the staging buffer as needed.
func (ts *TokenStream) readAt(i int) (rune, bool) {
	for i >= len(ts.staging) {
		r, _, err := ts.input.ReadRune()
		if err != nil {
			return 0, false
		}
		ts.staging = append(ts.staging, r)
	}
	return ts.staging[i], true
}

func (ts *TokenStream) skipWhitespace() {
	i := 0
	for i < len(ts.staging) && unicode.IsSpace(ts.staging[i]) {
		i++
	}
	ts.staging = ts.staging[i:]
	if len(ts.staging) > 0 {
		return
	}
	for {
		r, _, err := ts.input.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			ts.staging = append(ts.staging, r)
			return
		}
	}
}

// scanFunc attempts one lexeme from the stream's current position and
// reports the token, the number of runes it spans, and whether it matched.
type scanFunc func(ts *TokenStream) (Token, int, bool)

// runScanners races every scanner from the same start. Longest match wins;
// >= makes a later-listed scanner win ties, so keep the order.
func (ts *TokenStream) runScanners() (Token, int, bool) {
	scanners := [...]scanFunc{
		scanSymbol,
		scanString,
		scanInteger,
		scanFloat,
		scanTrue,
		scanQuote,
		scanDot,
		scanNil,
		scanParClose,
		scanParOpen,
	}

	best := 0
	var bestTok Token
	for _, scan := range scanners {
		if tok, n, ok := scan(ts); ok && n >= best {
			best, bestTok = n, tok
		}
	}
	return bestTok, best, best > 0
}

func isSymbolRune(r rune) bool {
	switch r {
	case '_', '-', '<', '>', '=', '*', '/', '+', '%', '!', '?':
		return true
	}
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func scanSymbol(ts *TokenStream) (Token, int, bool) {
	n := 0
	for {
		r, ok := ts.readAt(n)
		if !ok || !isSymbolRune(r) {
			break
		}
		n++
	}
	if n == 0 {
		return Token{}, 0, false
	}
	return Token{Type: TokenSymbol, Text: string(ts.staging[:n])}, n, true
}

func scanString(ts *TokenStream) (Token, int, bool) {
	if r, ok := ts.readAt(0); !ok || r != '"' {
		return Token{}, 0, false
	}
	for i := 1; ; i++ {
		r, ok := ts.readAt(i)
		if !ok {
			return Token{}, 0, false
		}
		if r == '"' {
			return Token{Type: TokenString, Text: string(ts.staging[1:i])}, i + 1, true
		}
	}
}

func scanInteger(ts *TokenStream) (Token, int, bool) {
	n := 0
	for {
		r, ok := ts.readAt(n)
		if !ok || r < '0' || r > '9' {
			break
		}
		n++
	}
	if n == 0 {
		return Token{}, 0, false
	}
	v, err := strconv.ParseInt(string(ts.staging[:n]), 10, 64)
	if err != nil {
		return Token{}, 0, false
	}
	return Token{Type: TokenInt, Int: v}, n, true
}

func scanFloat(ts *TokenStream) (Token, int, bool) {
	n := 0
	hasDot := false
	for {
		r, ok := ts.readAt(n)
		if !ok {
			break
		}
		if r >= '0' && r <= '9' {
			n++
		} else if r == '.' && !hasDot {
			hasDot = true
			n++
		} else {
			break
		}
	}
	if n == 0 || !hasDot {
		return Token{}, 0, false
	}
	v, err := strconv.ParseFloat(string(ts.staging[:n]), 64)
	if err != nil {
		return Token{}, 0, false
	}
	return Token{Type: TokenFloat, Float: v}, n, true
}

func scanKeyword(ts *TokenStream, word string, tok Token) (Token, int, bool) {
	for i, w := range word {
		if r, ok := ts.readAt(i); !ok || r != w {
			return Token{}, 0, false
		}
	}
	return tok, len(word), true
}

func scanTrue(ts *TokenStream) (Token, int, bool) {
	return scanKeyword(ts, "true", Token{Type: TokenTrue})
}

func scanNil(ts *TokenStream) (Token, int, bool) {
	return scanKeyword(ts, "nil", Token{Type: TokenNil})
}

func scanRune(ts *TokenStream, want rune, tok Token) (Token, int, bool) {
	if r, ok := ts.readAt(0); !ok || r != want {
		return Token{}, 0, false
	}
	return tok, 1, true
}

func scanQuote(ts *TokenStream) (Token, int, bool) {
	return scanRune(ts, '\'', Token{Type: TokenQuote})
}

func scanDot(ts *TokenStream) (Token, int, bool) {
	return scanRune(ts, '.', Token{Type: TokenDot})
}

func scanParOpen(ts *TokenStream) (Token, int, bool) {
	return scanRune(ts, '(', Token{Type: TokenParOpen})
}

func scanParClose(ts *TokenStream) (Token, int, bool) {
	return scanRune(ts, ')', Token{Type: TokenParClose})
}
