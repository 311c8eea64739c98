package css

import (
	"strconv"
	"strings"

	"github.com/lukehoban/cssengine/strpool"
)

// Tokenizer is a CSS 2.1 conformant lexical analyser. It owns no stream of
// its own; bytes are appended with Feed and consumed by Next, mirroring the
// "Input stream (ext.)" collaborator of spec.md §2 while keeping this
// engine self-contained for the purposes of this repository (see
// SPEC_FULL.md's non-goals: charset autodetection and transport are
// external concerns; Feed accepts already-decoded bytes).
//
// Spec references:
// - spec.md §4.2 Tokenizer
type Tokenizer struct {
	pool         *strpool.Pool
	data         []byte
	pos          int
	line, col    int
	emitComments bool
}

// TokenizerOptions configures a Tokenizer.
type TokenizerOptions struct {
	// EmitComments requests COMMENT tokens instead of silently skipping
	// comments, per spec.md §4.2.
	EmitComments bool
}

// NewTokenizer creates a Tokenizer backed by pool for interning semantic
// token text.
func NewTokenizer(pool *strpool.Pool, opts TokenizerOptions) *Tokenizer {
	return &Tokenizer{
		pool:         pool,
		line:         1,
		col:          1,
		emitComments: opts.EmitComments,
	}
}

// Feed appends more input bytes, analogous to the host's append_data call
// on the real input stream collaborator (spec.md §5).
func (t *Tokenizer) Feed(b []byte) {
	t.data = append(t.data, b...)
}

// Pending reports how many unconsumed bytes remain buffered.
func (t *Tokenizer) Pending() int {
	return len(t.data) - t.pos
}

type mark struct {
	pos, line, col int
}

func (t *Tokenizer) snapshot() mark {
	return mark{t.pos, t.line, t.col}
}

func (t *Tokenizer) restore(m mark) {
	t.pos, t.line, t.col = m.pos, m.line, m.col
}

func (t *Tokenizer) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(t.data) {
		return 0, false
	}
	return t.data[i], true
}

func (t *Tokenizer) advance(n int) {
	for i := 0; i < n; i++ {
		if t.pos >= len(t.data) {
			return
		}
		if t.data[t.pos] == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
		t.pos++
	}
}

// needMore is returned internally by scan helpers when the buffer ends
// mid-construct and the caller is not at true EOF: the caller must Feed
// more bytes and retry from the same start position, guaranteeing that
// tokenization is chunk-boundary-invariant (spec.md §8, "Parsing is
// chunk-order-invariant").
var errNeedMore = Error(-1)

// Next produces the next token. When atEOF is false and the currently
// buffered bytes end inside an unterminated construct that more data could
// extend, Next returns NEEDDATA without consuming anything; the caller
// should Feed more bytes and call Next again. TokenEOF is returned
// (idempotently) once atEOF is true and no bytes remain.
func (t *Tokenizer) Next(atEOF bool) (Token, Error) {
	start := t.snapshot()

	if t.pos >= len(t.data) {
		if atEOF {
			return Token{Type: TokenEOF, Line: t.line, Col: t.col}, OK
		}
		return Token{}, NEEDDATA
	}

	tok, err := t.scanOne(atEOF)
	if err == errNeedMore {
		t.restore(start)
		return Token{}, NEEDDATA
	}
	if err != OK {
		return Token{}, err
	}
	return tok, OK
}

func (t *Tokenizer) scanOne(atEOF bool) (Token, Error) {
	line, col := t.line, t.col
	c := t.data[t.pos]

	switch {
	case isSpace(c):
		return t.readWhitespace(atEOF, line, col)
	case c == '/' && t.peekIs(1, '*'):
		return t.readComment(atEOF, line, col)
	case c == '"' || c == '\'':
		return t.readString(atEOF, line, col)
	case c == '#':
		return t.readHash(atEOF, line, col)
	case c == '@':
		return t.readAtKeyword(atEOF, line, col)
	case c == '<' && t.matchAhead("<!--"):
		t.advance(4)
		return Token{Type: CDO, Text: "<!--", Line: line, Col: col}, OK
	case c == '-' && t.matchAhead("-->"):
		t.advance(3)
		return Token{Type: CDC, Text: "-->", Line: line, Col: col}, OK
	case c == '~' && t.peekIs(1, '='):
		t.advance(2)
		return Token{Type: INCLUDES, Text: "~=", Line: line, Col: col}, OK
	case c == '|' && t.peekIs(1, '='):
		t.advance(2)
		return Token{Type: DASHMATCH, Text: "|=", Line: line, Col: col}, OK
	case c == '^' && t.peekIs(1, '='):
		t.advance(2)
		return Token{Type: PREFIXMATCH, Text: "^=", Line: line, Col: col}, OK
	case c == '$' && t.peekIs(1, '='):
		t.advance(2)
		return Token{Type: SUFFIXMATCH, Text: "$=", Line: line, Col: col}, OK
	case c == '*' && t.peekIs(1, '='):
		t.advance(2)
		return Token{Type: SUBSTRINGMATCH, Text: "*=", Line: line, Col: col}, OK
	case isDigit(c) || (c == '.' && digitAt(t, 1)) || (c == '-' && (digitAt(t, 1) || (dotAt(t, 1) && digitAt(t, 2)))):
		return t.readNumeric(atEOF, line, col)
	case (c == 'u' || c == 'U') && t.peekIs(1, '+'):
		return t.readUnicodeRange(atEOF, line, col)
	case isNameStart(c) || c == '\\':
		return t.readIdentLike(atEOF, line, col)
	default:
		t.advance(1)
		return Token{Type: CHAR, Text: string(c), Line: line, Col: col}, OK
	}
}

func (t *Tokenizer) peekIs(offset int, want byte) bool {
	b, ok := t.byteAt(t.pos + offset)
	return ok && b == want
}

func digitAt(t *Tokenizer, offset int) bool {
	b, ok := t.byteAt(t.pos + offset)
	return ok && isDigit(b)
}

func dotAt(t *Tokenizer, offset int) bool {
	b, ok := t.byteAt(t.pos + offset)
	return ok && b == '.'
}

func (t *Tokenizer) matchAhead(s string) bool {
	for i := 0; i < len(s); i++ {
		b, ok := t.byteAt(t.pos + i)
		if !ok || b != s[i] {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' || c > 127
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (t *Tokenizer) readWhitespace(atEOF bool, line, col int) (Token, Error) {
	var b strings.Builder
	for {
		if t.pos >= len(t.data) {
			if !atEOF {
				return Token{}, errNeedMore
			}
			break
		}
		c := t.data[t.pos]
		if !isSpace(c) {
			break
		}
		b.WriteByte(c)
		t.advance(1)
	}
	return Token{Type: WHITESPACE, Text: b.String(), Line: line, Col: col}, OK
}

func (t *Tokenizer) readComment(atEOF bool, line, col int) (Token, Error) {
	t.advance(2) // consume "/*"
	var b strings.Builder
	for {
		if t.pos >= len(t.data) {
			if !atEOF {
				return Token{}, errNeedMore
			}
			break
		}
		if t.data[t.pos] == '*' && t.peekIs(1, '/') {
			t.advance(2)
			if t.emitComments {
				return Token{Type: COMMENT, Text: b.String(), Line: line, Col: col}, OK
			}
			return t.Next(atEOF)
		}
		b.WriteByte(t.data[t.pos])
		t.advance(1)
	}
	if t.emitComments {
		return Token{Type: COMMENT, Text: b.String(), Line: line, Col: col}, OK
	}
	return Token{Type: TokenEOF, Line: t.line, Col: t.col}, OK
}

// readEscape consumes a single CSS escape sequence (the caller has already
// verified the current byte is '\'), returning the decoded rune text.
// Per CSS 2.1 §4.1.3: "\" followed by 1-6 hex digits and optional trailing
// whitespace denotes a code point; "\" followed by any other character
// (other than hex digit or newline) denotes that character literally.
func (t *Tokenizer) readEscape(atEOF bool) (string, Error) {
	t.advance(1) // consume backslash
	if t.pos >= len(t.data) {
		if !atEOF {
			return "", errNeedMore
		}
		return "", OK
	}
	c := t.data[t.pos]
	if isHexDigit(c) {
		start := t.pos
		for i := 0; i < 6; i++ {
			if t.pos >= len(t.data) {
				if !atEOF {
					return "", errNeedMore
				}
				break
			}
			if !isHexDigit(t.data[t.pos]) {
				break
			}
			t.advance(1)
		}
		hexText := string(t.data[start:t.pos])
		// Optional single trailing whitespace character terminates the escape.
		if t.pos >= len(t.data) {
			if !atEOF {
				return "", errNeedMore
			}
		} else if isSpace(t.data[t.pos]) {
			t.advance(1)
		}
		cp, err := strconv.ParseInt(hexText, 16, 32)
		if err != nil || cp == 0 {
			return "�", OK
		}
		return string(rune(cp)), OK
	}
	if c == '\n' {
		// Escaped newline inside a name is not meaningful (CSS 2.1 only
		// allows it inside strings, handled separately); it is consumed
		// and contributes nothing to the name.
		t.advance(1)
		return "", OK
	}
	t.advance(1)
	return string(c), OK
}

func (t *Tokenizer) readName(atEOF bool) (string, Error) {
	var b strings.Builder
	for {
		if t.pos >= len(t.data) {
			if !atEOF {
				return "", errNeedMore
			}
			break
		}
		c := t.data[t.pos]
		if c == '\\' {
			if t.pos+1 >= len(t.data) && !atEOF {
				return "", errNeedMore
			}
			s, err := t.readEscape(atEOF)
			if err == errNeedMore {
				return "", errNeedMore
			}
			b.WriteString(s)
			continue
		}
		if !isNameChar(c) {
			break
		}
		b.WriteByte(c)
		t.advance(1)
	}
	return b.String(), OK
}

func (t *Tokenizer) readHash(atEOF bool, line, col int) (Token, Error) {
	t.advance(1) // consume '#'
	name, err := t.readName(atEOF)
	if err == errNeedMore {
		return Token{}, errNeedMore
	}
	if name == "" {
		return Token{Type: CHAR, Text: "#", Line: line, Col: col}, OK
	}
	tok := Token{Type: HASH, Text: name, Line: line, Col: col}
	t.internToken(&tok)
	return tok, OK
}

func (t *Tokenizer) readAtKeyword(atEOF bool, line, col int) (Token, Error) {
	// Need to look ahead far enough to know whether a name follows '@'.
	save := t.snapshot()
	t.advance(1) // consume '@'
	if t.pos < len(t.data) && isNameStart(t.data[t.pos]) || (t.pos < len(t.data) && t.data[t.pos] == '\\') {
		name, err := t.readName(atEOF)
		if err == errNeedMore {
			t.restore(save)
			return Token{}, errNeedMore
		}
		tok := Token{Type: ATKEYWORD, Text: name, Line: line, Col: col}
		t.internToken(&tok)
		return tok, OK
	}
	if t.pos >= len(t.data) && !atEOF {
		t.restore(save)
		return Token{}, errNeedMore
	}
	t.restore(save)
	t.advance(1)
	return Token{Type: CHAR, Text: "@", Line: line, Col: col}, OK
}

func (t *Tokenizer) readIdentLike(atEOF bool, line, col int) (Token, Error) {
	save := t.snapshot()
	name, err := t.readName(atEOF)
	if err == errNeedMore {
		t.restore(save)
		return Token{}, errNeedMore
	}
	if name == "" {
		// Lone '-' or stray backslash-at-EOF with nothing following.
		t.advance(1)
		return Token{Type: CHAR, Text: string(t.data[save.pos]), Line: line, Col: col}, OK
	}
	if t.pos >= len(t.data) && !atEOF {
		return Token{}, errNeedMore
	}
	if t.pos < len(t.data) && t.data[t.pos] == '(' {
		if strings.EqualFold(name, "url") {
			return t.readURI(atEOF, line, col, save)
		}
		t.advance(1)
		tok := Token{Type: FUNCTION, Text: name, Line: line, Col: col}
		t.internToken(&tok)
		return tok, OK
	}
	tok := Token{Type: IDENT, Text: name, Line: line, Col: col}
	t.internToken(&tok)
	return tok, OK
}

func (t *Tokenizer) readURI(atEOF bool, line, col int, funcStart mark) (Token, Error) {
	save := t.snapshot()
	t.advance(1) // consume '('
	// skip leading whitespace
	for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
		t.advance(1)
	}
	if t.pos >= len(t.data) {
		if !atEOF {
			t.restore(save)
			return Token{}, errNeedMore
		}
		tok := Token{Type: URI, Text: "", Line: line, Col: col}
		t.internToken(&tok)
		return tok, OK
	}
	var content string
	if t.data[t.pos] == '"' || t.data[t.pos] == '\'' {
		strTok, err := t.readString(atEOF, t.line, t.col)
		if err == errNeedMore {
			t.restore(save)
			return Token{}, errNeedMore
		}
		content = strTok.Text
	} else {
		var b strings.Builder
		for {
			if t.pos >= len(t.data) {
				if !atEOF {
					t.restore(save)
					return Token{}, errNeedMore
				}
				break
			}
			c := t.data[t.pos]
			if c == ')' || isSpace(c) {
				break
			}
			if c == '\\' {
				s, err := t.readEscape(atEOF)
				if err == errNeedMore {
					t.restore(save)
					return Token{}, errNeedMore
				}
				b.WriteString(s)
				continue
			}
			b.WriteByte(c)
			t.advance(1)
		}
		content = b.String()
	}
	for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
		t.advance(1)
	}
	if t.pos < len(t.data) && t.data[t.pos] == ')' {
		t.advance(1)
	} else if t.pos >= len(t.data) && !atEOF {
		t.restore(save)
		return Token{}, errNeedMore
	}
	tok := Token{Type: URI, Text: content, Line: line, Col: col}
	t.internToken(&tok)
	return tok, OK
}

func (t *Tokenizer) readString(atEOF bool, line, col int) (Token, Error) {
	quote := t.data[t.pos]
	save := t.snapshot()
	t.advance(1)
	var b strings.Builder
	for {
		if t.pos >= len(t.data) {
			if !atEOF {
				t.restore(save)
				return Token{}, errNeedMore
			}
			tok := Token{Type: STRING, Text: b.String(), Line: line, Col: col}
			t.internToken(&tok)
			return tok, OK
		}
		c := t.data[t.pos]
		if c == quote {
			t.advance(1)
			tok := Token{Type: STRING, Text: b.String(), Line: line, Col: col}
			t.internToken(&tok)
			return tok, OK
		}
		if c == '\n' {
			// Bare unescaped newline terminates the string as invalid,
			// per spec.md §4.2 ("produce INVALID_STRING on a bare newline").
			tok := Token{Type: INVALID_STRING, Text: b.String(), Line: line, Col: col}
			t.internToken(&tok)
			return tok, OK
		}
		if c == '\\' {
			if t.pos+1 >= len(t.data) {
				if !atEOF {
					t.restore(save)
					return Token{}, errNeedMore
				}
				t.advance(1)
				continue
			}
			if t.data[t.pos+1] == '\n' {
				// Escaped newline: line continuation, contributes nothing.
				t.advance(2)
				continue
			}
			s, err := t.readEscape(atEOF)
			if err == errNeedMore {
				t.restore(save)
				return Token{}, errNeedMore
			}
			b.WriteString(s)
			continue
		}
		b.WriteByte(c)
		t.advance(1)
	}
}

// readUnicodeRange scans a font-face unicode-range token: "U+" followed by
// 1-6 hex digits (optionally trailed by '?' wildcards) or a "lo-hi" range.
func (t *Tokenizer) readUnicodeRange(atEOF bool, line, col int) (Token, Error) {
	save := t.snapshot()
	start := t.pos
	t.advance(2) // consume "U+" / "u+"
	consumed := 0
	for consumed < 6 {
		if t.pos >= len(t.data) {
			if !atEOF {
				t.restore(save)
				return Token{}, errNeedMore
			}
			break
		}
		c := t.data[t.pos]
		if isHexDigit(c) {
			t.advance(1)
			consumed++
			continue
		}
		if c == '?' {
			t.advance(1)
			consumed++
			continue
		}
		break
	}
	if t.pos < len(t.data) && t.data[t.pos] == '-' {
		if t.pos+1 >= len(t.data) && !atEOF {
			t.restore(save)
			return Token{}, errNeedMore
		}
		if t.pos+1 < len(t.data) && isHexDigit(t.data[t.pos+1]) {
			t.advance(1)
			n := 0
			for n < 6 {
				if t.pos >= len(t.data) {
					if !atEOF {
						t.restore(save)
						return Token{}, errNeedMore
					}
					break
				}
				if !isHexDigit(t.data[t.pos]) {
					break
				}
				t.advance(1)
				n++
			}
		}
	}
	if t.pos >= len(t.data) && !atEOF {
		t.restore(save)
		return Token{}, errNeedMore
	}
	return Token{Type: UNICODE_RANGE, Text: string(t.data[start:t.pos]), Line: line, Col: col}, OK
}

func (t *Tokenizer) readNumeric(atEOF bool, line, col int) (Token, Error) {
	save := t.snapshot()
	start := t.pos
	if t.data[t.pos] == '-' {
		t.advance(1)
	}
	for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
		t.advance(1)
	}
	if t.pos < len(t.data) && t.data[t.pos] == '.' {
		// Need to know whether a digit follows; if we're at the buffer
		// edge this could still resolve once more data arrives.
		if t.pos+1 >= len(t.data) {
			if !atEOF {
				t.restore(save)
				return Token{}, errNeedMore
			}
		}
		if t.pos+1 < len(t.data) && isDigit(t.data[t.pos+1]) {
			t.advance(1)
			for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
				t.advance(1)
			}
		}
	}
	if t.pos >= len(t.data) && !atEOF {
		return Token{}, errNeedMore
	}
	numText := string(t.data[start:t.pos])
	value, _ := strconv.ParseFloat(numText, 64)

	// Percentage
	if t.pos < len(t.data) && t.data[t.pos] == '%' {
		t.advance(1)
		return Token{Type: PERCENTAGE, Text: numText + "%", Number: value, HasNumber: true, Line: line, Col: col}, OK
	}

	// Dimension: number immediately followed by an identifier (the unit).
	if t.pos < len(t.data) && (isNameStart(t.data[t.pos]) || t.data[t.pos] == '\\') {
		unit, err := t.readName(atEOF)
		if err == errNeedMore {
			t.restore(save)
			return Token{}, errNeedMore
		}
		return Token{Type: DIMENSION, Text: numText + unit, Unit: unit, Number: value, HasNumber: true, Line: line, Col: col}, OK
	}
	if t.pos >= len(t.data) && !atEOF {
		return Token{}, errNeedMore
	}

	return Token{Type: NUMBER, Text: numText, Number: value, HasNumber: true, Line: line, Col: col}, OK
}

func (t *Tokenizer) internToken(tok *Token) {
	if tok.Type.internsText() {
		tok.Interned = t.pool.Intern(tok.Text)
	}
	if tok.Type.internsLower() {
		tok.Lower = t.pool.InternLower(tok.Text)
	}
}
