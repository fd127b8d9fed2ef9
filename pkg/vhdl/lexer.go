package vhdl

import "strings"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenInteger
	tokenReal
	tokenChar
	tokenString
	tokenBitString
	tokenSymbol
	tokenComment
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) end() int { return t.offset + len(t.text) }

// is reports whether the token is the given symbol or, case-insensitively,
// the given keyword.
func (t token) is(text string) bool {
	switch t.kind {
	case tokenSymbol:
		return t.text == text
	case tokenIdent:
		return strings.EqualFold(t.text, text)
	}
	return false
}

var compoundSymbols = []string{"<=", ":=", "=>", "/=", ">=", "**"}

const singleSymbols = "();:,.=<>+-*/&|"

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++
		case c == '-' && i+1 < len(input) && input[i+1] == '-':
			start := i
			for i < len(input) && input[i] != '\n' {
				i++
			}
			text := strings.TrimRight(input[start:i], " \t\r")
			tokens = append(tokens, token{kind: tokenComment, text: text, offset: start})
		case isLetter(c):
			start := i
			if i+1 < len(input) && input[i+1] == '"' && strings.ContainsRune("bBoOxX", rune(c)) {
				end := strings.IndexByte(input[i+2:], '"')
				if end < 0 {
					return nil, syntaxErrorf(input, start, "unterminated bit string literal")
				}
				i += end + 3
				tokens = append(tokens, token{kind: tokenBitString, text: input[start:i], offset: start})
				continue
			}
			for i < len(input) && (isLetter(input[i]) || isDigit(input[i]) || input[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: input[start:i], offset: start})
		case isDigit(c):
			start := i
			kind := tokenInteger
			for i < len(input) && (isDigit(input[i]) || input[i] == '_') {
				i++
			}
			if i+1 < len(input) && input[i] == '.' && isDigit(input[i+1]) {
				kind = tokenReal
				i++
				for i < len(input) && (isDigit(input[i]) || input[i] == '_') {
					i++
				}
			}
			tokens = append(tokens, token{kind: kind, text: input[start:i], offset: start})
		case c == '\'':
			if i+2 < len(input) && input[i+2] == '\'' {
				tokens = append(tokens, token{kind: tokenChar, text: input[i : i+3], offset: i})
				i += 3
				continue
			}
			return nil, syntaxErrorf(input, i, "unexpected tick")
		case c == '"':
			end := strings.IndexByte(input[i+1:], '"')
			if end < 0 {
				return nil, syntaxErrorf(input, i, "unterminated string literal")
			}
			tokens = append(tokens, token{kind: tokenString, text: input[i : i+end+2], offset: i})
			i += end + 2
		default:
			matched := false
			for _, sym := range compoundSymbols {
				if strings.HasPrefix(input[i:], sym) {
					tokens = append(tokens, token{kind: tokenSymbol, text: sym, offset: i})
					i += len(sym)
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			if strings.IndexByte(singleSymbols, c) < 0 {
				return nil, syntaxErrorf(input, i, "unexpected character %q", c)
			}
			tokens = append(tokens, token{kind: tokenSymbol, text: string(c), offset: i})
			i++
		}
	}
	return append(tokens, token{kind: tokenEOF, offset: len(input)}), nil
}

// parser is a cursor over the tokens of a single fragment. Comments are
// only consumed by block; any other comment the cursor steps over is
// recorded in stray and reported by expectEOF.
type parser struct {
	input  string
	tokens []token
	pos    int
	stray  int
}

func newParser(input string) (*parser, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return &parser{input: input, tokens: tokens, stray: -1}, nil
}

func (p *parser) skipComments() {
	for p.tokens[p.pos].kind == tokenComment {
		if p.stray < 0 {
			p.stray = p.tokens[p.pos].offset
		}
		p.pos++
	}
}

func (p *parser) peek() token {
	p.skipComments()
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) token {
	p.skipComments()
	i := p.pos
	for n > 0 && p.tokens[i].kind != tokenEOF {
		i++
		if p.tokens[i].kind != tokenComment {
			n--
		}
	}
	return p.tokens[i]
}

func (p *parser) next() token {
	t := p.peek()
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

// comment consumes a comment at the cursor. It is inline when it shares a
// line with the token before it.
func (p *parser) comment() (Comment, bool) {
	t := p.tokens[p.pos]
	if t.kind != tokenComment {
		return Comment{}, false
	}
	inline := p.pos > 0 && !strings.Contains(p.input[p.tokens[p.pos-1].end():t.offset], "\n")
	p.pos++
	return Comment{Text: t.text, Inline: inline}, true
}

func (p *parser) accept(text string) bool {
	if p.peek().is(text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(text string) error {
	if !p.accept(text) {
		return p.errorf("expected %q", text)
	}
	return nil
}

func (p *parser) expectEOF() error {
	if p.peek().kind != tokenEOF {
		return p.errorf("unexpected trailing input")
	}
	if p.stray >= 0 {
		return syntaxErrorf(p.input, p.stray, "comments are only allowed between statements and declarations")
	}
	return nil
}

func (p *parser) identifier() (VariableName, error) {
	t := p.peek()
	if t.kind != tokenIdent {
		return "", p.errorf("expected identifier")
	}
	name, err := ParseVariableName(t.text)
	if err != nil {
		return "", syntaxErrorf(p.input, t.offset, "invalid identifier %q", t.text)
	}
	p.pos++
	return name, nil
}

func (p *parser) errorf(format string, args ...any) error {
	t := p.peek()
	found := t.text
	if t.kind == tokenEOF {
		found = "end of input"
	}
	return syntaxErrorf(p.input, t.offset, format+" (found %s)", append(args, found)...)
}

// Declaration is one ';'-terminated declaration of a text block with the
// comments written around it.
type Declaration struct {
	Text   string
	Trivia Trivia
}

// SplitDeclarations breaks a text block into ';'-terminated declarations,
// dropping blank fragments. A missing final semicolon is supplied. Comments
// above or inside a declaration lead it; a comment after the semicolon on the
// same line trails it, as do comments below the last declaration. A block
// holding comments but no declaration is an error.
func SplitDeclarations(text string) ([]Declaration, error) {
	var (
		decls   []Declaration
		current strings.Builder
		leading []string
		closed  = -1
		quoted  bool
		first   = -1
	)
	flush := func() {
		part := strings.TrimSpace(current.String())
		current.Reset()
		if part == "" {
			return
		}
		decls = append(decls, Declaration{Text: part + ";", Trivia: Trivia{Leading: strings.Join(leading, "\n")}})
		leading = nil
		closed = len(decls) - 1
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			quoted = !quoted
			current.WriteByte(c)
		case !quoted && c == '-' && i+1 < len(text) && text[i+1] == '-':
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				end = len(text) - i
			}
			comment := strings.TrimRight(text[i:i+end], " \t\r")
			if first < 0 {
				first = i
			}
			i += end - 1
			if closed >= 0 && strings.TrimSpace(current.String()) == "" {
				decls[closed].Trivia.Trailing = comment
			} else {
				leading = append(leading, comment)
			}
		case !quoted && c == ';':
			flush()
		case c == '\n':
			closed = -1
			current.WriteByte(c)
		default:
			current.WriteByte(c)
		}
	}
	flush()
	if len(leading) > 0 {
		if len(decls) == 0 {
			return nil, syntaxErrorf(text, first, "comment does not belong to a declaration")
		}
		last := &decls[len(decls)-1].Trivia
		last.Trailing += "\n" + strings.Join(leading, "\n")
	}
	return decls, nil
}
