package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// pathLexer tokenizes raw JSONPath text. Order matters: longer patterns must
// come before shorter ones that share a prefix (e.g. ".." before ".", ">="
// before ">"), the same rule the DSL lexer in this corpus follows.
var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `-?[0-9]+(?:\.[0-9]+)?`},
	{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "DotDot", Pattern: `\.\.`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Root", Pattern: `\$`},
	{Name: "At", Pattern: `@`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Question", Pattern: `\?`},
	{Name: "OpAnd", Pattern: `&&`},
	{Name: "OpOr", Pattern: `\|\|`},
	{Name: "OpEq", Pattern: `==`},
	{Name: "OpNe", Pattern: `!=`},
	{Name: "OpGe", Pattern: `>=`},
	{Name: "OpLe", Pattern: `<=`},
	{Name: "OpGt", Pattern: `>`},
	{Name: "OpLt", Pattern: `<`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// symbolNames maps a lexer.TokenType back to its rule name, so the parser
// can dispatch on readable names instead of raw integers.
var symbolNames = func() map[lexer.TokenType]string {
	m := make(map[lexer.TokenType]string, 24)
	for name, t := range pathLexer.Symbols() {
		m[t] = name
	}
	return m
}()

// lexStream is a materialized, whitespace-filtered view of a lexer.Lexer,
// giving the recursive-descent parser unlimited lookahead by index.
type lexStream struct {
	toks []lexer.Token
	pos  int
	raw  string
}

func newLexStream(path string) (*lexStream, error) {
	l, err := pathLexer.Lex("", strings.NewReader(path))
	if err != nil {
		return nil, err
	}

	var toks []lexer.Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		if t.Type == lexer.EOF {
			toks = append(toks, t)
			break
		}
		if symbolNames[t.Type] == "Whitespace" {
			continue
		}
		toks = append(toks, t)
	}
	return &lexStream{toks: toks, raw: path}, nil
}

func (s *lexStream) name(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "EOF"
	}
	return symbolNames[t.Type]
}

func (s *lexStream) peek() lexer.Token {
	return s.toks[s.pos]
}

func (s *lexStream) peekIs(name string) bool {
	return s.name(s.peek()) == name
}

func (s *lexStream) next() lexer.Token {
	t := s.toks[s.pos]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return t
}

func (s *lexStream) offset() int {
	return s.peek().Pos.Offset
}

func (s *lexStream) expect(name string) (lexer.Token, error) {
	if !s.peekIs(name) {
		return lexer.Token{}, syntaxErrorf(s.raw, s.offset(), "expected %s, found %s %q", name, s.name(s.peek()), s.peek().Value)
	}
	return s.next(), nil
}
