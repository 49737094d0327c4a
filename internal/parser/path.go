package parser

// Path is a compiled JSONPath expression: an ordered program of Tokens.
// It is immutable after Compile and safe to share across concurrent
// selections (spec.md §5).
type Path struct {
	Raw    string
	tokens []Token
}

// Visitor receives one Token at a time, in program order.
type Visitor interface {
	VisitToken(tok *Token)
}

// Visit walks the compiled program, delivering each token to v in order.
func (p *Path) Visit(v Visitor) {
	for i := range p.tokens {
		v.VisitToken(&p.tokens[i])
	}
}

// Tokens exposes the compiled program for introspection and tests.
func (p *Path) Tokens() []Token { return p.tokens }
