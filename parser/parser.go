package parser

import (
	"fmt"
	"io"
)

// The grammar definition language:
//
//	file        = { header } setting { production } EOF
//	header      = string "extern" ";"
//	setting     = "grammar" (token-id | string) "{" { tokendecl } "}" [";"]
//	tokendecl   = token-id ":" string ";"
//	production  = ["pub"] id ":" string "=" "{" alternative { alternative } "}" [";"]
//	alternative = [ binding { "," binding } ] "=>" string ";"
//	binding     = id ":" (token-id | id)
//
// Identifiers starting with an upper-case letter name tokens, identifiers
// starting with a lower-case letter name nonterminals and binding locals.

type SyntaxError struct {
	pos     Position
	message string
}

func newSyntaxError(pos Position, message string) *SyntaxError {
	return &SyntaxError{
		pos:     pos,
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s (%v, %v)", e.message, e.pos.Line, e.pos.Column)
}

// Position reports where in the source the error was detected.
func (e *SyntaxError) Position() Position {
	return e.pos
}

type Parser interface {
	Parse() (*Grammar, error)
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func NewParser(src io.Reader) (Parser, error) {
	return &parser{
		lex:       newLexer(src),
		peekedTok: nil,
		lastTok:   nil,
	}, nil
}

func (p *parser) Parse() (gram *Grammar, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()

	return p.parseFile(), nil
}

func (p *parser) parseFile() *Grammar {
	gram := &Grammar{}

	for {
		if !p.consume(tokenKindString) {
			break
		}
		frag := Fragment{
			Pos:  p.lastTok.pos,
			Text: p.lastTok.text,
		}
		p.expect(tokenKindKWExtern)
		p.expect(tokenKindSemicolon)
		gram.Headers = append(gram.Headers, frag)
	}

	p.parseSetting(gram)

	p.parseProduction(gram)
	for {
		if p.consume(tokenKindEOF) {
			break
		}
		p.parseProduction(gram)
	}

	return gram
}

func (p *parser) parseSetting(gram *Grammar) {
	p.expect(tokenKindKWGrammar)

	if p.consume(tokenKindTokenID) || p.consume(tokenKindString) {
		gram.TokenType = p.lastTok.text
	} else {
		tok := p.peek()
		raiseSyntaxError(tok.pos, fmt.Sprintf("unexpected token; expected: the main token type, actual: %v", tok.kind))
	}

	p.expect(tokenKindLBrace)
	for {
		if p.consume(tokenKindRBrace) {
			break
		}
		declTok := p.expect(tokenKindTokenID)
		decl := TokenDecl{
			Pos:  declTok.pos,
			Name: declTok.text,
		}
		p.expect(tokenKindColon)
		decl.Pattern = p.expect(tokenKindString).text
		p.expect(tokenKindSemicolon)
		gram.Tokens = append(gram.Tokens, decl)
	}
	p.consume(tokenKindSemicolon)
}

func (p *parser) parseProduction(gram *Grammar) {
	prod := Production{}

	if p.consume(tokenKindKWPub) {
		prod.Public = true
		prod.Pos = p.lastTok.pos
		nameTok := p.expect(tokenKindID)
		prod.Name = nameTok.text
	} else {
		nameTok := p.expect(tokenKindID)
		prod.Pos = nameTok.pos
		prod.Name = nameTok.text
	}

	p.expect(tokenKindColon)
	prod.Type = p.expect(tokenKindString).text
	p.expect(tokenKindEq)
	p.expect(tokenKindLBrace)
	for {
		if p.consume(tokenKindRBrace) {
			break
		}
		prod.Alts = append(prod.Alts, p.parseAlternative())
	}
	if len(prod.Alts) == 0 {
		raiseSyntaxError(prod.Pos, fmt.Sprintf("production %v has no alternatives", prod.Name))
	}
	p.consume(tokenKindSemicolon)

	gram.Productions = append(gram.Productions, prod)
}

func (p *parser) parseAlternative() Alternative {
	alt := Alternative{}

	if p.consume(tokenKindID) {
		alt.Pos = p.lastTok.pos
		alt.Bindings = append(alt.Bindings, p.parseBindingTail())
		for {
			if !p.consume(tokenKindComma) {
				break
			}
			p.expect(tokenKindID)
			alt.Bindings = append(alt.Bindings, p.parseBindingTail())
		}
		p.expect(tokenKindArrow)
	} else {
		arrowTok := p.expect(tokenKindArrow)
		alt.Pos = arrowTok.pos
	}

	alt.Action = p.expect(tokenKindString).text
	p.expect(tokenKindSemicolon)

	return alt
}

// parseBindingTail parses the remainder of a binding whose local name has
// already been consumed.
func (p *parser) parseBindingTail() Binding {
	localTok := p.lastTok
	binding := Binding{
		Pos:   localTok.pos,
		Local: localTok.text,
	}

	p.expect(tokenKindColon)

	if p.consume(tokenKindTokenID) {
		binding.Ref = Ref{
			Pos:  p.lastTok.pos,
			Kind: RefToken,
			Name: p.lastTok.text,
		}
		return binding
	}
	refTok := p.expect(tokenKindID)
	binding.Ref = Ref{
		Pos:  refTok.pos,
		Kind: RefNonterminal,
		Name: refTok.text,
	}

	return binding
}

func (p *parser) peek() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) expect(expected tokenKind) *token {
	if !p.consume(expected) {
		tok := p.peek()
		errMsg := fmt.Sprintf("unexpected token; expected: %v, actual: %v", expected, tok.kind)
		raiseSyntaxError(tok.pos, errMsg)
	}
	return p.lastTok
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		for {
			tok, err = p.lex.next()
			if err != nil {
				panic(err)
			}
			if tok.kind != tokenKindComment {
				break
			}
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindUnknown {
		errMsg := fmt.Sprintf("unknown token: \"%s\"", tok.text)
		raiseSyntaxError(tok.pos, errMsg)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}

func raiseSyntaxError(pos Position, message string) {
	panic(newSyntaxError(pos, message))
}
