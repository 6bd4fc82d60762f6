package parser

// RefKind distinguishes the two kinds of symbols an alternative can refer to.
type RefKind string

const (
	RefNonterminal = RefKind("nonterminal")
	RefToken       = RefKind("token")
)

// Ref is a reference to a grammar symbol. Token names start with an upper-case
// letter in the source, nonterminal names with a lower-case letter, so the two
// namespaces never collide.
type Ref struct {
	Pos  Position
	Kind RefKind
	Name string
}

// Binding binds the value produced by a symbol to a local name usable in the
// alternative's action.
type Binding struct {
	Pos   Position
	Local string
	Ref   Ref
}

// Alternative is one right-hand side of a production. An alternative with no
// bindings is the null alternative; it matches without consuming input and its
// action is the produced value.
type Alternative struct {
	Pos      Position
	Bindings []Binding
	Action   string
}

// Production defines a nonterminal. The public production is the grammar's
// entry symbol; the parser accepts several public productions, and the code
// generator then takes the first one as the entry.
type Production struct {
	Pos    Position
	Name   string
	Type   string
	Public bool
	Alts   []Alternative
}

// Fragment is an opaque piece of header text emitted verbatim at the top of
// the generated file.
type Fragment struct {
	Pos  Position
	Text string
}

// TokenDecl declares a token name together with the host-language pattern that
// matches it. The pattern is a Go boolean expression over a variable named tok.
type TokenDecl struct {
	Pos     Position
	Name    string
	Pattern string
}

// Grammar is the parsed grammar description consumed by the code generator.
type Grammar struct {
	Headers     []Fragment
	TokenType   string
	Tokens      []TokenDecl
	Productions []Production
}
