package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calcSrc = `
"package calc" extern;
"import \"strconv\"" extern;

grammar Token {
	Num: "tok.Kind == KindNum";
	Plus: "tok.Kind == KindPlus";
}

pub expr: "int" = {
	t: term, r: rest => "t + r";
};

rest: "int" = {
	p: Plus, t: term, r: rest => "t + r";
	=> "0";
};

term: "int" = {
	n: Num => "n.Val";
};
`

func TestGenerate_Golden(t *testing.T) {
	src := `
"package calc" extern;

grammar Token {
	Num: "tok.Kind == KindNum";
}

pub sum: "int" = {
	n: Num => "n.Val";
};
`
	want := `package calc

type EOFError struct{}

func (e *EOFError) Error() string {
	return "unexpected end of input"
}

type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return "unexpected token"
}

type RedundantExpressionError struct {
	Token Token
}

func (e *RedundantExpressionError) Error() string {
	return "redundant expression"
}

func Parse(tokens []Token) (int, error) {
	ret, pos, err := parseFn_sum(tokens, 0)
	if err != nil {
		return ret, err
	}
	if pos < len(tokens) {
		return ret, &RedundantExpressionError{Token: tokens[pos]}
	}
	return ret, nil
}

func parseFn_sum(tokens []Token, pos int) (int, int, error) {
	var ret int
	const (
		code0 = 0
		codeOther = -1
	)
	code := codeOther
	if pos < len(tokens) {
		tok := tokens[pos]
		_ = tok
		switch {
		case tok.Kind == KindNum:
			code = code0
		}
	}
	switch code {
	case code0:
		n, pos1, err1 := parseToken_Num(tokens, pos)
		if err1 != nil {
			return ret, pos1, err1
		}
		_ = n
		return n.Val, pos1, nil
	}
	if pos >= len(tokens) {
		return ret, pos, &EOFError{}
	}
	return ret, pos, &UnexpectedTokenError{Token: tokens[pos]}
}

func parseToken_Num(tokens []Token, pos int) (Token, int, error) {
	if pos >= len(tokens) {
		var zero Token
		return zero, pos, &EOFError{}
	}
	tok := tokens[pos]
	if tok.Kind == KindNum {
		return tok, pos + 1, nil
	}
	return tok, pos, &UnexpectedTokenError{Token: tok}
}
`

	got, err := Generate(genTestGrammar(t, src))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(genTestGrammar(t, calcSrc))
	require.NoError(t, err)
	second, err := Generate(genTestGrammar(t, calcSrc))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_SectionOrder(t *testing.T) {
	out, err := Generate(genTestGrammar(t, calcSrc))
	require.NoError(t, err)

	sections := []string{
		"package calc",
		`import "strconv"`,
		"type EOFError struct{}",
		"func Parse(tokens []Token) (int, error) {",
		"func parseFn_expr(tokens []Token, pos int) (int, int, error) {",
		"func parseFn_rest(tokens []Token, pos int) (int, int, error) {",
		"func parseFn_term(tokens []Token, pos int) (int, int, error) {",
		"func parseToken_Num(tokens []Token, pos int) (Token, int, error) {",
		"func parseToken_Plus(tokens []Token, pos int) (Token, int, error) {",
	}
	last := -1
	for _, section := range sections {
		i := strings.Index(out, section)
		require.GreaterOrEqual(t, i, 0, "missing section: %v", section)
		assert.Greater(t, i, last, "section out of order: %v", section)
		last = i
	}
	assert.True(t, strings.HasPrefix(out, "package calc\n"))
}

func TestGenerate_NullableFallback(t *testing.T) {
	out, err := Generate(genTestGrammar(t, calcSrc))
	require.NoError(t, err)

	// The null alternative of rest becomes the fallback return, not an error.
	restBody := out[strings.Index(out, "func parseFn_rest"):]
	restBody = restBody[:strings.Index(restBody, "\nfunc ")]
	assert.Contains(t, restBody, "return 0, pos, nil")
	assert.NotContains(t, restBody, "EOFError")
	assert.NotContains(t, restBody, "UnexpectedTokenError")
}

func TestGenerate_OnlyNullAlternative(t *testing.T) {
	src := `
grammar Token {
	Num: "tok.Kind == KindNum";
}

pub unit: "int" = {
	=> "0";
};
`
	out, err := Generate(genTestGrammar(t, src))
	require.NoError(t, err)

	assert.Contains(t, out, `func parseFn_unit(tokens []Token, pos int) (int, int, error) {
	return 0, pos, nil
}`)
	unitBody := out[strings.Index(out, "func parseFn_unit"):]
	unitBody = unitBody[:strings.Index(unitBody, "\nfunc ")]
	assert.NotContains(t, unitBody, "const (")
}

func TestGenerate_ActionsVerbatim(t *testing.T) {
	src := `
grammar Token {
	Str: "tok.Kind == KindStr";
}

pub s: "int" = {
	v: Str => "parse_int(v.Text)";
};
`
	out, err := Generate(genTestGrammar(t, src))
	require.NoError(t, err)
	assert.Contains(t, out, "return parse_int(v.Text), pos1, nil")
}

func TestGenerate_BlankLocalIsNotDiscarded(t *testing.T) {
	src := `
grammar Token {
	Num: "tok.Kind == KindNum";
	Semi: "tok.Kind == KindSemi";
}

pub s: "int" = {
	n: Num, _: Semi => "n.Val";
};
`
	out, err := Generate(genTestGrammar(t, src))
	require.NoError(t, err)
	assert.Contains(t, out, "_, pos2, err2 := parseToken_Semi(tokens, pos1)")
	assert.NotContains(t, out, "_ = _")
}

func TestGenerate_MissingEntrySymbol(t *testing.T) {
	src := `
grammar Token {
	Num: "tok.Kind == KindNum";
}

s: "int" = {
	n: Num => "n.Val";
};
`
	out, err := Generate(genTestGrammar(t, src))
	var missingErr *MissingEntrySymbolError
	require.ErrorAs(t, err, &missingErr)
	assert.Empty(t, out)
}

func TestGenerate_UnknownReferences(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		check   func(t *testing.T, err error)
	}{
		{
			caption: "a binding naming an undeclared token",
			src: `
grammar Token {
	Num: "tok.Kind == KindNum";
}

pub s: "int" = {
	n: Nope => "n.Val";
};
`,
			check: func(t *testing.T, err error) {
				var tokErr *UnknownTokenError
				require.ErrorAs(t, err, &tokErr)
				assert.Equal(t, "Nope", tokErr.Name)
			},
		},
		{
			caption: "a binding naming an undefined nonterminal",
			src: `
grammar Token {
	Num: "tok.Kind == KindNum";
}

pub s: "int" = {
	z: zzz => "z";
};
`,
			check: func(t *testing.T, err error) {
				var ntErr *UnknownNonterminalError
				require.ErrorAs(t, err, &ntErr)
				assert.Equal(t, "zzz", ntErr.Name)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			out, err := Generate(genTestGrammar(t, tt.src))
			require.Error(t, err)
			assert.Empty(t, out)
			tt.check(t, err)
		})
	}
}

func TestGenerate_DuplicateTokenDeclsEmitOneMatcher(t *testing.T) {
	src := `
grammar Token {
	Num: "first";
	Num: "second";
}

pub s: "int" = {
	n: Num => "n.Val";
};
`
	out, err := Generate(genTestGrammar(t, src))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "func parseToken_Num("))
	assert.Contains(t, out, "if second {")
	assert.NotContains(t, out, "if first {")
}
