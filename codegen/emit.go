package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/kinoro/llgen/parser"
)

// The emitter renders the generated translation unit. It is the only part of
// the generator that knows Go syntax; everything before it deals in names and
// sets. All inputs are ordered (document order, FIRST sets sorted by token
// name), so identical grammars produce byte-identical output.

var errorsTmpl = template.Must(template.New("errors").Parse(`type EOFError struct{}

func (e *EOFError) Error() string {
	return "unexpected end of input"
}

type UnexpectedTokenError struct {
	Token {{.TokenType}}
}

func (e *UnexpectedTokenError) Error() string {
	return "unexpected token"
}

type RedundantExpressionError struct {
	Token {{.TokenType}}
}

func (e *RedundantExpressionError) Error() string {
	return "redundant expression"
}`))

var parseTmpl = template.Must(template.New("parse").Parse(`func Parse(tokens []{{.TokenType}}) ({{.EntryType}}, error) {
	ret, pos, err := parseFn_{{.Entry}}(tokens, 0)
	if err != nil {
		return ret, err
	}
	if pos < len(tokens) {
		return ret, &RedundantExpressionError{Token: tokens[pos]}
	}
	return ret, nil
}`))

// Binding calls thread the cursor through numbered locals (pos1, err1, ...) so
// that every statement declares only fresh variables; this keeps the output
// legal Go even when a binding's local is the blank identifier.
var fnTmplFuncs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"cursor": func(i int) string {
		if i == 0 {
			return "pos"
		}
		return fmt.Sprintf("pos%v", i)
	},
}

var fnTmpl = template.Must(template.New("fn").Funcs(fnTmplFuncs).Parse(`func parseFn_{{.Plan.Name}}(tokens []{{.TokenType}}, pos int) ({{.Plan.Type}}, int, error) {
{{- if .Plan.Alts}}
	var ret {{.Plan.Type}}
	const (
{{- range .Plan.Alts}}
		code{{.Tag}} = {{.Tag}}
{{- end}}
		codeOther = -1
	)
	code := codeOther
{{- if .Plan.Arms}}
	if pos < len(tokens) {
		tok := tokens[pos]
		_ = tok
		switch {
{{- range .Plan.Arms}}
		case {{.Pattern}}:
			code = code{{.Tag}}
{{- end}}
		}
	}
{{- end}}
	switch code {
{{- range .Plan.Alts}}
	case code{{.Tag}}:
{{- range $i, $b := .Bindings}}
		{{$b.Local}}, {{cursor (inc $i)}}, err{{inc $i}} := {{if $b.IsToken}}parseToken_{{$b.Callee}}{{else}}parseFn_{{$b.Callee}}{{end}}(tokens, {{cursor $i}})
		if err{{inc $i}} != nil {
			return ret, {{cursor (inc $i)}}, err{{inc $i}}
		}
{{- if ne $b.Local "_"}}
		_ = {{$b.Local}}
{{- end}}
{{- end}}
		return {{.Action}}, {{cursor (len .Bindings)}}, nil
{{- end}}
	}
{{- if .Plan.Nullable}}
	return {{.Plan.NullAction}}, pos, nil
{{- else}}
	if pos >= len(tokens) {
		return ret, pos, &EOFError{}
	}
	return ret, pos, &UnexpectedTokenError{Token: tokens[pos]}
{{- end}}
}
{{- else}}
	return {{.Plan.NullAction}}, pos, nil
}
{{- end}}`))

var matcherTmpl = template.Must(template.New("matcher").Parse(`func parseToken_{{.Name}}(tokens []{{.TokenType}}, pos int) ({{.TokenType}}, int, error) {
	if pos >= len(tokens) {
		var zero {{.TokenType}}
		return zero, pos, &EOFError{}
	}
	tok := tokens[pos]
	if {{.Pattern}} {
		return tok, pos + 1, nil
	}
	return tok, pos, &UnexpectedTokenError{Token: tok}
}`))

// emit renders the whole output file: headers verbatim, the error prelude, the
// entry procedure, one procedure per nonterminal in document order, and one
// matcher per declared token in declaration order.
func emit(gram *parser.Grammar, idx *symbolIndex, plans []*fnPlan) (string, error) {
	entryProd, err := idx.productionOf(idx.entrySymbol())
	if err != nil {
		return "", err
	}

	var chunks []string

	if len(gram.Headers) > 0 {
		var headers []string
		for _, frag := range gram.Headers {
			headers = append(headers, frag.Text)
		}
		chunks = append(chunks, strings.Join(headers, "\n"))
	}

	chunk, err := render(errorsTmpl, map[string]string{
		"TokenType": gram.TokenType,
	})
	if err != nil {
		return "", err
	}
	chunks = append(chunks, chunk)

	chunk, err = render(parseTmpl, map[string]string{
		"TokenType": gram.TokenType,
		"EntryType": entryProd.typ,
		"Entry":     idx.entrySymbol(),
	})
	if err != nil {
		return "", err
	}
	chunks = append(chunks, chunk)

	for _, plan := range plans {
		chunk, err := render(fnTmpl, map[string]interface{}{
			"TokenType": gram.TokenType,
			"Plan":      plan,
		})
		if err != nil {
			return "", err
		}
		chunks = append(chunks, chunk)
	}

	declared := map[string]bool{}
	for _, decl := range gram.Tokens {
		if declared[decl.Name] {
			continue
		}
		declared[decl.Name] = true
		pat, err := idx.tokenTypeOf(decl.Name)
		if err != nil {
			return "", err
		}
		chunk, err := render(matcherTmpl, map[string]string{
			"TokenType": gram.TokenType,
			"Name":      decl.Name,
			"Pattern":   pat,
		})
		if err != nil {
			return "", err
		}
		chunks = append(chunks, chunk)
	}

	return strings.Join(chunks, "\n\n") + "\n", nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, data)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
