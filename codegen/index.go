package codegen

import (
	"github.com/kinoro/llgen/parser"
)

type production struct {
	name string
	typ  string
	alts []parser.Alternative
}

// symbolIndex holds the two lookups the generator works from: token name to
// pattern spelling and nonterminal name to production. Duplicate declarations
// are not rejected; the later one wins.
type symbolIndex struct {
	tokenPats map[string]string
	prods     map[string]*production
	entry     string
}

func newSymbolIndex(gram *parser.Grammar) (*symbolIndex, error) {
	idx := &symbolIndex{
		tokenPats: map[string]string{},
		prods:     map[string]*production{},
	}

	for _, decl := range gram.Tokens {
		idx.tokenPats[decl.Name] = decl.Pattern
	}

	entryFound := false
	for _, prod := range gram.Productions {
		idx.prods[prod.Name] = &production{
			name: prod.Name,
			typ:  prod.Type,
			alts: prod.Alts,
		}
		if prod.Public && !entryFound {
			idx.entry = prod.Name
			entryFound = true
		}
	}
	if !entryFound {
		return nil, &MissingEntrySymbolError{}
	}

	return idx, nil
}

func (idx *symbolIndex) tokenTypeOf(name string) (string, error) {
	pat, ok := idx.tokenPats[name]
	if !ok {
		return "", &UnknownTokenError{Name: name}
	}
	return pat, nil
}

func (idx *symbolIndex) productionOf(name string) (*production, error) {
	prod, ok := idx.prods[name]
	if !ok {
		return nil, &UnknownNonterminalError{Name: name}
	}
	return prod, nil
}

func (idx *symbolIndex) entrySymbol() string {
	return idx.entry
}
