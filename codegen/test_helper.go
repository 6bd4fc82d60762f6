package codegen

import (
	"strings"
	"testing"

	"github.com/kinoro/llgen/parser"
	"github.com/stretchr/testify/require"
)

func genTestGrammar(t *testing.T, src string) *parser.Grammar {
	t.Helper()

	psr, err := parser.NewParser(strings.NewReader(src))
	require.NoError(t, err)
	gram, err := psr.Parse()
	require.NoError(t, err)

	return gram
}

func genTestIndex(t *testing.T, src string) *symbolIndex {
	t.Helper()

	idx, err := newSymbolIndex(genTestGrammar(t, src))
	require.NoError(t, err)

	return idx
}

func genTestPlans(t *testing.T, src string) map[string]*fnPlan {
	t.Helper()

	gram := genTestGrammar(t, src)
	idx, err := newSymbolIndex(gram)
	require.NoError(t, err)

	plans := map[string]*fnPlan{}
	for _, prod := range gram.Productions {
		if _, ok := plans[prod.Name]; ok {
			continue
		}
		plan, err := genFnPlan(idx, idx.prods[prod.Name])
		require.NoError(t, err)
		plans[prod.Name] = plan
	}

	return plans
}
