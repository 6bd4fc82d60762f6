// Package codegen turns a parsed grammar description into the source of a
// predictive recursive-descent parser with one token of lookahead. The
// pipeline is index, FIRST-set resolution, dispatch synthesis, emission; the
// whole thing is an in-memory transformation with no I/O.
package codegen

import (
	"github.com/kinoro/llgen/log"
	"github.com/kinoro/llgen/parser"
)

// Generate produces the generated parser source for gram. On a configuration
// error (no pub production, unresolved token or nonterminal reference) it
// returns the error and no output.
func Generate(gram *parser.Grammar) (string, error) {
	idx, err := newSymbolIndex(gram)
	if err != nil {
		return "", err
	}

	var plans []*fnPlan
	planned := map[string]bool{}
	for _, prod := range gram.Productions {
		if planned[prod.Name] {
			continue
		}
		planned[prod.Name] = true
		plan, err := genFnPlan(idx, idx.prods[prod.Name])
		if err != nil {
			return "", err
		}
		plans = append(plans, plan)
	}

	log.Log("--- FIRST sets start")
	PrintFirstSets(log.GetWriter(), plans)
	log.Log("--- FIRST sets end")
	log.Log("--- Dispatch tables start")
	PrintFnPlans(log.GetWriter(), plans)
	log.Log("--- Dispatch tables end")

	return emit(gram, idx, plans)
}
