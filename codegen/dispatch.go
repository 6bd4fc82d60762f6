package codegen

import (
	"github.com/kinoro/llgen/parser"
)

// dispatchArm maps one lookahead token to the tag of the alternative the
// emitted procedure should take. Tag is the ordinal of the first alternative
// in document order that can start with Token.
type dispatchArm struct {
	Token   string
	Pattern string
	Tag     int
}

// bindingPlan is one call inside an alternative body: match a token or invoke
// another nonterminal procedure, binding the result to Local.
type bindingPlan struct {
	Local   string
	IsToken bool
	Callee  string
}

// altPlan is one non-null alternative: its tag, its calls in source order, and
// the verbatim action text evaluated after the calls.
type altPlan struct {
	Tag      int
	Bindings []bindingPlan
	Action   string
}

// fnPlan is everything the emitter needs for one nonterminal procedure.
type fnPlan struct {
	Name       string
	Type       string
	Arms       []dispatchArm
	Alts       []altPlan
	Nullable   bool
	NullAction string
}

// genFnPlan assembles the dispatch plan for prod: the tag per non-null
// alternative, the lookahead arms from the FIRST set, the per-alternative call
// sequences, and the null fallback. If several alternatives are null, the last
// one wins.
func genFnPlan(idx *symbolIndex, prod *production) (*fnPlan, error) {
	plan := &fnPlan{
		Name: prod.name,
		Type: prod.typ,
	}

	for i, alt := range prod.alts {
		if len(alt.Bindings) == 0 {
			plan.Nullable = true
			plan.NullAction = alt.Action
			continue
		}
		ap := altPlan{
			Tag:    i,
			Action: alt.Action,
		}
		for _, binding := range alt.Bindings {
			switch binding.Ref.Kind {
			case parser.RefToken:
				if _, err := idx.tokenTypeOf(binding.Ref.Name); err != nil {
					return nil, err
				}
				ap.Bindings = append(ap.Bindings, bindingPlan{
					Local:   binding.Local,
					IsToken: true,
					Callee:  binding.Ref.Name,
				})
			default:
				if _, err := idx.productionOf(binding.Ref.Name); err != nil {
					return nil, err
				}
				ap.Bindings = append(ap.Bindings, bindingPlan{
					Local:  binding.Local,
					Callee: binding.Ref.Name,
				})
			}
		}
		plan.Alts = append(plan.Alts, ap)
	}

	first, err := genFirst(idx, prod)
	if err != nil {
		return nil, err
	}
	for _, entry := range first {
		pat, err := idx.tokenTypeOf(entry.Token)
		if err != nil {
			return nil, err
		}
		plan.Arms = append(plan.Arms, dispatchArm{
			Token:   entry.Token,
			Pattern: pat,
			Tag:     entry.Alts[0],
		})
	}

	return plan, nil
}
