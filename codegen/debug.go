package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// PrintFnPlans writes the computed dispatch tables to w as a table of
// nonterminal, lookahead token, and chosen alternative. Nonterminals with an
// empty FIRST set get a single row so they still show up.
func PrintFnPlans(w io.Writer, plans []*fnPlan) {
	if w == nil {
		return
	}

	data := [][]string{
		{"nonterminal", "lookahead", "alternative"},
	}
	for _, plan := range plans {
		if len(plan.Arms) == 0 {
			fallback := "(error)"
			if plan.Nullable {
				fallback = "(null)"
			}
			data = append(data, []string{plan.Name, "-", fallback})
			continue
		}
		for _, arm := range plan.Arms {
			data = append(data, []string{plan.Name, arm.Token, strconv.Itoa(arm.Tag)})
		}
	}

	tbl := rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
	fmt.Fprintln(w, tbl)
}

// PrintFirstSets writes the FIRST set of every nonterminal to w, one line per
// nonterminal, listing the token names only; the alternatives each token comes
// from are not shown.
func PrintFirstSets(w io.Writer, plans []*fnPlan) {
	if w == nil {
		return
	}

	for _, plan := range plans {
		var tokens []string
		for _, arm := range plan.Arms {
			tokens = append(tokens, arm.Token)
		}
		fmt.Fprintf(w, "%v: {%v}\n", plan.Name, strings.Join(tokens, ", "))
	}
}
