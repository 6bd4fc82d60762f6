package codegen

import (
	"sort"

	"github.com/kinoro/llgen/parser"
)

// FirstEntry is one element of a nonterminal's FIRST set: a token that some
// alternative can start with, together with the ordinals of every alternative
// that can start with it. Alts is sorted ascending, so Alts[0] is the
// document-order winner on overlap.
type FirstEntry struct {
	Token string
	Alts  []int
}

// firstItem is a working-set element during resolution. Nonterminal items are
// expanded step by step; token items are fixed points.
type firstItem struct {
	ref  parser.Ref
	alts []int
}

// refLess is the total order over symbol references: nonterminals before
// tokens, then by name. It makes the sort-and-dedup of the working set
// well-defined.
func refLess(a, b parser.Ref) bool {
	if a.Kind != b.Kind {
		return a.Kind == parser.RefNonterminal
	}
	return a.Name < b.Name
}

func refEq(a, b parser.Ref) bool {
	return a.Kind == b.Kind && a.Name == b.Name
}

// genFirst computes the FIRST set of prod: the tokens its alternatives can
// start with, following leading nonterminal references transitively. The
// working set is expanded, sorted, and deduplicated until a step adds nothing
// new; comparing each step's set with the previous one (symbols and their
// alternative ordinals) terminates cycles between nonterminals that reference
// each other in leading position.
func genFirst(idx *symbolIndex, prod *production) ([]FirstEntry, error) {
	var items []firstItem
	for i, alt := range prod.alts {
		if len(alt.Bindings) == 0 {
			continue
		}
		items = append(items, firstItem{
			ref:  alt.Bindings[0].Ref,
			alts: []int{i},
		})
	}
	items = sortAndMergeItems(items)

	for {
		next := make([]firstItem, 0, len(items)*2)
		next = append(next, items...)
		for _, item := range items {
			if item.ref.Kind != parser.RefNonterminal {
				continue
			}
			target, err := idx.productionOf(item.ref.Name)
			if err != nil {
				return nil, err
			}
			for _, alt := range target.alts {
				if len(alt.Bindings) == 0 {
					continue
				}
				next = append(next, firstItem{
					ref:  alt.Bindings[0].Ref,
					alts: item.alts,
				})
			}
		}
		next = sortAndMergeItems(next)
		if itemsEqual(items, next) {
			break
		}
		items = next
	}

	var entries []FirstEntry
	for _, item := range items {
		if item.ref.Kind != parser.RefToken {
			continue
		}
		entries = append(entries, FirstEntry{
			Token: item.ref.Name,
			Alts:  item.alts,
		})
	}
	return entries, nil
}

// sortAndMergeItems sorts the working set by refLess and merges items that
// refer to the same symbol, taking the union of their alternative ordinals.
// The result never aliases the input's alts slices.
func sortAndMergeItems(items []firstItem) []firstItem {
	sorted := make([]firstItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return refLess(sorted[i].ref, sorted[j].ref)
	})

	merged := make([]firstItem, 0, len(sorted))
	for _, item := range sorted {
		if n := len(merged); n > 0 && refEq(merged[n-1].ref, item.ref) {
			merged[n-1].alts = mergeAlts(merged[n-1].alts, item.alts)
			continue
		}
		merged = append(merged, firstItem{
			ref:  item.ref,
			alts: append([]int(nil), item.alts...),
		})
	}
	return merged
}

// mergeAlts unions two ascending ordinal lists into a new ascending list.
func mergeAlts(a, b []int) []int {
	m := make([]int, 0, len(a)+len(b))
	m = append(m, a...)
	m = append(m, b...)
	sort.Ints(m)

	var out []int
	for i, v := range m {
		if i > 0 && v == m[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

func itemsEqual(a, b []firstItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !refEq(a[i].ref, b[i].ref) {
			return false
		}
		if len(a[i].alts) != len(b[i].alts) {
			return false
		}
		for j := range a[i].alts {
			if a[i].alts[j] != b[i].alts[j] {
				return false
			}
		}
	}
	return true
}
