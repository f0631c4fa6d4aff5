// Package selector implements the orbit selector of spec §4.4: the
// heuristic that picks which variable vertex extends the prefix next.
// Its tie-break rule is observable — it fixes the emission order of
// the whole engine — so every step below is implemented literally
// rather than approximated.
//
// The scanning/tie-break shape is grounded in the teacher's greedy
// selection style (prim_kruskal's lightest-fixed-point picking and
// algorithms/dfs.go's linear neighbor scan), adapted from "cheapest
// edge" to "largest good orbit".
package selector
