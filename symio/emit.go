package symio

import (
	"fmt"
	"io"
)

// Emission is the minimal shape emit.go needs from a search.Record,
// kept independent of the search package so symio has no import-cycle
// risk and can be exercised with plain fixtures in its own tests.
type Emission struct {
	VarLegend []string
	ValLegend []string
	Aut       int
}

// WriteTextual implements the textual output format of spec §6: one
// line per emission, the |Aut| cap bracketed, followed by comma
// separated "var -> val" pairs.
func WriteTextual(w io.Writer, emissions []Emission) error {
	for _, e := range emissions {
		if _, err := fmt.Fprintf(w, "[%d] ", e.Aut); err != nil {
			return err
		}
		for i := range e.VarLegend {
			if i > 0 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s -> %s", e.VarLegend[i], e.ValLegend[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteIncrementalCube implements the incremental cube format of
// spec §6: a headerless "p inccnf" line, then one "a <lits> 0" line
// per emission.
func WriteIncrementalCube(w io.Writer, emissions [][]int) error {
	if _, err := fmt.Fprintln(w, "p inccnf"); err != nil {
		return err
	}
	for _, lits := range emissions {
		if _, err := fmt.Fprint(w, "a"); err != nil {
			return err
		}
		for _, lit := range lits {
			if _, err := fmt.Fprintf(w, " %d", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, " 0"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCNFReemission implements the CNF re-emission format of spec §6:
// the original header with its variable and clause counts increased,
// followed by the original clauses, followed by two 2-clauses per
// emission and one final clause. Emission i gets a new branch variable
// b_i = base.NumVars+1+i.
//
// branchLiterals[i] holds the two signed assignment literals of
// emission i; each is written as the 2-clause (-b_i lit), encoding
// "branch selected implies assignment". finalLiterals[i] is the literal
// that asserts b_i; the trailing clause is the disjunction of all of
// them — together they reproduce scenario 3's "9 variables, 10 clauses"
// shape for a 6-variable base CNF with one 2-variable prefix emitted
// three times.
func WriteCNFReemission(w io.Writer, base *CNF, branchLiterals [][2]int, finalLiterals []int) error {
	if len(branchLiterals) != len(finalLiterals) {
		return fmt.Errorf("symio: branchLiterals and finalLiterals length mismatch: %d vs %d", len(branchLiterals), len(finalLiterals))
	}
	newVars := base.NumVars + len(branchLiterals)
	newClauses := base.NumClauses + 2*len(branchLiterals) + 1

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", newVars, newClauses); err != nil {
		return err
	}
	for _, clause := range base.Clauses {
		if err := writeClause(w, clause); err != nil {
			return err
		}
	}
	for i, lits := range branchLiterals {
		b := base.NumVars + 1 + i
		if err := writeClause(w, []int{-b, lits[0]}); err != nil {
			return err
		}
		if err := writeClause(w, []int{-b, lits[1]}); err != nil {
			return err
		}
	}
	return writeClause(w, finalLiterals)
}

func writeClause(w io.Writer, lits []int) error {
	for _, lit := range lits {
		if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "0")
	return err
}
