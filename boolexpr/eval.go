package boolexpr

import (
	"fmt"
	"strings"
)

// ExprToTruthTable parses a boolean expression over A1..A6 and evaluates it
// for all 64 input combinations, returning the canonical (unpermuted) 64-bit
// truth table. This is the counterpart of the original's parse_boolexpr.
func ExprToTruthTable(expr string) (uint64, error) {
	n, err := parse(expr)
	if err != nil {
		return 0, err
	}
	var table uint64
	var inputs [6]bool
	for addr := 0; addr < 64; addr++ {
		for i := 0; i < 6; i++ {
			inputs[i] = addr&(1<<i) != 0
		}
		if n.eval(inputs) {
			table |= 1 << uint(addr)
		}
	}
	return table, nil
}

// TruthTableToExpr converts a canonical 64-bit truth table into a boolean
// expression that evaluates to the same table. This is the counterpart of
// the original's lut2bool; it does not attempt to minimise the expression,
// only to produce one that round-trips, matching spec.md §8's "canonical
// expression" invariant rather than a byte-identical source string.
func TruthTableToExpr(table uint64) string {
	if table == 0 {
		return "0"
	}
	if table == ^uint64(0) {
		return "1"
	}

	var minterms []string
	for addr := 0; addr < 64; addr++ {
		if table&(1<<uint(addr)) == 0 {
			continue
		}
		var lits []string
		for i := 0; i < 6; i++ {
			if addr&(1<<i) != 0 {
				lits = append(lits, fmt.Sprintf("A%d", i+1))
			} else {
				lits = append(lits, fmt.Sprintf("!A%d", i+1))
			}
		}
		minterms = append(minterms, strings.Join(lits, "*"))
	}
	return strings.Join(minterms, "+")
}
