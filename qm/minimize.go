// SPDX-License-Identifier: MIT

package qm

import "github.com/qm-lab/boolmin/tritab"

// Minimize runs the full Quine–McCluskey pipeline over a canonicalized
// table and returns a minimum-cardinality set of prime implicants whose
// disjunction is logically equivalent to the table's defined-true rows.
// Minimize is infallible over a canonicalized table: an empty or
// all-false table simply yields an empty term list.
func Minimize(table tritab.Table) []tritab.Implicant {
	entries := table.Entries()

	// Every row feeding the combine loop is expanded to its literal
	// minterms first, for both One and Dash outputs, so generatePrimes
	// starts from single minterms and reaches every prime through one-bit
	// merges. onMinterms keeps the ON rows at the same per-minterm
	// granularity for the chart (see expandMinterms).
	var onDC, onMinterms []tritab.Implicant
	for _, e := range entries {
		switch e.Output {
		case tritab.One:
			expanded := expandMinterms(e.Input)
			onDC = append(onDC, expanded...)
			onMinterms = append(onMinterms, expanded...)
		case tritab.Dash:
			onDC = append(onDC, expandMinterms(e.Input)...)
		}
	}
	if len(onMinterms) == 0 {
		return nil
	}

	primes := generatePrimes(onDC)
	c := buildChart(onMinterms, primes)
	essentials, residual := extractEssentials(c)
	chosen := minimumCover(residual)

	result := append([]tritab.Implicant{}, essentials...)
	result = append(result, chosen...)
	tritab.SortImplicants(result)
	return result
}

// expandMinterms expands a (possibly Dash-bearing) implicant into the full
// set of literal minterms it covers. A canonicalized Output=One row is not
// always a single minterm: the adaptive enumerator produces partial rows
// whenever a predicate short-circuits before reading every variable, and
// those rows canonicalize to cubes with Dash positions. Coverage for the
// minimizer's chart must be tracked per literal minterm — not per row —
// or a cube that no single prime contains, but that several primes cover
// together, would look uncovered and drop real ON coverage from the result.
func expandMinterms(imp tritab.Implicant) []tritab.Implicant {
	var dashIdx []int
	for i, v := range imp {
		if v == tritab.Dash {
			dashIdx = append(dashIdx, i)
		}
	}
	if len(dashIdx) == 0 {
		return []tritab.Implicant{imp}
	}

	out := make([]tritab.Implicant, 0, 1<<uint(len(dashIdx)))
	total := 1 << uint(len(dashIdx))
	for m := 0; m < total; m++ {
		cp := imp.Clone()
		for j, idx := range dashIdx {
			if (m>>uint(j))&1 == 1 {
				cp[idx] = tritab.One
			} else {
				cp[idx] = tritab.Zero
			}
		}
		out = append(out, cp)
	}
	return out
}
