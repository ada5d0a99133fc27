// SPDX-License-Identifier: MIT

package tritab

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Canonicalize validates raw, interns its values to {Zero, One, Dash},
// removes subsumed rows, fills the remaining 2^N input space with
// don't-care rows, and returns the resulting Table.
//
// Row validation is collected rather than short-circuited: every malformed
// row is reported (via github.com/hashicorp/go-multierror) so a caller
// fixing a hand-built table sees every such problem in one pass. Each
// individual error in the aggregate satisfies errors.Is against
// ErrDimensionMismatch or ErrInvalidValue. Consistency is checked only
// once validation passes, and only the first overlapping pair with
// disagreeing outputs is reported, wrapping ErrInconsistentTable.
//
// Complexity: O(len(raw)^2 + 2^N·len(raw)) row comparisons — the pairwise
// overlap/subsumption check, plus the don't-care fill, which tests each of
// the 2^N minterms against the remaining rows.
func Canonicalize(raw RawTable) (Table, error) {
	if len(raw) == 0 {
		return Table{}, nil
	}

	var (
		errs   *multierror.Error
		n      = -1
		parsed = make([]tableEntry, 0, len(raw))
	)

	for i, row := range raw {
		key := fmt.Sprintf("#%d %v", i, row.Input)

		if n == -1 {
			n = len(row.Input)
		} else if len(row.Input) != n {
			errs = multierror.Append(errs, wrapRow(key, ErrDimensionMismatch))
			continue
		}

		imp, ok := internInput(row.Input)
		if !ok {
			errs = multierror.Append(errs, wrapRow(key, ErrInvalidValue))
			continue
		}

		out, ok := internOutput(row.Output)
		if !ok {
			errs = multierror.Append(errs, wrapRow(key, ErrInvalidValue))
			continue
		}

		parsed = append(parsed, tableEntry{Input: imp, Output: out})
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	deduped, err := removeSubsumed(parsed)
	if err != nil {
		return nil, err
	}

	return fillDontCare(deduped, n), nil
}

// internInput maps synonym integers to tri-values, reporting ok=false for
// anything outside {0, 1, don't-care}.
func internInput(raw []int) (Implicant, bool) {
	imp := make(Implicant, len(raw))
	for i, v := range raw {
		val, ok := internValue(v)
		if !ok {
			return nil, false
		}
		imp[i] = val
	}
	return imp, true
}

func internOutput(raw int) (Value, bool) {
	return internValue(raw)
}

func internValue(v int) (Value, bool) {
	switch v {
	case SynZero:
		return Zero, true
	case SynOne:
		return One, true
	case SynDontCare, SynDontCare2:
		return Dash, true
	default:
		return 0, false
	}
}

// removeSubsumed drops rows implied by another row with an agreeing output
// and reports ErrInconsistentTable for rows that overlap with a
// disagreeing output. Rows are compared in their input order; which rows
// are kept does not depend on that order, only which conflict is reported
// first does.
func removeSubsumed(rows []tableEntry) ([]tableEntry, error) {
	keep := make([]bool, len(rows))
	for i := range rows {
		keep[i] = true
	}

	// All pairwise comparisons are made against the original, unmodified
	// rows slice, so marking keep[i] false as we go never changes the
	// outcome of a later comparison.
	for i := 0; i < len(rows); i++ {
		for j := 0; j < len(rows); j++ {
			if i == j {
				continue
			}
			if !overlaps(rows[i].Input, rows[j].Input) {
				continue
			}
			if rows[i].Output != rows[j].Output {
				return nil, fmt.Errorf("tritab: %v (%s) overlaps %v (%s): %w",
					rows[i].Input, rows[i].Output, rows[j].Input, rows[j].Output, ErrInconsistentTable)
			}
			// i implies j and they agree: i is redundant, drop it.
			if rows[i].Input.Implies(rows[j].Input) && !rows[j].Input.Implies(rows[i].Input) {
				keep[i] = false
			}
		}
	}

	out := make([]tableEntry, 0, len(rows))
	for i, e := range rows {
		if keep[i] {
			out = append(out, e)
		}
	}
	return out, nil
}

// overlaps reports whether two equal-length implicants share at least one
// concrete input assignment (every position either matches or one side is
// Dash).
func overlaps(a, b Implicant) bool {
	for i := range a {
		if a[i] == Dash || b[i] == Dash {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fillDontCare adds an explicit Dash-output row for every minterm of 2^N
// not already covered by an existing row, then returns the table keyed by
// canonical implicant string.
func fillDontCare(rows []tableEntry, n int) Table {
	t := make(Table, len(rows))
	for _, e := range rows {
		t[e.Input.key()] = e
	}
	if n <= 0 {
		return t
	}

	total := 1 << uint(n)
	for m := 0; m < total; m++ {
		cube := mintermOf(m, n)
		covered := false
		for _, e := range rows {
			// cube is fully specified, so overlap with e.Input exactly
			// means cube satisfies e.Input's fixed positions.
			if overlaps(e.Input, cube) {
				covered = true
				break
			}
		}
		if !covered {
			t[cube.key()] = tableEntry{Input: cube, Output: Dash}
		}
	}
	return t
}

// mintermOf renders integer m (0 <= m < 2^n) as an n-position Zero/One
// implicant, most significant bit at position 0.
func mintermOf(m, n int) Implicant {
	imp := make(Implicant, n)
	for i := 0; i < n; i++ {
		bit := (m >> uint(n-1-i)) & 1
		if bit == 1 {
			imp[i] = One
		} else {
			imp[i] = Zero
		}
	}
	return imp
}
