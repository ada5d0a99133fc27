// SPDX-License-Identifier: MIT

package boolmin

import (
	"github.com/qm-lab/boolmin/enumerate"
	"github.com/qm-lab/boolmin/formula"
	"github.com/qm-lab/boolmin/qm"
	"github.com/qm-lab/boolmin/tritab"
)

// Predicate and Reader alias the enumerate package's types so callers of
// Explore never need to import enumerate directly for the common case.
type (
	Predicate = enumerate.Predicate
	Reader    = enumerate.Reader
)

// Result bundles everything Explore produced: the registry order, the raw
// enumeration rows, the canonicalized table, and the minimized term list.
// Its fields are the exact inputs formula.DNF, formula.CNF, and
// formula.Minimal expect.
type Result struct {
	Names   []string
	Rows    []enumerate.Row
	Table   tritab.Table
	Minimal []tritab.Implicant
}

// DNF, CNF, and MinimalString render r as the corresponding formula.
func (r *Result) DNF() string           { return formula.DNF(r.Names, r.Rows) }
func (r *Result) CNF() string           { return formula.CNF(r.Names, r.Rows) }
func (r *Result) MinimalString() string { return formula.Minimal(r.Names, r.Minimal) }

// Minimize canonicalizes raw and runs the Quine–McCluskey minimizer over
// it, returning the minimum-cardinality term list. It is the thin
// entry point for callers who already have a hand-built table rather
// than an opaque predicate.
func Minimize(raw tritab.RawTable) ([]tritab.Implicant, error) {
	table, err := tritab.Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	return qm.Minimize(table), nil
}

// Explore drives predicate to exhaustion via enumerate.Run, builds a
// tri-value table from the resulting rows (unobserved variables on a row
// become don't-care positions in that row's input cube), canonicalizes
// it, and minimizes it. The returned Result carries everything needed to
// print DNF, CNF, or the minimal formula.
func Explore(predicate Predicate, opts ...enumerate.Option) (*Result, error) {
	rows, err := enumerate.Run(predicate, opts...)
	if err != nil {
		return nil, err
	}
	names := enumerate.RegistryOrder(rows)

	raw := make(tritab.RawTable, 0, len(rows))
	for _, row := range rows {
		input := make([]int, len(names))
		for i, name := range names {
			if v, ok := row.Observed[name]; ok {
				if v {
					input[i] = tritab.SynOne
				} else {
					input[i] = tritab.SynZero
				}
			} else {
				input[i] = tritab.SynDontCare
			}
		}
		output := tritab.SynZero
		if row.Output {
			output = tritab.SynOne
		}
		raw = append(raw, tritab.RawEntry{Input: input, Output: output})
	}

	table, err := tritab.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	return &Result{
		Names:   names,
		Rows:    rows,
		Table:   table,
		Minimal: qm.Minimize(table),
	}, nil
}
