// SPDX-License-Identifier: MIT

package formula

import (
	"strings"

	"github.com/qm-lab/boolmin/enumerate"
	"github.com/qm-lab/boolmin/tritab"
)

// dnfLiteral renders name's DNF literal: the bare name when true, negated
// otherwise.
func dnfLiteral(name string, value bool) string {
	if value {
		return name
	}
	return "!" + name
}

// cnfLiteral renders name's CNF literal: the mirror image of dnfLiteral,
// since a maxterm excludes exactly the assignment its row observed.
func cnfLiteral(name string, value bool) string {
	if value {
		return "!" + name
	}
	return name
}

// DNF renders rows as a disjunction of conjunctive terms, one term per
// defined-true row, in the row order Run produced them. Literals within a
// term follow names order (the registry's first-observation order).
func DNF(names []string, rows []enumerate.Row) string {
	var terms []string
	for _, row := range rows {
		if !row.Output {
			continue
		}
		var lits []string
		for _, name := range names {
			if v, ok := row.Observed[name]; ok {
				lits = append(lits, dnfLiteral(name, v))
			}
		}
		if len(lits) == 0 {
			terms = append(terms, "true")
			continue
		}
		terms = append(terms, strings.Join(lits, "&"))
	}

	switch {
	case len(terms) == 0:
		return "false"
	case len(terms) == 1 && terms[0] == "true":
		return "true"
	default:
		return strings.Join(terms, " | ")
	}
}

// CNF renders rows as a conjunction of disjunctive clauses, one clause per
// defined-false row, with inverted literals (a clause excludes exactly the
// assignment its row observed). Clauses of two or more literals are
// parenthesized; single-literal clauses are not.
func CNF(names []string, rows []enumerate.Row) string {
	var clauses []string
	for _, row := range rows {
		if row.Output {
			continue
		}
		var lits []string
		for _, name := range names {
			if v, ok := row.Observed[name]; ok {
				lits = append(lits, cnfLiteral(name, v))
			}
		}

		switch len(lits) {
		case 0:
			clauses = append(clauses, "false")
		case 1:
			clauses = append(clauses, lits[0])
		default:
			clauses = append(clauses, "("+strings.Join(lits, " | ")+")")
		}
	}

	switch {
	case len(clauses) == 0:
		return "true"
	case len(clauses) == 1 && clauses[0] == "false":
		return "false"
	default:
		return strings.Join(clauses, " & ")
	}
}

// Minimal renders a minimized term list (qm.Minimize's output) as a
// disjunction of conjunctive terms. names must have the same length as
// each term; position i corresponds to names[i].
func Minimal(names []string, terms []tritab.Implicant) string {
	if len(terms) == 0 {
		return "false"
	}
	if len(terms) == 1 && isTautologyTerm(terms[0]) {
		return "true"
	}

	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		var lits []string
		for i, v := range term {
			switch v {
			case tritab.One:
				lits = append(lits, names[i])
			case tritab.Zero:
				lits = append(lits, "!"+names[i])
			}
		}
		if len(lits) == 0 {
			parts = append(parts, "true")
			continue
		}
		parts = append(parts, strings.Join(lits, "&"))
	}
	return strings.Join(parts, " | ")
}

// isTautologyTerm reports whether term has no concrete positions (every
// position is Dash, vacuously true of a zero-length term too).
func isTautologyTerm(term tritab.Implicant) bool {
	for _, v := range term {
		if v != tritab.Dash {
			return false
		}
	}
	return true
}
