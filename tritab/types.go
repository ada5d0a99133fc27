// SPDX-License-Identifier: MIT

package tritab

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Value is a tri-state truth value: a variable is fixed false, fixed true,
// or absent from a given term (Dash).
type Value int8

const (
	// Zero means the corresponding position is fixed to false.
	Zero Value = 0
	// One means the corresponding position is fixed to true.
	One Value = 1
	// Dash means the position is don't-care / absent from the term.
	Dash Value = -1
)

// String renders a single tri-value the way formula printers expect.
func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	case Dash:
		return "-"
	default:
		return "?"
	}
}

// Implicant is a fixed-length tuple of tri-values over N variables.
// Conjunction semantics: One means "variable true", Zero means "variable
// false", Dash means "variable absent from this term". Two implicants are
// equal iff every position matches.
type Implicant []Value

// Clone returns an independent copy of imp.
func (imp Implicant) Clone() Implicant {
	out := make(Implicant, len(imp))
	copy(out, imp)
	return out
}

// key renders imp as a canonical string usable as a map key, matching the
// project convention of string-keyed lookup tables with a documented
// canonical-key helper.
func (imp Implicant) key() string {
	var b strings.Builder
	b.Grow(len(imp))
	for _, v := range imp {
		b.WriteString(v.String())
	}
	return b.String()
}

// Implies reports whether imp implies other: every position of other is
// either Dash or equal to the corresponding position of imp. This is the
// subsumption relation used by the canonicalizer and by prime-implicant
// reduction.
func (imp Implicant) Implies(other Implicant) bool {
	if len(imp) != len(other) {
		return false
	}
	for i, ov := range other {
		if ov != Dash && ov != imp[i] {
			return false
		}
	}
	return true
}

// Equal reports whether imp and other have identical tri-values at every
// position.
func (imp Implicant) Equal(other Implicant) bool {
	if len(imp) != len(other) {
		return false
	}
	for i := range imp {
		if imp[i] != other[i] {
			return false
		}
	}
	return true
}

// sortWeight orders a single tri-value for tiebreak purposes: concrete
// values sort before a dash at the same position (Zero < One < Dash).
func sortWeight(v Value) int {
	switch v {
	case Zero:
		return 0
	case One:
		return 1
	default:
		return 2
	}
}

// dashCount returns how many positions of imp are Dash.
func dashCount(imp Implicant) int {
	n := 0
	for _, v := range imp {
		if v == Dash {
			n++
		}
	}
	return n
}

// Compare orders two equal-length implicants under the deterministic
// tiebreak the minimizer's test suite depends on: the more specific
// implicant (fewer dashes) sorts first, and implicants with equal dash
// counts are then compared position by position with Zero < One < Dash.
func (imp Implicant) Compare(other Implicant) int {
	if da, do := dashCount(imp), dashCount(other); da != do {
		return da - do
	}

	n := len(imp)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if wi, wo := sortWeight(imp[i]), sortWeight(other[i]); wi != wo {
			return wi - wo
		}
	}
	return len(imp) - len(other)
}

// SortImplicants sorts a slice of implicants in place under Compare.
func SortImplicants(terms []Implicant) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Compare(terms[j]) < 0
	})
}

// RawTable is a caller-supplied table prior to canonicalization: an ordered
// list of rows, each an implicant over synonym-accepting tri-values and its
// associated output. Rows may overlap (two cubes sharing part of their
// input space); Canonicalize resolves overlaps via subsumption when outputs
// agree and reports ErrInconsistentTable when they don't.
type RawTable []RawEntry

// RawEntry pairs a raw implicant (values not yet validated) with its raw
// output value. Input values and Output accept the synonyms SynZero,
// SynOne, SynDontCare, and SynDontCare2.
type RawEntry struct {
	Input  []int
	Output int
}

// Synonym values accepted in RawEntry fields, per spec section 6: 0/false,
// 1/true, and a distinct don't-care marker.
const (
	SynZero      = 0
	SynOne       = 1
	SynDontCare  = -1
	SynDontCare2 = 2 // alternate don't-care spelling some callers use
)

// Table is the canonicalized result: uniform-length implicants mapped to a
// tri-value output, total over 2^N.
type Table map[string]tableEntry

type tableEntry struct {
	Input  Implicant
	Output Value
}

// Entries returns the table's (implicant, output) pairs sorted by
// implicant under Compare, for callers that need reproducible iteration.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	for _, e := range t {
		out = append(out, Entry{Input: e.Input, Output: e.Output})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Input.Compare(out[j].Input) < 0
	})
	return out
}

// Entry is one canonicalized (implicant, output) pair.
type Entry struct {
	Input  Implicant
	Output Value
}

// Arity returns N, the number of variables spanned by the table, or 0 for
// an empty table.
func (t Table) Arity() int {
	for _, e := range t {
		return len(e.Input)
	}
	return 0
}

// Sentinel errors for Canonicalize, matching the project's "errors.New
// sentinel, errors.Is to branch" convention. All three belong to a single
// "argument error" family per spec section 7.
var (
	// ErrDimensionMismatch is returned when table rows disagree on tuple
	// length.
	ErrDimensionMismatch = errors.New("tritab: inputs have differing lengths")

	// ErrInvalidValue is returned when an input or output value falls
	// outside the accepted synonym set {0, 1, don't-care}.
	ErrInvalidValue = errors.New("tritab: value outside accepted synonyms")

	// ErrInconsistentTable is returned when two overlapping cubes specify
	// distinct defined outputs.
	ErrInconsistentTable = errors.New("tritab: inconsistent table")
)

// wrapRow attaches row context to a sentinel error via %w, per the
// project's "sentinels never wrapped at definition site, wrapped with
// context at the call site" policy.
func wrapRow(key string, sentinel error) error {
	return fmt.Errorf("tritab: row %q: %w", key, sentinel)
}
