// SPDX-License-Identifier: MIT

package qm

import (
	"sort"

	"github.com/qm-lab/boolmin/tritab"
)

// symmetricCombine merges t1 and t2 if they share the same dash positions
// and differ in exactly one other position (a 0/1 pair there). The merged
// implicant copies t1 with that position turned into a dash.
func symmetricCombine(t1, t2 tritab.Implicant) (tritab.Implicant, bool) {
	if len(t1) != len(t2) {
		return nil, false
	}

	diffIdx := -1
	for i := range t1 {
		a, b := t1[i], t2[i]
		if a == tritab.Dash && b == tritab.Dash {
			continue
		}
		if a == tritab.Dash || b == tritab.Dash {
			return nil, false // dash positions must line up exactly
		}
		if a != b {
			if diffIdx != -1 {
				return nil, false // more than one differing position
			}
			diffIdx = i
		}
	}
	if diffIdx == -1 {
		return nil, false // identical implicants, nothing to combine
	}

	merged := t1.Clone()
	merged[diffIdx] = tritab.Dash
	return merged, true
}

// asymmetricCombine lets t1 absorb a neighboring don't-care-bearing cube
// t2 that symmetricCombine cannot reach: every position must be equal, or
// a single 0/1 pivot pair, or a position where t2 already carries a dash
// that t1 does not. The result copies t1 with the pivot turned into a
// dash; any extra dash already present in t2 is not copied, since the
// result must still be implied by t1 outside the pivot.
func asymmetricCombine(t1, t2 tritab.Implicant) (tritab.Implicant, bool) {
	if len(t1) != len(t2) {
		return nil, false
	}

	pivot := -1
	for i := range t1 {
		a, b := t1[i], t2[i]
		if a == b {
			continue
		}
		if a == tritab.Dash {
			return nil, false // t1 dash, t2 concrete: not this rule's direction
		}
		if b == tritab.Dash {
			continue // t2 carries an extra don't-care position; allowed
		}
		if pivot != -1 {
			return nil, false // more than one opposing-polarity position
		}
		pivot = i
	}
	if pivot == -1 {
		return nil, false
	}

	merged := t1.Clone()
	merged[pivot] = tritab.Dash
	return merged, true
}

// generatePrimes runs the combine loop to a fixed point: every pair of
// live implicants is tried under both combine rules (the asymmetric rule
// is tried in both directions since it is not symmetric in its operands)
// until a full pass adds nothing new to the pool. Implicants that were
// never absorbed into a larger combination are the prime implicants.
func generatePrimes(onDC []tritab.Implicant) []tritab.Implicant {
	pool := make(map[string]tritab.Implicant, len(onDC))
	for _, imp := range onDC {
		pool[implicantKey(imp)] = imp
	}
	combined := make(map[string]bool, len(onDC))

	for {
		keys := make([]string, 0, len(pool))
		for k := range pool {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		changed := false
		for _, k1 := range keys {
			for _, k2 := range keys {
				if k1 == k2 {
					continue
				}
				t1, t2 := pool[k1], pool[k2]

				if res, ok := symmetricCombine(t1, t2); ok {
					combined[k1], combined[k2] = true, true
					if rk := implicantKey(res); !poolHas(pool, rk) {
						pool[rk] = res
						changed = true
					}
				}
				if res, ok := asymmetricCombine(t1, t2); ok {
					// t1 always lies inside res; t2 does only when it
					// carries no dash that res lacks.
					combined[k1] = true
					if t2.Implies(res) {
						combined[k2] = true
					}
					if rk := implicantKey(res); !poolHas(pool, rk) {
						pool[rk] = res
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	primes := make([]tritab.Implicant, 0, len(pool))
	for k, imp := range pool {
		if !combined[k] {
			primes = append(primes, imp)
		}
	}
	tritab.SortImplicants(primes)
	return primes
}

func poolHas(pool map[string]tritab.Implicant, key string) bool {
	_, ok := pool[key]
	return ok
}

func implicantKey(imp tritab.Implicant) string {
	b := make([]byte, len(imp))
	for i, v := range imp {
		switch v {
		case tritab.Zero:
			b[i] = '0'
		case tritab.One:
			b[i] = '1'
		default:
			b[i] = '-'
		}
	}
	return string(b)
}
