// SPDX-License-Identifier: MIT

package qm

import (
	"sort"

	"github.com/qm-lab/boolmin/tritab"
)

// minimumCover performs an exhaustive search over the primes still listed
// in residual for the smallest subset that covers every minterm. Subset
// sizes are tried in increasing order, and candidates are held in
// position-by-position order with Dash < Zero < One, so the first cover
// found at the smallest size is the lexicographically smallest one under
// that order. The returned cover is sorted under tritab.Compare.
func minimumCover(residual chart) []tritab.Implicant {
	if len(residual) == 0 {
		return nil
	}

	seen := make(map[string]tritab.Implicant)
	for _, covering := range residual {
		for _, p := range covering {
			seen[implicantKey(p)] = p
		}
	}
	candidates := make([]tritab.Implicant, 0, len(seen))
	for _, p := range seen {
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k] // Dash (-1) < Zero (0) < One (1)
			}
		}
		return false
	})

	minterms := make([]string, 0, len(residual))
	for k := range residual {
		minterms = append(minterms, k)
	}
	sort.Strings(minterms)

	coveredBy := func(subset []int, mKey string) bool {
		for _, idx := range subset {
			ck := implicantKey(candidates[idx])
			for _, p := range residual[mKey] {
				if implicantKey(p) == ck {
					return true
				}
			}
		}
		return false
	}
	covers := func(subset []int) bool {
		for _, mKey := range minterms {
			if !coveredBy(subset, mKey) {
				return false
			}
		}
		return true
	}

	n := len(candidates)
	for size := 1; size <= n; size++ {
		var found []int
		combinations(n, size, func(subset []int) bool {
			if covers(subset) {
				found = append([]int(nil), subset...)
				return true
			}
			return false
		})
		if found != nil {
			out := make([]tritab.Implicant, len(found))
			for i, idx := range found {
				out[i] = candidates[idx]
			}
			tritab.SortImplicants(out)
			return out
		}
	}
	return nil
}

// combinations enumerates every k-element subset of {0,...,n-1} in
// lexicographic index order, calling visit for each. It stops as soon as
// visit returns true.
func combinations(n, k int, visit func(subset []int) bool) {
	if k == 0 {
		visit(nil)
		return
	}
	if k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if visit(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
