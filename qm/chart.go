// SPDX-License-Identifier: MIT

package qm

import (
	"github.com/qm-lab/boolmin/tritab"
)

// chart maps a minterm's canonical key to the primes that cover it.
type chart map[string][]tritab.Implicant

// buildChart lists, for every minterm whose output is fixed to One, the
// prime implicants that cover it (a minterm implies a prime iff the
// prime's concrete positions all agree with the minterm).
func buildChart(onMinterms []tritab.Implicant, primes []tritab.Implicant) chart {
	c := make(chart, len(onMinterms))
	for _, m := range onMinterms {
		var covering []tritab.Implicant
		for _, p := range primes {
			if m.Implies(p) {
				covering = append(covering, p)
			}
		}
		c[implicantKey(m)] = covering
	}
	return c
}

// extractEssentials pulls out every prime that is the sole cover of some
// minterm still in the chart, then strikes every minterm those primes
// cover from the chart (including minterms covered incidentally). It
// returns the essential primes and the residual chart that still needs
// covering.
func extractEssentials(c chart) (essentials []tritab.Implicant, residual chart) {
	essentialSet := make(map[string]tritab.Implicant)
	for _, covering := range c {
		if len(covering) == 1 {
			p := covering[0]
			essentialSet[implicantKey(p)] = p
		}
	}

	residual = make(chart, len(c))
	for mKey, covering := range c {
		coveredByEssential := false
		for _, p := range covering {
			if _, ok := essentialSet[implicantKey(p)]; ok {
				coveredByEssential = true
				break
			}
		}
		if coveredByEssential {
			continue
		}
		residual[mKey] = covering
	}

	for _, p := range essentialSet {
		essentials = append(essentials, p)
	}
	tritab.SortImplicants(essentials)
	return essentials, residual
}
