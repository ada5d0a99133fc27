// SPDX-License-Identifier: MIT

package main

import "github.com/qm-lab/boolmin"

// scenario is one named predicate the demo command can explore and print.
type scenario struct {
	name    string
	predict boolmin.Predicate
}

var scenarios = []scenario{
	{"identity", func(r boolmin.Reader) bool {
		return r.Read(0)
	}},
	{"tautology", func(r boolmin.Reader) bool {
		return r.Read(0) || !r.Read(0)
	}},
	{"contradiction", func(r boolmin.Reader) bool {
		return r.Read(0) && !r.Read(0)
	}},
	{"xor", func(r boolmin.Reader) bool {
		return r.Read(0) != r.Read(1)
	}},
	{"majority", func(r boolmin.Reader) bool {
		a, b, c := r.Read(0), r.Read(1), r.Read(2)
		n := 0
		for _, v := range []bool{a, b, c} {
			if v {
				n++
			}
		}
		return n >= 2
	}},
	{"fibonacci-membership", func(r boolmin.Reader) bool {
		on := map[int]bool{1: true, 2: true, 3: true, 5: true, 8: true, 13: true}
		n := 0
		for i := 0; i < 4; i++ {
			n <<= 1
			if r.Read(i) {
				n |= 1
			}
		}
		return on[n]
	}},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}
