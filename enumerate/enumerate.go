// SPDX-License-Identifier: MIT

package enumerate

import (
	"sort"
	"strings"
)

// plan is an assignment plan: "these variables have been observed with
// these values on the current path."
type plan map[string]bool

func (p plan) clone() plan {
	out := make(plan, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// fingerprint renders p as a canonical string: sorted by variable name,
// "name=value" pairs joined by a separator that cannot appear in a
// variable name. Stable regardless of observation order — the property
// the worklist dedup depends on.
func (p plan) fingerprint() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte('=')
		if p[name] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// state holds everything that lives only for the duration of one Run:
// the variable registry, the worklist of deferred plans, the
// already-scheduled fingerprint set, and the bookkeeping for the
// in-progress invocation.
type state struct {
	reg      *registry
	worklist []plan
	seen     map[string]struct{}

	current plan
	order   []string
}

func newState() *state {
	return &state{
		reg:  newRegistry(),
		seen: make(map[string]struct{}),
	}
}

// push adds p to the front of the worklist (step 2c); combined with pop
// taking from the front, this gives depth-first scheduling (spec section
// 4.1's "why front-push" note).
func (s *state) push(p plan) {
	s.worklist = append([]plan{p}, s.worklist...)
}

// pop removes and returns the front of the worklist, or (nil, false) if
// empty.
func (s *state) pop() (plan, bool) {
	if len(s.worklist) == 0 {
		return nil, false
	}
	p := s.worklist[0]
	s.worklist = s.worklist[1:]
	return p, true
}

// reader is the per-invocation Reader bound to one predicate call.
type reader struct {
	s *state
}

// Read implements the Reader contract and the full read(name) algorithm
// from spec section 4.1.
func (rd *reader) Read(index int) bool {
	s := rd.s
	name := varName(index)

	if v, ok := s.current[name]; ok {
		return v
	}

	s.reg.observe(name)

	// 2a. Fix name := false in the current plan; append to order.
	s.current[name] = false
	s.order = append(s.order, name)

	// 2b. Compute fingerprint of the false-extended plan (the plan as it
	// now stands, including this fix).
	falseFP := s.current.fingerprint()

	// 2c. If the true-extended plan's fingerprint is not already seen,
	// schedule it and mark both fingerprints seen.
	trueExtended := s.current.clone()
	trueExtended[name] = true
	trueFP := trueExtended.fingerprint()

	if _, scheduled := s.seen[trueFP]; !scheduled {
		s.push(trueExtended)
		s.seen[falseFP] = struct{}{}
		s.seen[trueFP] = struct{}{}
	}

	// 2d. Return false.
	return false
}

// Run drives predicate to exhaustion: every reachable assignment frontier
// is explored exactly once, and Run returns one Row per invocation.
//
// Complexity: O(2^N) invocations in the worst case, where N is the number
// of distinct variables the predicate ever reads; each invocation is
// O(variables read on that path).
func Run(predicate Predicate, opts ...Option) ([]Row, error) {
	o := resolveOptions(opts)
	s := newState()

	var rows []Row

	// The first invocation starts from the empty plan; its frontier is
	// implicitly "scheduled" by construction, so nothing needs pushing.
	s.current = plan{}
	s.order = nil

	for {
		if o.MaxInvocations > 0 && len(rows) >= o.MaxInvocations {
			return nil, ErrInvocationLimitExceeded
		}

		rd := &reader{s: s}
		output := predicate(rd)

		row := Row{
			Observed: map[string]bool(s.current.clone()),
			Output:   output,
			Order:    append([]string(nil), s.order...),
		}
		rows = append(rows, row)

		if o.OnInvocation != nil {
			o.OnInvocation(len(rows), row)
		}

		next, ok := s.pop()
		if !ok {
			break
		}
		s.current = next
		s.order = nil
	}

	return rows, nil
}

// Names returns the variable names observed across predicate in
// first-observation order. It is a convenience wrapper that runs predicate
// once via Run and discards the rows; callers that already have rows
// should derive the order via RegistryOrder instead.
func Names(predicate Predicate, opts ...Option) ([]string, error) {
	rows, err := Run(predicate, opts...)
	if err != nil {
		return nil, err
	}
	return RegistryOrder(rows), nil
}

// RegistryOrder reconstructs first-observation order from a completed row
// set: the order in which each variable name first appears across all
// rows' Order slices, which is exactly the registry order Run itself
// maintained internally (spec section 9's resolved "later semantics").
func RegistryOrder(rows []Row) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, row := range rows {
		for _, name := range row.Order {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}
	return order
}
