// SPDX-License-Identifier: MIT

// Package enumerate — adaptive truth-table enumeration.
//
// The predicate's variable set and branching structure are unknown ahead
// of time; each invocation reveals only the variables it reads on that
// particular path. Run explores every reachable assignment exactly once
// without ever calling the predicate more than 2^N times, by maintaining:
//
//   - a current assignment plan (variable name → bool);
//   - an append-only order list of first observations on the current path;
//   - a worklist of deferred alternative plans;
//   - a seen set of plan fingerprints, guaranteeing at-most-once
//     scheduling of each frontier.
//
// On Read(index), if the variable is already bound on the current path its
// bound value is returned. Otherwise the variable is fixed to false on the
// current path (and the false value returned), while the true alternative
// is pushed to the front of the worklist — unless that exact frontier was
// already scheduled. Front-push plus front-pop gives depth-first
// exploration, which minimizes peak worklist size; any scheduling order
// would be correct, front/front is simply the cheapest.
//
// Run terminates when the worklist drains. A predicate that reads no
// variables produces exactly one row with an empty observation map; a
// predicate that short-circuits produces partial rows whose Observed map
// contains only the variables actually reached on that path — downstream
// consumers treat unobserved positions as don't-care.
package enumerate
