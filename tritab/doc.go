// SPDX-License-Identifier: MIT

// Package tritab implements the canonicalizer stage of the minimizer
// pipeline: the boundary between a caller's loose, possibly inconsistent
// description of a boolean function and the clean, total truth table the
// Quine–McCluskey stage requires.
//
// A RawTable is a list of rows pairing an input tuple (values 0, 1, or a
// don't-care synonym) with an output value. Canonicalize:
//
//   - validates that every row has the same tuple length;
//   - interns every value to the three-symbol domain {Zero, One, Dash};
//   - drops rows subsumed by a more general row with an agreeing output;
//   - reports ErrInconsistentTable for rows that overlap with disagreeing
//     outputs;
//   - fills every input combination not already covered with a Dash
//     (don't-care) output, so the result is total over 2^N.
//
// Canonicalize is idempotent: feeding its own output back in returns the
// same table, since a total, subsumption-free table has nothing left to
// merge or fill.
package tritab
