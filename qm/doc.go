// SPDX-License-Identifier: MIT

// Package qm implements the Quine–McCluskey exact minimizer: prime
// implicant generation, essential extraction, and minimum-cardinality
// cover search over a canonicalized tritab.Table.
//
// Minimize is the package's single entry point and orchestrates the whole
// pipeline:
//
//  1. generatePrimes combines implicants differing in exactly one bit
//     (symmetric combine) and implicants that can absorb a neighboring
//     don't-care cube (asymmetric combine) until no further combination is
//     possible; implicants never combined are the prime implicants.
//  2. buildChart lists, for every minterm whose output is defined as 1,
//     the prime implicants that cover it.
//  3. extractEssentials pulls out primes that are the sole cover of some
//     minterm and strikes the minterms they cover from the chart.
//  4. minimumCover performs an exhaustive breadth-first search over the
//     remaining primes for a smallest cover of the residual chart.
//
// The result is deterministic: when several covers of the smallest size
// exist, minimumCover takes the one whose tri-value tuples come first
// position by position under -1 < 0 < 1 (tritab.Dash < tritab.Zero <
// tritab.One), and the returned list is sorted under tritab.Compare
// (fewer dashes first, then Zero < One < Dash position by position).
package qm
