// Package boolmin drives an opaque boolean predicate to discover its
// variable set and truth table, then minimizes that table with the
// Quine–McCluskey algorithm and prints the result as a formula.
//
// What is boolmin?
//
//	A small pipeline that turns "a function I can only call" into "the
//	shortest boolean expression that describes it":
//
//	  - enumerate/ walks every reachable assignment of an opaque predicate
//	    without ever calling it more than 2^N times
//	  - tritab/    canonicalizes the resulting rows into a tri-value table
//	  - qm/        runs Quine–McCluskey: prime implicants, essential
//	    extraction, minimum-cardinality cover
//	  - formula/   renders the table or the minimized terms as DNF, CNF,
//	    or a minimal expression
//
// Minimize and Explore are the package's two entry points; see their doc
// comments for the exact contract. cmd/qmdemo wires the whole pipeline
// into a small CLI for interactive use.
//
//	go get github.com/qm-lab/boolmin
package boolmin
