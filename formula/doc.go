// SPDX-License-Identifier: MIT

// Package formula renders enumerator rows and minimized terms as
// human-readable boolean expressions.
//
// DNF and CNF walk the enumerator's row list in invocation order: DNF
// emits one disjunctive term per defined-true row, CNF one conjunctive
// clause per defined-false row with inverted literals. Minimal instead
// renders the already-reduced term list qm.Minimize produces.
//
// A variable observed true in a row prints as its bare name; observed
// false it prints with a leading "!". Multiple literals in a DNF term join
// with "&" and no surrounding spaces; multiple literals in a CNF clause
// join with " | " inside parentheses. Terms/clauses join with " | " or
// " & " respectively. An empty DNF is the contradiction
// "false"; a single term with no literals is the tautology "true". CNF is
// the mirror image: an empty clause list is "true", a single clause with
// no literals is "false".
package formula
