// SPDX-License-Identifier: MIT

package qm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qm-lab/boolmin/tritab"
)

func mustCanonicalize(t *testing.T, raw tritab.RawTable) tritab.Table {
	t.Helper()
	table, err := tritab.Canonicalize(raw)
	require.NoError(t, err)
	return table
}

func TestMinimize_Identity(t *testing.T) {
	table := mustCanonicalize(t, tritab.RawTable{
		{Input: []int{0}, Output: 0},
		{Input: []int{1}, Output: 1},
	})
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{{tritab.One}}, got)
}

func TestMinimize_Tautology(t *testing.T) {
	table := mustCanonicalize(t, tritab.RawTable{
		{Input: []int{0}, Output: 1},
		{Input: []int{1}, Output: 1},
	})
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{{tritab.Dash}}, got)
}

func TestMinimize_Contradiction(t *testing.T) {
	table := mustCanonicalize(t, tritab.RawTable{
		{Input: []int{0}, Output: 0},
		{Input: []int{1}, Output: 0},
	})
	got := Minimize(table)
	require.Empty(t, got)
}

func TestMinimize_XOR(t *testing.T) {
	table := mustCanonicalize(t, tritab.RawTable{
		{Input: []int{0, 0}, Output: 0},
		{Input: []int{0, 1}, Output: 1},
		{Input: []int{1, 0}, Output: 1},
		{Input: []int{1, 1}, Output: 0},
	})
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{
		{tritab.Zero, tritab.One},
		{tritab.One, tritab.Zero},
	}, got)
}

func TestMinimize_ThreeInputMajority(t *testing.T) {
	raw := tritab.RawTable{}
	for i := 0; i < 8; i++ {
		bits := []int{(i >> 2) & 1, (i >> 1) & 1, i & 1}
		n := bits[0] + bits[1] + bits[2]
		out := 0
		if n >= 2 {
			out = 1
		}
		raw = append(raw, tritab.RawEntry{Input: bits, Output: out})
	}
	table := mustCanonicalize(t, raw)
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{
		{tritab.One, tritab.One, tritab.Dash},
		{tritab.One, tritab.Dash, tritab.One},
		{tritab.Dash, tritab.One, tritab.One},
	}, got)
}

func TestMinimize_FourBitFibonacciMembership(t *testing.T) {
	on := map[int]bool{1: true, 2: true, 3: true, 5: true, 8: true, 13: true}
	raw := tritab.RawTable{}
	for i := 0; i < 16; i++ {
		bits := []int{(i >> 3) & 1, (i >> 2) & 1, (i >> 1) & 1, i & 1}
		out := 0
		if on[i] {
			out = 1
		}
		raw = append(raw, tritab.RawEntry{Input: bits, Output: out})
	}
	table := mustCanonicalize(t, raw)
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{
		{tritab.One, tritab.Zero, tritab.Zero, tritab.Zero},
		{tritab.Zero, tritab.Zero, tritab.One, tritab.Dash},
		{tritab.Zero, tritab.Dash, tritab.Zero, tritab.One},
		{tritab.Dash, tritab.One, tritab.Zero, tritab.One},
	}, got)
}

func TestMinimize_DontCareCubeMergesWithOnMinterm(t *testing.T) {
	// row0 is a user-supplied partial cube (don't care about v0) covering
	// 000 and 100. Minimize expands it to those two minterms, and the
	// don't-care 000 merges with the ON minterm 001 into (0,0,-). The
	// explicit false rows keep the rest of the cube pinned down so the
	// table can't collapse to a tautology.
	raw := tritab.RawTable{
		{Input: []int{-1, 0, 0}, Output: -1},
		{Input: []int{0, 0, 1}, Output: 1},
		{Input: []int{1, 1, 1}, Output: 1},
		{Input: []int{0, 1, 0}, Output: 0},
		{Input: []int{0, 1, 1}, Output: 0},
		{Input: []int{1, 0, 1}, Output: 0},
		{Input: []int{1, 1, 0}, Output: 0},
	}
	table := mustCanonicalize(t, raw)
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{
		{tritab.One, tritab.One, tritab.One},
		{tritab.Zero, tritab.Zero, tritab.Dash},
	}, got)
}

func TestMinimize_PartialOnRowCoversAllItsLiteralMinterms(t *testing.T) {
	// This table is exactly what enumerate.Run produces for
	// func(r enumerate.Reader) bool { return r.Read(0) || r.Read(1) }:
	// the third row never observes v1 (|| short-circuits once v0 is
	// true), so it canonicalizes to the cube (1,-) standing in for both
	// (1,0) and (1,1). A minimizer that treats that cube as a single
	// atomic minterm to cover, rather than expanding it, loses the (1,0)
	// minterm entirely and returns a result not equivalent to v0 | v1.
	raw := tritab.RawTable{
		{Input: []int{0, 0}, Output: 0},
		{Input: []int{0, 1}, Output: 1},
		{Input: []int{1, -1}, Output: 1},
	}
	table := mustCanonicalize(t, raw)
	got := Minimize(table)
	require.Equal(t, []tritab.Implicant{
		{tritab.One, tritab.Dash},
		{tritab.Dash, tritab.One},
	}, got)

	for _, m := range []tritab.Implicant{
		{tritab.Zero, tritab.One},
		{tritab.One, tritab.Zero},
		{tritab.One, tritab.One},
	} {
		covered := false
		for _, term := range got {
			if m.Implies(term) {
				covered = true
				break
			}
		}
		require.Truef(t, covered, "minterm %v not covered by %v", m, got)
	}
}

func TestMinimize_EmptyTableYieldsEmptyTerms(t *testing.T) {
	table := mustCanonicalize(t, nil)
	require.Empty(t, Minimize(table))
}

func TestGeneratePrimes_SymmetricThenStable(t *testing.T) {
	primes := generatePrimes([]tritab.Implicant{
		{tritab.Zero, tritab.Zero},
		{tritab.Zero, tritab.One},
		{tritab.One, tritab.Zero},
		{tritab.One, tritab.One},
	})
	require.Equal(t, []tritab.Implicant{{tritab.Dash, tritab.Dash}}, primes)
}

func TestSymmetricCombine_RequiresMatchingDashes(t *testing.T) {
	_, ok := symmetricCombine(
		tritab.Implicant{tritab.Dash, tritab.One},
		tritab.Implicant{tritab.One, tritab.Dash},
	)
	require.False(t, ok)
}

func TestAsymmetricCombine_Directional(t *testing.T) {
	t1 := tritab.Implicant{tritab.Zero, tritab.Zero}
	t2 := tritab.Implicant{tritab.One, tritab.Dash}

	res, ok := asymmetricCombine(t1, t2)
	require.True(t, ok)
	require.Equal(t, tritab.Implicant{tritab.Dash, tritab.Zero}, res)

	_, ok = asymmetricCombine(t2, t1)
	require.False(t, ok)
}
