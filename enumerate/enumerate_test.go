// SPDX-License-Identifier: MIT

package enumerate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_NoVariables(t *testing.T) {
	rows, err := Run(func(r Reader) bool { return true })
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Empty(t, rows[0].Observed)
	require.True(t, rows[0].Output)
}

func TestRun_Identity(t *testing.T) {
	rows, err := Run(func(r Reader) bool { return r.Read(0) })
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byOutput := map[bool]Row{}
	for _, row := range rows {
		byOutput[row.Output] = row
	}
	require.Equal(t, false, byOutput[false].Observed["v[0]"])
	require.Equal(t, true, byOutput[true].Observed["v[0]"])
}

func TestRun_TwoInputsExhaustive(t *testing.T) {
	rows, err := Run(func(r Reader) bool {
		return r.Read(0) != r.Read(1) // XOR
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	seen := map[[2]bool]bool{}
	for _, row := range rows {
		a, b := row.Observed["v[0]"], row.Observed["v[1]"]
		seen[[2]bool{a, b}] = true
		require.Equal(t, a != b, row.Output)
	}
	require.Len(t, seen, 4)
}

func TestRun_RepeatedReadIsStable(t *testing.T) {
	rows, err := Run(func(r Reader) bool {
		a := r.Read(0)
		b := r.Read(0)
		require.Equal(t, a, b)
		return a
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestRun_ShortCircuitProducesPartialRows(t *testing.T) {
	rows, err := Run(func(r Reader) bool {
		if !r.Read(0) {
			return false
		}
		return r.Read(1)
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var partial, full int
	for _, row := range rows {
		switch len(row.Observed) {
		case 1:
			partial++
			require.False(t, row.Observed["v[0]"])
			require.False(t, row.Output)
		case 2:
			full++
		default:
			t.Fatalf("unexpected observed width: %v", row.Observed)
		}
	}
	require.Equal(t, 1, partial)
	require.Equal(t, 2, full)
}

func TestRun_RegistryOrderIsFirstObservation(t *testing.T) {
	rows, err := Run(func(r Reader) bool {
		return r.Read(3) && r.Read(1)
	})
	require.NoError(t, err)
	order := RegistryOrder(rows)
	require.Equal(t, []string{"v[3]", "v[1]"}, order)
}

func TestRun_MaxInvocationsExceeded(t *testing.T) {
	_, err := Run(func(r Reader) bool {
		return r.Read(0) && r.Read(1) && r.Read(2)
	}, WithMaxInvocations(2))
	require.ErrorIs(t, err, ErrInvocationLimitExceeded)
}

func TestRun_OnInvocationHook(t *testing.T) {
	var counts []int
	_, err := Run(func(r Reader) bool {
		return r.Read(0)
	}, WithOnInvocation(func(count int, row Row) {
		counts = append(counts, count)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, counts)
}

func TestRun_ThreeInputMajority(t *testing.T) {
	majority := func(r Reader) bool {
		a, b, c := r.Read(0), r.Read(1), r.Read(2)
		n := 0
		for _, v := range []bool{a, b, c} {
			if v {
				n++
			}
		}
		return n >= 2
	}
	rows, err := Run(majority)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	var ones int
	for _, row := range rows {
		n := 0
		for _, v := range row.Observed {
			if v {
				n++
			}
		}
		if row.Output {
			ones++
			require.GreaterOrEqual(t, n, 2)
		}
	}
	require.Equal(t, 4, ones)
}

func TestPlanFingerprint_OrderIndependent(t *testing.T) {
	a := plan{"v[0]": true, "v[1]": false}
	b := plan{"v[1]": false, "v[0]": true}
	require.Equal(t, a.fingerprint(), b.fingerprint())
}

func TestRegistry_AppendOnly(t *testing.T) {
	r := newRegistry()
	i1 := r.observe("v[2]")
	i2 := r.observe("v[0]")
	i1Again := r.observe("v[2]")
	require.Equal(t, i1, i1Again)
	require.NotEqual(t, i1, i2)
	require.Equal(t, []string{"v[2]", "v[0]"}, r.Names())
}
