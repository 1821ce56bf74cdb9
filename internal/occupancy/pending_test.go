// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPendingDepartures_Multiset(t *testing.T) {
	p := newPendingDepartures()

	_, ok := p.min()
	require.False(t, ok)

	for _, at := range []Timestamp{30, 10, 20, 10, 30, 10} {
		p.push(at)
	}
	require.Equal(t, 6, p.len())

	first, ok := p.min()
	require.True(t, ok)
	require.Equal(t, Timestamp(10), first)

	var got []Timestamp
	for p.len() > 0 {
		at, ok := p.popMin()
		require.True(t, ok)
		got = append(got, at)
	}
	require.Equal(t, []Timestamp{10, 10, 10, 20, 30, 30}, got)

	_, ok = p.popMin()
	require.False(t, ok)
}
