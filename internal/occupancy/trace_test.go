// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompactor_Record(t *testing.T) {
	tests := []struct {
		name  string
		steps []Sample
		want  Trace
	}{
		{
			name:  "first sample is always kept",
			steps: []Sample{{At: 10, Level: 1}},
			want:  Trace{{At: 10, Level: 1}},
		},
		{
			name:  "repeated level is dropped",
			steps: []Sample{{At: 10, Level: 1}, {At: 20, Level: 1}},
			want:  Trace{{At: 10, Level: 1}},
		},
		{
			name:  "new level at later time is appended",
			steps: []Sample{{At: 10, Level: 1}, {At: 20, Level: 2}, {At: 30, Level: 0}},
			want:  Trace{{At: 10, Level: 1}, {At: 20, Level: 2}, {At: 30, Level: 0}},
		},
		{
			name:  "same instant overwrites single sample",
			steps: []Sample{{At: 10, Level: 1}, {At: 10, Level: 2}},
			want:  Trace{{At: 10, Level: 2}},
		},
		{
			name:  "same instant overwrites last sample",
			steps: []Sample{{At: 10, Level: 1}, {At: 20, Level: 2}, {At: 20, Level: 3}},
			want:  Trace{{At: 10, Level: 1}, {At: 20, Level: 3}},
		},
		{
			name:  "same instant back to previous level collapses",
			steps: []Sample{{At: 10, Level: 1}, {At: 20, Level: 0}, {At: 20, Level: 1}},
			want:  Trace{{At: 10, Level: 1}},
		},
		{
			name: "collapse then change at same instant appends",
			steps: []Sample{
				{At: 10, Level: 1}, {At: 20, Level: 0}, {At: 20, Level: 1}, {At: 20, Level: 2},
			},
			want: Trace{{At: 10, Level: 1}, {At: 20, Level: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Compactor
			for _, s := range tt.steps {
				c.Record(s.At, s.Level)
			}
			if diff := cmp.Diff(tt.want, c.Samples()); diff != "" {
				t.Errorf("trace mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), c.Len())
		})
	}
}

func TestCompactor_Reset(t *testing.T) {
	var c Compactor
	c.Record(1, 1)
	c.Record(2, 0)
	c.Reset()
	assert.Zero(t, c.Len())

	c.Record(5, 3)
	assert.Equal(t, Trace{{At: 5, Level: 3}}, c.Samples())
}

func TestTrace_LevelAt(t *testing.T) {
	tr := Trace{{At: 100, Level: 1}, {At: 150, Level: 2}, {At: 250, Level: 1}, {At: 300, Level: 0}}

	tests := []struct {
		at   Timestamp
		want int
	}{
		{at: 0, want: 0},
		{at: 99, want: 0},
		{at: 100, want: 1},
		{at: 149, want: 1},
		{at: 150, want: 2},
		{at: 249, want: 2},
		{at: 250, want: 1},
		{at: 300, want: 0},
		{at: 1000, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.LevelAt(tt.at), "LevelAt(%d)", tt.at)
	}
	assert.Zero(t, Trace(nil).LevelAt(5))
}
