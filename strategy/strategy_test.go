package strategy_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tailored-agentic-units/arraymul/strategy"
)

var variants = []strategy.Strategy{
	strategy.Loop{},
	strategy.Pointer{},
	strategy.Transform{},
	strategy.Range{},
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		k     int
		want  []int
	}{
		{name: "basic", input: []int{1, 2, 3}, k: 3, want: []int{3, 6, 9}},
		{name: "zero multiplier", input: []int{4, -5, 6}, k: 0, want: []int{0, 0, 0}},
		{name: "negative multiplier", input: []int{1, -2, 3}, k: -2, want: []int{-2, 4, -6}},
		{name: "identity", input: []int{7, 8}, k: 1, want: []int{7, 8}},
		{name: "single element", input: []int{5}, k: 5, want: []int{25}},
		{name: "empty", input: []int{}, k: 9, want: []int{}},
		{name: "overflow wraps", input: []int{math.MaxInt}, k: 2, want: []int{-2}},
	}

	for _, s := range variants {
		for _, tt := range tests {
			t.Run(s.Name()+"/"+tt.name, func(t *testing.T) {
				got := slices.Clone(tt.input)
				s.Apply(got, tt.k)
				if !slices.Equal(got, tt.want) {
					t.Errorf("Apply(%v, %d) = %v, want %v", tt.input, tt.k, got, tt.want)
				}
			})
		}
	}
}

func TestApply_NilSlice(t *testing.T) {
	for _, s := range variants {
		t.Run(s.Name(), func(t *testing.T) {
			var empty []int
			s.Apply(empty, 3)
			if empty != nil {
				t.Errorf("nil slice was replaced: %v", empty)
			}
		})
	}
}

func TestApply_SubSlice(t *testing.T) {
	for _, s := range variants {
		t.Run(s.Name(), func(t *testing.T) {
			backing := []int{1, 2, 3, 4, 5}
			s.Apply(backing[1:4], 10)

			want := []int{1, 20, 30, 40, 5}
			if !slices.Equal(backing, want) {
				t.Errorf("got %v, want %v (elements outside the sub-slice must be untouched)", backing, want)
			}
		})
	}
}

func TestVariants_Equivalent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := range 200 {
		input := make([]int, r.IntN(64))
		for i := range input {
			input[i] = r.Int() - math.MaxInt/2
		}
		k := r.IntN(2001) - 1000

		want := slices.Clone(input)
		variants[0].Apply(want, k)

		for _, s := range variants[1:] {
			got := slices.Clone(input)
			s.Apply(got, k)
			if !slices.Equal(got, want) {
				t.Fatalf("round %d: %s diverged from %s for k=%d", round, s.Name(), variants[0].Name(), k)
			}
		}
	}
}

func TestNames_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range variants {
		name := s.Name()
		if name == "" {
			t.Errorf("%T has empty name", s)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}
