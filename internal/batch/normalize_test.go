package batch

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		uniform float64
		want    []float64
	}{
		{"linear", []int{10, 20, 30}, 0, []float64{0, 50, 100}},
		{"unsorted", []int{30, 10, 20}, 0, []float64{100, 0, 50}},
		{"quarters", []int{0, 1, 2, 3, 4}, 0, []float64{0, 25, 50, 75, 100}},
		{"uniform default", []int{5, 5, 5}, 0, []float64{0, 0, 0}},
		{"uniform custom", []int{5, 5, 5}, 100, []float64{100, 100, 100}},
		{"single", []int{42}, 0, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.counts, tt.uniform)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v): got %v, want %v", tt.counts, got, tt.want)
			}
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(nil, 0); got != nil {
		t.Errorf("Normalize(nil): got %v, want nil", got)
	}
}

func TestNormalize_Range(t *testing.T) {
	counts := []int{7, 3, 901, 44, 3, 12, 600}
	for i, s := range Normalize(counts, 0) {
		if s < 0 || s > 100 {
			t.Errorf("score %d = %v outside [0,100]", i, s)
		}
	}
}
