package mcda

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveWeightsSingleCriterion(t *testing.T) {
	result, err := DeriveWeights([]string{"cost_usd"}, nil)
	if err != nil {
		t.Fatalf("DeriveWeights failed: %v", err)
	}
	if result.Weights["cost_usd"] != 1.0 {
		t.Errorf("expected weight 1.0, got %f", result.Weights["cost_usd"])
	}
	if result.ConsistencyRatio != 0 {
		t.Errorf("expected CR 0, got %f", result.ConsistencyRatio)
	}
	if !result.Consistent {
		t.Error("single criterion must be consistent")
	}
}

func TestDeriveWeightsTwoCriteria(t *testing.T) {
	comparisons := []PairwiseComparison{{A: "a", B: "b", Value: 3}}
	result, err := DeriveWeights([]string{"a", "b"}, comparisons)
	if err != nil {
		t.Fatalf("DeriveWeights failed: %v", err)
	}
	if math.Abs(result.Weights["a"]-0.75) > 1e-9 {
		t.Errorf("expected weight 0.75 for a, got %f", result.Weights["a"])
	}
	if math.Abs(result.Weights["b"]-0.25) > 1e-9 {
		t.Errorf("expected weight 0.25 for b, got %f", result.Weights["b"])
	}
	if result.ConsistencyRatio != 0 {
		t.Errorf("2x2 matrix must have CR 0, got %f", result.ConsistencyRatio)
	}
	if !result.Consistent {
		t.Error("2x2 matrix must be consistent")
	}
}

func TestDeriveWeightsConsistentMatrix(t *testing.T) {
	// Perfectly transitive: M13 = M12 * M23 = 9 * (1/9) = 1.
	comparisons := []PairwiseComparison{
		{A: "c1", B: "c2", Value: 9},
		{A: "c1", B: "c3", Value: 1},
		{A: "c2", B: "c3", Value: 1.0 / 9.0},
	}
	result, err := DeriveWeights([]string{"c1", "c2", "c3"}, comparisons)
	if err != nil {
		t.Fatalf("DeriveWeights failed: %v", err)
	}

	// Exact weights for this matrix: (9/19, 1/19, 9/19).
	want := map[string]float64{"c1": 9.0 / 19.0, "c2": 1.0 / 19.0, "c3": 9.0 / 19.0}
	for id, expected := range want {
		if math.Abs(result.Weights[id]-expected) > 1e-9 {
			t.Errorf("weight %s: expected %f, got %f", id, expected, result.Weights[id])
		}
	}
	if math.Abs(result.ConsistencyRatio) > 1e-9 {
		t.Errorf("expected CR near 0, got %f", result.ConsistencyRatio)
	}
	if !result.Consistent {
		t.Error("expected consistent judgment")
	}
}

func TestDeriveWeightsInconsistentMatrix(t *testing.T) {
	// Circular judgment: a >> b, b >> c, but c >> a.
	comparisons := []PairwiseComparison{
		{A: "a", B: "b", Value: 9},
		{A: "b", B: "c", Value: 9},
		{A: "a", B: "c", Value: 1.0 / 9.0},
	}
	result, err := DeriveWeights([]string{"a", "b", "c"}, comparisons)
	if err != nil {
		t.Fatalf("DeriveWeights failed: %v", err)
	}
	if result.ConsistencyRatio <= ConsistencyThreshold {
		t.Errorf("expected CR above %.2f, got %f", ConsistencyThreshold, result.ConsistencyRatio)
	}
	if result.Consistent {
		t.Error("circular judgment must be flagged inconsistent")
	}

	// Weights are still derived and usable even when inconsistent.
	var sum float64
	for _, w := range result.Weights {
		if w <= 0 {
			t.Errorf("expected positive weight, got %f", w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %f, expected 1.0", sum)
	}
}

func TestDeriveWeightsIncompleteMatrix(t *testing.T) {
	comparisons := []PairwiseComparison{
		{A: "a", B: "b", Value: 3},
		// (a,c) and (b,c) missing
	}
	_, err := DeriveWeights([]string{"a", "b", "c"}, comparisons)
	if !errors.Is(err, ErrIncompleteMatrix) {
		t.Fatalf("expected ErrIncompleteMatrix, got %v", err)
	}
}

func TestBuildMatrixReciprocity(t *testing.T) {
	ids := []string{"a", "b", "c"}

	// Comparisons supplied in mixed orientation and order.
	orderings := [][]PairwiseComparison{
		{
			{A: "a", B: "b", Value: 3},
			{A: "a", B: "c", Value: 5},
			{A: "b", B: "c", Value: 2},
		},
		{
			{A: "b", B: "c", Value: 2},
			{A: "c", B: "a", Value: 0.2}, // same judgment as (a,c)=5
			{A: "b", B: "a", Value: 1.0 / 3.0},
		},
	}

	for _, comparisons := range orderings {
		m, err := buildMatrix(ids, comparisons)
		if err != nil {
			t.Fatalf("buildMatrix failed: %v", err)
		}
		for i := range m {
			if m[i][i] != 1 {
				t.Errorf("M[%d][%d] = %f, expected 1", i, i, m[i][i])
			}
			for j := range m {
				product := m[i][j] * m[j][i]
				if math.Abs(product-1.0) > 1e-9 {
					t.Errorf("M[%d][%d]*M[%d][%d] = %f, expected 1", i, j, j, i, product)
				}
			}
		}
	}
}

func TestBuildMatrixFirstJudgmentWins(t *testing.T) {
	ids := []string{"a", "b"}
	comparisons := []PairwiseComparison{
		{A: "a", B: "b", Value: 3},
		{A: "b", B: "a", Value: 9}, // contradicts the derived reciprocal; ignored
	}
	m, err := buildMatrix(ids, comparisons)
	if err != nil {
		t.Fatalf("buildMatrix failed: %v", err)
	}
	if m[0][1] != 3 {
		t.Errorf("expected M[0][1]=3, got %f", m[0][1])
	}
	if math.Abs(m[1][0]-1.0/3.0) > 1e-9 {
		t.Errorf("expected M[1][0]=1/3, got %f", m[1][0])
	}
}

func TestRandomIndexTable(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 0}, {2, 0}, {3, 0.58}, {4, 0.90}, {5, 1.12},
		{9, 1.45}, {10, 1.49}, {15, 1.59},
		{20, 1.59}, // beyond the table: plateau at the last entry
	}
	for _, tt := range tests {
		if got := riFor(tt.n); got != tt.want {
			t.Errorf("riFor(%d) = %f, want %f", tt.n, got, tt.want)
		}
	}
}
