// Package mcda implements the multi-criteria decision analysis engine used to
// rank candidate facility sites: AHP for deriving criterion weights from
// pairwise comparisons, TOPSIS for ranking alternatives against those weights.
// The package is pure computation over in-memory data — it knows nothing about
// HTTP, storage, or where criterion values come from.
package mcda

import (
	"fmt"
	"math"
)

// Direction indicates whether higher or lower raw values are preferred for a
// criterion.
type Direction string

const (
	// Benefit criteria are better when higher (e.g. annual irradiance).
	Benefit Direction = "benefit"
	// Cost criteria are better when lower (e.g. installation cost).
	Cost Direction = "cost"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Benefit || d == Cost
}

// Method selects how criterion weights are obtained.
type Method string

const (
	// MethodDirect uses analyst-supplied weights as-is.
	MethodDirect Method = "direct"
	// MethodAHP derives weights from pairwise comparisons.
	MethodAHP Method = "ahp"
)

// Criterion is one scoring dimension with its resolved weight.
type Criterion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
	Weight    float64   `json:"weight"`
}

// Alternative is one candidate site with a numeric value per criterion.
// Every selected criterion must have an entry in Values; a missing entry is a
// validation failure, never an implicit default.
type Alternative struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

// Saaty scale bounds for pairwise comparison values.
const (
	SaatyMin = 1.0 / 9.0
	SaatyMax = 9.0
)

// PairwiseComparison states that criterion A is Value times as important as
// criterion B on Saaty's 1–9 scale. The reciprocal entry is always derived,
// never supplied.
type PairwiseComparison struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Value float64 `json:"value"`
}

// AHPResult holds the derived weight vector and the consistency diagnostics
// for one analysis. Inconsistency is reported, never blocking.
type AHPResult struct {
	Weights          map[string]float64 `json:"weights"`
	ConsistencyRatio float64            `json:"consistency_ratio"`
	Consistent       bool               `json:"is_consistent"`
}

// RankedAlternative is one row of the TOPSIS ranking. Score is the closeness
// coefficient in [0, 1]; Rank starts at 1 for the best alternative.
type RankedAlternative struct {
	AlternativeID string  `json:"alternative_id"`
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	Rank          int     `json:"rank"`
}

// AnalysisRequest bundles everything the engine needs for one ranking run.
// Alternative values are resolved by the caller; the engine never fetches.
type AnalysisRequest struct {
	Method       Method               `json:"method"`
	CriterionIDs []string             `json:"criteria"`
	Weights      map[string]float64   `json:"weights,omitempty"`
	Comparisons  []PairwiseComparison `json:"pairwise_comparisons,omitempty"`
	Alternatives []Alternative        `json:"alternatives"`
}

// AnalysisResponse aggregates the outcome of one analysis. A non-empty
// ValidationErrors list implies Ranking is empty.
type AnalysisResponse struct {
	Method           Method              `json:"method"`
	Ranking          []RankedAlternative `json:"ranking"`
	Weights          map[string]float64  `json:"resolved_weights,omitempty"`
	AHP              *AHPResult          `json:"ahp_diagnostics,omitempty"`
	ValidationErrors []string            `json:"validation_errors"`
}

// WeightTolerance is the allowed deviation of a direct weight vector's sum
// from 1.0.
const WeightTolerance = 1e-3

// SumWeights totals the weights for the given criterion ids. Missing entries
// contribute zero; presence is the validator's concern.
func SumWeights(weights map[string]float64, criterionIDs []string) float64 {
	var sum float64
	for _, id := range criterionIDs {
		sum += weights[id]
	}
	return sum
}

func checkWeightSum(weights map[string]float64, criterionIDs []string) error {
	sum := SumWeights(weights, criterionIDs)
	if math.Abs(sum-1.0) > WeightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", sum)
	}
	return nil
}
