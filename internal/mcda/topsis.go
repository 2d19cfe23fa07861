package mcda

import (
	"fmt"
	"math"
	"sort"
)

// Rank orders alternatives by TOPSIS closeness to the ideal solution.
// Criteria carry their resolved weights and directions; criterion order
// defines the matrix columns, alternative order defines the rows.
//
// Ties are broken by original input order: the first-seen alternative ranks
// higher. That makes repeated runs over the same input bit-identical.
//
// Returns ErrEmptyInput for an empty matrix and ErrDegenerateCriterion when a
// criterion's values are identical across all alternatives.
func Rank(alternatives []Alternative, criteria []Criterion) ([]RankedAlternative, error) {
	if len(alternatives) == 0 || len(criteria) == 0 {
		return nil, ErrEmptyInput
	}

	rows := len(alternatives)
	cols := len(criteria)

	// Vector-normalize each column, then apply criterion weights.
	weighted := make([][]float64, rows)
	for i := range weighted {
		weighted[i] = make([]float64, cols)
	}
	for j, crit := range criteria {
		var sumSq float64
		for _, alt := range alternatives {
			v := alt.Values[crit.ID]
			sumSq += v * v
		}
		norm := math.Sqrt(sumSq)

		degenerate := true
		first := alternatives[0].Values[crit.ID]
		for _, alt := range alternatives[1:] {
			if alt.Values[crit.ID] != first {
				degenerate = false
				break
			}
		}
		if degenerate || norm == 0 {
			return nil, fmt.Errorf("%w: %s", ErrDegenerateCriterion, crit.ID)
		}

		for i, alt := range alternatives {
			weighted[i][j] = alt.Values[crit.ID] / norm * crit.Weight
		}
	}

	// Ideal best/worst per column, flipped for cost criteria.
	best := make([]float64, cols)
	worst := make([]float64, cols)
	for j, crit := range criteria {
		colMin, colMax := weighted[0][j], weighted[0][j]
		for i := 1; i < rows; i++ {
			if weighted[i][j] < colMin {
				colMin = weighted[i][j]
			}
			if weighted[i][j] > colMax {
				colMax = weighted[i][j]
			}
		}
		if crit.Direction == Cost {
			best[j], worst[j] = colMin, colMax
		} else {
			best[j], worst[j] = colMax, colMin
		}
	}

	results := make([]RankedAlternative, rows)
	for i, alt := range alternatives {
		var dBest, dWorst float64
		for j := 0; j < cols; j++ {
			db := weighted[i][j] - best[j]
			dw := weighted[i][j] - worst[j]
			dBest += db * db
			dWorst += dw * dw
		}
		dBest = math.Sqrt(dBest)
		dWorst = math.Sqrt(dWorst)

		score := 0.0
		if dBest+dWorst > 0 {
			score = dWorst / (dBest + dWorst)
		}
		results[i] = RankedAlternative{
			AlternativeID: alt.ID,
			Name:          alt.Name,
			Score:         score,
		}
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}
