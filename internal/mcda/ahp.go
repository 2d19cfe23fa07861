package mcda

import "fmt"

// ConsistencyThreshold is Saaty's accepted upper bound for the consistency
// ratio of a pairwise comparison matrix.
const ConsistencyThreshold = 0.10

// randomIndex is Saaty's published random-index table, indexed by matrix
// order. RI(1) and RI(2) are zero: matrices that small cannot be inconsistent.
var randomIndex = []float64{
	0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45,
	1.49, 1.51, 1.48, 1.56, 1.57, 1.59,
}

// DeriveWeights builds the reciprocal comparison matrix for the given
// criteria and derives a normalized weight vector via the normalized
// column-sum approximation to the principal eigenvector, together with the
// consistency ratio.
//
// The column-sum approximation is a deliberate simplification versus full
// power-iteration eigen-decomposition: both converge to the same weights for
// well-formed consistent matrices (and the approximation is numerically
// adequate for the n <= ~10 matrices this engine sees), but they may diverge
// slightly under high inconsistency. Highly inconsistent matrices are still
// accepted; the CR is reported and the caller decides whether to proceed.
//
// Returns ErrIncompleteMatrix when any upper-triangle pair (i, j), i < j, has
// no supplied comparison.
func DeriveWeights(criterionIDs []string, comparisons []PairwiseComparison) (*AHPResult, error) {
	n := len(criterionIDs)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n == 1 {
		return &AHPResult{
			Weights:          map[string]float64{criterionIDs[0]: 1.0},
			ConsistencyRatio: 0,
			Consistent:       true,
		}, nil
	}

	m, err := buildMatrix(criterionIDs, comparisons)
	if err != nil {
		return nil, err
	}

	w := columnSumWeights(m)

	// lambda_max as the average of (M*w)[i] / w[i].
	var lambdaMax float64
	for i := 0; i < n; i++ {
		var mw float64
		for j := 0; j < n; j++ {
			mw += m[i][j] * w[j]
		}
		lambdaMax += mw / w[i]
	}
	lambdaMax /= float64(n)

	// A 2x2 reciprocal matrix is always consistent.
	var ci float64
	if n > 2 {
		ci = (lambdaMax - float64(n)) / float64(n-1)
	}

	cr := 0.0
	if ri := riFor(n); ri > 0 {
		cr = ci / ri
	}

	weights := make(map[string]float64, n)
	for i, id := range criterionIDs {
		weights[id] = w[i]
	}

	return &AHPResult{
		Weights:          weights,
		ConsistencyRatio: cr,
		Consistent:       cr <= ConsistencyThreshold,
	}, nil
}

// buildMatrix assembles the n x n reciprocal matrix. The first supplied value
// for an unordered pair wins, and its reciprocal is always derived — an
// independently supplied inverse entry is never accepted.
func buildMatrix(criterionIDs []string, comparisons []PairwiseComparison) ([][]float64, error) {
	n := len(criterionIDs)
	index := make(map[string]int, n)
	for i, id := range criterionIDs {
		index[id] = i
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}

	for _, c := range comparisons {
		i, iok := index[c.A]
		j, jok := index[c.B]
		if !iok || !jok || i == j || c.Value <= 0 {
			// Unknown ids and non-positive values are rejected by the
			// validator before the engine runs; skip rather than guess.
			continue
		}
		if m[i][j] != 0 {
			continue // pair already set, keep the first judgment
		}
		m[i][j] = c.Value
		m[j][i] = 1 / c.Value
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] == 0 {
				return nil, fmt.Errorf("%w: %s vs %s", ErrIncompleteMatrix, criterionIDs[i], criterionIDs[j])
			}
		}
	}
	return m, nil
}

// columnSumWeights normalizes each column to sum to 1, then averages each row
// of the normalized matrix.
func columnSumWeights(m [][]float64) []float64 {
	n := len(m)
	colSums := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			colSums[j] += m[i][j]
		}
	}

	w := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w[i] += m[i][j] / colSums[j]
		}
		w[i] /= float64(n)
	}
	return w
}

func riFor(n int) float64 {
	if n < len(randomIndex) {
		return randomIndex[n]
	}
	// Beyond the published table the index plateaus; use the last entry.
	return randomIndex[len(randomIndex)-1]
}
