package mcda

import "errors"

// Engine failure modes. The orchestrator converts these into user-facing
// validation messages; they never escape past it.
var (
	// ErrEmptyInput is returned when TOPSIS receives no alternatives or no
	// criteria.
	ErrEmptyInput = errors.New("empty input: at least one alternative and one criterion required")

	// ErrDegenerateCriterion is returned when a criterion has identical values
	// across all alternatives, so its column norm is zero and normalization is
	// undefined.
	ErrDegenerateCriterion = errors.New("degenerate criterion: identical values across all alternatives")

	// ErrIncompleteMatrix is returned when a required pairwise comparison is
	// missing from an AHP request.
	ErrIncompleteMatrix = errors.New("incomplete comparison matrix: missing pairwise comparison")
)
