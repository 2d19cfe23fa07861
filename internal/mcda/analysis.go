package mcda

import "log/slog"

// Analyzer runs the full analysis pipeline: validate, resolve weights
// (directly or via AHP), rank with TOPSIS. It is a construct-once,
// call-many-times value object with no mutable state, so concurrent Run calls
// need no coordination.
type Analyzer struct {
	resolver CriterionResolver
	logger   *slog.Logger
}

// NewAnalyzer creates an Analyzer backed by the given criterion resolver.
func NewAnalyzer(resolver CriterionResolver, logger *slog.Logger) *Analyzer {
	return &Analyzer{resolver: resolver, logger: logger}
}

// Run executes one analysis request. It never returns an error: validation
// failures and engine failures alike are reported through ValidationErrors,
// and a non-empty error list means Ranking is empty. This is the boundary
// where internal failures become user-facing messages.
func (a *Analyzer) Run(req AnalysisRequest) AnalysisResponse {
	if errs := ValidateRequest(req, a.resolver); len(errs) > 0 {
		a.logger.Info("analysis rejected",
			"method", req.Method,
			"errors", len(errs),
		)
		return failed(req.Method, errs)
	}

	var ahp *AHPResult
	var weights map[string]float64

	switch req.Method {
	case MethodAHP:
		result, err := DeriveWeights(req.CriterionIDs, req.Comparisons)
		if err != nil {
			return failed(req.Method, []string{err.Error()})
		}
		ahp = result
		weights = result.Weights
	default:
		weights = make(map[string]float64, len(req.CriterionIDs))
		for _, id := range req.CriterionIDs {
			weights[id] = req.Weights[id]
		}
	}

	criteria := make([]Criterion, 0, len(req.CriterionIDs))
	for _, id := range req.CriterionIDs {
		info, _ := a.resolver.Lookup(id) // membership already validated
		criteria = append(criteria, Criterion{
			ID:        id,
			Name:      info.Name,
			Direction: info.Direction,
			Weight:    weights[id],
		})
	}

	ranking, err := Rank(req.Alternatives, criteria)
	if err != nil {
		return failed(req.Method, []string{err.Error()})
	}

	a.logger.Info("analysis complete",
		"method", req.Method,
		"alternatives", len(req.Alternatives),
		"criteria", len(criteria),
	)

	return AnalysisResponse{
		Method:           req.Method,
		Ranking:          ranking,
		Weights:          weights,
		AHP:              ahp,
		ValidationErrors: []string{},
	}
}

func failed(method Method, errs []string) AnalysisResponse {
	return AnalysisResponse{
		Method:           method,
		Ranking:          []RankedAlternative{},
		ValidationErrors: errs,
	}
}
