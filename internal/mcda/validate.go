package mcda

import "fmt"

// CriterionInfo is the catalog's description of one criterion, used to
// decorate output and to resolve directions.
type CriterionInfo struct {
	Name      string
	Direction Direction
	Unit      string
	Source    string
}

// CriterionResolver looks up criterion metadata. The engine only needs
// membership and decoration; the registry itself lives with the caller.
type CriterionResolver interface {
	Lookup(id string) (CriterionInfo, bool)
}

// ValidateRequest checks structural and numeric preconditions before either
// engine runs. All violations are collected and returned as a batch — no
// early return — so one round trip surfaces every fixable problem.
func ValidateRequest(req AnalysisRequest, resolver CriterionResolver) []string {
	var errs []string

	if len(req.Alternatives) < 2 {
		errs = append(errs, "at least 2 alternatives are required")
	}
	if len(req.CriterionIDs) == 0 {
		errs = append(errs, "at least 1 criterion must be selected")
	}

	for _, id := range req.CriterionIDs {
		if _, ok := resolver.Lookup(id); !ok {
			errs = append(errs, fmt.Sprintf("unknown criterion: %s", id))
		}
	}

	for _, alt := range req.Alternatives {
		for _, id := range req.CriterionIDs {
			if _, ok := alt.Values[id]; !ok {
				errs = append(errs, fmt.Sprintf("alternative %s is missing a value for criterion %s", alt.ID, id))
			}
		}
	}

	switch req.Method {
	case MethodDirect:
		for _, id := range req.CriterionIDs {
			if _, ok := req.Weights[id]; !ok {
				errs = append(errs, fmt.Sprintf("missing weight for criterion %s", id))
			}
		}
		if len(req.CriterionIDs) > 0 {
			if err := checkWeightSum(req.Weights, req.CriterionIDs); err != nil {
				errs = append(errs, err.Error())
			}
		}
	case MethodAHP:
		n := len(req.CriterionIDs)
		required := n * (n - 1) / 2
		if len(req.Comparisons) < required {
			errs = append(errs, fmt.Sprintf("%d pairwise comparisons supplied, at least %d required for %d criteria", len(req.Comparisons), required, n))
		}
		selected := make(map[string]bool, n)
		for _, id := range req.CriterionIDs {
			selected[id] = true
		}
		for _, c := range req.Comparisons {
			if !selected[c.A] {
				errs = append(errs, fmt.Sprintf("comparison references unselected criterion: %s", c.A))
			}
			if !selected[c.B] {
				errs = append(errs, fmt.Sprintf("comparison references unselected criterion: %s", c.B))
			}
			if c.A == c.B {
				errs = append(errs, fmt.Sprintf("comparison pairs criterion %s with itself", c.A))
			}
			if c.Value < SaatyMin || c.Value > SaatyMax {
				errs = append(errs, fmt.Sprintf("comparison %s vs %s: value %.4f outside Saaty scale [1/9, 9]", c.A, c.B, c.Value))
			}
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown weighting method: %s", req.Method))
	}

	return errs
}
