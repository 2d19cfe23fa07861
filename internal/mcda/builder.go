package mcda

import "math"

// SiteRecord is an opaque candidate site as handed over by the surrounding
// application. Payload carries whatever the caller's data source produced;
// only the caller-supplied extractor knows how to read it.
type SiteRecord struct {
	ID      string
	Name    string
	Payload any
}

// ValueFunc extracts the numeric value of one criterion from a site record.
type ValueFunc func(site SiteRecord, criterionID string) (float64, error)

// BuildAlternatives produces one alternative per site by invoking extract for
// every requested criterion. This is the fail-soft boundary: an extractor
// error, panic, NaN or infinity substitutes 0 so a single bad record never
// aborts the whole batch. The engine itself never substitutes defaults — only
// this boundary does. Input order is preserved.
func BuildAlternatives(sites []SiteRecord, criterionIDs []string, extract ValueFunc) []Alternative {
	alternatives := make([]Alternative, 0, len(sites))
	for _, site := range sites {
		values := make(map[string]float64, len(criterionIDs))
		for _, id := range criterionIDs {
			values[id] = safeExtract(site, id, extract)
		}
		alternatives = append(alternatives, Alternative{
			ID:     site.ID,
			Name:   site.Name,
			Values: values,
		})
	}
	return alternatives
}

func safeExtract(site SiteRecord, criterionID string, extract ValueFunc) (v float64) {
	defer func() {
		if recover() != nil {
			v = 0
		}
	}()
	v, err := extract(site, criterionID)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
