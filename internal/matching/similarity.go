package matching

import "strings"

// Similarity scores two free-text strings in [0,1]. Exact and containment
// matches short-circuit before keyword overlap so high-confidence signals
// are not diluted by Jaccard noise. Two strings that normalize to empty
// score 0, not 1: absent text carries no matching signal.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == nb {
		if na == "" {
			return 0
		}
		return 1.0
	}
	if na != "" && nb != "" {
		if strings.Contains(na, nb) || strings.Contains(nb, na) {
			return 0.9
		}
	}
	ka := ExtractKeywords(na)
	kb := ExtractKeywords(nb)
	return jaccard(ka, kb)
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
