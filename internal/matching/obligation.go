package matching

import "strings"

// Obligation is the closed set of requirement tiers.
type Obligation string

const (
	ObligationMandatory      Obligation = "mandatory"
	ObligationRecommended    Obligation = "recommended"
	ObligationOptional       Obligation = "optional"
	ObligationClientRequired Obligation = "client_required"
)

// Obligations lists the tiers in reporting order.
var Obligations = []Obligation{
	ObligationMandatory,
	ObligationRecommended,
	ObligationOptional,
	ObligationClientRequired,
}

// ParseObligation maps a free-text obligation string onto the closed tier
// set: normalized exact match first, then substring heuristics for legacy
// values. Unrecognized strings default to mandatory so ambiguous rows are
// never dropped from compliance accounting.
func ParseObligation(s string) Obligation {
	n := NormalizeCode(s)
	switch n {
	case "mandatory", "obrigatorio", "obrigatoria":
		return ObligationMandatory
	case "recommended", "recomendado", "recomendada":
		return ObligationRecommended
	case "optional", "opcional", "facultativo":
		return ObligationOptional
	case "clientrequired", "exigidocliente", "exigidopelocliente":
		return ObligationClientRequired
	}
	switch {
	case strings.Contains(n, "client") || strings.Contains(n, "cliente"):
		return ObligationClientRequired
	case strings.Contains(n, "recomend"):
		return ObligationRecommended
	case strings.Contains(n, "opcion") || strings.Contains(n, "option") || strings.Contains(n, "facultat"):
		return ObligationOptional
	default:
		return ObligationMandatory
	}
}
