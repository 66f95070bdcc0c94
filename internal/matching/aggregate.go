package matching

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
)

// GroupSummary rolls up requirement statuses for one grouping key.
// Adherence weights partial matches at 50%.
type GroupSummary struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Fulfilled int    `json:"fulfilled"`
	Partial   int    `json:"partial"`
	Pending   int    `json:"pending"`
	Adherence int    `json:"adherence"`
}

// Summary is the full aggregation for one candidate against one matrix.
type Summary struct {
	Overall     GroupSummary              `json:"overall"`
	Groups      []GroupSummary            `json:"groups"`
	Obligations []GroupSummary            `json:"obligations"`
	Results     []RequirementResult       `json:"results"`
	NonRequired []model.CandidateDocument `json:"non_required_documents"`
}

// Adherence computes round((fulfilled + partial*0.5) / total * 100),
// or 0 for an empty group.
func Adherence(fulfilled, partial, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round((float64(fulfilled) + float64(partial)*0.5) / float64(total) * 100))
}

// Aggregate rolls per-requirement results into department-group, obligation
// tier and overall summaries, and surfaces candidate documents no
// requirement selected (informational, not a failure).
func Aggregate(results []RequirementResult, docs []model.CandidateDocument) Summary {
	groups := make(map[string]*GroupSummary)
	tiers := make(map[Obligation]*GroupSummary, len(Obligations))
	for _, tier := range Obligations {
		tiers[tier] = &GroupSummary{Name: string(tier)}
	}
	overall := GroupSummary{Name: "overall"}
	matched := make(map[uuid.UUID]struct{})

	for _, res := range results {
		name := res.Group
		if name == "" {
			name = "general"
		}
		g, ok := groups[name]
		if !ok {
			g = &GroupSummary{Name: name}
			groups[name] = g
		}
		tier, ok := tiers[res.Obligation]
		if !ok {
			// results built outside ResolveStatus may carry raw obligation
			// strings; fold them into the conservative default tier
			tier = tiers[ObligationMandatory]
		}
		for _, s := range []*GroupSummary{g, tier, &overall} {
			s.Total++
			switch res.Status {
			case StatusFulfilled:
				s.Fulfilled++
			case StatusPartial:
				s.Partial++
			default:
				s.Pending++
			}
		}
		if res.Document != nil {
			matched[res.Document.ID] = struct{}{}
		}
	}

	summary := Summary{Results: results}
	overall.Adherence = Adherence(overall.Fulfilled, overall.Partial, overall.Total)
	summary.Overall = overall

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g := groups[name]
		g.Adherence = Adherence(g.Fulfilled, g.Partial, g.Total)
		summary.Groups = append(summary.Groups, *g)
	}
	for _, tier := range Obligations {
		t := tiers[tier]
		t.Adherence = Adherence(t.Fulfilled, t.Partial, t.Total)
		summary.Obligations = append(summary.Obligations, *t)
	}

	for _, doc := range docs {
		if _, ok := matched[doc.ID]; !ok {
			summary.NonRequired = append(summary.NonRequired, doc)
		}
	}
	return summary
}
