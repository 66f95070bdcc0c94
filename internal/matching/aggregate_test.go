package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
)

func TestAdherence(t *testing.T) {
	assert.Equal(t, 0, Adherence(0, 0, 0))
	assert.Equal(t, 75, Adherence(2, 2, 4))
	assert.Equal(t, 100, Adherence(3, 0, 3))
	assert.Equal(t, 50, Adherence(0, 4, 4))
	assert.Equal(t, 0, Adherence(0, 0, 5))
	assert.Equal(t, 17, Adherence(0, 1, 3)) // round(16.67)
}

func result(group string, tier Obligation, status Status, doc *model.CandidateDocument) RequirementResult {
	return RequirementResult{
		RequirementID: uuid.New(),
		Group:         group,
		Obligation:    tier,
		Status:        status,
		Document:      doc,
	}
}

func TestAggregate(t *testing.T) {
	matchedDoc := &model.CandidateDocument{ID: uuid.New(), Name: "NR-35"}
	extraDoc := model.CandidateDocument{ID: uuid.New(), Name: "Curso nao exigido"}

	results := []RequirementResult{
		result("seguranca", ObligationMandatory, StatusFulfilled, matchedDoc),
		result("seguranca", ObligationMandatory, StatusFulfilled, nil),
		result("seguranca", ObligationMandatory, StatusPartial, nil),
		result("saude", ObligationRecommended, StatusPartial, nil),
	}
	docs := []model.CandidateDocument{*matchedDoc, extraDoc}

	summary := Aggregate(results, docs)

	assert.Equal(t, 4, summary.Overall.Total)
	assert.Equal(t, 2, summary.Overall.Fulfilled)
	assert.Equal(t, 2, summary.Overall.Partial)
	assert.Equal(t, 0, summary.Overall.Pending)
	assert.Equal(t, 75, summary.Overall.Adherence)

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "saude", summary.Groups[0].Name)
	assert.Equal(t, 50, summary.Groups[0].Adherence)
	assert.Equal(t, "seguranca", summary.Groups[1].Name)
	assert.Equal(t, 83, summary.Groups[1].Adherence) // round((2+0.5)/3*100)

	require.Len(t, summary.Obligations, 4)
	byTier := map[string]GroupSummary{}
	for _, tier := range summary.Obligations {
		byTier[tier.Name] = tier
	}
	assert.Equal(t, 3, byTier["mandatory"].Total)
	assert.Equal(t, 1, byTier["recommended"].Total)
	assert.Equal(t, 0, byTier["optional"].Total)
	assert.Equal(t, 0, byTier["optional"].Adherence)
	assert.Equal(t, 0, byTier["client_required"].Total)

	// only the unmatched upload is surfaced as non-required
	require.Len(t, summary.NonRequired, 1)
	assert.Equal(t, extraDoc.ID, summary.NonRequired[0].ID)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, nil)
	assert.Equal(t, 0, summary.Overall.Total)
	assert.Equal(t, 0, summary.Overall.Adherence)
	assert.Empty(t, summary.Groups)
	assert.Empty(t, summary.NonRequired)
	assert.Len(t, summary.Obligations, 4)
}

func TestAggregateUnknownObligation(t *testing.T) {
	results := []RequirementResult{
		result("geral", Obligation("legacy-tier"), StatusFulfilled, nil),
		result("geral", Obligation(""), StatusPartial, nil),
	}
	summary := Aggregate(results, nil)

	// unrecognized tiers land in the mandatory bucket instead of panicking
	byTier := map[string]GroupSummary{}
	for _, tier := range summary.Obligations {
		byTier[tier.Name] = tier
	}
	assert.Equal(t, 2, byTier["mandatory"].Total)
	assert.Equal(t, 1, byTier["mandatory"].Fulfilled)
	assert.Equal(t, 1, byTier["mandatory"].Partial)
	assert.Equal(t, 2, summary.Overall.Total)
}

func TestAggregatePendingCounts(t *testing.T) {
	results := []RequirementResult{
		result("geral", ObligationMandatory, StatusPending, nil),
		result("geral", ObligationMandatory, StatusFulfilled, nil),
	}
	summary := Aggregate(results, nil)
	assert.Equal(t, 1, summary.Overall.Pending)
	assert.Equal(t, 50, summary.Overall.Adherence)
}
