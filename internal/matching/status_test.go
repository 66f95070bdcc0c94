package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func matchedOutcome(doc *model.CandidateDocument) MatchOutcome {
	return MatchOutcome{Document: doc, Type: MatchExactCode, Score: 0.95}
}

func TestResolveStatusNoMatch(t *testing.T) {
	req := newRequirement("Trabalho em Altura", "NR-35")
	res := ResolveStatus(MatchOutcome{Type: MatchNone}, req, testNow)

	assert.Equal(t, StatusPending, res.Status)
	assert.Equal(t, ValidityMissing, res.Validity)
	assert.Equal(t, "document absent", res.Observation)
}

func TestResolveStatusNoHourRequirement(t *testing.T) {
	req := newRequirement("Atestado de Saude Ocupacional", "ASO")
	doc := &model.CandidateDocument{ID: uuid.New(), Name: "ASO"}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusFulfilled, res.Status)
	assert.Equal(t, ValidityValid, res.Validity)
	assert.Empty(t, res.Observation)
}

func TestResolveStatusPartialHours(t *testing.T) {
	req := newRequirement("Trabalho em Altura", "NR-35")
	req.RequiredHours = 40
	doc := &model.CandidateDocument{ID: uuid.New(), TotalHours: 20}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Contains(t, res.Observation, "40")
	assert.Contains(t, res.Observation, "20")
}

func TestResolveStatusHoursNotReported(t *testing.T) {
	req := newRequirement("Trabalho em Altura", "NR-35")
	req.RequiredHours = 8
	doc := &model.CandidateDocument{ID: uuid.New()}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Contains(t, res.Observation, "hours not reported")
}

func TestResolveStatusSufficientHours(t *testing.T) {
	req := newRequirement("Trabalho em Altura", "NR-35")
	req.RequiredHours = 8
	doc := &model.CandidateDocument{ID: uuid.New(), TotalHours: 8}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusFulfilled, res.Status)
}

func TestResolveStatusModalityDowngrade(t *testing.T) {
	req := newRequirement("Combate a Incendio", "CI")
	req.Modality = "presencial"
	doc := &model.CandidateDocument{ID: uuid.New(), TotalHours: 16, Modality: "online"}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Contains(t, res.Observation, "modality mismatch")

	// absent modality counts as mismatch too
	doc.Modality = ""
	res = ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Contains(t, res.Observation, "none")
}

func TestResolveStatusModalityKeepsPartialPartial(t *testing.T) {
	req := newRequirement("Combate a Incendio", "CI")
	req.RequiredHours = 40
	req.Modality = "presencial"
	doc := &model.CandidateDocument{ID: uuid.New(), TotalHours: 10, Modality: "online"}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Contains(t, res.Observation, "modality mismatch")
	assert.Contains(t, res.Observation, "40")
}

func TestResolveStatusValidity(t *testing.T) {
	req := newRequirement("HUET", "HUET")

	past := testNow.AddDate(-1, 0, 0)
	future := testNow.AddDate(1, 0, 0)

	expired := &model.CandidateDocument{ID: uuid.New(), ExpiryDate: &past}
	res := ResolveStatus(matchedOutcome(expired), req, testNow)
	assert.Equal(t, ValidityExpired, res.Validity)
	assert.Contains(t, res.Observation, "expired on")

	valid := &model.CandidateDocument{ID: uuid.New(), ExpiryDate: &future}
	res = ResolveStatus(matchedOutcome(valid), req, testNow)
	assert.Equal(t, ValidityValid, res.Validity)

	// no expiry date: never force expiration
	open := &model.CandidateDocument{ID: uuid.New()}
	res = ResolveStatus(matchedOutcome(open), req, testNow)
	assert.Equal(t, ValidityValid, res.Validity)
}

func TestResolveStatusValidityNotApplicable(t *testing.T) {
	req := newRequirement("Curriculo", "CV")
	req.ValidityRule = "não aplicável"
	doc := &model.CandidateDocument{ID: uuid.New()}

	res := ResolveStatus(matchedOutcome(doc), req, testNow)
	assert.Equal(t, ValidityNotApplicable, res.Validity)
}
