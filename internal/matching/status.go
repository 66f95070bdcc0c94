package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
)

type Status string

const (
	StatusFulfilled Status = "fulfilled"
	StatusPartial   Status = "partial"
	StatusPending   Status = "pending"
)

type Validity string

const (
	ValidityValid         Validity = "valid"
	ValidityExpired       Validity = "expired"
	ValidityNotApplicable Validity = "not_applicable"
	ValidityMissing       Validity = "missing"
)

// RequirementResult is the resolved outcome for one matrix requirement
// against one candidate's document set.
type RequirementResult struct {
	RequirementID   uuid.UUID
	CatalogID       uuid.UUID
	RequirementName string
	Group           string
	Obligation      Obligation
	Status          Status
	Validity        Validity
	MatchType       MatchType
	Score           float64
	Observation     string
	Document        *model.CandidateDocument
}

// ResolveStatus derives status, validity and an observation from a match
// outcome and the requirement's hour/modality/validity rules. Pure; the
// caller persists the result.
func ResolveStatus(outcome MatchOutcome, req model.MatrixDocument, now time.Time) RequirementResult {
	res := RequirementResult{
		RequirementID:   req.ID,
		CatalogID:       req.DocumentID,
		RequirementName: req.Document.Name,
		Group:           req.Document.Category,
		Obligation:      ParseObligation(req.Obligation),
		MatchType:       outcome.Type,
		Score:           outcome.Score,
		Document:        outcome.Document,
	}

	if outcome.Type == MatchNone || outcome.Document == nil {
		res.Status = StatusPending
		res.Validity = ValidityMissing
		res.Observation = "document absent"
		return res
	}
	doc := outcome.Document

	var notes []string
	if req.RequiredHours <= 0 {
		res.Status = StatusFulfilled
	} else {
		switch {
		case doc.TotalHours >= req.RequiredHours:
			res.Status = StatusFulfilled
		case doc.TotalHours > 0:
			res.Status = StatusPartial
			notes = append(notes, fmt.Sprintf("requires %g hours, document reports %g hours", req.RequiredHours, doc.TotalHours))
		default:
			res.Status = StatusPartial
			notes = append(notes, "hours not reported")
		}
	}

	// A modality mismatch (or absent modality) downgrades fulfilled to
	// partial; partial stays partial.
	if req.Modality != "" && NormalizeCode(doc.Modality) != NormalizeCode(req.Modality) {
		if res.Status == StatusFulfilled {
			res.Status = StatusPartial
		}
		found := doc.Modality
		if found == "" {
			found = "none"
		}
		notes = append(notes, fmt.Sprintf("modality mismatch: requires %s, found %s", req.Modality, found))
	}

	res.Validity = resolveValidity(req, doc, now)
	if res.Validity == ValidityExpired && doc.ExpiryDate != nil {
		notes = append(notes, fmt.Sprintf("expired on %s", doc.ExpiryDate.Format("2006-01-02")))
	}

	res.Observation = strings.Join(notes, "; ")
	return res
}

func resolveValidity(req model.MatrixDocument, doc *model.CandidateDocument, now time.Time) Validity {
	if notApplicableRule(req.ValidityRule) {
		return ValidityNotApplicable
	}
	if doc.ExpiryDate == nil {
		// no expiry date present: never force expiration
		return ValidityValid
	}
	if doc.ExpiryDate.Before(now) {
		return ValidityExpired
	}
	return ValidityValid
}

func notApplicableRule(rule string) bool {
	switch NormalizeCode(rule) {
	case "naoaplicavel", "naoaplica", "notapplicable", "na":
		return true
	}
	return false
}
