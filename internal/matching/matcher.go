package matching

import (
	"strings"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
)

type MatchType string

const (
	MatchExactID      MatchType = "exact_id"
	MatchExactCode    MatchType = "exact_code"
	MatchSemanticName MatchType = "semantic_name"
	MatchNone         MatchType = "none"
)

// FuzzyThreshold is the minimum name similarity a candidate document must
// exceed to count as a semantic match.
const FuzzyThreshold = 0.6

// MatchOutcome links one matrix requirement to the best candidate document,
// if any, with how it matched and at what confidence.
type MatchOutcome struct {
	Document *model.CandidateDocument
	Type     MatchType
	Score    float64
}

// MatchRequirement finds the best candidate document for one matrix
// requirement. Priority tiers, first success wins: exact catalog-id
// reference, exact code, hierarchy-covered code (an exact-equivalent match),
// then fuzzy name similarity above FuzzyThreshold.
func MatchRequirement(req model.MatrixDocument, docs []model.CandidateDocument) MatchOutcome {
	for i := range docs {
		if docs[i].CatalogDocumentID != nil && *docs[i].CatalogDocumentID == req.DocumentID {
			return MatchOutcome{Document: &docs[i], Type: MatchExactID, Score: 1.0}
		}
	}

	requiredCode := NormalizeCode(req.Document.Code)
	if requiredCode != "" {
		for i := range docs {
			if NormalizeCode(docs[i].Code) == requiredCode {
				return MatchOutcome{Document: &docs[i], Type: MatchExactCode, Score: 0.95}
			}
		}
		// A higher-grade certificate covering the required code counts as an
		// exact-equivalent match.
		for i := range docs {
			if Covers(req.Document.Code, docs[i].Code) {
				return MatchOutcome{Document: &docs[i], Type: MatchExactCode, Score: 0.95}
			}
		}
	}

	var best *model.CandidateDocument
	bestScore := 0.0
	for i := range docs {
		score := Similarity(docs[i].Name, req.Document.Name)
		if score > bestScore {
			best = &docs[i]
			bestScore = score
			continue
		}
		// equal scores break ties on lowest document id so results do not
		// depend on input ordering
		if best != nil && score == bestScore && strings.Compare(docs[i].ID.String(), best.ID.String()) < 0 {
			best = &docs[i]
		}
	}
	if best != nil && bestScore > FuzzyThreshold {
		return MatchOutcome{Document: best, Type: MatchSemanticName, Score: bestScore}
	}
	return MatchOutcome{Type: MatchNone}
}
