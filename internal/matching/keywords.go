package matching

import "strings"

// domainVocabulary lists certification codes and safety-training terms that
// must be detected as substrings of normalized text: they are short, often
// punctuation-adjacent in the source ("NR-35", "T-HUET") and would otherwise
// be lost by the token length floor.
var domainVocabulary = []string{
	"nr06", "nr10", "nr11", "nr12", "nr13", "nr18", "nr20", "nr33", "nr34", "nr35", "nr37",
	"aii1", "aii2", "aii3", "aiii1", "aiii2", "aiii4", "avi1", "avi2", "avi3", "avi4",
	"huet", "thuet", "cbsp", "caepp", "caebs", "sbv", "stcw", "cipa", "sep",
	"salvatagem", "sobrevivencia", "offshore", "altura", "confinado", "eletricidade",
	"incendio", "socorros", "icamento", "radioprotecao",
}

// stoplist holds connective words longer than the token floor that carry no
// matching signal.
var stoplist = map[string]struct{}{
	"para": {}, "pelo": {}, "pela": {}, "sobre": {}, "entre": {},
	"with": {}, "from": {}, "this": {}, "that": {},
	"curso": {}, "treinamento": {}, "certificado": {},
}

// ExtractKeywords pulls domain-significant tokens from normalized text:
// vocabulary codes found as substrings plus any token longer than 3 runes
// that is not a stopword. Input is expected to be Normalize output.
func ExtractKeywords(normalized string) map[string]struct{} {
	keywords := make(map[string]struct{})
	if normalized == "" {
		return keywords
	}
	compact := strings.ReplaceAll(normalized, " ", "")
	for _, code := range domainVocabulary {
		if strings.Contains(compact, code) {
			keywords[code] = struct{}{}
		}
	}
	for _, tok := range strings.Fields(normalized) {
		if len([]rune(tok)) <= 3 {
			continue
		}
		if _, stop := stoplist[tok]; stop {
			continue
		}
		keywords[tok] = struct{}{}
	}
	return keywords
}
