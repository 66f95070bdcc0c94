package matching

// hierarchyRules maps a superior certification code to the inferior codes it
// is deemed to satisfy. Curated maritime/safety equivalences; keys and values
// are NormalizeCode form. An exact lookup, no fuzziness at this layer.
var hierarchyRules = map[string][]string{
	// STCW deck: chief mate/master covers officer of the watch
	"aii2": {"aii1"},
	// STCW engine: second/chief engineer covers engineer officer
	"aiii2": {"aiii1"},
	// Advanced fire fighting covers basic fire prevention and fire fighting
	"avi3": {"avi1"},
	// Helicopter escape: tropical variant covers the base course
	"thuet": {"huet"},
	// CBSP (basic offshore safety) covers the emergency-embarkation short course
	"cbsp": {"caepp", "caebs"},
	// NR-33 supervisor covers NR-33 authorized worker
	"nr33supervisor": {"nr33"},
	// SEP (electrical system of power) presumes NR-10 basic
	"nr10sep": {"nr10"},
}

// Covers reports whether a candidate's certificate code satisfies a required
// code: equal after case/whitespace normalization, or the candidate code is a
// hierarchy key whose covered set contains the required code.
func Covers(requiredCode, candidateCode string) bool {
	required := NormalizeCode(requiredCode)
	candidate := NormalizeCode(candidateCode)
	if required == "" || candidate == "" {
		return false
	}
	if required == candidate {
		return true
	}
	for _, covered := range hierarchyRules[candidate] {
		if covered == required {
			return true
		}
	}
	return false
}
