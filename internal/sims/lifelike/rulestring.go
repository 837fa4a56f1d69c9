package lifelike

import (
	"strings"

	"cavis/internal/core"
)

// Format renders r as <survival>/<birth>, digits ascending.
func Format(r Rule) string {
	return r.Survival.String() + "/" + r.Birth.String()
}

// Parse reads a rulestring such as "23/3". Digit groups may be empty,
// unsorted or repeat digits; they are canonicalised.
func Parse(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	if !core.IsASCII(s) {
		return Rule{}, false
	}
	survival, birth, found := strings.Cut(s, "/")
	if !found || strings.Contains(birth, "/") {
		return Rule{}, false
	}
	sp, ok := core.ParsePattern(survival)
	if !ok {
		return Rule{}, false
	}
	bp, ok := core.ParsePattern(birth)
	if !ok {
		return Rule{}, false
	}
	return Rule{Birth: bp, Survival: sp}, true
}
