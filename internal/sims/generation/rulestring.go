package generation

import (
	"fmt"
	"strconv"
	"strings"

	"cavis/internal/core"
)

// Format renders r as <survival>/<birth>/<states>, digits ascending.
func Format(r Rule) string {
	return fmt.Sprintf("%s/%s/%d", r.Survival, r.Birth, r.States)
}

// Parse reads a rulestring such as "345/2/4". Digit groups may be empty,
// unsorted or repeat digits; they are canonicalised. ok is false for
// non-ASCII input, grammar errors, or an out-of-range state count.
func Parse(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	if !core.IsASCII(s) {
		return Rule{}, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Rule{}, false
	}
	survival, ok := core.ParsePattern(parts[0])
	if !ok {
		return Rule{}, false
	}
	birth, ok := core.ParsePattern(parts[1])
	if !ok {
		return Rule{}, false
	}
	states, ok := parseCount(parts[2])
	if !ok {
		return Rule{}, false
	}
	r := Rule{Birth: birth, Survival: survival, States: states}
	if r.Validate() != nil {
		return Rule{}, false
	}
	return r, true
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
