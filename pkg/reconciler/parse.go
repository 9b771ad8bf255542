package reconciler

import "strings"

// Target is a raw accreditation name split into its base name and the
// trailing parenthesized qualifier.
type Target struct {
	Name      string
	Condition string // empty when the raw name carries no qualifier
}

// HasCondition reports whether a qualifier was present.
func (t Target) HasCondition() bool {
	return t.Condition != ""
}

// ParseTarget splits "<name>(<condition>)" into its parts. Only the last
// top-level group counts, and only when it closes the string; parentheses
// nested inside that group stay in the condition. A name without a closing
// group, an unbalanced one, or an empty group yields no condition.
func ParseTarget(raw string) Target {
	text := strings.TrimSpace(raw)
	if !strings.HasSuffix(text, ")") {
		return Target{Name: text}
	}

	depth := 0
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return Target{
					Name:      strings.TrimSpace(text[:i]),
					Condition: strings.TrimSpace(text[i+1 : len(text)-1]),
				}
			}
		}
	}

	return Target{Name: text}
}
