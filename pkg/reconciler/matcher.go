package reconciler

import (
	"strings"

	"github.com/agentstation/kuniv/pkg/universities"
)

// Literal qualifiers recognized by the generic rules.
const (
	conditionMain = "본교"     // main campus
	campusFirst   = "제1캠퍼스" // campus 1
	campusSuffix  = "캠퍼스"
)

// matcher resolves accreditation targets against the working collection.
type matcher struct {
	exceptions Exceptions
}

// match returns the ids of every record target refers to, in collection order.
func (m *matcher) match(target Target, records []universities.University) []int {
	var pred func(u *universities.University) bool

	if rule, ok := m.exceptions[target.Name]; ok {
		region := rule.Region(target.Condition)
		pred = func(u *universities.University) bool {
			return strings.Contains(u.NameKr, target.Name) && u.Region == region
		}
	} else {
		pred = genericPredicate(target)
	}

	var ids []int
	for i := range records {
		if pred(&records[i]) {
			ids = append(ids, records[i].ID)
		}
	}
	return ids
}

// genericPredicate builds the rule for targets without an exception.
func genericPredicate(target Target) func(u *universities.University) bool {
	name, condition := target.Name, target.Condition

	switch condition {
	case "":
		return func(u *universities.University) bool {
			return u.NameKr == name
		}
	case conditionMain:
		// main campuses are often left unlabeled
		return func(u *universities.University) bool {
			return u.NameKr == name && (u.Campus == campusFirst || u.Campus == conditionMain || u.Campus == "")
		}
	default:
		compound := name + " " + condition + campusSuffix
		return func(u *universities.University) bool {
			return u.NameKr == compound || (u.NameKr == name && strings.Contains(u.Campus, condition))
		}
	}
}
