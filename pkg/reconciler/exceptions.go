package reconciler

import (
	"maps"

	"github.com/agentstation/kuniv/pkg/universities"
)

// ExceptionRule resolves an institution whose campuses are administratively
// independent and share a base name, so the generic rules cannot tell them
// apart. The qualifier selects a region; every record whose name contains
// the base name and whose region matches is a hit.
type ExceptionRule struct {
	Conditions map[string]universities.Region
	Default    universities.Region // used for any other qualifier, or none
}

// Region returns the region selected by condition.
func (r ExceptionRule) Region(condition string) universities.Region {
	if region, ok := r.Conditions[condition]; ok {
		return region
	}
	return r.Default
}

// Exceptions maps a parsed base name to its rule.
type Exceptions map[string]ExceptionRule

// DefaultExceptions returns the built-in rule table.
func DefaultExceptions() Exceptions {
	return Exceptions{
		"명지대학교": {
			Conditions: map[string]universities.Region{
				"서울캠퍼스": universities.RegionSeoul,
				"자연캠퍼스": universities.RegionGyeonggi,
			},
			Default: universities.RegionGyeonggi,
		},
	}
}

// Clone returns a deep copy of the table.
func (e Exceptions) Clone() Exceptions {
	out := make(Exceptions, len(e))
	for name, rule := range e {
		out[name] = ExceptionRule{Conditions: maps.Clone(rule.Conditions), Default: rule.Default}
	}
	return out
}
