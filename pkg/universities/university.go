// Package universities defines the data model shared by the reconciliation
// engine and the query engine: institution records, accreditation flags,
// build metadata, and the closed vocabularies used as filter values.
package universities

// UniversityData is one row of the scraped institution directory.
type UniversityData struct {
	ID            int           `json:"id" yaml:"id"`                               // Directory-assigned number, or a synthesized id
	NameKr        string        `json:"nameKr" yaml:"name_kr"`                      // Institution name without campus suffix
	Link          string        `json:"link,omitempty" yaml:"link,omitempty"`       // Homepage URL
	Campus        string        `json:"campus,omitempty" yaml:"campus,omitempty"`   // Campus disambiguator (제1캠퍼스, 본교, 글로컬, ...)
	Level         SchoolLevel   `json:"level" yaml:"level"`                         // Coarse classification
	Type          SchoolType    `json:"type" yaml:"type"`                           // Fine-grained type, constrained by Level
	Establishment Establishment `json:"establishment" yaml:"establishment"`         // 국립, 공립, 사립, 기타
	Region        Region        `json:"region" yaml:"region"`                       // Administrative region, 해외 or 기타
}

// University is an institution record carrying its accreditation status.
type University struct {
	UniversityData `yaml:",inline"`

	Accreditation AccreditationStatus `json:"accreditation" yaml:"accreditation"`
}

// AccreditationStatus holds the three independent IEQAS certification flags.
type AccreditationStatus struct {
	Degree    bool `json:"degree" yaml:"degree"`       // Degree-course certification
	Language  bool `json:"language" yaml:"language"`   // Language-course certification
	Excellent bool `json:"excellent" yaml:"excellent"` // "Excellent" quality certification
}

// Any reports whether at least one certification is held.
func (a AccreditationStatus) Any() bool {
	return a.Degree || a.Language || a.Excellent
}

// Set marks the flag for category as held. Flags are never cleared.
func (a *AccreditationStatus) Set(category Category) {
	switch category {
	case CategoryDegree:
		a.Degree = true
	case CategoryLanguage:
		a.Language = true
	case CategoryExcellent:
		a.Excellent = true
	}
}

// Has reports whether the flag for category is held.
func (a AccreditationStatus) Has(category Category) bool {
	switch category {
	case CategoryDegree:
		return a.Degree
	case CategoryLanguage:
		return a.Language
	case CategoryExcellent:
		return a.Excellent
	default:
		return false
	}
}

// NewUniversity wraps a directory row with all accreditation flags unset.
func NewUniversity(data UniversityData) University {
	return University{UniversityData: data}
}
