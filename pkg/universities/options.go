package universities

// SearchOptions narrows a listing or search. Zero-valued fields impose no
// constraint; all set fields must hold.
type SearchOptions struct {
	Region        Region        `json:"region,omitempty" yaml:"region,omitempty"`
	Level         SchoolLevel   `json:"level,omitempty" yaml:"level,omitempty"`
	Establishment Establishment `json:"establishment,omitempty" yaml:"establishment,omitempty"`

	// IsAccredited keeps records holding any certification.
	IsAccredited bool `json:"isAccredited,omitempty" yaml:"is_accredited,omitempty"`

	// OnlyExcellent keeps records holding the excellent certification.
	OnlyExcellent bool `json:"onlyExcellent,omitempty" yaml:"only_excellent,omitempty"`
}

// IsZero reports whether no option is set.
func (o SearchOptions) IsZero() bool {
	return o == SearchOptions{}
}

// Matches reports whether u satisfies every set option.
func (o SearchOptions) Matches(u University) bool {
	if o.Region != "" && u.Region != o.Region {
		return false
	}
	if o.Level != "" && u.Level != o.Level {
		return false
	}
	if o.Establishment != "" && u.Establishment != o.Establishment {
		return false
	}
	if o.IsAccredited && !u.Accreditation.Any() {
		return false
	}
	return !(o.OnlyExcellent && !u.Accreditation.Excellent)
}
