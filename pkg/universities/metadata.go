package universities

// LibraryMetadata summarizes the most recent build.
type LibraryMetadata struct {
	BuiltAt            string   `json:"builtAt" yaml:"built_at"`                                           // RFC 3339 build time
	SourceLastModified string   `json:"sourceLastModified,omitempty" yaml:"source_last_modified,omitempty"` // Accreditation directory revision date
	Sources            []string `json:"sources" yaml:"sources"`                                            // Data-source labels
	Stats              Stats    `json:"stats" yaml:"stats"`
}

// Stats holds the derived counts of a build.
type Stats struct {
	Total      int `json:"total" yaml:"total"`
	University int `json:"university" yaml:"university"`
	College    int `json:"college" yaml:"college"`
	Graduate   int `json:"graduate" yaml:"graduate"`
	Accredited int `json:"accredited" yaml:"accredited"` // Degree or language certified
}

// ComputeStats counts records per level and the accredited records.
func ComputeStats(records []University) Stats {
	stats := Stats{Total: len(records)}
	for _, u := range records {
		switch u.Level {
		case LevelUniversity:
			stats.University++
		case LevelCollege:
			stats.College++
		case LevelGraduate:
			stats.Graduate++
		}
		if u.Accreditation.Degree || u.Accreditation.Language {
			stats.Accredited++
		}
	}
	return stats
}
