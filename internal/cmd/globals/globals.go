// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/pkg/universities"
)

// FilterFlags holds the filter flags shared by list and search.
type FilterFlags struct {
	Region        string
	Level         string
	Establishment string
	Accredited    bool
	Excellent     bool
	Limit         int
}

// AddFilterFlags adds the filter flags to a command.
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	flags := &FilterFlags{}

	cmd.Flags().StringVarP(&flags.Region, "region", "r", "",
		"Filter by region (e.g. 서울특별시, 경기도)")
	cmd.Flags().StringVar(&flags.Level, "level", "",
		"Filter by school level (대학(4년제), 전문대학, 대학원대학)")
	cmd.Flags().StringVar(&flags.Establishment, "establishment", "",
		"Filter by establishment (국립, 공립, 사립, 기타)")
	cmd.Flags().BoolVar(&flags.Accredited, "accredited", false,
		"Only institutions holding any certification")
	cmd.Flags().BoolVar(&flags.Excellent, "excellent", false,
		"Only institutions holding the excellent certification")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// Options converts the flags into search options.
func (f *FilterFlags) Options() universities.SearchOptions {
	return universities.SearchOptions{
		Region:        universities.Region(f.Region),
		Level:         universities.SchoolLevel(f.Level),
		Establishment: universities.Establishment(f.Establishment),
		IsAccredited:  f.Accredited,
		OnlyExcellent: f.Excellent,
	}
}

// Unknown returns the flag names whose values are outside the vocabularies.
// Such filters are legal and simply match nothing.
func (f *FilterFlags) Unknown() []string {
	var unknown []string
	if f.Region != "" && !universities.Region(f.Region).IsValid() {
		unknown = append(unknown, "region")
	}
	if f.Level != "" && !universities.SchoolLevel(f.Level).IsValid() {
		unknown = append(unknown, "level")
	}
	if f.Establishment != "" && !universities.Establishment(f.Establishment).IsValid() {
		unknown = append(unknown, "establishment")
	}
	return unknown
}

// Apply truncates records to the limit, if one is set.
func (f *FilterFlags) Apply(records []universities.University) []universities.University {
	if f.Limit > 0 && len(records) > f.Limit {
		return records[:f.Limit]
	}
	return records
}
