package universities

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/agentstation/kuniv/pkg/errors"
)

// Issue describes a directory row whose values fall outside the closed
// vocabularies. Issues never stop a build; the sources are trusted.
type Issue struct {
	ID      int    `json:"id" yaml:"id"`
	NameKr  string `json:"nameKr" yaml:"name_kr"`
	Field   string `json:"field" yaml:"field"`
	Value   string `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

// Err converts the issue into a ValidationError.
func (i Issue) Err() error {
	return errors.NewValidationError(i.Field, i.Value, fmt.Sprintf("%s (id %d, %s)", i.Message, i.ID, i.NameKr))
}

// Validate checks every directory row against the vocabularies and reports
// duplicate ids. Rows are reported in input order.
func Validate(rows []UniversityData) []Issue {
	var issues []Issue
	seen := make(map[int]bool, len(rows))

	for _, row := range rows {
		report := func(field, value, message string) {
			issues = append(issues, Issue{ID: row.ID, NameKr: row.NameKr, Field: field, Value: value, Message: message})
		}

		if seen[row.ID] {
			report("id", strconv.Itoa(row.ID), "duplicate id")
		}
		seen[row.ID] = true

		if row.NameKr == "" {
			report("nameKr", "", "empty name")
		}
		if !row.Level.IsValid() {
			report("level", row.Level.String(), "unknown school level")
		}
		if !row.Type.IsValid() {
			report("type", row.Type.String(), "unknown school type")
		} else if row.Level.IsValid() && !slices.Contains(TypesForLevel(row.Level), row.Type) {
			report("type", row.Type.String(), "type not allowed for level "+row.Level.String())
		}
		if !row.Establishment.IsValid() {
			report("establishment", row.Establishment.String(), "unknown establishment")
		}
		if !row.Region.IsValid() {
			report("region", row.Region.String(), "unknown region")
		}
	}

	return issues
}
