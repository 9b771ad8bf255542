// Package table converts catalog data into rows for tabular CLI output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/kuniv/internal/cmd/constants"
	"github.com/agentstation/kuniv/internal/cmd/emoji"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// UniversitiesToTableData converts records to table rows. Wide adds the
// school type, establishment, and homepage columns.
func UniversitiesToTableData(records []universities.University, wide bool) Data {
	headers := []string{"ID", "Name", "Campus", "Level", "Region", "Degree", "Language", "Excellent"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignCenter, AlignCenter, AlignCenter}
	if wide {
		headers = append(headers, "Type", "Establishment", "Link")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, u := range records {
		row := []string{
			strconv.Itoa(u.ID),
			u.NameKr,
			orEmpty(u.Campus),
			u.Level.String(),
			u.Region.String(),
			Mark(u.Accreditation.Degree),
			Mark(u.Accreditation.Language),
			Mark(u.Accreditation.Excellent),
		}
		if wide {
			row = append(row, u.Type.String(), u.Establishment.String(), orEmpty(u.Link))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// UniversityToTableData renders one record as a property/value table.
func UniversityToTableData(u universities.University) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.Itoa(u.ID)},
			{"Name", u.NameKr},
			{"Campus", orEmpty(u.Campus)},
			{"Level", u.Level.String()},
			{"Type", u.Type.String()},
			{"Establishment", u.Establishment.String()},
			{"Region", u.Region.String()},
			{"Link", orEmpty(u.Link)},
			{"Accreditation", AccreditationString(u.Accreditation)},
		},
	}
}

// MetadataToTableData renders the build summary.
func MetadataToTableData(meta universities.LibraryMetadata) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Built At", orEmpty(meta.BuiltAt)},
			{"Source Last Modified", orEmpty(meta.SourceLastModified)},
			{"Sources", orEmpty(strings.Join(meta.Sources, ", "))},
			{"Total", strconv.Itoa(meta.Stats.Total)},
			{"University", strconv.Itoa(meta.Stats.University)},
			{"College", strconv.Itoa(meta.Stats.College)},
			{"Graduate", strconv.Itoa(meta.Stats.Graduate)},
			{"Accredited", strconv.Itoa(meta.Stats.Accredited)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// IssuesToTableData renders validation findings.
func IssuesToTableData(issues []universities.Issue) Data {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{
			strconv.Itoa(issue.ID),
			orEmpty(issue.NameKr),
			issue.Field,
			orEmpty(issue.Value),
			issue.Message,
		})
	}
	return Data{
		Headers: []string{"ID", "Name", "Field", "Value", "Problem"},
		Rows:    rows,
	}
}

// Mark renders a certification flag.
func Mark(held bool) string {
	if held {
		return emoji.Success
	}
	return ""
}

// AccreditationString lists the held certifications, or "-" for none.
func AccreditationString(a universities.AccreditationStatus) string {
	var held []string
	if a.Degree {
		held = append(held, "degree")
	}
	if a.Language {
		held = append(held, "language")
	}
	if a.Excellent {
		held = append(held, emoji.Star+" excellent")
	}
	if len(held) == 0 {
		return constants.Empty
	}
	return strings.Join(held, ", ")
}

func orEmpty(s string) string {
	if s == "" {
		return constants.Empty
	}
	return s
}
