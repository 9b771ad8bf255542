package output

import (
	"io"

	"github.com/agentstation/kuniv/internal/cmd/table"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Universities writes records in format. Table formats go through
// table.UniversitiesToTableData; structured formats write the records as-is.
func Universities(w io.Writer, records []universities.University, format Format) error {
	if records == nil {
		records = []universities.University{}
	}

	var data any = records
	if format.IsTable() {
		data = table.UniversitiesToTableData(records, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// University writes a single record.
func University(w io.Writer, u universities.University, format Format) error {
	var data any = u
	if format.IsTable() {
		data = table.UniversityToTableData(u)
	}
	return NewFormatter(format).Format(w, data)
}

// Metadata writes the build summary.
func Metadata(w io.Writer, meta universities.LibraryMetadata, format Format) error {
	var data any = meta
	if format.IsTable() {
		data = table.MetadataToTableData(meta)
	}
	return NewFormatter(format).Format(w, data)
}

// Issues writes validation findings.
func Issues(w io.Writer, issues []universities.Issue, format Format) error {
	if issues == nil {
		issues = []universities.Issue{}
	}

	var data any = issues
	if format.IsTable() {
		data = table.IssuesToTableData(issues)
	}
	return NewFormatter(format).Format(w, data)
}

// Any writes data in format, rendering it as JSON when no table form exists.
func Any(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
