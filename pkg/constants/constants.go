// Package constants provides shared constants used throughout the kuniv codebase.
// This includes file permissions, default dataset file names, and the fixed
// values stamped into every build.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Dataset file names inside the data directory.
const (
	// DefaultDataDir is where the build step reads inputs and writes outputs.
	DefaultDataDir = "internal/embedded/data"

	// UniversitiesFile is the scraped institution directory (input A).
	UniversitiesFile = "universities.json"

	// AccreditedFile is the scraped accreditation-status directory (input B).
	AccreditedFile = "accredited.json"

	// FinalFile is the merged, id-sorted dataset (output 1).
	FinalFile = "universities-final.json"

	// MetadataFile is the build summary (output 2).
	MetadataFile = "metadata.json"
)

// Build constants
const (
	// DefaultSyntheticIDSeed is the first id handed to synthesized records
	// when the directory's ids are all below it.
	DefaultSyntheticIDSeed = 90000
)

// Source labels recorded in every build summary.
const (
	// SourceCareerNet labels the institution directory.
	SourceCareerNet = "커리어넷 (career.go.kr)"

	// SourceStudyInKorea labels the accreditation directory.
	SourceStudyInKorea = "한국유학종합시스템 (studyinkorea.go.kr)"
)

// DefaultSources returns the fixed data-source labels in build order.
func DefaultSources() []string {
	return []string{SourceCareerNet, SourceStudyInKorea}
}

