// Package kuniv is a read-only catalog of Korean higher-education
// institutions and their IEQAS accreditation status.
//
// The merged dataset is compiled into the binary. It is loaded, sorted in
// Korean collation order, and indexed once per process on first use;
// afterwards every function only reads shared state and is safe to call
// from any goroutine.
//
// Example:
//
//	for _, u := range kuniv.SearchUniversities("고려", kuniv.SearchOptions{IsAccredited: true}) {
//		fmt.Println(u.ID, u.NameKr, u.Region)
//	}
package kuniv

import (
	"fmt"
	"path"
	"sync"

	"github.com/agentstation/kuniv/internal/embedded"
	"github.com/agentstation/kuniv/internal/snapshot"
	"github.com/agentstation/kuniv/pkg/constants"
	"github.com/agentstation/kuniv/pkg/query"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Re-exported data model.
type (
	University          = universities.University
	UniversityData      = universities.UniversityData
	AccreditationStatus = universities.AccreditationStatus
	SearchOptions       = universities.SearchOptions
	LibraryMetadata     = universities.LibraryMetadata
	Stats               = universities.Stats
	Region              = universities.Region
	Establishment       = universities.Establishment
	SchoolLevel         = universities.SchoolLevel
	SchoolType          = universities.SchoolType
)

var (
	loadOnce sync.Once
	index    *query.Index
	loadErr  error
)

// Load returns the process-wide index over the embedded dataset. The first
// call decodes and indexes the data; every later call returns the same
// index, or the same error.
func Load() (*query.Index, error) {
	loadOnce.Do(func() {
		index, loadErr = loadEmbedded()
	})
	return index, loadErr
}

func loadEmbedded() (*query.Index, error) {
	finalFile := path.Join(embedded.Dir, constants.FinalFile)
	data, err := embedded.Final()
	if err != nil {
		return nil, fmt.Errorf("reading embedded %s: %w", finalFile, err)
	}
	records, err := snapshot.DecodeFinal(data, finalFile)
	if err != nil {
		return nil, err
	}

	metaFile := path.Join(embedded.Dir, constants.MetadataFile)
	data, err = embedded.Metadata()
	if err != nil {
		return nil, fmt.Errorf("reading embedded %s: %w", metaFile, err)
	}
	meta, err := snapshot.DecodeMetadata(data, metaFile)
	if err != nil {
		return nil, err
	}

	return query.New(records, meta), nil
}

// LoadDir builds an independent index from the build outputs under dataDir.
// It does not touch the process-wide index.
func LoadDir(dataDir string) (*query.Index, error) {
	paths := snapshot.DefaultPaths(dataDir)

	records, err := snapshot.ReadFinal(paths.Final)
	if err != nil {
		return nil, err
	}
	meta, err := snapshot.ReadMetadata(paths.Metadata)
	if err != nil {
		return nil, err
	}

	return query.New(records, meta), nil
}

// mustLoad returns the process-wide index. The embedded dataset is produced
// by the build step, so a failure here means the binary itself is broken.
func mustLoad() *query.Index {
	idx, err := Load()
	if err != nil {
		panic(fmt.Sprintf("kuniv: embedded dataset is unusable: %v", err))
	}
	return idx
}

// GetAllUniversities returns every institution in Korean collation order of
// its name.
func GetAllUniversities() []University {
	return mustLoad().All()
}

// GetUniversities returns the institutions satisfying every set option.
func GetUniversities(opts SearchOptions) []University {
	return mustLoad().Filter(opts)
}

// SearchUniversities returns the institutions whose name contains q,
// ignoring whitespace and case, restricted by the optional filter.
func SearchUniversities(q string, opts ...SearchOptions) []University {
	return mustLoad().Search(q, opts...)
}

// GetLibraryMetadata returns the summary of the build that produced the
// embedded dataset.
func GetLibraryMetadata() LibraryMetadata {
	return mustLoad().Metadata()
}

// FindUniversity returns the institution with id, or an error satisfying
// errors.IsNotFound.
func FindUniversity(id int) (University, error) {
	return mustLoad().Find(id)
}

// Regions returns the region vocabulary.
func Regions() []Region { return universities.Regions() }

// Establishments returns the establishment vocabulary.
func Establishments() []Establishment { return universities.Establishments() }

// SchoolLevels returns the school level vocabulary.
func SchoolLevels() []SchoolLevel { return universities.SchoolLevels() }

// SchoolTypes returns the school type vocabulary.
func SchoolTypes() []SchoolType { return universities.SchoolTypes() }
