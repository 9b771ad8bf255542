package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/kuniv/pkg/universities"
)

// Result represents the outcome of a reconciliation build.
type Result struct {
	// Universities is the merged record set, sorted by id.
	Universities []universities.University

	// Metadata is the build summary persisted next to the records.
	Metadata universities.LibraryMetadata

	// Synthesized lists the records created because no directory entry
	// matched, in creation order and with their final flags.
	Synthesized []universities.University

	// Buckets reports per category and level counts in processing order.
	Buckets []BucketResult

	// Warnings collects skipped entries.
	Warnings []string

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// BucketResult counts what happened to the entries of one bucket.
type BucketResult struct {
	Category    universities.Category    `json:"category" yaml:"category"`
	Level       universities.SchoolLevel `json:"level" yaml:"level"`
	Entries     int                      `json:"entries" yaml:"entries"`         // raw names listed
	Matched     int                      `json:"matched" yaml:"matched"`         // entries that hit at least one existing record
	Synthesized int                      `json:"synthesized" yaml:"synthesized"` // entries that created a record
	Flagged     int                      `json:"flagged" yaml:"flagged"`         // record flags set, counting multi-campus hits
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("%d universities (4-year %d, college %d, graduate %d), %d accredited, %d synthesized",
		s.Total, s.University, s.College, s.Graduate, s.Accredited, len(r.Synthesized))
}

// finalize records the end of the build.
func (r *Result) finalize(end time.Time) {
	r.EndTime = end
	r.Duration = r.EndTime.Sub(r.StartTime)
}
