// Package query provides the read side of the catalog: a collation-ordered
// record set with a precomputed search index. An Index is immutable after
// New returns and safe for concurrent readers.
package query

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Index answers filter and substring-search queries over a merged record set.
type Index struct {
	records []universities.University // sorted by NameKr under Korean collation
	keys    []string                  // keys[i] is the search key of records[i]
	byID    map[int]int               // id -> position in records
	meta    universities.LibraryMetadata
}

// New copies records, sorts them by name in Korean collation order, and
// builds the search index.
func New(records []universities.University, meta universities.LibraryMetadata) *Index {
	sorted := slices.Clone(records)
	SortByName(sorted)

	idx := &Index{
		records: sorted,
		keys:    make([]string, len(sorted)),
		byID:    make(map[int]int, len(sorted)),
		meta:    meta,
	}
	idx.meta.Sources = slices.Clone(meta.Sources)

	for i, u := range sorted {
		idx.keys[i] = Normalize(u.NameKr)
		if _, dup := idx.byID[u.ID]; !dup {
			idx.byID[u.ID] = i
		}
	}

	return idx
}

// SortByName sorts records in place by NameKr using Korean collation.
// Records with equal names keep their relative order.
func SortByName(records []universities.University) {
	col := collate.New(language.Korean)
	slices.SortStableFunc(records, func(a, b universities.University) int {
		return col.CompareString(a.NameKr, b.NameKr)
	})
}

// Normalize returns s with all whitespace removed and case folded. Search
// keys and queries go through the same transformation.
func Normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), ""))
}

// Len returns the number of records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// All returns every record in index order.
func (idx *Index) All() []universities.University {
	return slices.Clone(idx.records)
}

// Filter returns the records satisfying every set option, in index order.
// A zero options value returns the full collection.
func (idx *Index) Filter(opts universities.SearchOptions) []universities.University {
	if opts.IsZero() {
		return idx.All()
	}

	out := make([]universities.University, 0)
	for _, u := range idx.records {
		if opts.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// Search returns the records whose normalized name contains the normalized
// query and which satisfy the options, in index order. A blank query
// behaves like Filter. Only the first options value is used.
func (idx *Index) Search(q string, opts ...universities.SearchOptions) []universities.University {
	var o universities.SearchOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	if strings.TrimSpace(q) == "" {
		return idx.Filter(o)
	}

	needle := Normalize(q)
	filtered := !o.IsZero()

	out := make([]universities.University, 0)
	for i, u := range idx.records {
		if filtered && !o.Matches(u) {
			continue
		}
		if strings.Contains(idx.keys[i], needle) {
			out = append(out, u)
		}
	}
	return out
}

// Find returns the record with id.
func (idx *Index) Find(id int) (universities.University, error) {
	pos, ok := idx.byID[id]
	if !ok {
		return universities.University{}, &errors.NotFoundError{
			Resource: "university",
			ID:       strconv.Itoa(id),
		}
	}
	return idx.records[pos], nil
}

// Metadata returns the build summary the index was created with.
func (idx *Index) Metadata() universities.LibraryMetadata {
	meta := idx.meta
	meta.Sources = slices.Clone(idx.meta.Sources)
	return meta
}
