// Package reconciler merges the accreditation directory into the
// institution directory. Accreditation entries are free-text names with an
// optional parenthesized campus qualifier; each is resolved against the
// working record set and, when nothing matches, turned into a synthesized
// record so that every entry ends up flagged somewhere.
package reconciler

import (
	"context"
	"slices"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/logging"
	"github.com/agentstation/kuniv/pkg/universities"
)

// builtAtLayout matches JavaScript's Date.toISOString output.
const builtAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Reconciler builds the merged dataset from the two scraped sources.
type Reconciler interface {
	// Reconcile runs one full build. Both inputs are required.
	Reconcile(ctx context.Context, directory []universities.UniversityData, accredited *universities.AccreditedSource) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	opts    *options
	matcher *matcher
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		opts:    options,
		matcher: &matcher{exceptions: options.exceptions},
	}, nil
}

// workingSet is the single growable collection mutated during a build.
// Records synthesized mid-build are visible to every later match.
type workingSet struct {
	records []universities.University
	byID    map[int]int // id -> position in records
	nextID  int
}

func newWorkingSet(directory []universities.UniversityData, seed int) (*workingSet, error) {
	ws := &workingSet{
		records: make([]universities.University, 0, len(directory)),
		byID:    make(map[int]int, len(directory)),
		nextID:  seed,
	}

	for _, row := range directory {
		if _, dup := ws.byID[row.ID]; dup {
			return nil, &errors.ValidationError{
				Field:   "id",
				Value:   row.ID,
				Message: "duplicate directory id " + strconv.Itoa(row.ID),
			}
		}
		ws.byID[row.ID] = len(ws.records)
		ws.records = append(ws.records, universities.NewUniversity(row))
		if row.ID >= ws.nextID {
			ws.nextID = row.ID + 1
		}
	}

	return ws, nil
}

// add appends a synthesized record built from target and returns it.
func (ws *workingSet) add(target Target, level universities.SchoolLevel) universities.University {
	u := universities.NewUniversity(universities.UniversityData{
		ID:            ws.nextID,
		NameKr:        target.Name,
		Campus:        target.Condition,
		Level:         level,
		Type:          universities.DefaultType(level),
		Establishment: universities.EstablishmentUnknown,
		Region:        universities.RegionUnknown,
	})
	ws.nextID++

	ws.byID[u.ID] = len(ws.records)
	ws.records = append(ws.records, u)
	return u
}

// flag sets category on the record with id.
func (ws *workingSet) flag(id int, category universities.Category) {
	if pos, ok := ws.byID[id]; ok {
		ws.records[pos].Accreditation.Set(category)
	}
}

// Reconcile performs the build: every category, then every level bucket,
// in fixed order.
func (r *reconciler) Reconcile(ctx context.Context, directory []universities.UniversityData, accredited *universities.AccreditedSource) (*Result, error) {
	logger := logging.FromContext(ctx)

	if directory == nil {
		return nil, &errors.ValidationError{Field: "directory", Message: "institution directory is required"}
	}
	if accredited == nil {
		return nil, &errors.ValidationError{Field: "accredited", Message: "accreditation directory is required"}
	}

	ws, err := newWorkingSet(directory, r.opts.idSeed)
	if err != nil {
		return nil, err
	}

	result := &Result{StartTime: r.opts.now()}
	var synthesized []int

	logger.Info().
		Int("directory", len(directory)).
		Int("degree", accredited.Degree.Len()).
		Int("language", accredited.Language.Len()).
		Int("excellent", accredited.Excellent.Len()).
		Msg("Starting merge")

	for _, category := range universities.Categories() {
		list := accredited.List(category)
		for _, level := range universities.SchoolLevels() {
			bctx := logging.WithBucket(logging.WithCategory(ctx, category.String()), level.String())
			bucket, ids := r.processBucket(bctx, ws, category, level, list.Bucket(level), result)
			synthesized = append(synthesized, ids...)
			result.Buckets = append(result.Buckets, bucket)
		}
	}

	result.Universities = slices.Clone(ws.records)
	slices.SortStableFunc(result.Universities, func(a, b universities.University) int {
		return a.ID - b.ID
	})

	for _, id := range synthesized {
		result.Synthesized = append(result.Synthesized, ws.records[ws.byID[id]])
	}

	result.Metadata = universities.LibraryMetadata{
		BuiltAt:            r.opts.now().UTC().Format(builtAtLayout),
		SourceLastModified: accredited.LastModified,
		Sources:            slices.Clone(r.opts.sources),
		Stats:              universities.ComputeStats(result.Universities),
	}
	result.finalize(r.opts.now())

	logStats(logger, result)
	return result, nil
}

// processBucket resolves every raw name of one category/level bucket and
// returns its counts plus the ids it synthesized.
func (r *reconciler) processBucket(ctx context.Context, ws *workingSet, category universities.Category, level universities.SchoolLevel, names []string, result *Result) (BucketResult, []int) {
	logger := logging.FromContext(ctx)
	bucket := BucketResult{Category: category, Level: level, Entries: len(names)}
	var created []int

	for _, raw := range names {
		target := ParseTarget(raw)
		if target.Name == "" {
			result.Warnings = append(result.Warnings, "skipped blank "+category.String()+" entry in "+level.String())
			logger.Warn().Str("raw", raw).Msg("Skipping blank accreditation entry")
			continue
		}

		ids := r.matcher.match(target, ws.records)
		if len(ids) == 0 {
			u := ws.add(target, level)
			ids = []int{u.ID}
			created = append(created, u.ID)
			bucket.Synthesized++

			logger.Info().
				Int("id", u.ID).
				Str("name", target.Name).
				Str("condition", conditionOrNone(target)).
				Msg("Synthesized missing university")
		} else {
			bucket.Matched++
		}

		for _, id := range ids {
			ws.flag(id, category)
		}
		bucket.Flagged += len(ids)
	}

	logger.Debug().
		Int("entries", bucket.Entries).
		Int("matched", bucket.Matched).
		Int("synthesized", bucket.Synthesized).
		Int("flagged", bucket.Flagged).
		Msg("Bucket processed")

	return bucket, created
}

func conditionOrNone(t Target) string {
	if t.HasCondition() {
		return t.Condition
	}
	return "none"
}

func logStats(logger *zerolog.Logger, result *Result) {
	s := result.Metadata.Stats
	logger.Info().
		Int("total", s.Total).
		Int("university", s.University).
		Int("college", s.College).
		Int("graduate", s.Graduate).
		Int("accredited", s.Accredited).
		Int("synthesized", len(result.Synthesized)).
		Dur("duration", result.Duration).
		Msg("Merge complete")
}
