package app

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/agentstation/kuniv/internal/snapshot"
	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/query"
	"github.com/agentstation/kuniv/pkg/universities"
)

func fixtureIndex() *query.Index {
	return query.New([]universities.University{
		{
			UniversityData: universities.UniversityData{
				ID:            8,
				NameKr:        "서울대학교",
				Level:         universities.LevelUniversity,
				Type:          universities.TypeUniversity,
				Establishment: universities.EstablishmentNational,
				Region:        universities.RegionSeoul,
			},
			Accreditation: universities.AccreditationStatus{Degree: true, Excellent: true},
		},
		{
			UniversityData: universities.UniversityData{
				ID:            3,
				NameKr:        "가천대학교",
				Level:         universities.LevelUniversity,
				Type:          universities.TypeUniversity,
				Establishment: universities.EstablishmentPrivate,
				Region:        universities.RegionGyeonggi,
			},
		},
	}, universities.LibraryMetadata{BuiltAt: "2025-03-14T09:26:53.589Z"})
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2025-03-14", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2025-03-14" {
		t.Errorf("Date() = %s, want 2025-03-14", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.IDSeed() != 90000 {
		t.Errorf("IDSeed() = %d, want 90000", app.IDSeed())
	}
}

// TestApp_WithConfigNil verifies option validation.
func TestApp_WithConfigNil(t *testing.T) {
	_, err := New("dev", "", "", "", WithConfig(nil))
	if !errors.IsValidationError(err) {
		t.Errorf("New(WithConfig(nil)) error = %v, want validation error", err)
	}
}

// TestApp_Index_Embedded verifies the embedded dataset loads once.
func TestApp_Index_Embedded(t *testing.T) {
	app, err := New("dev", "", "", "", WithConfig(&Config{}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	const goroutines = 20
	var wg sync.WaitGroup
	results := make([]*query.Index, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx, err := app.Index()
			if err != nil {
				t.Errorf("Index() failed: %v", err)
			}
			results[i] = idx
		}(i)
	}
	wg.Wait()

	for i, idx := range results {
		if idx != results[0] {
			t.Errorf("goroutine %d got a different index", i)
		}
	}
	if results[0].Len() == 0 {
		t.Error("embedded index is empty")
	}
}

// TestApp_Index_CatalogDir verifies a configured catalog directory wins.
func TestApp_Index_CatalogDir(t *testing.T) {
	dir := t.TempDir()
	records := fixtureIndex().All()
	meta := universities.LibraryMetadata{BuiltAt: "2025-03-14T09:26:53.589Z", Stats: universities.Stats{Total: 2}}
	if err := snapshot.WriteOutputs(snapshot.DefaultPaths(dir), records, meta); err != nil {
		t.Fatalf("WriteOutputs() failed: %v", err)
	}

	app, err := New("dev", "", "", "", WithConfig(&Config{CatalogDir: dir}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	idx, err := app.Index()
	if err != nil {
		t.Fatalf("Index() failed: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	if idx.Metadata().Stats.Total != 2 {
		t.Errorf("Stats.Total = %d, want 2", idx.Metadata().Stats.Total)
	}
}

// TestApp_Index_MissingCatalogDir verifies load errors surface.
func TestApp_Index_MissingCatalogDir(t *testing.T) {
	app, err := New("dev", "", "", "", WithConfig(&Config{CatalogDir: t.TempDir()}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := app.Index(); !errors.IsMissingInput(err) {
		t.Errorf("Index() error = %v, want missing input", err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app, err := New("1.2.3", "abc", "today", "test",
		WithConfig(&Config{IDSeed: 90000}),
		WithIndex(fixtureIndex()),
		WithOutput(&out),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	err = app.Execute(context.Background(), args)
	return out.String(), err
}

// TestApp_Execute_List verifies commands receive the app's index and format.
func TestApp_Execute_List(t *testing.T) {
	out, err := run(t, "list", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var got []universities.University
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].NameKr != "가천대학교" {
		t.Errorf("list = %+v, want 가천대학교 first", got)
	}
}

// TestApp_Execute_Search verifies argument joining through the root command.
func TestApp_Execute_Search(t *testing.T) {
	out, err := run(t, "search", "서울", "대학교", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var got []universities.University
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].ID != 8 {
		t.Errorf("search = %+v, want id 8", got)
	}
}

// TestApp_Execute_ShowNotFound verifies errors propagate to the caller.
func TestApp_Execute_ShowNotFound(t *testing.T) {
	_, err := run(t, "show", "12345")
	if !errors.IsNotFound(err) {
		t.Errorf("Execute() error = %v, want not found", err)
	}
}

// TestApp_Execute_InvalidFormat verifies the format is checked up front.
func TestApp_Execute_InvalidFormat(t *testing.T) {
	if _, err := run(t, "list", "-o", "csv"); err == nil {
		t.Error("Execute() accepted an invalid format")
	}
}

// TestApp_Execute_Version verifies the version command output.
func TestApp_Execute_Version(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("kuniv version 1.2.3")) {
		t.Errorf("version output = %q", out)
	}
}
