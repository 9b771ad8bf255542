package search

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/kuniv/internal/appcontext"
	"github.com/agentstation/kuniv/pkg/query"
	"github.com/agentstation/kuniv/pkg/universities"
)

func testApp() *appcontext.Mock {
	rec := func(id int, name string, region universities.Region, degree bool) universities.University {
		return universities.University{
			UniversityData: universities.UniversityData{
				ID:            id,
				NameKr:        name,
				Level:         universities.LevelUniversity,
				Type:          universities.TypeUniversity,
				Establishment: universities.EstablishmentPrivate,
				Region:        region,
			},
			Accreditation: universities.AccreditationStatus{Degree: degree},
		}
	}
	idx := query.New([]universities.University{
		rec(1, "서울대학교", universities.RegionSeoul, true),
		rec(2, "서울과학기술대학교", universities.RegionSeoul, false),
		rec(3, "KDI국제정책대학원", universities.RegionSejong, false),
		rec(4, "연세대학교", universities.RegionSeoul, true),
	}, universities.LibraryMetadata{})

	return &appcontext.Mock{
		IndexFunc: func() (*query.Index, error) { return idx, nil },
	}
}

func execute(t *testing.T, args ...string) []string {
	t.Helper()
	cmd := NewCommand(testApp())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	var got []universities.University
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	names := make([]string, len(got))
	for i, u := range got {
		names[i] = u.NameKr
	}
	return names
}

func TestSearch(t *testing.T) {
	assert.Equal(t, []string{"서울과학기술대학교", "서울대학교"}, execute(t, "서울"))
	assert.Equal(t, []string{"서울대학교"}, execute(t, "서울", "대학교"))
	assert.Equal(t, []string{"KDI국제정책대학원"}, execute(t, "kdi"))
	assert.Empty(t, execute(t, "없는학교"))
}

func TestSearchWithFilters(t *testing.T) {
	assert.Equal(t, []string{"서울대학교", "연세대학교"}, execute(t, "대학교", "--accredited"))
	assert.Equal(t, []string{"서울과학기술대학교"}, execute(t, "대학교", "-r", "서울특별시", "-l", "1"))
}

func TestSearchRequiresQuery(t *testing.T) {
	cmd := NewCommand(testApp())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
