package universities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/universities"
)

func TestAccreditationStatus(t *testing.T) {
	var status universities.AccreditationStatus
	assert.False(t, status.Any())

	status.Set(universities.CategoryLanguage)
	assert.True(t, status.Language)
	assert.True(t, status.Any())
	assert.True(t, status.Has(universities.CategoryLanguage))
	assert.False(t, status.Has(universities.CategoryDegree))

	// setting twice keeps the flag
	status.Set(universities.CategoryLanguage)
	assert.Equal(t, universities.AccreditationStatus{Language: true}, status)

	status.Set("unknown")
	assert.Equal(t, universities.AccreditationStatus{Language: true}, status)
}

func TestUniversityJSONContract(t *testing.T) {
	u := universities.NewUniversity(universities.UniversityData{
		ID:            466,
		NameKr:        "가천대학교",
		Link:          "https://www.gachon.ac.kr",
		Campus:        "제1캠퍼스",
		Level:         universities.LevelUniversity,
		Type:          universities.TypeUniversity,
		Establishment: universities.EstablishmentPrivate,
		Region:        universities.RegionGyeonggi,
	})
	u.Accreditation.Degree = true

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 466,
		"nameKr": "가천대학교",
		"link": "https://www.gachon.ac.kr",
		"campus": "제1캠퍼스",
		"level": "대학(4년제)",
		"type": "대학교",
		"establishment": "사립",
		"region": "경기도",
		"accreditation": {"degree": true, "language": false, "excellent": false}
	}`, string(data))

	bare, err := json.Marshal(universities.NewUniversity(universities.UniversityData{ID: 1, NameKr: "x"}))
	require.NoError(t, err)
	assert.NotContains(t, string(bare), "link")
	assert.NotContains(t, string(bare), "campus")
}

func TestAccreditedSource(t *testing.T) {
	raw := `{
		"lastModified": "2025-03-01",
		"scrapedAt": "2025-03-02T00:00:00Z",
		"excellent": {"university": ["a"], "college": [], "graduate": []},
		"degree": {"university": ["b", "c"], "college": ["d"], "graduate": ["e"]},
		"language": {"university": [], "college": [], "graduate": []}
	}`

	var src universities.AccreditedSource
	require.NoError(t, json.Unmarshal([]byte(raw), &src))

	assert.Equal(t, "2025-03-01", src.LastModified)
	assert.Equal(t, 4, src.List(universities.CategoryDegree).Len())
	assert.Equal(t, []string{"d"}, src.List(universities.CategoryDegree).Bucket(universities.LevelCollege))
	assert.Equal(t, []string{"a"}, src.List(universities.CategoryExcellent).Bucket(universities.LevelUniversity))
	assert.Nil(t, src.List(universities.CategoryDegree).Bucket("unknown"))
	assert.Equal(t, 0, src.List("unknown").Len())
	assert.Equal(t, []universities.Category{"degree", "language", "excellent"}, universities.Categories())
}

func TestVocabulary(t *testing.T) {
	assert.Len(t, universities.Regions(), 19)
	assert.Len(t, universities.Establishments(), 4)
	assert.Len(t, universities.SchoolLevels(), 3)
	assert.Len(t, universities.SchoolTypes(), 16)

	assert.True(t, universities.RegionJeju.IsValid())
	assert.False(t, universities.Region("제주도").IsValid())
	assert.True(t, universities.TypeCyberCollege.IsValid())
	assert.False(t, universities.SchoolLevel("대학교").IsValid())

	assert.Contains(t, universities.TypesForLevel(universities.LevelCollege), universities.TypePolytechnic)
	assert.NotContains(t, universities.TypesForLevel(universities.LevelUniversity), universities.TypeCollege)
	assert.Nil(t, universities.TypesForLevel("x"))

	assert.Equal(t, universities.TypeUniversity, universities.DefaultType(universities.LevelUniversity))
	assert.Equal(t, universities.TypeCollege, universities.DefaultType(universities.LevelCollege))
	assert.Equal(t, universities.TypeGraduate, universities.DefaultType(universities.LevelGraduate))

	// returned tables are copies
	regions := universities.Regions()
	regions[0] = "x"
	assert.Equal(t, universities.RegionSeoul, universities.Regions()[0])
}

func TestSearchOptionsMatches(t *testing.T) {
	jeju := universities.NewUniversity(universities.UniversityData{
		ID: 1, NameKr: "제주대학교",
		Level: universities.LevelUniversity, Establishment: universities.EstablishmentNational,
		Region: universities.RegionJeju,
	})
	jeju.Accreditation.Excellent = true

	tests := []struct {
		name string
		opts universities.SearchOptions
		want bool
	}{
		{"zero options", universities.SearchOptions{}, true},
		{"region match", universities.SearchOptions{Region: universities.RegionJeju}, true},
		{"region mismatch", universities.SearchOptions{Region: universities.RegionSeoul}, false},
		{"level mismatch", universities.SearchOptions{Level: universities.LevelCollege}, false},
		{"establishment match", universities.SearchOptions{Establishment: universities.EstablishmentNational}, true},
		{"accredited via excellent", universities.SearchOptions{IsAccredited: true}, true},
		{"only excellent", universities.SearchOptions{OnlyExcellent: true}, true},
		{"unknown value matches nothing", universities.SearchOptions{Region: "화성"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Matches(jeju))
		})
	}

	plain := universities.NewUniversity(universities.UniversityData{ID: 2, NameKr: "x"})
	assert.False(t, universities.SearchOptions{IsAccredited: true}.Matches(plain))
	assert.False(t, universities.SearchOptions{OnlyExcellent: true}.Matches(plain))
	assert.True(t, universities.SearchOptions{}.IsZero())
	assert.False(t, universities.SearchOptions{OnlyExcellent: true}.IsZero())
}

func TestComputeStats(t *testing.T) {
	mk := func(level universities.SchoolLevel, acc universities.AccreditationStatus) universities.University {
		u := universities.NewUniversity(universities.UniversityData{Level: level})
		u.Accreditation = acc
		return u
	}
	stats := universities.ComputeStats([]universities.University{
		mk(universities.LevelUniversity, universities.AccreditationStatus{Degree: true}),
		mk(universities.LevelUniversity, universities.AccreditationStatus{}),
		mk(universities.LevelCollege, universities.AccreditationStatus{Language: true}),
		mk(universities.LevelGraduate, universities.AccreditationStatus{Excellent: true}),
	})

	assert.Equal(t, universities.Stats{Total: 4, University: 2, College: 1, Graduate: 1, Accredited: 2}, stats)
}

func TestValidate(t *testing.T) {
	rows := []universities.UniversityData{
		{ID: 1, NameKr: "가천대학교", Level: universities.LevelUniversity, Type: universities.TypeUniversity,
			Establishment: universities.EstablishmentPrivate, Region: universities.RegionGyeonggi},
		{ID: 1, NameKr: "중복대학교", Level: universities.LevelUniversity, Type: universities.TypeUniversity,
			Establishment: universities.EstablishmentPrivate, Region: universities.RegionSeoul},
		{ID: 2, NameKr: "엉뚱전문대학", Level: universities.LevelCollege, Type: universities.TypeEducation,
			Establishment: "민간", Region: "화성"},
	}

	issues := universities.Validate(rows)
	require.Len(t, issues, 4)

	assert.Equal(t, "id", issues[0].Field)
	assert.Equal(t, "duplicate id", issues[0].Message)
	assert.Equal(t, "type", issues[1].Field)
	assert.Contains(t, issues[1].Message, "not allowed")
	assert.Equal(t, "establishment", issues[2].Field)
	assert.Equal(t, "region", issues[3].Field)

	assert.True(t, errors.IsValidationError(issues[3].Err()))
	assert.Empty(t, universities.Validate(rows[:1]))
}
