package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/kuniv/pkg/universities"
)

func sample() []universities.University {
	return []universities.University{
		{
			UniversityData: universities.UniversityData{
				ID:            8,
				NameKr:        "서울대학교",
				Link:          "https://www.snu.ac.kr",
				Level:         universities.LevelUniversity,
				Type:          universities.TypeUniversity,
				Establishment: universities.EstablishmentNational,
				Region:        universities.RegionSeoul,
			},
			Accreditation: universities.AccreditationStatus{Degree: true, Excellent: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestUniversitiesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Universities(&buf, sample(), FormatJSON))

	var got []universities.University
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
	assert.Contains(t, buf.String(), `"nameKr": "서울대학교"`)
}

func TestUniversitiesEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Universities(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestUniversitiesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Universities(&buf, sample(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "name_kr: 서울대학교")
	assert.Contains(t, out, "excellent: true")
	assert.NotContains(t, out, "universitydata")
}

func TestUniversitiesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Universities(&buf, sample(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "서울대학교")
	assert.Contains(t, out, "✓")
	assert.NotContains(t, out, "https://www.snu.ac.kr")

	buf.Reset()
	require.NoError(t, Universities(&buf, sample(), FormatWide))
	assert.Contains(t, buf.String(), "https://www.snu.ac.kr")
}

func TestMetadataTable(t *testing.T) {
	var buf bytes.Buffer
	meta := universities.LibraryMetadata{
		BuiltAt: "2025-03-14T09:26:53.589Z",
		Sources: []string{"a", "b"},
		Stats:   universities.Stats{Total: 18, Accredited: 14},
	}
	require.NoError(t, Metadata(&buf, meta, FormatTable))
	assert.Contains(t, buf.String(), "2025-03-14T09:26:53.589Z")
	assert.Contains(t, buf.String(), "18")
}

func TestTableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Any(&buf, map[string]int{"total": 3}, FormatTable))
	assert.JSONEq(t, `{"total": 3}`, buf.String())
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Source Last Modified", Header("source_last_modified"))
	assert.Equal(t, "ID", Header("ID"))
}
