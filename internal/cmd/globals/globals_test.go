package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/kuniv/pkg/universities"
)

func TestFilterFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	flags := AddFilterFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"--region", "제주특별자치도", "--level", "전문대학", "--accredited", "-l", "2",
	}))

	assert.Equal(t, universities.SearchOptions{
		Region:       universities.RegionJeju,
		Level:        universities.LevelCollege,
		IsAccredited: true,
	}, flags.Options())
	assert.Empty(t, flags.Unknown())

	records := make([]universities.University, 5)
	assert.Len(t, flags.Apply(records), 2)
}

func TestFilterFlagsUnknown(t *testing.T) {
	flags := &FilterFlags{Region: "화성", Establishment: "사립"}
	assert.Equal(t, []string{"region"}, flags.Unknown())
}
