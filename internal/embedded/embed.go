// Package embedded carries the merged dataset and its build summary inside
// the binary. The build command regenerates the files under data/.
package embedded

import (
	"embed"
	"path"

	"github.com/agentstation/kuniv/pkg/constants"
)

// FS embeds the source inputs and build outputs at build time.
//
//go:embed data/*.json
var FS embed.FS

// Dir is the directory inside FS holding the data files.
const Dir = "data"

// Final returns the embedded merged dataset.
func Final() ([]byte, error) {
	return FS.ReadFile(path.Join(Dir, constants.FinalFile))
}

// Metadata returns the embedded build summary.
func Metadata() ([]byte, error) {
	return FS.ReadFile(path.Join(Dir, constants.MetadataFile))
}
