package assets

import (
	"embed"
)

//go:embed puzzle.yaml
var FS embed.FS

// PuzzleYAML returns the raw embedded puzzle document.
func PuzzleYAML() ([]byte, error) {
	return FS.ReadFile("puzzle.yaml")
}
