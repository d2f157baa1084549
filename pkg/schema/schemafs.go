// Package schema embeds the JSON schema for tree dumps.
package schema

import (
	"embed"
	"fmt"
)

// TreeSchemaFile is the name of the tree dump schema inside FS.
const TreeSchemaFile = "tree-schema.json"

// FS contains the embedded schemas.
//
//go:embed tree-schema.json
var FS embed.FS

// TreeSchema returns the tree dump schema document.
func TreeSchema() ([]byte, error) {
	data, err := FS.ReadFile(TreeSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	return data, nil
}
