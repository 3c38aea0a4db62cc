package graphql

import (
	"strings"
	"sync"

	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

var (
	extensions []string
	extMu      sync.Mutex
)

// RegisterSchemaExtension appends type/field definitions to the base schema.
// Call from init() in custom packages, before the schema is parsed.
func RegisterSchemaExtension(schema string) {
	extMu.Lock()
	defer extMu.Unlock()
	extensions = append(extensions, strings.TrimSpace(schema))
}

// Schema returns the base schema plus all registered extensions.
func Schema() string {
	extMu.Lock()
	ext := extensions
	extMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}
