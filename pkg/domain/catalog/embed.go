package catalog

import (
	_ "embed"
)

//go:embed data/exercises.json
var embeddedData []byte

// LoadEmbedded builds the catalog from the data compiled into the
// binary. Used when no external catalog path is configured.
func LoadEmbedded() (*Catalog, error) {
	return parse(embeddedData)
}
