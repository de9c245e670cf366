// Package schemas embeds the JSON Schema documents for structured data the job board exchanges.
package schemas

import "embed"

// Schema file names.
const (
	ParsedQuery = "parsed_query.schema.json"
	Job         = "job.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the raw content of an embedded schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
