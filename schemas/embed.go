// Package schemas holds the JSON Schemas for vocabulary files and screening outputs.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
