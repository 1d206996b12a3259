// Package schemas holds the JSON Schemas shipped with the converter.
package schemas

import _ "embed"

// PublishedItem is the JSON Schema for documents accepted by the converter.
//
//go:embed published_item.schema.json
var PublishedItem string
