// Package schema carries the embedded JSON Schema for the merged config.
package schema

import _ "embed"

//go:embed config.schema.json
var Bytes []byte
