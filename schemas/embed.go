// Package schemas embeds the JSON Schemas describing the engine's output documents.
package schemas

import "embed"

// Schema file names.
const (
	Prediction = "prediction.schema.json"
	Nutrition  = "nutrition.schema.json"
)

//go:embed *.schema.json
var FS embed.FS
