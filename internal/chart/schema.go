// internal/chart/schema.go
package chart

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const payloadSchema = `{
	"type": "object",
	"required": ["type", "title", "xLabel", "yLabel", "data"],
	"additionalProperties": false,
	"properties": {
		"type":   {"type": "string", "minLength": 1},
		"title":  {"type": "string", "minLength": 1},
		"xLabel": {"type": "string"},
		"yLabel": {"type": "string"},
		"data": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["x", "y"],
				"properties": {
					"x": {"type": "string"},
					"y": {"type": "number"}
				}
			}
		},
		"colors": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

var compiledSchema = gojsonschema.NewStringLoader(payloadSchema)

// Validate checks an encoded payload against the chart schema.
func Validate(encoded []byte) error {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewBytesLoader(encoded))
	if err != nil {
		return fmt.Errorf("chart payload validation failed: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("chart payload schema violation: %s", strings.Join(problems, "; "))
	}
	return nil
}
