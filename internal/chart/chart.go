// internal/chart/chart.go
//
// Chart payloads ride inside a specialist's natural-language answer after a
// literal delimiter line, with nothing allowed after the closing brace. The
// values are produced by the answering specialist from its instructions, not
// derived from real performance history; this package only enforces the
// mechanical contract.
package chart

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Delimiter is the literal line separating narrative text from the payload.
const Delimiter = "---CHART_DATA---"

// Payload is the embedded chart description.
type Payload struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	XLabel string   `json:"xLabel"`
	YLabel string   `json:"yLabel"`
	Data   []Point  `json:"data"`
	Colors []string `json:"colors,omitempty"`
}

type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Split separates an answer into its narrative and an optional chart
// payload. Answers without the delimiter pass through unchanged. A present
// but malformed payload is an error: trailing content after the closing
// brace or a schema violation both reject the answer.
func Split(answer string) (string, *Payload, error) {
	idx := strings.Index(answer, Delimiter)
	if idx < 0 {
		return answer, nil, nil
	}

	narrative := strings.TrimRight(answer[:idx], "\n")
	rest := strings.TrimSpace(answer[idx+len(Delimiter):])
	if rest == "" {
		return "", nil, fmt.Errorf("chart delimiter present but payload missing")
	}

	dec := json.NewDecoder(strings.NewReader(rest))
	var payload Payload
	if err := dec.Decode(&payload); err != nil {
		return "", nil, fmt.Errorf("invalid chart payload: %w", err)
	}
	if dec.More() {
		return "", nil, fmt.Errorf("content after chart payload closing brace")
	}

	if err := Validate([]byte(rest)); err != nil {
		return "", nil, err
	}
	return narrative, &payload, nil
}

// Compose appends a payload to narrative text, guaranteeing the delimiter
// line and nothing after the closing brace.
func Compose(narrative string, payload *Payload) (string, error) {
	if payload == nil {
		return narrative, nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chart payload: %w", err)
	}
	if err := Validate(encoded); err != nil {
		return "", err
	}
	return strings.TrimRight(narrative, "\n") + "\n" + Delimiter + "\n" + string(encoded), nil
}
