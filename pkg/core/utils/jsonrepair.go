package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in model output before
// unmarshalling: missing quotes around keys, single quotes, unclosed
// arrays/objects, trailing commas, comments, stray markdown fences.
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// RepairAndUnmarshal runs model output through repair and decodes it into out.
// When strict repair fails it falls back to Hjson, which tolerates unquoted
// keys and missing commas the way models sometimes emit them.
func RepairAndUnmarshal(raw string, out interface{}) error {
	repaired, err := RepairJSON(raw)
	if err == nil {
		if uerr := json.Unmarshal([]byte(repaired), out); uerr == nil {
			return nil
		}
	}
	if herr := hjson.Unmarshal([]byte(raw), out); herr != nil {
		return fmt.Errorf("could not decode model output as JSON: %w", herr)
	}
	return nil
}
