package services

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in response")

// ParseJSONResponse decodes raw LLM output into a JSON object. When the text
// is not valid JSON as a whole, the span from the first '{' to the last '}'
// is tried once; nothing beyond that is repaired.
func ParseJSONResponse(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)

	var result map[string]any
	err := json.Unmarshal([]byte(text), &result)
	if err == nil && result != nil {
		return result, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		if err == nil {
			err = errNoJSONObject
		}
		return nil, newError(KindNotParseable, err, "response not parseable as structured data")
	}

	result = nil
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil, newError(KindNotParseable, err, "response not parseable as structured data")
	}
	if result == nil {
		return nil, newError(KindNotParseable, errNoJSONObject, "response not parseable as structured data")
	}

	return result, nil
}
