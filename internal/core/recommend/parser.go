package recommend

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedResponse is returned when no parseable JSON is found in a
// model response.
var ErrMalformedResponse = errors.New("parser: no valid JSON in response")

var (
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// ResponseParser extracts structured records from raw model text. It tolerates
// pure JSON, fenced code blocks and JSON surrounded by prose. A single object
// is normalized to a one-element list; non-object elements are dropped, so a
// successful parse may legitimately return an empty slice.
type ResponseParser struct{}

// Parse returns the list of JSON objects found in raw, or ErrMalformedResponse
func (p ResponseParser) Parse(raw string) ([]map[string]interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMalformedResponse
	}

	candidates := []string{raw, stripFences(raw)}
	if m := arrayPattern.FindString(raw); m != "" {
		candidates = append(candidates, m)
	}
	if m := objectPattern.FindString(raw); m != "" {
		candidates = append(candidates, m)
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		var payload interface{}
		if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
			continue
		}
		return toObjectList(payload)
	}

	return nil, ErrMalformedResponse
}

// stripFences removes a surrounding markdown code block, if any
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// toObjectList normalizes a decoded payload to a list of objects
func toObjectList(payload interface{}) ([]map[string]interface{}, error) {
	switch v := payload.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}, nil
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(v))
		for _, el := range v {
			if m, ok := el.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out, nil
	default:
		// Scalars parse as JSON but carry no records
		return nil, ErrMalformedResponse
	}
}
