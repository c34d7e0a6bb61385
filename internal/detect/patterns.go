package detect

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// ParseIdentifierPatterns ingests a customer's stored identifier patterns.
// Two encodings are accepted: a flat list of pattern objects/strings, and a
// flat key->value object used by legacy customer records. Unspecified types
// default to "text"; legacy keys containing "name" are weighted 2.0 vs 1.0.
func ParseIdentifierPatterns(raw json.RawMessage) ([]entity.DetectionPattern, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return parsePatternList(list)
	}

	var legacy map[string]any
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return parseLegacyMap(legacy), nil
	}

	return nil, fmt.Errorf("identifier patterns: neither list nor object: %s", snippet(raw))
}

func parsePatternList(list []json.RawMessage) ([]entity.DetectionPattern, error) {
	out := make([]entity.DetectionPattern, 0, len(list))
	for i, item := range list {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, entity.DetectionPattern{
				Kind:    constants.PatternText,
				Pattern: s,
				Weight:  1.0,
			})
			continue
		}

		var p entity.DetectionPattern
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("identifier patterns[%d]: %w", i, err)
		}
		if p.Pattern == "" {
			return nil, fmt.Errorf("identifier patterns[%d]: empty pattern", i)
		}
		if p.Kind == "" {
			p.Kind = constants.PatternText
		}
		if p.Weight <= 0 {
			p.Weight = 1.0
		}
		out = append(out, p)
	}
	return out, nil
}

func parseLegacyMap(legacy map[string]any) []entity.DetectionPattern {
	keys := make([]string, 0, len(legacy))
	for k := range legacy {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]entity.DetectionPattern, 0, len(legacy))
	for _, key := range keys {
		pattern := fmt.Sprintf("%v", legacy[key])
		if strings.TrimSpace(pattern) == "" {
			continue
		}
		weight := 1.0
		if strings.Contains(strings.ToLower(key), "name") {
			weight = 2.0
		}
		out = append(out, entity.DetectionPattern{
			Kind:    constants.PatternText,
			Pattern: pattern,
			Weight:  weight,
		})
	}
	return out
}

func snippet(raw []byte) string {
	const max = 64
	if len(raw) <= max {
		return string(raw)
	}
	return string(raw[:max]) + "..."
}
