package engine

import (
	"regexp"
	"strings"

	"github.com/adeolu-martins/docextract/internal/entity"
)

// applyMappings returns the target value of the first mapping for fieldName
// that matches the extracted value. Mappings must already be sorted by
// priority descending. Literal patterns match by case-insensitive substring;
// patterns containing * or ? are glob-matched against the whole value.
func applyMappings(mappings []entity.HardcodedMapping, fieldName, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	lowerValue := strings.ToLower(value)
	for _, m := range mappings {
		if m.FieldName != fieldName || m.SourcePattern == "" {
			continue
		}
		if mappingMatches(m.SourcePattern, lowerValue) {
			return m.TargetValue, true
		}
	}
	return "", false
}

func mappingMatches(pattern, lowerValue string) bool {
	if strings.ContainsAny(pattern, "*?") {
		re, err := globToRegex(strings.ToLower(pattern))
		if err != nil {
			return false
		}
		return re.MatchString(lowerValue)
	}
	return strings.Contains(lowerValue, strings.ToLower(pattern))
}

// globToRegex translates a */? wildcard pattern into a regex anchored at both
// ends.
func globToRegex(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
