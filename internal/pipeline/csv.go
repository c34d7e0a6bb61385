package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/extract"
)

var csvHeader = []string{"field_name", "field_value", "data_type"}

// writeArtifact emits the fixed three-column CSV. The data type is inferred
// from the value itself rather than taken from the rule, since hardcoded
// mappings may have rewritten it.
func writeArtifact(path string, fields map[string]string, order []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	for _, name := range order {
		value := fields[name]
		if err := w.Write([]string{name, value, string(inferDataType(value))}); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// inferDataType classifies a value by shape, checking the more specific
// shapes first: date, currency, percentage, number, then string.
func inferDataType(value string) constants.DataType {
	value = strings.TrimSpace(value)
	switch {
	case extract.LooksLikeDate(value):
		return constants.TypeDate
	case strings.HasPrefix(value, "$") && extract.LooksLikeCurrency(value):
		return constants.TypeCurrency
	case extract.LooksLikePercentage(value):
		return constants.TypePercentage
	case isNumeric(value):
		return constants.TypeNumber
	default:
		return constants.TypeString
	}
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	return err == nil
}

// basicFields derives a generic field set from the structure heuristics when
// no template can run: key-value pairs first, then dates and numbers not
// already covered.
func basicFields(doc *extract.Document) (map[string]string, []string) {
	fields := make(map[string]string)
	var order []string
	add := func(name, value string) {
		if name == "" || value == "" {
			return
		}
		if _, dup := fields[name]; dup {
			return
		}
		fields[name] = value
		order = append(order, name)
	}

	for _, kv := range extract.DetectKeyValuePairs(doc.Text) {
		add(normalizeFieldName(kv.Key), kv.Value)
	}
	for i, d := range extract.ExtractDates(doc.Text) {
		add(fmt.Sprintf("date_%d", i+1), d)
	}
	for i, n := range extract.ExtractNumbers(doc.Text) {
		add(fmt.Sprintf("number_%d", i+1), n)
	}
	return fields, order
}

// normalizeFieldName lowercases and squashes a free-text key into a
// snake_case field name.
func normalizeFieldName(key string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(key)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
