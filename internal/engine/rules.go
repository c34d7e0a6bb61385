package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

// defaultSearchRadius bounds how far keyword rules look above/below the
// keyword line.
const defaultSearchRadius = 3

// extractField dispatches on the rule's extraction strategy. A missing value
// is ("", nil); errors mean the rule itself could not be evaluated.
func extractField(rule entity.ExtractionRule, doc *extract.Document, tables []extract.Table, extracted map[string]string) (string, error) {
	switch rule.Type {
	case constants.RuleRegex:
		return extractRegex(rule.Config, doc.Text)
	case constants.RuleKeyword:
		return extractKeyword(rule.Config, doc.Text)
	case constants.RuleTable:
		return extractTable(rule.Config, tables)
	case constants.RulePosition:
		return extractPosition(rule.Config, doc.Text), nil
	case constants.RuleCalculation:
		return extractCalculation(rule.Config, extracted)
	default:
		return "", fmt.Errorf("unknown extraction type %q", rule.Type)
	}
}

// extractRegex returns the first match of the pattern against the full text,
// case-insensitively. A capture group, when present, wins over the whole match.
func extractRegex(cfg entity.RuleConfig, text string) (string, error) {
	if cfg.Pattern == "" {
		return "", fmt.Errorf("regex rule has no pattern")
	}
	re, err := regexp.Compile("(?i)" + cfg.Pattern)
	if err != nil {
		return "", fmt.Errorf("regex rule: %w", err)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", nil
	}
	if len(m) > 1 && m[1] != "" {
		return strings.TrimSpace(m[1]), nil
	}
	return strings.TrimSpace(m[0]), nil
}

// extractKeyword scans line by line for the first occurrence of any keyword,
// then reads the value per the configured direction.
func extractKeyword(cfg entity.RuleConfig, text string) (string, error) {
	if len(cfg.Keywords) == 0 {
		return "", fmt.Errorf("keyword rule has no keywords")
	}
	radius := cfg.SearchRadius
	if radius <= 0 {
		radius = defaultSearchRadius
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range cfg.Keywords {
			if kw == "" {
				continue
			}
			idx := strings.Index(lower, strings.ToLower(kw))
			if idx < 0 {
				continue
			}
			switch cfg.Direction {
			case "", "same_line":
				rest := line[idx+len(kw):]
				rest = strings.TrimSpace(rest)
				rest = strings.TrimPrefix(rest, ":")
				return strings.TrimSpace(rest), nil
			case "after":
				for j := i + 1; j <= i+radius && j < len(lines); j++ {
					if v := strings.TrimSpace(lines[j]); v != "" {
						return v, nil
					}
				}
				return "", nil
			case "before":
				for j := i - 1; j >= i-radius && j >= 0; j-- {
					if v := strings.TrimSpace(lines[j]); v != "" {
						return v, nil
					}
				}
				return "", nil
			default:
				return "", fmt.Errorf("keyword rule: unknown direction %q", cfg.Direction)
			}
		}
	}
	return "", nil
}

// extractTable resolves a cell from the pre-detected tables, either by header
// substring or by explicit column/row index. Row index 1 is the first data
// row (the header row is row 0 and never addressed).
func extractTable(cfg entity.RuleConfig, tables []extract.Table) (string, error) {
	if cfg.TableIndex < 0 || cfg.TableIndex >= len(tables) {
		return "", nil
	}
	table := tables[cfg.TableIndex]
	if len(table.Rows) == 0 {
		return "", nil
	}

	row := 1
	if cfg.RowIndex != nil {
		row = *cfg.RowIndex
	}
	if row < 1 || row > len(table.Rows) {
		return "", nil
	}
	cells := table.Rows[row-1]

	col := -1
	switch {
	case cfg.ColumnHeader != "":
		want := strings.ToLower(cfg.ColumnHeader)
		for i, h := range table.Headers {
			if strings.Contains(strings.ToLower(h), want) {
				col = i
				break
			}
		}
	case cfg.ColumnIndex != nil:
		col = *cfg.ColumnIndex
	default:
		return "", fmt.Errorf("table rule needs column_header or column_index")
	}

	if col < 0 || col >= len(cells) {
		return "", nil
	}
	return strings.TrimSpace(cells[col]), nil
}

// extractPosition approximates coordinate-based extraction with line numbers
// standing in for vertical position: it scans lines y-2 through y+height and
// returns the first non-empty slice. Known fidelity gap, kept for contract
// compatibility (field or empty).
func extractPosition(cfg entity.RuleConfig, text string) string {
	lines := strings.Split(text, "\n")
	height := cfg.Height
	if height < 1 {
		height = 1
	}
	start := cfg.Y - 2
	if start < 0 {
		start = 0
	}
	end := cfg.Y + height
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		line := lines[i]
		if cfg.Width > 0 && cfg.X < len(line) {
			stop := cfg.X + cfg.Width
			if stop > len(line) {
				stop = len(line)
			}
			if v := strings.TrimSpace(line[cfg.X:stop]); v != "" {
				return v
			}
			continue
		}
		if v := strings.TrimSpace(line); v != "" {
			return v
		}
	}
	return ""
}

// extractCalculation derives a value from already-extracted fields, either by
// evaluating a formula template or by folding an operation over source fields.
func extractCalculation(cfg entity.RuleConfig, extracted map[string]string) (string, error) {
	if cfg.Formula != "" {
		expr, err := substituteFields(cfg.Formula, extracted)
		if err != nil {
			return "", err
		}
		v, err := evalExpression(expr)
		if err != nil {
			return "", fmt.Errorf("formula %q: %w", cfg.Formula, err)
		}
		return formatNumber(v), nil
	}

	if len(cfg.SourceFields) == 0 {
		return "", fmt.Errorf("calculation rule has no formula or source fields")
	}
	switch cfg.Operation {
	case "sum", "multiply", "subtract", "divide":
	default:
		return "", fmt.Errorf("unknown operation %q", cfg.Operation)
	}
	values := make([]float64, 0, len(cfg.SourceFields))
	for _, name := range cfg.SourceFields {
		raw, ok := extracted[name]
		if !ok {
			return "", fmt.Errorf("source field %q not extracted", name)
		}
		v, err := parseNumeric(raw)
		if err != nil {
			return "", fmt.Errorf("source field %q: %w", name, err)
		}
		values = append(values, v)
	}

	acc := values[0]
	for _, v := range values[1:] {
		switch cfg.Operation {
		case "sum":
			acc += v
		case "multiply":
			acc *= v
		case "subtract":
			acc -= v
		case "divide":
			if v == 0 {
				return "", fmt.Errorf("division by zero")
			}
			acc /= v
		}
	}
	return formatNumber(acc), nil
}

// substituteFields replaces {field} placeholders with the numeric form of the
// extracted value.
func substituteFields(formula string, extracted map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(formula); {
		if formula[i] != '{' {
			b.WriteByte(formula[i])
			i++
			continue
		}
		end := strings.IndexByte(formula[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("formula %q: unclosed placeholder", formula)
		}
		name := formula[i+1 : i+end]
		raw, ok := extracted[name]
		if !ok {
			return "", fmt.Errorf("formula field %q not extracted", name)
		}
		v, err := parseNumeric(raw)
		if err != nil {
			return "", fmt.Errorf("formula field %q: %w", name, err)
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		i += end + 1
	}
	return b.String(), nil
}

// parseNumeric reads a number out of an extracted value, tolerating currency
// and percentage decoration.
func parseNumeric(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not numeric: %q", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
