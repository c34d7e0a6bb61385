package extract

import (
	"regexp"
	"strings"
)

// Table is a detected tabular region. The first qualifying row is treated as
// the header row.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// KeyValue is one "Key: Value" pair detected in free text.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

var (
	reColumnSplit = regexp.MustCompile(`\t|\s{2,}`)
	reKeyValue    = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 #/._-]{0,40}?)\s*:\s*(\S.*)$`)
	reDate        = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{1,2}[/.]\d{1,2}[/.]\d{2,4})\b`)
	reNumber      = regexp.MustCompile(`[-+]?\$?\d{1,3}(,\d{3})*(\.\d+)?%?|[-+]?\$?\d+(\.\d+)?%?`)
	reCurrencyVal = regexp.MustCompile(`^\$?\d+(\.\d*)?$`)
	rePercentVal  = regexp.MustCompile(`^\d+(\.\d+)?%$`)
)

// DetectTables finds column-aligned regions: a line qualifies as a row when
// splitting on tabs or runs of >=2 spaces yields at least two cells, and a
// run of qualifying lines becomes a table once it has at least two rows.
// Pure and stateless; safe to call repeatedly.
func DetectTables(text string) []Table {
	var tables []Table
	var current [][]string

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, Table{Headers: current[0], Rows: current[1:]})
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		cells := splitRow(line)
		if len(cells) >= 2 {
			current = append(current, cells)
			continue
		}
		flush()
	}
	flush()
	return tables
}

func splitRow(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	var cells []string
	for _, c := range reColumnSplit.Split(strings.TrimSpace(line), -1) {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// DetectKeyValuePairs scans line by line for "Key: Value" shapes. Order is
// the order of first appearance; duplicate keys keep the first value.
func DetectKeyValuePairs(text string) []KeyValue {
	var pairs []KeyValue
	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		m := reKeyValue.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := strings.TrimSpace(m[1])
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, KeyValue{Key: key, Value: strings.TrimSpace(m[2])})
	}
	return pairs
}

// ExtractDates returns all date-shaped substrings in document order.
func ExtractDates(text string) []string {
	return dedupe(reDate.FindAllString(text, -1))
}

// ExtractNumbers returns all numeric/currency/percentage-shaped substrings in
// document order.
func ExtractNumbers(text string) []string {
	return dedupe(reNumber.FindAllString(text, -1))
}

func dedupe(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// LooksLikeCurrency reports whether s matches the currency shape after
// thousands separators are removed.
func LooksLikeCurrency(s string) bool {
	return reCurrencyVal.MatchString(strings.ReplaceAll(s, ",", ""))
}

// LooksLikePercentage reports whether s is a percentage literal.
func LooksLikePercentage(s string) bool {
	return rePercentVal.MatchString(strings.TrimSpace(s))
}

// LooksLikeDate reports whether s is a date-shaped value.
func LooksLikeDate(s string) bool {
	m := reDate.FindString(strings.TrimSpace(s))
	return m == strings.TrimSpace(s) && m != ""
}

// naive heuristic confidence based on decoded text characteristics, used when
// tesseract reports no word confidences.
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 0.2 // base
	if reDate.MatchString(txtL) {
		score += 0.2
	}
	if reNumber.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if meaningfulRatio(txt) > 0.5 {
		score += 0.15
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
