package detect

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

const (
	exactThreshold    = 0.5
	patternThreshold  = 0.6
	fuzzyThreshold    = 0.5
	filenameThreshold = 0.5

	fuzzyCap    = 0.8
	filenameCap = 0.9

	headerFooterLines = 5
)

// Result is one customer-identification outcome. Transient; produced fresh
// per document.
type Result struct {
	CustomerID      *uuid.UUID                `json:"customer_id,omitempty"`
	Confidence      float64                   `json:"confidence"`
	MatchedPatterns []string                  `json:"matched_patterns,omitempty"`
	Method          constants.DetectionMethod `json:"method,omitempty"`
}

// CustomerStore is the slice of the data layer the detector needs.
type CustomerStore interface {
	ListActive(ctx context.Context) ([]*entity.Customer, error)
	AppendIdentifierPattern(ctx context.Context, customerID uuid.UUID, p entity.DetectionPattern) error
}

// compiledPattern is a DetectionPattern with its regex precompiled so a
// detection pass never re-parses patterns.
type compiledPattern struct {
	entity.DetectionPattern
	re *regexp.Regexp
}

type customerEntry struct {
	id         uuid.UUID
	name       string
	nameTokens []string
	patterns   []compiledPattern
}

// Detector matches document text against the active customer set. Reads are
// lock-free apart from an RWMutex snapshot; pattern learning is the single
// writer.
type Detector struct {
	store  CustomerStore
	logger *slog.Logger

	mu        sync.RWMutex
	customers []*customerEntry
}

func NewDetector(store CustomerStore, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{store: store, logger: logger}
}

// Initialize (re)loads the active customer set and precompiles regex
// patterns. Call once at startup and again after out-of-band customer edits.
func (d *Detector) Initialize(ctx context.Context) error {
	customers, err := d.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list customers: %w", err)
	}

	entries := make([]*customerEntry, 0, len(customers))
	for _, c := range customers {
		entry := &customerEntry{
			id:         c.ID,
			name:       c.Name,
			nameTokens: nameTokens(c.Name),
		}
		for _, p := range c.IdentifierPatterns {
			cp, err := compilePattern(p)
			if err != nil {
				d.logger.Warn("skipping invalid pattern",
					"customer_id", c.ID, "pattern", p.Pattern, "error", err)
				continue
			}
			entry.patterns = append(entry.patterns, cp)
		}
		entries = append(entries, entry)
	}

	d.mu.Lock()
	d.customers = entries
	d.mu.Unlock()

	d.logger.Info("customer detector initialized", "customers", len(entries))
	return nil
}

func compilePattern(p entity.DetectionPattern) (compiledPattern, error) {
	cp := compiledPattern{DetectionPattern: p}
	if p.Kind == constants.PatternRegex {
		expr := p.Pattern
		if !p.CaseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return cp, err
		}
		cp.re = re
	}
	return cp, nil
}

// DetectCustomer pools candidates from every heuristic across every active
// customer and returns the highest-confidence one. Never fails: when nothing
// matches it returns a zero-confidence result with a nil customer id.
func (d *Detector) DetectCustomer(text, filename string) Result {
	d.mu.RLock()
	customers := d.customers
	d.mu.RUnlock()

	var candidates []Result
	for _, c := range customers {
		if r, ok := c.exactMatch(text); ok {
			candidates = append(candidates, r)
		}
		if r, ok := c.patternMatch(text); ok {
			candidates = append(candidates, r)
		}
		if r, ok := c.fuzzyMatch(text); ok {
			candidates = append(candidates, r)
		}
		if filename != "" {
			if r, ok := c.filenameMatch(filename); ok {
				candidates = append(candidates, r)
			}
		}
	}
	if len(candidates) == 0 {
		return Result{}
	}

	// stable sort keeps encounter order as the tie-break
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	best := candidates[0]
	d.logger.Debug("customer detected",
		"customer_id", best.CustomerID, "confidence", best.Confidence,
		"method", best.Method, "candidates", len(candidates))
	return best
}

// exactMatch sums weights of literal text patterns found as substrings.
func (c *customerEntry) exactMatch(text string) (Result, bool) {
	var total, matched float64
	var names []string
	for _, p := range c.patterns {
		if p.Kind != constants.PatternText && p.Kind != constants.PatternPosition {
			continue
		}
		total += p.Weight
		if containsWithCase(text, p.Pattern, p.CaseSensitive) {
			matched += p.Weight
			names = append(names, p.Pattern)
		}
	}
	if total == 0 {
		return Result{}, false
	}
	conf := matched / total
	if conf <= exactThreshold {
		return Result{}, false
	}
	id := c.id
	return Result{CustomerID: &id, Confidence: conf, MatchedPatterns: names, Method: constants.MethodExactMatch}, true
}

// patternMatch applies the same weighted ratio over regex, header and footer
// patterns. Header patterns see only the first lines of the document, footer
// patterns only the last.
func (c *customerEntry) patternMatch(text string) (Result, bool) {
	header, footer := headerFooter(text)

	var total, matched float64
	var names []string
	for _, p := range c.patterns {
		var hit bool
		switch p.Kind {
		case constants.PatternRegex:
			hit = p.re != nil && p.re.MatchString(text)
		case constants.PatternHeader:
			hit = containsWithCase(header, p.Pattern, p.CaseSensitive)
		case constants.PatternFooter:
			hit = containsWithCase(footer, p.Pattern, p.CaseSensitive)
		default:
			continue
		}
		total += p.Weight
		if hit {
			matched += p.Weight
			names = append(names, p.Pattern)
		}
	}
	if total == 0 {
		return Result{}, false
	}
	conf := matched / total
	if conf <= patternThreshold {
		return Result{}, false
	}
	id := c.id
	return Result{CustomerID: &id, Confidence: conf, MatchedPatterns: names, Method: constants.MethodPatternMatch}, true
}

// fuzzyMatch scores the customer name token-wise against the text, capped to
// mark it as the weaker signal.
func (c *customerEntry) fuzzyMatch(text string) (Result, bool) {
	if len(c.nameTokens) == 0 {
		return Result{}, false
	}
	lower := strings.ToLower(text)
	var matched int
	var names []string
	for _, tok := range c.nameTokens {
		if strings.Contains(lower, tok) {
			matched++
			names = append(names, tok)
		}
	}
	conf := float64(matched) / float64(len(c.nameTokens)) * fuzzyCap
	if conf <= fuzzyThreshold {
		return Result{}, false
	}
	id := c.id
	return Result{CustomerID: &id, Confidence: conf, MatchedPatterns: names, Method: constants.MethodFuzzyMatch}, true
}

// filenameMatch checks name tokens and configured patterns against the
// lower-cased filename.
func (c *customerEntry) filenameMatch(filename string) (Result, bool) {
	lower := strings.ToLower(filename)
	var conf float64
	var names []string
	for _, tok := range c.nameTokens {
		if strings.Contains(lower, tok) {
			conf += 0.3
			names = append(names, "filename:"+tok)
		}
	}
	for _, p := range c.patterns {
		if p.Pattern != "" && strings.Contains(lower, strings.ToLower(p.Pattern)) {
			conf += 0.4
			names = append(names, "filename:"+p.Pattern)
		}
	}
	if conf > filenameCap {
		conf = filenameCap
	}
	if conf <= filenameThreshold {
		return Result{}, false
	}
	id := c.id
	return Result{CustomerID: &id, Confidence: conf, MatchedPatterns: names, Method: constants.MethodFuzzyMatch}, true
}

func containsWithCase(haystack, needle string, caseSensitive bool) bool {
	if needle == "" {
		return false
	}
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func headerFooter(text string) (header, footer string) {
	lines := strings.Split(text, "\n")
	n := len(lines)
	h := headerFooterLines
	if h > n {
		h = n
	}
	return strings.Join(lines[:h], "\n"), strings.Join(lines[n-h:], "\n")
}

func nameTokens(name string) []string {
	var toks []string
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		if len(tok) > 2 {
			toks = append(toks, tok)
		}
	}
	return toks
}
