package engine

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

// selectionThreshold is the minimum score before a scored template beats the
// deterministic first-template fallback.
const selectionThreshold = 0.3

// documentKinds earn a naming bonus when the template name and the document
// text agree on one of them.
var documentKinds = []string{"invoice", "receipt", "statement"}

// Result is the outcome of running one template over one document.
// Transient; the orchestrator persists a summary plus the CSV artifact.
type Result struct {
	ExtractedData map[string]string
	FieldOrder    []string
	Confidence    float64
	Errors        []string
	Warnings      []string
	Success       bool
	Duration      time.Duration
}

// TemplateStore is the slice of the data layer the engine needs.
type TemplateStore interface {
	ListActive(ctx context.Context) ([]*entity.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)
}

// Engine selects and executes extraction templates. The template cache is
// read-mostly and refreshed via Initialize, never per request.
type Engine struct {
	store  TemplateStore
	logger *slog.Logger

	mu         sync.RWMutex
	byCustomer map[uuid.UUID][]*entity.Template
}

func NewEngine(store TemplateStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, logger: logger, byCustomer: map[uuid.UUID][]*entity.Template{}}
}

// Initialize (re)loads all active templates grouped by customer. Templates
// with conflicting hardcoded mappings are rejected here, not at match time.
func (e *Engine) Initialize(ctx context.Context) error {
	templates, err := e.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}

	grouped := make(map[uuid.UUID][]*entity.Template)
	for _, tpl := range templates {
		if err := CheckMappings(tpl); err != nil {
			e.logger.Warn("rejecting template with invalid mappings",
				"template_id", tpl.ID, "customer_id", tpl.CustomerID, "error", err)
			continue
		}
		grouped[tpl.CustomerID] = append(grouped[tpl.CustomerID], tpl)
	}

	e.mu.Lock()
	e.byCustomer = grouped
	e.mu.Unlock()

	e.logger.Info("template engine initialized", "templates", len(templates), "customers", len(grouped))
	return nil
}

// TemplateByID fetches a template directly, bypassing the active-set cache.
// Used for forced reprocessing overrides.
func (e *Engine) TemplateByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	return e.store.GetByID(ctx, id)
}

// SelectTemplate picks the best-fit active template for the customer, or nil
// when the customer has none. Deterministic: same text and template set
// always yield the same template.
func (e *Engine) SelectTemplate(customerID uuid.UUID, text string) *entity.Template {
	e.mu.RLock()
	templates := e.byCustomer[customerID]
	e.mu.RUnlock()

	switch len(templates) {
	case 0:
		return nil
	case 1:
		return templates[0]
	}

	lower := strings.ToLower(text)
	best := templates[0]
	bestScore := -1.0
	for _, tpl := range templates {
		score := scoreTemplate(tpl, text, lower)
		e.logger.Debug("template scored", "template_id", tpl.ID, "name", tpl.Name, "score", score)
		if score > bestScore {
			best, bestScore = tpl, score
		}
	}
	if bestScore > selectionThreshold {
		return best
	}
	// stable, deterministic default
	return templates[0]
}

// scoreTemplate awards points for rules whose cheap precondition holds in the
// raw text. Position rules cannot be pre-validated against raw text and earn
// a flat half point.
func scoreTemplate(tpl *entity.Template, text, lower string) float64 {
	var points float64
	for _, rule := range tpl.Rules {
		switch rule.Type {
		case "keyword":
			for _, kw := range rule.Config.Keywords {
				if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
					points++
					break
				}
			}
		case "regex":
			if rule.Config.Pattern == "" {
				continue
			}
			if re, err := regexp.Compile("(?i)" + rule.Config.Pattern); err == nil && re.MatchString(text) {
				points++
			}
		case "position":
			points += 0.5
		}
	}

	lowerName := strings.ToLower(tpl.Name)
	for _, kind := range documentKinds {
		if strings.Contains(lowerName, kind) && strings.Contains(lower, kind) {
			points += 2
		}
	}
	return points / float64(len(tpl.Rules)+3)
}

// Process executes every rule of the template over the extracted document,
// applies hardcoded mappings, validates, and reports per-field and aggregate
// confidence. A single failing field never aborts the remaining fields.
func (e *Engine) Process(tpl *entity.Template, doc *extract.Document) Result {
	start := time.Now()
	res := Result{ExtractedData: make(map[string]string, len(tpl.Rules))}

	mappings := sortedMappings(tpl.HardcodedMappings)
	tables := flattenTables(doc)

	var successful int
	for _, rule := range tpl.Rules {
		required := rule.Validation != nil && rule.Validation.Required

		value, err := extractField(rule, doc, tables, res.ExtractedData)
		if err != nil {
			msg := fmt.Sprintf("field %q: %v", rule.FieldName, err)
			if required || rule.Type == "calculation" {
				res.Errors = append(res.Errors, msg)
			} else {
				res.Warnings = append(res.Warnings, msg)
			}
			continue
		}

		if mapped, ok := applyMappings(mappings, rule.FieldName, value); ok {
			value = mapped
		}

		if value == "" {
			if required {
				res.Errors = append(res.Errors, fmt.Sprintf("required field %q has no value", rule.FieldName))
			}
			continue
		}

		res.Warnings = append(res.Warnings, validateField(rule, value)...)
		res.ExtractedData[rule.FieldName] = value
		res.FieldOrder = append(res.FieldOrder, rule.FieldName)
		successful++
	}

	if len(tpl.Rules) > 0 {
		res.Confidence = float64(successful) / float64(len(tpl.Rules))
	}
	res.Success = len(res.Errors) == 0 && res.Confidence > 0.5
	res.Duration = time.Since(start)

	e.logger.Debug("template processed",
		"template_id", tpl.ID, "fields", successful, "total", len(tpl.Rules),
		"confidence", res.Confidence, "errors", len(res.Errors), "warnings", len(res.Warnings))
	return res
}

// sortedMappings orders by priority descending; ties keep stored order.
func sortedMappings(in []entity.HardcodedMapping) []entity.HardcodedMapping {
	out := make([]entity.HardcodedMapping, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

func flattenTables(doc *extract.Document) []extract.Table {
	var tables []extract.Table
	for _, p := range doc.Pages {
		tables = append(tables, p.Tables...)
	}
	return tables
}
