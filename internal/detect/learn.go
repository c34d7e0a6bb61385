package detect

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// maxLearnedPatterns bounds how many candidates one correction may register.
const maxLearnedPatterns = 3

var (
	// every word capitalized, two to six words: "Wayne Enterprises Inc"
	reCompanyLine = regexp.MustCompile(`^[A-Z][A-Za-z&.,'-]+(?:\s+[A-Z][A-Za-z&.,'-]+){1,5}$`)
	reAccountRef  = regexp.MustCompile(`(?i)\b(?:account|id|reference)\s*(?:no\.?|number)?\s*[:#]\s*([A-Za-z0-9-]{3,})`)
)

// AddCustomerPattern appends one pattern to the customer's persisted set and
// then to the in-memory arena. Persist-then-cache: a pattern that failed to
// persist is never served.
func (d *Detector) AddCustomerPattern(ctx context.Context, customerID uuid.UUID, p entity.DetectionPattern) error {
	if p.Pattern == "" {
		return fmt.Errorf("add pattern: empty pattern")
	}
	if p.Kind == "" {
		p.Kind = constants.PatternText
	}
	if p.Weight <= 0 {
		p.Weight = 1.0
	}

	cp, err := compilePattern(p)
	if err != nil {
		return fmt.Errorf("add pattern: %w", err)
	}
	if err := d.store.AppendIdentifierPattern(ctx, customerID, p); err != nil {
		return fmt.Errorf("persist pattern: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.customers {
		if c.id == customerID {
			c.patterns = append(c.patterns, cp)
			d.logger.Info("customer pattern learned",
				"customer_id", customerID, "kind", p.Kind, "pattern", p.Pattern)
			return nil
		}
	}
	// customer not cached (inactive or added since Initialize); the persisted
	// pattern will be picked up on the next reload
	d.logger.Warn("pattern persisted for uncached customer", "customer_id", customerID)
	return nil
}

// LearnFromCorrection harvests candidate patterns from a misclassified
// document and registers them against the corrected customer: company-name
// shaped header lines, plus Account/ID/Reference codes.
func (d *Detector) LearnFromCorrection(ctx context.Context, text string, customerID uuid.UUID) ([]entity.DetectionPattern, error) {
	var learned []entity.DetectionPattern

	header, _ := headerFooter(text)
	for _, line := range strings.Split(header, "\n") {
		if len(learned) >= maxLearnedPatterns {
			break
		}
		line = strings.TrimSpace(line)
		if !reCompanyLine.MatchString(line) {
			continue
		}
		learned = append(learned, entity.DetectionPattern{
			Kind:    constants.PatternText,
			Pattern: line,
			Weight:  1.5,
		})
	}

	for _, m := range reAccountRef.FindAllStringSubmatch(text, -1) {
		if len(learned) >= maxLearnedPatterns {
			break
		}
		learned = append(learned, entity.DetectionPattern{
			Kind:    constants.PatternText,
			Pattern: m[1],
			Weight:  1.0,
		})
	}

	for _, p := range learned {
		if err := d.AddCustomerPattern(ctx, customerID, p); err != nil {
			return nil, err
		}
	}
	return learned, nil
}
