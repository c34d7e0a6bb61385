package detect

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

type fakeCustomerStore struct {
	customers []*entity.Customer
	appended  []entity.DetectionPattern
	failWrite bool
}

func (s *fakeCustomerStore) ListActive(context.Context) ([]*entity.Customer, error) {
	return s.customers, nil
}

func (s *fakeCustomerStore) AppendIdentifierPattern(_ context.Context, customerID uuid.UUID, p entity.DetectionPattern) error {
	if s.failWrite {
		return fmt.Errorf("storage down")
	}
	for _, c := range s.customers {
		if c.ID == customerID {
			c.IdentifierPatterns = append(c.IdentifierPatterns, p)
			s.appended = append(s.appended, p)
			return nil
		}
	}
	return fmt.Errorf("customer %s not found", customerID)
}

func textPattern(pattern string, weight float64) entity.DetectionPattern {
	return entity.DetectionPattern{Kind: constants.PatternText, Pattern: pattern, Weight: weight}
}

func newTestDetector(t *testing.T, customers ...*entity.Customer) (*Detector, *fakeCustomerStore) {
	t.Helper()
	store := &fakeCustomerStore{customers: customers}
	d := NewDetector(store, nil)
	require.NoError(t, d.Initialize(context.Background()))
	return d, store
}

func TestExactMatchWeightedRatio(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   id,
		Name: "ACME Ltd",
		IdentifierPatterns: []entity.DetectionPattern{
			textPattern("ACME Industrial", 2.0),
			textPattern("PO Box 9912", 1.0),
		},
		IsActive: true,
	})

	res := d.DetectCustomer("Invoice from ACME Industrial for services rendered", "")
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, id, *res.CustomerID)
	assert.Equal(t, constants.MethodExactMatch, res.Method)
	assert.InDelta(t, 2.0/3.0, res.Confidence, 1e-9)
	assert.Equal(t, []string{"ACME Industrial"}, res.MatchedPatterns)
}

func TestExactMatchAtThresholdIsRejected(t *testing.T) {
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   uuid.New(),
		Name: "Evenweight",
		IdentifierPatterns: []entity.DetectionPattern{
			textPattern("alpha", 1.0),
			textPattern("omega", 1.0),
		},
		IsActive: true,
	})

	// exactly 0.5 must not produce a customer match
	res := d.DetectCustomer("document mentions alpha only", "")
	assert.Nil(t, res.CustomerID)
	assert.Zero(t, res.Confidence)
}

func TestExactMatchCaseSensitivity(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   id,
		Name: "Case Co",
		IdentifierPatterns: []entity.DetectionPattern{
			{Kind: constants.PatternText, Pattern: "ACME", Weight: 1.0, CaseSensitive: true},
		},
		IsActive: true,
	})

	assert.Nil(t, d.DetectCustomer("invoice from acme corp", "").CustomerID)
	assert.NotNil(t, d.DetectCustomer("invoice from ACME corp", "").CustomerID)
}

func TestPatternMatchHeaderFooterRegex(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   id,
		Name: "NT Holdings",
		IdentifierPatterns: []entity.DetectionPattern{
			{Kind: constants.PatternHeader, Pattern: "Northwind Traders", Weight: 1.0},
			{Kind: constants.PatternRegex, Pattern: `NW-\d{4}`, Weight: 1.0},
			{Kind: constants.PatternFooter, Pattern: "registered in delaware", Weight: 1.0},
		},
		IsActive: true,
	})

	text := "Northwind Traders\nStatement\nRef NW-2210\nline\nline\nline\nline\nRegistered in Delaware"
	res := d.DetectCustomer(text, "")
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, constants.MethodPatternMatch, res.Method)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)

	// header pattern must not match when the line sits outside the first five
	buried := "a\nb\nc\nd\ne\nNorthwind Traders\nx\ny\nz\nw\nv\nu"
	res = d.DetectCustomer(buried, "")
	assert.Nil(t, res.CustomerID)
}

func TestFuzzyMatchCapped(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:       id,
		Name:     "Globex Heavy Machinery",
		IsActive: true,
	})

	res := d.DetectCustomer("Quote prepared by globex heavy machinery division", "")
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, constants.MethodFuzzyMatch, res.Method)
	// all 3 tokens matched, capped at 0.8
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
}

func TestFuzzyMatchPartialBelowThreshold(t *testing.T) {
	d, _ := newTestDetector(t, &entity.Customer{
		ID:       uuid.New(),
		Name:     "Globex Heavy Machinery",
		IsActive: true,
	})

	// 1/3 * 0.8 = 0.267 <= 0.5
	res := d.DetectCustomer("globex appears alone here", "")
	assert.Nil(t, res.CustomerID)
}

func TestFilenameMatch(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   id,
		Name: "Initech Systems",
		IdentifierPatterns: []entity.DetectionPattern{
			textPattern("INV", 1.0),
		},
		IsActive: true,
	})

	// two name tokens (0.3 each) + one pattern (0.4) = 1.0, capped at 0.9
	res := d.DetectCustomer("unrelated body text", "initech-systems-INV-2024.pdf")
	require.NotNil(t, res.CustomerID)
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
}

func TestNoMatchReturnsZeroResult(t *testing.T) {
	d, _ := newTestDetector(t, &entity.Customer{
		ID:       uuid.New(),
		Name:     "Unrelated Corp",
		IsActive: true,
	})

	res := d.DetectCustomer("completely different content", "")
	assert.Nil(t, res.CustomerID)
	assert.Zero(t, res.Confidence)
	assert.Empty(t, res.MatchedPatterns)
}

func TestTieBreakKeepsEncounterOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	d, _ := newTestDetector(t,
		&entity.Customer{ID: first, Name: "Shared Tokens Alpha", IsActive: true},
		&entity.Customer{ID: second, Name: "Shared Tokens Alpha", IsActive: true},
	)

	res := d.DetectCustomer("shared tokens alpha appears verbatim", "")
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, first, *res.CustomerID)
}

func TestConfidenceAlwaysInRange(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{
		ID:   id,
		Name: "Rangecheck Co",
		IdentifierPatterns: []entity.DetectionPattern{
			textPattern("Rangecheck", 5.0),
			textPattern("Co", 3.0),
		},
		IsActive: true,
	})

	for _, text := range []string{"", "Rangecheck Co full match", "partial Rangecheck", "nothing"} {
		res := d.DetectCustomer(text, "rangecheck co invoice.pdf")
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
	}
}
