package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

type fakeTemplateStore struct {
	templates []*entity.Template
	listErr   error
}

func (s *fakeTemplateStore) ListActive(_ context.Context) ([]*entity.Template, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.templates, nil
}

func (s *fakeTemplateStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Template, error) {
	for _, tpl := range s.templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("template %s not found", id)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func keywordRule(field, keyword string, required bool) entity.ExtractionRule {
	rule := entity.ExtractionRule{
		FieldName: field,
		Type:      constants.RuleKeyword,
		Config:    entity.RuleConfig{Keywords: []string{keyword}},
	}
	if required {
		rule.Validation = &entity.ValidationSpec{Required: true}
	}
	return rule
}

func newTestEngine(t *testing.T, templates ...*entity.Template) *Engine {
	t.Helper()
	e := NewEngine(&fakeTemplateStore{templates: templates}, testLogger())
	require.NoError(t, e.Initialize(context.Background()))
	return e
}

func TestInitializeListError(t *testing.T) {
	e := NewEngine(&fakeTemplateStore{listErr: errors.New("boom")}, testLogger())
	assert.Error(t, e.Initialize(context.Background()))
}

func TestInitializeRejectsConflictingMappings(t *testing.T) {
	customerID := uuid.New()
	bad := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "bad",
		Rules: []entity.ExtractionRule{keywordRule("total", "Total:", false)},
		HardcodedMappings: []entity.HardcodedMapping{
			{FieldName: "total", SourcePattern: "x", TargetValue: "A"},
			{FieldName: "total", SourcePattern: "x", TargetValue: "B"},
		},
	}
	good := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "good",
		Rules: []entity.ExtractionRule{keywordRule("total", "Total:", false)},
	}

	e := newTestEngine(t, bad, good)
	selected := e.SelectTemplate(customerID, "anything")
	require.NotNil(t, selected)
	assert.Equal(t, good.ID, selected.ID)
}

func TestSelectTemplateNone(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.SelectTemplate(uuid.New(), "some text"))
}

func TestSelectTemplateSingle(t *testing.T) {
	customerID := uuid.New()
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "only",
		Rules: []entity.ExtractionRule{keywordRule("po", "Purchase Order", false)},
	}
	e := newTestEngine(t, tpl)

	// a lone template is used even when nothing in it matches the text
	selected := e.SelectTemplate(customerID, "completely unrelated text")
	require.NotNil(t, selected)
	assert.Equal(t, tpl.ID, selected.ID)
}

func TestSelectTemplateScoring(t *testing.T) {
	customerID := uuid.New()
	po := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "purchase order",
		Rules: []entity.ExtractionRule{keywordRule("po_number", "PO Number", false)},
	}
	invoice := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "invoice standard",
		Rules: []entity.ExtractionRule{
			keywordRule("total", "Total:", false),
			{FieldName: "number", Type: constants.RuleRegex, Config: entity.RuleConfig{Pattern: `INV-\d+`}},
		},
	}
	e := newTestEngine(t, po, invoice)

	text := "Invoice #INV-1001\nTotal: $250.00"
	selected := e.SelectTemplate(customerID, text)
	require.NotNil(t, selected)
	assert.Equal(t, invoice.ID, selected.ID)

	// deterministic across calls
	for i := 0; i < 5; i++ {
		assert.Equal(t, invoice.ID, e.SelectTemplate(customerID, text).ID)
	}
}

func TestSelectTemplateFallbackToFirst(t *testing.T) {
	customerID := uuid.New()
	first := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "first",
		Rules: []entity.ExtractionRule{keywordRule("a", "nothing here", false)},
	}
	second := &entity.Template{
		ID: uuid.New(), CustomerID: customerID, Name: "second",
		Rules: []entity.ExtractionRule{keywordRule("b", "also nothing", false)},
	}
	e := newTestEngine(t, first, second)

	selected := e.SelectTemplate(customerID, "text matching neither template")
	require.NotNil(t, selected)
	assert.Equal(t, first.ID, selected.ID)
}

func TestProcessInvoice(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "invoice",
		Rules: []entity.ExtractionRule{
			keywordRule("invoice_number", "Invoice #", true),
			{
				FieldName:  "invoice_date",
				Type:       constants.RuleKeyword,
				Config:     entity.RuleConfig{Keywords: []string{"Date:"}},
				Validation: &entity.ValidationSpec{DataType: constants.TypeDate},
			},
			{
				FieldName:  "total_amount",
				Type:       constants.RuleKeyword,
				Config:     entity.RuleConfig{Keywords: []string{"Total:"}},
				Validation: &entity.ValidationSpec{DataType: constants.TypeCurrency, Required: true},
			},
		},
	}
	e := newTestEngine(t, tpl)

	doc := docFromText("Invoice #INV-1001\nDate: 2024-01-05\nTotal: $250.00")
	res := e.Process(tpl, doc)

	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Equal(t, map[string]string{
		"invoice_number": "INV-1001",
		"invoice_date":   "2024-01-05",
		"total_amount":   "$250.00",
	}, res.ExtractedData)
	assert.Equal(t, []string{"invoice_number", "invoice_date", "total_amount"}, res.FieldOrder)
}

func TestProcessRequiredFieldMissing(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "strict",
		Rules: []entity.ExtractionRule{
			keywordRule("invoice_number", "Invoice #", true),
			keywordRule("po_number", "PO Number", true),
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Invoice #INV-7\nno purchase order line"))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "po_number")
	assert.Equal(t, "INV-7", res.ExtractedData["invoice_number"])
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestProcessOptionalFieldMissing(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "lenient",
		Rules: []entity.ExtractionRule{
			keywordRule("invoice_number", "Invoice #", false),
			keywordRule("notes", "Notes:", false),
			keywordRule("total", "Total:", false),
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Invoice #INV-9\nTotal: $10.00"))

	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.InDelta(t, 2.0/3.0, res.Confidence, 1e-9)
	assert.NotContains(t, res.ExtractedData, "notes")
}

func TestProcessConfidenceBoundary(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "half",
		Rules: []entity.ExtractionRule{
			keywordRule("a", "Alpha:", false),
			keywordRule("b", "Beta:", false),
		},
	}
	e := newTestEngine(t, tpl)

	// exactly half the fields extracted: confidence 0.5 is not enough
	res := e.Process(tpl, docFromText("Alpha: one"))
	assert.False(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestProcessMappingBeforeValidation(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "mapped",
		Rules: []entity.ExtractionRule{
			{
				FieldName:  "charge_type",
				Type:       constants.RuleKeyword,
				Config:     entity.RuleConfig{Keywords: []string{"Charge:"}},
				Validation: &entity.ValidationSpec{Pattern: `^[A-Z_]+$`},
			},
		},
		HardcodedMappings: []entity.HardcodedMapping{
			{FieldName: "charge_type", SourcePattern: "frei*", TargetValue: "SHIPPING_COST"},
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Charge: freight charge"))

	// validation saw the remapped value, so the pattern warning never fires
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "SHIPPING_COST", res.ExtractedData["charge_type"])
	assert.True(t, res.Success)
}

func TestProcessCalculationErrorIsHard(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "calc",
		Rules: []entity.ExtractionRule{
			keywordRule("subtotal", "Subtotal:", false),
			{
				FieldName: "grand_total",
				Type:      constants.RuleCalculation,
				Config:    entity.RuleConfig{Operation: "sum", SourceFields: []string{"subtotal", "tax"}},
			},
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Subtotal: $80.00"))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "grand_total")
}

func TestProcessCalculationChain(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "calc",
		Rules: []entity.ExtractionRule{
			keywordRule("subtotal", "Subtotal:", false),
			keywordRule("tax", "Tax:", false),
			{
				FieldName: "grand_total",
				Type:      constants.RuleCalculation,
				Config:    entity.RuleConfig{Formula: "{subtotal} + {tax}"},
			},
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Subtotal: $80.00\nTax: $6.40"))

	assert.True(t, res.Success)
	assert.Equal(t, "86.4", res.ExtractedData["grand_total"])
}

func TestProcessInvalidRuleIsWarning(t *testing.T) {
	tpl := &entity.Template{
		ID: uuid.New(), CustomerID: uuid.New(), Name: "broken-rule",
		Rules: []entity.ExtractionRule{
			{FieldName: "x", Type: constants.RuleRegex, Config: entity.RuleConfig{Pattern: "(["}},
			keywordRule("total", "Total:", false),
		},
	}
	e := newTestEngine(t, tpl)

	res := e.Process(tpl, docFromText("Total: $5.00"))

	// an optional rule that cannot even run is a warning, not a failure
	assert.Len(t, res.Warnings, 1)
	assert.Empty(t, res.Errors)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
	assert.False(t, res.Success)
}

func TestTemplateByID(t *testing.T) {
	tpl := &entity.Template{ID: uuid.New(), CustomerID: uuid.New(), Name: "direct"}
	e := NewEngine(&fakeTemplateStore{templates: []*entity.Template{tpl}}, testLogger())

	got, err := e.TemplateByID(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.ID)

	_, err = e.TemplateByID(context.Background(), uuid.New())
	assert.Error(t, err)
}
