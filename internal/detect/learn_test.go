package detect

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

func TestAddCustomerPatternIsServedAfterWrite(t *testing.T) {
	id := uuid.New()
	d, store := newTestDetector(t, &entity.Customer{ID: id, Name: "Vandelay", IsActive: true})

	before := d.DetectCustomer("shipment code XK-7712 enclosed", "")
	assert.Nil(t, before.CustomerID)

	err := d.AddCustomerPattern(context.Background(), id, entity.DetectionPattern{Pattern: "XK-7712"})
	require.NoError(t, err)
	require.Len(t, store.appended, 1)

	after := d.DetectCustomer("shipment code XK-7712 enclosed", "")
	require.NotNil(t, after.CustomerID)
	assert.Equal(t, id, *after.CustomerID)
}

func TestAddCustomerPatternPersistFailureLeavesCacheUntouched(t *testing.T) {
	id := uuid.New()
	d, store := newTestDetector(t, &entity.Customer{ID: id, Name: "Vandelay", IsActive: true})
	store.failWrite = true

	err := d.AddCustomerPattern(context.Background(), id, entity.DetectionPattern{Pattern: "XK-7712"})
	require.Error(t, err)

	// the pattern that failed to persist must never be served
	res := d.DetectCustomer("shipment code XK-7712 enclosed", "")
	assert.Nil(t, res.CustomerID)
}

func TestAddCustomerPatternRejectsInvalid(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{ID: id, Name: "Vandelay", IsActive: true})

	assert.Error(t, d.AddCustomerPattern(context.Background(), id, entity.DetectionPattern{}))
	assert.Error(t, d.AddCustomerPattern(context.Background(), id, entity.DetectionPattern{
		Kind:    constants.PatternRegex,
		Pattern: "([unclosed",
	}))
}

func TestLearnFromCorrection(t *testing.T) {
	id := uuid.New()
	d, store := newTestDetector(t, &entity.Customer{ID: id, Name: "Vandelay", IsActive: true})

	text := `Wayne Enterprises Inc
Invoice for consulting
Account Number: WAY-88123
Total: $100.00`

	learned, err := d.LearnFromCorrection(context.Background(), text, id)
	require.NoError(t, err)
	require.Len(t, learned, 2)

	assert.Equal(t, "Wayne Enterprises Inc", learned[0].Pattern)
	assert.Equal(t, 1.5, learned[0].Weight)
	assert.Equal(t, "WAY-88123", learned[1].Pattern)
	assert.Len(t, store.appended, 2)

	// the learned header line now drives exact detection
	res := d.DetectCustomer("Wayne Enterprises Inc\nsomething else", "")
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, id, *res.CustomerID)
}

func TestLearnFromCorrectionCapsAtThree(t *testing.T) {
	id := uuid.New()
	d, _ := newTestDetector(t, &entity.Customer{ID: id, Name: "Vandelay", IsActive: true})

	text := `Alpha Holdings
Beta Trading Company
Gamma Logistics Group
Delta Freight Lines
Account: AAA-111
Reference: BBB-222`

	learned, err := d.LearnFromCorrection(context.Background(), text, id)
	require.NoError(t, err)
	assert.Len(t, learned, maxLearnedPatterns)
}
