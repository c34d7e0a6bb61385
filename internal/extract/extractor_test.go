package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

func (f runnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f(ctx, name, args...)
}

const goodText = `ACME Industrial Supplies Ltd
Invoice #INV-1001
Date: 2024-01-05
Item            Qty     Price
Widget A        2       10.00
Widget B        1       5.00
Total: $250.00
Thank you for your continued business with our company today`

func stubbedExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractDirectPath(t *testing.T) {
	e := stubbedExtractor(t, runnerFunc(func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		switch name {
		case "pdftotext":
			return []byte(goodText + "\fpage two of the invoice document here"), nil, nil
		case "pdfinfo":
			return []byte("Pages:          2\nAuthor:         ACME Billing\nCreator:        ReportLab"), nil, nil
		default:
			t.Fatalf("unexpected command %q", name)
			return nil, nil, nil
		}
	}))

	doc, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", doc.Method)
	assert.InDelta(t, DirectConfidence, doc.Confidence, 1e-9)
	assert.Len(t, doc.Pages, 2)
	assert.Equal(t, 2, doc.Metadata.PageCount)
	assert.Equal(t, "ACME Billing", doc.Metadata.Author)
	assert.GreaterOrEqual(t, len(doc.Pages[0].Tables), 1)
}

func TestExtractFallsBackToOCR(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t80\tInvoice\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t60\tTotal\n"

	e := stubbedExtractor(t, runnerFunc(func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		switch name {
		case "pdftotext":
			// too short to pass the direct gate
			return []byte("x1 z9"), nil, nil
		case "pdftoppm":
			// render one fake page next to the requested prefix
			prefix := args[len(args)-1]
			require.NoError(t, os.WriteFile(prefix+"-1.png", []byte("png"), 0o600))
			return nil, nil, nil
		case "tesseract":
			if args[len(args)-1] == "tsv" {
				return []byte(tsv), nil, nil
			}
			return []byte("Invoice Total: $10.00"), nil, nil
		case "pdfinfo":
			return []byte("Pages: 1"), nil, nil
		default:
			t.Fatalf("unexpected command %q", name)
			return nil, nil, nil
		}
	}))

	doc, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", doc.Method)
	// mean of 80 and 60, normalized
	assert.InDelta(t, 0.70, doc.Confidence, 1e-9)
	assert.Len(t, doc.Pages, 1)
}

func TestOCRConfidenceReadsConfColumn(t *testing.T) {
	// amounts in the text column must never be mistaken for confidences
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t55\t250.00\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t45\t99.50\n" +
		"4\t1\t1\t1\t1\t0\t0\t0\t10\t10\t-1\t\n"

	e := stubbedExtractor(t, runnerFunc(func(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
		require.Equal(t, "tesseract", name)
		return []byte(tsv), nil, nil
	}))

	conf, _, err := e.tesseractTSVConfidence(context.Background(), "page-1.png")
	require.NoError(t, err)
	assert.InDelta(t, 0.50, conf, 1e-9)
	assert.LessOrEqual(t, conf, 1.0)
}

func TestExtractFailsWhenBothPathsEmpty(t *testing.T) {
	e := stubbedExtractor(t, runnerFunc(func(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
		switch name {
		case "pdftotext":
			return nil, nil, nil
		case "pdftoppm":
			return nil, []byte("render error"), fmt.Errorf("exit status 1")
		default:
			return nil, nil, nil
		}
	}))

	_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "broken.pdf")
	require.Error(t, err)
	var noText *NoTextError
	require.ErrorAs(t, err, &noText)
	assert.Equal(t, "broken.pdf", noText.Filename)
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	doc, err := e.Extract(context.Background(), []byte("hello world\nTotal: 5.00"), filepath.Join("in", "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "plain-text", doc.Method)
	assert.InDelta(t, DirectConfidence, doc.Confidence, 1e-9)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), []byte("x"), "image.bmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestAcceptDirect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"short but clean", "hello world this is fine", false},
		{"long and meaningful", goodText + " " + strings.Repeat("words and more words ", 5), true},
		{"long but garbled", strings.Repeat("x#1@ z$%9 q!!2 ", 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptDirect(tt.text))
		})
	}
}

func TestMeaningfulRatioIgnoresShortTokens(t *testing.T) {
	// short tokens (<=2 chars) are excluded from both numerator and denominator
	assert.Equal(t, 1.0, meaningfulRatio("a b c words only here"))
	assert.Equal(t, 0.0, meaningfulRatio("a b c 123 456"))
}
