package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adeolu-martins/docextract/constants"
)

// DirectConfidence is assigned when direct text extraction passes the
// meaningfulness gate; OCR reports its own engine confidence.
const DirectConfidence = 0.95

// minDirectTextLen is the minimum direct-extraction length before the
// result is even considered.
const minDirectTextLen = 100

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Pdfinfo   string // binary name or absolute path; if empty -> "pdfinfo"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

// Metadata describes the source document.
type Metadata struct {
	PageCount int    `json:"page_count"`
	Author    string `json:"author,omitempty"`
	Creator   string `json:"creator,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Page is one logical page of extracted text. The OCR path yields a single
// logical page.
type Page struct {
	Number     int     `json:"number"`
	Text       string  `json:"text"`
	Tables     []Table `json:"tables,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Document is the result of one extraction attempt. Immutable after creation.
type Document struct {
	Text       string
	Pages      []Page
	Metadata   Metadata
	Confidence float64
	Method     string // "pdf-text" | "pdf-ocr" | "plain-text"
	Duration   time.Duration
	Warnings   []string
}

// NoTextError means neither the direct nor the OCR path produced usable text.
// It is the only fatal extraction outcome.
type NoTextError struct {
	Filename string
	Reasons  []string
}

func (e *NoTextError) Error() string {
	return fmt.Sprintf("no text extracted from %q: %s", e.Filename, strings.Join(e.Reasons, "; "))
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract turns raw document bytes into text plus page/table structure,
// trying direct extraction first and falling back to OCR when the direct
// result is too thin to trust.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (Document, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(filename))
	e.logger.Debug("starting text extraction", "filename", filename, "ext", ext, "bytes", len(data))

	switch constants.MapExtToFormat(ext) {
	case constants.TXT:
		doc := e.buildDocument(string(data), DirectConfidence, "plain-text", nil)
		doc.Duration = time.Since(start)
		return doc, nil
	case constants.PDF:
		doc, err := e.extractPDF(ctx, data, filename)
		doc.Duration = time.Since(start)
		return doc, err
	default:
		e.logger.Error("unsupported document extension", "extension", ext)
		return Document{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte, filename string) (Document, error) {
	path, cleanup, err := e.spool(data)
	if err != nil {
		return Document{}, err
	}
	defer cleanup()

	var reasons []string

	direct, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("direct: %v", err))
	}
	if err == nil && acceptDirect(direct) {
		doc := e.buildDocument(direct, DirectConfidence, "pdf-text", warns)
		e.enrichMetadata(ctx, path, &doc)
		return doc, nil
	}
	if err == nil {
		reasons = append(reasons, "direct extraction below meaningfulness threshold")
		e.logger.Debug("direct extraction rejected, falling back to ocr",
			"filename", filename, "text_len", len(direct))
	}

	ocrText, conf, ocrWarns, err := e.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("ocr: %v", err))
	}
	if err == nil && strings.TrimSpace(ocrText) != "" {
		doc := e.buildDocument(ocrText, conf, "pdf-ocr", warns)
		e.enrichMetadata(ctx, path, &doc)
		return doc, nil
	}
	if err == nil {
		reasons = append(reasons, "ocr produced empty text")
	}

	e.logger.Error("extraction failed on both paths", "filename", filename, "reasons", reasons)
	return Document{Warnings: warns}, &NoTextError{Filename: filename, Reasons: reasons}
}

// spool writes the raw bytes to a temp file for the poppler/tesseract tools.
func (e *Extractor) spool(data []byte) (string, func(), error) {
	dir, err := os.MkdirTemp("", "dx-extract-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", err)
		}
	}
	path := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// buildDocument splits text into pages on form feeds (direct path keeps the
// pdftotext page markers; OCR joins everything as one logical page when no
// marker survives) and runs table detection per page.
func (e *Extractor) buildDocument(text string, confidence float64, method string, warnings []string) Document {
	rawPages := strings.Split(text, "\f")
	pages := make([]Page, 0, len(rawPages))
	for i, pt := range rawPages {
		pt = strings.TrimRight(pt, "\n")
		if strings.TrimSpace(pt) == "" && len(rawPages) > 1 {
			continue
		}
		pages = append(pages, Page{
			Number:     i + 1,
			Text:       pt,
			Tables:     DetectTables(pt),
			Confidence: confidence,
		})
	}
	return Document{
		Text:       text,
		Pages:      pages,
		Metadata:   Metadata{PageCount: len(pages)},
		Confidence: confidence,
		Method:     method,
		Warnings:   warnings,
	}
}

// acceptDirect gates the direct-extraction result: enough text, and mostly
// alphabetic tokens (garbled embedded fonts produce symbol soup that trips
// this check).
func acceptDirect(text string) bool {
	if len(text) <= minDirectTextLen {
		return false
	}
	return meaningfulRatio(text) > 0.5
}

// meaningfulRatio returns the share of alphabetic tokens among all tokens
// longer than two characters.
func meaningfulRatio(text string) float64 {
	tokens := strings.Fields(text)
	var total, alpha int
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		total++
		if isAlphabetic(tok) {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alpha) / float64(total)
}

func isAlphabetic(tok string) bool {
	for _, r := range tok {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
