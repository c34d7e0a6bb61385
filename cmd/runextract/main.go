package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/adeolu-martins/docextract/internal/common"
	"github.com/adeolu-martins/docextract/internal/extract"
)

// One-shot extraction: run the text/OCR stage against a local file and report
// what the pipeline would see, without touching the database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <path-to-pdf-or-txt>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading file failed", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:   cfg.Extract.Pdftotext,
		Pdftoppm:    cfg.Extract.Pdftoppm,
		Pdfinfo:     cfg.Extract.Pdfinfo,
		Tesseract:   cfg.Extract.Tesseract,
		TessdataDir: cfg.Extract.TessdataDir,
		DPI:         cfg.Extract.DPI,
		MaxPages:    cfg.Extract.MaxPages,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	doc, err := extractor.Extract(ctx, data, path)
	if err != nil {
		logger.Error("text extraction failed",
			"path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"method", doc.Method,
		"pages", len(doc.Pages),
		"bytes", len(doc.Text),
		"confidence", doc.Confidence,
		"warnings", len(doc.Warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
