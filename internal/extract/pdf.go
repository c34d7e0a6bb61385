package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", []string{string(errb)}, err
	}
	return string(out), nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, confidence float64, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "dx-ppm-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	var confSum float64
	var confN int
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		warns = append(warns, w...)

		if c, _, err := e.tesseractTSVConfidence(ctx, img); err == nil && c > 0 {
			confSum += c
			confN++
		}
	}

	conf := 0.0
	if confN > 0 {
		conf = confSum / float64(confN)
	} else {
		conf = heuristicConfidence(b.String())
	}
	return b.String(), conf, warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float64, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV output
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// TSV columns: level page block par line word left top width height conf text.
	// conf is column 10; -1 marks non-word rows.
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		} // defensive
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return mean / 100.0, nil, nil
}

// enrichMetadata fills document metadata from pdfinfo. Best effort: a missing
// binary or malformed output only adds a warning.
func (e *Extractor) enrichMetadata(ctx context.Context, path string, doc *Document) {
	out, _, err := e.runner.Run(ctx, e.cfg.Pdfinfo, path)
	if err != nil {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("pdfinfo: %v", err))
		return
	}
	for _, ln := range strings.Split(string(out), "\n") {
		key, val, ok := strings.Cut(ln, ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		switch strings.TrimSpace(key) {
		case "Pages":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				doc.Metadata.PageCount = n
			}
		case "Author":
			doc.Metadata.Author = val
		case "Creator":
			doc.Metadata.Creator = val
		case "CreationDate":
			doc.Metadata.CreatedAt = val
		case "ModDate":
			doc.Metadata.UpdatedAt = val
		}
	}
}
