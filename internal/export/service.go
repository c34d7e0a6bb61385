package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/adeolu-martins/docextract/internal/entity"
)

// DocumentLister is the slice of the data layer the export service needs.
type DocumentLister interface {
	ListCompleted(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]*entity.Document, error)
}

// Service produces XLSX bytes from the extracted records of completed
// documents.
type Service struct {
	documents DocumentLister
	logger    *slog.Logger
}

func NewService(documents DocumentLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, logger: logger}
}

// ExportRecordsXLSX returns an XLSX workbook (as bytes) of every extracted
// field for the customer's completed documents in the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all completed documents for the customer.
func (s *Service) ExportRecordsXLSX(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	docs, err := s.documents.ListCompleted(ctx, customerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Records"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document",
		"Uploaded",
		"Field",
		"Value",
		"Type",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, doc := range docs {
		if doc.ArtifactPath == nil || *doc.ArtifactPath == "" {
			continue
		}
		records, err := readArtifact(*doc.ArtifactPath)
		if err != nil {
			s.logger.Warn("skipping unreadable artifact",
				"document_id", doc.ID, "artifact", *doc.ArtifactPath, "error", err)
			continue
		}

		confidence := ""
		if doc.Confidence != nil {
			confidence = fmt.Sprintf("%.2f", *doc.Confidence)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		for _, rec := range records {
			write(1, doc.Filename)
			write(2, doc.UploadedAt.Format("2006-01-02"))
			write(3, rec[0])
			write(4, rec[1])
			write(5, rec[2])
			write(6, confidence)
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "C", "D", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export generated",
		"customer_id", customerID, "documents", len(docs), "rows", row-2,
		"duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// readArtifact loads the three-column CSV, skipping the header row.
func readArtifact(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	out := make([][]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if len(r) >= 3 {
			out = append(out, r[:3])
		}
	}
	return out, nil
}
