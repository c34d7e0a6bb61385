package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/adeolu-martins/docextract/internal/entity"
)

type fakeLister struct {
	docs []*entity.Document
	from *time.Time
	to   *time.Time
}

func (f *fakeLister) ListCompleted(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Document, error) {
	f.from, f.to = from, to
	return f.docs, nil
}

func writeTestArtifact(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.csv")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0o600))
	return path
}

func TestExportRecordsXLSX(t *testing.T) {
	artifact := writeTestArtifact(t,
		"field_name,field_value,data_type\n"+
			"invoice_number,INV-1001,string\n"+
			"total_amount,$250.00,currency\n")
	conf := 0.85
	uploaded := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	lister := &fakeLister{docs: []*entity.Document{
		{
			ID:           uuid.New(),
			Filename:     "invoice.pdf",
			ArtifactPath: &artifact,
			Confidence:   &conf,
			UploadedAt:   uploaded,
		},
		{ID: uuid.New(), Filename: "pending.pdf"}, // no artifact yet, skipped
	}}
	svc := NewService(lister, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.ExportRecordsXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Document", "Uploaded", "Field", "Value", "Type", "Confidence"}, rows[0])
	assert.Equal(t, []string{"invoice.pdf", "2024-04-01", "invoice_number", "INV-1001", "string", "0.85"}, rows[1])
	assert.Equal(t, []string{"invoice.pdf", "2024-04-01", "total_amount", "$250.00", "currency", "0.85"}, rows[2])
}

func TestExportRecordsXLSXDateWindow(t *testing.T) {
	lister := &fakeLister{}
	svc := NewService(lister, slog.New(slog.NewTextHandler(io.Discard, nil)))

	from := time.Date(2024, 3, 15, 13, 45, 0, 0, time.Local)
	_, err := svc.ExportRecordsXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	// from is normalized to date-only UTC and to defaults to today
	require.NotNil(t, lister.from)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *lister.from)
	require.NotNil(t, lister.to)
	assert.Equal(t, 0, lister.to.Hour())
}
