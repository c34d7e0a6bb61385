package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/adeolu-martins/docextract/gen/proto/docextract/v1"
	"github.com/adeolu-martins/docextract/internal/common"
	"github.com/adeolu-martins/docextract/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportRecords renders the extracted records of a customer's completed
// documents as an XLSX workbook. Dates are YYYY-MM-DD and both optional;
// only from_date set means from..today.
func (s *ExportServer) ExportRecords(ctx context.Context, req *v1.ExportRecordsRequest) (*v1.ExportRecordsResponse, error) {
	cid := strings.TrimSpace(req.GetCustomerId())
	if cid == "" {
		return nil, common.InvalidArgumentError("customer_id is required")
	}
	customerID, err := uuid.Parse(cid)
	if err != nil {
		s.logger.Error("invalid customer_id for export", "customer_id", cid, "error", err)
		return nil, common.InvalidArgumentError("customer_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportRecordsXLSX(ctx, customerID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export failed", "customer_id", cid, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportRecordsResponse{Xlsx: xlsx}, nil
}
