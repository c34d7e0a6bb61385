package repository

import (
	"context"
	"log/slog"
	"sort"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/gen/ent"
	entjob "github.com/adeolu-martins/docextract/gen/ent/processingjob"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// topErrorCount bounds the error breakdown in the stats aggregate.
const topErrorCount = 5

// JobRepository persists processing-job lifecycle records and computes the
// reporting aggregate.
type JobRepository interface {
	Create(ctx context.Context, job *entity.ProcessingJob) error
	Update(ctx context.Context, job *entity.ProcessingJob) error
	Stats(ctx context.Context) (*entity.ProcessingStats, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, job *entity.ProcessingJob) error {
	q := r.ent.ProcessingJob.Create().
		SetID(job.ID).
		SetDocumentID(job.DocumentID).
		SetFormat(job.Format).
		SetStartedAt(job.StartedAt).
		SetStatus(job.Status)
	if job.CustomerID != nil {
		q.SetCustomerID(*job.CustomerID)
	}
	if job.TemplateID != nil {
		q.SetTemplateID(*job.TemplateID)
	}
	_, err := q.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "document_id", job.DocumentID, "error", err)
		return err
	}
	r.logger.Info("job started", "job_id", job.ID, "document_id", job.DocumentID, "format", job.Format)
	return nil
}

func (r *jobRepo) Update(ctx context.Context, job *entity.ProcessingJob) error {
	q := r.ent.ProcessingJob.UpdateOneID(job.ID).
		SetStatus(job.Status)
	if job.FinishedAt != nil {
		q.SetFinishedAt(*job.FinishedAt)
	}
	if job.ErrorMessage != nil {
		q.SetErrorMessage(*job.ErrorMessage)
	}
	if job.Confidence != nil {
		q.SetConfidence(*job.Confidence)
	}
	if job.CustomerID != nil {
		q.SetCustomerID(*job.CustomerID)
	}
	if job.TemplateID != nil {
		q.SetTemplateID(*job.TemplateID)
	}
	if len(job.ExtractionLog) > 0 {
		q.SetExtractionLog(job.ExtractionLog)
	}
	_, err := q.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update job", "job_id", job.ID, "error", err)
	}
	return err
}

// Stats aggregates job outcomes: totals, success rate, mean confidence over
// completed jobs, and the most frequent failure messages.
func (r *jobRepo) Stats(ctx context.Context) (*entity.ProcessingStats, error) {
	total, err := r.ent.ProcessingJob.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := r.ent.ProcessingJob.Query().
		Where(entjob.Status(string(constants.JobStatusCompleted))).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	failed, err := r.ent.ProcessingJob.Query().
		Where(entjob.Status(string(constants.JobStatusFailed))).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	confs, err := r.ent.ProcessingJob.Query().
		Where(entjob.ConfidenceNotNil()).
		Select(entjob.FieldConfidence).
		Float64s(ctx)
	if err != nil {
		return nil, err
	}

	var grouped []struct {
		ErrorMessage string `json:"error_message"`
		Count        int    `json:"count"`
	}
	err = r.ent.ProcessingJob.Query().
		Where(
			entjob.Status(string(constants.JobStatusFailed)),
			entjob.ErrorMessageNotNil(),
		).
		GroupBy(entjob.FieldErrorMessage).
		Aggregate(ent.Count()).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(grouped, func(i, j int) bool { return grouped[i].Count > grouped[j].Count })
	if len(grouped) > topErrorCount {
		grouped = grouped[:topErrorCount]
	}

	stats := &entity.ProcessingStats{
		TotalJobs: total,
		Completed: completed,
		Failed:    failed,
	}
	if total > 0 {
		stats.SuccessRate = float64(completed) / float64(total)
	}
	if len(confs) > 0 {
		var sum float64
		for _, c := range confs {
			sum += c
		}
		stats.AvgConfidence = sum / float64(len(confs))
	}
	for _, g := range grouped {
		stats.TopErrors = append(stats.TopErrors, entity.ErrorCount{Message: g.ErrorMessage, Count: g.Count})
	}
	return stats, nil
}
