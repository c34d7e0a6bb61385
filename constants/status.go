package constants

// DocumentStatus is the canonical lifecycle state for a document.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusUploaded   DocumentStatus = "UPLOADED"   // received, not yet processed
	DocStatusProcessing DocumentStatus = "PROCESSING" // pipeline running
	DocStatusCompleted  DocumentStatus = "COMPLETED"  // artifact available (possibly degraded)
	DocStatusFailed     DocumentStatus = "FAILED"     // terminal failure, prior artifact kept
)

// JobStatus is the canonical status for rows in processing_job.
type JobStatus string

const (
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
)

// DocumentStatuses holds the allowed document states for schema validation.
var DocumentStatuses = []string{
	string(DocStatusUploaded),
	string(DocStatusProcessing),
	string(DocStatusCompleted),
	string(DocStatusFailed),
}

// JobStatuses holds the allowed job states for schema validation.
var JobStatuses = []string{
	string(JobStatusRunning),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}
