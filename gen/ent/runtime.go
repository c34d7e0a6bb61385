// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adeolu-martins/docextract/db/ent/schema"
	"github.com/adeolu-martins/docextract/gen/ent/customer"
	"github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/gen/ent/processingjob"
	"github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
	"github.com/adeolu-martins/docextract/gen/ent/template"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescIsActive is the schema descriptor for is_active field.
	customerDescIsActive := customerFields[3].Descriptor()
	// customer.DefaultIsActive holds the default value on creation for the is_active field.
	customer.DefaultIsActive = customerDescIsActive.Default.(bool)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[4].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[5].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[6].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[11].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[12].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescFormat is the schema descriptor for format field.
	processingjobDescFormat := processingjobFields[4].Descriptor()
	// processingjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	processingjob.FormatValidator = func() func(string) error {
		validators := processingjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescStartedAt is the schema descriptor for started_at field.
	processingjobDescStartedAt := processingjobFields[5].Descriptor()
	// processingjob.DefaultStartedAt holds the default value on creation for the started_at field.
	processingjob.DefaultStartedAt = processingjobDescStartedAt.Default.(func() time.Time)
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[7].Descriptor()
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = processingjobDescStatus.Validators[0].(func(string) error)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	reprocessinghistoryFields := schema.ReprocessingHistory{}.Fields()
	_ = reprocessinghistoryFields
	// reprocessinghistoryDescVersion is the schema descriptor for version field.
	reprocessinghistoryDescVersion := reprocessinghistoryFields[2].Descriptor()
	// reprocessinghistory.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	reprocessinghistory.VersionValidator = reprocessinghistoryDescVersion.Validators[0].(func(int) error)
	// reprocessinghistoryDescChangesMade is the schema descriptor for changes_made field.
	reprocessinghistoryDescChangesMade := reprocessinghistoryFields[3].Descriptor()
	// reprocessinghistory.ChangesMadeValidator is a validator for the "changes_made" field. It is called by the builders before save.
	reprocessinghistory.ChangesMadeValidator = reprocessinghistoryDescChangesMade.Validators[0].(func(string) error)
	// reprocessinghistoryDescTriggeredBy is the schema descriptor for triggered_by field.
	reprocessinghistoryDescTriggeredBy := reprocessinghistoryFields[4].Descriptor()
	// reprocessinghistory.TriggeredByValidator is a validator for the "triggered_by" field. It is called by the builders before save.
	reprocessinghistory.TriggeredByValidator = reprocessinghistoryDescTriggeredBy.Validators[0].(func(string) error)
	// reprocessinghistoryDescCreatedAt is the schema descriptor for created_at field.
	reprocessinghistoryDescCreatedAt := reprocessinghistoryFields[5].Descriptor()
	// reprocessinghistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	reprocessinghistory.DefaultCreatedAt = reprocessinghistoryDescCreatedAt.Default.(func() time.Time)
	// reprocessinghistoryDescID is the schema descriptor for id field.
	reprocessinghistoryDescID := reprocessinghistoryFields[0].Descriptor()
	// reprocessinghistory.DefaultID holds the default value on creation for the id field.
	reprocessinghistory.DefaultID = reprocessinghistoryDescID.Default.(func() uuid.UUID)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescName is the schema descriptor for name field.
	templateDescName := templateFields[2].Descriptor()
	// template.NameValidator is a validator for the "name" field. It is called by the builders before save.
	template.NameValidator = templateDescName.Validators[0].(func(string) error)
	// templateDescVersion is the schema descriptor for version field.
	templateDescVersion := templateFields[3].Descriptor()
	// template.DefaultVersion holds the default value on creation for the version field.
	template.DefaultVersion = templateDescVersion.Default.(int)
	// template.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	template.VersionValidator = templateDescVersion.Validators[0].(func(int) error)
	// templateDescIsActive is the schema descriptor for is_active field.
	templateDescIsActive := templateFields[6].Descriptor()
	// template.DefaultIsActive holds the default value on creation for the is_active field.
	template.DefaultIsActive = templateDescIsActive.Default.(bool)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[7].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	// templateDescUpdatedAt is the schema descriptor for updated_at field.
	templateDescUpdatedAt := templateFields[8].Descriptor()
	// template.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	template.DefaultUpdatedAt = templateDescUpdatedAt.Default.(func() time.Time)
	// template.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	template.UpdateDefaultUpdatedAt = templateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// templateDescID is the schema descriptor for id field.
	templateDescID := templateFields[0].Descriptor()
	// template.DefaultID holds the default value on creation for the id field.
	template.DefaultID = templateDescID.Default.(func() uuid.UUID)
}
