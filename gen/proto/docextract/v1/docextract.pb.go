// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docextract/v1/docextract.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Absolute or server-relative path to the source file.
	Path string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// When true the document is queued for processing after registration.
	Process       bool `protobuf:"varint,2,opt,name=process,proto3" json:"process,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{0}
}

func (x *IngestDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestDocumentRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

type IngestDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Queued         bool                   `protobuf:"varint,6,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDocumentResponse) Reset() {
	*x = IngestDocumentResponse{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentResponse) ProtoMessage() {}

func (x *IngestDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentResponse.ProtoReflect.Descriptor instead.
func (*IngestDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{1}
}

func (x *IngestDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestDocumentResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ProcessDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// When true the run is enqueued and the response carries no outcome.
	Async         bool `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ReprocessDocumentRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	DocumentId  string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	TriggeredBy string                 `protobuf:"bytes,2,opt,name=triggered_by,json=triggeredBy,proto3" json:"triggered_by,omitempty"`
	// Optional template override; forces the rule set and records an audit row.
	TemplateId    string `protobuf:"bytes,3,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Async         bool   `protobuf:"varint,4,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{3}
}

func (x *ReprocessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ReprocessDocumentRequest) GetTriggeredBy() string {
	if x != nil {
		return x.TriggeredBy
	}
	return ""
}

func (x *ReprocessDocumentRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *ReprocessDocumentRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Success       bool                   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	CustomerId    string                 `protobuf:"bytes,4,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,5,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Confidence    float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ArtifactPath  string                 `protobuf:"bytes,7,opt,name=artifact_path,json=artifactPath,proto3" json:"artifact_path,omitempty"`
	Errors        []string               `protobuf:"bytes,8,rep,name=errors,proto3" json:"errors,omitempty"`
	Warnings      []string               `protobuf:"bytes,9,rep,name=warnings,proto3" json:"warnings,omitempty"`
	DurationMs    int64                  `protobuf:"varint,10,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	Queued        bool                   `protobuf:"varint,11,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ProcessDocumentResponse) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ProcessDocumentResponse) GetArtifactPath() string {
	if x != nil {
		return x.ArtifactPath
	}
	return ""
}

func (x *ProcessDocumentResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *ProcessDocumentResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *ProcessDocumentResponse) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *ProcessDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetProcessingStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingStatsRequest) Reset() {
	*x = GetProcessingStatsRequest{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatsRequest) ProtoMessage() {}

func (x *GetProcessingStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatsRequest.ProtoReflect.Descriptor instead.
func (*GetProcessingStatsRequest) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{5}
}

type ErrorCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorCount) Reset() {
	*x = ErrorCount{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorCount) ProtoMessage() {}

func (x *ErrorCount) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorCount.ProtoReflect.Descriptor instead.
func (*ErrorCount) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{6}
}

func (x *ErrorCount) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ErrorCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetProcessingStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalJobs     int32                  `protobuf:"varint,1,opt,name=total_jobs,json=totalJobs,proto3" json:"total_jobs,omitempty"`
	Completed     int32                  `protobuf:"varint,2,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	SuccessRate   float64                `protobuf:"fixed64,4,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	AvgConfidence float64                `protobuf:"fixed64,5,opt,name=avg_confidence,json=avgConfidence,proto3" json:"avg_confidence,omitempty"`
	TopErrors     []*ErrorCount          `protobuf:"bytes,6,rep,name=top_errors,json=topErrors,proto3" json:"top_errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingStatsResponse) Reset() {
	*x = GetProcessingStatsResponse{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatsResponse) ProtoMessage() {}

func (x *GetProcessingStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatsResponse.ProtoReflect.Descriptor instead.
func (*GetProcessingStatsResponse) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{7}
}

func (x *GetProcessingStatsResponse) GetTotalJobs() int32 {
	if x != nil {
		return x.TotalJobs
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetAvgConfidence() float64 {
	if x != nil {
		return x.AvgConfidence
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetTopErrors() []*ErrorCount {
	if x != nil {
		return x.TopErrors
	}
	return nil
}

type ExportRecordsRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	CustomerId string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	// YYYY-MM-DD, both optional. Only from_date set means from..today.
	FromDate      string `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsRequest) Reset() {
	*x = ExportRecordsRequest{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsRequest) ProtoMessage() {}

func (x *ExportRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsRequest.ProtoReflect.Descriptor instead.
func (*ExportRecordsRequest) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{8}
}

func (x *ExportRecordsRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ExportRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsResponse) Reset() {
	*x = ExportRecordsResponse{}
	mi := &file_docextract_v1_docextract_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsResponse) ProtoMessage() {}

func (x *ExportRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docextract_v1_docextract_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsResponse.ProtoReflect.Descriptor instead.
func (*ExportRecordsResponse) Descriptor() ([]byte, []int) {
	return file_docextract_v1_docextract_proto_rawDescGZIP(), []int{9}
}

func (x *ExportRecordsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docextract_v1_docextract_proto protoreflect.FileDescriptor

const file_docextract_v1_docextract_proto_rawDesc = "" +
	"\n" +
	"\x1edocextract/v1/docextract.proto\x12\rdocextract.v1\"E\n" +
	"\x15IngestDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x18\n" +
	"\aprocess\x18\x02 \x01(\bR\aprocess\"\xdb\x01\n" +
	"\x16IngestDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x16\n" +
	"\x06queued\x18\x06 \x01(\bR\x06queued\"O\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\"\x95\x01\n" +
	"\x18ReprocessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\ftriggered_by\x18\x02 \x01(\tR\vtriggeredBy\x12\x1f\n" +
	"\vtemplate_id\x18\x03 \x01(\tR\n" +
	"templateId\x12\x14\n" +
	"\x05async\x18\x04 \x01(\bR\x05async\"\xdf\x02\n" +
	"\x17ProcessDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\bR\asuccess\x12\x1f\n" +
	"\vcustomer_id\x18\x04 \x01(\tR\n" +
	"customerId\x12\x1f\n" +
	"\vtemplate_id\x18\x05 \x01(\tR\n" +
	"templateId\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\rartifact_path\x18\a \x01(\tR\fartifactPath\x12\x16\n" +
	"\x06errors\x18\b \x03(\tR\x06errors\x12\x1a\n" +
	"\bwarnings\x18\t \x03(\tR\bwarnings\x12\x1f\n" +
	"\vduration_ms\x18\n" +
	" \x01(\x03R\n" +
	"durationMs\x12\x16\n" +
	"\x06queued\x18\v \x01(\bR\x06queued\"\x1b\n" +
	"\x19GetProcessingStatsRequest\"<\n" +
	"\n" +
	"ErrorCount\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\xf5\x01\n" +
	"\x1aGetProcessingStatsResponse\x12\x1d\n" +
	"\n" +
	"total_jobs\x18\x01 \x01(\x05R\ttotalJobs\x12\x1c\n" +
	"\tcompleted\x18\x02 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\x12!\n" +
	"\fsuccess_rate\x18\x04 \x01(\x01R\vsuccessRate\x12%\n" +
	"\x0eavg_confidence\x18\x05 \x01(\x01R\ravgConfidence\x128\n" +
	"\n" +
	"top_errors\x18\x06 \x03(\v2\x19.docextract.v1.ErrorCountR\ttopErrors\"m\n" +
	"\x14ExportRecordsRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportRecordsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa4\x03\n" +
	"\x10DocumentsService\x12]\n" +
	"\x0eIngestDocument\x12$.docextract.v1.IngestDocumentRequest\x1a%.docextract.v1.IngestDocumentResponse\x12`\n" +
	"\x0fProcessDocument\x12%.docextract.v1.ProcessDocumentRequest\x1a&.docextract.v1.ProcessDocumentResponse\x12d\n" +
	"\x11ReprocessDocument\x12'.docextract.v1.ReprocessDocumentRequest\x1a&.docextract.v1.ProcessDocumentResponse\x12i\n" +
	"\x12GetProcessingStats\x12(.docextract.v1.GetProcessingStatsRequest\x1a).docextract.v1.GetProcessingStatsResponse2k\n" +
	"\rExportService\x12Z\n" +
	"\rExportRecords\x12#.docextract.v1.ExportRecordsRequest\x1a$.docextract.v1.ExportRecordsResponseBAZ?github.com/adeolu-martins/docextract/gen/proto/docextract/v1;v1b\x06proto3"

var (
	file_docextract_v1_docextract_proto_rawDescOnce sync.Once
	file_docextract_v1_docextract_proto_rawDescData []byte
)

func file_docextract_v1_docextract_proto_rawDescGZIP() []byte {
	file_docextract_v1_docextract_proto_rawDescOnce.Do(func() {
		file_docextract_v1_docextract_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docextract_v1_docextract_proto_rawDesc), len(file_docextract_v1_docextract_proto_rawDesc)))
	})
	return file_docextract_v1_docextract_proto_rawDescData
}

var file_docextract_v1_docextract_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_docextract_v1_docextract_proto_goTypes = []any{
	(*IngestDocumentRequest)(nil),      // 0: docextract.v1.IngestDocumentRequest
	(*IngestDocumentResponse)(nil),     // 1: docextract.v1.IngestDocumentResponse
	(*ProcessDocumentRequest)(nil),     // 2: docextract.v1.ProcessDocumentRequest
	(*ReprocessDocumentRequest)(nil),   // 3: docextract.v1.ReprocessDocumentRequest
	(*ProcessDocumentResponse)(nil),    // 4: docextract.v1.ProcessDocumentResponse
	(*GetProcessingStatsRequest)(nil),  // 5: docextract.v1.GetProcessingStatsRequest
	(*ErrorCount)(nil),                 // 6: docextract.v1.ErrorCount
	(*GetProcessingStatsResponse)(nil), // 7: docextract.v1.GetProcessingStatsResponse
	(*ExportRecordsRequest)(nil),       // 8: docextract.v1.ExportRecordsRequest
	(*ExportRecordsResponse)(nil),      // 9: docextract.v1.ExportRecordsResponse
}
var file_docextract_v1_docextract_proto_depIdxs = []int32{
	6, // 0: docextract.v1.GetProcessingStatsResponse.top_errors:type_name -> docextract.v1.ErrorCount
	0, // 1: docextract.v1.DocumentsService.IngestDocument:input_type -> docextract.v1.IngestDocumentRequest
	2, // 2: docextract.v1.DocumentsService.ProcessDocument:input_type -> docextract.v1.ProcessDocumentRequest
	3, // 3: docextract.v1.DocumentsService.ReprocessDocument:input_type -> docextract.v1.ReprocessDocumentRequest
	5, // 4: docextract.v1.DocumentsService.GetProcessingStats:input_type -> docextract.v1.GetProcessingStatsRequest
	8, // 5: docextract.v1.ExportService.ExportRecords:input_type -> docextract.v1.ExportRecordsRequest
	1, // 6: docextract.v1.DocumentsService.IngestDocument:output_type -> docextract.v1.IngestDocumentResponse
	4, // 7: docextract.v1.DocumentsService.ProcessDocument:output_type -> docextract.v1.ProcessDocumentResponse
	4, // 8: docextract.v1.DocumentsService.ReprocessDocument:output_type -> docextract.v1.ProcessDocumentResponse
	7, // 9: docextract.v1.DocumentsService.GetProcessingStats:output_type -> docextract.v1.GetProcessingStatsResponse
	9, // 10: docextract.v1.ExportService.ExportRecords:output_type -> docextract.v1.ExportRecordsResponse
	6, // [6:11] is the sub-list for method output_type
	1, // [1:6] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_docextract_v1_docextract_proto_init() }
func file_docextract_v1_docextract_proto_init() {
	if File_docextract_v1_docextract_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docextract_v1_docextract_proto_rawDesc), len(file_docextract_v1_docextract_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docextract_v1_docextract_proto_goTypes,
		DependencyIndexes: file_docextract_v1_docextract_proto_depIdxs,
		MessageInfos:      file_docextract_v1_docextract_proto_msgTypes,
	}.Build()
	File_docextract_v1_docextract_proto = out.File
	file_docextract_v1_docextract_proto_goTypes = nil
	file_docextract_v1_docextract_proto_depIdxs = nil
}
