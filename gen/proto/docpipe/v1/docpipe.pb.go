// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docpipe/v1/docpipe.proto

package docpipev1

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

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	SourcePath    string                 `protobuf:"bytes,5,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	SourceUrl     string                 `protobuf:"bytes,6,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	ContentType   string                 `protobuf:"bytes,7,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,8,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	Artifacts     map[string]string      `protobuf:"bytes,9,rep,name=artifacts,proto3" json:"artifacts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Scores        map[string]float64     `protobuf:"bytes,10,rep,name=scores,proto3" json:"scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	Issues        []*Issue               `protobuf:"bytes,11,rep,name=issues,proto3" json:"issues,omitempty"`
	StepPlan      []string               `protobuf:"bytes,12,rep,name=step_plan,json=stepPlan,proto3" json:"step_plan,omitempty"`
	Cancelled     bool                   `protobuf:"varint,13,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,14,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

func (x *Document) GetArtifacts() map[string]string {
	if x != nil {
		return x.Artifacts
	}
	return nil
}

func (x *Document) GetScores() map[string]float64 {
	if x != nil {
		return x.Scores
	}
	return nil
}

func (x *Document) GetIssues() []*Issue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *Document) GetStepPlan() []string {
	if x != nil {
		return x.StepPlan
	}
	return nil
}

func (x *Document) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Issue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Issue) Reset() {
	*x = Issue{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Issue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Issue) ProtoMessage() {}

func (x *Issue) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Issue.ProtoReflect.Descriptor instead.
func (*Issue) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{1}
}

func (x *Issue) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Issue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Issue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type Job struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	Id                       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId               string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Step                     string                 `protobuf:"bytes,3,opt,name=step,proto3" json:"step,omitempty"`
	Status                   string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Priority                 int32                  `protobuf:"varint,5,opt,name=priority,proto3" json:"priority,omitempty"`
	Attempts                 int32                  `protobuf:"varint,6,opt,name=attempts,proto3" json:"attempts,omitempty"`
	MaxAttempts              int32                  `protobuf:"varint,7,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	WorkerId                 string                 `protobuf:"bytes,8,opt,name=worker_id,json=workerId,proto3" json:"worker_id,omitempty"`
	ErrorKind                string                 `protobuf:"bytes,9,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage             string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	InputJson                []byte                 `protobuf:"bytes,11,opt,name=input_json,json=inputJson,proto3" json:"input_json,omitempty"`
	OutputJson               []byte                 `protobuf:"bytes,12,opt,name=output_json,json=outputJson,proto3" json:"output_json,omitempty"`
	RetryAt                  string                 `protobuf:"bytes,13,opt,name=retry_at,json=retryAt,proto3" json:"retry_at,omitempty"`
	StartedAt                string                 `protobuf:"bytes,14,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	LastHeartbeat            string                 `protobuf:"bytes,15,opt,name=last_heartbeat,json=lastHeartbeat,proto3" json:"last_heartbeat,omitempty"`
	CreatedAt                string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt                string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	ExecutionTimeoutSeconds  int32                  `protobuf:"varint,18,opt,name=execution_timeout_seconds,json=executionTimeoutSeconds,proto3" json:"execution_timeout_seconds,omitempty"`
	HeartbeatIntervalSeconds int32                  `protobuf:"varint,19,opt,name=heartbeat_interval_seconds,json=heartbeatIntervalSeconds,proto3" json:"heartbeat_interval_seconds,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{2}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Job) GetStep() string {
	if x != nil {
		return x.Step
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *Job) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *Job) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *Job) GetWorkerId() string {
	if x != nil {
		return x.WorkerId
	}
	return ""
}

func (x *Job) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetInputJson() []byte {
	if x != nil {
		return x.InputJson
	}
	return nil
}

func (x *Job) GetOutputJson() []byte {
	if x != nil {
		return x.OutputJson
	}
	return nil
}

func (x *Job) GetRetryAt() string {
	if x != nil {
		return x.RetryAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetLastHeartbeat() string {
	if x != nil {
		return x.LastHeartbeat
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Job) GetExecutionTimeoutSeconds() int32 {
	if x != nil {
		return x.ExecutionTimeoutSeconds
	}
	return 0
}

func (x *Job) GetHeartbeatIntervalSeconds() int32 {
	if x != nil {
		return x.HeartbeatIntervalSeconds
	}
	return 0
}

type JobError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobError) Reset() {
	*x = JobError{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobError) ProtoMessage() {}

func (x *JobError) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobError.ProtoReflect.Descriptor instead.
func (*JobError) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{3}
}

func (x *JobError) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *JobError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CreateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	SourcePath    string                 `protobuf:"bytes,3,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	SourceUrl     string                 `protobuf:"bytes,4,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,5,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	Priority      int32                  `protobuf:"varint,6,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentRequest.ProtoReflect.Descriptor instead.
func (*CreateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{4}
}

func (x *CreateDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateDocumentRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *CreateDocumentRequest) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *CreateDocumentRequest) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

func (x *CreateDocumentRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type CreateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentResponse) Reset() {
	*x = CreateDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentResponse) ProtoMessage() {}

func (x *CreateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentResponse.ProtoReflect.Descriptor instead.
func (*CreateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{5}
}

func (x *CreateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Jobs          []*Job                 `protobuf:"bytes,2,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type CancelDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelDocumentRequest) Reset() {
	*x = CancelDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelDocumentRequest) ProtoMessage() {}

func (x *CancelDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelDocumentRequest.ProtoReflect.Descriptor instead.
func (*CancelDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{10}
}

func (x *CancelDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type CancelDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelDocumentResponse) Reset() {
	*x = CancelDocumentResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelDocumentResponse) ProtoMessage() {}

func (x *CancelDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelDocumentResponse.ProtoReflect.Descriptor instead.
func (*CancelDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{11}
}

func (x *CancelDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DispatchNextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkerId      string                 `protobuf:"bytes,1,opt,name=worker_id,json=workerId,proto3" json:"worker_id,omitempty"`
	Capabilities  []string               `protobuf:"bytes,2,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchNextRequest) Reset() {
	*x = DispatchNextRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchNextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchNextRequest) ProtoMessage() {}

func (x *DispatchNextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchNextRequest.ProtoReflect.Descriptor instead.
func (*DispatchNextRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{12}
}

func (x *DispatchNextRequest) GetWorkerId() string {
	if x != nil {
		return x.WorkerId
	}
	return ""
}

func (x *DispatchNextRequest) GetCapabilities() []string {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

type DispatchNextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchNextResponse) Reset() {
	*x = DispatchNextResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchNextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchNextResponse) ProtoMessage() {}

func (x *DispatchNextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchNextResponse.ProtoReflect.Descriptor instead.
func (*DispatchNextResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{13}
}

func (x *DispatchNextResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type HeartbeatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	WorkerId      string                 `protobuf:"bytes,2,opt,name=worker_id,json=workerId,proto3" json:"worker_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatRequest) Reset() {
	*x = HeartbeatRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatRequest) ProtoMessage() {}

func (x *HeartbeatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatRequest.ProtoReflect.Descriptor instead.
func (*HeartbeatRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{14}
}

func (x *HeartbeatRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *HeartbeatRequest) GetWorkerId() string {
	if x != nil {
		return x.WorkerId
	}
	return ""
}

type HeartbeatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatResponse) Reset() {
	*x = HeartbeatResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatResponse) ProtoMessage() {}

func (x *HeartbeatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatResponse.ProtoReflect.Descriptor instead.
func (*HeartbeatResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{15}
}

type ReportResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	WorkerId      string                 `protobuf:"bytes,2,opt,name=worker_id,json=workerId,proto3" json:"worker_id,omitempty"`
	Completed     bool                   `protobuf:"varint,3,opt,name=completed,proto3" json:"completed,omitempty"`
	OutputJson    []byte                 `protobuf:"bytes,4,opt,name=output_json,json=outputJson,proto3" json:"output_json,omitempty"`
	Error         *JobError              `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportResultRequest) Reset() {
	*x = ReportResultRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportResultRequest) ProtoMessage() {}

func (x *ReportResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportResultRequest.ProtoReflect.Descriptor instead.
func (*ReportResultRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{16}
}

func (x *ReportResultRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ReportResultRequest) GetWorkerId() string {
	if x != nil {
		return x.WorkerId
	}
	return ""
}

func (x *ReportResultRequest) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *ReportResultRequest) GetOutputJson() []byte {
	if x != nil {
		return x.OutputJson
	}
	return nil
}

func (x *ReportResultRequest) GetError() *JobError {
	if x != nil {
		return x.Error
	}
	return nil
}

type ReportResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportResultResponse) Reset() {
	*x = ReportResultResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportResultResponse) ProtoMessage() {}

func (x *ReportResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportResultResponse.ProtoReflect.Descriptor instead.
func (*ReportResultResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{17}
}

var File_docpipe_v1_docpipe_proto protoreflect.FileDescriptor

const file_docpipe_v1_docpipe_proto_rawDesc = "" +
	"\n" +
	"\x18docpipe/v1/docpipe.proto\x12\n" +
	"docpipe.v1\"\xb0\x05\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_path\x18\x05 \x01(\tR\n" +
	"sourcePath\x12\x1d\n" +
	"\n" +
	"source_url\x18\x06 \x01(\tR\tsourceUrl\x12!\n" +
	"\fcontent_type\x18\a \x01(\tR\vcontentType\x12#\n" +
	"\rmetadata_json\x18\b \x01(\tR\fmetadataJson\x12A\n" +
	"\tartifacts\x18\t \x03(\v2#.docpipe.v1.Document.ArtifactsEntryR\tartifacts\x128\n" +
	"\x06scores\x18\n" +
	" \x03(\v2 .docpipe.v1.Document.ScoresEntryR\x06scores\x12)\n" +
	"\x06issues\x18\v \x03(\v2\x11.docpipe.v1.IssueR\x06issues\x12\x1b\n" +
	"\tstep_plan\x18\f \x03(\tR\bstepPlan\x12\x1c\n" +
	"\tcancelled\x18\r \x01(\bR\tcancelled\x12#\n" +
	"\rerror_message\x18\x0e \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\x1a<\n" +
	"\x0eArtifactsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1a9\n" +
	"\vScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"Q\n" +
	"\x05Issue\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"\xf7\x04\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04step\x18\x03 \x01(\tR\x04step\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\x05R\bpriority\x12\x1a\n" +
	"\battempts\x18\x06 \x01(\x05R\battempts\x12!\n" +
	"\fmax_attempts\x18\a \x01(\x05R\vmaxAttempts\x12\x1b\n" +
	"\tworker_id\x18\b \x01(\tR\bworkerId\x12\x1d\n" +
	"\n" +
	"error_kind\x18\t \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"input_json\x18\v \x01(\fR\tinputJson\x12\x1f\n" +
	"\voutput_json\x18\f \x01(\fR\n" +
	"outputJson\x12\x19\n" +
	"\bretry_at\x18\r \x01(\tR\aretryAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x0e \x01(\tR\tstartedAt\x12%\n" +
	"\x0elast_heartbeat\x18\x0f \x01(\tR\rlastHeartbeat\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\x12:\n" +
	"\x19execution_timeout_seconds\x18\x12 \x01(\x05R\x17executionTimeoutSeconds\x12<\n" +
	"\x1aheartbeat_interval_seconds\x18\x13 \x01(\x05R\x18heartbeatIntervalSeconds\"8\n" +
	"\bJobError\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xcf\x01\n" +
	"\x15CreateDocumentRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_path\x18\x03 \x01(\tR\n" +
	"sourcePath\x12\x1d\n" +
	"\n" +
	"source_url\x18\x04 \x01(\tR\tsourceUrl\x12#\n" +
	"\rmetadata_json\x18\x05 \x01(\tR\fmetadataJson\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\x05R\bpriority\"J\n" +
	"\x16CreateDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"l\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\x12#\n" +
	"\x04jobs\x18\x02 \x03(\v2\x0f.docpipe.v1.JobR\x04jobs\"_\n" +
	"\x14ListDocumentsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.docpipe.v1.DocumentR\tdocuments\"8\n" +
	"\x15CancelDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"J\n" +
	"\x16CancelDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"V\n" +
	"\x13DispatchNextRequest\x12\x1b\n" +
	"\tworker_id\x18\x01 \x01(\tR\bworkerId\x12\"\n" +
	"\fcapabilities\x18\x02 \x03(\tR\fcapabilities\"9\n" +
	"\x14DispatchNextResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.docpipe.v1.JobR\x03job\"F\n" +
	"\x10HeartbeatRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tworker_id\x18\x02 \x01(\tR\bworkerId\"\x13\n" +
	"\x11HeartbeatResponse\"\xb4\x01\n" +
	"\x13ReportResultRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tworker_id\x18\x02 \x01(\tR\bworkerId\x12\x1c\n" +
	"\tcompleted\x18\x03 \x01(\bR\tcompleted\x12\x1f\n" +
	"\voutput_json\x18\x04 \x01(\fR\n" +
	"outputJson\x12*\n" +
	"\x05error\x18\x05 \x01(\v2\x14.docpipe.v1.JobErrorR\x05error\"\x16\n" +
	"\x14ReportResultResponse2\xe7\x02\n" +
	"\rIntakeService\x12W\n" +
	"\x0eCreateDocument\x12!.docpipe.v1.CreateDocumentRequest\x1a\".docpipe.v1.CreateDocumentResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docpipe.v1.GetDocumentRequest\x1a\x1f.docpipe.v1.GetDocumentResponse\x12T\n" +
	"\rListDocuments\x12 .docpipe.v1.ListDocumentsRequest\x1a!.docpipe.v1.ListDocumentsResponse\x12W\n" +
	"\x0eCancelDocument\x12!.docpipe.v1.CancelDocumentRequest\x1a\".docpipe.v1.CancelDocumentResponse2\x81\x02\n" +
	"\x0fDispatchService\x12Q\n" +
	"\fDispatchNext\x12\x1f.docpipe.v1.DispatchNextRequest\x1a .docpipe.v1.DispatchNextResponse\x12H\n" +
	"\tHeartbeat\x12\x1c.docpipe.v1.HeartbeatRequest\x1a\x1d.docpipe.v1.HeartbeatResponse\x12Q\n" +
	"\fReportResult\x12\x1f.docpipe.v1.ReportResultRequest\x1a .docpipe.v1.ReportResultResponseB@Z>github.com/accessly/docpipeline/gen/proto/docpipe/v1;docpipev1b\x06proto3"

var (
	file_docpipe_v1_docpipe_proto_rawDescOnce sync.Once
	file_docpipe_v1_docpipe_proto_rawDescData []byte
)

func file_docpipe_v1_docpipe_proto_rawDescGZIP() []byte {
	file_docpipe_v1_docpipe_proto_rawDescOnce.Do(func() {
		file_docpipe_v1_docpipe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)))
	})
	return file_docpipe_v1_docpipe_proto_rawDescData
}

var file_docpipe_v1_docpipe_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_docpipe_v1_docpipe_proto_goTypes = []any{
	(*Document)(nil),               // 0: docpipe.v1.Document
	(*Issue)(nil),                  // 1: docpipe.v1.Issue
	(*Job)(nil),                    // 2: docpipe.v1.Job
	(*JobError)(nil),               // 3: docpipe.v1.JobError
	(*CreateDocumentRequest)(nil),  // 4: docpipe.v1.CreateDocumentRequest
	(*CreateDocumentResponse)(nil), // 5: docpipe.v1.CreateDocumentResponse
	(*GetDocumentRequest)(nil),     // 6: docpipe.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),    // 7: docpipe.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),   // 8: docpipe.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),  // 9: docpipe.v1.ListDocumentsResponse
	(*CancelDocumentRequest)(nil),  // 10: docpipe.v1.CancelDocumentRequest
	(*CancelDocumentResponse)(nil), // 11: docpipe.v1.CancelDocumentResponse
	(*DispatchNextRequest)(nil),    // 12: docpipe.v1.DispatchNextRequest
	(*DispatchNextResponse)(nil),   // 13: docpipe.v1.DispatchNextResponse
	(*HeartbeatRequest)(nil),       // 14: docpipe.v1.HeartbeatRequest
	(*HeartbeatResponse)(nil),      // 15: docpipe.v1.HeartbeatResponse
	(*ReportResultRequest)(nil),    // 16: docpipe.v1.ReportResultRequest
	(*ReportResultResponse)(nil),   // 17: docpipe.v1.ReportResultResponse
	nil,                            // 18: docpipe.v1.Document.ArtifactsEntry
	nil,                            // 19: docpipe.v1.Document.ScoresEntry
}
var file_docpipe_v1_docpipe_proto_depIdxs = []int32{
	18, // 0: docpipe.v1.Document.artifacts:type_name -> docpipe.v1.Document.ArtifactsEntry
	19, // 1: docpipe.v1.Document.scores:type_name -> docpipe.v1.Document.ScoresEntry
	1,  // 2: docpipe.v1.Document.issues:type_name -> docpipe.v1.Issue
	0,  // 3: docpipe.v1.CreateDocumentResponse.document:type_name -> docpipe.v1.Document
	0,  // 4: docpipe.v1.GetDocumentResponse.document:type_name -> docpipe.v1.Document
	2,  // 5: docpipe.v1.GetDocumentResponse.jobs:type_name -> docpipe.v1.Job
	0,  // 6: docpipe.v1.ListDocumentsResponse.documents:type_name -> docpipe.v1.Document
	0,  // 7: docpipe.v1.CancelDocumentResponse.document:type_name -> docpipe.v1.Document
	2,  // 8: docpipe.v1.DispatchNextResponse.job:type_name -> docpipe.v1.Job
	3,  // 9: docpipe.v1.ReportResultRequest.error:type_name -> docpipe.v1.JobError
	4,  // 10: docpipe.v1.IntakeService.CreateDocument:input_type -> docpipe.v1.CreateDocumentRequest
	6,  // 11: docpipe.v1.IntakeService.GetDocument:input_type -> docpipe.v1.GetDocumentRequest
	8,  // 12: docpipe.v1.IntakeService.ListDocuments:input_type -> docpipe.v1.ListDocumentsRequest
	10, // 13: docpipe.v1.IntakeService.CancelDocument:input_type -> docpipe.v1.CancelDocumentRequest
	12, // 14: docpipe.v1.DispatchService.DispatchNext:input_type -> docpipe.v1.DispatchNextRequest
	14, // 15: docpipe.v1.DispatchService.Heartbeat:input_type -> docpipe.v1.HeartbeatRequest
	16, // 16: docpipe.v1.DispatchService.ReportResult:input_type -> docpipe.v1.ReportResultRequest
	5,  // 17: docpipe.v1.IntakeService.CreateDocument:output_type -> docpipe.v1.CreateDocumentResponse
	7,  // 18: docpipe.v1.IntakeService.GetDocument:output_type -> docpipe.v1.GetDocumentResponse
	9,  // 19: docpipe.v1.IntakeService.ListDocuments:output_type -> docpipe.v1.ListDocumentsResponse
	11, // 20: docpipe.v1.IntakeService.CancelDocument:output_type -> docpipe.v1.CancelDocumentResponse
	13, // 21: docpipe.v1.DispatchService.DispatchNext:output_type -> docpipe.v1.DispatchNextResponse
	15, // 22: docpipe.v1.DispatchService.Heartbeat:output_type -> docpipe.v1.HeartbeatResponse
	17, // 23: docpipe.v1.DispatchService.ReportResult:output_type -> docpipe.v1.ReportResultResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_docpipe_v1_docpipe_proto_init() }
func file_docpipe_v1_docpipe_proto_init() {
	if File_docpipe_v1_docpipe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docpipe_v1_docpipe_proto_goTypes,
		DependencyIndexes: file_docpipe_v1_docpipe_proto_depIdxs,
		MessageInfos:      file_docpipe_v1_docpipe_proto_msgTypes,
	}.Build()
	File_docpipe_v1_docpipe_proto = out.File
	file_docpipe_v1_docpipe_proto_goTypes = nil
	file_docpipe_v1_docpipe_proto_depIdxs = nil
}
