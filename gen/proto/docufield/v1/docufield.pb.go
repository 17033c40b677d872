// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docufield/v1/docufield.proto

package docufieldv1

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
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename       string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	SourceType     string                 `protobuf:"bytes,3,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	StoragePath    string                 `protobuf:"bytes,5,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,6,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	UploadedBy     string                 `protobuf:"bytes,7,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[0]
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
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Filename   string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content    []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	UploadedBy string                 `protobuf:"bytes,3,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	// When true the preprocess stage is queued immediately after creation.
	AutoPreprocess bool `protobuf:"varint,4,opt,name=auto_preprocess,json=autoPreprocess,proto3" json:"auto_preprocess,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[1]
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
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{1}
}

func (x *CreateDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *CreateDocumentRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *CreateDocumentRequest) GetAutoPreprocess() bool {
	if x != nil {
		return x.AutoPreprocess
	}
	return false
}

type CreateDocumentResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Document         *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	PreprocessQueued bool                   `protobuf:"varint,2,opt,name=preprocess_queued,json=preprocessQueued,proto3" json:"preprocess_queued,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CreateDocumentResponse) Reset() {
	*x = CreateDocumentResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentResponse) ProtoMessage() {}

func (x *CreateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[2]
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
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{2}
}

func (x *CreateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *CreateDocumentResponse) GetPreprocessQueued() bool {
	if x != nil {
		return x.PreprocessQueued
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[3]
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
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{3}
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
	PageCount     int32                  `protobuf:"varint,2,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[4]
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
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

type TriggerPreprocessRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerPreprocessRequest) Reset() {
	*x = TriggerPreprocessRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerPreprocessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerPreprocessRequest) ProtoMessage() {}

func (x *TriggerPreprocessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerPreprocessRequest.ProtoReflect.Descriptor instead.
func (*TriggerPreprocessRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{5}
}

func (x *TriggerPreprocessRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type TriggerExtractRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// Optional; empty means the active template.
	TemplateId    string `protobuf:"bytes,2,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerExtractRequest) Reset() {
	*x = TriggerExtractRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerExtractRequest) ProtoMessage() {}

func (x *TriggerExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerExtractRequest.ProtoReflect.Descriptor instead.
func (*TriggerExtractRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{6}
}

func (x *TriggerExtractRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *TriggerExtractRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type TriggerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Queued        bool                   `protobuf:"varint,3,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerResponse) Reset() {
	*x = TriggerResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerResponse) ProtoMessage() {}

func (x *TriggerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerResponse.ProtoReflect.Descriptor instead.
func (*TriggerResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{7}
}

func (x *TriggerResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *TriggerResponse) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *TriggerResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ResetToPendingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetToPendingRequest) Reset() {
	*x = ResetToPendingRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetToPendingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetToPendingRequest) ProtoMessage() {}

func (x *ResetToPendingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetToPendingRequest.ProtoReflect.Descriptor instead.
func (*ResetToPendingRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{8}
}

func (x *ResetToPendingRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ResetToPendingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetToPendingResponse) Reset() {
	*x = ResetToPendingResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetToPendingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetToPendingResponse) ProtoMessage() {}

func (x *ResetToPendingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetToPendingResponse.ProtoReflect.Descriptor instead.
func (*ResetToPendingResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{9}
}

func (x *ResetToPendingResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type FieldDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Key           string                 `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Label         string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	DataType      string                 `protobuf:"bytes,4,opt,name=data_type,json=dataType,proto3" json:"data_type,omitempty"`
	EnumValues    []string               `protobuf:"bytes,5,rep,name=enum_values,json=enumValues,proto3" json:"enum_values,omitempty"`
	Required      bool                   `protobuf:"varint,6,opt,name=required,proto3" json:"required,omitempty"`
	UiOrder       int32                  `protobuf:"varint,7,opt,name=ui_order,json=uiOrder,proto3" json:"ui_order,omitempty"`
	CustomPrompt  string                 `protobuf:"bytes,8,opt,name=custom_prompt,json=customPrompt,proto3" json:"custom_prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldDefinition) Reset() {
	*x = FieldDefinition{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldDefinition) ProtoMessage() {}

func (x *FieldDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldDefinition.ProtoReflect.Descriptor instead.
func (*FieldDefinition) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{10}
}

func (x *FieldDefinition) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *FieldDefinition) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *FieldDefinition) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *FieldDefinition) GetDataType() string {
	if x != nil {
		return x.DataType
	}
	return ""
}

func (x *FieldDefinition) GetEnumValues() []string {
	if x != nil {
		return x.EnumValues
	}
	return nil
}

func (x *FieldDefinition) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *FieldDefinition) GetUiOrder() int32 {
	if x != nil {
		return x.UiOrder
	}
	return 0
}

func (x *FieldDefinition) GetCustomPrompt() string {
	if x != nil {
		return x.CustomPrompt
	}
	return ""
}

type ListFieldDefinitionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldDefinitionsRequest) Reset() {
	*x = ListFieldDefinitionsRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldDefinitionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldDefinitionsRequest) ProtoMessage() {}

func (x *ListFieldDefinitionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldDefinitionsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldDefinitionsRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{11}
}

type ListFieldDefinitionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*FieldDefinition     `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldDefinitionsResponse) Reset() {
	*x = ListFieldDefinitionsResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldDefinitionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldDefinitionsResponse) ProtoMessage() {}

func (x *ListFieldDefinitionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldDefinitionsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldDefinitionsResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{12}
}

func (x *ListFieldDefinitionsResponse) GetFields() []*FieldDefinition {
	if x != nil {
		return x.Fields
	}
	return nil
}

type UpsertFieldDefinitionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *FieldDefinition       `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertFieldDefinitionRequest) Reset() {
	*x = UpsertFieldDefinitionRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertFieldDefinitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertFieldDefinitionRequest) ProtoMessage() {}

func (x *UpsertFieldDefinitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertFieldDefinitionRequest.ProtoReflect.Descriptor instead.
func (*UpsertFieldDefinitionRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{13}
}

func (x *UpsertFieldDefinitionRequest) GetField() *FieldDefinition {
	if x != nil {
		return x.Field
	}
	return nil
}

type UpsertFieldDefinitionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *FieldDefinition       `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertFieldDefinitionResponse) Reset() {
	*x = UpsertFieldDefinitionResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertFieldDefinitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertFieldDefinitionResponse) ProtoMessage() {}

func (x *UpsertFieldDefinitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertFieldDefinitionResponse.ProtoReflect.Descriptor instead.
func (*UpsertFieldDefinitionResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{14}
}

func (x *UpsertFieldDefinitionResponse) GetField() *FieldDefinition {
	if x != nil {
		return x.Field
	}
	return nil
}

type DeleteFieldDefinitionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldDefinitionRequest) Reset() {
	*x = DeleteFieldDefinitionRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldDefinitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldDefinitionRequest) ProtoMessage() {}

func (x *DeleteFieldDefinitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldDefinitionRequest.ProtoReflect.Descriptor instead.
func (*DeleteFieldDefinitionRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteFieldDefinitionRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

type DeleteFieldDefinitionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldDefinitionResponse) Reset() {
	*x = DeleteFieldDefinitionResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldDefinitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldDefinitionResponse) ProtoMessage() {}

func (x *DeleteFieldDefinitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldDefinitionResponse.ProtoReflect.Descriptor instead.
func (*DeleteFieldDefinitionResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{16}
}

type PromptTemplate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Version       int32                  `protobuf:"varint,3,opt,name=version,proto3" json:"version,omitempty"`
	SystemPrompt  string                 `protobuf:"bytes,4,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	FieldPrompts  map[string]string      `protobuf:"bytes,5,rep,name=field_prompts,json=fieldPrompts,proto3" json:"field_prompts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ModelName     string                 `protobuf:"bytes,6,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	IsActive      bool                   `protobuf:"varint,7,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,8,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromptTemplate) Reset() {
	*x = PromptTemplate{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromptTemplate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromptTemplate) ProtoMessage() {}

func (x *PromptTemplate) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromptTemplate.ProtoReflect.Descriptor instead.
func (*PromptTemplate) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{17}
}

func (x *PromptTemplate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PromptTemplate) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PromptTemplate) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *PromptTemplate) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *PromptTemplate) GetFieldPrompts() map[string]string {
	if x != nil {
		return x.FieldPrompts
	}
	return nil
}

func (x *PromptTemplate) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *PromptTemplate) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *PromptTemplate) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *PromptTemplate) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	SystemPrompt  string                 `protobuf:"bytes,2,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	FieldPrompts  map[string]string      `protobuf:"bytes,3,rep,name=field_prompts,json=fieldPrompts,proto3" json:"field_prompts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ModelName     string                 `protobuf:"bytes,4,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,5,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTemplateRequest) Reset() {
	*x = CreateTemplateRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTemplateRequest) ProtoMessage() {}

func (x *CreateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTemplateRequest.ProtoReflect.Descriptor instead.
func (*CreateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{18}
}

func (x *CreateTemplateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTemplateRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *CreateTemplateRequest) GetFieldPrompts() map[string]string {
	if x != nil {
		return x.FieldPrompts
	}
	return nil
}

func (x *CreateTemplateRequest) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *CreateTemplateRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type ActivateTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActivateTemplateRequest) Reset() {
	*x = ActivateTemplateRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActivateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActivateTemplateRequest) ProtoMessage() {}

func (x *ActivateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActivateTemplateRequest.ProtoReflect.Descriptor instead.
func (*ActivateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{19}
}

func (x *ActivateTemplateRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type CloneTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	NewName       string                 `protobuf:"bytes,2,opt,name=new_name,json=newName,proto3" json:"new_name,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,3,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CloneTemplateRequest) Reset() {
	*x = CloneTemplateRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CloneTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CloneTemplateRequest) ProtoMessage() {}

func (x *CloneTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CloneTemplateRequest.ProtoReflect.Descriptor instead.
func (*CloneTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{20}
}

func (x *CloneTemplateRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *CloneTemplateRequest) GetNewName() string {
	if x != nil {
		return x.NewName
	}
	return ""
}

func (x *CloneTemplateRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type TemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *PromptTemplate        `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TemplateResponse) Reset() {
	*x = TemplateResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TemplateResponse) ProtoMessage() {}

func (x *TemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TemplateResponse.ProtoReflect.Descriptor instead.
func (*TemplateResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{21}
}

func (x *TemplateResponse) GetTemplate() *PromptTemplate {
	if x != nil {
		return x.Template
	}
	return nil
}

type ListTemplatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesRequest) Reset() {
	*x = ListTemplatesRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesRequest) ProtoMessage() {}

func (x *ListTemplatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesRequest.ProtoReflect.Descriptor instead.
func (*ListTemplatesRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{22}
}

type ListTemplatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Templates     []*PromptTemplate      `protobuf:"bytes,1,rep,name=templates,proto3" json:"templates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesResponse) Reset() {
	*x = ListTemplatesResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesResponse) ProtoMessage() {}

func (x *ListTemplatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesResponse.ProtoReflect.Descriptor instead.
func (*ListTemplatesResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{23}
}

func (x *ListTemplatesResponse) GetTemplates() []*PromptTemplate {
	if x != nil {
		return x.Templates
	}
	return nil
}

type ExtractionResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FieldKey        string                 `protobuf:"bytes,3,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	ValueRaw        string                 `protobuf:"bytes,4,opt,name=value_raw,json=valueRaw,proto3" json:"value_raw,omitempty"`
	NormalizedValue string                 `protobuf:"bytes,5,opt,name=normalized_value,json=normalizedValue,proto3" json:"normalized_value,omitempty"`
	Confidence      float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	PageNum         int32                  `protobuf:"varint,7,opt,name=page_num,json=pageNum,proto3" json:"page_num,omitempty"` // 0 when unknown
	Bbox            []float64              `protobuf:"fixed64,8,rep,packed,name=bbox,proto3" json:"bbox,omitempty"`              // empty or [x0,y0,x1,y1]
	ModelName       string                 `protobuf:"bytes,9,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	ModelVersion    string                 `protobuf:"bytes,10,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	PromptVersion   int32                  `protobuf:"varint,11,opt,name=prompt_version,json=promptVersion,proto3" json:"prompt_version,omitempty"`
	Verified        bool                   `protobuf:"varint,12,opt,name=verified,proto3" json:"verified,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{24}
}

func (x *ExtractionResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractionResult) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *ExtractionResult) GetValueRaw() string {
	if x != nil {
		return x.ValueRaw
	}
	return ""
}

func (x *ExtractionResult) GetNormalizedValue() string {
	if x != nil {
		return x.NormalizedValue
	}
	return ""
}

func (x *ExtractionResult) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractionResult) GetPageNum() int32 {
	if x != nil {
		return x.PageNum
	}
	return 0
}

func (x *ExtractionResult) GetBbox() []float64 {
	if x != nil {
		return x.Bbox
	}
	return nil
}

func (x *ExtractionResult) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ExtractionResult) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

func (x *ExtractionResult) GetPromptVersion() int32 {
	if x != nil {
		return x.PromptVersion
	}
	return 0
}

func (x *ExtractionResult) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *ExtractionResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListResultsRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// When true every historical row is returned, newest first; otherwise only
	// the authoritative latest row per field.
	FullHistory   bool `protobuf:"varint,2,opt,name=full_history,json=fullHistory,proto3" json:"full_history,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsRequest) Reset() {
	*x = ListResultsRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsRequest) ProtoMessage() {}

func (x *ListResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsRequest.ProtoReflect.Descriptor instead.
func (*ListResultsRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{25}
}

func (x *ListResultsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListResultsRequest) GetFullHistory() bool {
	if x != nil {
		return x.FullHistory
	}
	return false
}

type ListResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*ExtractionResult    `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsResponse) Reset() {
	*x = ListResultsResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsResponse) ProtoMessage() {}

func (x *ListResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsResponse.ProtoReflect.Descriptor instead.
func (*ListResultsResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{26}
}

func (x *ListResultsResponse) GetResults() []*ExtractionResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type RecordVerificationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ResultId       string                 `protobuf:"bytes,1,opt,name=result_id,json=resultId,proto3" json:"result_id,omitempty"`
	Verifier       string                 `protobuf:"bytes,2,opt,name=verifier,proto3" json:"verifier,omitempty"`
	Action         string                 `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"` // accept | modify | reject
	CorrectedValue string                 `protobuf:"bytes,4,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	Comment        string                 `protobuf:"bytes,5,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RecordVerificationRequest) Reset() {
	*x = RecordVerificationRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordVerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordVerificationRequest) ProtoMessage() {}

func (x *RecordVerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordVerificationRequest.ProtoReflect.Descriptor instead.
func (*RecordVerificationRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{27}
}

func (x *RecordVerificationRequest) GetResultId() string {
	if x != nil {
		return x.ResultId
	}
	return ""
}

func (x *RecordVerificationRequest) GetVerifier() string {
	if x != nil {
		return x.Verifier
	}
	return ""
}

func (x *RecordVerificationRequest) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *RecordVerificationRequest) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

func (x *RecordVerificationRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type RecordVerificationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordVerificationResponse) Reset() {
	*x = RecordVerificationResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordVerificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordVerificationResponse) ProtoMessage() {}

func (x *RecordVerificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordVerificationResponse.ProtoReflect.Descriptor instead.
func (*RecordVerificationResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{28}
}

func (x *RecordVerificationResponse) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *RecordVerificationResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{29}
}

func (x *ExportResultsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"` // XLSX workbook
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_docufield_v1_docufield_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docufield_v1_docufield_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_docufield_v1_docufield_proto_rawDescGZIP(), []int{30}
}

func (x *ExportResultsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportResultsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_docufield_v1_docufield_proto protoreflect.FileDescriptor

const file_docufield_v1_docufield_proto_rawDesc = "" +
	"\n" +
	"\x1cdocufield/v1/docufield.proto\x12\fdocufield.v1\"\xfc\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_type\x18\x03 \x01(\tR\n" +
	"sourceType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12!\n" +
	"\fstorage_path\x18\x05 \x01(\tR\vstoragePath\x12(\n" +
	"\x10content_hash_hex\x18\x06 \x01(\tR\x0econtentHashHex\x12\x1f\n" +
	"\vuploaded_by\x18\a \x01(\tR\n" +
	"uploadedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\x97\x01\n" +
	"\x15CreateDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1f\n" +
	"\vuploaded_by\x18\x03 \x01(\tR\n" +
	"uploadedBy\x12'\n" +
	"\x0fauto_preprocess\x18\x04 \x01(\bR\x0eautoPreprocess\"y\n" +
	"\x16CreateDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docufield.v1.DocumentR\bdocument\x12+\n" +
	"\x11preprocess_queued\x18\x02 \x01(\bR\x10preprocessQueued\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"h\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docufield.v1.DocumentR\bdocument\x12\x1d\n" +
	"\n" +
	"page_count\x18\x02 \x01(\x05R\tpageCount\";\n" +
	"\x18TriggerPreprocessRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"Y\n" +
	"\x15TriggerExtractRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vtemplate_id\x18\x02 \x01(\tR\n" +
	"templateId\"`\n" +
	"\x0fTriggerResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12\x16\n" +
	"\x06queued\x18\x03 \x01(\bR\x06queued\"8\n" +
	"\x15ResetToPendingRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"L\n" +
	"\x16ResetToPendingResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docufield.v1.DocumentR\bdocument\"\xe3\x01\n" +
	"\x0fFieldDefinition\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\x12\x1b\n" +
	"\tdata_type\x18\x04 \x01(\tR\bdataType\x12\x1f\n" +
	"\venum_values\x18\x05 \x03(\tR\n" +
	"enumValues\x12\x1a\n" +
	"\brequired\x18\x06 \x01(\bR\brequired\x12\x19\n" +
	"\bui_order\x18\a \x01(\x05R\auiOrder\x12#\n" +
	"\rcustom_prompt\x18\b \x01(\tR\fcustomPrompt\"\x1d\n" +
	"\x1bListFieldDefinitionsRequest\"U\n" +
	"\x1cListFieldDefinitionsResponse\x125\n" +
	"\x06fields\x18\x01 \x03(\v2\x1d.docufield.v1.FieldDefinitionR\x06fields\"S\n" +
	"\x1cUpsertFieldDefinitionRequest\x123\n" +
	"\x05field\x18\x01 \x01(\v2\x1d.docufield.v1.FieldDefinitionR\x05field\"T\n" +
	"\x1dUpsertFieldDefinitionResponse\x123\n" +
	"\x05field\x18\x01 \x01(\v2\x1d.docufield.v1.FieldDefinitionR\x05field\"0\n" +
	"\x1cDeleteFieldDefinitionRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\"\x1f\n" +
	"\x1dDeleteFieldDefinitionResponse\"\x83\x03\n" +
	"\x0ePromptTemplate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aversion\x18\x03 \x01(\x05R\aversion\x12#\n" +
	"\rsystem_prompt\x18\x04 \x01(\tR\fsystemPrompt\x12S\n" +
	"\rfield_prompts\x18\x05 \x03(\v2..docufield.v1.PromptTemplate.FieldPromptsEntryR\ffieldPrompts\x12\x1d\n" +
	"\n" +
	"model_name\x18\x06 \x01(\tR\tmodelName\x12\x1b\n" +
	"\tis_active\x18\a \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_by\x18\b \x01(\tR\tcreatedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x1a?\n" +
	"\x11FieldPromptsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xab\x02\n" +
	"\x15CreateTemplateRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rsystem_prompt\x18\x02 \x01(\tR\fsystemPrompt\x12Z\n" +
	"\rfield_prompts\x18\x03 \x03(\v25.docufield.v1.CreateTemplateRequest.FieldPromptsEntryR\ffieldPrompts\x12\x1d\n" +
	"\n" +
	"model_name\x18\x04 \x01(\tR\tmodelName\x12\x1d\n" +
	"\n" +
	"created_by\x18\x05 \x01(\tR\tcreatedBy\x1a?\n" +
	"\x11FieldPromptsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\":\n" +
	"\x17ActivateTemplateRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\"q\n" +
	"\x14CloneTemplateRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x12\x19\n" +
	"\bnew_name\x18\x02 \x01(\tR\anewName\x12\x1d\n" +
	"\n" +
	"created_by\x18\x03 \x01(\tR\tcreatedBy\"L\n" +
	"\x10TemplateResponse\x128\n" +
	"\btemplate\x18\x01 \x01(\v2\x1c.docufield.v1.PromptTemplateR\btemplate\"\x16\n" +
	"\x14ListTemplatesRequest\"S\n" +
	"\x15ListTemplatesResponse\x12:\n" +
	"\ttemplates\x18\x01 \x03(\v2\x1c.docufield.v1.PromptTemplateR\ttemplates\"\x9d\x03\n" +
	"\x10ExtractionResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfield_key\x18\x03 \x01(\tR\bfieldKey\x12\x1b\n" +
	"\tvalue_raw\x18\x04 \x01(\tR\bvalueRaw\x12)\n" +
	"\x10normalized_value\x18\x05 \x01(\tR\x0fnormalizedValue\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\x12\x19\n" +
	"\bpage_num\x18\a \x01(\x05R\apageNum\x12\x12\n" +
	"\x04bbox\x18\b \x03(\x01R\x04bbox\x12\x1d\n" +
	"\n" +
	"model_name\x18\t \x01(\tR\tmodelName\x12#\n" +
	"\rmodel_version\x18\n" +
	" \x01(\tR\fmodelVersion\x12%\n" +
	"\x0eprompt_version\x18\v \x01(\x05R\rpromptVersion\x12\x1a\n" +
	"\bverified\x18\f \x01(\bR\bverified\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"X\n" +
	"\x12ListResultsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\ffull_history\x18\x02 \x01(\bR\vfullHistory\"O\n" +
	"\x13ListResultsResponse\x128\n" +
	"\aresults\x18\x01 \x03(\v2\x1e.docufield.v1.ExtractionResultR\aresults\"\xaf\x01\n" +
	"\x19RecordVerificationRequest\x12\x1b\n" +
	"\tresult_id\x18\x01 \x01(\tR\bresultId\x12\x1a\n" +
	"\bverifier\x18\x02 \x01(\tR\bverifier\x12\x16\n" +
	"\x06action\x18\x03 \x01(\tR\x06action\x12'\n" +
	"\x0fcorrected_value\x18\x04 \x01(\tR\x0ecorrectedValue\x12\x18\n" +
	"\acomment\x18\x05 \x01(\tR\acomment\"X\n" +
	"\x1aRecordVerificationResponse\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x02 \x01(\tR\tcreatedAt\"7\n" +
	"\x14ExportResultsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"M\n" +
	"\x15ExportResultsResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\x9d\v\n" +
	"\x10DocuFieldService\x12[\n" +
	"\x0eCreateDocument\x12#.docufield.v1.CreateDocumentRequest\x1a$.docufield.v1.CreateDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .docufield.v1.GetDocumentRequest\x1a!.docufield.v1.GetDocumentResponse\x12Z\n" +
	"\x11TriggerPreprocess\x12&.docufield.v1.TriggerPreprocessRequest\x1a\x1d.docufield.v1.TriggerResponse\x12T\n" +
	"\x0eTriggerExtract\x12#.docufield.v1.TriggerExtractRequest\x1a\x1d.docufield.v1.TriggerResponse\x12[\n" +
	"\x0eResetToPending\x12#.docufield.v1.ResetToPendingRequest\x1a$.docufield.v1.ResetToPendingResponse\x12m\n" +
	"\x14ListFieldDefinitions\x12).docufield.v1.ListFieldDefinitionsRequest\x1a*.docufield.v1.ListFieldDefinitionsResponse\x12p\n" +
	"\x15UpsertFieldDefinition\x12*.docufield.v1.UpsertFieldDefinitionRequest\x1a+.docufield.v1.UpsertFieldDefinitionResponse\x12p\n" +
	"\x15DeleteFieldDefinition\x12*.docufield.v1.DeleteFieldDefinitionRequest\x1a+.docufield.v1.DeleteFieldDefinitionResponse\x12U\n" +
	"\x0eCreateTemplate\x12#.docufield.v1.CreateTemplateRequest\x1a\x1e.docufield.v1.TemplateResponse\x12Y\n" +
	"\x10ActivateTemplate\x12%.docufield.v1.ActivateTemplateRequest\x1a\x1e.docufield.v1.TemplateResponse\x12S\n" +
	"\rCloneTemplate\x12\".docufield.v1.CloneTemplateRequest\x1a\x1e.docufield.v1.TemplateResponse\x12X\n" +
	"\rListTemplates\x12\".docufield.v1.ListTemplatesRequest\x1a#.docufield.v1.ListTemplatesResponse\x12R\n" +
	"\vListResults\x12 .docufield.v1.ListResultsRequest\x1a!.docufield.v1.ListResultsResponse\x12g\n" +
	"\x12RecordVerification\x12'.docufield.v1.RecordVerificationRequest\x1a(.docufield.v1.RecordVerificationResponse\x12X\n" +
	"\rExportResults\x12\".docufield.v1.ExportResultsRequest\x1a#.docufield.v1.ExportResultsResponseBCZAgithub.com/docufield/docufield/gen/proto/docufield/v1;docufieldv1b\x06proto3"

var (
	file_docufield_v1_docufield_proto_rawDescOnce sync.Once
	file_docufield_v1_docufield_proto_rawDescData []byte
)

func file_docufield_v1_docufield_proto_rawDescGZIP() []byte {
	file_docufield_v1_docufield_proto_rawDescOnce.Do(func() {
		file_docufield_v1_docufield_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docufield_v1_docufield_proto_rawDesc), len(file_docufield_v1_docufield_proto_rawDesc)))
	})
	return file_docufield_v1_docufield_proto_rawDescData
}

var file_docufield_v1_docufield_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_docufield_v1_docufield_proto_goTypes = []any{
	(*Document)(nil),                      // 0: docufield.v1.Document
	(*CreateDocumentRequest)(nil),         // 1: docufield.v1.CreateDocumentRequest
	(*CreateDocumentResponse)(nil),        // 2: docufield.v1.CreateDocumentResponse
	(*GetDocumentRequest)(nil),            // 3: docufield.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),           // 4: docufield.v1.GetDocumentResponse
	(*TriggerPreprocessRequest)(nil),      // 5: docufield.v1.TriggerPreprocessRequest
	(*TriggerExtractRequest)(nil),         // 6: docufield.v1.TriggerExtractRequest
	(*TriggerResponse)(nil),               // 7: docufield.v1.TriggerResponse
	(*ResetToPendingRequest)(nil),         // 8: docufield.v1.ResetToPendingRequest
	(*ResetToPendingResponse)(nil),        // 9: docufield.v1.ResetToPendingResponse
	(*FieldDefinition)(nil),               // 10: docufield.v1.FieldDefinition
	(*ListFieldDefinitionsRequest)(nil),   // 11: docufield.v1.ListFieldDefinitionsRequest
	(*ListFieldDefinitionsResponse)(nil),  // 12: docufield.v1.ListFieldDefinitionsResponse
	(*UpsertFieldDefinitionRequest)(nil),  // 13: docufield.v1.UpsertFieldDefinitionRequest
	(*UpsertFieldDefinitionResponse)(nil), // 14: docufield.v1.UpsertFieldDefinitionResponse
	(*DeleteFieldDefinitionRequest)(nil),  // 15: docufield.v1.DeleteFieldDefinitionRequest
	(*DeleteFieldDefinitionResponse)(nil), // 16: docufield.v1.DeleteFieldDefinitionResponse
	(*PromptTemplate)(nil),                // 17: docufield.v1.PromptTemplate
	(*CreateTemplateRequest)(nil),         // 18: docufield.v1.CreateTemplateRequest
	(*ActivateTemplateRequest)(nil),       // 19: docufield.v1.ActivateTemplateRequest
	(*CloneTemplateRequest)(nil),          // 20: docufield.v1.CloneTemplateRequest
	(*TemplateResponse)(nil),              // 21: docufield.v1.TemplateResponse
	(*ListTemplatesRequest)(nil),          // 22: docufield.v1.ListTemplatesRequest
	(*ListTemplatesResponse)(nil),         // 23: docufield.v1.ListTemplatesResponse
	(*ExtractionResult)(nil),              // 24: docufield.v1.ExtractionResult
	(*ListResultsRequest)(nil),            // 25: docufield.v1.ListResultsRequest
	(*ListResultsResponse)(nil),           // 26: docufield.v1.ListResultsResponse
	(*RecordVerificationRequest)(nil),     // 27: docufield.v1.RecordVerificationRequest
	(*RecordVerificationResponse)(nil),    // 28: docufield.v1.RecordVerificationResponse
	(*ExportResultsRequest)(nil),          // 29: docufield.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil),         // 30: docufield.v1.ExportResultsResponse
	nil,                                   // 31: docufield.v1.PromptTemplate.FieldPromptsEntry
	nil,                                   // 32: docufield.v1.CreateTemplateRequest.FieldPromptsEntry
}
var file_docufield_v1_docufield_proto_depIdxs = []int32{
	0,  // 0: docufield.v1.CreateDocumentResponse.document:type_name -> docufield.v1.Document
	0,  // 1: docufield.v1.GetDocumentResponse.document:type_name -> docufield.v1.Document
	0,  // 2: docufield.v1.ResetToPendingResponse.document:type_name -> docufield.v1.Document
	10, // 3: docufield.v1.ListFieldDefinitionsResponse.fields:type_name -> docufield.v1.FieldDefinition
	10, // 4: docufield.v1.UpsertFieldDefinitionRequest.field:type_name -> docufield.v1.FieldDefinition
	10, // 5: docufield.v1.UpsertFieldDefinitionResponse.field:type_name -> docufield.v1.FieldDefinition
	31, // 6: docufield.v1.PromptTemplate.field_prompts:type_name -> docufield.v1.PromptTemplate.FieldPromptsEntry
	32, // 7: docufield.v1.CreateTemplateRequest.field_prompts:type_name -> docufield.v1.CreateTemplateRequest.FieldPromptsEntry
	17, // 8: docufield.v1.TemplateResponse.template:type_name -> docufield.v1.PromptTemplate
	17, // 9: docufield.v1.ListTemplatesResponse.templates:type_name -> docufield.v1.PromptTemplate
	24, // 10: docufield.v1.ListResultsResponse.results:type_name -> docufield.v1.ExtractionResult
	1,  // 11: docufield.v1.DocuFieldService.CreateDocument:input_type -> docufield.v1.CreateDocumentRequest
	3,  // 12: docufield.v1.DocuFieldService.GetDocument:input_type -> docufield.v1.GetDocumentRequest
	5,  // 13: docufield.v1.DocuFieldService.TriggerPreprocess:input_type -> docufield.v1.TriggerPreprocessRequest
	6,  // 14: docufield.v1.DocuFieldService.TriggerExtract:input_type -> docufield.v1.TriggerExtractRequest
	8,  // 15: docufield.v1.DocuFieldService.ResetToPending:input_type -> docufield.v1.ResetToPendingRequest
	11, // 16: docufield.v1.DocuFieldService.ListFieldDefinitions:input_type -> docufield.v1.ListFieldDefinitionsRequest
	13, // 17: docufield.v1.DocuFieldService.UpsertFieldDefinition:input_type -> docufield.v1.UpsertFieldDefinitionRequest
	15, // 18: docufield.v1.DocuFieldService.DeleteFieldDefinition:input_type -> docufield.v1.DeleteFieldDefinitionRequest
	18, // 19: docufield.v1.DocuFieldService.CreateTemplate:input_type -> docufield.v1.CreateTemplateRequest
	19, // 20: docufield.v1.DocuFieldService.ActivateTemplate:input_type -> docufield.v1.ActivateTemplateRequest
	20, // 21: docufield.v1.DocuFieldService.CloneTemplate:input_type -> docufield.v1.CloneTemplateRequest
	22, // 22: docufield.v1.DocuFieldService.ListTemplates:input_type -> docufield.v1.ListTemplatesRequest
	25, // 23: docufield.v1.DocuFieldService.ListResults:input_type -> docufield.v1.ListResultsRequest
	27, // 24: docufield.v1.DocuFieldService.RecordVerification:input_type -> docufield.v1.RecordVerificationRequest
	29, // 25: docufield.v1.DocuFieldService.ExportResults:input_type -> docufield.v1.ExportResultsRequest
	2,  // 26: docufield.v1.DocuFieldService.CreateDocument:output_type -> docufield.v1.CreateDocumentResponse
	4,  // 27: docufield.v1.DocuFieldService.GetDocument:output_type -> docufield.v1.GetDocumentResponse
	7,  // 28: docufield.v1.DocuFieldService.TriggerPreprocess:output_type -> docufield.v1.TriggerResponse
	7,  // 29: docufield.v1.DocuFieldService.TriggerExtract:output_type -> docufield.v1.TriggerResponse
	9,  // 30: docufield.v1.DocuFieldService.ResetToPending:output_type -> docufield.v1.ResetToPendingResponse
	12, // 31: docufield.v1.DocuFieldService.ListFieldDefinitions:output_type -> docufield.v1.ListFieldDefinitionsResponse
	14, // 32: docufield.v1.DocuFieldService.UpsertFieldDefinition:output_type -> docufield.v1.UpsertFieldDefinitionResponse
	16, // 33: docufield.v1.DocuFieldService.DeleteFieldDefinition:output_type -> docufield.v1.DeleteFieldDefinitionResponse
	21, // 34: docufield.v1.DocuFieldService.CreateTemplate:output_type -> docufield.v1.TemplateResponse
	21, // 35: docufield.v1.DocuFieldService.ActivateTemplate:output_type -> docufield.v1.TemplateResponse
	21, // 36: docufield.v1.DocuFieldService.CloneTemplate:output_type -> docufield.v1.TemplateResponse
	23, // 37: docufield.v1.DocuFieldService.ListTemplates:output_type -> docufield.v1.ListTemplatesResponse
	26, // 38: docufield.v1.DocuFieldService.ListResults:output_type -> docufield.v1.ListResultsResponse
	28, // 39: docufield.v1.DocuFieldService.RecordVerification:output_type -> docufield.v1.RecordVerificationResponse
	30, // 40: docufield.v1.DocuFieldService.ExportResults:output_type -> docufield.v1.ExportResultsResponse
	26, // [26:41] is the sub-list for method output_type
	11, // [11:26] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_docufield_v1_docufield_proto_init() }
func file_docufield_v1_docufield_proto_init() {
	if File_docufield_v1_docufield_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docufield_v1_docufield_proto_rawDesc), len(file_docufield_v1_docufield_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docufield_v1_docufield_proto_goTypes,
		DependencyIndexes: file_docufield_v1_docufield_proto_depIdxs,
		MessageInfos:      file_docufield_v1_docufield_proto_msgTypes,
	}.Build()
	File_docufield_v1_docufield_proto = out.File
	file_docufield_v1_docufield_proto_goTypes = nil
	file_docufield_v1_docufield_proto_depIdxs = nil
}
