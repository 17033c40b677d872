// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docufield/v1/docufield.proto

package docufieldv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DocuFieldService_CreateDocument_FullMethodName        = "/docufield.v1.DocuFieldService/CreateDocument"
	DocuFieldService_GetDocument_FullMethodName           = "/docufield.v1.DocuFieldService/GetDocument"
	DocuFieldService_TriggerPreprocess_FullMethodName     = "/docufield.v1.DocuFieldService/TriggerPreprocess"
	DocuFieldService_TriggerExtract_FullMethodName        = "/docufield.v1.DocuFieldService/TriggerExtract"
	DocuFieldService_ResetToPending_FullMethodName        = "/docufield.v1.DocuFieldService/ResetToPending"
	DocuFieldService_ListFieldDefinitions_FullMethodName  = "/docufield.v1.DocuFieldService/ListFieldDefinitions"
	DocuFieldService_UpsertFieldDefinition_FullMethodName = "/docufield.v1.DocuFieldService/UpsertFieldDefinition"
	DocuFieldService_DeleteFieldDefinition_FullMethodName = "/docufield.v1.DocuFieldService/DeleteFieldDefinition"
	DocuFieldService_CreateTemplate_FullMethodName        = "/docufield.v1.DocuFieldService/CreateTemplate"
	DocuFieldService_ActivateTemplate_FullMethodName      = "/docufield.v1.DocuFieldService/ActivateTemplate"
	DocuFieldService_CloneTemplate_FullMethodName         = "/docufield.v1.DocuFieldService/CloneTemplate"
	DocuFieldService_ListTemplates_FullMethodName         = "/docufield.v1.DocuFieldService/ListTemplates"
	DocuFieldService_ListResults_FullMethodName           = "/docufield.v1.DocuFieldService/ListResults"
	DocuFieldService_RecordVerification_FullMethodName    = "/docufield.v1.DocuFieldService/RecordVerification"
	DocuFieldService_ExportResults_FullMethodName         = "/docufield.v1.DocuFieldService/ExportResults"
)

// DocuFieldServiceClient is the client API for DocuFieldService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocuFieldServiceClient interface {
	// Documents and pipeline triggers.
	CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	TriggerPreprocess(ctx context.Context, in *TriggerPreprocessRequest, opts ...grpc.CallOption) (*TriggerResponse, error)
	TriggerExtract(ctx context.Context, in *TriggerExtractRequest, opts ...grpc.CallOption) (*TriggerResponse, error)
	ResetToPending(ctx context.Context, in *ResetToPendingRequest, opts ...grpc.CallOption) (*ResetToPendingResponse, error)
	// Field catalog.
	ListFieldDefinitions(ctx context.Context, in *ListFieldDefinitionsRequest, opts ...grpc.CallOption) (*ListFieldDefinitionsResponse, error)
	UpsertFieldDefinition(ctx context.Context, in *UpsertFieldDefinitionRequest, opts ...grpc.CallOption) (*UpsertFieldDefinitionResponse, error)
	DeleteFieldDefinition(ctx context.Context, in *DeleteFieldDefinitionRequest, opts ...grpc.CallOption) (*DeleteFieldDefinitionResponse, error)
	// Prompt templates.
	CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error)
	ActivateTemplate(ctx context.Context, in *ActivateTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error)
	CloneTemplate(ctx context.Context, in *CloneTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
	// Results and review.
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error)
	RecordVerification(ctx context.Context, in *RecordVerificationRequest, opts ...grpc.CallOption) (*RecordVerificationResponse, error)
	ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error)
}

type docuFieldServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocuFieldServiceClient(cc grpc.ClientConnInterface) DocuFieldServiceClient {
	return &docuFieldServiceClient{cc}
}

func (c *docuFieldServiceClient) CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateDocumentResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_CreateDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) TriggerPreprocess(ctx context.Context, in *TriggerPreprocessRequest, opts ...grpc.CallOption) (*TriggerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TriggerResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_TriggerPreprocess_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) TriggerExtract(ctx context.Context, in *TriggerExtractRequest, opts ...grpc.CallOption) (*TriggerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TriggerResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_TriggerExtract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ResetToPending(ctx context.Context, in *ResetToPendingRequest, opts ...grpc.CallOption) (*ResetToPendingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetToPendingResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ResetToPending_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ListFieldDefinitions(ctx context.Context, in *ListFieldDefinitionsRequest, opts ...grpc.CallOption) (*ListFieldDefinitionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFieldDefinitionsResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ListFieldDefinitions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) UpsertFieldDefinition(ctx context.Context, in *UpsertFieldDefinitionRequest, opts ...grpc.CallOption) (*UpsertFieldDefinitionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertFieldDefinitionResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_UpsertFieldDefinition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) DeleteFieldDefinition(ctx context.Context, in *DeleteFieldDefinitionRequest, opts ...grpc.CallOption) (*DeleteFieldDefinitionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFieldDefinitionResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_DeleteFieldDefinition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TemplateResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_CreateTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ActivateTemplate(ctx context.Context, in *ActivateTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TemplateResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ActivateTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) CloneTemplate(ctx context.Context, in *CloneTemplateRequest, opts ...grpc.CallOption) (*TemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TemplateResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_CloneTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTemplatesResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ListTemplates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResultsResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ListResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) RecordVerification(ctx context.Context, in *RecordVerificationRequest, opts ...grpc.CallOption) (*RecordVerificationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordVerificationResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_RecordVerification_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docuFieldServiceClient) ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResultsResponse)
	err := c.cc.Invoke(ctx, DocuFieldService_ExportResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocuFieldServiceServer is the server API for DocuFieldService service.
// All implementations must embed UnimplementedDocuFieldServiceServer
// for forward compatibility.
type DocuFieldServiceServer interface {
	// Documents and pipeline triggers.
	CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	TriggerPreprocess(context.Context, *TriggerPreprocessRequest) (*TriggerResponse, error)
	TriggerExtract(context.Context, *TriggerExtractRequest) (*TriggerResponse, error)
	ResetToPending(context.Context, *ResetToPendingRequest) (*ResetToPendingResponse, error)
	// Field catalog.
	ListFieldDefinitions(context.Context, *ListFieldDefinitionsRequest) (*ListFieldDefinitionsResponse, error)
	UpsertFieldDefinition(context.Context, *UpsertFieldDefinitionRequest) (*UpsertFieldDefinitionResponse, error)
	DeleteFieldDefinition(context.Context, *DeleteFieldDefinitionRequest) (*DeleteFieldDefinitionResponse, error)
	// Prompt templates.
	CreateTemplate(context.Context, *CreateTemplateRequest) (*TemplateResponse, error)
	ActivateTemplate(context.Context, *ActivateTemplateRequest) (*TemplateResponse, error)
	CloneTemplate(context.Context, *CloneTemplateRequest) (*TemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	// Results and review.
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	RecordVerification(context.Context, *RecordVerificationRequest) (*RecordVerificationResponse, error)
	ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error)
	mustEmbedUnimplementedDocuFieldServiceServer()
}

// UnimplementedDocuFieldServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocuFieldServiceServer struct{}

func (UnimplementedDocuFieldServiceServer) CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateDocument not implemented")
}
func (UnimplementedDocuFieldServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedDocuFieldServiceServer) TriggerPreprocess(context.Context, *TriggerPreprocessRequest) (*TriggerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TriggerPreprocess not implemented")
}
func (UnimplementedDocuFieldServiceServer) TriggerExtract(context.Context, *TriggerExtractRequest) (*TriggerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TriggerExtract not implemented")
}
func (UnimplementedDocuFieldServiceServer) ResetToPending(context.Context, *ResetToPendingRequest) (*ResetToPendingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetToPending not implemented")
}
func (UnimplementedDocuFieldServiceServer) ListFieldDefinitions(context.Context, *ListFieldDefinitionsRequest) (*ListFieldDefinitionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFieldDefinitions not implemented")
}
func (UnimplementedDocuFieldServiceServer) UpsertFieldDefinition(context.Context, *UpsertFieldDefinitionRequest) (*UpsertFieldDefinitionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertFieldDefinition not implemented")
}
func (UnimplementedDocuFieldServiceServer) DeleteFieldDefinition(context.Context, *DeleteFieldDefinitionRequest) (*DeleteFieldDefinitionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFieldDefinition not implemented")
}
func (UnimplementedDocuFieldServiceServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*TemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTemplate not implemented")
}
func (UnimplementedDocuFieldServiceServer) ActivateTemplate(context.Context, *ActivateTemplateRequest) (*TemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateTemplate not implemented")
}
func (UnimplementedDocuFieldServiceServer) CloneTemplate(context.Context, *CloneTemplateRequest) (*TemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloneTemplate not implemented")
}
func (UnimplementedDocuFieldServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTemplates not implemented")
}
func (UnimplementedDocuFieldServiceServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedDocuFieldServiceServer) RecordVerification(context.Context, *RecordVerificationRequest) (*RecordVerificationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordVerification not implemented")
}
func (UnimplementedDocuFieldServiceServer) ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportResults not implemented")
}
func (UnimplementedDocuFieldServiceServer) mustEmbedUnimplementedDocuFieldServiceServer() {}
func (UnimplementedDocuFieldServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocuFieldServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocuFieldServiceServer will
// result in compilation errors.
type UnsafeDocuFieldServiceServer interface {
	mustEmbedUnimplementedDocuFieldServiceServer()
}

func RegisterDocuFieldServiceServer(s grpc.ServiceRegistrar, srv DocuFieldServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocuFieldServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocuFieldService_ServiceDesc, srv)
}

func _DocuFieldService_CreateDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).CreateDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_CreateDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).CreateDocument(ctx, req.(*CreateDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_TriggerPreprocess_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerPreprocessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).TriggerPreprocess(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_TriggerPreprocess_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).TriggerPreprocess(ctx, req.(*TriggerPreprocessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_TriggerExtract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerExtractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).TriggerExtract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_TriggerExtract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).TriggerExtract(ctx, req.(*TriggerExtractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ResetToPending_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetToPendingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ResetToPending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ResetToPending_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ResetToPending(ctx, req.(*ResetToPendingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ListFieldDefinitions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFieldDefinitionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ListFieldDefinitions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ListFieldDefinitions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ListFieldDefinitions(ctx, req.(*ListFieldDefinitionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_UpsertFieldDefinition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertFieldDefinitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).UpsertFieldDefinition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_UpsertFieldDefinition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).UpsertFieldDefinition(ctx, req.(*UpsertFieldDefinitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_DeleteFieldDefinition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFieldDefinitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).DeleteFieldDefinition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_DeleteFieldDefinition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).DeleteFieldDefinition(ctx, req.(*DeleteFieldDefinitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_CreateTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).CreateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_CreateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).CreateTemplate(ctx, req.(*CreateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ActivateTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ActivateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ActivateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ActivateTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ActivateTemplate(ctx, req.(*ActivateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_CloneTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloneTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).CloneTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_CloneTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).CloneTemplate(ctx, req.(*CloneTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ListTemplates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ListTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ListTemplates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ListTemplates(ctx, req.(*ListTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ListResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ListResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ListResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ListResults(ctx, req.(*ListResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_RecordVerification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordVerificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).RecordVerification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_RecordVerification_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).RecordVerification(ctx, req.(*RecordVerificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocuFieldService_ExportResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocuFieldServiceServer).ExportResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocuFieldService_ExportResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocuFieldServiceServer).ExportResults(ctx, req.(*ExportResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocuFieldService_ServiceDesc is the grpc.ServiceDesc for DocuFieldService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocuFieldService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docufield.v1.DocuFieldService",
	HandlerType: (*DocuFieldServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDocument",
			Handler:    _DocuFieldService_CreateDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _DocuFieldService_GetDocument_Handler,
		},
		{
			MethodName: "TriggerPreprocess",
			Handler:    _DocuFieldService_TriggerPreprocess_Handler,
		},
		{
			MethodName: "TriggerExtract",
			Handler:    _DocuFieldService_TriggerExtract_Handler,
		},
		{
			MethodName: "ResetToPending",
			Handler:    _DocuFieldService_ResetToPending_Handler,
		},
		{
			MethodName: "ListFieldDefinitions",
			Handler:    _DocuFieldService_ListFieldDefinitions_Handler,
		},
		{
			MethodName: "UpsertFieldDefinition",
			Handler:    _DocuFieldService_UpsertFieldDefinition_Handler,
		},
		{
			MethodName: "DeleteFieldDefinition",
			Handler:    _DocuFieldService_DeleteFieldDefinition_Handler,
		},
		{
			MethodName: "CreateTemplate",
			Handler:    _DocuFieldService_CreateTemplate_Handler,
		},
		{
			MethodName: "ActivateTemplate",
			Handler:    _DocuFieldService_ActivateTemplate_Handler,
		},
		{
			MethodName: "CloneTemplate",
			Handler:    _DocuFieldService_CloneTemplate_Handler,
		},
		{
			MethodName: "ListTemplates",
			Handler:    _DocuFieldService_ListTemplates_Handler,
		},
		{
			MethodName: "ListResults",
			Handler:    _DocuFieldService_ListResults_Handler,
		},
		{
			MethodName: "RecordVerification",
			Handler:    _DocuFieldService_RecordVerification_Handler,
		},
		{
			MethodName: "ExportResults",
			Handler:    _DocuFieldService_ExportResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docufield/v1/docufield.proto",
}
