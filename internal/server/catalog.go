package server

import (
	"context"
	"strings"

	"github.com/docufield/docufield/constants"
	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

func (s *DocuFieldService) ListFieldDefinitions(ctx context.Context, _ *v1.ListFieldDefinitionsRequest) (*v1.ListFieldDefinitionsResponse, error) {
	defs, err := s.fieldDefs.List(ctx)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*v1.FieldDefinition, 0, len(defs))
	for _, def := range defs {
		out = append(out, toProtoFieldDefinition(def))
	}
	return &v1.ListFieldDefinitionsResponse{Fields: out}, nil
}

func (s *DocuFieldService) UpsertFieldDefinition(ctx context.Context, req *v1.UpsertFieldDefinitionRequest) (*v1.UpsertFieldDefinitionResponse, error) {
	in := req.GetField()
	if in == nil {
		return nil, common.InvalidArgumentError("field is required")
	}
	key := strings.TrimSpace(in.GetKey())
	if key == "" {
		return nil, common.InvalidArgumentError("field.key is required")
	}
	if !validDataType(in.GetDataType()) {
		return nil, common.InvalidArgumentErrorf("unknown data_type %q", in.GetDataType())
	}

	def, err := s.fieldDefs.Upsert(ctx, &entity.FieldDefinition{
		Key:          key,
		Label:        in.GetLabel(),
		DataType:     constants.DataType(in.GetDataType()),
		EnumValues:   in.GetEnumValues(),
		Required:     in.GetRequired(),
		UIOrder:      int(in.GetUiOrder()),
		CustomPrompt: in.GetCustomPrompt(),
	})
	if err != nil {
		s.logger.Error("failed to upsert field definition", "key", key, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &v1.UpsertFieldDefinitionResponse{Field: toProtoFieldDefinition(def)}, nil
}

func (s *DocuFieldService) DeleteFieldDefinition(ctx context.Context, req *v1.DeleteFieldDefinitionRequest) (*v1.DeleteFieldDefinitionResponse, error) {
	key := strings.TrimSpace(req.GetKey())
	if key == "" {
		return nil, common.InvalidArgumentError("key is required")
	}
	if err := s.fieldDefs.Delete(ctx, key); err != nil {
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("field definition deleted", "key", key)
	return &v1.DeleteFieldDefinitionResponse{}, nil
}

func validDataType(dt string) bool {
	for _, t := range constants.DataTypes {
		if dt == t {
			return true
		}
	}
	return false
}

func toProtoFieldDefinition(def *entity.FieldDefinition) *v1.FieldDefinition {
	return &v1.FieldDefinition{
		Id:           int32(def.ID),
		Key:          def.Key,
		Label:        def.Label,
		DataType:     string(def.DataType),
		EnumValues:   def.EnumValues,
		Required:     def.Required,
		UiOrder:      int32(def.UIOrder),
		CustomPrompt: def.CustomPrompt,
	}
}
