package server

import (
	"context"
	"strings"
	"time"

	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

func (s *DocuFieldService) CreateTemplate(ctx context.Context, req *v1.CreateTemplateRequest) (*v1.TemplateResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if strings.TrimSpace(req.GetSystemPrompt()) == "" {
		return nil, common.InvalidArgumentError("system_prompt is required")
	}

	tpl, err := s.templates.Create(ctx, &entity.PromptTemplate{
		Name:         name,
		SystemPrompt: req.GetSystemPrompt(),
		FieldPrompts: req.GetFieldPrompts(),
		ModelName:    req.GetModelName(),
		CreatedBy:    req.GetCreatedBy(),
	})
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.TemplateResponse{Template: toProtoTemplate(tpl)}, nil
}

func (s *DocuFieldService) ActivateTemplate(ctx context.Context, req *v1.ActivateTemplateRequest) (*v1.TemplateResponse, error) {
	id, err := parseUUID("template_id", req.GetTemplateId())
	if err != nil {
		return nil, err
	}
	tpl, err := s.templates.Activate(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.TemplateResponse{Template: toProtoTemplate(tpl)}, nil
}

func (s *DocuFieldService) CloneTemplate(ctx context.Context, req *v1.CloneTemplateRequest) (*v1.TemplateResponse, error) {
	id, err := parseUUID("template_id", req.GetTemplateId())
	if err != nil {
		return nil, err
	}
	tpl, err := s.templates.Clone(ctx, id, strings.TrimSpace(req.GetNewName()), req.GetCreatedBy())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.TemplateResponse{Template: toProtoTemplate(tpl)}, nil
}

func (s *DocuFieldService) ListTemplates(ctx context.Context, _ *v1.ListTemplatesRequest) (*v1.ListTemplatesResponse, error) {
	tpls, err := s.templates.List(ctx)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	out := make([]*v1.PromptTemplate, 0, len(tpls))
	for _, tpl := range tpls {
		out = append(out, toProtoTemplate(tpl))
	}
	return &v1.ListTemplatesResponse{Templates: out}, nil
}

func toProtoTemplate(tpl *entity.PromptTemplate) *v1.PromptTemplate {
	return &v1.PromptTemplate{
		Id:           tpl.ID.String(),
		Name:         tpl.Name,
		Version:      int32(tpl.Version),
		SystemPrompt: tpl.SystemPrompt,
		FieldPrompts: tpl.FieldPrompts,
		ModelName:    tpl.ModelName,
		IsActive:     tpl.IsActive,
		CreatedBy:    tpl.CreatedBy,
		CreatedAt:    tpl.CreatedAt.UTC().Format(time.RFC3339),
	}
}
