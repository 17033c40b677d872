// Package server exposes the document pipeline over gRPC. Handlers stay
// thin: validate, call a collaborator, translate errors at the boundary.
package server

import (
	"log/slog"

	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/export"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/orchestrator"
	"github.com/docufield/docufield/internal/repository"
	"github.com/docufield/docufield/internal/storage"
	"github.com/docufield/docufield/internal/verify"
)

type DocuFieldService struct {
	v1.UnimplementedDocuFieldServiceServer

	store     *storage.Store
	docs      repository.DocumentRepository
	pages     repository.PageRepository
	fieldDefs repository.FieldDefinitionRepository
	templates repository.TemplateRepository
	results   repository.ResultRepository
	queue     *orchestrator.Queue
	machine   *lifecycle.Machine
	ledger    *verify.Ledger
	exporter  *export.Service
	recorder  audit.Recorder
	logger    *slog.Logger
}

// Deps bundles everything the service needs; all fields are required.
type Deps struct {
	Store     *storage.Store
	Docs      repository.DocumentRepository
	Pages     repository.PageRepository
	FieldDefs repository.FieldDefinitionRepository
	Templates repository.TemplateRepository
	Results   repository.ResultRepository
	Queue     *orchestrator.Queue
	Machine   *lifecycle.Machine
	Ledger    *verify.Ledger
	Exporter  *export.Service
	Recorder  audit.Recorder
	Logger    *slog.Logger
}

func NewDocuFieldService(d Deps) *DocuFieldService {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DocuFieldService{
		store:     d.Store,
		docs:      d.Docs,
		pages:     d.Pages,
		fieldDefs: d.FieldDefs,
		templates: d.Templates,
		results:   d.Results,
		queue:     d.Queue,
		machine:   d.Machine,
		ledger:    d.Ledger,
		exporter:  d.Exporter,
		recorder:  d.Recorder,
		logger:    logger,
	}
}
