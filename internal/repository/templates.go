package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/gen/ent"
	enttpl "github.com/docufield/docufield/gen/ent/prompttemplate"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

type TemplateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error)
	// Active returns the single active template, most recently created on
	// ties, or ErrNoActiveTemplate.
	Active(ctx context.Context) (*entity.PromptTemplate, error)
	Create(ctx context.Context, tpl *entity.PromptTemplate) (*entity.PromptTemplate, error)
	// Activate flips is_active to the given template inside one transaction:
	// deactivate-all then activate-one, so at most one row is ever active.
	Activate(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error)
	// Clone copies a template into a new inactive template, version reset to 1.
	Clone(ctx context.Context, id uuid.UUID, newName, createdBy string) (*entity.PromptTemplate, error)
	List(ctx context.Context) ([]*entity.PromptTemplate, error)
}

type templateRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepo{ent: entc, logger: logger}
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error) {
	row, err := r.ent.PromptTemplate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toTemplate(row), nil
}

func (r *templateRepo) Active(ctx context.Context) (*entity.PromptTemplate, error) {
	row, err := r.ent.PromptTemplate.Query().
		Where(enttpl.IsActive(true)).
		Order(ent.Desc(enttpl.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNoActiveTemplate
		}
		return nil, err
	}
	return toTemplate(row), nil
}

func (r *templateRepo) Create(ctx context.Context, tpl *entity.PromptTemplate) (*entity.PromptTemplate, error) {
	version := tpl.Version
	if version <= 0 {
		// next version for this name
		last, err := r.ent.PromptTemplate.Query().
			Where(enttpl.Name(tpl.Name)).
			Order(ent.Desc(enttpl.FieldVersion)).
			First(ctx)
		switch {
		case err == nil:
			version = last.Version + 1
		case ent.IsNotFound(err):
			version = 1
		default:
			return nil, err
		}
	}

	row, err := r.ent.PromptTemplate.Create().
		SetName(tpl.Name).
		SetVersion(version).
		SetSystemPrompt(tpl.SystemPrompt).
		SetFieldPrompts(tpl.FieldPrompts).
		SetModelName(tpl.ModelName).
		SetCreatedBy(tpl.CreatedBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create prompt template", "name", tpl.Name, "error", err)
		return nil, err
	}
	r.logger.Info("prompt template created", "template_id", row.ID, "name", row.Name, "version", row.Version)
	return toTemplate(row), nil
}

func (r *templateRepo) Activate(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// deactivate-all + activate-one must be one atomic unit; concurrent
	// activations serialize on the row locks taken here
	if _, err = tx.PromptTemplate.Update().
		Where(enttpl.IsActive(true)).
		SetIsActive(false).
		Save(ctx); err != nil {
		r.logger.Error("failed to deactivate templates", "error", err)
		return nil, err
	}

	row, err := tx.PromptTemplate.UpdateOneID(id).SetIsActive(true).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			err = common.ErrNotFound
		}
		r.logger.Error("failed to activate template", "template_id", id, "error", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("prompt template activated", "template_id", id, "name", row.Name, "version", row.Version)
	return toTemplate(row), nil
}

func (r *templateRepo) Clone(ctx context.Context, id uuid.UUID, newName, createdBy string) (*entity.PromptTemplate, error) {
	src, err := r.ent.PromptTemplate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if newName == "" {
		newName = src.Name + " (copy)"
	}

	row, err := r.ent.PromptTemplate.Create().
		SetName(newName).
		SetVersion(1).
		SetSystemPrompt(src.SystemPrompt).
		SetFieldPrompts(src.FieldPrompts).
		SetModelName(src.ModelName).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to clone template", "template_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("prompt template cloned", "source_id", id, "template_id", row.ID, "name", newName)
	return toTemplate(row), nil
}

func (r *templateRepo) List(ctx context.Context) ([]*entity.PromptTemplate, error) {
	rows, err := r.ent.PromptTemplate.Query().
		Order(ent.Desc(enttpl.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PromptTemplate, len(rows))
	for i, row := range rows {
		out[i] = toTemplate(row)
	}
	return out, nil
}
