package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/gen/ent"
	entfd "github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

type FieldDefinitionRepository interface {
	// List returns the catalog in ui_order, the order extraction runs in.
	List(ctx context.Context) ([]*entity.FieldDefinition, error)
	GetByKey(ctx context.Context, key string) (*entity.FieldDefinition, error)
	Upsert(ctx context.Context, def *entity.FieldDefinition) (*entity.FieldDefinition, error)
	Delete(ctx context.Context, key string) error
}

type fieldDefRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFieldDefinitionRepository(entc *ent.Client, logger *slog.Logger) FieldDefinitionRepository {
	return &fieldDefRepo{ent: entc, logger: logger}
}

func (r *fieldDefRepo) List(ctx context.Context) ([]*entity.FieldDefinition, error) {
	rows, err := r.ent.FieldDefinition.Query().
		Order(ent.Asc(entfd.FieldUIOrder), ent.Asc(entfd.FieldLabel)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list field definitions", "error", err)
		return nil, err
	}
	out := make([]*entity.FieldDefinition, len(rows))
	for i, row := range rows {
		out[i] = toFieldDefinition(row)
	}
	return out, nil
}

func (r *fieldDefRepo) GetByKey(ctx context.Context, key string) (*entity.FieldDefinition, error) {
	row, err := r.ent.FieldDefinition.Query().Where(entfd.Key(key)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toFieldDefinition(row), nil
}

func (r *fieldDefRepo) Upsert(ctx context.Context, def *entity.FieldDefinition) (*entity.FieldDefinition, error) {
	if def.DataType == constants.TypeEnum && len(def.EnumValues) == 0 {
		return nil, common.NewAppError("VALIDATION",
			fmt.Sprintf("field %q has data_type enum but no enum_values", def.Key),
			common.ErrInvalidInput)
	}

	existing, err := r.ent.FieldDefinition.Query().Where(entfd.Key(def.Key)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	var row *ent.FieldDefinition
	if existing != nil {
		row, err = existing.Update().
			SetLabel(def.Label).
			SetDataType(string(def.DataType)).
			SetEnumValues(def.EnumValues).
			SetRequired(def.Required).
			SetUIOrder(def.UIOrder).
			SetCustomPrompt(def.CustomPrompt).
			Save(ctx)
	} else {
		row, err = r.ent.FieldDefinition.Create().
			SetKey(def.Key).
			SetLabel(def.Label).
			SetDataType(string(def.DataType)).
			SetEnumValues(def.EnumValues).
			SetRequired(def.Required).
			SetUIOrder(def.UIOrder).
			SetCustomPrompt(def.CustomPrompt).
			Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to upsert field definition", "key", def.Key, "error", err)
		return nil, err
	}
	return toFieldDefinition(row), nil
}

func (r *fieldDefRepo) Delete(ctx context.Context, key string) error {
	n, err := r.ent.FieldDefinition.Delete().Where(entfd.Key(key)).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete field definition", "key", key, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
