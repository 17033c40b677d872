package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/gen/ent"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

// openTestClient opens an in-memory sqlite database through the same Open
// path production uses and runs the schema migration against it.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("sqlite:file:%s?mode=memory&cache=shared", name)

	entc, _, err := Open(ctx, common.DatabaseConfig{DSN: dsn}, logger)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = entc.Close() })
	if err := entc.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return entc
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTemplateActivationIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(openTestClient(t), testLogger())

	var ids []uuid.UUID
	for _, name := range []string{"baseline", "strict", "loose"} {
		tpl, err := repo.Create(ctx, &entity.PromptTemplate{
			Name:         name,
			SystemPrompt: "extract the requested field",
		})
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		ids = append(ids, tpl.ID)
	}

	if _, err := repo.Activate(ctx, ids[0]); err != nil {
		t.Fatalf("Activate first: %v", err)
	}
	if _, err := repo.Activate(ctx, ids[1]); err != nil {
		t.Fatalf("Activate second: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	active := 0
	for _, tpl := range all {
		if tpl.IsActive {
			active++
			if tpl.ID != ids[1] {
				t.Errorf("active template = %s, want %s", tpl.ID, ids[1])
			}
		}
	}
	if active != 1 {
		t.Fatalf("active count = %d, want 1", active)
	}

	got, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got.ID != ids[1] {
		t.Errorf("Active = %s, want %s", got.ID, ids[1])
	}
}

func TestTemplateActivateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(openTestClient(t), testLogger())

	if _, err := repo.Activate(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Activate(unknown) err = %v, want ErrNotFound", err)
	}
}

func TestTemplateVersionsIncrementPerName(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(openTestClient(t), testLogger())

	first, err := repo.Create(ctx, &entity.PromptTemplate{
		Name:         "claims",
		SystemPrompt: "v1 prompt",
	})
	if err != nil {
		t.Fatalf("Create v1: %v", err)
	}
	second, err := repo.Create(ctx, &entity.PromptTemplate{
		Name:         "claims",
		SystemPrompt: "v2 prompt",
	})
	if err != nil {
		t.Fatalf("Create v2: %v", err)
	}
	if first.Version != 1 || second.Version != 2 {
		t.Errorf("versions = %d, %d, want 1, 2", first.Version, second.Version)
	}

	// nothing has been activated yet
	if _, err := repo.Active(ctx); !errors.Is(err, common.ErrNoActiveTemplate) {
		t.Fatalf("Active err = %v, want ErrNoActiveTemplate", err)
	}
}

func TestTemplateCloneResetsVersionAndActivation(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(openTestClient(t), testLogger())

	src, err := repo.Create(ctx, &entity.PromptTemplate{
		Name:         "claims",
		SystemPrompt: "base prompt",
		FieldPrompts: map[string]string{"policy_no": "find the policy number"},
		ModelName:    "gpt-4o",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &entity.PromptTemplate{Name: "claims", SystemPrompt: "base prompt"}); err != nil {
		t.Fatalf("Create v2: %v", err)
	}
	if _, err := repo.Activate(ctx, src.ID); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	clone, err := repo.Clone(ctx, src.ID, "claims 2026", "ops@docufield")
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if clone.Version != 1 {
		t.Errorf("clone version = %d, want 1", clone.Version)
	}
	if clone.IsActive {
		t.Error("clone must start inactive")
	}
	if clone.Name != "claims 2026" {
		t.Errorf("clone name = %q", clone.Name)
	}
	if clone.SystemPrompt != src.SystemPrompt {
		t.Errorf("clone system prompt = %q, want %q", clone.SystemPrompt, src.SystemPrompt)
	}
	if clone.FieldPrompts["policy_no"] != "find the policy number" {
		t.Errorf("clone field prompts = %v", clone.FieldPrompts)
	}

	// cloning does not steal activation
	got, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got.ID != src.ID {
		t.Errorf("Active = %s, want %s", got.ID, src.ID)
	}
}
