package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
)

type fakeTransitioner struct {
	calls int
	err   error
	last  [2]constants.DocStatus
}

func (f *fakeTransitioner) Transition(_ context.Context, _ uuid.UUID, from, to constants.DocStatus) error {
	f.calls++
	f.last = [2]constants.DocStatus{from, to}
	return f.err
}

func TestMoveLegalEdge(t *testing.T) {
	docs := &fakeTransitioner{}
	rec := audit.NewMemoryRecorder()
	m := NewMachine(docs, rec, nil)

	id := uuid.New()
	if err := m.Move(context.Background(), id, constants.StatusUploaded, constants.StatusProcessing); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if docs.calls != 1 {
		t.Fatalf("expected 1 repository call, got %d", docs.calls)
	}
	if len(rec.AuditEvents) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(rec.AuditEvents))
	}
	ev := rec.AuditEvents[0]
	if ev.EntityKind != constants.EntityDocument || ev.EntityID != id.String() {
		t.Errorf("audit event points at wrong entity: %+v", ev)
	}
}

func TestMoveIllegalEdgeNeverHitsRepository(t *testing.T) {
	docs := &fakeTransitioner{}
	m := NewMachine(docs, audit.NewMemoryRecorder(), nil)

	err := m.Move(context.Background(), uuid.New(), constants.StatusUploaded, constants.StatusExtracted)
	if !errors.Is(err, common.ErrStaleStateTransition) {
		t.Fatalf("expected ErrStaleStateTransition, got %v", err)
	}
	if docs.calls != 0 {
		t.Errorf("repository called for an illegal edge")
	}
}

func TestMoveLostRaceSurfacesStaleError(t *testing.T) {
	docs := &fakeTransitioner{err: common.ErrStaleStateTransition}
	rec := audit.NewMemoryRecorder()
	m := NewMachine(docs, rec, nil)

	err := m.Move(context.Background(), uuid.New(), constants.StatusUploaded, constants.StatusProcessing)
	if !errors.Is(err, common.ErrStaleStateTransition) {
		t.Fatalf("expected ErrStaleStateTransition, got %v", err)
	}
	if len(rec.AuditEvents) != 0 {
		t.Errorf("lost transition must not be audited as a success")
	}
}

func TestFailAndResetHelpers(t *testing.T) {
	docs := &fakeTransitioner{}
	m := NewMachine(docs, audit.NewMemoryRecorder(), nil)

	if err := m.Fail(context.Background(), uuid.New(), constants.StatusProcessing); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if docs.last != [2]constants.DocStatus{constants.StatusProcessing, constants.StatusFailed} {
		t.Errorf("Fail used wrong edge: %v", docs.last)
	}

	if err := m.ResetToPending(context.Background(), uuid.New(), constants.StatusExtracted); err != nil {
		t.Fatalf("ResetToPending: %v", err)
	}
	if docs.last != [2]constants.DocStatus{constants.StatusExtracted, constants.StatusPending} {
		t.Errorf("ResetToPending used wrong edge: %v", docs.last)
	}

	// failed documents retry through pending, never straight to processing
	if err := m.Move(context.Background(), uuid.New(), constants.StatusFailed, constants.StatusProcessing); !errors.Is(err, common.ErrStaleStateTransition) {
		t.Errorf("failed -> processing must be rejected, got %v", err)
	}
}
