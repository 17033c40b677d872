// Package audit defines the outbound event boundary to the external
// audit/log collaborator: one event per state transition, extraction attempt
// and verification action.
package audit

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

// Recorder receives structured events. Writes are best-effort: a failed
// insert is logged by the implementation but never fails the operation that
// produced the event.
type Recorder interface {
	Audit(ctx context.Context, ev *entity.AuditEvent)
	System(ctx context.Context, level constants.LogLevel, source, message string, context map[string]any)
}

// Details marshals an audit detail payload, returning nil on failure.
func Details(v map[string]any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// MemoryRecorder collects events in memory. Test double.
type MemoryRecorder struct {
	mu           sync.Mutex
	AuditEvents  []*entity.AuditEvent
	SystemEvents []*entity.SystemEvent
}

func NewMemoryRecorder() *MemoryRecorder { return &MemoryRecorder{} }

func (m *MemoryRecorder) Audit(_ context.Context, ev *entity.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuditEvents = append(m.AuditEvents, ev)
}

func (m *MemoryRecorder) System(_ context.Context, level constants.LogLevel, source, message string, context map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev := &entity.SystemEvent{Level: level, Message: message, Source: source}
	if context != nil {
		if b, err := json.Marshal(context); err == nil {
			ev.Context = b
		}
	}
	m.SystemEvents = append(m.SystemEvents, ev)
}

// SystemCount returns how many system events at the given level were recorded.
func (m *MemoryRecorder) SystemCount(level constants.LogLevel) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, ev := range m.SystemEvents {
		if ev.Level == level {
			n++
		}
	}
	return n
}
