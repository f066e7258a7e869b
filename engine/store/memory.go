// Package store provides an in-memory PlanStore for tests and dev.
package store

import (
	"context"
	"sync"

	"github.com/warp/pto-planner/engine"
)

// Memory holds the plan snapshot in process memory.
type Memory struct {
	mu    sync.RWMutex
	snap  engine.Snapshot
	saved bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SavePlan(_ context.Context, snap engine.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = cloneSnapshot(snap)
	m.saved = true
	return nil
}

func (m *Memory) LoadPlan(_ context.Context) (engine.Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.saved {
		return engine.Snapshot{}, false, nil
	}
	return cloneSnapshot(m.snap), true, nil
}

func (m *Memory) AddSelection(_ context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.snap.SelectedDates {
		if d == date {
			return nil
		}
	}
	m.snap.SelectedDates = append(m.snap.SelectedDates, date)
	m.saved = true
	return nil
}

func (m *Memory) RemoveSelection(_ context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.snap.SelectedDates[:0]
	for _, d := range m.snap.SelectedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	m.snap.SelectedDates = kept
	return nil
}

func cloneSnapshot(s engine.Snapshot) engine.Snapshot {
	out := s
	out.SelectedDates = append([]string(nil), s.SelectedDates...)
	return out
}
