/*
store.go - Persistence interface for the plan snapshot

PURPOSE:
  Defines the contract between the presentation adapter and whatever
  holds the saved plan. The engine itself never touches a store; the
  snapshot is passed in by value on every computation.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite persistence
  - engine/store: in-memory, for tests and dev servers
*/
package engine

import "context"

// PlanStore persists the single plan snapshot. Dates cross this boundary
// as ISO strings, matching the Snapshot wire form.
type PlanStore interface {
	// SavePlan replaces the stored snapshot.
	SavePlan(ctx context.Context, snap Snapshot) error

	// LoadPlan returns the stored snapshot, or ok=false if none saved yet.
	LoadPlan(ctx context.Context) (snap Snapshot, ok bool, err error)

	// AddSelection records one selected PTO date. Adding a date that is
	// already present is a no-op.
	AddSelection(ctx context.Context, date string) error

	// RemoveSelection deletes one selected PTO date. Removing an absent
	// date is a no-op.
	RemoveSelection(ctx context.Context, date string) error
}
