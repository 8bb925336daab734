// Package domain contains the core data types for the outlet onboarding board.
// This package has zero external dependencies and is imported by every other
// internal package (repo, store, service, handler, tui).
package domain

import "time"

// Priority is how urgently an onboarding request should be handled.
type Priority string

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Outlet is a single onboarding case tracked through the pipeline.
// JSON field names match the persisted snapshot format.
type Outlet struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Brand       string   `json:"brand,omitempty"`
	RequestedBy string   `json:"requestedBy,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	City        City     `json:"city,omitempty"`
	Stage       Stage    `json:"stage"`
	// Timestamp is the assigned (registration) date in epoch milliseconds.
	// It is editable and independent of when the record was created.
	Timestamp int64 `json:"timestamp"`
}

// AssignedAt returns Timestamp as a UTC time.
func (o Outlet) AssignedAt() time.Time {
	return time.UnixMilli(o.Timestamp).UTC()
}

// OutletPatch is a partial update. Nil fields are left untouched.
// Stage is deliberately absent: stage changes go through Move.
type OutletPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Timestamp   *int64    `json:"timestamp,omitempty"`
	City        *City     `json:"city,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	RequestedBy *string   `json:"requestedBy,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// Apply returns o with the patch applied and whether any field actually changed.
func (p OutletPatch) Apply(o Outlet) (Outlet, bool) {
	changed := false
	setString := func(dst *string, v *string) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}
	setString(&o.Name, p.Name)
	setString(&o.Description, p.Description)
	setString(&o.Brand, p.Brand)
	setString(&o.RequestedBy, p.RequestedBy)
	if p.Timestamp != nil && o.Timestamp != *p.Timestamp {
		o.Timestamp = *p.Timestamp
		changed = true
	}
	if p.City != nil && o.City != *p.City {
		o.City = *p.City
		changed = true
	}
	if p.Priority != nil && o.Priority != *p.Priority {
		o.Priority = *p.Priority
		changed = true
	}
	return o, changed
}

// IsEmpty reports whether the patch sets no fields at all.
func (p OutletPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Timestamp == nil &&
		p.City == nil && p.Brand == nil && p.RequestedBy == nil && p.Priority == nil
}
