package domain

import "time"

// ListFilter narrows an outlet listing. Zero fields match everything.
type ListFilter struct {
	Stage Stage
	City  City
	// Query matches outlet names case-insensitively, either as a substring
	// or word by word within a small edit distance.
	Query string
}

// SaveStatus is the state shown by the saving indicator.
type SaveStatus struct {
	// Saving stays true for a short delay after the most recent write.
	Saving      bool      `json:"saving"`
	LastSavedAt time.Time `json:"lastSavedAt"`
	Revision    uint64    `json:"revision"`
	LastError   string    `json:"lastError,omitempty"`
}
