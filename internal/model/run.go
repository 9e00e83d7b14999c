package model

import "time"

// RunID uniquely identifies a persisted allocation run
type RunID string

// Run is a completed allocation together with its validation and stats
type Run struct {
	ID         RunID            `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	Layout     Layout           `json:"layout"`
	Seed       uint64           `json:"seed"`
	Status     AllocationStatus `json:"status"`
	People     []Person         `json:"people"`
	Assignment Assignment       `json:"assignment"`
	Orphaned   []Pair           `json:"orphaned,omitempty"`
	Report     ValidationReport `json:"report"`
	Stats      []TeamStats      `json:"stats"`
}
