package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a deck run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	DeckTitle   string     `json:"deck_title"`
	SourceKind  string     `json:"source_kind"` // "text", "markdown", or "pdf"
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepSourceText     = "source_text"
	StepSourceMetadata = "source_metadata"
	StepDeckPlan       = "deck_plan"
	StepVisualManifest = "visual_manifest"
)

// Artifact categories
const (
	CategoryExtraction = "extraction"
	CategoryPlanning   = "planning"
	CategoryVisuals    = "visuals"
)

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
