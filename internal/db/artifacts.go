package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/deck-generator/internal/types"
)

// GetDeckPlanByRunID loads the planned deck from database for a run
func (db *DB) GetDeckPlanByRunID(ctx context.Context, runID uuid.UUID) (*types.DeckDescription, error) {
	content, err := db.GetArtifact(ctx, runID, StepDeckPlan)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var deck types.DeckDescription
	if err := json.Unmarshal(content, &deck); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck plan: %w", err)
	}
	return &deck, nil
}

// GetVisualManifestByRunID loads the visual manifest from database for a run
func (db *DB) GetVisualManifestByRunID(ctx context.Context, runID uuid.UUID) (types.VisualManifest, error) {
	content, err := db.GetArtifact(ctx, runID, StepVisualManifest)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var manifest types.VisualManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal visual manifest: %w", err)
	}
	return manifest, nil
}

// GetSourceMetadataByRunID loads source metadata from database for a run
// Returns raw JSON bytes to avoid an import cycle with the ingestion package
func (db *DB) GetSourceMetadataByRunID(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	return db.GetArtifact(ctx, runID, StepSourceMetadata)
}
