package types

// VisualOrigin records how a slide's visual was produced.
type VisualOrigin string

const (
	// OriginGenerated means the image-synthesis capability produced the file.
	OriginGenerated VisualOrigin = "generated"
	// OriginProceduralFallback means the local shape renderer produced the
	// file after the retry ladder was exhausted.
	OriginProceduralFallback VisualOrigin = "procedural_fallback"
)

// SlideVisual is the outcome of image acquisition for one slide. Entries
// are write-once: a slide's visual is never regenerated after being set.
type SlideVisual struct {
	SlideIndex int          `json:"slide_index"`
	AssetPath  string       `json:"asset_path"`
	Origin     VisualOrigin `json:"origin"`
}

// VisualManifest maps 0-based slide index to the visual acquired for that
// slide. After image acquisition completes it is total: one entry per
// slide, each referencing an existing, non-empty file.
type VisualManifest map[int]SlideVisual
