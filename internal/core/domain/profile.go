package domain

import "time"

// ProfileID is an opaque handle for one external profile.
// It is produced by the search connector and has no lifecycle of its own;
// a pipeline run consumes it and moves on.
type ProfileID string

// String returns the string representation.
func (id ProfileID) String() string {
	return string(id)
}

// ProfileDocument holds the exported document bytes for one profile.
// The acquirer owns the document until it is handed to the extractor,
// and archives the bytes before extraction so a later failure never
// requires a re-fetch.
type ProfileDocument struct {
	// ProfileID identifies the profile this document was exported from.
	ProfileID ProfileID

	// Content is the raw exported bytes (PDF).
	Content []byte

	// FetchedAt is when the document was downloaded.
	FetchedAt time.Time
}

// LayoutElement is a positioned text fragment inside a document.
// Elements exist only during extraction; they are the extractor's raw
// input unit, reconstructed from the document's visual layout.
type LayoutElement struct {
	// Text is the fragment content, whitespace-trimmed by the decoder.
	Text string

	// Page is the zero-based page index the fragment appears on.
	Page int

	// X is the horizontal position in points, from the left edge.
	X float64

	// Y is the vertical position in points, from the top edge.
	Y float64

	// FontSize is the rendered font size in points. The known layout
	// family uses it to signal structure: section headers render larger
	// than entry fields.
	FontSize float64
}
