// Package material fetches tutorial content and learner display
// preferences from the content service, and reduces tutorial HTML to the
// plain text the quiz pipeline consumes.
package material

import "errors"

var (
	// ErrNotFound means the content service has no tutorial with that ID.
	ErrNotFound = errors.New("material: tutorial not found")

	// ErrEmptyMaterial means the tutorial exists but carries no usable
	// text after HTML extraction.
	ErrEmptyMaterial = errors.New("material: tutorial has no text content")
)

// Preferences are learner display settings. They only shape presentation,
// so a missing or failing preferences endpoint falls back to defaults
// rather than failing the request.
type Preferences struct {
	Theme    string `json:"theme"`
	FontSize string `json:"fontSize"`
	Layout   string `json:"layout"`
}

// DefaultPreferences returns the fallback used when the content service
// has no stored preferences for a learner.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "light", FontSize: "medium", Layout: "fullWidth"}
}
