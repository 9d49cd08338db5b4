// Package sidecar extracts the classification key for an image group from
// its companion XMP document, or optionally from metadata embedded in the
// image itself. Missing or broken metadata is an expected condition and
// always degrades to the zero Key, never an error.
package sidecar

import (
	"fmt"
	"strings"
)

// Rating bounds of the XMP rating scale. Values outside are clamped.
const (
	MinRating = 0
	MaxRating = 5
)

// Key is the normalized classification extracted from metadata. The zero
// value means "no usable metadata": rating 0 and no label, the state every
// group without a sidecar resolves to.
type Key struct {
	Rating int
	Label  string
}

// HasMetadata reports whether the key carries any usable classification.
// Rating 0 and label "none" count as absent, matching common raw-editor
// conventions for cleared metadata.
func (k Key) HasMetadata() bool {
	return k.Rating > MinRating || k.Label != ""
}

func (k Key) String() string {
	if !k.HasMetadata() {
		return "(unrated)"
	}
	if k.Label == "" {
		return fmt.Sprintf("rating=%d", k.Rating)
	}
	if k.Rating == MinRating {
		return fmt.Sprintf("label=%s", k.Label)
	}
	return fmt.Sprintf("rating=%d label=%s", k.Rating, k.Label)
}

// normalize clamps the rating and case-folds the label, mapping the "none"
// placeholder to an empty label.
func normalize(rating int, label string) Key {
	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "none" {
		label = ""
	}
	return Key{Rating: rating, Label: label}
}
