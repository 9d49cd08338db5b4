// Package classify maps classification keys to destination folder names.
// The mapping is a total pure function: every key has a folder, including
// the no-metadata key, so callers never handle an "unmapped" case. Gather
// uses the inverse predicate Recognized to touch only folders this table
// could have produced.
package classify

import (
	"strconv"
	"strings"

	"imagetriage/internal/sidecar"
)

// UnratedFolder receives groups that resolve to the no-metadata key.
const UnratedFolder = "0_unrated"

const labelPrefix = "label_"

// Folder returns the destination folder name for a key. Deterministic and
// total over the key space.
func Folder(key sidecar.Key) string {
	label := Slug(key.Label)
	switch {
	case key.Rating > sidecar.MinRating && label != "":
		return starName(key.Rating) + "-" + labelPrefix + label
	case key.Rating > sidecar.MinRating:
		return starName(key.Rating)
	case label != "":
		return labelPrefix + label
	default:
		return UnratedFolder
	}
}

// Recognized reports whether name is a folder the policy table can produce.
// Unrelated subfolders in a processed directory never satisfy it.
func Recognized(name string) bool {
	if name == UnratedFolder {
		return true
	}
	if label, ok := strings.CutPrefix(name, labelPrefix); ok {
		return validSlug(label)
	}
	rating, rest, ok := cutStarName(name)
	if !ok || rating <= sidecar.MinRating || rating > sidecar.MaxRating {
		return false
	}
	if rest == "" {
		return true
	}
	label, ok := strings.CutPrefix(rest, "-"+labelPrefix)
	return ok && validSlug(label)
}

// Slug normalizes a label for use in a folder name: lowercase, letters and
// digits kept, separator runs collapsed to a single hyphen, everything else
// dropped.
func Slug(label string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func starName(rating int) string {
	return strconv.Itoa(rating) + "_star"
}

func cutStarName(name string) (int, string, bool) {
	if len(name) < 6 || name[1:6] != "_star" {
		return 0, "", false
	}
	rating, err := strconv.Atoi(name[:1])
	if err != nil {
		return 0, "", false
	}
	return rating, name[6:], true
}

func validSlug(label string) bool {
	if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
