package sidecar

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bep/imagemeta"
)

// embeddedFormats lists the dotted lowercase extensions the embedded
// metadata decoder understands. Raw formats keep their metadata in the
// sidecar, so this list is deliberately short.
var embeddedFormats = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".png":  true,
	".webp": true,
}

// ReadEmbedded extracts the classification key from XMP metadata embedded in
// the image file itself. Used as a fallback when no sidecar exists. Any
// decode failure or unsupported format yields the zero Key.
func ReadEmbedded(path string) Key {
	if !embeddedFormats[strings.ToLower(filepath.Ext(path))] {
		return Key{}
	}

	file, err := os.Open(path)
	if err != nil {
		return Key{}
	}
	defer file.Close()

	var (
		rating int
		label  string
	)
	err = imagemeta.Decode(imagemeta.Options{
		R:       file,
		Sources: imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return ti.Tag == "Rating" || ti.Tag == "Label"
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			switch ti.Tag {
			case "Rating":
				if value, err := parseRating(tagString(ti.Value)); err == nil {
					rating = value
				}
			case "Label":
				label = tagString(ti.Value)
			}
			return nil
		},
	})
	if err != nil {
		return Key{}
	}

	return normalize(rating, label)
}

func tagString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
