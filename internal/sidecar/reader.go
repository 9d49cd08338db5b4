package sidecar

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xmpNamespace = "http://ns.adobe.com/xap/1.0/"
)

// Read extracts the classification key from the XMP sidecar at path. A
// missing file, unparsable XML, or a document without rating/label fields
// all yield the zero Key. Pure read, no side effects.
func Read(path string) Key {
	file, err := os.Open(path)
	if err != nil {
		return Key{}
	}
	defer file.Close()
	return decode(file)
}

// decode scans the document for rdf:Description elements and picks up the
// xmp:Rating and xmp:Label fields, which writers emit either as attributes
// or as child elements. The first occurrence of each wins.
func decode(r io.Reader) Key {
	decoder := xml.NewDecoder(r)

	var (
		rating      int
		label       string
		foundRating bool
		foundLabel  bool
	)

	for !(foundRating && foundLabel) {
		token, err := decoder.Token()
		if err != nil {
			// io.EOF and malformed XML alike: keep whatever was found.
			break
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case start.Name.Space == rdfNamespace && start.Name.Local == "Description":
			for _, attr := range start.Attr {
				if attr.Name.Space != xmpNamespace {
					continue
				}
				switch attr.Name.Local {
				case "Rating":
					if !foundRating {
						if value, err := parseRating(attr.Value); err == nil {
							rating = value
							foundRating = true
						}
					}
				case "Label":
					if !foundLabel {
						label = attr.Value
						foundLabel = true
					}
				}
			}
		case start.Name.Space == xmpNamespace && start.Name.Local == "Rating":
			if foundRating {
				continue
			}
			var text string
			if err := decoder.DecodeElement(&text, &start); err != nil {
				return normalize(rating, label)
			}
			if value, err := parseRating(text); err == nil {
				rating = value
				foundRating = true
			}
		case start.Name.Space == xmpNamespace && start.Name.Local == "Label":
			if foundLabel {
				continue
			}
			var text string
			if err := decoder.DecodeElement(&text, &start); err != nil {
				return normalize(rating, label)
			}
			label = text
			foundLabel = true
		}
	}

	return normalize(rating, label)
}

func parseRating(value string) (int, error) {
	// Some writers store ratings as "3.0".
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
