// Package textnorm merges text fragments into the single string the
// classifier sees.
package textnorm

import "strings"

// Merge joins OCR-extracted text and caller-supplied text. Each fragment is
// trimmed independently, joined by a single space when both are present, and
// the result trimmed once more.
func Merge(extracted, supplied string) string {
	extracted = strings.TrimSpace(extracted)
	supplied = strings.TrimSpace(supplied)
	switch {
	case extracted == "":
		return supplied
	case supplied == "":
		return extracted
	}
	return strings.TrimSpace(extracted + " " + supplied)
}
