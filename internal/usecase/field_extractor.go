package usecase

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractField resolves one logical field by trying candidate selectors in
// order, returning the trimmed text of the first candidate whose first match
// is non-empty. Absence of data yields "" — policy decisions about missing
// fields belong to the normalizer, not the extractor.
func ExtractField(doc *goquery.Document, candidates []string) string {
	for _, sel := range candidates {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// ExtractFieldOr is ExtractField with a default for when no candidate matches.
func ExtractFieldOr(doc *goquery.Document, candidates []string, fallback string) string {
	if text := ExtractField(doc, candidates); text != "" {
		return text
	}
	return fallback
}
