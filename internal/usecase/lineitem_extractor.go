package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/printbridge/backend/internal/domain"
)

// Package-level compiled regex patterns for text parsing
var (
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
	priceRegex    = regexp.MustCompile(`[0-9]+(?:\.[0-9]*)?`)
)

// extractNumber parses a quantity from free text by stripping everything but
// digits. Empty or digit-free input yields 0.
func extractNumber(text string) int {
	digits := nonDigitRegex.ReplaceAllString(text, "")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// extractPrice parses the first decimal-looking substring as a price.
// No match yields 0.
func extractPrice(text string) float64 {
	match := priceRegex.FindString(text)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// inferSizeBucket assigns a line item's full quantity to a single garment
// size bucket based on its description text. First match wins; rows that
// plausibly mix sizes still land in one bucket because the source pages give
// no per-size breakdown.
func inferSizeBucket(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "small") || strings.Contains(d, " s "):
		return domain.SizeS
	case strings.Contains(d, "medium") || strings.Contains(d, " m "):
		return domain.SizeM
	case strings.Contains(d, "large") || strings.Contains(d, " l "):
		return domain.SizeL
	case strings.Contains(d, "xl"):
		return domain.SizeXL
	default:
		return domain.SizeOther
	}
}

// ExtractLineItems locates the repeating item structure on a rendered
// workorder page and parses one LineItem per usable row.
//
// Table-style selectors are tried first: the first selector matching more
// than one row (header plus data) supplies the items, with row 0 skipped and
// rows under 3 cells silently dropped. If no table yields items, the
// block-based fallback layout is queried instead, defaulting quantity to 1
// and price to 0 per block.
func ExtractLineItems(doc *goquery.Document) []domain.LineItem {
	items := []domain.LineItem{}

	for _, sel := range lineItemRowSelectors {
		rows := doc.Find(sel)
		if rows.Length() <= 1 {
			// Just a header, or nothing at all.
			continue
		}
		rows.Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return // header row
			}
			cells := row.Find("td")
			if cells.Length() < 3 {
				return
			}
			desc := strings.TrimSpace(cells.Eq(0).Text())
			qty := extractNumber(cells.Eq(1).Text())
			items = append(items, domain.LineItem{
				Description: desc,
				Quantity:    qty,
				UnitPrice:   extractPrice(cells.Eq(2).Text()),
				Sizes:       map[string]int{inferSizeBucket(desc): qty},
			})
		})
		if len(items) > 0 {
			break
		}
	}

	if len(items) > 0 {
		return items
	}

	// Fallback: block-based layouts without a table.
	doc.Find(itemBlockSelector).Each(func(_ int, block *goquery.Selection) {
		desc := strings.TrimSpace(block.Find(blockDescriptionSelector).First().Text())
		if desc == "" {
			desc = strings.TrimSpace(block.Text())
		}
		if desc == "" {
			return
		}
		qty := extractNumber(block.Find(blockQuantitySelector).First().Text())
		if qty == 0 {
			qty = 1
		}
		items = append(items, domain.LineItem{
			Description: desc,
			Quantity:    qty,
			UnitPrice:   extractPrice(block.Find(blockPriceSelector).First().Text()),
			Sizes:       map[string]int{domain.SizeOther: qty},
		})
	})

	return items
}
