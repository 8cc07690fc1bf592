package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/printbridge/backend/internal/domain"
)

// maxDescriptionLength is Printavo's style_description field limit.
const maxDescriptionLength = 255

// Normalize post-processes a raw extraction into an importable workorder.
//
// The customer name is split on whitespace into first/last, line items are
// filtered to non-empty descriptions with numeric fields clamped
// (quantity >= 1, unit price >= 0) and descriptions truncated to the
// destination limit. Two invariants are enforced: at least one of first
// name, company, or email must be present, and at least one usable line
// item must remain. Violating either is a terminal validation failure.
func Normalize(raw *domain.Workorder) (*domain.NormalizedWorkorder, error) {
	var firstName, lastName string
	if parts := strings.Fields(raw.CustomerName); len(parts) > 0 {
		firstName = parts[0]
		lastName = strings.Join(parts[1:], " ")
	}

	if firstName == "" && raw.Company == "" && raw.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: could not extract customer name, company, or email", domain.ErrMissingCustomerIdentity)
	}

	clean := make([]domain.LineItem, 0, len(raw.LineItems))
	for _, item := range raw.LineItems {
		if item.Description == "" {
			continue
		}
		// Truncate by runes: the limit is characters, and a byte slice could
		// split a multi-byte character.
		if r := []rune(item.Description); len(r) > maxDescriptionLength {
			item.Description = string(r[:maxDescriptionLength])
		}
		if item.UnitPrice < 0 || math.IsNaN(item.UnitPrice) {
			item.UnitPrice = 0
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		clean = append(clean, item)
	}

	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: could not extract any line items from the workorder", domain.ErrNoLineItems)
	}

	normalized := &domain.NormalizedWorkorder{
		Workorder:   *raw,
		FirstName:   firstName,
		LastName:    lastName,
		ExtractedAt: time.Now(),
	}
	normalized.LineItems = clean
	return normalized, nil
}
