package usecase

import "github.com/printbridge/backend/internal/domain"

// Recommendation types shown by the diagnostic endpoint.
const (
	RecommendationSuccess = "success"
	RecommendationWarning = "warning"
	RecommendationError   = "error"
	RecommendationInfo    = "info"
)

// Analysis summarizes how complete a raw extraction is and whether it would
// survive normalization.
type Analysis struct {
	CustomerDataFound    bool `json:"customerDataFound"`
	LineItemsFound       int  `json:"lineItemsFound"`
	AddressFound         bool `json:"addressFound"`
	ContactInfoFound     bool `json:"contactInfoFound"`
	ProductionNotesFound bool `json:"productionNotesFound"`
	ReadyForImport       bool `json:"readyForImport"`
}

// Recommendation is one piece of readiness guidance for the operator.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Analyze derives a readiness analysis and textual recommendations from a
// raw extraction, without calling any external capability. ReadyForImport
// mirrors the normalizer's invariants: customer identity plus at least one
// line item with a description.
func Analyze(raw *domain.Workorder) (Analysis, []Recommendation) {
	usableItems := 0
	for _, item := range raw.LineItems {
		if item.Description != "" {
			usableItems++
		}
	}

	a := Analysis{
		CustomerDataFound:    raw.CustomerName != "" || raw.Company != "" || raw.CustomerEmail != "",
		LineItemsFound:       usableItems,
		AddressFound:         raw.ShippingAddress.Address1 != "",
		ContactInfoFound:     raw.CustomerEmail != "" || raw.CustomerPhone != "",
		ProductionNotesFound: raw.ProductionNotes != "",
	}
	a.ReadyForImport = a.CustomerDataFound && a.LineItemsFound > 0

	var recs []Recommendation
	if !a.CustomerDataFound {
		recs = append(recs, Recommendation{
			Type:    RecommendationError,
			Message: "No customer name, company, or email could be extracted. The workorder cannot be imported without one of these.",
		})
	}
	if a.LineItemsFound == 0 {
		recs = append(recs, Recommendation{
			Type:    RecommendationError,
			Message: "No line items were found on the page. An order cannot be created without purchasable items.",
		})
	}
	if !a.AddressFound {
		recs = append(recs, Recommendation{
			Type:    RecommendationWarning,
			Message: "No shipping address was extracted. The customer will be created without one.",
		})
	}
	if !a.ContactInfoFound {
		recs = append(recs, Recommendation{
			Type:    RecommendationWarning,
			Message: "No email or phone number was extracted for the customer.",
		})
	}
	if !a.ProductionNotesFound {
		recs = append(recs, Recommendation{
			Type:    RecommendationInfo,
			Message: "No production notes were found on the page.",
		})
	}
	if a.ReadyForImport {
		recs = append(recs, Recommendation{
			Type:    RecommendationSuccess,
			Message: "The workorder has the minimum data needed for import.",
		})
	}

	return a, recs
}
