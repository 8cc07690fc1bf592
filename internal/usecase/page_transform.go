package usecase

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/printbridge/backend/internal/domain"
)

// rawHTMLSampleLimit caps the markup sample kept on each extraction for
// operator debugging.
const rawHTMLSampleLimit = 5000

// TransformPage assembles one raw extraction result from a rendered
// workorder document. It is a pure function of the document: every field is
// resolved through its candidate selector list and the line-item extractor
// runs once. Missing data stays empty for the normalizer to judge.
func TransformPage(doc *goquery.Document) *domain.Workorder {
	return &domain.Workorder{
		CustomerName:  ExtractField(doc, customerNameSelectors),
		CustomerEmail: ExtractField(doc, customerEmailSelectors),
		CustomerPhone: ExtractField(doc, customerPhoneSelectors),
		Company:       ExtractField(doc, companySelectors),
		OrderNumber:   ExtractField(doc, orderNumberSelectors),
		DueDate:       ExtractField(doc, dueDateSelectors),
		ShippingAddress: domain.ShippingAddress{
			Address1: ExtractField(doc, address1Selectors),
			Address2: ExtractField(doc, address2Selectors),
			City:     ExtractField(doc, citySelectors),
			State:    ExtractField(doc, stateSelectors),
			Zip:      ExtractField(doc, zipSelectors),
			Country:  ExtractFieldOr(doc, countrySelectors, "US"),
		},
		LineItems:       ExtractLineItems(doc),
		ProductionNotes: ExtractField(doc, productionNotesSelectors),
		RawHTML:         sampleMarkup(doc),
	}
}

// sampleMarkup keeps the leading slice of the rendered markup for debugging.
func sampleMarkup(doc *goquery.Document) string {
	html, err := doc.Html()
	if err != nil {
		return ""
	}
	if len(html) > rawHTMLSampleLimit {
		html = html[:rawHTMLSampleLimit]
	}
	return html + "..."
}
