package printavo

import (
	"fmt"
	"strings"
	"time"

	"github.com/printbridge/backend/internal/domain"
)

// dueDateFormat is Printavo's expected zero-padded MM/DD/YYYY layout.
const dueDateFormat = "01/02/2006"

// defaultDueDateDays is applied when a workorder carries no usable due date.
const defaultDueDateDays = 14

// dueDateLayouts are tried in order when parsing a scraped due-date string.
var dueDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ToCustomerPayload maps a normalized workorder onto the Printavo customer
// request shape. Workorder pages carry a single address, so it fills both
// the shipping and billing sections.
func ToCustomerPayload(wo *domain.NormalizedWorkorder) *domain.CustomerPayload {
	address := domain.AddressAttributes{
		Address1: wo.ShippingAddress.Address1,
		Address2: wo.ShippingAddress.Address2,
		City:     wo.ShippingAddress.City,
		State:    wo.ShippingAddress.State,
		Zip:      wo.ShippingAddress.Zip,
		Country:  wo.ShippingAddress.Country,
	}
	if address.Country == "" {
		address.Country = "US"
	}

	return &domain.CustomerPayload{
		FirstName:                 wo.FirstName,
		LastName:                  wo.LastName,
		Company:                   wo.Company,
		CustomerEmail:             wo.CustomerEmail,
		Phone:                     wo.CustomerPhone,
		ShippingAddressAttributes: address,
		BillingAddressAttributes:  address,
	}
}

// ToOrderPayload maps a normalized workorder onto the Printavo order request
// shape for a previously created customer. Each line item's single inferred
// size bucket becomes the one non-zero quantity column; unrecognized bucket
// labels land in the "other" column.
func ToOrderPayload(wo *domain.NormalizedWorkorder, customerID int64, userID, orderStatusID int) *domain.OrderPayload {
	lineItems := make([]domain.OrderLineItem, 0, len(wo.LineItems))
	for _, item := range wo.LineItems {
		li := domain.OrderLineItem{
			StyleDescription: item.Description,
			UnitCost:         item.UnitPrice,
			Color:            item.Color,
			Taxable:          true,
		}
		for label, qty := range item.Sizes {
			switch strings.ToLower(label) {
			case domain.SizeXS:
				li.SizeXS = qty
			case domain.SizeS:
				li.SizeS = qty
			case domain.SizeM:
				li.SizeM = qty
			case domain.SizeL:
				li.SizeL = qty
			case domain.SizeXL:
				li.SizeXL = qty
			case domain.Size2XL:
				li.Size2XL = qty
			case domain.Size3XL:
				li.Size3XL = qty
			default:
				li.SizeOther = qty
			}
		}
		lineItems = append(lineItems, li)
	}

	productionNotes := wo.ProductionNotes
	if productionNotes == "" {
		productionNotes = fmt.Sprintf("Imported from workorder: %s", wo.OrderNumber)
	}

	dueDate := FormatDueDate(wo.DueDate)

	return &domain.OrderPayload{
		UserID:                   userID,
		CustomerID:               customerID,
		OrderStatusID:            orderStatusID,
		FormattedDueDate:         dueDate,
		FormattedCustomerDueDate: dueDate,
		ProductionNotes:          productionNotes,
		Notes:                    "Imported from customer workorder",
		LineItemsAttributes:      lineItems,
	}
}

// FormatDueDate renders a scraped due-date string as MM/DD/YYYY. An empty or
// unparseable input falls back to 14 days from now.
func FormatDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range dueDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(dueDateFormat)
			}
		}
	}
	// Calendar days, not a fixed duration: a 14*24h offset lands a day short
	// across a DST fall-back transition.
	return time.Now().AddDate(0, 0, defaultDueDateDays).Format(dueDateFormat)
}
