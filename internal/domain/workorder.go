package domain

import "time"

// Garment size bucket labels used to partition line-item quantities.
// The set is closed: anything unrecognized lands in SizeOther.
const (
	SizeXS    = "xs"
	SizeS     = "s"
	SizeM     = "m"
	SizeL     = "l"
	SizeXL    = "xl"
	Size2XL   = "2xl"
	Size3XL   = "3xl"
	SizeOther = "other"
)

// SizeBuckets lists every valid bucket label.
var SizeBuckets = []string{SizeXS, SizeS, SizeM, SizeL, SizeXL, Size2XL, Size3XL, SizeOther}

// LineItem is one purchasable product row scraped from a workorder page.
// Sizes maps a single inferred bucket label to the item's full quantity.
type LineItem struct {
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unitPrice"`
	Color       string         `json:"color"`
	Sizes       map[string]int `json:"sizes"`
}

// ShippingAddress holds the address fields scraped from a workorder page.
type ShippingAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// Workorder is the raw extraction result for one scraped page. Every field is
// best-effort: missing data is represented as empty values, never an error.
type Workorder struct {
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	Company         string          `json:"company"`
	OrderNumber     string          `json:"orderNumber"`
	DueDate         string          `json:"dueDate"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	LineItems       []LineItem      `json:"lineItems"`
	ProductionNotes string          `json:"productionNotes"`
	RawHTML         string          `json:"rawHTML"`
}

// NormalizedWorkorder is a Workorder that passed minimum-viable-data
// validation: at least one customer-identifying field and at least one
// line item with a description.
type NormalizedWorkorder struct {
	Workorder
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	ExtractedAt time.Time `json:"extractedAt"`
}
