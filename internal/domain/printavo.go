package domain

// Credentials authenticate a request against the Printavo API. They are
// supplied per-request by the operator and never stored.
type Credentials struct {
	Email string
	Token string
}

// AddressAttributes matches Printavo's nested address request shape.
type AddressAttributes struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// CustomerPayload is the request body for POST /customers.
type CustomerPayload struct {
	FirstName                 string            `json:"first_name"`
	LastName                  string            `json:"last_name"`
	Company                   string            `json:"company"`
	CustomerEmail             string            `json:"customer_email"`
	Phone                     string            `json:"phone"`
	ShippingAddressAttributes AddressAttributes `json:"shipping_address_attributes"`
	BillingAddressAttributes  AddressAttributes `json:"billing_address_attributes"`
}

// OrderLineItem is one line item in an order payload. Printavo models garment
// sizes as one quantity column per bucket; all but one column stay zero.
type OrderLineItem struct {
	StyleDescription string  `json:"style_description"`
	UnitCost         float64 `json:"unit_cost"`
	Color            string  `json:"color"`
	Taxable          bool    `json:"taxable"`
	SizeXS           int     `json:"size_xs"`
	SizeS            int     `json:"size_s"`
	SizeM            int     `json:"size_m"`
	SizeL            int     `json:"size_l"`
	SizeXL           int     `json:"size_xl"`
	Size2XL          int     `json:"size_2xl"`
	Size3XL          int     `json:"size_3xl"`
	SizeOther        int     `json:"size_other"`
}

// OrderPayload is the request body for POST /orders.
type OrderPayload struct {
	UserID                   int             `json:"user_id"`
	CustomerID               int64           `json:"customer_id"`
	OrderStatusID            int             `json:"orderstatus_id"`
	FormattedDueDate         string          `json:"formatted_due_date"`
	FormattedCustomerDueDate string          `json:"formatted_customer_due_date"`
	ProductionNotes          string          `json:"production_notes"`
	Notes                    string          `json:"notes"`
	LineItemsAttributes      []OrderLineItem `json:"lineitems_attributes"`
}

// Customer is the created-customer record returned by the API.
type Customer struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Company       string `json:"company"`
	CustomerEmail string `json:"customer_email"`
}

// Order is the created-order record returned by the API.
type Order struct {
	ID       int64  `json:"id"`
	VisualID string `json:"visual_id,omitempty"`
	URL      string `json:"url,omitempty"`
}
