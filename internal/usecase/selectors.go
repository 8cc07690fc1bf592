package usecase

// Selector candidate lists for single-value fields, kept as data so the
// resolution algorithm stays generic. Order matters: the first candidate
// with non-empty text wins. Printavo workorder pages vary in markup, so each
// field carries several known layouts.
var (
	customerNameSelectors = []string{
		".customer-name",
		".customer-info h3",
		".customer-info .name",
		"[data-customer-name]",
		"h2.customer",
		".invoice-header .customer",
	}

	customerEmailSelectors = []string{
		".customer-email",
		".customer-info .email",
		"[data-customer-email]",
		`a[href^="mailto:"]`,
	}

	customerPhoneSelectors = []string{
		".customer-phone",
		".customer-info .phone",
		"[data-customer-phone]",
		".phone",
	}

	companySelectors = []string{
		".customer-company",
		".company-name",
		"[data-company]",
		".customer-info .company",
	}

	orderNumberSelectors = []string{
		".order-number",
		".invoice-number",
		"h1",
		".order-id",
		"[data-order-number]",
	}

	dueDateSelectors = []string{
		".due-date",
		".customer-due-date",
		"[data-due-date]",
		".dates .due",
	}

	productionNotesSelectors = []string{
		".production-notes",
		".notes",
		".special-instructions",
		".comments",
		"[data-notes]",
	}
)

// Shipping address sub-field candidates.
var (
	address1Selectors = []string{".shipping-address .address1", ".ship-to .address1", ".shipping .street"}
	address2Selectors = []string{".shipping-address .address2", ".ship-to .address2"}
	citySelectors     = []string{".shipping-address .city", ".ship-to .city", ".shipping .city"}
	stateSelectors    = []string{".shipping-address .state", ".ship-to .state", ".shipping .state"}
	zipSelectors      = []string{".shipping-address .zip", ".ship-to .zip", ".shipping .zip"}
	countrySelectors  = []string{".shipping-address .country", ".ship-to .country"}
)

// Line-item layout candidates. Table-style row selectors are tried first;
// the block selectors are the fallback for pages without an item table.
var (
	lineItemRowSelectors = []string{
		".line-items tr",
		".invoice-line-items tr",
		".order-items tr",
		"table tbody tr",
		".line-item-row",
	}

	itemBlockSelector        = ".line-item, .item, .product-line"
	blockDescriptionSelector = ".description, .item-name, .product-name"
	blockQuantitySelector    = ".quantity, .qty"
	blockPriceSelector       = ".price, .unit-price, .cost"
)
