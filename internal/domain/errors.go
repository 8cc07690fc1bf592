package domain

import "errors"

var (
	// ErrRenderFailed is returned when the headless browser cannot load a workorder page
	ErrRenderFailed = errors.New("workorder page render failed")

	// ErrMissingCustomerIdentity is returned when a scraped workorder has no customer name, company, or email
	ErrMissingCustomerIdentity = errors.New("missing customer identity")

	// ErrNoLineItems is returned when a scraped workorder has no usable line items
	ErrNoLineItems = errors.New("no line items")

	// ErrPrintavoAPI is returned when the Printavo API rejects a request
	ErrPrintavoAPI = errors.New("printavo API request failed")

	// ErrInvalidWorkorderURL is returned when a URL does not look like a workorder page
	ErrInvalidWorkorderURL = errors.New("invalid workorder URL")
)
