package domain

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// PageRenderer loads a URL in a full browser environment and returns the
// rendered document for read-only selector queries. Implementations own the
// browser resource and release it before Render returns, on every path.
type PageRenderer interface {
	Render(ctx context.Context, url string) (*goquery.Document, error)
}

// PrintavoClient creates records in the operator's Printavo account.
type PrintavoClient interface {
	CreateCustomer(ctx context.Context, creds Credentials, payload *CustomerPayload) (*Customer, error)
	CreateOrder(ctx context.Context, creds Credentials, payload *OrderPayload) (*Order, error)
}
