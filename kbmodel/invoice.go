package kbmodel

import (
	"context"
	"fmt"

	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/resource"
)

const invoicesPath = "/1.0/kb/invoices"

// Invoice is a billing invoice with its line items.
type Invoice struct {
	resource.Base
	InvoiceID     string         `json:"invoiceId"`
	InvoiceNumber string         `json:"invoiceNumber"`
	AccountID     string         `json:"accountId"`
	InvoiceDate   string         `json:"invoiceDate"`
	TargetDate    string         `json:"targetDate"`
	Amount        float64        `json:"amount"`
	Balance       float64        `json:"balance"`
	Currency      string         `json:"currency"`
	Items         []*InvoiceItem `json:"items"`
}

// TypeHints declares the nested resource types of Invoice properties.
func (i *Invoice) TypeHints() map[string]string {
	return map[string]string{"items": TypeInvoiceItem}
}

// NewInvoice creates an invoice bound to a transport.
func NewInvoice(client *httpclient.Client) *Invoice {
	i := &Invoice{}
	i.Init(i, client)
	return i
}

// LoadInvoice fetches an invoice by id, including its items.
func LoadInvoice(ctx context.Context, client *httpclient.Client, invoiceID string) (*Invoice, error) {
	i := NewInvoice(client)
	uri := invoicesPath + "/" + invoiceID + resource.BuildQuery(map[string]string{"withItems": "true"})
	resp, err := i.Fetch(ctx, uri, nil)
	if err != nil {
		return nil, err
	}
	res, err := resource.DecodeBody(TypeInvoice, resp)
	if err != nil {
		return nil, err
	}
	inv, ok := res.Resource.(*Invoice)
	if !ok {
		return nil, fmt.Errorf("kbmodel: unexpected %s payload for invoice %s", res.Kind, invoiceID)
	}
	inv.SetClient(client)
	return inv, nil
}

// ItemsTotal sums the amounts of the invoice's line items.
func (i *Invoice) ItemsTotal() float64 {
	var total float64
	for _, item := range i.Items {
		if item != nil {
			total += item.Amount
		}
	}
	return total
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	resource.Base
	InvoiceItemID string  `json:"invoiceItemId"`
	InvoiceID     string  `json:"invoiceId"`
	AccountID     string  `json:"accountId"`
	ItemType      string  `json:"itemType"`
	Description   string  `json:"description"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// NewInvoiceItem creates an invoice item bound to a transport.
func NewInvoiceItem(client *httpclient.Client) *InvoiceItem {
	i := &InvoiceItem{}
	i.Init(i, client)
	return i
}
