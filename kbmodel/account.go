package kbmodel

import (
	"context"
	"fmt"

	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/resource"
)

const accountsPath = "/1.0/kb/accounts"

// Account is the root billing entity owning bundles, invoices and payments.
type Account struct {
	resource.Base
	AccountID       string `json:"accountId"`
	ExternalKey     string `json:"externalKey"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Currency        string `json:"currency"`
	PaymentMethodID string `json:"paymentMethodId"`
	TimeZone        string `json:"timeZone"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Phone           string `json:"phone"`
	BillCycleDay    int    `json:"billCycleDay"`
}

// NewAccount creates an account bound to a transport. A nil client is
// allowed for instances that will only be decoded into.
func NewAccount(client *httpclient.Client) *Account {
	a := &Account{}
	a.Init(a, client)
	return a
}

// LoadAccount fetches an account by id.
func LoadAccount(ctx context.Context, client *httpclient.Client, accountID string) (*Account, error) {
	a := NewAccount(client)
	resp, err := a.Fetch(ctx, accountsPath+"/"+accountID, nil)
	if err != nil {
		return nil, err
	}
	res, err := resource.DecodeBody(TypeAccount, resp)
	if err != nil {
		return nil, err
	}
	acct, ok := res.Resource.(*Account)
	if !ok {
		return nil, fmt.Errorf("kbmodel: unexpected %s payload for account %s", res.Kind, accountID)
	}
	acct.SetClient(client)
	return acct, nil
}

// Save creates the account server-side and returns the created resource by
// following the Location header. Returns nil when the server sent no
// Location.
func (a *Account) Save(ctx context.Context, audit *httpclient.Audit) (*Account, error) {
	resp, err := a.Create(ctx, accountsPath, audit, nil)
	if err != nil {
		return nil, err
	}
	res, err := a.Resolve(ctx, TypeAccount, resp, nil)
	if err != nil {
		return nil, err
	}
	created, ok := res.Resource.(*Account)
	if !ok {
		return nil, nil
	}
	created.SetClient(a.Client())
	return created, nil
}

// Invoices lists the account's invoices.
func (a *Account) Invoices(ctx context.Context) ([]*Invoice, error) {
	uri := accountsPath + "/" + a.AccountID + "/invoices"
	resp, err := a.Fetch(ctx, uri, nil)
	if err != nil {
		return nil, err
	}
	res, err := resource.DecodeBody(TypeInvoice, resp)
	if err != nil {
		return nil, err
	}
	invoices := make([]*Invoice, 0, len(res.List))
	for _, el := range res.List {
		if inv, ok := el.(*Invoice); ok {
			inv.SetClient(a.Client())
			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}
