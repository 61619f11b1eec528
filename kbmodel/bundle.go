package kbmodel

import (
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/resource"
)

// Bundle groups the subscriptions sharing one external key.
type Bundle struct {
	resource.Base
	BundleID      string          `json:"bundleId"`
	ExternalKey   string          `json:"externalKey"`
	AccountID     string          `json:"accountId"`
	Subscriptions []*Subscription `json:"subscriptions"`
}

// TypeHints declares the nested resource types of Bundle properties.
func (b *Bundle) TypeHints() map[string]string {
	return map[string]string{"subscriptions": TypeSubscription}
}

// NewBundle creates a bundle bound to a transport.
func NewBundle(client *httpclient.Client) *Bundle {
	b := &Bundle{}
	b.Init(b, client)
	return b
}

// Subscription is one plan attached to a bundle.
type Subscription struct {
	resource.Base
	SubscriptionID     string `json:"subscriptionId"`
	BundleID           string `json:"bundleId"`
	ProductName        string `json:"productName"`
	ProductCategory    string `json:"productCategory"`
	BillingPeriod      string `json:"billingPeriod"`
	PriceList          string `json:"priceList"`
	StartDate          string `json:"startDate"`
	ChargedThroughDate string `json:"chargedThroughDate"`
	State              string `json:"state"`
}

// NewSubscription creates a subscription bound to a transport.
func NewSubscription(client *httpclient.Client) *Subscription {
	s := &Subscription{}
	s.Init(s, client)
	return s
}
