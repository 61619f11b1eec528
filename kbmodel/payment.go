package kbmodel

import (
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/resource"
)

// Payment is an attempt to settle an invoice balance.
type Payment struct {
	resource.Base
	PaymentID       string  `json:"paymentId"`
	AccountID       string  `json:"accountId"`
	InvoiceID       string  `json:"invoiceId"`
	PaymentMethodID string  `json:"paymentMethodId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	EffectiveDate   string  `json:"effectiveDate"`
}

// NewPayment creates a payment bound to a transport.
func NewPayment(client *httpclient.Client) *Payment {
	p := &Payment{}
	p.Init(p, client)
	return p
}

// PaymentMethod describes how an account pays.
type PaymentMethod struct {
	resource.Base
	PaymentMethodID string `json:"paymentMethodId"`
	AccountID       string `json:"accountId"`
	PluginName      string `json:"pluginName"`
	IsDefault       bool   `json:"isDefault"`
	PluginInfo      any    `json:"pluginInfo"`
}

// NewPaymentMethod creates a payment method bound to a transport.
func NewPaymentMethod(client *httpclient.Client) *PaymentMethod {
	p := &PaymentMethod{}
	p.Init(p, client)
	return p
}
