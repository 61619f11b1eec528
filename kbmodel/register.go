package kbmodel

import "github.com/carrot-e/killbill-client-go/registry"

// Registered type names, used as decode targets and in type hints.
const (
	TypeAccount       = "Account"
	TypeBundle        = "Bundle"
	TypeSubscription  = "Subscription"
	TypeInvoice       = "Invoice"
	TypeInvoiceItem   = "InvoiceItem"
	TypePayment       = "Payment"
	TypePaymentMethod = "PaymentMethod"
	TypeTagDefinition = "TagDefinition"
	TypeCustomField   = "CustomField"
)

func init() {
	registry.MustRegister(TypeAccount, func() any { return NewAccount(nil) })
	registry.MustRegister(TypeBundle, func() any { return NewBundle(nil) })
	registry.MustRegister(TypeSubscription, func() any { return NewSubscription(nil) })
	registry.MustRegister(TypeInvoice, func() any { return NewInvoice(nil) })
	registry.MustRegister(TypeInvoiceItem, func() any { return NewInvoiceItem(nil) })
	registry.MustRegister(TypePayment, func() any { return NewPayment(nil) })
	registry.MustRegister(TypePaymentMethod, func() any { return NewPaymentMethod(nil) })
	registry.MustRegister(TypeTagDefinition, func() any { return NewTagDefinition(nil) })
	registry.MustRegister(TypeCustomField, func() any { return NewCustomField(nil) })
}
