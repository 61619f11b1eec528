// Package kbmodel defines the typed billing resources exchanged with the
// remote API: accounts, bundles, subscriptions, invoices, payments and
// their satellites. Every type embeds resource.Base, is registered with
// the type registry at init, and declares nested-type hints where a
// property decodes into another resource.
package kbmodel
