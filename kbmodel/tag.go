package kbmodel

import (
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/resource"
)

// TagDefinition names a tag that can be attached to billing objects.
type TagDefinition struct {
	resource.Base
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewTagDefinition creates a tag definition bound to a transport.
func NewTagDefinition(client *httpclient.Client) *TagDefinition {
	t := &TagDefinition{}
	t.Init(t, client)
	return t
}

// CustomField is a free-form name/value pair attached to a billing object.
type CustomField struct {
	resource.Base
	CustomFieldID string `json:"customFieldId"`
	Name          string `json:"name"`
	Value         string `json:"value"`
}

// NewCustomField creates a custom field bound to a transport.
func NewCustomField(client *httpclient.Client) *CustomField {
	c := &CustomField{}
	c.Init(c, client)
	return c
}
