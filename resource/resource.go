package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carrot-e/killbill-client-go/codec"
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/logger"
)

var log = logger.NewDefault("resource")

// SetLogger replaces the package logger.
func SetLogger(l *logger.Logger) {
	log = l.WithComponent("resource")
}

// Base is embedded by concrete resource types. It carries the reserved
// auditLogs property and the injected transport, and provides the CRUD
// operations over a URI.
type Base struct {
	// AuditLogs is the reserved audit trail property. It is decoded as an
	// opaque value, never as a typed resource.
	AuditLogs any `json:"auditLogs"`

	self   any
	client *httpclient.Client
}

// Init wires the base to its enclosing resource and transport. self must
// be the outermost resource value so that request bodies serialize the
// concrete type, not the base.
func (b *Base) Init(self any, client *httpclient.Client) {
	b.self = self
	b.client = client
}

// SetClient sets the transport. Needed for instances produced by decoding,
// which arrive without one.
func (b *Base) SetClient(client *httpclient.Client) {
	b.client = client
}

// Client returns the injected transport, or nil.
func (b *Base) Client() *httpclient.Client {
	return b.client
}

// Fetch issues a GET against the URI.
func (b *Base) Fetch(ctx context.Context, uri string, headers map[string]string) (*httpclient.Response, error) {
	return b.do(ctx, http.MethodGet, uri, nil, nil, headers)
}

// Create issues a POST against the URI with the serialized resource as body.
func (b *Base) Create(ctx context.Context, uri string, audit *httpclient.Audit, headers map[string]string) (*httpclient.Response, error) {
	body, err := codec.Serialize(b.self)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, http.MethodPost, uri, body, audit, headers)
}

// Update issues a PUT against the URI with the serialized resource as body.
func (b *Base) Update(ctx context.Context, uri string, audit *httpclient.Audit, headers map[string]string) (*httpclient.Response, error) {
	body, err := codec.Serialize(b.self)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, http.MethodPut, uri, body, audit, headers)
}

// Remove issues a DELETE against the URI with the serialized resource as body.
func (b *Base) Remove(ctx context.Context, uri string, audit *httpclient.Audit, headers map[string]string) (*httpclient.Response, error) {
	body, err := codec.Serialize(b.self)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, http.MethodDelete, uri, body, audit, headers)
}

// Resolve follows the Location header of a response with one additional
// GET and decodes the result against the named type. A response without a
// Location header resolves to the null result.
func (b *Base) Resolve(ctx context.Context, typeName string, resp *httpclient.Response, headers map[string]string) (codec.Result, error) {
	if resp == nil {
		return codec.Result{}, nil
	}
	loc := resp.Location()
	if loc == "" {
		return codec.Result{}, nil
	}
	follow, err := b.Fetch(ctx, loc, headers)
	if err != nil {
		return codec.Result{}, err
	}
	return DecodeBody(typeName, follow)
}

// do issues one blocking transport call.
func (b *Base) do(ctx context.Context, method, uri string, body any, audit *httpclient.Audit, headers map[string]string) (*httpclient.Response, error) {
	if b.client == nil {
		return nil, fmt.Errorf("resource: no transport configured, call Init or SetClient first")
	}

	merged := make(map[string]string, len(headers)+2)
	merged["Accept"] = "application/json"
	if body != nil {
		merged["Content-Type"] = "application/json"
	}
	for k, v := range headers {
		merged[k] = v
	}

	log.Debug("request", logger.Fields(logger.FieldMethod, method, logger.FieldURI, uri))
	resp, err := b.client.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    uri,
		Headers: merged,
		Body:    body,
		Audit:   audit,
	})
	if err != nil {
		log.Error("request failed", err, logger.Fields(logger.FieldMethod, method, logger.FieldURI, uri))
		return nil, err
	}
	log.Debug("response", logger.Fields(logger.FieldMethod, method, logger.FieldURI, uri, logger.FieldStatus, resp.StatusCode))
	return resp, nil
}

// DecodeBody decodes a response body against the named type. An empty body
// yields the null result; a body that is not valid JSON degrades to the
// raw status/body fallback instead of failing, which covers endpoints that
// answer malformed or unauthenticated requests with non-JSON error pages.
func DecodeBody(typeName string, resp *httpclient.Response) (codec.Result, error) {
	if resp == nil || len(resp.Body) == 0 {
		return codec.Result{}, nil
	}
	v, err := codec.Parse(resp.Body)
	if err != nil {
		return codec.RawResult(resp.StatusCode, string(resp.Body)), nil
	}
	return codec.Decode(typeName, v)
}
