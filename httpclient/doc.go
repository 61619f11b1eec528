// Package httpclient is the transport collaborator for the resource layer:
// a thin, configurable HTTP client that issues one blocking request per
// call and returns the status code, flattened headers and raw body.
//
// The client deliberately does no pooling beyond net/http defaults, no
// retries, no authentication and no rate limiting; those concerns belong
// to the caller or do not exist in this layer at all. Billing audit
// metadata (created-by, reason, comment) is carried as X-Killbill-*
// request headers.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://killbill.example.com",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/1.0/kb/accounts/123",
//	})
package httpclient
