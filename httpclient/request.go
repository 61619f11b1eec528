package httpclient

import "net/http"

// Billing audit and correlation headers attached to outbound requests.
const (
	HeaderCreatedBy = "X-Killbill-CreatedBy"
	HeaderReason    = "X-Killbill-Reason"
	HeaderComment   = "X-Killbill-Comment"
	HeaderRequestID = "X-Request-Id"
)

// Audit carries the who/why metadata recorded by the billing platform for
// state-changing calls.
type Audit struct {
	// CreatedBy identifies the user performing the change.
	CreatedBy string
	// Reason is the machine-oriented reason code.
	Reason string
	// Comment is a free-form comment.
	Comment string
}

// apply sets the audit headers on an outbound request. Empty fields are
// omitted.
func (a *Audit) apply(req *http.Request) {
	if a == nil {
		return
	}
	if a.CreatedBy != "" {
		req.Header.Set(HeaderCreatedBy, a.CreatedBy)
	}
	if a.Reason != "" {
		req.Header.Set(HeaderReason, a.Reason)
	}
	if a.Comment != "" {
		req.Header.Set(HeaderComment, a.Comment)
	}
}

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if
	// BaseURL is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts []byte, string, or any value that
	// will be JSON-encoded.
	Body any
	// Audit carries billing audit metadata, mapped to X-Killbill-* headers.
	Audit *Audit
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Header returns a response header by name, case-insensitively.
func (r *Response) Header(name string) string {
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// Location returns the Location header, or "" when absent.
func (r *Response) Location() string {
	return r.Header("Location")
}
