package resource

import "net/url"

// BuildQuery encodes query parameters into a "?"-prefixed, URL-encoded
// query string. Empty input yields the empty string.
func BuildQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "?" + q.Encode()
}
