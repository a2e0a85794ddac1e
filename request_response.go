package f1data

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// RequestDescriptor describes a single GET against one of the upstream APIs.
// Descriptors are immutable per call: adapters build a fresh one for every
// fetch.
type RequestDescriptor struct {
	BaseURL    string
	Path       string
	Query      map[string]string
	Timeout    time.Duration
	MaxRetries int
}

// URL renders the full request URL with the query parameters encoded.
func (d *RequestDescriptor) URL() string {
	full := strings.TrimRight(d.BaseURL, "/") + d.Path
	if len(d.Query) == 0 {
		return full
	}
	q := url.Values{}
	for k, v := range d.Query {
		q.Set(k, v)
	}
	return full + "?" + q.Encode()
}

// RawResponse is the transport's view of one completed request.
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Decode unmarshals the response body into v. JSON-typed responses are parsed
// directly; anything else is still attempted as JSON, because some endpoints
// mislabel their content type.
func (r *RawResponse) Decode(v interface{}) error {
	if strings.Contains(r.ContentType, "application/json") {
		return json.Unmarshal(r.Body, v)
	}
	return json.Unmarshal([]byte(strings.TrimSpace(string(r.Body))), v)
}
