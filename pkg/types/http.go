package types

import (
	"context"
	"net/http"
	"strconv"
)

// RequestContext is the view of an outbound request handed to proxy listeners.
type RequestContext struct {
	Context   context.Context
	RequestID string
	Method    string
	URL       string
	Headers   map[string][]string
	Body      []byte
	IP        string
}

// ResponseContext is the mutable view of an inbound response. Listeners own
// it for the duration of their call and must leave Body and Content-Length
// consistent before returning.
type ResponseContext struct {
	Context            context.Context
	RequestID          string
	HistoryReferenceID int64
	Headers            map[string][]string
	Body               []byte
	StatusCode         int
	// TargetLatency is the upstream round trip in milliseconds.
	TargetLatency float64
}

func (r *RequestContext) Header(name string) string {
	return headerValue(r.Headers, name)
}

func (r *ResponseContext) Header(name string) string {
	return headerValue(r.Headers, name)
}

// SetHeader replaces every case variant of name with a single value.
func (r *ResponseContext) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string][]string)
	}
	deleteHeader(r.Headers, name)
	r.Headers[http.CanonicalHeaderKey(name)] = []string{value}
}

func (r *ResponseContext) DelHeader(name string) {
	deleteHeader(r.Headers, name)
}

// SetContentLength overwrites the declared body length with len(Body).
func (r *ResponseContext) SetContentLength() {
	r.SetHeader("Content-Length", strconv.Itoa(len(r.Body)))
}

// ContentLength returns the declared body length, or -1 when absent or invalid.
func (r *ResponseContext) ContentLength() int {
	v := r.Header("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func headerValue(headers map[string][]string, name string) string {
	if values, ok := headers[name]; ok && len(values) > 0 {
		return values[0]
	}
	canonical := http.CanonicalHeaderKey(name)
	for k, values := range headers {
		if http.CanonicalHeaderKey(k) == canonical && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func deleteHeader(headers map[string][]string, name string) {
	canonical := http.CanonicalHeaderKey(name)
	for k := range headers {
		if http.CanonicalHeaderKey(k) == canonical {
			delete(headers, k)
		}
	}
}
