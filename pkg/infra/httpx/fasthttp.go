package httpx

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 60 * time.Second
	DefaultMaxConnsPerHost     = 512
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultReadBufferSize      = 16 * 1024
	DefaultWriteBufferSize     = 4096
	DefaultMaxResponseBodySize = 100 * 1024 * 1024 // 100MB
)

// UpstreamOptions configures the client used to reach origin servers.
type UpstreamOptions struct {
	Timeout             time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxRedirects        int
	MaxResponseBodySize int
}

type UpstreamOption func(*UpstreamOptions)

func WithTimeout(timeout time.Duration) UpstreamOption {
	return func(o *UpstreamOptions) {
		o.Timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) UpstreamOption {
	return func(o *UpstreamOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(max int) UpstreamOption {
	return func(o *UpstreamOptions) {
		o.MaxConnsPerHost = max
	}
}

// WithMaxRedirects makes the client follow up to n redirects itself instead
// of handing 3xx responses back to the browser.
func WithMaxRedirects(n int) UpstreamOption {
	return func(o *UpstreamOptions) {
		o.MaxRedirects = n
	}
}

func WithMaxResponseBodySize(size int) UpstreamOption {
	return func(o *UpstreamOptions) {
		o.MaxResponseBodySize = size
	}
}

//go:generate mockery --name=Upstream --dir=. --output=./mocks --filename=upstream_mock.go --case=underscore --with-expecter
type Upstream interface {
	Do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error
}

type upstreamClient struct {
	client  *fasthttp.Client
	options UpstreamOptions
}

func NewUpstream(opts ...UpstreamOption) Upstream {
	options := UpstreamOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(&options)
	}

	client := &fasthttp.Client{
		MaxConnsPerHost:          options.MaxConnsPerHost,
		MaxIdleConnDuration:      options.MaxIdleConnDuration,
		ReadBufferSize:           DefaultReadBufferSize,
		WriteBufferSize:          DefaultWriteBufferSize,
		MaxResponseBodySize:      options.MaxResponseBodySize,
		ReadTimeout:              options.Timeout,
		WriteTimeout:             options.Timeout,
		NoDefaultUserAgentHeader: true,
	}
	if options.InsecureSkipVerify {
		client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}

	return &upstreamClient{client: client, options: options}
}

func (u *upstreamClient) Do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline := time.Now().Add(u.options.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if u.options.MaxRedirects > 0 {
		return u.client.DoRedirects(req, resp, u.options.MaxRedirects)
	}
	return u.client.DoDeadline(req, resp, deadline)
}
