package listeneriface

import (
	"context"

	"github.com/NeuralTrust/FrontEndScanner/pkg/types"
)

//go:generate mockery --name=ProxyListener --dir=. --output=./mocks --filename=proxy_listener_mock.go --case=underscore --with-expecter
type ProxyListener interface {
	Name() string
	// Order positions the listener in the chain. Lower values run first.
	Order() int
	// OnHttpRequestSend runs before the request is forwarded upstream.
	// Returning false stops the remaining request listeners.
	OnHttpRequestSend(ctx context.Context, req *types.RequestContext) bool
	// OnHttpResponseReceive runs after the upstream response has been read and
	// may rewrite it in place. Returning false stops the remaining listeners.
	OnHttpResponseReceive(ctx context.Context, req *types.RequestContext, resp *types.ResponseContext) bool
}
