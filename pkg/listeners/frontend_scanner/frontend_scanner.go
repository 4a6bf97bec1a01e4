package frontend_scanner

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/app/scripts"
	"github.com/NeuralTrust/FrontEndScanner/pkg/config"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/htmlx"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/httpx"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/listeneriface"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/prometheus"
	"github.com/NeuralTrust/FrontEndScanner/pkg/types"
	"github.com/sirupsen/logrus"
)

const (
	ListenerName  = "frontend_scanner"
	ListenerOrder = 0
)

var htmlMediaTypes = map[string]struct{}{
	"text/html":             {},
	"application/xhtml+xml": {},
}

// FrontEndScannerListener injects the scanner payload into HTML responses.
type FrontEndScannerListener struct {
	logger   *logrus.Logger
	toggle   *config.Toggle
	composer scripts.Composer
}

func NewFrontEndScannerListener(
	logger *logrus.Logger,
	toggle *config.Toggle,
	composer scripts.Composer,
) listeneriface.ProxyListener {
	return &FrontEndScannerListener{
		logger:   logger,
		toggle:   toggle,
		composer: composer,
	}
}

func (l *FrontEndScannerListener) Name() string {
	return ListenerName
}

func (l *FrontEndScannerListener) Order() int {
	return ListenerOrder
}

func (l *FrontEndScannerListener) OnHttpRequestSend(_ context.Context, _ *types.RequestContext) bool {
	return true
}

// OnHttpResponseReceive never vetoes delivery. Any failure leaves the
// response exactly as it arrived.
func (l *FrontEndScannerListener) OnHttpResponseReceive(
	ctx context.Context,
	req *types.RequestContext,
	resp *types.ResponseContext,
) bool {
	if !l.toggle.Enabled() {
		prometheus.InjectionsTotal.WithLabelValues(prometheus.OutcomeDisabled).Inc()
		return true
	}
	// HEAD responses and 204/304 carry headers only
	if !IsHTML(resp.Header("Content-Type")) || len(resp.Body) == 0 {
		prometheus.InjectionsTotal.WithLabelValues(prometheus.OutcomeSkipped).Inc()
		return true
	}

	start := time.Now()
	outcome, err := l.inject(ctx, resp)
	prometheus.InjectionsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		entry := l.logger.WithError(err)
		if req != nil {
			entry = entry.WithField("url", req.URL)
		}
		entry.Error("front-end scanner injection skipped")
		return true
	}
	prometheus.InjectionLatency.Observe(prometheus.SinceMillis(start))
	return true
}

func (l *FrontEndScannerListener) inject(ctx context.Context, resp *types.ResponseContext) (outcome string, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = prometheus.OutcomeInternalError
			err = fmt.Errorf("panic while injecting: %v", r)
		}
	}()

	body, decoded, err := httpx.DecodeChain(resp.Header("Content-Encoding"), resp.Body)
	if err != nil {
		return prometheus.OutcomeDecodeError, err
	}

	offset, err := htmlx.HeadInsertionOffset(body)
	if err != nil {
		if errors.Is(err, htmlx.ErrHeadNotFound) {
			return prometheus.OutcomeNoHead, err
		}
		return prometheus.OutcomeInternalError, err
	}

	payload, err := l.composer.Compose(ctx)
	if err != nil {
		return prometheus.OutcomeComposeError, err
	}

	newBody := htmlx.Splice(body, offset, htmlx.InlineScript(payload))

	// body first, then framing
	resp.Body = newBody
	if decoded {
		resp.DelHeader("Content-Encoding")
	}
	resp.SetContentLength()
	return prometheus.OutcomeInjected, nil
}

// IsHTML reports whether a Content-Type value names an HTML document.
func IsHTML(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	_, ok := htmlMediaTypes[strings.ToLower(mediaType)]
	return ok
}
