package http

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/httpx"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/prometheus"
	"github.com/NeuralTrust/FrontEndScanner/pkg/listeners"
	"github.com/NeuralTrust/FrontEndScanner/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Hop-by-hop headers are meaningful only for a single transport-level
// connection and are never forwarded.
var hopByHopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type forwardedHandler struct {
	logger    *logrus.Logger
	upstream  httpx.Upstream
	breaker   httpx.CircuitBreaker
	listeners listeners.Manager
	recorder  history.Recorder
}

// ForwardedHandlerDeps contains all dependencies for ForwardedHandler.
// Recorder is optional.
type ForwardedHandlerDeps struct {
	Logger    *logrus.Logger
	Upstream  httpx.Upstream
	Breaker   httpx.CircuitBreaker
	Listeners listeners.Manager
	Recorder  history.Recorder
}

func NewForwardedHandler(deps ForwardedHandlerDeps) Handler {
	return &forwardedHandler{
		logger:    deps.Logger,
		upstream:  deps.Upstream,
		breaker:   deps.Breaker,
		listeners: deps.Listeners,
		recorder:  deps.Recorder,
	}
}

func (h *forwardedHandler) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()
	req := h.requestContext(c)
	ctx = context.WithValue(ctx, common.RequestIDContextKey, req.RequestID)
	req.Context = ctx

	if !h.listeners.OnHttpRequestSend(ctx, req) {
		return h.reject(c, req, "request dropped by proxy listener")
	}

	resp, err := h.forwardRequest(ctx, req)
	if err != nil {
		h.logger.WithError(err).WithField("url", req.URL).Error("upstream request failed")
		prometheus.ProxyRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(fiber.StatusBadGateway)).Inc()
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream request failed"})
	}

	h.logger.WithFields(logrus.Fields{
		"url":        req.URL,
		"status":     resp.StatusCode,
		"latency_ms": resp.TargetLatency,
		"request_id": req.RequestID,
	}).Debug("upstream responded")

	h.recordHistory(ctx, req, resp)

	if !h.listeners.OnHttpResponseReceive(ctx, req, resp) {
		return h.reject(c, req, "response dropped by proxy listener")
	}

	prometheus.ProxyRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return h.writeResponse(c, resp)
}

func (h *forwardedHandler) requestContext(c *fiber.Ctx) *types.RequestContext {
	headers := make(map[string][]string)
	c.Request().Header.VisitAll(func(key, value []byte) {
		k := string(key)
		headers[k] = append(headers[k], string(value))
	})
	body := make([]byte, len(c.Body()))
	copy(body, c.Body())

	requestID := c.Get(common.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return &types.RequestContext{
		RequestID: requestID,
		Method:    c.Method(),
		URL:       targetURL(c),
		Headers:   headers,
		Body:      body,
		IP:        c.IP(),
	}
}

// targetURL accepts both absolute-form proxy requests and origin-form
// requests addressed through the Host header.
func targetURL(c *fiber.Ctx) string {
	uri := c.Request().URI()
	if len(uri.Host()) == 0 {
		uri.SetHostBytes(c.Request().Header.Host())
	}
	return string(uri.FullURI())
}

func (h *forwardedHandler) forwardRequest(ctx context.Context, req *types.RequestContext) (*types.ResponseContext, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	h.buildFastHTTPRequest(fastReq, req)

	h.logger.Debug("sending request to " + req.URL)
	start := time.Now()
	err := h.breaker.Execute(func() error {
		return h.upstream.Do(ctx, fastReq, fastResp)
	})
	latency := prometheus.SinceMillis(start)
	prometheus.UpstreamLatency.Observe(latency)
	if err != nil {
		return nil, fmt.Errorf("request failed to %s: %w", req.URL, err)
	}

	status := fastResp.StatusCode()
	if status <= 0 || status >= 600 {
		return nil, fmt.Errorf("invalid status code received: %d", status)
	}

	resp := createResponse(fastResp)
	resp.Context = ctx
	resp.RequestID = req.RequestID
	resp.TargetLatency = latency
	return resp, nil
}

func (h *forwardedHandler) buildFastHTTPRequest(fastReq *fasthttp.Request, req *types.RequestContext) {
	fastReq.SetRequestURI(req.URL)
	fastReq.Header.SetMethod(req.Method)
	if len(req.Body) > 0 {
		fastReq.SetBodyRaw(req.Body)
	}
	for k, vals := range req.Headers {
		if strings.EqualFold(k, "Host") || isHopByHop(k) {
			continue
		}
		for _, v := range vals {
			fastReq.Header.Add(k, v)
		}
	}
}

func createResponse(fastResp *fasthttp.Response) *types.ResponseContext {
	body := make([]byte, len(fastResp.Body()))
	copy(body, fastResp.Body())

	response := &types.ResponseContext{
		StatusCode: fastResp.StatusCode(),
		Headers:    make(map[string][]string, fastResp.Header.Len()),
		Body:       body,
	}
	fastResp.Header.VisitAll(func(key, value []byte) {
		k := string(key)
		response.Headers[k] = append(response.Headers[k], string(value))
	})
	return response
}

func (h *forwardedHandler) recordHistory(ctx context.Context, req *types.RequestContext, resp *types.ResponseContext) {
	if h.recorder == nil {
		return
	}
	id, err := h.recorder.Record(ctx, history.Reference{
		Method:     req.Method,
		URL:        req.URL,
		StatusCode: resp.StatusCode,
	})
	if err != nil {
		h.logger.WithError(err).Warn("failed to record history reference")
		return
	}
	resp.HistoryReferenceID = id
	resp.SetHeader(common.HistoryIDHeader, strconv.FormatInt(id, 10))
}

func (h *forwardedHandler) writeResponse(c *fiber.Ctx, resp *types.ResponseContext) error {
	for k, vals := range resp.Headers {
		// framing is derived from the final body by fasthttp
		if isHopByHop(k) || strings.EqualFold(k, "Content-Length") {
			continue
		}
		for i, v := range vals {
			if i == 0 {
				c.Set(k, v)
				continue
			}
			c.Response().Header.Add(k, v)
		}
	}
	c.Status(resp.StatusCode)
	return c.Send(resp.Body)
}

func (h *forwardedHandler) reject(c *fiber.Ctx, req *types.RequestContext, reason string) error {
	h.logger.WithField("url", req.URL).Debug(reason)
	prometheus.ProxyRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(fiber.StatusForbidden)).Inc()
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": reason})
}

func isHopByHop(name string) bool {
	for _, h := range hopByHopHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}
