package router

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	handlers "github.com/NeuralTrust/FrontEndScanner/pkg/handlers/http"
	"github.com/NeuralTrust/FrontEndScanner/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	body string
}

func (h stubHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(h.body)
}

func newTransports() (*middleware.Transport, handlers.HandlerTransport) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cors := middleware.NewCORSGlobalMiddleware([]string{"*"}, []string{"GET", "POST", "OPTIONS"}, nil, false, nil, "600")
	return &middleware.Transport{
			PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
			CORSMiddleware:         cors,
			SecurityMiddleware:     middleware.NewSecurityMiddleware(logger, ""),
		}, handlers.HandlerTransport{
			ForwardedHandler:  stubHandler{body: "forwarded"},
			CallbackHandler:   stubHandler{body: "callback"},
			ActionHandler:     stubHandler{body: "action"},
			GetVersionHandler: stubHandler{body: "version"},
		}
}

func readBody(t *testing.T, app *fiber.App, method, target string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header.Get("Content-Security-Policy")
}

func TestAPIRouter_Routes(t *testing.T) {
	mw, ht := newTransports()
	app := fiber.New()
	require.NoError(t, NewAPIRouter(mw, ht).BuildRoutes(app))

	status, body, csp := readBody(t, app, "POST", common.CallbackPath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "callback", body)
	assert.Equal(t, common.ContentSecurityPolicy, csp)

	status, body, _ = readBody(t, app, "GET", "/JSON/frontEndScanner/action/getScripts")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "action", body)

	status, body, _ = readBody(t, app, "POST", "/JSON/frontEndScanner/action/getScripts")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "action", body)

	status, body, _ = readBody(t, app, "GET", VersionPath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "version", body)

	status, body, _ = readBody(t, app, "GET", HealthPath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestAPIRouter_CallbackPreflight(t *testing.T) {
	mw, ht := newTransports()
	app := fiber.New()
	require.NoError(t, NewAPIRouter(mw, ht).BuildRoutes(app))

	req := httptest.NewRequest("OPTIONS", common.CallbackPath, nil)
	req.Header.Set("Origin", "https://site.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
}

func TestAPIRouter_CallbackAllowsCrossOriginPost(t *testing.T) {
	mw, ht := newTransports()
	app := fiber.New()
	require.NoError(t, NewAPIRouter(mw, ht).BuildRoutes(app))

	req := httptest.NewRequest("POST", common.CallbackPath, nil)
	req.Header.Set("Origin", "https://site.test")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "callback", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, common.ContentSecurityPolicy, resp.Header.Get("Content-Security-Policy"))
}

func TestAPIRouter_MissingHandlers(t *testing.T) {
	mw, _ := newTransports()
	err := NewAPIRouter(mw, handlers.HandlerTransport{}).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrMissingHandler)
}

func TestProxyRouter_ForwardsEveryPath(t *testing.T) {
	mw, ht := newTransports()
	app := fiber.New()
	require.NoError(t, NewProxyRouter(mw, ht).BuildRoutes(app))

	for _, target := range []string{"/", HealthPath, "/some/page.html"} {
		status, body, csp := readBody(t, app, "GET", target)
		assert.Equal(t, fiber.StatusOK, status, target)
		assert.Equal(t, "forwarded", body, target)
		assert.Empty(t, csp, target)
	}

	req := httptest.NewRequest("GET", "/page", nil)
	req.Header.Set("Origin", "https://site.test")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestProxyRouter_MissingHandler(t *testing.T) {
	mw, _ := newTransports()
	err := NewProxyRouter(mw, handlers.HandlerTransport{}).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrMissingHandler)
}
