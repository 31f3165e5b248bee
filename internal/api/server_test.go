package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"handi/internal/api"
	"handi/internal/api/handler/v1handler"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T, pprof bool) *httptest.Server {
	t.Helper()

	srv, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		Pprof:             pprof,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func send(t *testing.T, method, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestLoadSpec(t *testing.T) {
	spec, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	routes := api.SpecRoutes(spec)
	require.Contains(t, routes, "GET /v1/status")
	require.Contains(t, routes, "POST /v1/profiles/{id}/apply")
	require.Contains(t, routes, "GET /v1/stream")
}

// Every documented operation is routed and guarded by the bearer token.
func TestNewServer_SpecRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, false)

	spec, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	for _, route := range api.SpecRoutes(spec) {
		t.Run(route, func(t *testing.T) {
			method, path, _ := strings.Cut(route, " ")
			path = strings.ReplaceAll(path, "{id}", "8b0e2bb5-5a43-4a4b-9b7c-0c6c1c0fbb55")

			res := send(t, method, ts.URL+path)
			require.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestNewServer_Static(t *testing.T) {
	ts := newTestServer(t, false)

	res := send(t, http.MethodGet, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "openapi: 3.0.3")

	res = send(t, http.MethodGet, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = send(t, http.MethodGet, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = send(t, http.MethodGet, ts.URL+"/v1/unknown")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNewServer_Pprof(t *testing.T) {
	res := send(t, http.MethodGet, newTestServer(t, false).URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res = send(t, http.MethodGet, newTestServer(t, true).URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNewServer_Preflight(t *testing.T) {
	ts := newTestServer(t, false)

	res := send(t, http.MethodOptions, ts.URL+"/v1/status")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}
