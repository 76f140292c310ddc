package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"uptime/internal/api"
	"uptime/internal/api/handler/v1handler"
	"uptime/internal/config"
	mockmonitor "uptime/internal/monitor/mock"
	"uptime/pkg/domain"
	"uptime/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment})
	m.Run()
}

func newTestServer(t *testing.T) (*httptest.Server, *mockmonitor.MockService) {
	t.Helper()

	svc := mockmonitor.NewMockService(gomock.NewController(t))
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "monitor_test_total"}))

	srv := httptest.NewServer(api.NewHandler(api.Deps{
		Deps:     v1handler.Deps{Monitor: svc},
		Gatherer: reg,
	}, api.Options{
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"http://localhost:5173"},
	}))
	t.Cleanup(srv.Close)

	return srv, svc
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.HTTP.Addr = ":9090"
	cfg.HTTP.RequestTimeout = 5 * time.Second
	cfg.HTTP.MetricsPath = "/m"
	cfg.HTTP.AllowedOrigins = []string{"http://localhost"}

	opts := api.NewOptions(&cfg)
	require.Equal(t, ":9090", opts.Addr)
	require.Equal(t, 5*time.Second, opts.RequestTimeout)
	require.Equal(t, "/m", opts.MetricsPath)
	require.Equal(t, []string{"http://localhost"}, opts.AllowedOrigins)

	srv := api.NewServer(api.Deps{}, opts)
	require.Equal(t, ":9090", srv.Addr)
	require.NotNil(t, srv.Handler)
}

func TestServer_Routes(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().Domains(gomock.Any()).Return([]domain.Domain{{ID: 1, Normalized: "example.com"}}, nil)

	res, body := get(t, srv.URL+"/domains")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `[{"id": 1, "domain": "example.com"}]`, body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, body = get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "monitor_test_total")

	res, body = get(t, srv.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/add_domain")

	res, _ = get(t, srv.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, srv.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, srv.URL+"/unknown")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	res, _ := get(t, srv.URL+"/add_domain")
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/add_domain", nil) //nolint: noctx
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, "http://localhost:5173", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
}

func TestServer_RecoversPanics(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().Domains(gomock.Any()).DoAndReturn(func(any) ([]domain.Domain, error) {
		panic("boom")
	})

	res, _ := get(t, srv.URL+"/domains")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
