package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/quake-query-service/internal/adapter/http"
	"github.com/couchcryptid/quake-query-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-query-service/internal/domain"
	"github.com/couchcryptid/quake-query-service/internal/query"
)

type mockRunner struct {
	res   query.Result
	err   error
	start string
	end   string
}

func (m *mockRunner) Run(_ context.Context, start, end string) (query.Result, error) {
	m.start = start
	m.end = end
	if m.err != nil {
		return query.Result{}, m.err
	}
	return m.res, nil
}

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(runner *mockRunner, readyErr error) *httpadapter.Server {
	if runner == nil {
		runner = &mockRunner{}
	}
	return httpadapter.NewServer(":0", runner, &mockReadiness{err: readyErr}, slog.Default())
}

func doGet(t *testing.T, srv *httpadapter.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestQueryEndpoint_ReturnsReport(t *testing.T) {
	runner := &mockRunner{res: query.Result{
		ID:         "q-1",
		Report:     "Terremotos:\n\nFecha: 1970-01-01 00:00:00, Magnitud: 5.0, Ubicación: x\n",
		EventCount: 1,
	}}
	srv := newTestServer(runner, nil)

	rec := doGet(t, srv, "/api/v1/earthquakes?starttime=2024-05-01&endtime=2024-05-10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "q-1", rec.Header().Get("X-Query-ID"))
	assert.Equal(t, runner.res.Report, rec.Body.String())
	assert.Equal(t, "2024-05-01", runner.start)
	assert.Equal(t, "2024-05-10", runner.end)
}

func TestQueryEndpoint_MissingParams(t *testing.T) {
	for _, target := range []string{
		"/api/v1/earthquakes",
		"/api/v1/earthquakes?starttime=2024-05-01",
		"/api/v1/earthquakes?endtime=2024-05-10",
	} {
		t.Run(target, func(t *testing.T) {
			rec := doGet(t, newTestServer(nil, nil), target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], "required")
		})
	}
}

func TestQueryEndpoint_ValidationErrorIs400(t *testing.T) {
	runner := &mockRunner{err: fmt.Errorf("%w: %q", domain.ErrInvalidFormat, "bogus")}
	rec := doGet(t, newTestServer(runner, nil), "/api/v1/earthquakes?starttime=bogus&endtime=2024-05-10")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "YYYY-MM-DD")
}

func TestQueryEndpoint_UpstreamErrorsAre502(t *testing.T) {
	cases := map[string]error{
		"status":    &usgs.StatusError{Code: 500},
		"transport": usgs.ErrTransport,
		"malformed": domain.ErrMalformedResponse,
	}

	for name, errCase := range cases {
		t.Run(name, func(t *testing.T) {
			runner := &mockRunner{err: errCase}
			rec := doGet(t, newTestServer(runner, nil), "/api/v1/earthquakes?starttime=2024-05-01&endtime=2024-05-10")
			assert.Equal(t, http.StatusBadGateway, rec.Code)
		})
	}
}

func TestHealthzReturns200(t *testing.T) {
	rec := doGet(t, newTestServer(nil, nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := doGet(t, newTestServer(nil, nil), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := doGet(t, newTestServer(nil, fmt.Errorf("not ready yet")), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(nil, nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
