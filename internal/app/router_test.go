package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/masterdata/companies"
	"github.com/biztime/biztime/internal/masterdata/industries"
	"github.com/biztime/biztime/internal/observability"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func newTestRouter(t *testing.T, pool pgxmock.PgxPoolIface, cfg *Config) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg == nil {
		cfg = &Config{RateLimitPerMinute: 0}
	}
	return NewRouter(RouterParams{
		Logger:            logger,
		Config:            cfg,
		Pool:              pool,
		CompaniesHandler:  companies.NewHandler(logger, companies.NewService(companies.NewRepository(pool))),
		IndustriesHandler: industries.NewHandler(logger, industries.NewService(industries.NewRepository(pool), industries.NewAssociationRepository(pool))),
		Metrics:           observability.NewMetrics(),
	})
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestHealthz(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectPing()
	router := newTestRouter(t, pool, nil)

	rr := serve(router, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestHealthzDatabaseDown(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectPing().WillReturnError(errors.New("connection refused"))
	router := newTestRouter(t, pool, nil)

	rr := serve(router, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
}

func TestRoutesShareCompaniesPrefix(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(`SELECT code, name, description FROM companies`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).AddRow("ibm", "IBM", nil))
	label := "Technology"
	pool.ExpectQuery(`RIGHT JOIN companies`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).AddRow("ibm", &label))
	router := newTestRouter(t, pool, nil)

	rr := serve(router, http.MethodGet, "/companies")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"companies":[{"code":"ibm","name":"IBM","description":null}]}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/companies/industries/list")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"industries":{"Technology":["ibm"]}}`, rr.Body.String())
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUnknownRouteIsProblem(t *testing.T) {
	router := newTestRouter(t, newMockPool(t), nil)

	rr := serve(router, http.MethodGet, "/invoices")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectPing()
	router := newTestRouter(t, pool, nil)
	serve(router, http.MethodGet, "/healthz")

	rr := serve(router, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `biztime_http_requests_total{code="200",route="/healthz"} 1`)
}

func TestRateLimit(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectPing()
	pool.ExpectPing()
	router := newTestRouter(t, pool, &Config{RateLimitPerMinute: 2})

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/healthz").Code)
	}
	rr := serve(router, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "rate limit exceeded")
	assert.NoError(t, pool.ExpectationsWereMet(), "the limited request never reaches the database")
}
