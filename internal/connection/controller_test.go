package connection

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgateway/pkg/dbconn"
)

func newTestRouter(open dbconn.OpenFunc) *http.ServeMux {
	router := http.NewServeMux()
	service := NewService()
	service.open = open
	NewController(router, ControllerDeps{Service: service})
	return router
}

func postJSON(router *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return w
}

func TestTestConnectionSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	router := newTestRouter(func(ctx context.Context, creds *dbconn.Credentials) (*sql.DB, error) {
		assert.Equal(t, "db01:1433", creds.Server)
		assert.Equal(t, "master", creds.Database)
		return db, nil
	})

	w := postJSON(router, "/test-connection",
		`{"SERVER":"db01:1433","DATABASE":"master","USERNAME":"sa","PASSWORD":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"connected"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestConnectionFailure(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, creds *dbconn.Credentials) (*sql.DB, error) {
		return nil, &dbconn.ConnectError{Err: errors.New("dial tcp: i/o timeout")}
	})

	w := postJSON(router, "/test-connection",
		`{"SERVER":"db01","DATABASE":"master","USERNAME":"sa","PASSWORD":"bad"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Connection Error: dial tcp: i/o timeout"}`, w.Body.String())
}

func TestTestConnectionMissingFields(t *testing.T) {
	router := newTestRouter(func(ctx context.Context, creds *dbconn.Credentials) (*sql.DB, error) {
		t.Fatal("opener must not be called for invalid credentials")
		return nil, nil
	})

	w := postJSON(router, "/test-connection", `{"SERVER":"db01"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"SERVER, DATABASE and USERNAME are required"}`, w.Body.String())
}

func TestTestConnectionMalformedBody(t *testing.T) {
	router := newTestRouter(nil)

	w := postJSON(router, "/test-connection", `{"SERVER":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"invalid request body"}`, w.Body.String())
}
