package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sqlgateway/configs"
)

func testApp() http.Handler {
	return App(&configs.Config{
		Port:           "8000",
		AllowedOrigins: []string{"*"},
	})
}

func TestHealth(t *testing.T) {
	app := testApp()

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestUnknownRoute(t *testing.T) {
	app := testApp()

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	app := testApp()

	r := httptest.NewRequest(http.MethodOptions, "/execute-sql", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutesAreRegistered(t *testing.T) {
	app := testApp()

	for _, path := range []string{"/test-connection", "/execute-sql", "/download"} {
		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))

		// invalid credentials, but the route itself must resolve
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}
