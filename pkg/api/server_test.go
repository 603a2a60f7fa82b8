package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_HealthzAndMetrics(t *testing.T) {
	r := NewRouter(newFakeStore(), testMetrics)

	for _, path := range []string{"/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestRouter_KeysRoundTrip(t *testing.T) {
	r := NewRouter(newFakeStore(), testMetrics)

	putBody, err := json.Marshal(PutRequest{
		Tuple: []interface{}{"k"},
		Value: base64.StdEncoding.EncodeToString([]byte("v")),
	})
	require.NoError(t, err)

	putReq := httptest.NewRequest(http.MethodPut, "/v1/keys", bytes.NewReader(putBody))
	putW := httptest.NewRecorder()
	r.ServeHTTP(putW, putReq)
	assert.Equal(t, http.StatusOK, putW.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/v1/keys?tuple=%5B%22k%22%5D", nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	assert.Equal(t, http.StatusOK, getW.Code)

	delReq := httptest.NewRequest(http.MethodDelete, "/v1/keys?tuple=%5B%22k%22%5D", nil)
	delW := httptest.NewRecorder()
	r.ServeHTTP(delW, delReq)
	assert.Equal(t, http.StatusOK, delW.Code)

	missReq := httptest.NewRequest(http.MethodGet, "/v1/keys?tuple=%5B%22k%22%5D", nil)
	missW := httptest.NewRecorder()
	r.ServeHTTP(missW, missReq)
	assert.Equal(t, http.StatusNotFound, missW.Code)
}

func TestStartServer_RejectsEmptyAddr(t *testing.T) {
	err := StartServer(newFakeStore(), ServerConfig{})
	assert.Error(t, err)
}

func TestRouter_SwaggerDocNotRegistered(t *testing.T) {
	r := NewRouter(newFakeStore(), testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/swagger/swagger.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
