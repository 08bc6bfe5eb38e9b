package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type testError struct {
	Message string `json:"message"`
}

func TestGetDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "thing", "value": 7}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	successResp, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/items").
		WithQueryParams(map[string]string{"id": "42"}).
		WithSuccessResp(&testPayload{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)

	payload := successResp.(*testPayload)
	assert.Equal(t, "thing", payload.Name)
	assert.Equal(t, 7, payload.Value)
}

func TestGetNon2xxReturnsStatusErrorWithDecodedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "no such item"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/items").
		WithSuccessResp(&testPayload{}).
		WithErrorResp(&testError{}).
		Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	assert.Equal(t, "no such item", errResp.(*testError).Message)
}

func TestGetBinaryBody(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(raw)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	var body []byte
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/icon.png").
		WithSuccessResp(&body).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, raw, body)
}

func TestGetPlainTextBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	var body string
	_, _, _, err := client.Request().
		WithMethod(GET).
		WithPath("/ping").
		WithSuccessResp(&body).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, "pong", body)
}

func TestBackoffRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "ok", "value": 1}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	successResp, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/flaky").
		WithSuccessResp(&testPayload{}).
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialDelay: time.Millisecond, Multiplier: 1}).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", successResp.(*testPayload).Name)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestBackoffDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/bad").
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialDelay: time.Millisecond, Multiplier: 1}).
		Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestBuildURLNormalizesSlashes(t *testing.T) {
	client := NewHttpClient("http://example.test/base/", ClientOptions{})

	assert.Equal(t, "http://example.test/base/weather", client.buildURL("/weather"))
	assert.Equal(t, "http://example.test/base/weather", client.buildURL("weather"))
	assert.Equal(t, "http://example.test/base", client.buildURL(""))
}
