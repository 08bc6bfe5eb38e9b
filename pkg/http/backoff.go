package http

import (
	"fmt"
	"net/http"
	"time"
)

// BackoffConfig controls retry behaviour for a request. A nil config means a
// single attempt with no retries.
type BackoffConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	Multiplier   float64
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// retryableStatus reports whether a status code is worth retrying.
// Client errors are final; the server will answer the same way again.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// doRequestWithBackoff wraps doRequest with exponential backoff. Transport
// errors and retryable statuses are retried up to MaxRetries times; any other
// outcome is returned immediately.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.doRequest(method, path, queryParams, headers, successResp, errorResp)
	}

	delay := backoff.InitialDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	multiplier := backoff.Multiplier
	if multiplier < 1 {
		multiplier = 2
	}

	var success, errResp any
	var status int
	var err error

	for attempt := 0; ; attempt++ {
		success, errResp, status, err = hc.doRequest(method, path, queryParams, headers, successResp, errorResp)
		if err == nil {
			return success, errResp, status, nil
		}

		if status != 0 && !retryableStatus(status) {
			return success, errResp, status, err
		}

		if attempt >= backoff.MaxRetries {
			return success, errResp, status, err
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), status, err, attempt+1, backoff.MaxRetries)
		}

		time.Sleep(delay)
		delay = time.Duration(float64(delay) * multiplier)
	}
}
