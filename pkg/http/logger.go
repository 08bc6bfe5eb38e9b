package http

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, httpStatus int, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int)
}
