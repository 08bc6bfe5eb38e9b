package api

import (
	"skycast/pkg/http"
	"skycast/pkg/log"
)

// zapHTTPLogger adapts pkg/log to the pkg/http logging interface.
type zapHTTPLogger struct{}

var _ http.HTTPLogger = zapHTTPLogger{}

// NewHTTPLogger returns the logger gateways plug into their HTTP clients.
func NewHTTPLogger() http.HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string) {
	log.Debugf("%s %s", method, url)
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Debugf("%s %s -> %d (%dms)", method, url, httpStatus, latency)
}

func (zapHTTPLogger) LogResponseError(method, url string, httpStatus int, latency int64, err error) {
	if err != nil {
		log.Warnf("%s %s failed after %dms: %v", method, url, latency, err)
		return
	}
	log.Warnf("%s %s -> %d (%dms)", method, url, httpStatus, latency)
}

func (zapHTTPLogger) LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Infof("retrying %s %s (%d/%d), status %d: %v", method, url, retryCount, maxRetries, httpStatus, err)
}
