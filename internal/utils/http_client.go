package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	clientRetries      = 2
	clientRetryWait    = 100 * time.Millisecond
	clientRetryMaxWait = time.Second
)

// HTTPClient embeds *resty.Client bound to the API base URL.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL. Each attempt is limited
// by timeout. GET requests are retried when the server answers 503 or the
// connection fails; other methods are sent once.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		}).
		SetRetryCount(clientRetries).
		SetRetryWaitTime(clientRetryWait).
		SetRetryMaxWaitTime(clientRetryMaxWait).
		AddRetryCondition(retryIdempotent)

	return &HTTPClient{Client: client}
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || resp.StatusCode() == http.StatusServiceUnavailable
}
