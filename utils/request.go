package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type RestyClient struct {
	client *resty.Client
}

func NewRestyClient(retryCount int) *RestyClient {
	client := resty.New()
	client.SetTimeout(30*time.Second).
		SetRetryCount(retryCount).
		SetRetryWaitTime(time.Second).
		SetLogger(disableLogger{}).
		SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	return &RestyClient{client: client}
}

func (c *RestyClient) R() *resty.Request {
	return c.client.R()
}

// Download fetches url and returns the body of a 200 response.
func (c *RestyClient) Download(url string) ([]byte, error) {
	resp, err := c.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s: %v", url, resp.Status())
	}
	return resp.Body(), nil
}

type disableLogger struct{}

func (d disableLogger) Errorf(string, ...interface{}) {}
func (d disableLogger) Warnf(string, ...interface{})  {}
func (d disableLogger) Debugf(string, ...interface{}) {}
