package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/39C-wallenstein/torn-api/config"
)

const (
	contentType              = "application/json"
	errFailedToCreateRequest = "failed to create request: %w"
	errFailedToMakeRequest   = "failed to make request: %w"
	errFailedToRead          = "failed to read response: %w"
	errFailedToSetupProxy    = "failed to set up proxy: %w"
	errHTTPStatus            = "http status: %d"
	headerAccept             = "Accept"
	headerUserAgent          = "User-Agent"
)

type Caller interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type RestCaller struct {
	client *http.Client
	config config.Config
}

// Ensure RestCaller implements Caller interface
var _ Caller = &RestCaller{}

func New(cfg config.Config) (*RestCaller, error) {
	client, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	return &RestCaller{
		client: client,
		config: cfg,
	}, nil
}

type CallerFactory func(cfg config.Config) (Caller, error)

func RealCallerFactory(cfg config.Config) (Caller, error) {
	return New(cfg)
}

// Get performs a GET against url and returns the raw body. Server side
// failures (5xx) and HTTP level throttling (429) are retried with a
// doubling delay, up to the configured number of retries.
func (r *RestCaller) Get(ctx context.Context, url string) ([]byte, error) {
	var result []byte

	err := Retry(ctx, r.config.MaxRetries+1, time.Duration(r.config.RetryDelay)*time.Second, func() error {
		body, err := r.do(ctx, url)
		if err != nil {
			return err
		}
		result = body
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *RestCaller) do(ctx context.Context, url string) ([]byte, error) {
	req, err := r.newRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf(errFailedToCreateRequest, err)
	}

	response, err := r.client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf(errFailedToMakeRequest, err)}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf(errFailedToRead, err)
	}

	switch {
	case response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests:
		return nil, &RetryableError{Err: fmt.Errorf(errHTTPStatus, response.StatusCode)}
	case response.StatusCode < 200 || response.StatusCode >= 300:
		return nil, fmt.Errorf(errHTTPStatus, response.StatusCode)
	}

	return body, nil
}

func (r *RestCaller) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set(headerAccept, contentType)
	if r.config.UserAgent != "" {
		req.Header.Set(headerUserAgent, r.config.UserAgent)
	}

	return req, nil
}

func newHTTPClient(cfg config.Config) (*http.Client, error) {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if cfg.SkipTLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	if err := configureProxy(transport, cfg); err != nil {
		return nil, fmt.Errorf(errFailedToSetupProxy, err)
	}

	return &http.Client{
		Timeout:   time.Duration(cfg.Timeout) * time.Second,
		Transport: transport,
	}, nil
}
