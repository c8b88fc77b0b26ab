package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hrdesk.co.kr/hrdesk/kakao/v1/common"
)

type Response struct {
	Data []byte
}

// Transport handles low-level HTTP and the KakaoAK authorization header.
type Transport struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewTransport creates a transport with a fixed per-request timeout.
func NewTransport(baseURL, apiKey string, timeout time.Duration) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", path, err)
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get sends a GET request and returns the body of a 2xx response.
func (t *Transport) Get(ctx context.Context, path string, query map[string]string) (*Response, error) {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	if t.APIKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("KakaoAK %s", t.APIKey))
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		apiErr := &common.APIError{StatusCode: resp.StatusCode, Path: path, Body: string(b)}
		_ = json.Unmarshal(b, apiErr)
		return nil, apiErr
	}

	return &Response{
		Data: b,
	}, nil
}
