/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	config    *TestConfig
	endpoints *Endpoints
	logWriter io.Writer
}

// NewAPIClient creates a client for the given base URL with default settings.
func NewAPIClient(baseURL string) *APIClient {
	return NewAPIClientWithConfig(NewTestConfig(baseURL))
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	prefix := config.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}

	// The base URL is joined to paths verbatim, a trailing slash on the
	// base URL results in a double slash on the wire.
	return &APIClient{
		baseURL: config.BaseURL,
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(prefix),
		logWriter: ginkgo.GinkgoWriter,
	}
}

// SetHTTPClient replaces the transport used to send requests.
func (c *APIClient) SetHTTPClient(client HTTPDoer) {
	c.client = client
}

// SetLogWriter redirects request tracing, which defaults to the Ginkgo writer.
func (c *APIClient) SetLogWriter(w io.Writer) {
	c.logWriter = w
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	fmt.Fprintf(c.logWriter, "[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	fmt.Fprintf(c.logWriter, "TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// URL returns the absolute URL an endpoint resolves to.
func (c *APIClient) URL(endpoint Endpoint) (string, error) {
	path, err := c.endpoints.Resolve(endpoint)
	if err != nil {
		return "", err
	}

	return c.baseURL + path, nil
}

// doRequest sends the request and hands back the response untouched, the caller
// must close the body.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if c.config.LogRequests {
		fmt.Fprintf(c.logWriter, "[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses {
		// A failed read only affects the trace, the caller gets whatever
		// bytes did arrive.
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()

		if err != nil {
			c.logError(method, path, duration, traceParent, err, "reading response body")
		}

		if len(respBody) > 0 {
			fmt.Fprintf(c.logWriter, "[%s %s] response body: %s\n", method, path, string(respBody))
		}

		resp.Body = io.NopCloser(bytes.NewReader(respBody))
	}

	return resp, nil
}

// Post sends payload as a JSON body to the named endpoint. Any status code the
// server answers with is returned as is, only lookup and transport failures are
// reported as errors. An unknown endpoint fails before anything is sent.
func (c *APIClient) Post(ctx context.Context, endpoint Endpoint, payload interface{}) (*http.Response, error) {
	path, err := c.endpoints.Resolve(endpoint)
	if err != nil {
		return nil, fmt.Errorf("resolving endpoint: %w", err)
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body: %w", endpoint, err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", endpoint, err)
	}

	return resp, nil
}

// Login posts credentials to the login endpoint.
func (c *APIClient) Login(ctx context.Context, payload map[string]interface{}) (*http.Response, error) {
	return c.Post(ctx, EndpointLogin, payload)
}

// CreateUser posts a new user to the user endpoint.
func (c *APIClient) CreateUser(ctx context.Context, payload map[string]interface{}) (*http.Response, error) {
	return c.Post(ctx, EndpointUser, payload)
}
