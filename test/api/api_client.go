/*
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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

const contentTypeJSON = "application/json"

var (
	// ErrUnexpectedBody is returned when a response body cannot be decoded.
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// CourierAPI is the set of courier operations the fixtures depend on.
//
//go:generate mockgen -source=api_client.go -destination=mock/courier_api.go -package=mock
type CourierAPI interface {
	RegisterCourier(ctx context.Context, courier Courier) (*Response, error)
	LoginCourier(ctx context.Context, credentials CourierCredentials) (*Response, error)
	DeleteCourier(ctx context.Context, id int) (*Response, error)
}

// Response is a fully read HTTP response.  Status codes are never interpreted
// by the client.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
}

// DecodeJSON unmarshals the body into out.
func (r *Response) DecodeJSON(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("%w: status=%d body=%q (trace ID: %s): %w", ErrUnexpectedBody, r.StatusCode, string(r.Body), r.TraceID, err)
	}

	return nil
}

func (r *Response) CreateResult() (*CreateResult, error) {
	var result CreateResult
	if err := r.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *Response) LoginResult() (*LoginResult, error) {
	var result LoginResult
	if err := r.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *Response) ErrorResult() (*ErrorResult, error) {
	var result ErrorResult
	if err := r.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	validator *ResponseValidator
}

// Ensure the interface is implemented.
var _ CourierAPI = &APIClient{}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) (*APIClient, error) {
	client := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		validator, err := NewResponseValidator()
		if err != nil {
			return nil, err
		}

		client.validator = validator
	}

	return client, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, msg string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, msg, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, msg string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, msg, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
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
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Content-Type", contentTypeJSON)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, response); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "validating response")
			return response, err
		}
	}

	return response, nil
}

// RegisterCourier creates a new courier.
func (c *APIClient) RegisterCourier(ctx context.Context, courier Courier) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.RegisterCourier(), courier)
	if err != nil {
		return resp, fmt.Errorf("registering courier: %w", err)
	}

	return resp, nil
}

// LoginCourier exchanges credentials for the courier's ID.
func (c *APIClient) LoginCourier(ctx context.Context, credentials CourierCredentials) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.LoginCourier(), credentials)
	if err != nil {
		return resp, fmt.Errorf("logging in courier: %w", err)
	}

	return resp, nil
}

func (c *APIClient) DeleteCourier(ctx context.Context, id int) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteCourier(id), nil)
	if err != nil {
		return resp, fmt.Errorf("deleting courier: %w", err)
	}

	return resp, nil
}
