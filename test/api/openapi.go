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

package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

var (
	// ErrSchemaViolation is returned when a response does not match the
	// courier API's OpenAPI document.
	ErrSchemaViolation = errors.New("response violates schema")
)

//go:embed openapi/courier.yaml
var courierSchema []byte

// Schema returns the parsed and validated OpenAPI document for the courier API.
func Schema(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(courierSchema)
	if err != nil {
		return nil, fmt.Errorf("loading courier schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating courier schema: %w", err)
	}

	return doc, nil
}

// ResponseValidator checks responses against the courier API schema.
type ResponseValidator struct {
	router routers.Router
}

func NewResponseValidator() (*ResponseValidator, error) {
	doc, err := Schema(context.Background())
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating schema router: %w", err)
	}

	return &ResponseValidator{
		router: router,
	}, nil
}

// Validate checks the response for the given request.  The request body is
// not inspected, so an already sent request may be passed.
func (v *ResponseValidator) Validate(ctx context.Context, req *http.Request, resp *Response) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: no route for %s %s: %w", ErrSchemaViolation, req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s status=%d (trace ID: %s): %w", ErrSchemaViolation, req.Method, req.URL.Path, resp.StatusCode, resp.TraceID, err)
	}

	return nil
}
