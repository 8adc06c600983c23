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

// Package api provides acceptance test utilities for the Courier API.
//
// # Client
//
// APIClient is a deliberately thin HTTP wrapper around the three courier
// endpoints (register, login and delete). It never interprets status codes:
// every call returns the raw Response so specs can assert on exactly what
// the service answered. Errors are only returned when no answer could be
// obtained at all, or when response validation against the embedded OpenAPI
// document is enabled and fails.
//
// Each request carries a W3C traceparent header, and failures are logged to
// the GinkgoWriter together with the trace ID so they can be located in the
// service logs.
//
// # Fixtures
//
// The service assigns courier IDs on login, not on creation, so cleanup has to
// remember credentials. A CourierSession records every courier a spec
// registers and, on ClearAll, logs each one in and deletes it. Cleanup is best
// effort: couriers whose credentials no longer log in are skipped.
//
// NewCourierSessionWithCleanup ties a session to the running spec with
// DeferCleanup so teardown happens whether the spec passed or failed.
package api
