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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/util/sets"
)

// CleanupReport summarises a ClearAll pass.
type CleanupReport struct {
	// Deleted couriers logged in and were deleted.
	Deleted int
	// Skipped couriers could not log in, typically because registration
	// was rejected.
	Skipped int
	// Failed couriers logged in but could not be deleted, or the service
	// could not be reached.
	Failed int
}

// CourierSession tracks every courier registered through it so they can be
// removed from the service once the spec is done.  A session belongs to a
// single spec and is not safe for concurrent use.
type CourierSession struct {
	client  CourierAPI
	tracked []Courier
	seen    sets.Set[string]
}

func NewCourierSession(client CourierAPI) *CourierSession {
	return &CourierSession{
		client: client,
		seen:   sets.New[string](),
	}
}

func sessionKey(courier Courier) string {
	return courier.Login + "\x00" + courier.Password
}

// Register records the courier for cleanup then registers it.  The courier is
// recorded even when registration fails.
func (s *CourierSession) Register(ctx context.Context, courier Courier) (*Response, error) {
	if key := sessionKey(courier); !s.seen.Has(key) {
		s.seen.Insert(key)
		s.tracked = append(s.tracked, courier)
	}

	return s.client.RegisterCourier(ctx, courier)
}

// Tracked returns the couriers awaiting cleanup in registration order.
func (s *CourierSession) Tracked() []Courier {
	return slices.Clone(s.tracked)
}

// ClearAll deletes every tracked courier that can still log in.  Errors are
// logged and counted, never returned.  The session is empty afterwards.
func (s *CourierSession) ClearAll(ctx context.Context) CleanupReport {
	var report CleanupReport

	for _, courier := range s.tracked {
		switch s.clearCourier(ctx, courier) {
		case cleanupDeleted:
			report.Deleted++
		case cleanupSkipped:
			report.Skipped++
		case cleanupFailed:
			report.Failed++
		}
	}

	s.tracked = nil
	s.seen = sets.New[string]()

	return report
}

type cleanupOutcome int

const (
	cleanupDeleted cleanupOutcome = iota
	cleanupSkipped
	cleanupFailed
)

func (s *CourierSession) clearCourier(ctx context.Context, courier Courier) cleanupOutcome {
	resp, err := s.client.LoginCourier(ctx, courier.Credentials())
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to log in courier %q for cleanup: %v\n", courier.Login, err)
		return cleanupFailed
	}

	if resp.StatusCode != http.StatusOK {
		return cleanupSkipped
	}

	result, err := resp.LoginResult()
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to read ID of courier %q: %v\n", courier.Login, err)
		return cleanupFailed
	}

	resp, err = s.client.DeleteCourier(ctx, result.ID)
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to delete courier %q (ID %d): %v\n", courier.Login, result.ID, err)
		return cleanupFailed
	}

	if resp.StatusCode != http.StatusOK {
		GinkgoWriter.Printf("Warning: Failed to delete courier %q (ID %d): status=%d body=%s (trace ID: %s)\n", courier.Login, result.ID, resp.StatusCode, string(resp.Body), resp.TraceID)
		return cleanupFailed
	}

	return cleanupDeleted
}

// NewCourierSessionWithCleanup creates a session and schedules ClearAll to run
// when the current spec finishes, whether it passes or fails.
func NewCourierSessionWithCleanup(ctx context.Context, client CourierAPI) *CourierSession {
	session := NewCourierSession(client)

	// Cancellation of the spec context must not stop teardown.
	cleanupCtx := context.WithoutCancel(ctx)

	DeferCleanup(func() {
		report := session.ClearAll(cleanupCtx)

		GinkgoWriter.Printf("Courier cleanup: deleted=%d skipped=%d failed=%d\n", report.Deleted, report.Skipped, report.Failed)
	})

	return session
}

// CreateCourierWithCleanup registers a courier through the session and asserts
// it was created.
func CreateCourierWithCleanup(ctx context.Context, session *CourierSession, courier Courier) Courier {
	GinkgoHelper()

	resp, err := session.Register(ctx, courier)
	Expect(err).NotTo(HaveOccurred())
	ExpectCreated(resp)

	GinkgoWriter.Printf("Created courier with login: %s\n", courier.Login)

	return courier
}

// LoginCourierID logs the courier in and returns its ID.
func LoginCourierID(ctx context.Context, client CourierAPI, courier Courier) int {
	GinkgoHelper()

	resp, err := client.LoginCourier(ctx, courier.Credentials())
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)

	result, err := resp.LoginResult()
	Expect(err).NotTo(HaveOccurred())
	Expect(result.ID).To(BeNumerically(">", 0))

	return result.ID
}

// ExpectStatus asserts the status code, reporting the body and trace ID on failure.
func ExpectStatus(resp *Response, statusCode int) {
	GinkgoHelper()

	Expect(resp).NotTo(BeNil())
	Expect(resp.StatusCode).To(Equal(statusCode), "unexpected status, body: %s (trace ID: %s)", string(resp.Body), resp.TraceID)
}

// ExpectCreated asserts a 201 with {"ok": true}.
func ExpectCreated(resp *Response) {
	GinkgoHelper()

	ExpectOK(resp, http.StatusCreated)
}

// ExpectOK asserts the status code and an {"ok": true} body.
func ExpectOK(resp *Response, statusCode int) {
	GinkgoHelper()

	ExpectStatus(resp, statusCode)

	result, err := resp.CreateResult()
	Expect(err).NotTo(HaveOccurred())
	Expect(result.OK).To(BeTrue())
}
