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
package fake_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/courier/test/api"
	"github.com/unikorn-cloud/courier/test/fake"
)

var _ = Describe("Fake courier service", func() {
	var (
		service *fake.Server
		server  *httptest.Server
		client  *api.APIClient
		ctx     context.Context
	)

	BeforeEach(func() {
		service = fake.New(GinkgoLogr)
		server = httptest.NewServer(service.Handler())
		DeferCleanup(server.Close)

		var err error

		// Validation keeps the fake honest against the published schema.
		client, err = api.NewAPIClientWithConfig(&api.TestConfig{
			BaseURL:           server.URL,
			RequestTimeout:    5 * time.Second,
			ValidateResponses: true,
		})
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
	})

	Describe("registration", func() {
		It("should create a courier once", func() {
			courier := api.NewCourier().WithLogin("rand123").WithPassword("pass1").Build()

			resp, err := client.RegisterCourier(ctx, courier)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectCreated(resp)

			resp, err = client.RegisterCourier(ctx, courier)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusConflict)

			Expect(service.Store().Len()).To(Equal(1))
		})

		It("should reject a login reused with another password", func() {
			first := api.RandomCourier()
			second := api.NewCourier().WithLogin(first.Login).Build()

			resp, err := client.RegisterCourier(ctx, first)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectCreated(resp)

			resp, err = client.RegisterCourier(ctx, second)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusConflict)
		})

		DescribeTable("should reject incomplete couriers",
			func(courier api.Courier) {
				resp, err := client.RegisterCourier(ctx, courier)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusBadRequest)

				result, err := resp.ErrorResult()
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("without a password", api.NewCourier().WithoutPassword().Build()),
			Entry("without a login", api.NewCourier().WithoutLogin().Build()),
		)

		It("should reject malformed bodies", func() {
			resp, err := http.Post(server.URL+"/api/v1/courier", "application/json", strings.NewReader("{"))
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(resp.Body.Close)

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("login and deletion", func() {
		var courier api.Courier

		BeforeEach(func() {
			courier = api.RandomCourier()

			resp, err := client.RegisterCourier(ctx, courier)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectCreated(resp)
		})

		It("should return an ID for valid credentials", func() {
			Expect(api.LoginCourierID(ctx, client, courier)).To(BeNumerically(">", 0))
		})

		It("should reject a wrong password", func() {
			credentials := courier.Credentials()
			credentials.Password += "-wrong"

			resp, err := client.LoginCourier(ctx, credentials)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusNotFound)
		})

		It("should delete the courier", func() {
			id := api.LoginCourierID(ctx, client, courier)

			resp, err := client.DeleteCourier(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectOK(resp, http.StatusOK)

			resp, err = client.DeleteCourier(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusNotFound)

			Expect(service.Store().Len()).To(BeZero())
		})

		It("should reject non-numeric IDs", func() {
			req, err := http.NewRequestWithContext(ctx, http.MethodDelete, server.URL+"/api/v1/courier/abc", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := http.DefaultClient.Do(req)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(resp.Body.Close)

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("session cleanup", func() {
		It("should remove every courier that still logs in", func() {
			session := api.NewCourierSession(client)

			kept := api.RandomCourier()
			api.CreateCourierWithCleanup(ctx, session, kept)
			api.CreateCourierWithCleanup(ctx, session, api.RandomCourier())

			// Same login, different password: rejected, and its
			// credentials never log in.
			resp, err := session.Register(ctx, api.NewCourier().WithLogin(kept.Login).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusConflict)

			Expect(session.Tracked()).To(HaveLen(3))
			Expect(service.Store().Len()).To(Equal(2))

			report := session.ClearAll(ctx)
			Expect(report).To(Equal(api.CleanupReport{Deleted: 2, Skipped: 1}))
			Expect(service.Store().Len()).To(BeZero())
		})
	})
})

var _ = Describe("Session teardown", Ordered, func() {
	var (
		service *fake.Server
		client  *api.APIClient
	)

	BeforeAll(func() {
		service = fake.New(GinkgoLogr)
		server := httptest.NewServer(service.Handler())
		DeferCleanup(server.Close)

		var err error

		client, err = api.NewAPIClientWithConfig(&api.TestConfig{
			BaseURL:        server.URL,
			RequestTimeout: 5 * time.Second,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should register couriers then abort", func(ctx SpecContext) {
		session := api.NewCourierSessionWithCleanup(ctx, client)

		api.CreateCourierWithCleanup(ctx, session, api.RandomCourier())
		api.CreateCourierWithCleanup(ctx, session, api.RandomCourier())
		Expect(service.Store().Len()).To(Equal(2))

		// Skip unwinds the spec the same way a failure does.
		Skip("aborting with couriers still registered")
	})

	It("should have removed the couriers of the aborted spec", func() {
		Expect(service.Store().Len()).To(BeZero())
	})

	It("should register couriers then cancel the context", func() {
		ctx, cancel := context.WithCancel(context.Background())

		session := api.NewCourierSessionWithCleanup(ctx, client)

		api.CreateCourierWithCleanup(ctx, session, api.RandomCourier())
		Expect(service.Store().Len()).To(Equal(1))

		cancel()
	})

	It("should have removed the couriers despite the cancelled context", func() {
		Expect(service.Store().Len()).To(BeZero())
	})
})
