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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/derhabicht/rmuse/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When logging in", func() {
		Describe("Given credentials that do not match any user", func() {
			It("should reject an unknown email address", func() {
				payload := api.NewCredentialsPayload(config).
					WithEmail(api.GenerateTestEmail()).
					WithPassword("goodpassword").
					Build()

				resp, err := client.Login(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				body := api.DecodeJSONResponse(resp)
				Expect(resp.StatusCode).To(BeElementOf(http.StatusUnauthorized, http.StatusUnprocessableEntity))
				Expect(body).NotTo(HaveKey("token"))
			})

			It("should reject the configured bad credentials", func() {
				resp, err := client.Login(ctx, api.NewCredentialsPayload(config).Build())
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()

				GinkgoWriter.Printf("Login as %s returned %d\n", config.Email, resp.StatusCode)
				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})

		Describe("Given a registered user", func() {
			It("should reject a wrong password", func() {
				user := api.CreateUserFixture(client, ctx)

				resp, err := client.Login(ctx, api.NewCredentialsPayload(config).
					WithEmail(user.Build()["email"].(string)). //nolint:forcetypeassert // safe: we control payload structure
					WithPassword("badpassword").
					Build())
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()

				Expect(resp.StatusCode).To(BeElementOf(http.StatusUnauthorized, http.StatusUnprocessableEntity))
			})

			It("should issue a token for the right password", func() {
				user := api.CreateUserFixture(client, ctx)

				resp, err := client.Login(ctx, user.Credentials())
				Expect(err).NotTo(HaveOccurred())

				body := api.DecodeJSONResponse(resp)
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(body).To(HaveKeyWithValue("token", Not(BeEmpty())))
				Expect(body).To(HaveKeyWithValue("username", user.Build()["username"]))
			})
		})
	})

	Context("When addressing an endpoint", func() {
		Describe("Given a key outside the endpoint map", func() {
			It("should fail before sending anything", func() {
				resp, err := client.Post(ctx, "profile", map[string]interface{}{})
				Expect(err).To(MatchError(api.ErrUnknownEndpoint))
				Expect(resp).To(BeNil())
			})
		})
	})
})
