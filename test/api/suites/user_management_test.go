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
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/derhabicht/rmuse/test/api"
)

var _ = Describe("User Management", func() {
	Context("When creating users", func() {
		Describe("Given a new user", func() {
			It("should create the user and return a token", func() {
				api.CreateUserFixture(client, ctx)
			})
		})

		Describe("Given an existing user", func() {
			It("should reject a duplicate email address", func() {
				existing := api.CreateUserFixture(client, ctx)
				email := existing.Build()["email"]

				resp, err := client.CreateUser(ctx, api.NewUserPayload().
					WithEmail(email.(string)). //nolint:forcetypeassert // safe: we control payload structure
					Build())
				Expect(err).NotTo(HaveOccurred())

				body := api.DecodeJSONResponse(resp)
				Expect(resp.StatusCode).To(Equal(http.StatusUnprocessableEntity))
				Expect(fmt.Sprint(body)).To(ContainSubstring(fmt.Sprintf("a user with email %s already exists", email)))
			})

			It("should reject a duplicate username", func() {
				existing := api.CreateUserFixture(client, ctx)
				username := existing.Build()["username"]

				resp, err := client.CreateUser(ctx, api.NewUserPayload().
					WithUsername(username.(string)). //nolint:forcetypeassert // safe: we control payload structure
					Build())
				Expect(err).NotTo(HaveOccurred())

				body := api.DecodeJSONResponse(resp)
				Expect(resp.StatusCode).To(Equal(http.StatusUnprocessableEntity))
				Expect(fmt.Sprint(body)).To(ContainSubstring(fmt.Sprintf("username %s is already in use", username)))
			})
		})
	})
})
