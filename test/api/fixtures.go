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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// CredentialsPayloadBuilder builds login payloads for testing.
type CredentialsPayloadBuilder struct {
	payload map[string]interface{}
}

// NewCredentialsPayload creates a new credentials payload builder with defaults from config.
func NewCredentialsPayload(config *TestConfig) *CredentialsPayloadBuilder {
	return &CredentialsPayloadBuilder{
		payload: map[string]interface{}{
			"email":    config.Email,
			"password": config.Password,
		},
	}
}

// WithEmail sets the email address.
func (b *CredentialsPayloadBuilder) WithEmail(email string) *CredentialsPayloadBuilder {
	b.payload["email"] = email
	return b
}

// WithPassword sets the password.
func (b *CredentialsPayloadBuilder) WithPassword(password string) *CredentialsPayloadBuilder {
	b.payload["password"] = password
	return b
}

// Build returns the completed credentials payload.
func (b *CredentialsPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// UserPayloadBuilder builds user creation payloads for testing.
type UserPayloadBuilder struct {
	payload map[string]interface{}
}

// NewUserPayload creates a user payload with a unique username and email.
func NewUserPayload() *UserPayloadBuilder {
	id := GenerateTestID()

	return &UserPayloadBuilder{
		payload: map[string]interface{}{
			"email":    id + "@example.com",
			"username": id,
			"password": "goodpassword",
		},
	}
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.payload["email"] = email
	return b
}

// WithUsername sets the username.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.payload["username"] = username
	return b
}

// WithPassword sets the password.
func (b *UserPayloadBuilder) WithPassword(password string) *UserPayloadBuilder {
	b.payload["password"] = password
	return b
}

// WithName sets the optional first and last names.
func (b *UserPayloadBuilder) WithName(first, last string) *UserPayloadBuilder {
	b.payload["first_name"] = first
	b.payload["last_name"] = last

	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// Credentials derives a login payload from a user payload.
func (b *UserPayloadBuilder) Credentials() map[string]interface{} {
	return map[string]interface{}{
		"email":    b.payload["email"],
		"password": b.payload["password"],
	}
}

// DecodeJSONResponse reads and closes the response body, decoding it as a JSON object.
func DecodeJSONResponse(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	var out map[string]interface{}
	Expect(json.Unmarshal(body, &out)).To(Succeed(), "response body: %s", string(body))

	return out
}

// CreateUserFixture registers a fresh user and returns the payload it was created with.
func CreateUserFixture(client *APIClient, ctx context.Context) *UserPayloadBuilder {
	user := NewUserPayload()

	resp, err := client.CreateUser(ctx, user.Build())
	Expect(err).NotTo(HaveOccurred())

	body := DecodeJSONResponse(resp)
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "response body: %v", body)
	Expect(body).To(HaveKey("token"))

	GinkgoWriter.Printf("Created user %s\n", user.Build()["username"])

	return user
}
