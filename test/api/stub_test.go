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

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/derhabicht/rmuse/pkg/server"
	"github.com/derhabicht/rmuse/pkg/server/handler/user"
	"github.com/derhabicht/rmuse/test/api"
)

func newStubClient(t *testing.T, prefix string) *api.APIClient {
	t.Helper()

	s := &server.Server{
		Options: server.Options{
			APIPrefix:  prefix,
			SigningKey: "test",
		},
		Users: user.New().WithCost(bcrypt.MinCost),
	}

	handler, err := s.Handler()
	require.NoError(t, err)

	stub := httptest.NewServer(handler)
	t.Cleanup(stub.Close)

	config := api.NewTestConfig(stub.URL)
	config.APIPrefix = prefix

	client := api.NewAPIClientWithConfig(config)
	client.SetLogWriter(io.Discard)

	return client
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestStubLoginFlow(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{api.APIVersion1, api.APIVersionV1} {
		client := newStubClient(t, prefix)
		ctx := context.Background()

		// Nobody is registered yet.
		resp, err := client.Login(ctx, credentials())
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "invalid email or password", decode(t, resp)["error"])

		account := api.NewUserPayload().WithEmail("Meh@Meow.com").WithUsername("oreo").WithPassword("goodpassword")

		resp, err = client.CreateUser(ctx, account.Build())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, decode(t, resp)["token"])

		// Wrong password.
		resp, err = client.Login(ctx, credentials())
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()

		resp, err = client.Login(ctx, account.Credentials())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		require.NotEmpty(t, body["token"])
		require.Equal(t, "oreo", body["username"])
	}
}

func TestStubRejectsDuplicates(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, api.DefaultAPIPrefix)
	ctx := context.Background()

	first := api.NewUserPayload().WithEmail("cat@example.com").WithUsername("oreo")

	resp, err := client.CreateUser(ctx, first.Build())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.CreateUser(ctx, api.NewUserPayload().WithEmail("CAT@example.com").Build())
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "a user with email cat@example.com already exists", decode(t, resp)["error"])

	resp, err = client.CreateUser(ctx, api.NewUserPayload().WithUsername("oreo").Build())
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "username oreo is already in use", decode(t, resp)["error"])
}

func TestStubRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, api.DefaultAPIPrefix)

	resp, err := client.Login(context.Background(), map[string]interface{}{"email": "meh@meow.com"})
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.CreateUser(context.Background(), api.NewUserPayload().WithEmail("not-an-email").Build())
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestStubLoginMalformedEmailIsBadCredentials(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, api.DefaultAPIPrefix)

	resp, err := client.Login(context.Background(), map[string]interface{}{"email": "not-an-email", "password": "x"})
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "invalid email or password", decode(t, resp)["error"])
}
