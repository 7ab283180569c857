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

package openapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/derhabicht/rmuse/pkg/openapi"
)

func TestUsernameValidation(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"oreo", "Raja_Hawk", "test-0a1b2c3d", "first.last", "has space", "ørëo"} {
		var n openapi.Username
		require.NoError(t, n.UnmarshalText([]byte(valid)))
		require.Equal(t, valid, n.Value)
	}

	for _, invalid := range []string{"", "tab\there", "new\nline"} {
		var n openapi.Username
		require.ErrorIs(t, n.UnmarshalText([]byte(invalid)), openapi.ErrInvalidUsername)
	}
}

func TestUserWriteJSON(t *testing.T) {
	t.Parallel()

	var user openapi.UserWrite

	require.NoError(t, json.Unmarshal([]byte(`{"email":"cat@example.com","username":"oreo","password":"goodpassword"}`), &user))
	require.Equal(t, "oreo", user.Username.Value)
	require.Nil(t, user.FirstName)

	require.NoError(t, json.Unmarshal([]byte(`{"email":"cat@example.com","username":"o.r.e.o","password":"x"}`), &user))
	require.Equal(t, "o.r.e.o", user.Username.Value)

	require.Error(t, json.Unmarshal([]byte(`{"email":"cat@example.com","username":"","password":"x"}`), &user))
	require.Error(t, json.Unmarshal([]byte(`{"email":"cat","username":"oreo","password":"x"}`), &user))
}

func TestGetSwagger(t *testing.T) {
	t.Parallel()

	schema, err := openapi.GetSwagger()
	require.NoError(t, err)

	login := schema.Paths.Find("/login")
	require.NotNil(t, login)
	require.NotNil(t, login.Post)

	user := schema.Paths.Find("/user")
	require.NotNil(t, user)
	require.NotNil(t, user.Get)
	require.NotNil(t, user.Post)

	media := schema.Paths.Find("/media")
	require.NotNil(t, media)
	require.NotNil(t, media.Get)
	require.NotNil(t, media.Post)
}

func TestLoginRequestEmailIsUnchecked(t *testing.T) {
	t.Parallel()

	var login openapi.LoginRequest

	require.NoError(t, json.Unmarshal([]byte(`{"email":"cat","password":"x"}`), &login))
	require.Equal(t, "cat", login.Email)
}
