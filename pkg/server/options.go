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

package server

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/derhabicht/rmuse/pkg/server/handler/user"
)

// Options allows the server to be configured on the CLI.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// APIPrefix is the version prefix all routes are mounted under.
	APIPrefix string

	// SigningKey is the HMAC key for session tokens, one is generated
	// when empty.
	SigningKey string

	// TokenLifetime is how long session tokens remain valid.
	TokenLifetime time.Duration

	// ReadHeaderTimeout bounds how long a client may take sending headers.
	ReadHeaderTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "API listener address.")
	f.StringVar(&o.APIPrefix, "api-prefix", "/api/v1", "Path prefix the API is served under, e.g. /api/1 or /api/v1.")
	f.StringVar(&o.SigningKey, "jwt-signing-key", "", "HMAC key used to sign session tokens.")
	f.DurationVar(&o.TokenLifetime, "token-lifetime", user.DefaultTokenLifetime, "How long session tokens remain valid.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for request headers.")
}
