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

package api

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// API version prefixes served by rmuse over time.
const (
	APIVersion1  = "/api/1"
	APIVersionV1 = "/api/v1"

	DefaultAPIPrefix = APIVersionV1
)

// Endpoint is a short symbolic name for an API path.
type Endpoint string

const (
	EndpointLogin Endpoint = "login"
	EndpointUser  Endpoint = "user"
)

// ErrUnknownEndpoint is returned when an endpoint key is not in the map.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Endpoints contains all API endpoint paths.
type Endpoints struct {
	prefix string
	paths  map[Endpoint]string
}

// NewEndpoints creates a new Endpoints instance rooted at the given version prefix.
func NewEndpoints(prefix string) *Endpoints {
	return &Endpoints{
		prefix: prefix,
		paths: map[Endpoint]string{
			EndpointLogin: prefix + "/login",
			EndpointUser:  prefix + "/user",
		},
	}
}

// Prefix returns the version prefix every path is rooted at.
func (e *Endpoints) Prefix() string {
	return e.prefix
}

// Resolve returns the path for an endpoint key.
func (e *Endpoints) Resolve(endpoint Endpoint) (string, error) {
	path, ok := e.paths[endpoint]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, string(endpoint))
	}

	return path, nil
}

// Keys returns the known endpoint keys in lexical order.
func (e *Endpoints) Keys() []Endpoint {
	return slices.Sorted(maps.Keys(e.paths))
}

// Authentication endpoints.
func (e *Endpoints) Login() string {
	return e.paths[EndpointLogin]
}

// User management endpoints.
func (e *Endpoints) User() string {
	return e.paths[EndpointUser]
}
