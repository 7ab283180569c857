/*
Copyright 2024-2025 the Unikorn Authors.

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

// Package api provides integration test utilities for the rmuse API.
//
// The heart of the package is a fixed map from short endpoint names ("login",
// "user") to URL paths under a version prefix, and a client that joins a base
// URL with a resolved path and POSTs a JSON payload to it. Responses come back
// exactly as the server sent them, status codes included, so tests can assert
// on failures as easily as on successes.
//
// # Version Prefix
//
// rmuse has served its API under both /api/1 and /api/v1. The prefix is taken
// from API_PREFIX rather than baked into the paths, so one harness can target
// either deployment.
//
// # Base URL Handling
//
// The base URL is concatenated with the path as is. Pass an origin without a
// trailing slash, e.g. http://localhost:8080.
package api
