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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Default credentials used when none are configured.
const (
	DefaultEmail    = "meh@meow.com"
	DefaultPassword = "badpassword"
)

type TestConfig struct {
	BaseURL         string
	APIPrefix       string
	Email           string
	Password        string
	RequestTimeout  time.Duration
	SkipIntegration bool
	LogRequests     bool
	LogResponses    bool
}

// NewTestConfig returns a configuration with defaults for everything but the base URL.
func NewTestConfig(baseURL string) *TestConfig {
	return &TestConfig{
		BaseURL:   baseURL,
		APIPrefix: DefaultAPIPrefix,
		Email:     DefaultEmail,
		Password:  DefaultPassword,
	}
}

// LoadTestConfig loads configuration from environment variables.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	config := &TestConfig{
		BaseURL:         os.Getenv("API_BASE_URL"),
		APIPrefix:       getStringWithDefault("API_PREFIX", DefaultAPIPrefix),
		Email:           getStringWithDefault("TEST_EMAIL", DefaultEmail),
		Password:        getStringWithDefault("TEST_PASSWORD", DefaultPassword),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 0),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"API_BASE_URL": config.BaseURL,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables", strings.Join(missing, ", "))
	}

	return nil
}
