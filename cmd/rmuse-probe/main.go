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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/derhabicht/rmuse/pkg/constants"
	"github.com/derhabicht/rmuse/test/api"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

type options struct {
	endpoint string
	username string
	trace    bool
}

func main() {
	var o options

	config := api.NewTestConfig("")

	zapOptions := zap.Options{}
	zapOptions.BindFlags(flag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.StringVar(&config.BaseURL, "base-url", "http://localhost:8080", "Origin of the API, joined to endpoint paths verbatim.")
	pflag.StringVar(&config.APIPrefix, "api-prefix", api.DefaultAPIPrefix, "API version prefix, e.g. /api/1 or /api/v1.")
	pflag.StringVar(&config.Email, "email", api.DefaultEmail, "Email address to send.")
	pflag.StringVar(&config.Password, "password", api.DefaultPassword, "Password to send.")
	pflag.DurationVar(&config.RequestTimeout, "timeout", 0, "Request timeout, 0 waits forever.")
	pflag.StringVar(&o.endpoint, "endpoint", string(api.EndpointLogin), "Endpoint to post to, one of login or user.")
	pflag.StringVar(&o.username, "username", "", "Username to add to the payload when creating a user.")
	pflag.BoolVar(&o.trace, "trace", false, "Log request status and response bodies to stderr.")

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName(constants.Application)

	config.LogRequests = o.trace
	config.LogResponses = o.trace

	client := api.NewAPIClientWithConfig(config)
	client.SetLogWriter(os.Stderr)

	payload := api.NewCredentialsPayload(config).Build()
	if o.username != "" {
		payload["username"] = o.username
	}

	resp, err := client.Post(cr.SetupSignalHandler(), api.Endpoint(o.endpoint), payload)
	if err != nil {
		logger.Error(err, "request failed", "endpoint", o.endpoint)
		os.Exit(1)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error(err, "reading response body failed")
		os.Exit(1) //nolint:gocritic
	}

	logger.V(1).Info("request complete", "endpoint", o.endpoint, "status", resp.StatusCode)

	fmt.Println(resp.Status)
	fmt.Println(string(body))
}
