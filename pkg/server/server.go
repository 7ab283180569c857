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
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/derhabicht/rmuse/pkg/openapi"
	"github.com/derhabicht/rmuse/pkg/server/handler"
	"github.com/derhabicht/rmuse/pkg/server/handler/media"
	"github.com/derhabicht/rmuse/pkg/server/handler/user"
	"github.com/derhabicht/rmuse/pkg/server/middleware/validation"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Server is an in-memory implementation of the rmuse login and user API.
type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// Users optionally replaces the account database, tests use it to
	// lower the bcrypt cost.
	Users *user.Client
}

// withLogger scopes the context logger to the request.
func withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.FromContext(r.Context()).WithValues("requestID", middleware.GetReqID(r.Context()))

		next.ServeHTTP(w, r.WithContext(log.IntoContext(r.Context(), logger)))
	})
}

func (s *Server) signingKey() ([]byte, error) {
	if s.Options.SigningKey != "" {
		return []byte(s.Options.SigningKey), nil
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating signing key: %w", err)
	}

	return key, nil
}

// Handler builds the routing tree.
func (s *Server) Handler() (http.Handler, error) {
	schema, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	key, err := s.signingKey()
	if err != nil {
		return nil, err
	}

	users := s.Users
	if users == nil {
		users = user.New()
	}

	h, err := handler.New(users, media.New(), user.NewIssuer(key, s.Options.TokenLifetime))
	if err != nil {
		return nil, err
	}

	prefix := s.Options.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(withLogger)

	router.Route(prefix, func(r chi.Router) {
		r.Use(validation.Middleware(schema, prefix))

		r.Post("/login", h.PostLogin)
		r.Post("/user", h.PostUser)
		r.Get("/user", h.GetUser)
		r.Post("/media", h.PostMedia)
		r.Get("/media", h.GetMedia)
	})

	return router, nil
}

// GetServer returns an HTTP server ready to listen.
func (s *Server) GetServer(ctx context.Context) (*http.Server, error) {
	router, err := s.Handler()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		Handler:           router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	return server, nil
}
