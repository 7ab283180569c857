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

package validation

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"

	"github.com/derhabicht/rmuse/pkg/openapi"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Validator checks requests against the API schema before they reach a handler.
type Validator struct {
	next   http.Handler
	schema *openapi3.T
	prefix string
}

// Middleware returns a validator constructor, paths in the schema are relative
// to prefix.
func Middleware(schema *openapi3.T, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &Validator{
			next:   next,
			schema: schema,
			prefix: prefix,
		}
	}
}

// findRoute maps a request onto the schema, returning nil for anything the
// schema does not describe so the router can answer with 404 or 405.
func (v *Validator) findRoute(r *http.Request) *routers.Route {
	path := strings.TrimPrefix(r.URL.Path, v.prefix)

	pathItem := v.schema.Paths.Find(path)
	if pathItem == nil {
		return nil
	}

	operation := pathItem.GetOperation(r.Method)
	if operation == nil {
		return nil
	}

	return &routers.Route{
		Spec:      v.schema,
		Path:      path,
		PathItem:  pathItem,
		Method:    r.Method,
		Operation: operation,
	}
}

func (v *Validator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := v.findRoute(r)
	if route == nil {
		v.next.ServeHTTP(w, r)
		return
	}

	input := &openapi3filter.RequestValidationInput{
		Request: r,
		Route:   route,
		Options: &openapi3filter.Options{
			// Tokens are checked by the handlers themselves.
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		log.FromContext(r.Context()).V(1).Info("request rejected", "method", r.Method, "path", r.URL.Path, "error", err.Error())

		util.WriteJSONResponse(w, r, http.StatusBadRequest, &openapi.Error{Error: err.Error()})

		return
	}

	v.next.ServeHTTP(w, r)
}
