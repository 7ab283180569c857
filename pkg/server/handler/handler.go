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

//nolint:revive
package handler

import (
	goerrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/derhabicht/rmuse/pkg/openapi"
	"github.com/derhabicht/rmuse/pkg/server/handler/media"
	"github.com/derhabicht/rmuse/pkg/server/handler/user"
	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

type Handler struct {
	// users is the account database.
	users *user.Client

	// media is the uploaded file database.
	media *media.Client

	// tokens issues and checks session tokens.
	tokens *user.Issuer
}

func New(users *user.Client, uploads *media.Client, tokens *user.Issuer) (*Handler, error) {
	h := &Handler{
		users:  users,
		media:  uploads,
		tokens: tokens,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// writeError renders domain failures as the simple error document the API
// describes, anything unexpected is handed to the generic handler.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *user.ConflictError

	var invalid *media.ValidationError

	switch {
	case goerrors.As(err, &conflict):
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, &openapi.Error{Error: conflict.Error()})
	case goerrors.As(err, &invalid):
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, &openapi.Error{Error: invalid.Error()})
	case goerrors.Is(err, media.ErrForbidden):
		util.WriteJSONResponse(w, r, http.StatusUnauthorized, &openapi.Error{Error: media.ErrForbidden.Error()})
	case goerrors.Is(err, user.ErrInvalidToken), goerrors.Is(err, user.ErrNotFound):
		util.WriteJSONResponse(w, r, http.StatusUnauthorized, &openapi.Error{Error: "could not identify the user"})
	case goerrors.Is(err, user.ErrInvalidCredentials):
		util.WriteJSONResponse(w, r, http.StatusUnauthorized, &openapi.Error{Error: err.Error()})
	default:
		errors.HandleError(w, r, errors.OAuth2ServerError("unable to process request").WithError(err))
	}
}

// badRequest reports a body that passed schema validation but could not be
// decoded, e.g. a malformed email address or username.
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	util.WriteJSONResponse(w, r, http.StatusBadRequest, &openapi.Error{Error: err.Error()})
}

func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	request := &openapi.LoginRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	u, err := h.users.Authenticate(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result := &openapi.TokenResponse{
		Token:    token,
		Username: &u.Username,
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	request := &openapi.UserWrite{}

	if err := util.ReadJSONBody(r, request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	u, err := h.users.Create(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &openapi.TokenResponse{Token: token})
}

// authenticate resolves the token to a registered user.
func (h *Handler) authenticate(r *http.Request, token string) (*user.User, error) {
	id, err := h.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	return h.users.Get(r.Context(), id)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		util.WriteJSONResponse(w, r, http.StatusUnauthorized, &openapi.Error{Error: "no token set in headers"})
		return
	}

	u, err := h.authenticate(r, token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, user.Convert(u))
}

func (h *Handler) PostMedia(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		util.WriteJSONResponse(w, r, http.StatusUnauthorized, &openapi.Error{Error: "must be logged in to upload media"})
		return
	}

	u, err := h.authenticate(r, token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	request := &openapi.MediumWrite{}

	if err := util.ReadJSONBody(r, request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	m, err := h.media.Create(r.Context(), u.ID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, media.Convert(m))
}

// GetMedia reads media by ID, the token is optional and only needed to see
// media that is not public.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	params := &openapi.GetMediaParams{}

	if err := runtime.BindQueryParameter("form", true, false, "id", r.URL.Query(), &params.Id); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var requester *uuid.UUID

	if token := r.Header.Get("Authorization"); token != "" {
		u, err := h.authenticate(r, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		requester = &u.ID
	}

	var ids []uuid.UUID

	if params.Id != nil {
		for _, raw := range *params.Id {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}

			ids = append(ids, id)
		}
	}

	result, err := h.media.Get(r.Context(), requester, ids)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, media.ConvertList(result))
}
